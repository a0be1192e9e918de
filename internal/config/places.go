// Package config loads the named places file and the server environment.
package config

import (
	"fmt"
	"sort"
	"time"

	"cloudeng.io/cmdutil"
	"cloudeng.io/errors"

	"github.com/thurmanmarka/skyphase"
)

// Place is a named observer location with its IANA time zone.
type Place struct {
	Name      string  `yaml:"name" json:"name"`
	Latitude  float64 `yaml:"latitude" json:"latitude"`
	Longitude float64 `yaml:"longitude" json:"longitude"`
	Elevation float64 `yaml:"elevation,omitempty" json:"elevation,omitempty"`
	Timezone  string  `yaml:"timezone" json:"timezone"`

	loc *time.Location
}

// Coordinates returns the place's location.
func (p Place) Coordinates() skyphase.Coordinates {
	return skyphase.Coordinates{Lat: p.Latitude, Lon: p.Longitude, Elevation: p.Elevation}
}

// Location returns the place's time zone, UTC if none was given.
func (p Place) Location() *time.Location {
	if p.loc == nil {
		return time.UTC
	}
	return p.loc
}

// Places is the contents of a places file:
//
//	default: home
//	places:
//	  - name: home
//	    latitude: 40.7128
//	    longitude: -74.0060
//	    timezone: America/New_York
type Places struct {
	Default string  `yaml:"default"`
	Places  []Place `yaml:"places"`

	byName map[string]int
}

// LoadPlaces reads and validates a places file.
func LoadPlaces(file string) (*Places, error) {
	var p Places
	if err := cmdutil.ParseYAMLConfigFile(file, &p); err != nil {
		return nil, err
	}
	if err := p.init(); err != nil {
		return nil, fmt.Errorf("%s: %w", file, err)
	}
	return &p, nil
}

// ParsePlaces parses and validates places from a YAML string.
func ParsePlaces(doc string) (*Places, error) {
	var p Places
	if err := cmdutil.ParseYAMLConfigString(doc, &p); err != nil {
		return nil, err
	}
	if err := p.init(); err != nil {
		return nil, err
	}
	return &p, nil
}

// init validates every place, reporting all problems at once, and
// resolves time zones.
func (p *Places) init() error {
	errs := &errors.M{}
	p.byName = make(map[string]int, len(p.Places))
	for i := range p.Places {
		pl := &p.Places[i]
		if pl.Name == "" {
			errs.Append(fmt.Errorf("place %d: missing name", i))
			continue
		}
		if _, dup := p.byName[pl.Name]; dup {
			errs.Append(fmt.Errorf("place %q: duplicate name", pl.Name))
			continue
		}
		p.byName[pl.Name] = i
		if err := pl.Coordinates().Validate(); err != nil {
			errs.Append(fmt.Errorf("place %q: %w", pl.Name, err))
		}
		if pl.Timezone != "" {
			loc, err := time.LoadLocation(pl.Timezone)
			if err != nil {
				errs.Append(fmt.Errorf("place %q: %w", pl.Name, err))
				continue
			}
			pl.loc = loc
		}
	}
	if p.Default != "" {
		if _, ok := p.byName[p.Default]; !ok {
			errs.Append(fmt.Errorf("default place %q is not defined", p.Default))
		}
	}
	return errs.Err()
}

// Lookup returns the named place.
func (p *Places) Lookup(name string) (Place, bool) {
	if p == nil {
		return Place{}, false
	}
	i, ok := p.byName[name]
	if !ok {
		return Place{}, false
	}
	return p.Places[i], true
}

// DefaultPlace returns the default place, if one is configured.
func (p *Places) DefaultPlace() (Place, bool) {
	if p == nil || p.Default == "" {
		return Place{}, false
	}
	return p.Lookup(p.Default)
}

// Names returns the place names in sorted order.
func (p *Places) Names() []string {
	if p == nil {
		return nil
	}
	names := make([]string, 0, len(p.Places))
	for _, pl := range p.Places {
		names = append(names, pl.Name)
	}
	sort.Strings(names)
	return names
}
