// Command skyphase reports sun and moon positions, twilight times and the
// current phase of the day, and serves them over HTTP.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"cloudeng.io/cmdutil"
	"cloudeng.io/cmdutil/subcmd"
	"cloudeng.io/logging/ctxlog"

	"github.com/thurmanmarka/skyphase/internal/config"
)

var cmdSet *subcmd.CommandSet

type GlobalFlags struct {
	LogLevel string `subcmd:"log-level,info,'log level: debug, info, warn or error'"`
	Places   string `subcmd:"places,,YAML file of named places"`
}

var globalValues GlobalFlags

func init() {
	rsFlagSet := subcmd.MustRegisterFlagStruct(&riseSetFlags{}, nil, nil)
	rsCmd := subcmd.NewCommand("riseset", rsFlagSet, riseSet, subcmd.WithoutArguments())
	rsCmd.Document("print sun or moon rise and set times for a date")

	twFlagSet := subcmd.MustRegisterFlagStruct(&twilightFlags{}, nil, nil)
	twCmd := subcmd.NewCommand("twilight", twFlagSet, twilight, subcmd.WithoutArguments())
	twCmd.Document("print the twilight times, golden hour and blue hour for a date")

	phaseFlagSet := subcmd.MustRegisterFlagStruct(&phaseFlags{}, nil, nil)
	phaseCmd := subcmd.NewCommand("phase", phaseFlagSet, moonPhase, subcmd.WithoutArguments())
	phaseCmd.Document("print the moon phase and illumination at an instant")

	skyFlagSet := subcmd.MustRegisterFlagStruct(&skyFlags{}, nil, nil)
	skyCmd := subcmd.NewCommand("sky", skyFlagSet, sky, subcmd.WithoutArguments())
	skyCmd.Document("print sun and moon positions and the phase of the day at an instant")

	watchFlagSet := subcmd.MustRegisterFlagStruct(&watchFlags{}, nil, nil)
	watchCmd := subcmd.NewCommand("watch", watchFlagSet, watch, subcmd.WithoutArguments())
	watchCmd.Document("poll the sky periodically and log changes in the phase of the day")

	profileFlagSet := subcmd.MustRegisterFlagStruct(&profileFlags{}, nil, nil)
	profileCmd := subcmd.NewCommand("profile", profileFlagSet, runProfile, subcmd.WithoutArguments())
	profileCmd.Document(`compare computed rise/set or twilight times against a reference CSV file
(date,rise,set with local HH:MM times) or, without one, the NOAA sunrise equation.`)

	serveFlagSet := subcmd.MustRegisterFlagStruct(&serveFlags{}, nil, nil)
	serveCmd := subcmd.NewCommand("serve", serveFlagSet, serve, subcmd.WithoutArguments())
	serveCmd.Document(`run the HTTP API. Settings are read from the environment
(HTTP_ADDR, LOG_LEVEL, PLACES_FILE, CACHE_SIZE), optionally loaded from a .env file.`)

	cmdSet = subcmd.NewCommandSet(rsCmd, twCmd, phaseCmd, skyCmd, watchCmd, profileCmd, serveCmd)
	cmdSet.Document("skyphase computes sun and moon positions, twilight times and the phase of the day.")

	globals := subcmd.NewFlagSet()
	globals.MustRegisterFlagStruct(&globalValues, nil, nil)
	cmdSet.WithGlobalFlags(globals)
}

func main() {
	ctx := context.Background()
	if err := cmdSet.Dispatch(ctx); err != nil {
		cmdutil.Exit("%v", err)
	}
}

func parseLevel(s string) (slog.Level, error) {
	var l slog.Level
	if err := l.UnmarshalText([]byte(strings.ToUpper(s))); err != nil {
		return l, fmt.Errorf("invalid log level %q", s)
	}
	return l, nil
}

// setup installs a text logger on stderr and loads the places file named by
// --places, if any.
func setup(ctx context.Context) (context.Context, *config.Places, error) {
	level, err := parseLevel(globalValues.LogLevel)
	if err != nil {
		return ctx, nil, err
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	ctx = ctxlog.Context(ctx, logger)
	if globalValues.Places == "" {
		return ctx, nil, nil
	}
	places, err := config.LoadPlaces(globalValues.Places)
	if err != nil {
		return ctx, nil, err
	}
	return ctx, places, nil
}
