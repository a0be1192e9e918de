package server

import (
	"encoding/json"
	"net/http"
)

// writeJSON encodes v before the header is written; an unencodable value
// becomes a 500.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	buf, err := json.Marshal(v)
	if err != nil {
		status, buf = http.StatusInternalServerError, []byte(`{"error":"failed to encode response"}`)
	}
	w.WriteHeader(status)
	w.Write(append(buf, '\n'))
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
