package handler

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
)

// maxRequestBody caps request bodies. The largest legitimate payload is an
// entry of 1000 characters, so 64KB leaves ample headroom.
const maxRequestBody = 64 << 10

// writeJSON sends a JSON response with the given status code and data.
func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		slog.Error("write JSON response", "error", err)
	}
}

// writeError sends a JSON error response with the given status code and message.
func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}

// readJSON decodes the request body into the given destination, reading at
// most maxRequestBody bytes.
func readJSON(r *http.Request, dst any) error {
	return json.NewDecoder(io.LimitReader(r.Body, maxRequestBody)).Decode(dst)
}
