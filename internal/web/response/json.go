package response

import (
	"encoding/json"
	"net/http"
)

const (
	// JSONAPIMediaType is the official JSON:API media type
	JSONAPIMediaType = "application/vnd.api+json"

	// JSONMediaType is used for plain JSON payloads
	JSONMediaType = "application/json; charset=utf-8"
)

// RenderJSON marshals payload and writes it with the given status
func RenderJSON(w http.ResponseWriter, status int, payload interface{}) {
	renderJSON(w, status, JSONMediaType, payload)
}

// renderJSON marshals before touching the response so a failure never
// leaves a partial body behind
func renderJSON(w http.ResponseWriter, status int, contentType string, payload interface{}) {
	data, err := json.Marshal(payload)
	if err != nil {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte("Internal Server Error"))
		return
	}

	w.Header().Set("Content-Type", contentType)
	w.WriteHeader(status)
	_, _ = w.Write(data)
}
