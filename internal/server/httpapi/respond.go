// Package httpapi implements the HTTP surface of both services: routers,
// handlers, and the Bearer-token middleware used by the user service.
package httpapi

import (
	"encoding/json"
	"net/http"
)

// message is the error envelope both services return.
type message struct {
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
