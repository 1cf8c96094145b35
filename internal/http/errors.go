// Package httpapi exposes the HTTP API layer of the service.
package httpapi

import (
	"encoding/json"
	"net/http"

	"github.com/fairyhunter13/product-catalog-api/internal/model"
)

// WriteJSON writes v as a JSON body with the given status code.
func WriteJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// WriteJSONError writes a {message, details} payload with the given status code.
func WriteJSONError(w http.ResponseWriter, status int, message, details string) {
	WriteJSON(w, status, model.Message{Message: message, Details: details})
}
