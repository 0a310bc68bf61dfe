// Package middleware содержит HTTP middleware сервера визиток.
package middleware

import (
	"encoding/json"
	"net/http"

	"github.com/iudanet/cardkeeper/pkg/api"
)

// writeError отправляет ошибку в том же конверте, что и handlers
func writeError(w http.ResponseWriter, message string, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(api.Response{Success: false, Error: message})
}
