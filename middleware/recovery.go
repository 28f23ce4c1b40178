package middleware

import (
	"encoding/json"
	"net/http"

	"comment-service/configs"
	"comment-service/responses"
)

// RecoveryMiddleware turns panics into a generic 500 instead of tearing down
// the connection.
func RecoveryMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(rw http.ResponseWriter, r *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				configs.LogWithContext("comment-service", "recovery").
					Error("Recovered from panic", "panic", rec, "path", r.URL.Path)
				rw.Header().Set("Content-Type", "application/json")
				rw.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(rw).Encode(responses.StatusResponse{Success: false, Message: "internal server error"})
			}
		}()
		next.ServeHTTP(rw, r)
	})
}
