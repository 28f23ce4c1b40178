package middleware

import (
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"comment-service/configs"
)

// LoggingMiddleware logs every request with a generated request id and its
// duration.
func LoggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(rw http.ResponseWriter, r *http.Request) {
		start := time.Now()
		logger := configs.LogWithContext("comment-service", "http").WithFields(logrus.Fields{
			"request_id": uuid.NewString(),
			"method":     r.Method,
			"path":       r.URL.Path,
		})

		next.ServeHTTP(rw, r)

		logger.WithField("duration", time.Since(start).String()).Info("Request completed")
	})
}
