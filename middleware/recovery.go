package middleware

import (
	"encoding/json"
	"net/http"
	"runtime/debug"

	"github.com/sirupsen/logrus"

	"reservation-service/configs"
	"reservation-service/responses"
)

// RecoveryMiddleware turns a panic in a handler into a 500 response.
func RecoveryMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if err := recover(); err != nil {
				configs.LogWithContext("http", "recovery").WithFields(logrus.Fields{
					"request_id": RequestID(r.Context()),
					"panic":      err,
					"stack":      string(debug.Stack()),
				}).Error("Recovered from panic")

				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(responses.ErrorResponse{Success: false, Message: "Internal server error"})
			}
		}()
		next.ServeHTTP(w, r)
	})
}
