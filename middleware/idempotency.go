package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"reservation-service/configs"
	"reservation-service/i18n"
	"reservation-service/responses"
)

const IdempotencyKeyHeader = "Idempotency-Key"

const idempotencyPrefix = "idempotency:"

// KeyStore is the part of *redis.Client used to claim idempotency keys.
type KeyStore interface {
	SetNX(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.BoolCmd
	Del(ctx context.Context, keys ...string) *redis.IntCmd
}

// Idempotency rejects a repeated POST carrying an already claimed
// Idempotency-Key with 409. A key is released again when the request ends
// in a server error or a panic so the visitor can retry. Requests without
// the header, and every request when store is nil, pass straight through.
// Redis failures let the request through.
func Idempotency(store KeyStore, ttl time.Duration, catalog *i18n.Catalog, defaultLocale i18n.Locale) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			key := r.Header.Get(IdempotencyKeyHeader)
			if store == nil || r.Method != http.MethodPost || key == "" {
				next.ServeHTTP(w, r)
				return
			}

			log := configs.LogWithContext("http", "idempotency").WithFields(logrus.Fields{
				"request_id": RequestID(r.Context()),
				"key":        key,
			})
			redisKey := idempotencyPrefix + r.URL.Path + ":" + key

			claimed, err := store.SetNX(r.Context(), redisKey, RequestID(r.Context()), ttl).Result()
			if err != nil {
				log.WithError(err).Warn("Idempotency store unavailable, continuing")
				next.ServeHTTP(w, r)
				return
			}
			if !claimed {
				log.Info("Duplicate submission rejected")
				msgs := catalog.Messages(catalog.FromRequest(r, defaultLocale))
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusConflict)
				json.NewEncoder(w).Encode(responses.ErrorResponse{Success: false, Message: msgs.T("duplicate_submission")})
				return
			}

			rec := newStatusRecorder(w)
			completed := false
			// Runs while a panic unwinds too; the key must not outlive a
			// request that never finished.
			defer func() {
				if completed && rec.Status() < http.StatusInternalServerError {
					return
				}
				if err := store.Del(context.WithoutCancel(r.Context()), redisKey).Err(); err != nil {
					log.WithError(err).Warn("Failed to release idempotency key")
				}
			}()
			next.ServeHTTP(rec, r)
			completed = true
		})
	}
}
