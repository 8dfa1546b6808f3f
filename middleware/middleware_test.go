package middleware

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"reservation-service/configs"
	"reservation-service/i18n"
)

var catalog = i18n.MustLoad(i18n.German)

func init() {
	configs.Logger.SetOutput(io.Discard)
}

func okHandler(status int) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(status)
		io.WriteString(w, RequestID(r.Context()))
	})
}

func TestLoggingMiddleware_AssignsRequestID(t *testing.T) {
	hook := test.NewLocal(configs.Logger)
	defer hook.Reset()

	rec := httptest.NewRecorder()
	LoggingMiddleware(okHandler(http.StatusCreated)).ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/contact", nil))

	id := rec.Header().Get(RequestIDHeader)
	require.NotEmpty(t, id)
	assert.Equal(t, id, rec.Body.String())

	entry := hook.LastEntry()
	require.NotNil(t, entry)
	assert.Equal(t, http.StatusCreated, entry.Data["status"])
	assert.Equal(t, "/api/contact", entry.Data["path"])
	assert.Equal(t, logrus.InfoLevel, entry.Level)
}

func TestLoggingMiddleware_KeepsIncomingID(t *testing.T) {
	hook := test.NewLocal(configs.Logger)
	defer hook.Reset()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(RequestIDHeader, "abc-123")
	rec := httptest.NewRecorder()
	LoggingMiddleware(okHandler(http.StatusInternalServerError)).ServeHTTP(rec, req)

	assert.Equal(t, "abc-123", rec.Header().Get(RequestIDHeader))
	assert.Equal(t, logrus.ErrorLevel, hook.LastEntry().Level)
}

func TestRecoveryMiddleware(t *testing.T) {
	h := RecoveryMiddleware(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic("boom")
	}))
	rec := httptest.NewRecorder()

	require.NotPanics(t, func() {
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	})
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"success":false,"message":"Internal server error"}`, rec.Body.String())
}

func TestCORS(t *testing.T) {
	h := CORS([]string{"http://localhost:5173"})(okHandler(http.StatusOK))

	t.Run("allowed origin", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/reservations", nil)
		req.Header.Set("Origin", "http://localhost:5173")
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)
		assert.Equal(t, "http://localhost:5173", rec.Header().Get("Access-Control-Allow-Origin"))
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("foreign origin", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/reservations", nil)
		req.Header.Set("Origin", "https://evil.example")
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)
		assert.Empty(t, rec.Header().Get("Access-Control-Allow-Origin"))
	})

	t.Run("preflight", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodOptions, "/api/contact", nil)
		req.Header.Set("Origin", "http://localhost:5173")
		req.Header.Set("Access-Control-Request-Method", "POST")
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusNoContent, rec.Code)
		assert.Contains(t, rec.Header().Get("Access-Control-Allow-Headers"), IdempotencyKeyHeader)
	})

	t.Run("wildcard", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Origin", "https://any.example")
		rec := httptest.NewRecorder()
		CORS([]string{"*"})(okHandler(http.StatusOK)).ServeHTTP(rec, req)
		assert.Equal(t, "https://any.example", rec.Header().Get("Access-Control-Allow-Origin"))
	})
}

type memoryKeys struct {
	mu      sync.Mutex
	keys    map[string]bool
	setErr  error
	deleted []string
}

func newMemoryKeys() *memoryKeys {
	return &memoryKeys{keys: map[string]bool{}}
}

func (m *memoryKeys) SetNX(_ context.Context, key string, _ interface{}, _ time.Duration) *redis.BoolCmd {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.setErr != nil {
		return redis.NewBoolResult(false, m.setErr)
	}
	if m.keys[key] {
		return redis.NewBoolResult(false, nil)
	}
	m.keys[key] = true
	return redis.NewBoolResult(true, nil)
}

func (m *memoryKeys) Del(_ context.Context, keys ...string) *redis.IntCmd {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, k := range keys {
		delete(m.keys, k)
		m.deleted = append(m.deleted, k)
	}
	return redis.NewIntResult(int64(len(keys)), nil)
}

func countingHandler(status *int, calls *int) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		*calls++
		w.WriteHeader(*status)
	})
}

func post(h http.Handler, key string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/api/reservations", strings.NewReader("{}"))
	if key != "" {
		req.Header.Set(IdempotencyKeyHeader, key)
	}
	req.AddCookie(&http.Cookie{Name: i18n.CookieName, Value: "en"})
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestIdempotency_RejectsDuplicate(t *testing.T) {
	keys := newMemoryKeys()
	status, calls := http.StatusCreated, 0
	h := Idempotency(keys, time.Minute, catalog, i18n.German)(countingHandler(&status, &calls))

	assert.Equal(t, http.StatusCreated, post(h, "k1").Code)
	dup := post(h, "k1")
	assert.Equal(t, http.StatusConflict, dup.Code)
	assert.Contains(t, dup.Body.String(), `"success":false`)
	assert.Equal(t, 1, calls)

	assert.Equal(t, http.StatusCreated, post(h, "k2").Code)
	assert.Equal(t, 2, calls)
}

func TestIdempotency_ReleasesKeyOnServerError(t *testing.T) {
	keys := newMemoryKeys()
	status, calls := http.StatusInternalServerError, 0
	h := Idempotency(keys, time.Minute, catalog, i18n.German)(countingHandler(&status, &calls))

	assert.Equal(t, http.StatusInternalServerError, post(h, "k1").Code)
	require.Len(t, keys.deleted, 1)

	status = http.StatusCreated
	assert.Equal(t, http.StatusCreated, post(h, "k1").Code)
	assert.Equal(t, 2, calls)
}

func TestIdempotency_ReleasesKeyOnPanic(t *testing.T) {
	keys := newMemoryKeys()
	panicking := true
	inner := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if panicking {
			panic("store exploded")
		}
		w.WriteHeader(http.StatusCreated)
	})
	h := RecoveryMiddleware(Idempotency(keys, time.Minute, catalog, i18n.German)(inner))

	assert.Equal(t, http.StatusInternalServerError, post(h, "k1").Code)
	require.Len(t, keys.deleted, 1)

	panicking = false
	assert.Equal(t, http.StatusCreated, post(h, "k1").Code)
}

func TestIdempotency_KeepsKeyOnClientError(t *testing.T) {
	keys := newMemoryKeys()
	status, calls := http.StatusBadRequest, 0
	h := Idempotency(keys, time.Minute, catalog, i18n.German)(countingHandler(&status, &calls))

	post(h, "k1")
	assert.Empty(t, keys.deleted)
	assert.Equal(t, http.StatusConflict, post(h, "k1").Code)
}

func TestIdempotency_PassThrough(t *testing.T) {
	status, calls := http.StatusCreated, 0

	t.Run("no header", func(t *testing.T) {
		h := Idempotency(newMemoryKeys(), time.Minute, catalog, i18n.German)(countingHandler(&status, &calls))
		post(h, "")
		post(h, "")
		assert.Equal(t, 2, calls)
	})

	t.Run("nil store", func(t *testing.T) {
		calls = 0
		h := Idempotency(nil, time.Minute, catalog, i18n.German)(countingHandler(&status, &calls))
		post(h, "k1")
		post(h, "k1")
		assert.Equal(t, 2, calls)
	})

	t.Run("redis down", func(t *testing.T) {
		calls = 0
		keys := newMemoryKeys()
		keys.setErr = errors.New("connection refused")
		h := Idempotency(keys, time.Minute, catalog, i18n.German)(countingHandler(&status, &calls))
		assert.Equal(t, http.StatusCreated, post(h, "k1").Code)
		assert.Equal(t, 1, calls)
	})
}
