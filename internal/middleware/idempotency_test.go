package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tapwallet/walletd/internal/store"
)

func newCountingHandler(calls *int) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		*calls++
		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`{"success":true,"data":{"n":1}}`))
	})
}

func post(router http.Handler, key, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/api/v1/payments", strings.NewReader(body))
	if key != "" {
		req.Header.Set("Idempotency-Key", key)
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestIdempotencyReplaysCachedResponse(t *testing.T) {
	var calls int
	router := Idempotency(store.NewMemory())(newCountingHandler(&calls))

	first := post(router, "key-1", `{"amount":10}`)
	require.Equal(t, http.StatusCreated, first.Code)
	require.Equal(t, 1, calls)

	second := post(router, "key-1", `{"amount":10}`)
	require.Equal(t, http.StatusCreated, second.Code)
	assert.Equal(t, 1, calls, "handler must not run twice")
	assert.Equal(t, first.Body.String(), second.Body.String())
	assert.Equal(t, "true", second.Header().Get("X-Idempotent-Replayed"))
}

func TestIdempotencyRejectsKeyReuseWithDifferentBody(t *testing.T) {
	var calls int
	router := Idempotency(store.NewMemory())(newCountingHandler(&calls))

	post(router, "key-1", `{"amount":10}`)

	rec := post(router, "key-1", `{"amount":999}`)
	require.Equal(t, http.StatusConflict, rec.Code)
	assert.Contains(t, rec.Body.String(), "IDEMPOTENCY_CONFLICT")
	assert.Equal(t, 1, calls)
}

func TestIdempotencyRequiresKey(t *testing.T) {
	var calls int
	router := Idempotency(store.NewMemory())(newCountingHandler(&calls))

	rec := post(router, "", `{"amount":10}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "MISSING_IDEMPOTENCY_KEY")
	assert.Equal(t, 0, calls)
}

func TestIdempotencySkipsReads(t *testing.T) {
	var calls int
	router := Idempotency(store.NewMemory())(newCountingHandler(&calls))

	req := httptest.NewRequest(http.MethodGet, "/api/v1/cards", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, 1, calls, "GET passes through without a key")
}
