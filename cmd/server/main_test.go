package main

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCORSMiddleware(t *testing.T) {
	var reached bool
	handler := corsMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		reached = true
		w.WriteHeader(http.StatusTeapot)
	}))

	t.Run("preflight stops at the middleware", func(t *testing.T) {
		reached = false
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, httptest.NewRequest(http.MethodOptions, "/billsplit.v1.TipService/Calculate", nil))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.False(t, reached)
		assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
		assert.Contains(t, rec.Header().Get("Access-Control-Expose-Headers"), "X-Request-Id")
	})

	t.Run("other methods pass through", func(t *testing.T) {
		reached = false
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/billsplit.v1.TipService/Calculate", nil))

		assert.Equal(t, http.StatusTeapot, rec.Code)
		assert.True(t, reached)
	})
}
