package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLatencyMiddleware_Delays(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	wrapped := LatencyMiddleware(30 * time.Millisecond)(handler)

	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	w := httptest.NewRecorder()

	start := time.Now()
	wrapped.ServeHTTP(w, req)
	elapsed := time.Since(start)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.GreaterOrEqual(t, elapsed, 30*time.Millisecond)
}

func TestLatencyMiddleware_ZeroIsPassthrough(t *testing.T) {
	called := false
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	})

	wrapped := LatencyMiddleware(0)(handler)

	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	wrapped.ServeHTTP(httptest.NewRecorder(), req)

	assert.True(t, called)
}

func TestLatencyMiddleware_CanceledContext(t *testing.T) {
	called := false
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	})

	wrapped := LatencyMiddleware(time.Second)(handler)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	req := httptest.NewRequest(http.MethodGet, "/test", nil).WithContext(ctx)

	start := time.Now()
	wrapped.ServeHTTP(httptest.NewRecorder(), req)

	assert.False(t, called, "handler must not run after cancellation")
	assert.Less(t, time.Since(start), 500*time.Millisecond)
}
