package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/aprasetyo/go-data-pengguna/internal/logger"
)

func TestWithTraceID_GeneratesAndEchoesHeader(t *testing.T) {
	h := &Handler{logger: logger.Nop()}

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()

	h.withTraceID(next).ServeHTTP(rec, req)

	assert.NotEmpty(t, rec.Header().Get(traceIDHeader))
}

func TestWithTraceID_PreservesIncomingHeader(t *testing.T) {
	h := &Handler{logger: logger.Nop()}

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(traceIDHeader, "trace-abc")
	rec := httptest.NewRecorder()

	h.withTraceID(next).ServeHTTP(rec, req)

	assert.Equal(t, "trace-abc", rec.Header().Get(traceIDHeader))
}
