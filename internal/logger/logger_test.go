package logger

import (
	"context"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLogger_NotNil(t *testing.T) {
	l := NewLogger("test-role")
	require.NotNil(t, l)
}

func TestNop_DiscardsOutput(t *testing.T) {
	l := Nop()
	require.NotNil(t, l)

	// Must not panic on a discarded logger.
	l.Info().Str("k", "v").Msg("dropped")
}

func TestFromContext_NoLoggerAttached(t *testing.T) {
	l := FromContext(context.Background())
	assert.NotNil(t, l)
}

func TestFromContext_RoundTrip(t *testing.T) {
	parent := Nop()
	ctx := parent.WithContext(context.Background())

	got := FromContext(ctx)
	require.NotNil(t, got)
	assert.Equal(t, parent.GetLevel(), got.GetLevel())
}

func TestFromRequest_NoLoggerAttached(t *testing.T) {
	r := httptest.NewRequest("GET", "/api/pengguna", nil)
	l := FromRequest(r)
	assert.NotNil(t, l)
}
