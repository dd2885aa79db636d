package utils

import (
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteJSON_Success(t *testing.T) {
	rec := httptest.NewRecorder()

	n, err := WriteJSON(rec, map[string]string{"status": "ok"}, 201)
	require.NoError(t, err)
	assert.Positive(t, n)

	assert.Equal(t, 201, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}

func TestWriteJSON_MarshalError(t *testing.T) {
	rec := httptest.NewRecorder()

	_, err := WriteJSON(rec, func() {}, 200) // funcs cannot be marshalled
	require.Error(t, err)
	assert.Equal(t, 500, rec.Code)
}
