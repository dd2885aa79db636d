package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aprasetyo/go-data-pengguna/models"
)

func TestExportCSV_Success(t *testing.T) {
	svc := &mockPenggunaSvc{
		listAllFn: func(_ context.Context) ([]models.Pengguna, error) {
			return []models.Pengguna{
				{ID: 1, Nama: "Budi", Alamat: "Jl. Mawar 1", Telepon: "0812", Kategori: "Perorangan", Tipe: "Nonreferal", Tanggal: "2024-01-05"},
			}, nil
		},
	}

	router := newTestHandler(t, svc).Init()
	req := httptest.NewRequest(http.MethodGet, "/api/pengguna/export", nil)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "text/csv; charset=utf-8", rec.Header().Get("Content-Type"))
	assert.Contains(t, rec.Header().Get("Content-Disposition"), `"data_pengguna.csv"`)

	body := rec.Body.String()
	assert.Contains(t, body, "Nama,Alamat,Telepon,Kategori,Tipe,Tanggal")
	assert.Contains(t, body, "Budi,Jl. Mawar 1,0812,Perorangan,Nonreferal,2024-01-05")
}

func TestExportCSV_StorageError(t *testing.T) {
	svc := &mockPenggunaSvc{
		listAllFn: func(_ context.Context) ([]models.Pengguna, error) {
			return nil, assert.AnError
		},
	}

	router := newTestHandler(t, svc).Init()
	req := httptest.NewRequest(http.MethodGet, "/api/pengguna/export", nil)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
