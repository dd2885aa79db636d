package service

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/aprasetyo/go-data-pengguna/internal/adapter"
	"github.com/aprasetyo/go-data-pengguna/internal/config"
	"github.com/aprasetyo/go-data-pengguna/internal/logger"
	"github.com/aprasetyo/go-data-pengguna/internal/mock"
	"github.com/aprasetyo/go-data-pengguna/models"
)

func TestClientExportService_ExportAllAsCSV(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAdapter := mock.NewMockServerAdapter(ctrl)
	dir := t.TempDir()
	svc := NewClientExportService(mockAdapter, config.ClientExport{Dir: dir}, logger.Nop())

	ctx := context.Background()
	mockAdapter.EXPECT().
		ListAll(ctx).
		Return([]models.Pengguna{
			{ID: 1, Nama: "Budi, S.Kom", Alamat: "Jl. Mawar 1", Telepon: "0812", Kategori: "Perorangan", Tipe: "Nonreferal", Tanggal: "2024-01-05"},
		}, nil)

	path, err := svc.ExportAllAsCSV(ctx)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "data_pengguna.csv"), path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	content := string(data)
	assert.Contains(t, content, "Nama,Alamat,Telepon,Kategori,Tipe,Tanggal")
	assert.Contains(t, content, `"Budi, S.Kom"`)
}

func TestClientExportService_ExportAllAsCSV_ServerError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAdapter := mock.NewMockServerAdapter(ctrl)
	svc := NewClientExportService(mockAdapter, config.ClientExport{Dir: t.TempDir()}, logger.Nop())

	ctx := context.Background()
	mockAdapter.EXPECT().
		ListAll(ctx).
		Return(nil, adapter.ErrInternalServerError)

	_, err := svc.ExportAllAsCSV(ctx)
	require.ErrorIs(t, err, adapter.ErrInternalServerError)
}

func TestClientExportService_EmptyDirDefaultsToCurrent(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAdapter := mock.NewMockServerAdapter(ctrl)
	svc := NewClientExportService(mockAdapter, config.ClientExport{}, logger.Nop())

	// only the path logic is under test here, so swap the working directory
	// for a temp dir to avoid touching the repo
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(t.TempDir()))
	t.Cleanup(func() { os.Chdir(wd) })

	ctx := context.Background()
	mockAdapter.EXPECT().ListAll(ctx).Return(nil, nil)

	path, err := svc.ExportAllAsCSV(ctx)
	require.NoError(t, err)
	assert.Equal(t, "data_pengguna.csv", path)
}
