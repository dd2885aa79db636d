// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Adi Prasetyo

package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/aprasetyo/go-data-pengguna/internal/adapter"
	"github.com/aprasetyo/go-data-pengguna/internal/logger"
	"github.com/aprasetyo/go-data-pengguna/internal/mock"
	"github.com/aprasetyo/go-data-pengguna/internal/validators"
	"github.com/aprasetyo/go-data-pengguna/models"
)

func newTestClientPenggunaSvc(t *testing.T, ctrl *gomock.Controller) (ClientPenggunaService, *mock.MockServerAdapter) {
	t.Helper()
	mockAdapter := mock.NewMockServerAdapter(ctrl)
	svc := NewClientPenggunaService(mockAdapter, logger.Nop())
	return svc, mockAdapter
}

func validDraft() models.Draft {
	return models.Draft{
		Nama:     "Budi Santoso",
		Alamat:   "Jl. Mawar No. 1",
		Telepon:  "081234567890",
		Kategori: models.KategoriPerorangan,
		Tipe:     models.TipeNonreferal,
		Tanggal:  "2024-01-05",
	}
}

// ── ListPage ─────────────────────────────────────────────────────────────────

func TestClientPenggunaService_ListPage(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAdapter := newTestClientPenggunaSvc(t, ctrl)
	ctx := context.Background()

	mockAdapter.EXPECT().
		List(ctx, 2).
		Return(models.Page{Number: 2, Total: 7}, nil)

	page, err := svc.ListPage(ctx, 2)
	require.NoError(t, err)
	assert.Equal(t, 2, page.Number)
	assert.Equal(t, int64(7), page.Total)
}

func TestClientPenggunaService_ListPage_ClampsBelowOne(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAdapter := newTestClientPenggunaSvc(t, ctrl)
	ctx := context.Background()

	mockAdapter.EXPECT().
		List(ctx, 1).
		Return(models.Page{Number: 1}, nil)

	_, err := svc.ListPage(ctx, 0)
	require.NoError(t, err)
}

// ── Submit ───────────────────────────────────────────────────────────────────

func TestClientPenggunaService_Submit_Create(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAdapter := newTestClientPenggunaSvc(t, ctrl)
	ctx := context.Background()

	mockAdapter.EXPECT().
		Insert(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, record models.Pengguna) (models.Pengguna, error) {
			assert.Zero(t, record.ID)
			record.ID = 42
			return record, nil
		})

	created, err := svc.Submit(ctx, validDraft())
	require.NoError(t, err)
	assert.Equal(t, int64(42), created.ID)
}

func TestClientPenggunaService_Submit_Update(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAdapter := newTestClientPenggunaSvc(t, ctrl)
	ctx := context.Background()

	id := int64(5)
	draft := validDraft()
	draft.ID = &id

	mockAdapter.EXPECT().
		Update(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, record models.Pengguna) error {
			assert.Equal(t, int64(5), record.ID)
			return nil
		})

	updated, err := svc.Submit(ctx, draft)
	require.NoError(t, err)
	assert.Equal(t, int64(5), updated.ID)
}

func TestClientPenggunaService_Submit_NormalizesTanggal(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAdapter := newTestClientPenggunaSvc(t, ctrl)
	ctx := context.Background()

	draft := validDraft()
	draft.Tanggal = "2024-01-05T00:00:00.000Z"

	mockAdapter.EXPECT().
		Insert(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, record models.Pengguna) (models.Pengguna, error) {
			assert.Equal(t, "2024-01-05", record.Tanggal)
			return record, nil
		})

	_, err := svc.Submit(ctx, draft)
	require.NoError(t, err)
}

func TestClientPenggunaService_Submit_InvalidDraftNeverReachesServer(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _ := newTestClientPenggunaSvc(t, ctrl)

	draft := validDraft()
	draft.Nama = ""

	_, err := svc.Submit(context.Background(), draft)
	require.ErrorIs(t, err, ErrInvalidDataProvided)
	// no Insert/Update expectation set: ctrl.Finish fails if the adapter is called
}

func TestClientPenggunaService_Submit_EmptyTeleponRejected(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _ := newTestClientPenggunaSvc(t, ctrl)

	draft := validDraft()
	draft.Telepon = ""

	_, err := svc.Submit(context.Background(), draft)
	require.ErrorIs(t, err, ErrInvalidDataProvided)
	require.ErrorIs(t, err, validators.ErrEmptyTelepon)
}

func TestClientPenggunaService_Submit_ServerErrorPassedThrough(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAdapter := newTestClientPenggunaSvc(t, ctrl)
	ctx := context.Background()

	mockAdapter.EXPECT().
		Insert(ctx, gomock.Any()).
		Return(models.Pengguna{}, adapter.ErrInternalServerError)

	_, err := svc.Submit(ctx, validDraft())
	require.ErrorIs(t, err, adapter.ErrInternalServerError)
}

// ── Delete ───────────────────────────────────────────────────────────────────

func TestClientPenggunaService_Delete(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAdapter := newTestClientPenggunaSvc(t, ctrl)
	ctx := context.Background()

	mockAdapter.EXPECT().Delete(ctx, int64(7)).Return(nil)

	require.NoError(t, svc.Delete(ctx, 7))
}

func TestClientPenggunaService_Delete_InvalidID(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _ := newTestClientPenggunaSvc(t, ctrl)

	err := svc.Delete(context.Background(), 0)
	require.ErrorIs(t, err, ErrInvalidDataProvided)
}

func TestClientPenggunaService_Delete_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAdapter := newTestClientPenggunaSvc(t, ctrl)
	ctx := context.Background()

	mockAdapter.EXPECT().Delete(ctx, int64(404)).Return(adapter.ErrNotFound)

	err := svc.Delete(ctx, 404)
	require.ErrorIs(t, err, adapter.ErrNotFound)
}
