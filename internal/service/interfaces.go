package service

import (
	"context"

	"github.com/aprasetyo/go-data-pengguna/models"
)

// PenggunaService is the server-side business layer over the record store.
// It validates and normalizes incoming records before they reach storage.
type PenggunaService interface {
	ListPage(ctx context.Context, page int) (models.Page, error)
	ListAll(ctx context.Context) ([]models.Pengguna, error)

	Create(ctx context.Context, record models.Pengguna) (models.Pengguna, error)
	Update(ctx context.Context, record models.Pengguna) error
	Delete(ctx context.Context, id int64) error
}
