package store

import (
	"context"

	"github.com/aprasetyo/go-data-pengguna/models"
)

// PenggunaRepository is the persistence contract for the data_pengguna
// table. All reads are ordered by id ascending; pages are windowed with
// offset/limit and carry the exact total row count.
type PenggunaRepository interface {
	// ListPage returns one window over the table. Page numbers below 1
	// are treated as page 1; a window past the end of the table yields an
	// empty page, not an error.
	ListPage(ctx context.Context, page, size int) (models.Page, error)

	// ListAll returns the entire table ordered by id ascending.
	ListAll(ctx context.Context) ([]models.Pengguna, error)

	// Insert appends one row with all fields except ID and returns the
	// stored row with the assigned identifier.
	Insert(ctx context.Context, record models.Pengguna) (models.Pengguna, error)

	// Update mutates all fields of exactly one row identified by ID.
	// Returns ErrPenggunaNotFound when no row matches.
	Update(ctx context.Context, record models.Pengguna) error

	// Delete removes exactly one row identified by id.
	// Returns ErrPenggunaNotFound when no row matches.
	Delete(ctx context.Context, id int64) error
}
