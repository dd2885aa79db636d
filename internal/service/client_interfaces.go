package service

import (
	"context"

	"github.com/aprasetyo/go-data-pengguna/models"
)

// ClientPenggunaService is the client-side business layer over the remote
// server. It validates drafts before they leave the client and keeps the
// paging rules in one place.
type ClientPenggunaService interface {
	// ListPage retrieves one fixed-size page of records from the server.
	ListPage(ctx context.Context, page int) (models.Page, error)

	// Submit sends the draft to the server: a draft without an id becomes a
	// create, a draft with an id becomes a full-record update. The returned
	// record carries the server-assigned id on create.
	Submit(ctx context.Context, draft models.Draft) (models.Pengguna, error)

	// Delete removes the record with the given id on the server.
	Delete(ctx context.Context, id int64) error
}

// ClientExportService exports the full record set to a CSV file on the
// local filesystem.
type ClientExportService interface {
	// ExportAllAsCSV fetches every record from the server, renders it as
	// CSV and writes it to the configured export directory. It returns the
	// path of the written file.
	ExportAllAsCSV(ctx context.Context) (string, error)
}
