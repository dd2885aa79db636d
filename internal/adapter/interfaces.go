// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Adi Prasetyo

// Package adapter provides transport-layer abstractions for communicating
// with the data-pengguna server.
//
// The primary abstraction is [ServerAdapter], which decouples the client
// service layer from the underlying protocol. The package ships an HTTP/REST
// implementation ([NewHTTPServerAdapter]).
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic
// error handling (e.g. [ErrNotFound] for 404, [ErrBadRequest] for 400).
package adapter

import (
	"context"

	"github.com/aprasetyo/go-data-pengguna/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/server_adapter_mock.go -package=mock

// ServerAdapter defines transport-agnostic communication with the
// data-pengguna server. Implementations are responsible for serialisation
// and for mapping transport-level errors to the sentinel values defined in
// this package, preserving the server's human-readable message.
type ServerAdapter interface {
	// List retrieves one fixed-size page of records, ordered by id
	// ascending, together with the total record count.
	List(ctx context.Context, page int) (models.Page, error)

	// ListAll retrieves every record, ordered by id ascending.
	ListAll(ctx context.Context) ([]models.Pengguna, error)

	// Insert stores a new record and returns it with the id the server
	// assigned.
	Insert(ctx context.Context, record models.Pengguna) (models.Pengguna, error)

	// Update overwrites all fields of the record with the matching id.
	Update(ctx context.Context, record models.Pengguna) error

	// Delete removes the record with the given id.
	Delete(ctx context.Context, id int64) error
}
