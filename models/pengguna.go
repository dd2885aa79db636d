// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Adi Prasetyo

package models

import "time"

// Kategori values accepted for a Pengguna record.
const (
	KategoriPerorangan = "Perorangan"
	KategoriPedagang   = "Pedagang"
)

// Tipe values accepted for a Pengguna record.
const (
	TipeNonreferal = "Nonreferal"
	TipeReferal    = "Referal"
)

// Pengguna represents a single row of the "data_pengguna" table.
// It is the sole persisted entity of the application.
type Pengguna struct {
	// ID is the unique identifier assigned by the store.
	// Zero until the record is first persisted.
	ID int64 `json:"id"`

	// Nama is the display name of the record. Required.
	Nama string `json:"nama_pengguna"`

	// Alamat is the postal address. Required.
	Alamat string `json:"alamat"`

	// Telepon is the phone number. Required since schema version 2.
	Telepon string `json:"telepon"`

	// Kategori is one of the Kategori* constants. Required.
	Kategori string `json:"kategori"`

	// Tipe is one of the Tipe* constants. Required.
	Tipe string `json:"tipe"`

	// Tanggal is an ISO-like date/time value. Only the calendar-date part
	// (first 10 characters) is ever displayed, edited, or exported.
	Tanggal string `json:"tanggal"`
}

// TableName returns the name of the database table
// associated with the Pengguna model.
func (p *Pengguna) TableName() string {
	return "data_pengguna"
}

// TanggalOnly returns the calendar-date portion of Tanggal.
// Values shorter than 10 characters are returned as-is.
func (p *Pengguna) TanggalOnly() string {
	return DateOnly(p.Tanggal)
}

// DateOnly truncates an ISO-like date/time string to its first 10
// characters ("2006-01-02").
func DateOnly(v string) string {
	if len(v) > len(time.DateOnly) {
		return v[:len(time.DateOnly)]
	}
	return v
}

// ValidKategori reports whether v is an accepted Kategori value.
func ValidKategori(v string) bool {
	return v == KategoriPerorangan || v == KategoriPedagang
}

// ValidTipe reports whether v is an accepted Tipe value.
func ValidTipe(v string) bool {
	return v == TipeNonreferal || v == TipeReferal
}
