package validators

import (
	"context"
	"time"

	"github.com/aprasetyo/go-data-pengguna/models"
)

// Field name constants used to specify which fields should be validated.
// These constants are passed to Validate to restrict validation to a
// subset of fields (field-level scoping).
const (
	// FieldID targets the database-assigned record identifier.
	FieldID = "id"

	// FieldNama targets the person or merchant name of a record.
	FieldNama = "nama_pengguna"

	// FieldAlamat targets the address field of a record.
	FieldAlamat = "alamat"

	// FieldTelepon targets the phone number field of a record.
	FieldTelepon = "telepon"

	// FieldKategori targets the category field (Perorangan or Pedagang).
	FieldKategori = "kategori"

	// FieldTipe targets the referral type field (Nonreferal or Referal).
	FieldTipe = "tipe"

	// FieldTanggal targets the registration date field.
	FieldTanggal = "tanggal"
)

// PenggunaValidator implements the Validator interface for the Pengguna
// domain model, for both value and pointer receivers, with optional
// field-level scoping via variadic field name arguments.
type PenggunaValidator struct {
}

// NewPenggunaValidator constructs a new PenggunaValidator
// and returns it as the Validator interface.
func NewPenggunaValidator() Validator {
	return &PenggunaValidator{}
}

// Validate dispatches validation to the appropriate type-specific method.
func (v *PenggunaValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.Pengguna:
		return v.validatePengguna(ctx, value, fields...)
	case *models.Pengguna:
		return v.validatePengguna(ctx, *value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *PenggunaValidator) validatePengguna(_ context.Context, record models.Pengguna, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldNama, FieldAlamat, FieldTelepon, FieldKategori, FieldTipe, FieldTanggal}
	}

	for _, f := range fields {
		switch f {
		case FieldID:
			if record.ID <= 0 {
				return ErrInvalidID
			}
		case FieldNama:
			if record.Nama == "" {
				return ErrEmptyNama
			}
		case FieldAlamat:
			if record.Alamat == "" {
				return ErrEmptyAlamat
			}
		case FieldTelepon:
			if record.Telepon == "" {
				return ErrEmptyTelepon
			}
		case FieldKategori:
			if !models.ValidKategori(record.Kategori) {
				return ErrInvalidKategori
			}
		case FieldTipe:
			if !models.ValidTipe(record.Tipe) {
				return ErrInvalidTipe
			}
		case FieldTanggal:
			if _, err := time.Parse(time.DateOnly, models.DateOnly(record.Tanggal)); err != nil {
				return ErrInvalidTanggal
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}
