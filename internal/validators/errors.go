package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrEmptyNama       = errors.New("nama_pengguna is required")
	ErrEmptyAlamat     = errors.New("alamat is required")
	ErrEmptyTelepon    = errors.New("telepon is required")
	ErrInvalidKategori = errors.New("invalid kategori")
	ErrInvalidTipe     = errors.New("invalid tipe")
	ErrInvalidTanggal  = errors.New("invalid tanggal")
	ErrInvalidID       = errors.New("invalid id")
)
