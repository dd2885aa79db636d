package models

// Draft is the transient, client-held copy of a Pengguna record being
// created or edited. A nil ID means create mode; a non-nil ID binds the
// draft to the record with that identifier (edit mode).
//
// A Draft is never persisted directly. It only reaches the store through
// the insert/update operations of the remote adapter.
type Draft struct {
	ID       *int64
	Nama     string
	Alamat   string
	Telepon  string
	Kategori string
	Tipe     string
	Tanggal  string
}

// NewDraft returns an empty draft in create mode.
func NewDraft() Draft {
	return Draft{}
}

// DraftFromPengguna copies all fields of record into a new draft bound to
// the record's ID. Tanggal is normalized to its calendar-date part so the
// value can be re-edited as a plain date.
func DraftFromPengguna(record Pengguna) Draft {
	id := record.ID
	return Draft{
		ID:       &id,
		Nama:     record.Nama,
		Alamat:   record.Alamat,
		Telepon:  record.Telepon,
		Kategori: record.Kategori,
		Tipe:     record.Tipe,
		Tanggal:  record.TanggalOnly(),
	}
}

// IsCreate reports whether the draft is in create mode.
func (d *Draft) IsCreate() bool {
	return d.ID == nil
}

// Pengguna converts the draft to a Pengguna value. The ID is zero in
// create mode.
func (d *Draft) Pengguna() Pengguna {
	record := Pengguna{
		Nama:     d.Nama,
		Alamat:   d.Alamat,
		Telepon:  d.Telepon,
		Kategori: d.Kategori,
		Tipe:     d.Tipe,
		Tanggal:  d.Tanggal,
	}
	if d.ID != nil {
		record.ID = *d.ID
	}
	return record
}

// Reset clears the draft back to empty create mode.
func (d *Draft) Reset() {
	*d = Draft{}
}
