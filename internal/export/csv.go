// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Adi Prasetyo

// Package export renders user records as CSV, the way spreadsheets expect
// them: a header row followed by one row per record, with fields containing
// commas, quotes or newlines quoted per RFC 4180.
package export

import (
	"bytes"
	"encoding/csv"
	"fmt"

	"github.com/aprasetyo/go-data-pengguna/models"
)

// FileName is the default name of the exported file.
const FileName = "data_pengguna.csv"

// header is the fixed column order of the export.
var header = []string{"Nama", "Alamat", "Telepon", "Kategori", "Tipe", "Tanggal"}

// CSV renders all records into one CSV document. Dates are truncated to
// their date-only form. The result always contains the header row, even
// for an empty record set.
func CSV(records []models.Pengguna) ([]byte, error) {
	var buf bytes.Buffer

	w := csv.NewWriter(&buf)
	if err := w.Write(header); err != nil {
		return nil, fmt.Errorf("error writing csv header: %w", err)
	}

	for _, r := range records {
		row := []string{
			r.Nama,
			r.Alamat,
			r.Telepon,
			r.Kategori,
			r.Tipe,
			r.TanggalOnly(),
		}
		if err := w.Write(row); err != nil {
			return nil, fmt.Errorf("error writing csv row: %w", err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("error flushing csv: %w", err)
	}

	return buf.Bytes(), nil
}
