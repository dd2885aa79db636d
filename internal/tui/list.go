package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/spinner"

	"github.com/aprasetyo/go-data-pengguna/models"
)

type listModel struct {
	items   []models.Pengguna
	idx     int
	page    int
	total   int64
	loading bool
	spinner spinner.Model
}

func newListModel() listModel {
	s := spinner.New()
	s.Spinner = spinner.MiniDot
	return listModel{page: 1, loading: true, spinner: s}
}

func (m listModel) current() (models.Pengguna, bool) {
	if len(m.items) == 0 || m.idx < 0 || m.idx >= len(m.items) {
		return models.Pengguna{}, false
	}
	return m.items[m.idx], true
}

// setPage installs a freshly loaded page and clamps the cursor.
func (m listModel) setPage(page models.Page) listModel {
	m.items = page.Items
	m.page = page.Number
	m.total = page.Total
	m.loading = false
	if m.idx >= len(m.items) {
		m.idx = len(m.items) - 1
	}
	if m.idx < 0 {
		m.idx = 0
	}
	return m
}

func (m listModel) View(focused bool) string {
	header := titleStyle.Render("Data Pengguna")
	if m.loading {
		header += "  " + m.spinner.View()
	}
	out := header + "\n"

	switch {
	case m.loading && len(m.items) == 0:
		out += "Memuat...\n"
	case len(m.items) == 0:
		out += "Belum ada data\n"
	default:
		for i, item := range m.items {
			cursor := "  "
			if focused && i == m.idx {
				cursor = "> "
			}
			out += fmt.Sprintf("%s%d. %s — %s — %s — %s — %s — %s\n",
				cursor, item.ID, item.Nama, item.Alamat, item.Telepon,
				item.Kategori, item.Tipe, item.TanggalOnly())
		}
	}

	out += fmt.Sprintf("\nHalaman %d  (total %d data)\n", m.page, m.total)

	return out
}
