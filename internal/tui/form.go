// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Adi Prasetyo

package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"

	"github.com/aprasetyo/go-data-pengguna/models"
)

// form field indexes. Kategori and tipe are fixed-choice selectors, the
// rest are free-text inputs.
const (
	fieldNama = iota
	fieldAlamat
	fieldTelepon
	fieldKategori
	fieldTipe
	fieldTanggal
	fieldCount
)

var (
	kategoriOptions = []string{models.KategoriPerorangan, models.KategoriPedagang}
	tipeOptions     = []string{models.TipeNonreferal, models.TipeReferal}

	fieldLabels = [fieldCount]string{
		"Nama Pengguna",
		"Alamat",
		"Telepon",
		"Kategori",
		"Tipe",
		"Tanggal",
	}
)

// formModel is the create/edit form. It owns a draft id (nil for create
// mode) but keeps the field values in bubbles inputs until submit.
type formModel struct {
	inputs      map[int]textinput.Model
	kategoriIdx int
	tipeIdx     int
	focus       int
	editingID   *int64
	submitting  bool
}

func newFormModel() formModel {
	m := formModel{inputs: make(map[int]textinput.Model, 4)}

	for _, f := range []int{fieldNama, fieldAlamat, fieldTelepon, fieldTanggal} {
		in := textinput.New()
		in.Prompt = ""
		in.CharLimit = 120
		m.inputs[f] = in
	}

	tanggal := m.inputs[fieldTanggal]
	tanggal.Placeholder = "YYYY-MM-DD"
	tanggal.CharLimit = len("2006-01-02")
	m.inputs[fieldTanggal] = tanggal

	nama := m.inputs[fieldNama]
	nama.Focus()
	m.inputs[fieldNama] = nama

	return m
}

// isEditing reports whether the form is bound to an existing record.
func (m formModel) isEditing() bool {
	return m.editingID != nil
}

// toDraft snapshots the form into a draft for submission.
func (m formModel) toDraft() models.Draft {
	return models.Draft{
		ID:       m.editingID,
		Nama:     strings.TrimSpace(m.inputs[fieldNama].Value()),
		Alamat:   strings.TrimSpace(m.inputs[fieldAlamat].Value()),
		Telepon:  strings.TrimSpace(m.inputs[fieldTelepon].Value()),
		Kategori: kategoriOptions[m.kategoriIdx],
		Tipe:     tipeOptions[m.tipeIdx],
		Tanggal:  strings.TrimSpace(m.inputs[fieldTanggal].Value()),
	}
}

// loadDraft fills the form from a draft, for edit mode.
func (m formModel) loadDraft(draft models.Draft) formModel {
	m.setValue(fieldNama, draft.Nama)
	m.setValue(fieldAlamat, draft.Alamat)
	m.setValue(fieldTelepon, draft.Telepon)
	m.setValue(fieldTanggal, draft.Tanggal)
	m.kategoriIdx = indexOf(kategoriOptions, draft.Kategori)
	m.tipeIdx = indexOf(tipeOptions, draft.Tipe)
	m.editingID = draft.ID
	return m
}

// reset clears all fields back to an empty create-mode form.
func (m formModel) reset() formModel {
	fresh := newFormModel()
	fresh.focus = m.focus
	for f := range fresh.inputs {
		in := fresh.inputs[f]
		if f == fresh.focus {
			in.Focus()
		} else {
			in.Blur()
		}
		fresh.inputs[f] = in
	}
	return fresh
}

func (m formModel) setValue(field int, value string) {
	in := m.inputs[field]
	in.SetValue(value)
	m.inputs[field] = in
}

// isSelector reports whether the field is a fixed-choice selector rather
// than a text input.
func isSelector(field int) bool {
	return field == fieldKategori || field == fieldTipe
}

func (m formModel) focusNext() formModel {
	return m.setFocus((m.focus + 1) % fieldCount)
}

func (m formModel) focusPrev() formModel {
	return m.setFocus((m.focus - 1 + fieldCount) % fieldCount)
}

func (m formModel) setFocus(target int) formModel {
	if !isSelector(m.focus) {
		in := m.inputs[m.focus]
		in.Blur()
		m.inputs[m.focus] = in
	}
	m.focus = target
	if !isSelector(m.focus) {
		in := m.inputs[m.focus]
		in.Focus()
		m.inputs[m.focus] = in
	}
	return m
}

// cycleChoice moves the focused selector by delta, wrapping around.
func (m formModel) cycleChoice(delta int) formModel {
	switch m.focus {
	case fieldKategori:
		m.kategoriIdx = (m.kategoriIdx + delta + len(kategoriOptions)) % len(kategoriOptions)
	case fieldTipe:
		m.tipeIdx = (m.tipeIdx + delta + len(tipeOptions)) % len(tipeOptions)
	}
	return m
}

func indexOf(options []string, value string) int {
	for i, opt := range options {
		if opt == value {
			return i
		}
	}
	return 0
}

func (m formModel) View() string {
	title := "Tambah Data"
	if m.isEditing() {
		title = fmt.Sprintf("Ubah Data #%d", *m.editingID)
	}
	out := titleStyle.Render(title) + "\n"

	for f := 0; f < fieldCount; f++ {
		cursor := "  "
		if f == m.focus {
			cursor = "> "
		}

		var value string
		switch f {
		case fieldKategori:
			value = choiceView(kategoriOptions, m.kategoriIdx, f == m.focus)
		case fieldTipe:
			value = choiceView(tipeOptions, m.tipeIdx, f == m.focus)
		default:
			value = m.inputs[f].View()
		}

		out += fmt.Sprintf("%s%-14s %s\n", cursor, fieldLabels[f]+":", value)
	}

	if m.submitting {
		out += "\nMenyimpan...\n"
	}

	return out
}

func choiceView(options []string, idx int, focused bool) string {
	if focused {
		return "◀ " + options[idx] + " ▶"
	}
	return options[idx]
}
