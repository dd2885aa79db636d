// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Adi Prasetyo

package tui

import (
	"context"
	"fmt"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/aprasetyo/go-data-pengguna/internal/service"
	"github.com/aprasetyo/go-data-pengguna/models"
)

const (
	statusCreated = "✅ Data berhasil ditambahkan!"
	statusUpdated = "✅ Data berhasil diupdate!"
	statusDeleted = "✅ Data berhasil dihapus!"
	statusCopied  = "Disalin ke papan klip!"
)

// focusArea selects which half of the single-page layout receives key
// input: the form on top or the listing below it.
type focusArea int

const (
	areaForm focusArea = iota
	areaList
)

type appModel struct {
	ctx      context.Context
	services *service.ClientServices

	area focusArea
	form formModel
	list listModel

	showConfirm   bool
	confirm       confirmModel
	pendingDelete int64

	status    string
	statusErr bool

	// listSeq numbers list load requests; only the reply matching the
	// latest issued request may update the listing.
	listSeq int

	err error
}

func newAppModel(ctx context.Context, services *service.ClientServices) appModel {
	return appModel{
		ctx:      ctx,
		services: services,
		area:     areaForm,
		form:     newFormModel(),
		list:     newListModel(),
		listSeq:  1,
	}
}

func (m appModel) Init() tea.Cmd {
	return tea.Batch(m.list.spinner.Tick, m.cmdLoadPage(m.listSeq, 1))
}

func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if key.Matches(msg, keys.quit) {
			m.err = ErrUserQuit
			return m, tea.Quit
		}
		if m.showConfirm {
			return m.updateConfirm(msg)
		}
		if m.area == areaForm {
			return m.updateForm(msg)
		}
		return m.updateList(msg)

	case penggunaListMsg:
		if msg.seq != m.listSeq {
			// a newer load is already in flight
			return m, nil
		}
		m.list.loading = false
		if msg.err != nil {
			// a failed load empties the listing rather than showing
			// rows from a page the user already left
			m.list = m.list.setPage(models.Page{Number: m.list.page})
			m.setErrorf("Gagal mengambil data: %v", msg.err)
			return m, nil
		}
		m.list = m.list.setPage(msg.page)
		// a fresh page invalidates a stale load failure, but success
		// statuses survive the reload that follows a mutation
		if m.statusErr {
			m.status = ""
			m.statusErr = false
		}
		return m, nil

	case penggunaSavedMsg:
		m.form.submitting = false
		if msg.err != nil {
			if msg.created {
				m.setErrorf("Gagal menambahkan data: %v", msg.err)
			} else {
				m.setErrorf("Gagal mengupdate data: %v", msg.err)
			}
			return m, nil
		}
		if msg.created {
			m.setStatus(statusCreated)
		} else {
			m.setStatus(statusUpdated)
		}
		m.form = m.form.reset()
		return m.reload(cmdClearStatus())

	case penggunaDeletedMsg:
		m.pendingDelete = 0
		if msg.err != nil {
			m.setErrorf("Gagal menghapus data: %v", msg.err)
			return m, nil
		}
		m.setStatus(statusDeleted)
		// removing the record currently being edited leaves the form
		// bound to a row that no longer exists
		if m.form.isEditing() && *m.form.editingID == msg.id {
			m.form = m.form.reset()
		}
		return m.reload(cmdClearStatus())

	case exportDoneMsg:
		if msg.err != nil {
			m.setErrorf("Gagal mengekspor data: %v", msg.err)
			return m, nil
		}
		m.setStatus(fmt.Sprintf("✅ Data diekspor ke %s", msg.path))
		return m, cmdClearStatus()

	case copiedMsg:
		m.setStatus(statusCopied)
		return m, cmdClearStatus()

	case clearStatusMsg:
		if !m.statusErr {
			m.status = ""
		}
		return m, nil

	case spinner.TickMsg:
		if m.list.loading {
			var cmd tea.Cmd
			m.list.spinner, cmd = m.list.spinner.Update(msg)
			return m, cmd
		}
		return m, nil

	case tea.WindowSizeMsg:
		return m, nil
	}

	return m, nil
}

func (m appModel) updateConfirm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.yes):
		m.showConfirm = false
		if m.pendingDelete == 0 {
			return m, nil
		}
		return m, m.cmdDelete(m.pendingDelete)
	case key.Matches(msg, keys.no), key.Matches(msg, keys.esc):
		m.showConfirm = false
		m.pendingDelete = 0
	}
	return m, nil
}

func (m appModel) updateForm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.esc):
		if m.form.isEditing() {
			// cancel edit, back to an empty create form
			m.form = m.form.reset()
			m.status = ""
			return m, nil
		}
		m.area = areaList
		return m, nil

	case key.Matches(msg, keys.tab):
		m.form = m.form.focusNext()
		return m, nil

	case key.Matches(msg, keys.backtab):
		m.form = m.form.focusPrev()
		return m, nil

	case key.Matches(msg, keys.left) && isSelector(m.form.focus):
		m.form = m.form.cycleChoice(-1)
		return m, nil

	case key.Matches(msg, keys.right) && isSelector(m.form.focus):
		m.form = m.form.cycleChoice(1)
		return m, nil

	case key.Matches(msg, keys.enter):
		if m.form.submitting {
			return m, nil
		}
		draft := m.form.toDraft()
		if draft.Nama == "" || draft.Alamat == "" || draft.Telepon == "" {
			m.setErrorf("Nama, alamat, dan telepon wajib diisi")
			return m, nil
		}
		m.form.submitting = true
		m.status = ""
		m.statusErr = false
		return m, m.cmdSubmit(draft)
	}

	if isSelector(m.form.focus) {
		return m, nil
	}

	var cmd tea.Cmd
	in := m.form.inputs[m.form.focus]
	in, cmd = in.Update(msg)
	m.form.inputs[m.form.focus] = in
	return m, cmd
}

func (m appModel) updateList(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.up):
		if m.list.idx > 0 {
			m.list.idx--
		}

	case key.Matches(msg, keys.down):
		if m.list.idx < len(m.list.items)-1 {
			m.list.idx++
		}

	case key.Matches(msg, keys.enter), key.Matches(msg, keys.tab):
		m.area = areaForm

	case key.Matches(msg, keys.edit):
		item, ok := m.list.current()
		if !ok {
			return m, nil
		}
		m.form = newFormModel().loadDraft(models.DraftFromPengguna(item))
		m.area = areaForm
		m.status = ""

	case key.Matches(msg, keys.delete):
		item, ok := m.list.current()
		if !ok {
			return m, nil
		}
		m.showConfirm = true
		m.confirm.message = item.Nama
		m.pendingDelete = item.ID

	case key.Matches(msg, keys.copy):
		item, ok := m.list.current()
		if !ok {
			return m, nil
		}
		return m, cmdCopyToClipboard(copyValue(item))

	case key.Matches(msg, keys.prevPage):
		if m.list.page <= 1 {
			return m, nil
		}
		return m.loadPage(m.list.page - 1)

	case key.Matches(msg, keys.nextPage):
		return m.loadPage(m.list.page + 1)

	case key.Matches(msg, keys.export):
		return m, m.cmdExport()

	case msg.String() == "q":
		m.err = ErrUserQuit
		return m, tea.Quit
	}

	return m, nil
}

// loadPage issues a new list load with a fresh sequence number.
func (m appModel) loadPage(page int) (tea.Model, tea.Cmd) {
	if page < 1 {
		page = 1
	}
	m.listSeq++
	m.list.loading = true
	return m, tea.Batch(m.list.spinner.Tick, m.cmdLoadPage(m.listSeq, page))
}

// reload refreshes the current page, batching extra commands.
func (m appModel) reload(extra ...tea.Cmd) (tea.Model, tea.Cmd) {
	m.listSeq++
	m.list.loading = true
	cmds := append([]tea.Cmd{m.list.spinner.Tick, m.cmdLoadPage(m.listSeq, m.list.page)}, extra...)
	return m, tea.Batch(cmds...)
}

func (m *appModel) setStatus(message string) {
	m.status = message
	m.statusErr = false
}

func (m *appModel) setErrorf(format string, args ...any) {
	m.status = "❌ " + fmt.Sprintf(format, args...)
	m.statusErr = true
}

func (m appModel) View() string {
	body := m.form.View()
	body += "\n" + m.list.View(m.area == areaList)

	if m.status != "" {
		style := statusOKStyle
		if m.statusErr {
			style = statusErrStyle
		}
		body += "\n" + style.Render(m.status) + "\n"
	}

	if m.area == areaForm {
		body += "\n" + helpStyle.Render("tab bidang berikutnya  enter simpan  esc "+escHint(m.form))
	} else {
		body += "\n" + helpStyle.Render("e ubah  d hapus  c salin  h/l halaman  x ekspor  enter ke formulir  q keluar")
	}

	if m.showConfirm {
		body += "\n\n" + m.confirm.View()
	}

	return appStyle.Render(body)
}

func escHint(form formModel) string {
	if form.isEditing() {
		return "batal ubah"
	}
	return "ke daftar"
}

// ── commands ─────────────────────────────────────────────────────────────────

func (m appModel) cmdLoadPage(seq, page int) tea.Cmd {
	ctx := m.ctx
	svc := m.services.PenggunaService
	return func() tea.Msg {
		result, err := svc.ListPage(ctx, page)
		return penggunaListMsg{seq: seq, page: result, err: err}
	}
}

func (m appModel) cmdSubmit(draft models.Draft) tea.Cmd {
	ctx := m.ctx
	svc := m.services.PenggunaService
	created := draft.IsCreate()
	return func() tea.Msg {
		record, err := svc.Submit(ctx, draft)
		return penggunaSavedMsg{record: record, created: created, err: err}
	}
}

func (m appModel) cmdDelete(id int64) tea.Cmd {
	ctx := m.ctx
	svc := m.services.PenggunaService
	return func() tea.Msg {
		err := svc.Delete(ctx, id)
		return penggunaDeletedMsg{id: id, err: err}
	}
}

func (m appModel) cmdExport() tea.Cmd {
	ctx := m.ctx
	svc := m.services.ExportService
	return func() tea.Msg {
		path, err := svc.ExportAllAsCSV(ctx)
		return exportDoneMsg{path: path, err: err}
	}
}

func cmdCopyToClipboard(text string) tea.Cmd {
	return func() tea.Msg {
		if err := clipboard.WriteAll(text); err != nil {
			return exportDoneMsg{err: fmt.Errorf("salin ke papan klip: %w", err)}
		}
		return copiedMsg{}
	}
}

func cmdClearStatus() tea.Cmd {
	return tea.Tick(3*time.Second, func(time.Time) tea.Msg {
		return clearStatusMsg{}
	})
}

// copyValue renders one record as a single tab-separated line for the
// clipboard.
func copyValue(item models.Pengguna) string {
	return fmt.Sprintf("%s\t%s\t%s\t%s\t%s\t%s",
		item.Nama, item.Alamat, item.Telepon, item.Kategori, item.Tipe, item.TanggalOnly())
}
