// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Adi Prasetyo

package tui

import (
	"context"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/aprasetyo/go-data-pengguna/internal/config"
	"github.com/aprasetyo/go-data-pengguna/internal/logger"
	"github.com/aprasetyo/go-data-pengguna/internal/mock"
	"github.com/aprasetyo/go-data-pengguna/internal/service"
	"github.com/aprasetyo/go-data-pengguna/models"
)

func newTestApp(t *testing.T, ctrl *gomock.Controller) (appModel, *mock.MockServerAdapter) {
	t.Helper()
	mockAdapter := mock.NewMockServerAdapter(ctrl)
	services := service.NewClientServices(mockAdapter, config.ClientConfig{
		Export: config.ClientExport{Dir: t.TempDir()},
	}, logger.Nop())
	return newAppModel(context.Background(), services), mockAdapter
}

func keyRune(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

// runCmds executes a command tree (including batches) and feeds every
// resulting message back into the model, returning the final model.
func runCmds(t *testing.T, m tea.Model, cmd tea.Cmd) tea.Model {
	t.Helper()
	if cmd == nil {
		return m
	}
	msg := cmd()
	if batch, ok := msg.(tea.BatchMsg); ok {
		for _, c := range batch {
			m = runCmds(t, m, c)
		}
		return m
	}
	m, _ = m.Update(msg)
	return m
}

func pageOf(number int, total int64, items ...models.Pengguna) models.Page {
	return models.Page{Items: items, Number: number, Total: total}
}

func TestListMsg_PopulatesListing(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	m, _ := newTestApp(t, ctrl)

	updated, _ := m.Update(penggunaListMsg{
		seq:  m.listSeq,
		page: pageOf(1, 2, models.Pengguna{ID: 1, Nama: "Budi"}, models.Pengguna{ID: 2, Nama: "Siti"}),
	})

	app := updated.(appModel)
	assert.False(t, app.list.loading)
	assert.Len(t, app.list.items, 2)
	assert.Equal(t, int64(2), app.list.total)
}

func TestListMsg_StaleResponseDropped(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	m, mockAdapter := newTestApp(t, ctrl)
	m.area = areaList
	m.list.page = 1

	// moving to page 2 bumps the sequence number past the in-flight load
	mockAdapter.EXPECT().List(gomock.Any(), 2).Return(pageOf(2, 7, models.Pengguna{ID: 6, Nama: "Fajar"}), nil)

	updated, cmd := m.Update(keyRune('l'))
	app := runCmds(t, updated, cmd).(appModel)
	require.Equal(t, 2, app.list.page)

	// the slow reply for the old request must not clobber page 2
	stale, _ := app.Update(penggunaListMsg{
		seq:  app.listSeq - 1,
		page: pageOf(1, 7, models.Pengguna{ID: 1, Nama: "Budi"}),
	})

	app = stale.(appModel)
	assert.Equal(t, 2, app.list.page)
	require.Len(t, app.list.items, 1)
	assert.Equal(t, "Fajar", app.list.items[0].Nama)
}

func TestListMsg_ErrorGoesToStatusLine(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	m, _ := newTestApp(t, ctrl)
	m.list.items = []models.Pengguna{{ID: 1, Nama: "Budi"}}

	updated, _ := m.Update(penggunaListMsg{seq: m.listSeq, err: assert.AnError})

	app := updated.(appModel)
	assert.True(t, app.statusErr)
	assert.Contains(t, app.status, "❌ Gagal mengambil data")
	assert.Empty(t, app.list.items, "a failed load empties the listing")
}

func TestSubmit_CreateSuccessClearsFormAndReloads(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	m, mockAdapter := newTestApp(t, ctrl)
	m.form = m.form.loadDraft(models.Draft{
		Nama: "Budi", Alamat: "Jl. Mawar 1", Telepon: "081234567890",
		Kategori: models.KategoriPerorangan, Tipe: models.TipeNonreferal,
		Tanggal: "2024-01-05",
	})

	mockAdapter.EXPECT().
		Insert(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, record models.Pengguna) (models.Pengguna, error) {
			record.ID = 42
			return record, nil
		})

	updated, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	app := updated.(appModel)
	require.True(t, app.form.submitting)
	require.NotNil(t, cmd)

	saved, _ := app.Update(cmd())
	app = saved.(appModel)

	assert.False(t, app.form.submitting)
	assert.Equal(t, statusCreated, app.status)
	assert.False(t, app.statusErr)
	assert.Empty(t, app.form.inputs[fieldNama].Value(), "form must be cleared after create")
	assert.False(t, app.form.isEditing())
}

func TestSubmit_UpdateSuccessSetsUpdatedStatus(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	m, mockAdapter := newTestApp(t, ctrl)
	id := int64(5)
	m.form = m.form.loadDraft(models.Draft{
		ID: &id, Nama: "Siti", Alamat: "Jl. Melati 2", Telepon: "081298765432",
		Kategori: models.KategoriPedagang, Tipe: models.TipeReferal,
		Tanggal: "2024-01-06",
	})

	mockAdapter.EXPECT().Update(gomock.Any(), gomock.Any()).Return(nil)

	updated, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)
	saved, _ := updated.Update(cmd())
	app := saved.(appModel)

	assert.Equal(t, statusUpdated, app.status)
	assert.False(t, app.form.isEditing(), "form returns to create mode after update")
}

func TestSubmit_EmptyRequiredFieldsRejectedLocally(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	m, _ := newTestApp(t, ctrl)

	updated, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})

	app := updated.(appModel)
	assert.Nil(t, cmd)
	assert.True(t, app.statusErr)
	assert.Contains(t, app.status, "wajib diisi")
}

func TestSubmit_EmptyTeleponRejectedLocally(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	m, _ := newTestApp(t, ctrl) // no adapter expectations: any call fails the test
	m.form = m.form.loadDraft(models.Draft{
		Nama: "Budi", Alamat: "Jl. Mawar 1", Kategori: models.KategoriPerorangan,
		Tipe: models.TipeNonreferal, Tanggal: "2024-01-05",
	})

	updated, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})

	app := updated.(appModel)
	assert.Nil(t, cmd)
	assert.True(t, app.statusErr)
	assert.Contains(t, app.status, "telepon wajib diisi")
	assert.Equal(t, "Budi", app.form.inputs[fieldNama].Value(), "draft kept for retry")
}

func TestEdit_LoadsDraftWithTruncatedDate(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	m, _ := newTestApp(t, ctrl)
	m.area = areaList
	m.list.items = []models.Pengguna{{
		ID: 3, Nama: "Budi", Alamat: "Jl. Mawar 1", Kategori: models.KategoriPerorangan,
		Tipe: models.TipeNonreferal, Tanggal: "2024-01-05T00:00:00.000Z",
	}}

	updated, _ := m.Update(keyRune('e'))

	app := updated.(appModel)
	assert.Equal(t, areaForm, app.area)
	require.True(t, app.form.isEditing())
	assert.Equal(t, int64(3), *app.form.editingID)
	assert.Equal(t, "2024-01-05", app.form.inputs[fieldTanggal].Value())
}

func TestEscInEditMode_CancelsEdit(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	m, _ := newTestApp(t, ctrl)
	id := int64(3)
	m.form = m.form.loadDraft(models.Draft{ID: &id, Nama: "Budi"})

	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyEsc})

	app := updated.(appModel)
	assert.False(t, app.form.isEditing())
	assert.Empty(t, app.form.inputs[fieldNama].Value())
	assert.Equal(t, areaForm, app.area, "cancelling an edit keeps the form focused")
}

func TestDelete_DeclinedConfirmDoesNothing(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	m, _ := newTestApp(t, ctrl) // no Delete expectation: any call fails the test
	m.area = areaList
	m.list.items = []models.Pengguna{{ID: 7, Nama: "Budi"}}

	updated, _ := m.Update(keyRune('d'))
	app := updated.(appModel)
	require.True(t, app.showConfirm)
	assert.Equal(t, int64(7), app.pendingDelete)

	declined, cmd := app.Update(keyRune('n'))
	app = declined.(appModel)

	assert.Nil(t, cmd)
	assert.False(t, app.showConfirm)
	assert.Zero(t, app.pendingDelete)
}

func TestDelete_AcceptedConfirmDeletesAndReloads(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	m, mockAdapter := newTestApp(t, ctrl)
	m.area = areaList
	m.list.items = []models.Pengguna{{ID: 7, Nama: "Budi"}}

	mockAdapter.EXPECT().Delete(gomock.Any(), int64(7)).Return(nil)

	updated, _ := m.Update(keyRune('d'))
	app := updated.(appModel)

	accepted, cmd := app.Update(keyRune('y'))
	require.NotNil(t, cmd)
	deleted, _ := accepted.Update(cmd())
	app = deleted.(appModel)

	assert.Equal(t, statusDeleted, app.status)
	assert.Zero(t, app.pendingDelete)
}

func TestDelete_OfEditedRecordResetsForm(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	m, _ := newTestApp(t, ctrl)
	id := int64(7)
	m.form = m.form.loadDraft(models.Draft{ID: &id, Nama: "Budi"})

	updated, _ := m.Update(penggunaDeletedMsg{id: 7})

	app := updated.(appModel)
	assert.False(t, app.form.isEditing(), "editing a deleted record makes no sense")
	assert.Empty(t, app.form.inputs[fieldNama].Value())
}

func TestPaging_PrevPageFlooredAtOne(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	m, _ := newTestApp(t, ctrl) // no List expectation: any call fails the test
	m.area = areaList
	m.list.page = 1

	_, cmd := m.Update(keyRune('h'))
	assert.Nil(t, cmd)
}

func TestPaging_NextPageUnbounded(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	m, mockAdapter := newTestApp(t, ctrl)
	m.area = areaList
	m.list.page = 3
	m.list.total = 7 // past the last full page on purpose

	mockAdapter.EXPECT().List(gomock.Any(), 4).Return(pageOf(4, 7), nil)

	updated, cmd := m.Update(keyRune('l'))
	app := runCmds(t, updated, cmd).(appModel)

	assert.Equal(t, 4, app.list.page)
	assert.Empty(t, app.list.items)
}

func TestExport_SuccessShowsPathOnStatusLine(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	m, mockAdapter := newTestApp(t, ctrl)
	m.area = areaList

	mockAdapter.EXPECT().ListAll(gomock.Any()).Return([]models.Pengguna{{ID: 1, Nama: "Budi"}}, nil)

	updated, cmd := m.Update(keyRune('x'))
	require.NotNil(t, cmd)
	app := runCmds(t, updated, cmd).(appModel)

	assert.False(t, app.statusErr)
	assert.Contains(t, app.status, "data_pengguna.csv")
}

func TestClearStatus_KeepsErrors(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	m, _ := newTestApp(t, ctrl)
	m.setErrorf("Gagal memuat data")

	updated, _ := m.Update(clearStatusMsg{})
	app := updated.(appModel)
	assert.NotEmpty(t, app.status, "errors stay visible until the next action")

	app.setStatus(statusCreated)
	cleared, _ := app.Update(clearStatusMsg{})
	assert.Empty(t, cleared.(appModel).status)
}

func TestFormSelectors_CycleChoices(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	m, _ := newTestApp(t, ctrl)
	m.form = m.form.setFocus(fieldKategori)

	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyRight})
	app := updated.(appModel)
	assert.Equal(t, models.KategoriPedagang, app.form.toDraft().Kategori)

	updated, _ = app.Update(tea.KeyMsg{Type: tea.KeyRight})
	app = updated.(appModel)
	assert.Equal(t, models.KategoriPerorangan, app.form.toDraft().Kategori, "selector wraps around")
}
