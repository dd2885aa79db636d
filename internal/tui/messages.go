package tui

import (
	"github.com/aprasetyo/go-data-pengguna/models"
)

// penggunaListMsg carries one loaded page. The seq field identifies the
// request that produced it: the app model drops any message whose seq is
// older than the latest issued load, so a slow response can never
// overwrite a newer page.
type penggunaListMsg struct {
	seq  int
	page models.Page
	err  error
}

type penggunaSavedMsg struct {
	record  models.Pengguna
	created bool
	err     error
}

type penggunaDeletedMsg struct {
	id  int64
	err error
}

type exportDoneMsg struct {
	path string
	err  error
}

type copiedMsg struct{}

type clearStatusMsg struct{}
