package http

import (
	"errors"
	"net/http"

	"github.com/aprasetyo/go-data-pengguna/internal/service"
	"github.com/aprasetyo/go-data-pengguna/internal/store"
)

var errorStatusMap = map[error]int{
	service.ErrInvalidDataProvided: http.StatusBadRequest,

	store.ErrPenggunaNotFound:    http.StatusNotFound,
	store.ErrPenggunaNotSaved:    http.StatusInternalServerError,
	store.ErrConstraintViolation: http.StatusBadRequest,

	store.ErrBuildingSQLQuery:   http.StatusInternalServerError,
	store.ErrExecutingQuery:     http.StatusInternalServerError,
	store.ErrExecutingStatement: http.StatusInternalServerError,
	store.ErrScanningRow:        http.StatusInternalServerError,
	store.ErrScanningRows:       http.StatusInternalServerError,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}
