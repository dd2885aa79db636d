package http

import (
	"fmt"
	"net/http"

	"github.com/aprasetyo/go-data-pengguna/internal/export"
	"github.com/aprasetyo/go-data-pengguna/internal/logger"
)

// exportCSV handles GET /api/pengguna/export, streaming every record as a
// CSV attachment.
func (h *Handler) exportCSV(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	items, err := h.services.PenggunaService.ListAll(ctx)
	if err != nil {
		log.Err(err).Msg("error listing records for export")
		writeError(w, "error listing records for export", statusFromError(err))
		return
	}

	data, err := export.CSV(items)
	if err != nil {
		log.Err(err).Msg("error rendering csv")
		writeError(w, "error rendering csv", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", export.FileName))
	w.WriteHeader(http.StatusOK)
	w.Write(data)
}
