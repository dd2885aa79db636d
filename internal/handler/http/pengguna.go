// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Adi Prasetyo

package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/aprasetyo/go-data-pengguna/internal/logger"
	"github.com/aprasetyo/go-data-pengguna/internal/utils"
	"github.com/aprasetyo/go-data-pengguna/models"
)

// listPage handles GET /api/pengguna?page=N. A missing or malformed page
// parameter means the first page.
func (h *Handler) listPage(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	page := 1
	if raw := r.URL.Query().Get("page"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			log.Err(err).Str("page", raw).Msg("invalid page parameter")
			writeError(w, "invalid page parameter", http.StatusBadRequest)
			return
		}
		page = parsed
	}

	result, err := h.services.PenggunaService.ListPage(ctx, page)
	if err != nil {
		log.Err(err).Int("page", page).Msg("error listing records")
		writeError(w, "error listing records", statusFromError(err))
		return
	}

	utils.WriteJSON(w, models.ListResponse{Items: result.Items, Total: result.Total}, http.StatusOK)
}

// listAll handles GET /api/pengguna/all, returning every record.
func (h *Handler) listAll(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	items, err := h.services.PenggunaService.ListAll(ctx)
	if err != nil {
		log.Err(err).Msg("error listing all records")
		writeError(w, "error listing all records", statusFromError(err))
		return
	}

	utils.WriteJSON(w, models.ListResponse{Items: items, Total: int64(len(items))}, http.StatusOK)
}

// create handles POST /api/pengguna and returns the stored record with
// its assigned id.
func (h *Handler) create(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var record models.Pengguna
	if err := json.NewDecoder(r.Body).Decode(&record); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		writeError(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	created, err := h.services.PenggunaService.Create(ctx, record)
	if err != nil {
		log.Err(err).Msg("error creating record")
		writeError(w, "error creating record", statusFromError(err))
		return
	}

	log.Debug().Int64("id", created.ID).Msg("record created")
	utils.WriteJSON(w, created, http.StatusCreated)
}

// update handles PUT /api/pengguna/{id}, overwriting all fields of one record.
func (h *Handler) update(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		log.Err(err).Msg("invalid id parameter")
		writeError(w, "invalid id parameter", http.StatusBadRequest)
		return
	}

	var record models.Pengguna
	if err = json.NewDecoder(r.Body).Decode(&record); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		writeError(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}
	record.ID = id

	if err = h.services.PenggunaService.Update(ctx, record); err != nil {
		log.Err(err).Int64("id", id).Msg("error updating record")
		writeError(w, "error updating record", statusFromError(err))
		return
	}

	log.Debug().Int64("id", id).Msg("record updated")
	w.WriteHeader(http.StatusOK)
}

// delete handles DELETE /api/pengguna/{id}.
func (h *Handler) delete(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		log.Err(err).Msg("invalid id parameter")
		writeError(w, "invalid id parameter", http.StatusBadRequest)
		return
	}

	if err = h.services.PenggunaService.Delete(ctx, id); err != nil {
		log.Err(err).Int64("id", id).Msg("error deleting record")
		writeError(w, "error deleting record", statusFromError(err))
		return
	}

	log.Debug().Int64("id", id).Msg("record deleted")
	w.WriteHeader(http.StatusOK)
}

// writeError answers with a JSON error body so that clients can surface
// the message on their status line.
func writeError(w http.ResponseWriter, msg string, statusCode int) {
	utils.WriteJSON(w, models.ErrorResponse{Error: msg}, statusCode)
}
