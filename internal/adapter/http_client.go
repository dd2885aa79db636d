// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Adi Prasetyo

package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/aprasetyo/go-data-pengguna/internal/utils"
	"github.com/aprasetyo/go-data-pengguna/models"
)

type HTTPClientConfig struct {
	BaseURL string
	Timeout time.Duration
}

type httpServerAdapter struct {
	client *utils.HTTPClient
}

func NewHTTPServerAdapter(cfg HTTPClientConfig) ServerAdapter {
	if cfg.BaseURL == "" {
		cfg.BaseURL = "http://localhost:8080"
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 15 * time.Second
	}

	cli := utils.NewHTTPClient()
	cli.SetBaseURL(strings.TrimRight(cfg.BaseURL, "/")).
		SetTimeout(cfg.Timeout)

	return &httpServerAdapter{client: cli}
}

func (h *httpServerAdapter) List(ctx context.Context, page int) (models.Page, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetQueryParam("page", strconv.Itoa(page)).
		Get("/api/pengguna")
	if err != nil {
		return models.Page{}, fmt.Errorf("list request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Page{}, err
	}

	var listResp models.ListResponse
	if err = json.Unmarshal(resp.Body(), &listResp); err != nil {
		return models.Page{}, fmt.Errorf("list decode response: %w", err)
	}

	return models.Page{Items: listResp.Items, Number: page, Total: listResp.Total}, nil
}

func (h *httpServerAdapter) ListAll(ctx context.Context) ([]models.Pengguna, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		Get("/api/pengguna/all")
	if err != nil {
		return nil, fmt.Errorf("list all request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	var listResp models.ListResponse
	if err = json.Unmarshal(resp.Body(), &listResp); err != nil {
		return nil, fmt.Errorf("list all decode response: %w", err)
	}

	return listResp.Items, nil
}

func (h *httpServerAdapter) Insert(ctx context.Context, record models.Pengguna) (models.Pengguna, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(record).
		Post("/api/pengguna")
	if err != nil {
		return models.Pengguna{}, fmt.Errorf("insert request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Pengguna{}, err
	}

	var created models.Pengguna
	if err = json.Unmarshal(resp.Body(), &created); err != nil {
		return models.Pengguna{}, fmt.Errorf("insert decode response: %w", err)
	}

	return created, nil
}

func (h *httpServerAdapter) Update(ctx context.Context, record models.Pengguna) error {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(record).
		Put(fmt.Sprintf("/api/pengguna/%d", record.ID))
	if err != nil {
		return fmt.Errorf("update request: %w", err)
	}

	return mapHTTPError(resp)
}

func (h *httpServerAdapter) Delete(ctx context.Context, id int64) error {
	resp, err := h.client.R().
		SetContext(ctx).
		Delete(fmt.Sprintf("/api/pengguna/%d", id))
	if err != nil {
		return fmt.Errorf("delete request: %w", err)
	}

	return mapHTTPError(resp)
}
