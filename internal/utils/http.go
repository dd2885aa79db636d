// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Adi Prasetyo

// Package utils holds small helpers shared between the HTTP handler and
// the client adapter.
package utils

import (
	"encoding/json"
	"fmt"
	"net/http"
)

// WriteJSON marshals data and writes it as an application/json response
// with the given status code. On marshalling failure it writes a 500
// instead and returns the error.
func WriteJSON(w http.ResponseWriter, data any, statusCode int) (int, error) {
	jsonData, err := json.Marshal(data)
	if err != nil {
		http.Error(w, "error writing data to JSON", http.StatusInternalServerError)
		return 0, fmt.Errorf("error writing data to JSON: %w", err)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	return w.Write(jsonData)
}
