// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Adi Prasetyo

// Package client implements the interactive client application runtime.
//
// It wires the terminal UI and client services into a single process
// lifecycle with signal-driven shutdown.
package client
