// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Adi Prasetyo

package client

// Client is the minimal lifecycle contract a runnable client application
// satisfies.
type Client interface {
	// Run starts the application and blocks until the user exits.
	Run() error
}
