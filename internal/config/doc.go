// Package config provides configuration loading, merging, and validation
// for both go-data-pengguna binaries.
//
// Configuration is assembled from multiple sources in the following
// priority order (later sources override earlier non-zero fields):
//
//  1. Environment variables (caarlos0/env tags)
//  2. Command-line flags
//  3. An optional JSON file, whose path comes from sources 1 and 2
//
// The merged StructuredConfig is then narrowed to a ServerConfig or
// ClientConfig view, which applies defaults and validates only the fields
// the respective binary actually needs.
package config
