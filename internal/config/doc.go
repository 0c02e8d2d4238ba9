// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package config provides configuration loading, merging, and validation
// facilities for the application.
//
// Configuration is assembled from multiple sources. Later sources override
// non-zero fields of earlier ones:
//  1. Config file (JSON or YAML), path taken from CONFIG or -c/-config
//  2. Environment variables, including a .env file in the working directory
//  3. Command-line flags
//
// Defaults are applied to whatever is still unset, then the result is
// validated. The entry point is [GetStructuredConfig].
package config
