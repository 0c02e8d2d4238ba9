// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package utils provides general-purpose helper utilities
// used across different parts of the application.
// Includes tools for HTTP response writing, client address and host
// extraction, string truncation, an HTTP client, and JWT token generation
// and validation.
package utils
