// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import "errors"

// Sentinel errors returned by repository methods. Match with [errors.Is].
var (
	// ErrTenantNotFound is returned when no tenant matches the lookup key.
	ErrTenantNotFound = errors.New("tenant was not found")

	// ErrVersionConflict is returned when an optimistic update names a
	// version that is no longer current.
	ErrVersionConflict = errors.New("tenant version conflict occurred")

	// ErrHostAlreadyTaken is returned when a tenant host collides with an
	// existing one.
	ErrHostAlreadyTaken = errors.New("tenant host already taken")
)

// Low-level database operation errors.
var (
	ErrBuildingSQLQuery = errors.New("error building sql query")
	ErrExecutingQuery   = errors.New("error executing sql query")
	ErrScanningRow      = errors.New("failed to scan tenant row")
)
