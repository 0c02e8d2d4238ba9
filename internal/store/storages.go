// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import "github.com/MKhiriev/go-folio/internal/logger"

// Storages groups the repositories handed to the service layer.
type Storages struct {
	TenantRepository TenantRepository
}

func NewStorages(db *DB, log *logger.Logger) *Storages {
	return &Storages{
		TenantRepository: NewTenantRepository(db, log),
	}
}
