// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"

	"github.com/MKhiriev/go-folio/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// TenantRepository persists tenants.
type TenantRepository interface {
	FindByHost(ctx context.Context, host string) (models.Tenant, error)
	FindByID(ctx context.Context, id string) (models.Tenant, error)
	Create(ctx context.Context, tenant models.Tenant) (models.Tenant, error)
	// UpdateName renames the tenant if version is still current and
	// returns the stored row with the bumped version.
	UpdateName(ctx context.Context, id, name string, version int64) (models.Tenant, error)
}

// ErrorClassificator decides whether a driver error is transient.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}
