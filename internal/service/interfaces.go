// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/go-folio/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// AppInfoService exposes build metadata of the running binary.
type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
	GetBuildInfo(ctx context.Context) models.AppBuildInfo
}

// TenantService resolves request hosts to tenants and applies tenant
// updates. Errors are failure values ready for classification.
type TenantService interface {
	// ResolveHost returns the active tenant served on host (no port).
	ResolveHost(ctx context.Context, host string) (models.Tenant, error)

	// Rename changes the tenant name when upd.Version is still current.
	Rename(ctx context.Context, tenantID string, upd models.TenantUpdate) (models.Tenant, error)

	// Seed creates the given host→name tenants that do not exist yet.
	Seed(ctx context.Context, tenants map[string]string) error
}

// AuthService turns bearer tokens into principals.
type AuthService interface {
	ParseToken(ctx context.Context, tokenString string) (models.Principal, error)
}
