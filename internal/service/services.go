// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"fmt"

	"github.com/MKhiriev/go-folio/internal/config"
	"github.com/MKhiriev/go-folio/internal/logger"
	"github.com/MKhiriev/go-folio/internal/store"
	"github.com/MKhiriev/go-folio/models"
)

type Services struct {
	AppInfoService AppInfoService
	TenantService  TenantService
	AuthService    AuthService
}

func NewServices(storages *store.Storages, cfg config.StructuredConfig, build models.AppBuildInfo, logger *logger.Logger) (*Services, error) {
	appInfo, err := NewAppInfoService(cfg.App, build, logger)
	if err != nil {
		return nil, fmt.Errorf("error creating app info service: %w", err)
	}

	return &Services{
		AppInfoService: appInfo,
		TenantService:  NewTenantService(storages.TenantRepository, cfg.Tenants, cfg.Server.AllowedHosts, logger),
		AuthService:    NewAuthService(cfg.App, logger),
	}, nil
}
