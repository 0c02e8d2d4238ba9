// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/MKhiriev/go-folio/internal/config"
	"github.com/MKhiriev/go-folio/internal/failure"
	"github.com/MKhiriev/go-folio/internal/logger"
	"github.com/MKhiriev/go-folio/internal/store"
	"github.com/MKhiriev/go-folio/internal/validators"
	"github.com/MKhiriev/go-folio/models"
)

// tenantService resolves hosts through an expiring LRU in front of the
// tenant repository. Only active tenants are cached.
type tenantService struct {
	tenantRepository store.TenantRepository
	cache            *expirable.LRU[string, models.Tenant]
	allowedHosts     []string
	validator        validators.Validator

	logger *logger.Logger
}

func NewTenantService(repo store.TenantRepository, cfg config.Tenants, allowedHosts []string, logger *logger.Logger) TenantService {
	hosts := make([]string, 0, len(allowedHosts))
	for _, h := range allowedHosts {
		h = strings.Trim(strings.ToLower(strings.TrimSpace(h)), ".")
		if h != "" {
			hosts = append(hosts, h)
		}
	}

	return &tenantService{
		tenantRepository: repo,
		cache:            expirable.NewLRU[string, models.Tenant](cfg.CacheSize, nil, cfg.CacheTTL),
		allowedHosts:     hosts,
		validator:        validators.NewTenantValidator(),
		logger:           logger,
	}
}

func (s *tenantService) ResolveHost(ctx context.Context, host string) (models.Tenant, error) {
	log := logger.FromContext(ctx)

	host = strings.TrimSuffix(strings.ToLower(host), ".")
	if host == "" || !s.hostAllowed(host) {
		log.Debug().Str("func", "*tenantService.ResolveHost").Str("host", host).Msg("host not permitted")
		return models.Tenant{}, failure.InvalidHost("")
	}

	if tenant, ok := s.cache.Get(host); ok {
		return tenant, nil
	}

	tenant, err := s.tenantRepository.FindByHost(ctx, host)
	if err != nil {
		if errors.Is(err, store.ErrTenantNotFound) {
			return models.Tenant{}, failure.TenantNotFound("")
		}
		log.Err(err).Str("func", "*tenantService.ResolveHost").Str("host", host).Msg("tenant lookup failed")
		return models.Tenant{}, fmt.Errorf("tenant lookup for %q: %w", host, err)
	}
	if !tenant.Active {
		return models.Tenant{}, failure.TenantNotFound("")
	}

	s.cache.Add(host, tenant)
	return tenant, nil
}

func (s *tenantService) Rename(ctx context.Context, tenantID string, upd models.TenantUpdate) (models.Tenant, error) {
	log := logger.FromContext(ctx)

	upd.Name = strings.TrimSpace(upd.Name)
	if err := s.validator.Validate(ctx, upd); err != nil {
		return models.Tenant{}, err
	}

	tenant, err := s.tenantRepository.UpdateName(ctx, tenantID, upd.Name, upd.Version)
	switch {
	case err == nil:
	case errors.Is(err, store.ErrTenantNotFound):
		return models.Tenant{}, failure.TenantNotFound("")
	case errors.Is(err, store.ErrVersionConflict):
		return models.Tenant{}, failure.VersionConflict("")
	default:
		log.Err(err).Str("func", "*tenantService.Rename").Str("tenant_id", tenantID).Msg("tenant update failed")
		return models.Tenant{}, fmt.Errorf("renaming tenant %s: %w", tenantID, err)
	}

	s.cache.Remove(tenant.Host)
	log.Info().Str("tenant_id", tenant.ID).Int64("version", tenant.Version).Msg("tenant renamed")
	return tenant, nil
}

func (s *tenantService) Seed(ctx context.Context, tenants map[string]string) error {
	for host, name := range tenants {
		host = strings.TrimSuffix(strings.ToLower(strings.TrimSpace(host)), ".")
		if host == "" {
			return ErrEmptyHost
		}

		_, err := s.tenantRepository.FindByHost(ctx, host)
		if err == nil {
			continue
		}
		if !errors.Is(err, store.ErrTenantNotFound) {
			return fmt.Errorf("seeding tenant %q: %w", host, err)
		}

		created, err := s.tenantRepository.Create(ctx, models.Tenant{
			ID:     uuid.NewString(),
			Name:   name,
			Host:   host,
			Active: true,
		})
		if err != nil && !errors.Is(err, store.ErrHostAlreadyTaken) {
			return fmt.Errorf("seeding tenant %q: %w", host, err)
		}
		if err == nil {
			s.logger.Info().Str("tenant_id", created.ID).Str("host", host).Msg("tenant seeded")
		}
	}
	return nil
}

// hostAllowed reports whether host equals or is a subdomain of an allowed
// suffix. An empty allow-list permits every host.
func (s *tenantService) hostAllowed(host string) bool {
	if len(s.allowedHosts) == 0 {
		return true
	}
	for _, suffix := range s.allowedHosts {
		if host == suffix || strings.HasSuffix(host, "."+suffix) {
			return true
		}
	}
	return false
}
