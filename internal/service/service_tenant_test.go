// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-folio/internal/config"
	"github.com/MKhiriev/go-folio/internal/failure"
	"github.com/MKhiriev/go-folio/internal/logger"
	"github.com/MKhiriev/go-folio/internal/mock"
	"github.com/MKhiriev/go-folio/internal/store"
	"github.com/MKhiriev/go-folio/models"
)

func newTestTenantSvc(t *testing.T, allowed ...string) (TenantService, *mock.MockTenantRepository) {
	t.Helper()
	ctrl := gomock.NewController(t)
	repo := mock.NewMockTenantRepository(ctrl)

	cfg := config.Tenants{CacheSize: 16, CacheTTL: time.Minute}
	return NewTenantService(repo, cfg, allowed, logger.Nop()), repo
}

var acmeTenant = models.Tenant{
	ID:      "7d5c3c4e-2a8f-4b7e-9a53-3f1b8c2d9e10",
	Name:    "Acme",
	Host:    "acme.folio.test",
	Active:  true,
	Version: 3,
}

// ── ResolveHost ──────────────────────────────────────────────────────────────

func TestTenantService_ResolveHost(t *testing.T) {
	inactive := acmeTenant
	inactive.Active = false

	tests := []struct {
		name    string
		allowed []string
		host    string
		setup   func(*mock.MockTenantRepository)
		want    models.Tenant
		wantErr error
	}{
		{
			name: "found",
			host: "ACME.folio.test.",
			setup: func(r *mock.MockTenantRepository) {
				r.EXPECT().FindByHost(gomock.Any(), "acme.folio.test").Return(acmeTenant, nil)
			},
			want: acmeTenant,
		},
		{
			name:    "allowed suffix",
			allowed: []string{"folio.test"},
			host:    "acme.folio.test",
			setup: func(r *mock.MockTenantRepository) {
				r.EXPECT().FindByHost(gomock.Any(), "acme.folio.test").Return(acmeTenant, nil)
			},
			want: acmeTenant,
		},
		{
			name:    "host outside allow-list",
			allowed: []string{"folio.test"},
			host:    "evilfolio.test",
			setup:   func(*mock.MockTenantRepository) {},
			wantErr: failure.ErrInvalidHost,
		},
		{
			name:    "empty host",
			host:    "",
			setup:   func(*mock.MockTenantRepository) {},
			wantErr: failure.ErrInvalidHost,
		},
		{
			name: "missing tenant",
			host: "ghost.folio.test",
			setup: func(r *mock.MockTenantRepository) {
				r.EXPECT().FindByHost(gomock.Any(), "ghost.folio.test").Return(models.Tenant{}, store.ErrTenantNotFound)
			},
			wantErr: failure.ErrTenantNotFound,
		},
		{
			name: "inactive tenant",
			host: "acme.folio.test",
			setup: func(r *mock.MockTenantRepository) {
				r.EXPECT().FindByHost(gomock.Any(), "acme.folio.test").Return(inactive, nil)
			},
			wantErr: failure.ErrTenantNotFound,
		},
		{
			name: "store failure stays unexpected",
			host: "acme.folio.test",
			setup: func(r *mock.MockTenantRepository) {
				r.EXPECT().FindByHost(gomock.Any(), "acme.folio.test").Return(models.Tenant{}, store.ErrExecutingQuery)
			},
			wantErr: store.ErrExecutingQuery,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, repo := newTestTenantSvc(t, tt.allowed...)
			tt.setup(repo)

			got, err := svc.ResolveHost(context.Background(), tt.host)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestTenantService_ResolveHost_Cached(t *testing.T) {
	svc, repo := newTestTenantSvc(t)
	repo.EXPECT().FindByHost(gomock.Any(), acmeTenant.Host).Return(acmeTenant, nil).Times(1)

	for range 3 {
		got, err := svc.ResolveHost(context.Background(), acmeTenant.Host)
		require.NoError(t, err)
		assert.Equal(t, acmeTenant.ID, got.ID)
	}
}

func TestTenantService_ResolveHost_MissIsNotCached(t *testing.T) {
	svc, repo := newTestTenantSvc(t)
	repo.EXPECT().FindByHost(gomock.Any(), "ghost.folio.test").Return(models.Tenant{}, store.ErrTenantNotFound).Times(2)

	_, err := svc.ResolveHost(context.Background(), "ghost.folio.test")
	assert.ErrorIs(t, err, failure.ErrTenantNotFound)
	_, err = svc.ResolveHost(context.Background(), "ghost.folio.test")
	assert.ErrorIs(t, err, failure.ErrTenantNotFound)
}

// ── Rename ───────────────────────────────────────────────────────────────────

func TestTenantService_Rename(t *testing.T) {
	renamed := acmeTenant
	renamed.Name = "Acme Corp"
	renamed.Version = 4

	tests := []struct {
		name      string
		upd       models.TenantUpdate
		setup     func(*mock.MockTenantRepository)
		wantErr   error
		wantField string
	}{
		{
			name: "renamed",
			upd:  models.TenantUpdate{Name: "  Acme Corp ", Version: 3},
			setup: func(r *mock.MockTenantRepository) {
				r.EXPECT().UpdateName(gomock.Any(), acmeTenant.ID, "Acme Corp", int64(3)).Return(renamed, nil)
			},
		},
		{
			name:      "name required",
			upd:       models.TenantUpdate{Name: " ", Version: 3},
			setup:     func(*mock.MockTenantRepository) {},
			wantField: "name: required",
		},
		{
			name:      "version required",
			upd:       models.TenantUpdate{Name: "Acme Corp"},
			setup:     func(*mock.MockTenantRepository) {},
			wantField: "version: required",
		},
		{
			name: "stale version",
			upd:  models.TenantUpdate{Name: "Acme Corp", Version: 2},
			setup: func(r *mock.MockTenantRepository) {
				r.EXPECT().UpdateName(gomock.Any(), acmeTenant.ID, "Acme Corp", int64(2)).Return(models.Tenant{}, store.ErrVersionConflict)
			},
			wantErr: failure.ErrVersionConflict,
		},
		{
			name: "tenant gone",
			upd:  models.TenantUpdate{Name: "Acme Corp", Version: 3},
			setup: func(r *mock.MockTenantRepository) {
				r.EXPECT().UpdateName(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(models.Tenant{}, store.ErrTenantNotFound)
			},
			wantErr: failure.ErrTenantNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, repo := newTestTenantSvc(t)
			tt.setup(repo)

			got, err := svc.Rename(context.Background(), acmeTenant.ID, tt.upd)
			switch {
			case tt.wantField != "":
				vErr, ok := failure.AsValidation(err)
				require.True(t, ok, "expected validation error, got %v", err)
				assert.Equal(t, tt.wantField, vErr.Detail())
			case tt.wantErr != nil:
				assert.ErrorIs(t, err, tt.wantErr)
			default:
				require.NoError(t, err)
				assert.Equal(t, renamed, got)
			}
		})
	}
}

func TestTenantService_Rename_InvalidatesCache(t *testing.T) {
	svc, repo := newTestTenantSvc(t)
	renamed := acmeTenant
	renamed.Name = "Acme Corp"
	renamed.Version = 4

	gomock.InOrder(
		repo.EXPECT().FindByHost(gomock.Any(), acmeTenant.Host).Return(acmeTenant, nil),
		repo.EXPECT().UpdateName(gomock.Any(), acmeTenant.ID, "Acme Corp", int64(3)).Return(renamed, nil),
		repo.EXPECT().FindByHost(gomock.Any(), acmeTenant.Host).Return(renamed, nil),
	)

	_, err := svc.ResolveHost(context.Background(), acmeTenant.Host)
	require.NoError(t, err)
	_, err = svc.Rename(context.Background(), acmeTenant.ID, models.TenantUpdate{Name: "Acme Corp", Version: 3})
	require.NoError(t, err)

	got, err := svc.ResolveHost(context.Background(), acmeTenant.Host)
	require.NoError(t, err)
	assert.Equal(t, "Acme Corp", got.Name)
}

// ── Seed ─────────────────────────────────────────────────────────────────────

func TestTenantService_Seed(t *testing.T) {
	svc, repo := newTestTenantSvc(t)

	repo.EXPECT().FindByHost(gomock.Any(), "acme.localhost").Return(acmeTenant, nil)
	repo.EXPECT().FindByHost(gomock.Any(), "globex.localhost").Return(models.Tenant{}, store.ErrTenantNotFound)
	repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, tenant models.Tenant) (models.Tenant, error) {
			assert.Equal(t, "globex.localhost", tenant.Host)
			assert.Equal(t, "Globex", tenant.Name)
			assert.True(t, tenant.Active)
			assert.Len(t, tenant.ID, 36)
			tenant.Version = 1
			return tenant, nil
		})

	err := svc.Seed(context.Background(), map[string]string{
		"acme.localhost":   "Acme",
		"Globex.localhost": "Globex",
	})
	require.NoError(t, err)
}

func TestTenantService_Seed_Errors(t *testing.T) {
	t.Run("empty host", func(t *testing.T) {
		svc, _ := newTestTenantSvc(t)
		assert.ErrorIs(t, svc.Seed(context.Background(), map[string]string{" ": "x"}), ErrEmptyHost)
	})

	t.Run("race on create is ignored", func(t *testing.T) {
		svc, repo := newTestTenantSvc(t)
		repo.EXPECT().FindByHost(gomock.Any(), "acme.localhost").Return(models.Tenant{}, store.ErrTenantNotFound)
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(models.Tenant{}, store.ErrHostAlreadyTaken)

		assert.NoError(t, svc.Seed(context.Background(), map[string]string{"acme.localhost": "Acme"}))
	})

	t.Run("lookup failure", func(t *testing.T) {
		svc, repo := newTestTenantSvc(t)
		boom := errors.New("boom")
		repo.EXPECT().FindByHost(gomock.Any(), "acme.localhost").Return(models.Tenant{}, boom)

		assert.ErrorIs(t, svc.Seed(context.Background(), map[string]string{"acme.localhost": "Acme"}), boom)
	})
}
