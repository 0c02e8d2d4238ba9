// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-folio/internal/config"
	"github.com/MKhiriev/go-folio/internal/logger"
	"github.com/MKhiriev/go-folio/models"
)

// ─────────────────────────────────────────────
// NewAppInfoService
// ─────────────────────────────────────────────

func TestNewAppInfoService(t *testing.T) {
	tests := []struct {
		name    string
		cfg     config.App
		build   models.AppBuildInfo
		want    string
		wantErr error
	}{
		{
			name:  "configured version wins",
			cfg:   config.App{Version: "1.0.0"},
			build: models.NewAppBuildInfo("0.9.0", "", ""),
			want:  "1.0.0",
		},
		{
			name:  "build version fallback",
			build: models.NewAppBuildInfo("0.9.0", "", ""),
			want:  "0.9.0",
		},
		{
			name:  "unstamped binary reports N/A",
			build: models.NewAppBuildInfo("", "", ""),
			want:  "N/A",
		},
		{
			name:    "nothing at all",
			wantErr: ErrVersionIsNotSpecified,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, err := NewAppInfoService(tt.cfg, tt.build, logger.Nop())
			if tt.wantErr != nil {
				assert.Nil(t, svc)
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, svc.GetAppVersion(context.Background()))
		})
	}
}

// ─────────────────────────────────────────────
// GetBuildInfo
// ─────────────────────────────────────────────

func TestGetBuildInfo_KeepsDateAndCommit(t *testing.T) {
	build := models.NewAppBuildInfo("1.2.3", "2026-10-01", "abc123")
	svc, err := NewAppInfoService(config.App{Version: "1.2.4"}, build, logger.Nop())
	require.NoError(t, err)

	got := svc.GetBuildInfo(context.Background())

	assert.Equal(t, models.AppBuildInfo{Version: "1.2.4", Date: "2026-10-01", Commit: "abc123"}, got)
}
