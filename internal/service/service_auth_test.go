// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-folio/internal/config"
	"github.com/MKhiriev/go-folio/internal/failure"
	"github.com/MKhiriev/go-folio/internal/logger"
	"github.com/MKhiriev/go-folio/internal/utils"
	"github.com/MKhiriev/go-folio/models"
)

const (
	testSignKey = "test-sign-key"
	testIssuer  = "go-folio-test"
)

func TestAuthService_ParseToken(t *testing.T) {
	svc := NewAuthService(config.App{TokenSignKey: testSignKey, TokenIssuer: testIssuer}, logger.Nop())
	principal := models.Principal{ID: 42, Email: "ada@acme.test", TenantID: "t-1"}

	valid, err := utils.GenerateJWTToken(testIssuer, principal, time.Hour, testSignKey)
	require.NoError(t, err)
	foreign, err := utils.GenerateJWTToken("someone-else", principal, time.Hour, testSignKey)
	require.NoError(t, err)
	wrongKey, err := utils.GenerateJWTToken(testIssuer, principal, time.Hour, "other-key")
	require.NoError(t, err)

	tests := []struct {
		name    string
		token   string
		want    models.Principal
		wantErr bool
	}{
		{name: "valid", token: valid.SignedString, want: principal},
		{name: "wrong issuer", token: foreign.SignedString, wantErr: true},
		{name: "wrong key", token: wrongKey.SignedString, wantErr: true},
		{name: "garbage", token: "not.a.jwt", wantErr: true},
		{name: "empty", token: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := svc.ParseToken(context.Background(), tt.token)
			if tt.wantErr {
				assert.ErrorIs(t, err, failure.ErrAuthenticationFailed)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
