// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-folio/models"
)

var testPrincipal = models.Principal{ID: 123, Email: "ana@acme.io", TenantID: "tenant-1"}

func TestGenerateJWTToken_Success(t *testing.T) {
	token, err := GenerateJWTToken("test-issuer", testPrincipal, time.Hour, "secret-key")
	require.NoError(t, err)

	assert.NotEmpty(t, token.SignedString)
	require.NotNil(t, token.Token)
	assert.Equal(t, "test-issuer", token.Issuer)
	assert.Equal(t, "123", token.Subject)
	assert.Equal(t, "ana@acme.io", token.Email)
	assert.Equal(t, "tenant-1", token.TenantID)
}

func TestGenerateJWTToken_InvalidParams(t *testing.T) {
	tests := []struct {
		name     string
		issuer   string
		duration time.Duration
		key      string
	}{
		{"empty issuer", "", time.Hour, "key"},
		{"zero duration", "iss", 0, "key"},
		{"empty key", "iss", time.Hour, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := GenerateJWTToken(tt.issuer, testPrincipal, tt.duration, tt.key)
			assert.Error(t, err)
		})
	}
}

func TestValidateAndParseJWTToken_RoundTrip(t *testing.T) {
	gen, err := GenerateJWTToken("test-issuer", testPrincipal, 5*time.Minute, "secret-key")
	require.NoError(t, err)

	parsed, err := ValidateAndParseJWTToken(gen.SignedString, "secret-key", "test-issuer")
	require.NoError(t, err)

	principal, err := parsed.Principal()
	require.NoError(t, err)
	assert.Equal(t, testPrincipal, principal)
}

func TestValidateAndParseJWTToken_Failures(t *testing.T) {
	valid, err := GenerateJWTToken("test-issuer", testPrincipal, time.Minute, "secret-key")
	require.NoError(t, err)

	expired, err := GenerateJWTToken("test-issuer", testPrincipal, -time.Minute, "secret-key")
	require.NoError(t, err)

	noSubject := jwt.NewWithClaims(jwt.SigningMethodHS256, &models.Token{
		RegisteredClaims: jwt.RegisteredClaims{Issuer: "test-issuer"},
	})
	noSubjectStr, err := noSubject.SignedString([]byte("secret-key"))
	require.NoError(t, err)

	nonNumeric := jwt.NewWithClaims(jwt.SigningMethodHS256, &models.Token{
		RegisteredClaims: jwt.RegisteredClaims{Issuer: "test-issuer", Subject: "abc"},
	})
	nonNumericStr, err := nonNumeric.SignedString([]byte("secret-key"))
	require.NoError(t, err)

	tests := []struct {
		name   string
		token  string
		key    string
		issuer string
	}{
		{"wrong key", valid.SignedString, "other-key", "test-issuer"},
		{"wrong issuer", valid.SignedString, "secret-key", "someone-else"},
		{"expired", expired.SignedString, "secret-key", "test-issuer"},
		{"garbage", "not.a.jwt", "secret-key", "test-issuer"},
		{"no subject", noSubjectStr, "secret-key", "test-issuer"},
		{"non numeric subject", nonNumericStr, "secret-key", "test-issuer"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ValidateAndParseJWTToken(tt.token, tt.key, tt.issuer)
			assert.Error(t, err)
		})
	}
}

func TestParseBearerToken(t *testing.T) {
	tests := []struct {
		name    string
		header  string
		want    string
		wantErr bool
	}{
		{name: "bearer", header: "Bearer abc.def", want: "abc.def"},
		{name: "lowercase scheme", header: "bearer abc", want: "abc"},
		{name: "extra spaces", header: "  Bearer   abc  ", want: "abc"},
		{name: "empty", header: "", wantErr: true},
		{name: "missing token", header: "Bearer", wantErr: true},
		{name: "basic scheme", header: "Basic dXNlcg==", wantErr: true},
		{name: "three parts", header: "Bearer a b", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseBearerToken(tt.header)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
