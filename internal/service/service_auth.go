// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/go-folio/internal/config"
	"github.com/MKhiriev/go-folio/internal/failure"
	"github.com/MKhiriev/go-folio/internal/logger"
	"github.com/MKhiriev/go-folio/internal/utils"
	"github.com/MKhiriev/go-folio/models"
)

// authService verifies HS256 bearer tokens. Tokens are issued elsewhere;
// this service only checks signature, issuer and expiry.
type authService struct {
	tokenSignKey string
	tokenIssuer  string

	logger *logger.Logger
}

func NewAuthService(cfg config.App, logger *logger.Logger) AuthService {
	return &authService{
		tokenSignKey: cfg.TokenSignKey,
		tokenIssuer:  cfg.TokenIssuer,
		logger:       logger,
	}
}

// ParseToken returns the principal carried by tokenString. Any token
// problem is reported as an AuthenticationFailed rejection; the cause is
// only logged.
func (a *authService) ParseToken(ctx context.Context, tokenString string) (models.Principal, error) {
	log := logger.FromContext(ctx)

	token, err := utils.ValidateAndParseJWTToken(tokenString, a.tokenSignKey, a.tokenIssuer)
	if err != nil {
		log.Debug().Err(err).Str("func", "*authService.ParseToken").Msg("token rejected")
		return models.Principal{}, failure.AuthenticationFailed("")
	}

	principal, err := token.Principal()
	if err != nil {
		log.Debug().Err(err).Str("func", "*authService.ParseToken").Msg("token subject rejected")
		return models.Principal{}, failure.AuthenticationFailed("")
	}

	return principal, nil
}
