// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"time"

	"github.com/MKhiriev/go-folio/internal/classifier"
	"github.com/MKhiriev/go-folio/internal/config"
	"github.com/MKhiriev/go-folio/internal/logger"
	"github.com/MKhiriev/go-folio/internal/service"
)

const defaultMaxBodyBytes = 1 << 20

type Handler struct {
	services   *service.Services
	classifier *classifier.Classifier
	channels   *logger.Channels

	maxBodyBytes   int64
	skipPaths      []string
	requestTimeout time.Duration

	logger *logger.Logger
}

func NewHandler(services *service.Services, c *classifier.Classifier, channels *logger.Channels, cfg config.StructuredConfig, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")

	maxBody := cfg.Server.MaxBodyBytes
	if maxBody <= 0 {
		maxBody = defaultMaxBodyBytes
	}

	return &Handler{
		services:       services,
		classifier:     c,
		channels:       channels,
		maxBodyBytes:   maxBody,
		skipPaths:      cfg.Log.SkipPaths,
		requestTimeout: cfg.Server.RequestTimeout,
		logger:         logger,
	}
}
