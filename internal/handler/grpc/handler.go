// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package grpc

import (
	"github.com/MKhiriev/go-folio/internal/classifier"
	"github.com/MKhiriev/go-folio/internal/logger"
	"github.com/MKhiriev/go-folio/internal/service"
)

// Handler is the root gRPC transport handler.
//
// It carries the request backbone for gRPC calls: request ids, the per-call
// context store, the call log and failure normalization. A handler instance
// is created once at startup and shared by the gRPC server.
type Handler struct {
	// services provides access to all application business operations.
	services *service.Services

	// classifier turns failures into status codes and messages.
	classifier *classifier.Classifier

	// calls is the "grpc" log channel.
	calls *logger.Logger

	// logger is used for request-scoped and diagnostic log output.
	logger *logger.Logger
}

// NewHandler constructs a [Handler] and returns the initialized instance.
//
// Parameters:
//   - services: application service layer used by gRPC method handlers.
//   - c: classifier normalizing failures returned by method handlers.
//   - channels: named log channels; calls are logged on "grpc".
//   - log: structured logger used for transport diagnostics.
func NewHandler(services *service.Services, c *classifier.Classifier, channels *logger.Channels, log *logger.Logger) *Handler {
	log.Debug().Msg("gRPC handler created")
	return &Handler{
		services:   services,
		classifier: c,
		calls:      channels.Get(logger.ChannelGRPC),
		logger:     log,
	}
}
