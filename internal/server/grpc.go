// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import (
	"context"
	"net"

	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"

	"github.com/MKhiriev/go-folio/internal/config"
	myGRPC "github.com/MKhiriev/go-folio/internal/handler/grpc"
	"github.com/MKhiriev/go-folio/internal/logger"
)

type grpcServer struct {
	handler *myGRPC.Handler

	server          *grpc.Server
	health          *health.Server
	address         string
	gRPCNetListener net.Listener

	logger *logger.Logger
}

func newGRPCServer(handler *myGRPC.Handler, cfg config.Server, logger *logger.Logger) *grpcServer {
	srv := grpc.NewServer(
		grpc.ChainUnaryInterceptor(handler.UnaryInterceptor()),
		grpc.ChainStreamInterceptor(handler.StreamInterceptor()),
	)

	hs := health.NewServer()
	healthpb.RegisterHealthServer(srv, hs)

	return &grpcServer{
		handler: handler,
		server:  srv,
		health:  hs,
		address: cfg.GRPCAddress,
		logger:  logger,
	}
}

func (g *grpcServer) RunServer() {
	if g.gRPCNetListener == nil {
		lis, err := net.Listen("tcp", g.address)
		if err != nil {
			g.logger.Error().Err(err).Str("address", g.address).Msg("gRPC server Listen")
			return
		}
		g.gRPCNetListener = lis
	}

	if err := g.server.Serve(g.gRPCNetListener); err != nil {
		g.logger.Error().Err(err).Msg("gRPC server Serve")
	}
}

// Shutdown marks the server NOT_SERVING, then stops gracefully. In-flight
// calls still running when ctx expires are cancelled.
func (g *grpcServer) Shutdown(ctx context.Context) {
	g.logger.Info().Msg("GRPC server Shutdown")
	g.health.Shutdown()

	stopped := make(chan struct{})
	go func() {
		g.server.GracefulStop()
		close(stopped)
	}()

	select {
	case <-stopped:
	case <-ctx.Done():
		g.server.Stop()
		<-stopped
	}
}
