// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package grpc

import (
	"context"
	"fmt"
	"runtime/debug"
	"time"

	"github.com/rs/zerolog"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"

	"github.com/MKhiriev/go-folio/internal/failure"
	"github.com/MKhiriev/go-folio/internal/reqctx"
	"github.com/MKhiriev/go-folio/internal/requestid"
	"github.com/MKhiriev/go-folio/internal/utils"
)

const exceptionMessageLen = 500

// call is the state of one intercepted RPC.
type call struct {
	method string
	start  time.Time
	store  *reqctx.Store
}

// UnaryInterceptor applies the request backbone to unary calls.
func (h *Handler) UnaryInterceptor() grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (resp any, err error) {
		ctx, c, id := h.begin(ctx, info.FullMethod)
		if err := grpc.SetHeader(ctx, metadata.Pairs(requestid.MetadataKey, id)); err != nil {
			h.logger.Debug().Err(err).Str("method", info.FullMethod).Msg("request id header not sent")
		}

		defer func() {
			if rec := recover(); rec != nil {
				resp, err = nil, failure.NewPanic(rec, debug.Stack())
			}
			err = h.end(c, err)
		}()

		return handler(ctx, req)
	}
}

// StreamInterceptor applies the request backbone to streaming calls.
func (h *Handler) StreamInterceptor() grpc.StreamServerInterceptor {
	return func(srv any, ss grpc.ServerStream, info *grpc.StreamServerInfo, handler grpc.StreamHandler) (err error) {
		ctx, c, id := h.begin(ss.Context(), info.FullMethod)
		if err := ss.SetHeader(metadata.Pairs(requestid.MetadataKey, id)); err != nil {
			h.logger.Debug().Err(err).Str("method", info.FullMethod).Msg("request id header not sent")
		}

		defer func() {
			if rec := recover(); rec != nil {
				err = failure.NewPanic(rec, debug.Stack())
			}
			err = h.end(c, err)
		}()

		return handler(srv, &serverStream{ServerStream: ss, ctx: ctx})
	}
}

// begin binds a fresh store and request id to ctx.
func (h *Handler) begin(ctx context.Context, method string) (context.Context, *call, string) {
	var inbound string
	if md, ok := metadata.FromIncomingContext(ctx); ok {
		if v := md.Get(requestid.MetadataKey); len(v) > 0 {
			inbound = v[0]
		}
	}
	id := requestid.Resolve(inbound)

	ctx, store := reqctx.Attach(ctx)
	store.SetRequestID(id)

	l := h.logger.GetChildLogger()
	l.UpdateContext(func(c zerolog.Context) zerolog.Context {
		return c.Str("request_id", id)
	})

	return l.WithContext(ctx), &call{method: method, start: time.Now(), store: store}, id
}

// end logs the call, converts err to a gRPC status and empties the store.
func (h *Handler) end(c *call, err error) error {
	defer c.store.Reset()

	rc := c.store.Snapshot()
	out := h.toStatus(rc, c.method, err)
	code := status.Code(out)
	duration := time.Since(c.start)

	level := zerolog.InfoLevel
	if err != nil {
		level = levelForCode(code)
	}

	entry := h.calls.WithLevel(level).
		Str("method", c.method).
		Str("code", code.String()).
		Float64("duration_ms", float64(duration.Microseconds())/1000).
		Str("request_id", rc.RequestID)
	if err != nil {
		entry = entry.
			Str("exception_type", failure.TypeName(err)).
			Str("exception_message", utils.Truncate(err.Error(), exceptionMessageLen))
	}
	entry.Msg(fmt.Sprintf("GRPC %s - %s - %dms", c.method, code, duration.Milliseconds()))

	return out
}

// toStatus leaves nil and status errors as they are and normalizes
// everything else through the classifier.
func (h *Handler) toStatus(rc reqctx.RequestContext, method string, err error) error {
	if err == nil {
		return nil
	}
	if _, ok := status.FromError(err); ok {
		return err
	}
	if s := status.FromContextError(err); s.Code() != codes.Unknown {
		return s.Err()
	}

	resp := h.classifier.Normalize(rc, err, classifierCall(method))
	return status.Error(codeForHTTPStatus(resp.Status), resp.Message())
}

func levelForCode(code codes.Code) zerolog.Level {
	switch code {
	case codes.Internal, codes.Unknown, codes.DataLoss, codes.Unavailable:
		return zerolog.ErrorLevel
	default:
		return zerolog.WarnLevel
	}
}

// serverStream overrides the context of a wrapped stream.
type serverStream struct {
	grpc.ServerStream
	ctx context.Context
}

func (s *serverStream) Context() context.Context {
	return s.ctx
}
