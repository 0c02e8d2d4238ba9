// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/MKhiriev/go-folio/internal/logger"
	"github.com/MKhiriev/go-folio/internal/reqctx"
	"github.com/MKhiriev/go-folio/internal/requestid"
)

// contextStage owns the per-request context store. It binds a fresh
// store and request id on entry and empties the store on exit. A positive
// timeout bounds the request context; handlers that honor it fail with
// context.DeadlineExceeded, which renders as a 504 envelope.
type contextStage struct {
	logger  *logger.Logger
	timeout time.Duration
}

func (s *contextStage) name() string { return "context" }

func (s *contextStage) before(x *exchange) {
	ctx := x.request.Context()
	if s.timeout > 0 {
		ctx, x.cancel = context.WithTimeout(ctx, s.timeout)
	}
	ctx, store := reqctx.Attach(ctx)

	id := requestid.Resolve(x.request.Header.Get(requestid.Header))
	store.SetRequestID(id)

	// stamped now so classifier-built responses carry it too
	x.writer.Header().Set(requestid.Header, id)

	l := s.logger.GetChildLogger()
	l.UpdateContext(func(c zerolog.Context) zerolog.Context {
		return c.Str("request_id", id)
	})
	x.request = x.request.WithContext(l.WithContext(ctx))
}

func (s *contextStage) afterSuccess(x *exchange) {
	store := reqctx.FromContext(x.request.Context())
	if id := store.RequestID(); id != "" {
		x.writer.Header().Set(requestid.Header, id)
	}
	store.Reset()
	s.release(x)
}

func (s *contextStage) afterFailure(x *exchange, _ error) {
	reqctx.FromContext(x.request.Context()).Reset()
	s.release(x)
}

func (s *contextStage) release(x *exchange) {
	if x.cancel != nil {
		x.cancel()
	}
}
