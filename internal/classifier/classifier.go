// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package classifier

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-folio/internal/app"
	"github.com/MKhiriev/go-folio/internal/failure"
	"github.com/MKhiriev/go-folio/internal/logger"
	"github.com/MKhiriev/go-folio/internal/reqctx"
	"github.com/MKhiriev/go-folio/internal/response"
	"github.com/MKhiriev/go-folio/internal/utils"
)

// Call identifies the operation that failed.
type Call struct {
	Method string
	Path   string
	// View is the matched route pattern (or gRPC full method).
	View string
}

// Classifier maps failures to error responses.
type Classifier struct {
	paths     APIPaths
	defaults  DefaultHandler
	unhandled *logger.Logger
}

// Option customizes a Classifier.
type Option func(*Classifier)

// WithDefaultHandler replaces TransportDefault.
func WithDefaultHandler(h DefaultHandler) Option {
	return func(c *Classifier) {
		c.defaults = h
	}
}

// New creates a Classifier. Unexpected failures are logged to the
// "unhandled" channel of channels.
func New(paths APIPaths, channels *logger.Channels, opts ...Option) *Classifier {
	c := &Classifier{
		paths:     paths,
		defaults:  TransportDefault,
		unhandled: channels.Get(logger.ChannelUnhandled),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Classify returns the error response for err raised while serving r, or
// ok=false when r is outside the API surface and the caller should fall
// back to its native rendering.
func (c *Classifier) Classify(r *http.Request, view string, rc reqctx.RequestContext, err error) (response.Response, bool) {
	if !c.paths.IsAPI(r.URL.Path) {
		return response.Response{}, false
	}

	return c.Normalize(rc, err, Call{Method: r.Method, Path: r.URL.Path, View: view}), true
}

// Normalize maps err to exactly one error response.
func (c *Classifier) Normalize(rc reqctx.RequestContext, err error, call Call) response.Response {
	var business *failure.Business
	if errors.As(err, &business) {
		return response.Error(business.Message, business.Status)
	}

	if ve, ok := failure.AsValidation(err); ok {
		return response.BadRequest(ve.Detail())
	}

	if errors.Is(err, failure.ErrNotFound) {
		return response.NotFound(app.MsgNotFound)
	}

	if c.defaults != nil {
		if status, payload, ok := c.defaults(err); ok {
			return response.Error(ExtractMessage(payload), status)
		}
	}

	c.logUnhandled(rc, err, call)
	return response.InternalServerError(app.MsgInternalServerError)
}

func (c *Classifier) logUnhandled(rc reqctx.RequestContext, err error, call Call) {
	event := c.unhandled.Error().
		Str("exception_type", failure.TypeName(err)).
		Str("exception_message", utils.Truncate(errMessage(err), 500)).
		Str("view", call.View).
		Str("method", call.Method).
		Str("path", call.Path).
		Str("request_id", rc.RequestID).
		Str("tenant_id", rc.TenantID()).
		Int64("principal_id", rc.PrincipalID())

	var p *failure.Panic
	if errors.As(err, &p) && len(p.Stack) > 0 {
		event = event.Str("stack", string(p.Stack))
	}

	event.Msg("unhandled exception")
}

func errMessage(err error) string {
	if err == nil {
		return ""
	}
	return err.Error()
}
