// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"fmt"

	"github.com/MKhiriev/go-folio/internal/failure"
	"github.com/MKhiriev/go-folio/internal/logger"
	"github.com/MKhiriev/go-folio/internal/reqctx"
	"github.com/MKhiriev/go-folio/internal/utils"
)

const (
	exceptionSummaryLen = 200
	exceptionMessageLen = 500
	userAgentLen        = 200
)

// exceptionLogStage writes one error entry per failed request to the
// channel owning the request path. It never alters the failure.
type exceptionLogStage struct {
	channels *logger.Channels
}

func (s *exceptionLogStage) name() string { return "exception_log" }

func (s *exceptionLogStage) before(*exchange) {}

func (s *exceptionLogStage) afterSuccess(*exchange) {}

func (s *exceptionLogStage) afterFailure(x *exchange, err error) {
	r := x.request
	rc := x.snapshot
	typ := failure.TypeName(err)
	msg := err.Error()
	path := r.URL.RequestURI()

	// routed by path alone, reported with the query string
	entry := s.channels.ForPath(r.URL.Path).Error().
		Str("method", r.Method).
		Str("path", path).
		Str("exception_type", typ).
		Str("exception_message", utils.Truncate(msg, exceptionMessageLen)).
		Str("request_id", rc.RequestID).
		Str("tenant_id", rc.TenantID()).
		Str("tenant_name", rc.TenantName()).
		Interface("principal_id", principalID(rc)).
		Str("principal_email", rc.PrincipalEmail()).
		Str("remote_addr", utils.ClientAddr(r)).
		Str("user_agent", utils.Truncate(r.UserAgent(), userAgentLen))

	var p *failure.Panic
	if errors.As(err, &p) {
		entry = entry.Bytes("stack", p.Stack)
	}

	entry.Msg(fmt.Sprintf("UNHANDLED_EXCEPTION %s %s - %s: %s",
		r.Method, path, typ, utils.Truncate(msg, exceptionSummaryLen)))
}

// principalID is null in the log for anonymous requests.
func principalID(rc reqctx.RequestContext) any {
	if rc.Principal == nil {
		return nil
	}
	return rc.Principal.ID
}
