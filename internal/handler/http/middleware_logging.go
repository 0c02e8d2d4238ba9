// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/MKhiriev/go-folio/internal/failure"
	"github.com/MKhiriev/go-folio/internal/logger"
	"github.com/MKhiriev/go-folio/internal/utils"
)

const (
	requestExceptionSummaryLen = 100
	requestExceptionMessageLen = 200
	unmatchedRoute             = "unmatched"
)

// requestLogStage writes one entry per request to the "requests" channel
// and records request metrics. Metrics carry the status the client
// received; the log entry of a failed request reports 500.
type requestLogStage struct {
	log       *logger.Logger
	skipPaths []string
}

func newRequestLogStage(channels *logger.Channels, skipPaths []string) *requestLogStage {
	skip := make([]string, 0, len(skipPaths))
	for _, p := range skipPaths {
		if p = strings.ToLower(strings.TrimSpace(p)); p != "" {
			skip = append(skip, p)
		}
	}
	return &requestLogStage{
		log:       channels.Get(logger.ChannelRequests),
		skipPaths: skip,
	}
}

func (s *requestLogStage) name() string { return "request_log" }

func (s *requestLogStage) before(x *exchange) {
	x.start = time.Now()
}

func (s *requestLogStage) afterSuccess(x *exchange) {
	status := x.writer.statusCode()
	duration := time.Since(x.start)

	if s.skipped(x.request) {
		return
	}

	path := x.request.URL.RequestURI()
	s.entry(levelForStatus(status), x, status, duration).
		Msg(fmt.Sprintf("REQUEST %s %s - %d - %dms", x.request.Method, path, status, duration.Milliseconds()))
}

func (s *requestLogStage) afterFailure(x *exchange, err error) {
	status := http.StatusInternalServerError
	duration := time.Since(x.start)

	if s.skipped(x.request) {
		return
	}

	typ := failure.TypeName(err)
	msg := err.Error()
	path := x.request.URL.RequestURI()

	s.entry(zerolog.ErrorLevel, x, status, duration).
		Str("exception_type", typ).
		Str("exception_message", utils.Truncate(msg, requestExceptionMessageLen)).
		Msg(fmt.Sprintf("REQUEST_EXCEPTION %s %s - %d - %dms - %s: %s",
			x.request.Method, path, status, duration.Milliseconds(), typ,
			utils.Truncate(msg, requestExceptionSummaryLen)))
}

func (s *requestLogStage) entry(level zerolog.Level, x *exchange, status int, duration time.Duration) *zerolog.Event {
	r := x.request
	return s.log.WithLevel(level).
		Str("method", r.Method).
		Str("path", r.URL.RequestURI()).
		Int("status_code", status).
		Float64("duration_ms", float64(duration.Microseconds())/1000).
		Int64("content_length", contentLength(x.writer)).
		Str("remote_addr", utils.ClientAddr(r)).
		Str("user_agent", utils.Truncate(r.UserAgent(), userAgentLen))
}

func (s *requestLogStage) afterRender(x *exchange) {
	route := x.view
	if route == "" {
		route = unmatchedRoute
	}
	status := strconv.Itoa(x.writer.statusCode())
	httpRequestsTotal.WithLabelValues(x.request.Method, route, status).Inc()
	httpRequestDuration.WithLabelValues(x.request.Method, route).Observe(time.Since(x.start).Seconds())
}

func (s *requestLogStage) skipped(r *http.Request) bool {
	path := strings.ToLower(r.URL.Path)
	for _, p := range s.skipPaths {
		if strings.HasPrefix(path, p) {
			return true
		}
	}
	return false
}

// contentLength prefers the declared Content-Length, then the bytes
// actually written.
func contentLength(w *responseWriter) int64 {
	if v := w.Header().Get("Content-Length"); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil {
			return n
		}
	}
	return int64(w.size)
}

func levelForStatus(status int) zerolog.Level {
	switch {
	case status >= http.StatusInternalServerError:
		return zerolog.ErrorLevel
	case status >= http.StatusBadRequest:
		return zerolog.WarnLevel
	default:
		return zerolog.InfoLevel
	}
}
