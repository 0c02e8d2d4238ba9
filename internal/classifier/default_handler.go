// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package classifier

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/MKhiriev/go-folio/internal/app"
	"github.com/MKhiriev/go-folio/internal/failure"
)

// DefaultHandler renders the failures a transport knows how to render on its
// own. It returns ok=false for anything else.
type DefaultHandler func(err error) (status int, payload any, ok bool)

// TransportDefault recognizes rejections, malformed JSON bodies, bodies
// over the size limit and requests that ran out of time.
func TransportDefault(err error) (int, any, bool) {
	var rejection *failure.Rejection
	if errors.As(err, &rejection) {
		return rejection.Status, rejection.Payload, true
	}

	var maxBytes *http.MaxBytesError
	if errors.As(err, &maxBytes) {
		r := failure.RequestTooLarge("")
		return r.Status, r.Payload, true
	}

	var syntaxErr *json.SyntaxError
	var typeErr *json.UnmarshalTypeError
	switch {
	case errors.As(err, &syntaxErr), errors.As(err, &typeErr):
		return http.StatusBadRequest, map[string]any{"detail": "JSON parse error - " + err.Error()}, true
	case errors.Is(err, io.EOF), errors.Is(err, io.ErrUnexpectedEOF):
		return http.StatusBadRequest, map[string]any{"detail": app.MsgParseError}, true
	}

	switch {
	case errors.Is(err, context.DeadlineExceeded):
		return http.StatusGatewayTimeout, map[string]any{"detail": app.MsgRequestTimeout}, true
	case errors.Is(err, context.Canceled):
		return StatusClientClosedRequest, map[string]any{"detail": app.MsgRequestCanceled}, true
	}

	return 0, nil, false
}

// StatusClientClosedRequest is reported when the caller went away before the
// response was ready.
const StatusClientClosedRequest = 499
