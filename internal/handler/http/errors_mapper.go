// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"errors"
	"net/http"

	"github.com/MKhiriev/go-folio/internal/failure"
)

// errorStatusMap covers failures without an HTTPStatus method.
var errorStatusMap = map[error]int{
	failure.ErrNotFound:      http.StatusNotFound,
	context.DeadlineExceeded: http.StatusGatewayTimeout,
	context.Canceled:         499,
}

// statusFromError picks the status used when a failure is rendered
// natively, outside the API surface.
func statusFromError(err error) int {
	var sc failure.StatusCoder
	if errors.As(err, &sc) {
		return sc.HTTPStatus()
	}
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

// nativeError is the rendering used when the classifier has no opinion.
func nativeError(w http.ResponseWriter, err error) {
	status := statusFromError(err)
	text := http.StatusText(status)
	if text == "" {
		text = "Client Closed Request"
	}
	http.Error(w, text, status)
}
