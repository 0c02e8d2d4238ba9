// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package grpc

import (
	"net/http"

	"google.golang.org/grpc/codes"

	"github.com/MKhiriev/go-folio/internal/classifier"
)

const statusClientClosedRequest = 499

var httpToCode = map[int]codes.Code{
	http.StatusBadRequest:            codes.InvalidArgument,
	http.StatusUnauthorized:          codes.Unauthenticated,
	http.StatusForbidden:             codes.PermissionDenied,
	http.StatusNotFound:              codes.NotFound,
	http.StatusMethodNotAllowed:      codes.Unimplemented,
	http.StatusNotAcceptable:         codes.InvalidArgument,
	http.StatusConflict:              codes.Aborted,
	http.StatusRequestEntityTooLarge: codes.ResourceExhausted,
	http.StatusUnsupportedMediaType:  codes.InvalidArgument,
	http.StatusTooManyRequests:       codes.ResourceExhausted,
	statusClientClosedRequest:        codes.Canceled,
	http.StatusNotImplemented:        codes.Unimplemented,
	http.StatusServiceUnavailable:    codes.Unavailable,
	http.StatusGatewayTimeout:        codes.DeadlineExceeded,
}

// codeForHTTPStatus maps a normalized response status to a gRPC code.
func codeForHTTPStatus(status int) codes.Code {
	if code, ok := httpToCode[status]; ok {
		return code
	}
	switch {
	case status >= http.StatusInternalServerError:
		return codes.Internal
	case status >= http.StatusBadRequest:
		return codes.FailedPrecondition
	default:
		return codes.Unknown
	}
}

func classifierCall(method string) classifier.Call {
	return classifier.Call{Method: "GRPC", Path: method, View: method}
}
