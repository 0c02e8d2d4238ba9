// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package failure

import (
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-folio/internal/app"
)

const (
	KindNotAuthenticated     Kind = "NotAuthenticated"
	KindAuthenticationFailed Kind = "AuthenticationFailed"
	KindPermissionDenied     Kind = "PermissionDenied"
	KindMethodNotAllowed     Kind = "MethodNotAllowed"
	KindNotAcceptable        Kind = "NotAcceptable"
	KindUnsupportedMediaType Kind = "UnsupportedMediaType"
	KindThrottled            Kind = "Throttled"
	KindParseError           Kind = "ParseError"
	KindRequestTooLarge      Kind = "RequestTooLarge"
)

// Sentinels for errors.Is matching by kind.
var (
	ErrNotAuthenticated     = NotAuthenticated("")
	ErrAuthenticationFailed = AuthenticationFailed("")
	ErrPermissionDenied     = PermissionDenied("")
	ErrMethodNotAllowed     = &Rejection{Kind: KindMethodNotAllowed, Status: http.StatusMethodNotAllowed}
	ErrParseError           = ParseError("")
	ErrRequestTooLarge      = RequestTooLarge("")
)

// Rejection is a transport-level refusal of the request. Payload is the
// structured body the transport would render on its own, typically
// map[string]any{"detail": "..."}, a field map, a list or a scalar.
type Rejection struct {
	Kind    Kind
	Status  int
	Payload any
}

// NewRejection builds a rejection whose payload is {"detail": detail}.
func NewRejection(kind Kind, status int, detail string) *Rejection {
	return &Rejection{Kind: kind, Status: status, Payload: map[string]any{"detail": detail}}
}

func NotAuthenticated(detail string) *Rejection {
	return NewRejection(KindNotAuthenticated, http.StatusUnauthorized, orDefault(detail, app.MsgNotAuthenticated))
}

func AuthenticationFailed(detail string) *Rejection {
	return NewRejection(KindAuthenticationFailed, http.StatusUnauthorized, orDefault(detail, app.MsgAuthenticationFailed))
}

func PermissionDenied(detail string) *Rejection {
	return NewRejection(KindPermissionDenied, http.StatusForbidden, orDefault(detail, app.MsgPermissionDenied))
}

func MethodNotAllowed(method string) *Rejection {
	detail := app.MsgMethodNotAllowed
	if method != "" {
		detail = fmt.Sprintf("Method %q not allowed", method)
	}
	return NewRejection(KindMethodNotAllowed, http.StatusMethodNotAllowed, detail)
}

func NotAcceptable(detail string) *Rejection {
	return NewRejection(KindNotAcceptable, http.StatusNotAcceptable, orDefault(detail, app.MsgNotAcceptable))
}

func UnsupportedMediaType(mediaType string) *Rejection {
	detail := app.MsgUnsupportedMediaType
	if mediaType != "" {
		detail = fmt.Sprintf("Unsupported media type %q in request", mediaType)
	}
	return NewRejection(KindUnsupportedMediaType, http.StatusUnsupportedMediaType, detail)
}

func Throttled(detail string) *Rejection {
	return NewRejection(KindThrottled, http.StatusTooManyRequests, orDefault(detail, app.MsgThrottled))
}

func ParseError(detail string) *Rejection {
	return NewRejection(KindParseError, http.StatusBadRequest, orDefault(detail, app.MsgParseError))
}

func RequestTooLarge(detail string) *Rejection {
	return NewRejection(KindRequestTooLarge, http.StatusRequestEntityTooLarge, orDefault(detail, app.MsgRequestTooLarge))
}

func (r *Rejection) Error() string {
	if m, ok := r.Payload.(map[string]any); ok {
		if d, ok := m["detail"]; ok {
			return fmt.Sprintf("%s: %v", r.Kind, d)
		}
	}
	return fmt.Sprintf("%s: %v", r.Kind, r.Payload)
}

func (r *Rejection) HTTPStatus() int {
	return r.Status
}

// Is reports whether target is a Rejection of the same kind.
func (r *Rejection) Is(target error) bool {
	t, ok := target.(*Rejection)
	return ok && t.Kind == r.Kind
}
