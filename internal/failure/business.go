// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package failure

import (
	"net/http"

	"github.com/MKhiriev/go-folio/internal/app"
)

// Kind tags a failure with a stable, machine-readable name.
type Kind string

const (
	KindTenantNotFound       Kind = "TenantNotFound"
	KindVersionConflict      Kind = "VersionConflict"
	KindResourceNotFound     Kind = "ResourceNotFound"
	KindResourceNotPublished Kind = "ResourceNotPublished"
	KindInvalidHost          Kind = "InvalidHost"
)

// Business is an anticipated business-rule violation.
type Business struct {
	Kind    Kind
	Message string
	Status  int
}

// Sentinels for errors.Is matching. Two Business values match when their
// kinds are equal, regardless of message.
var (
	ErrTenantNotFound       = TenantNotFound("")
	ErrVersionConflict      = VersionConflict("")
	ErrResourceNotFound     = ResourceNotFound("")
	ErrResourceNotPublished = ResourceNotPublished("")
	ErrInvalidHost          = InvalidHost("")
)

// NewBusiness declares a business failure of any kind. A zero status
// defaults to 400 Bad Request.
func NewBusiness(kind Kind, message string, status int) *Business {
	if status == 0 {
		status = http.StatusBadRequest
	}
	return &Business{Kind: kind, Message: message, Status: status}
}

// TenantNotFound reports that no active tenant is bound to the request.
// An empty message selects the default one.
func TenantNotFound(message string) *Business {
	return NewBusiness(KindTenantNotFound, orDefault(message, app.MsgTenantNotFound), http.StatusNotFound)
}

// VersionConflict reports an optimistic-locking failure.
func VersionConflict(message string) *Business {
	return NewBusiness(KindVersionConflict, orDefault(message, app.MsgVersionConflict), http.StatusConflict)
}

func ResourceNotFound(message string) *Business {
	return NewBusiness(KindResourceNotFound, orDefault(message, app.MsgResourceNotFound), http.StatusNotFound)
}

func ResourceNotPublished(message string) *Business {
	return NewBusiness(KindResourceNotPublished, orDefault(message, app.MsgResourceNotPublished), http.StatusNotFound)
}

func InvalidHost(message string) *Business {
	return NewBusiness(KindInvalidHost, orDefault(message, app.MsgInvalidHost), http.StatusBadRequest)
}

func (b *Business) Error() string {
	return b.Message
}

func (b *Business) HTTPStatus() int {
	return b.Status
}

// Is reports whether target is a Business failure of the same kind.
func (b *Business) Is(target error) bool {
	t, ok := target.(*Business)
	return ok && t.Kind == b.Kind
}

func orDefault(message, def string) string {
	if message == "" {
		return def
	}
	return message
}
