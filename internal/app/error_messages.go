// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used across the
// go-folio handlers, failures and response builders.
//
// All Msg* constants are human-readable message strings that end up in the
// "errors" field of an error envelope. Keeping them in one place ensures
// consistent wording throughout the API.
package app

// Business-rule messages.
const (
	// MsgTenantNotFound is returned when no active tenant is bound to the
	// request host.
	MsgTenantNotFound = "Tenant not found"

	// MsgVersionConflict is returned when an optimistic-locking check fails:
	// the version supplied by the client no longer matches the stored one.
	MsgVersionConflict = "Record was updated by another session; reload and retry"

	// MsgResourceNotFound is returned when a tenant-owned resource does not
	// exist.
	MsgResourceNotFound = "Resource not found"

	// MsgResourceNotPublished is returned when a resource exists but is not
	// visible to the public yet.
	MsgResourceNotPublished = "Resource not published"

	// MsgInvalidHost is returned when the request host is outside the
	// configured allow-list.
	MsgInvalidHost = "Host not permitted"

	// MsgInvalidData is the fallback for a validation failure that carries
	// no detail.
	MsgInvalidData = "Invalid data"
)

// Framework rejection messages.
const (
	MsgAuthenticationFailed = "Invalid authentication credentials"
	MsgNotAuthenticated     = "Authentication credentials were not provided"
	MsgPermissionDenied     = "Permission denied"
	MsgMethodNotAllowed     = "Method not allowed"
	MsgNotAcceptable        = "Requested content type is not acceptable"
	MsgUnsupportedMediaType = "Unsupported media type"
	MsgThrottled            = "Too many requests; try again later"
	MsgParseError           = "Malformed request body"
	MsgRequestTooLarge      = "Request body too large"
	MsgRequestTimeout       = "Request timed out"
	MsgRequestCanceled      = "Request canceled by client"
)

// Response builder defaults.
const (
	MsgInvalidCredentials  = "Invalid credentials"
	MsgNotFound            = "Not found"
	MsgConflict            = "Conflict"
	MsgInternalServerError = "Internal server error"
	MsgUnknownError        = "Unknown error"
)
