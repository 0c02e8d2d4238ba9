// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package requestid decides the correlation identifier of a request.
//
// An inbound X-Request-ID is reused only when it is a canonical hyphenated
// UUID; anything else is replaced by a freshly generated random UUID. The
// package never fails.
package requestid

import (
	"github.com/google/uuid"
)

// Header is the canonical request-ID header name.
const Header = "X-Request-ID"

// MetadataKey is the gRPC metadata key carrying the request ID.
const MetadataKey = "x-request-id"

// canonicalLength is the length of the 8-4-4-4-12 hyphenated UUID text.
const canonicalLength = 36

// Resolve returns inbound unchanged when it is a valid 36-character UUID,
// otherwise a new random (version 4) UUID.
func Resolve(inbound string) string {
	if IsValid(inbound) {
		return inbound
	}
	return uuid.NewString()
}

// IsValid reports whether id is a UUID in canonical hyphenated form.
// uuid.Parse alone also accepts the urn:uuid:, braced and unhyphenated
// encodings, which are rejected here.
func IsValid(id string) bool {
	if len(id) != canonicalLength {
		return false
	}
	_, err := uuid.Parse(id)
	return err == nil
}
