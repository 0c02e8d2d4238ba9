// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Principal is the authenticated caller of a request.
type Principal struct {
	// ID is the user identifier taken from the token subject.
	ID int64 `json:"id"`

	// Email is the address claimed by the token, if any.
	Email string `json:"email,omitempty"`

	// TenantID is the tenant the token was issued for.
	TenantID string `json:"tenant_id"`
}
