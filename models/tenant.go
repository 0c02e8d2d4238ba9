// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// Tenant is a customer account served by the API. Requests are bound to a
// tenant by the host they arrive on.
type Tenant struct {
	// ID is the stable tenant identifier (UUID text).
	ID string `json:"id"`

	// Name is the human-readable tenant name.
	Name string `json:"name"`

	// Host is the fully qualified host name the tenant is served on,
	// without port (e.g. "acme.folio.example").
	Host string `json:"host"`

	// Active reports whether the tenant may currently receive traffic.
	// Inactive tenants are treated as missing.
	Active bool `json:"active"`

	// Version is the optimistic-locking counter incremented on every update.
	Version int64 `json:"version"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName returns the name of the database table associated with Tenant.
func (t Tenant) TableName() string {
	return "tenants"
}

// TenantUpdate carries a rename request guarded by the version the client
// last observed.
type TenantUpdate struct {
	Name    string `json:"name" validate:"required,min=2,max=120"`
	Version int64  `json:"version" validate:"required,gte=1"`
}
