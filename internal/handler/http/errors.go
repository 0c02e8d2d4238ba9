// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

var (
	// errNoTenantInContext means a tenant-scoped endpoint was routed
	// without the tenant middleware.
	errNoTenantInContext = errors.New("no tenant in request context")
)
