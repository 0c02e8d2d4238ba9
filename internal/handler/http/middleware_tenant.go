// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/go-folio/internal/reqctx"
	"github.com/MKhiriev/go-folio/internal/utils"
)

// withTenant binds the tenant served on the request host to the context
// store. Unknown, inactive or disallowed hosts fail the request.
func (h *Handler) withTenant(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		tenant, err := h.services.TenantService.ResolveHost(r.Context(), utils.HostWithoutPort(r))
		if err != nil {
			fail(r, err)
			return
		}

		reqctx.FromContext(r.Context()).SetTenant(&tenant)
		next.ServeHTTP(w, r)
	})
}
