// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/go-folio/internal/failure"
	"github.com/MKhiriev/go-folio/internal/reqctx"
	"github.com/MKhiriev/go-folio/internal/utils"
)

// withAuth authenticates an optional bearer token. Requests without an
// Authorization header continue anonymously; a malformed or invalid token
// fails the request.
func (h *Handler) withAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get("Authorization")
		if header == "" {
			next.ServeHTTP(w, r)
			return
		}

		token, err := utils.ParseBearerToken(header)
		if err != nil {
			fail(r, failure.AuthenticationFailed(""))
			return
		}

		principal, err := h.services.AuthService.ParseToken(r.Context(), token)
		if err != nil {
			fail(r, err)
			return
		}

		reqctx.FromContext(r.Context()).SetPrincipal(&principal)
		next.ServeHTTP(w, r)
	})
}

// requirePrincipal rejects anonymous requests and principals of another
// tenant.
func (h *Handler) requirePrincipal(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		store := reqctx.FromContext(r.Context())

		principal := store.Principal()
		if principal == nil {
			fail(r, failure.NotAuthenticated(""))
			return
		}
		if tenant := store.Tenant(); tenant != nil && principal.TenantID != tenant.ID {
			fail(r, failure.PermissionDenied(""))
			return
		}

		next.ServeHTTP(w, r)
	})
}
