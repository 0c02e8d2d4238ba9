// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"sort"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/go-folio/internal/failure"
)

// checkHTTPMethod is the router's MethodNotAllowed endpoint. It advertises
// the methods registered for the exact request path in the Allow header
// and reports a MethodNotAllowed rejection.
//
// Only exact pattern matches are considered; parameterised segments are
// not expanded.
func checkHTTPMethod(router *chi.Mux) endpoint {
	return func(w http.ResponseWriter, r *http.Request) error {
		var allowed []string
		_ = chi.Walk(router, func(method, route string, _ http.Handler, _ ...func(http.Handler) http.Handler) error {
			if route == r.URL.Path {
				allowed = append(allowed, method)
			}
			return nil
		})

		if len(allowed) > 0 {
			sort.Strings(allowed)
			w.Header().Set("Allow", strings.Join(allowed, ", "))
		}

		return failure.MethodNotAllowed(r.Method)
	}
}
