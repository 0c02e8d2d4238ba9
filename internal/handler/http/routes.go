// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// endpoint is an HTTP handler that reports failures by returning them.
type endpoint func(w http.ResponseWriter, r *http.Request) error

// Init builds the router and wraps it in the request pipeline.
func (h *Handler) Init() http.Handler {
	router := chi.NewRouter()

	// registered before Route so the subrouter inherits them
	router.NotFound(h.handle(h.notFound))
	router.MethodNotAllowed(h.handle(checkHTTPMethod(router)))

	router.Get("/health", h.handle(h.health))
	router.Method(http.MethodGet, "/metrics", h.raw(promhttp.Handler()))

	router.Route("/api", func(r chi.Router) {
		r.Get("/version/", h.handle(h.getServerVersion))

		// tenant-scoped routes with optional authentication
		r.Group(func(r chi.Router) {
			r.Use(h.withTenant, h.withAuth)

			r.Get("/tenants/current", h.handle(h.getCurrentTenant))
			r.With(h.requirePrincipal).Put("/tenants/current", h.handle(h.updateCurrentTenant))
			r.With(h.requirePrincipal).Get("/me", h.handle(h.me))
		})
	})

	return newPipeline(router, h.classifier, h.logger,
		&contextStage{logger: h.logger, timeout: h.requestTimeout},
		&exceptionLogStage{channels: h.channels},
		newRequestLogStage(h.channels, h.skipPaths),
	)
}

// handle adapts an endpoint to chi and records the matched route.
func (h *Handler) handle(fn endpoint) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		markView(r)
		if err := fn(w, r); err != nil {
			fail(r, err)
		}
	}
}

// raw mounts a plain handler while still recording the matched route.
func (h *Handler) raw(next http.Handler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		markView(r)
		next.ServeHTTP(w, r)
	}
}

func markView(r *http.Request) {
	if x, ok := r.Context().Value(exchangeCtxKey{}).(*exchange); ok {
		x.markView(r)
	}
}
