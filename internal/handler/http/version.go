// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/go-folio/internal/failure"
	"github.com/MKhiriev/go-folio/internal/response"
)

func (h *Handler) getServerVersion(w http.ResponseWriter, r *http.Request) error {
	build := h.services.AppInfoService.GetBuildInfo(r.Context())

	_, err := response.Write(w, response.Success(build, http.StatusOK))
	return err
}

func (h *Handler) health(w http.ResponseWriter, r *http.Request) error {
	_, err := response.Write(w, response.Success(map[string]string{"status": "ok"}, http.StatusOK))
	return err
}

func (h *Handler) notFound(http.ResponseWriter, *http.Request) error {
	return failure.ErrNotFound
}
