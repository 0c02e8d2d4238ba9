// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"mime"
	"net/http"

	"github.com/MKhiriev/go-folio/internal/failure"
	"github.com/MKhiriev/go-folio/internal/reqctx"
	"github.com/MKhiriev/go-folio/internal/response"
	"github.com/MKhiriev/go-folio/models"
)

func (h *Handler) getCurrentTenant(w http.ResponseWriter, r *http.Request) error {
	tenant := reqctx.FromContext(r.Context()).Tenant()
	if tenant == nil {
		return errNoTenantInContext
	}

	_, err := response.Write(w, response.Success(tenant, http.StatusOK))
	return err
}

func (h *Handler) updateCurrentTenant(w http.ResponseWriter, r *http.Request) error {
	store := reqctx.FromContext(r.Context())
	tenant := store.Tenant()
	if tenant == nil {
		return errNoTenantInContext
	}

	var upd models.TenantUpdate
	if err := h.decodeJSON(w, r, &upd); err != nil {
		return err
	}

	updated, err := h.services.TenantService.Rename(r.Context(), tenant.ID, upd)
	if err != nil {
		return err
	}
	store.SetTenant(&updated)

	_, err = response.Write(w, response.Success(updated, http.StatusOK))
	return err
}

func (h *Handler) me(w http.ResponseWriter, r *http.Request) error {
	principal := reqctx.FromContext(r.Context()).Principal()
	if principal == nil {
		return failure.NotAuthenticated("")
	}

	_, err := response.Write(w, response.Success(principal, http.StatusOK))
	return err
}

// decodeJSON reads a size-capped JSON body into dst. Decoder errors are
// returned untouched; the classifier turns them into parse errors.
func (h *Handler) decodeJSON(w http.ResponseWriter, r *http.Request, dst any) error {
	if ct := r.Header.Get("Content-Type"); ct != "" {
		mediaType, _, err := mime.ParseMediaType(ct)
		if err != nil || mediaType != "application/json" {
			return failure.UnsupportedMediaType(ct)
		}
	}

	body := http.MaxBytesReader(w, r.Body, h.maxBodyBytes)
	defer body.Close()

	return json.NewDecoder(body).Decode(dst)
}
