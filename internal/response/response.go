// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package response builds the bodies the API writes: success payloads as
// they are, failures as the {"errors": "..."} envelope.
package response

import (
	"encoding/json"
	"net/http"

	"github.com/MKhiriev/go-folio/internal/app"
	"github.com/MKhiriev/go-folio/internal/utils"
)

// Envelope is the single wire shape of every error response.
type Envelope struct {
	Errors string `json:"errors"`
}

// Response is a status plus the body to serialize.
type Response struct {
	Status int
	Body   any
}

// Success wraps payload. A zero status defaults to 200 OK.
func Success(payload any, status int) Response {
	if status == 0 {
		status = http.StatusOK
	}
	return Response{Status: status, Body: payload}
}

// Error wraps message in an Envelope. A zero status defaults to 400.
func Error(message string, status int) Response {
	if status == 0 {
		status = http.StatusBadRequest
	}
	return Response{Status: status, Body: Envelope{Errors: message}}
}

func BadRequest(message string) Response {
	return Error(message, http.StatusBadRequest)
}

func Unauthorized(message string) Response {
	return Error(orDefault(message, app.MsgInvalidCredentials), http.StatusUnauthorized)
}

func Forbidden(message string) Response {
	return Error(orDefault(message, app.MsgPermissionDenied), http.StatusForbidden)
}

func NotFound(message string) Response {
	return Error(orDefault(message, app.MsgNotFound), http.StatusNotFound)
}

func Conflict(message string) Response {
	return Error(orDefault(message, app.MsgConflict), http.StatusConflict)
}

func InternalServerError(message string) Response {
	return Error(orDefault(message, app.MsgInternalServerError), http.StatusInternalServerError)
}

// Message returns the envelope text, or "" for success responses.
func (r Response) Message() string {
	if e, ok := r.Body.(Envelope); ok {
		return e.Errors
	}
	return ""
}

// Write serializes r as JSON. json.RawMessage and []byte bodies are written
// verbatim; a nil body produces an empty response with only the status.
func Write(w http.ResponseWriter, r Response) (int, error) {
	switch body := r.Body.(type) {
	case nil:
		w.WriteHeader(r.Status)
		return 0, nil
	case json.RawMessage:
		return utils.WriteRawJSON(w, body, r.Status)
	case []byte:
		return utils.WriteRawJSON(w, body, r.Status)
	default:
		return utils.WriteJSON(w, body, r.Status)
	}
}

func orDefault(message, def string) string {
	if message == "" {
		return def
	}
	return message
}
