// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package response

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuilders(t *testing.T) {
	tests := []struct {
		name       string
		got        Response
		wantStatus int
		wantMsg    string
	}{
		{"error default status", Error("bad", 0), http.StatusBadRequest, "bad"},
		{"error explicit status", Error("gone", http.StatusGone), http.StatusGone, "gone"},
		{"bad request", BadRequest("nope"), http.StatusBadRequest, "nope"},
		{"unauthorized default", Unauthorized(""), http.StatusUnauthorized, "Invalid credentials"},
		{"forbidden default", Forbidden(""), http.StatusForbidden, "Permission denied"},
		{"not found default", NotFound(""), http.StatusNotFound, "Not found"},
		{"not found override", NotFound("no portfolio"), http.StatusNotFound, "no portfolio"},
		{"conflict default", Conflict(""), http.StatusConflict, "Conflict"},
		{"internal default", InternalServerError(""), http.StatusInternalServerError, "Internal server error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantStatus, tt.got.Status)
			assert.Equal(t, tt.wantMsg, tt.got.Message())
		})
	}
}

func TestSuccess(t *testing.T) {
	r := Success(map[string]int{"n": 1}, 0)
	assert.Equal(t, http.StatusOK, r.Status)
	assert.Empty(t, r.Message())

	assert.Equal(t, http.StatusCreated, Success(nil, http.StatusCreated).Status)
}

func TestWrite(t *testing.T) {
	tests := []struct {
		name       string
		resp       Response
		wantStatus int
		wantBody   string
	}{
		{
			name:       "envelope",
			resp:       Conflict(""),
			wantStatus: http.StatusConflict,
			wantBody:   `{"errors":"Conflict"}`,
		},
		{
			name:       "success payload is verbatim",
			resp:       Success(map[string]any{"id": "t-1", "name": "Acme"}, 0),
			wantStatus: http.StatusOK,
			wantBody:   `{"id":"t-1","name":"Acme"}`,
		},
		{
			name:       "raw message",
			resp:       Success(json.RawMessage(`{"pre":"encoded"}`), 0),
			wantStatus: http.StatusOK,
			wantBody:   `{"pre":"encoded"}`,
		},
		{
			name:       "byte slice",
			resp:       Success([]byte(`[1,2]`), http.StatusAccepted),
			wantStatus: http.StatusAccepted,
			wantBody:   `[1,2]`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()

			_, err := Write(w, tt.resp)
			require.NoError(t, err)

			assert.Equal(t, tt.wantStatus, w.Code)
			assert.Equal(t, "application/json", w.Header().Get("Content-Type"))
			assert.JSONEq(t, tt.wantBody, w.Body.String())
		})
	}
}

func TestWrite_NilBody(t *testing.T) {
	w := httptest.NewRecorder()

	n, err := Write(w, Success(nil, http.StatusNoContent))

	require.NoError(t, err)
	assert.Zero(t, n)
	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Empty(t, w.Body.String())
}
