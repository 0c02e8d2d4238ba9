// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package http implements the HTTP transport of go-folio.
//
// Every request runs through a pipeline of stages wrapped around the chi
// router. The stages populate the per-request context store, log the
// request and any failure, and clean up on every exit path. Endpoint
// handlers return errors instead of writing them; the pipeline hands the
// failure to the classifier, which renders the single error envelope of
// the API.
package http
