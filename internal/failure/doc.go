// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package failure defines the failure taxonomy recognized by the API.
//
// Handlers and services report failures by returning one of:
//
//   - *Business: an anticipated business-rule violation carrying its own
//     message and HTTP status (TenantNotFound, VersionConflict, ...);
//   - *ValidationError: rejected input, by field or as a flat message list;
//   - *Rejection: a transport-level rejection such as a missing credential
//     or an unsupported method, with a structured payload;
//   - ErrNotFound: the router found no route for the request.
//
// A *Panic is produced by the HTTP pipeline when a handler panics. Anything
// else is an unexpected failure and is rendered as an internal server error.
//
// All typed failures implement HTTPStatus() int.
package failure
