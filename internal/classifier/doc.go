// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package classifier turns any failure raised while serving an API request
// into a response with the {"errors": "..."} envelope.
//
// Failures are matched in order: business failures, validation failures,
// routing not-found, whatever the transport's own default handler
// recognizes, and finally everything else, which is logged on the
// "unhandled" channel and rendered as an internal server error.
//
// Requests outside the API surface (admin, static assets, ...) are left to
// the transport's native rendering: Classify reports no opinion for them.
package classifier
