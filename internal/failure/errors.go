// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package failure

import "errors"

// ErrNotFound is returned when no route matches the request path.
var ErrNotFound = errors.New("not found")

// StatusCoder is implemented by failures that carry an HTTP status.
type StatusCoder interface {
	HTTPStatus() int
}
