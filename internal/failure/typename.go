// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package failure

import (
	"errors"
	"reflect"
	"strings"
)

// TypeName returns a short name describing the kind of err, used as the
// exception_type log field. Typed failures report their Kind; other errors
// report the Go type of the innermost wrapped error.
func TypeName(err error) string {
	if err == nil {
		return ""
	}

	var b *Business
	if errors.As(err, &b) {
		return string(b.Kind)
	}

	if _, ok := AsValidation(err); ok {
		return "ValidationError"
	}

	var r *Rejection
	if errors.As(err, &r) {
		return string(r.Kind)
	}

	var p *Panic
	if errors.As(err, &p) {
		return "Panic"
	}

	if errors.Is(err, ErrNotFound) {
		return "NotFound"
	}

	inner := err
	for {
		next := errors.Unwrap(inner)
		if next == nil {
			break
		}
		inner = next
	}

	name := reflect.TypeOf(inner).String()
	name = strings.TrimPrefix(name, "*")
	return name
}
