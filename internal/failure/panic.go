// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package failure

import (
	"fmt"
	"net/http"
)

// Panic wraps a value recovered from a panicking handler.
// It deliberately does not unwrap to the panic value: a panic is always an
// unexpected failure, even when the value is itself a typed failure.
type Panic struct {
	Value any
	Stack []byte
}

func NewPanic(value any, stack []byte) *Panic {
	return &Panic{Value: value, Stack: stack}
}

func (p *Panic) Error() string {
	return fmt.Sprintf("panic: %v", p.Value)
}

func (p *Panic) HTTPStatus() int {
	return http.StatusInternalServerError
}
