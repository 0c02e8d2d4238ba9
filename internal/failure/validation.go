// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package failure

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/MKhiriev/go-folio/internal/app"
)

// FieldError holds the messages reported for one input field.
type FieldError struct {
	Field    string
	Messages []string
}

// Field builds a FieldError.
func Field(name string, messages ...string) FieldError {
	return FieldError{Field: name, Messages: messages}
}

// ValidationError reports rejected input. Exactly one shape is used:
// per-field messages (in declaration order), a flat message list, or a
// single message.
type ValidationError struct {
	Fields   []FieldError
	Messages []string
	Message  string
}

// NewValidation returns a ValidationError carrying a single message.
func NewValidation(message string) *ValidationError {
	return &ValidationError{Message: message}
}

// NewValidationList returns a ValidationError carrying a flat message list.
func NewValidationList(messages ...string) *ValidationError {
	return &ValidationError{Messages: messages}
}

// NewFieldValidation returns a ValidationError keyed by field.
func NewFieldValidation(fields ...FieldError) *ValidationError {
	return &ValidationError{Fields: fields}
}

// Detail renders the failure as one line: "field: msg; field: msg" for
// field errors, "msg; msg" for a list, otherwise the single message.
func (v *ValidationError) Detail() string {
	switch {
	case len(v.Fields) > 0:
		parts := make([]string, 0, len(v.Fields))
		for _, f := range v.Fields {
			for _, m := range f.Messages {
				parts = append(parts, f.Field+": "+m)
			}
		}
		return strings.Join(parts, "; ")
	case len(v.Messages) > 0:
		return strings.Join(v.Messages, "; ")
	case v.Message != "":
		return v.Message
	default:
		return app.MsgInvalidData
	}
}

func (v *ValidationError) Error() string {
	return v.Detail()
}

func (v *ValidationError) HTTPStatus() int {
	return http.StatusBadRequest
}

// AsValidation extracts a ValidationError from err. Besides *ValidationError
// it recognizes validator.ValidationErrors returned by go-playground/validator.
func AsValidation(err error) (*ValidationError, bool) {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve, true
	}

	var vErrs validator.ValidationErrors
	if errors.As(err, &vErrs) {
		return FromValidator(vErrs), true
	}

	return nil, false
}

// FromValidator converts validator errors into a field-keyed ValidationError,
// grouping messages of the same field and keeping first-seen field order.
func FromValidator(vErrs validator.ValidationErrors) *ValidationError {
	index := make(map[string]int, len(vErrs))
	fields := make([]FieldError, 0, len(vErrs))

	for _, fe := range vErrs {
		name := fe.Field()
		i, ok := index[name]
		if !ok {
			i = len(fields)
			index[name] = i
			fields = append(fields, FieldError{Field: name})
		}
		fields[i].Messages = append(fields[i].Messages, tagMessage(fe))
	}

	return &ValidationError{Fields: fields}
}

func tagMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "required"
	case "email":
		return "must be a valid email address"
	case "min":
		return fmt.Sprintf("must be at least %s characters", fe.Param())
	case "max":
		return fmt.Sprintf("must be at most %s characters", fe.Param())
	case "gte":
		return fmt.Sprintf("must be greater than or equal to %s", fe.Param())
	case "lte":
		return fmt.Sprintf("must be less than or equal to %s", fe.Param())
	case "oneof":
		return fmt.Sprintf("must be one of: %s", fe.Param())
	case "uuid", "uuid4":
		return "must be a valid UUID"
	default:
		return fmt.Sprintf("failed on the '%s' rule", fe.Tag())
	}
}
