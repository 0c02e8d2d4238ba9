// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/MKhiriev/go-folio/internal/failure"
	"github.com/MKhiriev/go-folio/models"
)

const (
	FieldName    = "name"
	FieldVersion = "version"
)

// tenantUpdateFields maps json field names to struct field names.
var tenantUpdateFields = map[string]string{
	FieldName:    "Name",
	FieldVersion: "Version",
}

type TenantValidator struct {
	validate *validator.Validate
}

func NewTenantValidator() Validator {
	return &TenantValidator{validate: newStructValidator()}
}

// Validate checks a tenant update. Rule violations are returned as a
// *failure.ValidationError keyed by json field name; fields restricts the
// check to the named fields.
func (v *TenantValidator) Validate(_ context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.TenantUpdate:
		return v.validateTenantUpdate(value, fields...)
	case *models.TenantUpdate:
		return v.validateTenantUpdate(*value, fields...)
	default:
		return ErrUnsupportedType
	}
}

func (v *TenantValidator) validateTenantUpdate(upd models.TenantUpdate, fields ...string) error {
	var err error
	if len(fields) == 0 {
		err = v.validate.Struct(upd)
	} else {
		names := make([]string, 0, len(fields))
		for _, f := range fields {
			name, ok := tenantUpdateFields[f]
			if !ok {
				return fmt.Errorf("%w: %s", ErrUnknownField, f)
			}
			names = append(names, name)
		}
		err = v.validate.StructPartial(upd, names...)
	}

	if err == nil {
		return nil
	}

	var vErrs validator.ValidationErrors
	if errors.As(err, &vErrs) {
		return failure.FromValidator(vErrs)
	}
	return fmt.Errorf("validating tenant update: %w", err)
}

// newStructValidator reports fields by their json names.
func newStructValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}
