// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package classifier

import (
	"fmt"
	"reflect"
	"sort"
	"strings"

	"github.com/MKhiriev/go-folio/internal/app"
)

// ExtractMessage flattens a structured failure payload into one line.
//
// Rules, first match wins:
//   - a map with "detail": that value;
//   - a map with "non_field_errors": its elements joined by "; ";
//   - any other non-empty map: "field: value" per element, keys sorted;
//   - a list: its elements joined by "; ";
//   - anything non-empty: its string form;
//   - otherwise "Unknown error".
func ExtractMessage(payload any) string {
	if payload == nil {
		return app.MsgUnknownError
	}

	v := reflect.ValueOf(payload)
	for v.Kind() == reflect.Pointer || v.Kind() == reflect.Interface {
		if v.IsNil() {
			return app.MsgUnknownError
		}
		v = v.Elem()
	}

	switch {
	case v.Kind() == reflect.Map && v.Type().Key().Kind() == reflect.String:
		if msg, ok := extractFromMap(v); ok {
			return msg
		}
	case isList(v):
		return strings.Join(listItems(v), "; ")
	}

	if isEmpty(v) {
		return app.MsgUnknownError
	}
	return stringify(v)
}

func extractFromMap(m reflect.Value) (string, bool) {
	if d := m.MapIndex(reflect.ValueOf("detail").Convert(m.Type().Key())); d.IsValid() {
		return stringify(d), true
	}

	if nfe := m.MapIndex(reflect.ValueOf("non_field_errors").Convert(m.Type().Key())); nfe.IsValid() {
		nfe = unwrapInterface(nfe)
		if isList(nfe) {
			return strings.Join(listItems(nfe), "; "), true
		}
		return stringify(nfe), true
	}

	keys := make([]string, 0, m.Len())
	for _, k := range m.MapKeys() {
		keys = append(keys, k.String())
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		val := unwrapInterface(m.MapIndex(reflect.ValueOf(k).Convert(m.Type().Key())))
		if isList(val) {
			for _, item := range listItems(val) {
				parts = append(parts, k+": "+item)
			}
			continue
		}
		parts = append(parts, k+": "+stringify(val))
	}

	if len(parts) == 0 {
		return "", false
	}
	return strings.Join(parts, "; "), true
}

func unwrapInterface(v reflect.Value) reflect.Value {
	for v.IsValid() && v.Kind() == reflect.Interface && !v.IsNil() {
		v = v.Elem()
	}
	return v
}

// isList treats slices and arrays as lists, except byte slices.
func isList(v reflect.Value) bool {
	if !v.IsValid() {
		return false
	}
	k := v.Kind()
	return (k == reflect.Slice || k == reflect.Array) && v.Type().Elem().Kind() != reflect.Uint8
}

func listItems(v reflect.Value) []string {
	items := make([]string, 0, v.Len())
	for i := 0; i < v.Len(); i++ {
		items = append(items, stringify(v.Index(i)))
	}
	return items
}

func isEmpty(v reflect.Value) bool {
	switch v.Kind() {
	case reflect.String, reflect.Map, reflect.Slice, reflect.Array:
		return v.Len() == 0
	case reflect.Invalid:
		return true
	default:
		return false
	}
}

func stringify(v reflect.Value) string {
	v = unwrapInterface(v)
	if !v.IsValid() || ((v.Kind() == reflect.Interface || v.Kind() == reflect.Pointer) && v.IsNil()) {
		return ""
	}
	if v.Kind() == reflect.Slice && v.Type().Elem().Kind() == reflect.Uint8 {
		return string(v.Bytes())
	}
	if v.CanInterface() {
		return fmt.Sprint(v.Interface())
	}
	return v.String()
}
