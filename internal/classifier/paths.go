// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package classifier

import "strings"

// Default API surface.
var (
	DefaultAPIPrefixes      = []string{"api/", "portfolios/", "tenants/", "plans/", "public/"}
	DefaultExcludedPrefixes = []string{"admin/", "static/", "media/", "favicon.ico", "robots.txt"}
)

// APIPaths recognizes request paths that belong to the API surface.
type APIPaths struct {
	include []string
	exclude []string
}

// NewAPIPaths builds a recognizer. Nil slices select the defaults; an empty
// non-nil include list means no path is API.
func NewAPIPaths(include, exclude []string) APIPaths {
	if include == nil {
		include = DefaultAPIPrefixes
	}
	if exclude == nil {
		exclude = DefaultExcludedPrefixes
	}

	return APIPaths{include: lowerAll(include), exclude: lowerAll(exclude)}
}

// IsAPI lower-cases path, trims its slashes, and reports whether it starts
// with an included prefix and with no excluded one. Exclusion wins.
func (p APIPaths) IsAPI(path string) bool {
	path = strings.Trim(strings.ToLower(path), "/")

	for _, prefix := range p.exclude {
		if strings.HasPrefix(path, prefix) {
			return false
		}
	}

	for _, prefix := range p.include {
		if strings.HasPrefix(path, prefix) {
			return true
		}
	}

	return false
}

func lowerAll(in []string) []string {
	out := make([]string, 0, len(in))
	for _, s := range in {
		if s = strings.ToLower(strings.TrimLeft(strings.TrimSpace(s), "/")); s != "" {
			out = append(out, s)
		}
	}
	return out
}
