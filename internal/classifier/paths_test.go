// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package classifier

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAPIPaths_Defaults(t *testing.T) {
	p := NewAPIPaths(nil, nil)

	tests := []struct {
		path string
		want bool
	}{
		{"/api/tenants/current", true},
		{"/API/Me/", true},
		{"/portfolios/12", true},
		{"/tenants/", true},
		{"/plans/basic", true},
		{"/public/page", true},
		{"/admin/", false},
		{"/admin/api/x", false},
		{"/static/app.js", false},
		{"/media/a.png", false},
		{"/favicon.ico", false},
		{"/robots.txt", false},
		{"/health", false},
		{"/api", false},
		{"/", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			assert.Equal(t, tt.want, p.IsAPI(tt.path))
		})
	}
}

func TestAPIPaths_ExclusionWins(t *testing.T) {
	p := NewAPIPaths([]string{"/api/"}, []string{"api/internal/"})

	assert.True(t, p.IsAPI("/api/me"))
	assert.False(t, p.IsAPI("/api/internal/debug"))
}

func TestAPIPaths_EmptyIncludeMeansNothing(t *testing.T) {
	p := NewAPIPaths([]string{}, nil)
	assert.False(t, p.IsAPI("/api/me"))
}
