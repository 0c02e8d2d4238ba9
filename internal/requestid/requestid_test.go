// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package requestid

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolve(t *testing.T) {
	tests := []struct {
		name     string
		inbound  string
		wantEcho bool
	}{
		{name: "valid v4 is echoed", inbound: "3fa85f64-5717-4562-b3fc-2c963f66afa6", wantEcho: true},
		{name: "valid v7 is echoed", inbound: "01890a5d-ac96-774b-bcce-b302099a8057", wantEcho: true},
		{name: "uppercase is echoed verbatim", inbound: "3FA85F64-5717-4562-B3FC-2C963F66AFA6", wantEcho: true},
		{name: "empty", inbound: ""},
		{name: "garbage", inbound: "not-a-uuid"},
		{name: "unhyphenated", inbound: "3fa85f6457174562b3fc2c963f66afa6"},
		{name: "urn form", inbound: "urn:uuid:3fa85f64-5717-4562-b3fc-2c963f66afa6"},
		{name: "braced", inbound: "{3fa85f64-5717-4562-b3fc-2c963f66afa6}"},
		{name: "36 chars but not hex", inbound: "zzzzzzzz-5717-4562-b3fc-2c963f66afa6"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Resolve(tt.inbound)

			if tt.wantEcho {
				assert.Equal(t, tt.inbound, got)
				return
			}

			assert.NotEqual(t, tt.inbound, got)
			parsed, err := uuid.Parse(got)
			require.NoError(t, err)
			assert.Equal(t, uuid.Version(4), parsed.Version())
			assert.Len(t, got, canonicalLength)
		})
	}
}

func TestResolve_GeneratesDistinctIDs(t *testing.T) {
	seen := make(map[string]struct{}, 100)
	for i := 0; i < 100; i++ {
		id := Resolve("")
		_, dup := seen[id]
		require.False(t, dup, "duplicate id %s", id)
		seen[id] = struct{}{}
	}
}
