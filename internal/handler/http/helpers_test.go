// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"bytes"
	"encoding/json"
	"strings"
	"sync"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-folio/internal/classifier"
	"github.com/MKhiriev/go-folio/internal/config"
	"github.com/MKhiriev/go-folio/internal/logger"
	"github.com/MKhiriev/go-folio/internal/mock"
	"github.com/MKhiriev/go-folio/internal/service"
	"github.com/MKhiriev/go-folio/models"
)

// syncBuffer is a log sink shared by server goroutines and the test.
type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

// entries decodes every JSON log line written so far.
func (b *syncBuffer) entries(t *testing.T) []map[string]any {
	t.Helper()
	var out []map[string]any
	for _, line := range strings.Split(strings.TrimSpace(b.String()), "\n") {
		if line == "" {
			continue
		}
		var e map[string]any
		require.NoError(t, json.Unmarshal([]byte(line), &e))
		out = append(out, e)
	}
	return out
}

// onChannel keeps the entries of one channel.
func (b *syncBuffer) onChannel(t *testing.T, channel string) []map[string]any {
	t.Helper()
	var out []map[string]any
	for _, e := range b.entries(t) {
		if e["channel"] == channel {
			out = append(out, e)
		}
	}
	return out
}

type testEnv struct {
	handler  *Handler
	tenants  *mock.MockTenantService
	auth     *mock.MockAuthService
	appInfo  *mock.MockAppInfoService
	logs     *syncBuffer
	base     *logger.Logger
	channels *logger.Channels
	class    *classifier.Classifier
}

func newTestEnv(t *testing.T, cfg config.StructuredConfig) *testEnv {
	t.Helper()
	ctrl := gomock.NewController(t)

	logs := &syncBuffer{}
	base := &logger.Logger{Logger: zerolog.New(logs)}
	channels := logger.NewChannels(base, logger.ChannelsConfig{})
	c := classifier.New(classifier.NewAPIPaths(nil, nil), channels)

	env := &testEnv{
		tenants:  mock.NewMockTenantService(ctrl),
		auth:     mock.NewMockAuthService(ctrl),
		appInfo:  mock.NewMockAppInfoService(ctrl),
		logs:     logs,
		base:     base,
		channels: channels,
		class:    c,
	}

	svcs := &service.Services{
		AppInfoService: env.appInfo,
		TenantService:  env.tenants,
		AuthService:    env.auth,
	}
	env.handler = NewHandler(svcs, c, channels, cfg, base)
	return env
}

var acme = models.Tenant{
	ID:      "7d5c3c4e-2a8f-4b7e-9a53-3f1b8c2d9e10",
	Name:    "Acme",
	Host:    "acme.folio.test",
	Active:  true,
	Version: 3,
}

var ada = models.Principal{ID: 42, Email: "ada@acme.test", TenantID: acme.ID}
