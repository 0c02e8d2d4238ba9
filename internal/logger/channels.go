// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package logger

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"gopkg.in/natefinch/lumberjack.v2"
)

// Well-known channel names.
const (
	ChannelRequest   = "request"
	ChannelRequests  = "requests"
	ChannelUnhandled = "unhandled"
	ChannelGRPC      = "grpc"
)

// DefaultRoutes maps path prefixes to channel names.
var DefaultRoutes = map[string]string{
	"api/portfolios": "portfolios",
	"api/tenants":    "tenants",
	"api/public":     "public",
	"api/plans":      "plans",
	"admin":          "admin",
	"health":         "public",
}

// ChannelsConfig configures named channels.
type ChannelsConfig struct {
	// Routes maps lower-case path prefixes (without leading slash) to
	// channel names. Nil selects DefaultRoutes.
	Routes map[string]string

	// Fallback is the channel for unmatched paths. Empty selects "request".
	Fallback string

	// Dir, when set, adds a rotating <channel>.log file per channel next to
	// the base logger output.
	Dir        string
	MaxSizeMB  int
	MaxBackups int
	MaxAgeDays int

	// Console is written alongside the files. Nil selects os.Stdout.
	Console io.Writer
}

type route struct {
	prefix  string
	channel string
}

// Channels hands out loggers tagged with a "channel" field and routes
// request paths to them by longest matching prefix.
type Channels struct {
	base     *Logger
	cfg      ChannelsConfig
	routes   []route
	fallback string

	mu      sync.RWMutex
	loggers map[string]*Logger
	files   []*lumberjack.Logger
}

// NewChannels builds channels on top of base.
func NewChannels(base *Logger, cfg ChannelsConfig) *Channels {
	routesCfg := cfg.Routes
	if routesCfg == nil {
		routesCfg = DefaultRoutes
	}

	routes := make([]route, 0, len(routesCfg))
	for prefix, ch := range routesCfg {
		routes = append(routes, route{prefix: normalizePath(prefix), channel: ch})
	}
	sort.Slice(routes, func(i, j int) bool {
		if len(routes[i].prefix) != len(routes[j].prefix) {
			return len(routes[i].prefix) > len(routes[j].prefix)
		}
		return routes[i].prefix < routes[j].prefix
	})

	fallback := cfg.Fallback
	if fallback == "" {
		fallback = ChannelRequest
	}

	return &Channels{
		base:     base,
		cfg:      cfg,
		routes:   routes,
		fallback: fallback,
		loggers:  make(map[string]*Logger),
	}
}

// Get returns the logger of the named channel, creating it on first use.
func (c *Channels) Get(name string) *Logger {
	c.mu.RLock()
	l, ok := c.loggers[name]
	c.mu.RUnlock()
	if ok {
		return l
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if l, ok = c.loggers[name]; ok {
		return l
	}

	zl := c.base.With().Str("channel", name).Logger()
	if c.cfg.Dir != "" {
		file := &lumberjack.Logger{
			Filename:   filepath.Join(c.cfg.Dir, name+".log"),
			MaxSize:    c.cfg.MaxSizeMB,
			MaxBackups: c.cfg.MaxBackups,
			MaxAge:     c.cfg.MaxAgeDays,
			Compress:   true,
		}
		c.files = append(c.files, file)

		console := c.cfg.Console
		if console == nil {
			console = os.Stdout
		}
		zl = zl.Output(io.MultiWriter(console, file))
	}

	l = &Logger{zl}
	c.loggers[name] = l
	return l
}

// ChannelForPath returns the channel name routed for path.
func (c *Channels) ChannelForPath(path string) string {
	p := normalizePath(path)
	for _, r := range c.routes {
		if strings.HasPrefix(p, r.prefix) {
			return r.channel
		}
	}
	return c.fallback
}

// ForPath returns the logger routed for path.
func (c *Channels) ForPath(path string) *Logger {
	return c.Get(c.ChannelForPath(path))
}

// Fallback returns the logger used when nothing more specific applies.
func (c *Channels) Fallback() *Logger {
	return c.Get(c.fallback)
}

// Close flushes and closes every channel file.
func (c *Channels) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	var errs []error
	for _, f := range c.files {
		if err := f.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	c.files = nil
	return errors.Join(errs...)
}

func normalizePath(p string) string {
	return strings.Trim(strings.ToLower(p), "/")
}
