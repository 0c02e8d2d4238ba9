// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"net/url"
	"strings"
)

const redacted = "[REDACTED]"

// Redacted returns a copy of cfg that is safe to log: the token sign key is
// masked and so is any password in the database DSN.
func (cfg StructuredConfig) Redacted() StructuredConfig {
	out := cfg
	if out.App.TokenSignKey != "" {
		out.App.TokenSignKey = redacted
	}
	out.Storage.DB.DSN = redactDSN(out.Storage.DB.DSN)
	return out
}

func redactDSN(dsn string) string {
	if u, err := url.Parse(dsn); err == nil && u.User != nil {
		return u.Redacted()
	}
	// key=value form, e.g. "host=db user=folio password=secret"
	if strings.Contains(strings.ToLower(dsn), "password=") {
		return redacted
	}
	return dsn
}
