// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package reqctx

import (
	"context"
	"sync"

	"github.com/MKhiriev/go-folio/models"
)

type contextKey string

const storeCtxKey contextKey = "request_context_store"

// RequestContext is an immutable copy of the values held by a [Store].
type RequestContext struct {
	RequestID string
	Tenant    *models.Tenant
	Principal *models.Principal
}

// TenantID returns the tenant identifier or "" when no tenant is resolved.
func (rc RequestContext) TenantID() string {
	if rc.Tenant == nil {
		return ""
	}
	return rc.Tenant.ID
}

// TenantName returns the tenant name or "" when no tenant is resolved.
func (rc RequestContext) TenantName() string {
	if rc.Tenant == nil {
		return ""
	}
	return rc.Tenant.Name
}

// PrincipalID returns the principal identifier or 0 for anonymous requests.
func (rc RequestContext) PrincipalID() int64 {
	if rc.Principal == nil {
		return 0
	}
	return rc.Principal.ID
}

// PrincipalEmail returns the principal email or "" for anonymous requests.
func (rc RequestContext) PrincipalEmail() string {
	if rc.Principal == nil {
		return ""
	}
	return rc.Principal.Email
}

// Store is the mutable request context of a single in-flight request.
// The zero value is an empty store ready for use.
type Store struct {
	mu        sync.RWMutex
	requestID string
	tenant    *models.Tenant
	principal *models.Principal
}

// Attach returns ctx carrying a store for the current request. A store
// already present in ctx is reset and reused; otherwise a new one is created.
func Attach(ctx context.Context) (context.Context, *Store) {
	if s, ok := ctx.Value(storeCtxKey).(*Store); ok && s != nil {
		s.Reset()
		return ctx, s
	}

	s := &Store{}
	return context.WithValue(ctx, storeCtxKey, s), s
}

// FromContext returns the store attached to ctx. When none is attached it
// returns a detached empty store, so callers never have to nil-check.
func FromContext(ctx context.Context) *Store {
	if ctx != nil {
		if s, ok := ctx.Value(storeCtxKey).(*Store); ok && s != nil {
			return s
		}
	}
	return &Store{}
}

// Reset clears every value. It is safe to call any number of times.
func (s *Store) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.requestID = ""
	s.tenant = nil
	s.principal = nil
}

func (s *Store) SetRequestID(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.requestID = id
}

func (s *Store) RequestID() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.requestID
}

func (s *Store) SetTenant(t *models.Tenant) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tenant = t
}

func (s *Store) Tenant() *models.Tenant {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.tenant
}

func (s *Store) SetPrincipal(p *models.Principal) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.principal = p
}

func (s *Store) Principal() *models.Principal {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.principal
}

// Snapshot copies the current values into a [RequestContext].
func (s *Store) Snapshot() RequestContext {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return RequestContext{
		RequestID: s.requestID,
		Tenant:    s.tenant,
		Principal: s.principal,
	}
}
