// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package reqctx holds the per-request context of the API: the request
// identifier, the resolved tenant and the authenticated principal.
//
// A [Store] is attached to the request's [context.Context] when the request
// enters the HTTP pipeline (or a gRPC interceptor) and is reset when it
// leaves. Because the store travels with the context, values written while
// serving one request are never visible to another one, even when both run
// concurrently.
//
// Typical use:
//
//	ctx, store := reqctx.Attach(r.Context())
//	store.SetRequestID(id)
//	...
//	rc := reqctx.FromContext(ctx).Snapshot()
package reqctx
