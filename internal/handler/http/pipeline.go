// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"net/http"
	"runtime/debug"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/go-folio/internal/classifier"
	"github.com/MKhiriev/go-folio/internal/failure"
	"github.com/MKhiriev/go-folio/internal/logger"
	"github.com/MKhiriev/go-folio/internal/reqctx"
	"github.com/MKhiriev/go-folio/internal/response"
)

// stage is one layer of the request pipeline. before runs outermost first;
// exactly one of afterSuccess or afterFailure runs innermost first for
// every stage whose before ran.
type stage interface {
	name() string
	before(x *exchange)
	afterSuccess(x *exchange)
	afterFailure(x *exchange, err error)
}

// renderObserver is implemented by stages that need the response as the
// client received it, after any failure has been rendered.
type renderObserver interface {
	afterRender(x *exchange)
}

// exchange is the state of one request as it crosses the pipeline.
type exchange struct {
	writer  *responseWriter
	request *http.Request
	start   time.Time

	// view is the route pattern that served the request, recorded while
	// the router's route context was still live.
	view string

	failure  error
	snapshot reqctx.RequestContext

	// cancel releases the request deadline, if one was set.
	cancel context.CancelFunc
}

type exchangeCtxKey struct{}

// fail records err as the request's failure. The first failure wins.
func fail(r *http.Request, err error) {
	x, ok := r.Context().Value(exchangeCtxKey{}).(*exchange)
	if !ok || err == nil {
		return
	}
	x.markView(r)
	if x.failure == nil {
		x.failure = err
	}
}

func (x *exchange) markView(r *http.Request) {
	if rctx := chi.RouteContext(r.Context()); rctx != nil {
		if pattern := rctx.RoutePattern(); pattern != "" {
			x.view = pattern
		}
	}
}

// pipeline drives the stages around next and turns failures into
// responses through the classifier.
type pipeline struct {
	stages     []stage
	next       http.Handler
	classifier *classifier.Classifier

	// fallback receives problems of the pipeline itself.
	fallback *logger.Logger
}

func newPipeline(next http.Handler, c *classifier.Classifier, fallback *logger.Logger, stages ...stage) *pipeline {
	return &pipeline{
		stages:     stages,
		next:       next,
		classifier: c,
		fallback:   fallback,
	}
}

func (p *pipeline) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	x := &exchange{
		writer: newResponseWriter(w),
		start:  time.Now(),
	}
	x.request = r.WithContext(context.WithValue(r.Context(), exchangeCtxKey{}, x))

	entered := 0
	aborted := false

	defer func() {
		if rec := recover(); rec != nil {
			if rec == http.ErrAbortHandler {
				aborted = true
			}
			x.failure = failure.NewPanic(rec, debug.Stack())
		}

		p.unwind(x, entered)

		if x.failure != nil && !aborted {
			p.render(x)
		}
		p.rendered(x, entered)

		if aborted {
			panic(http.ErrAbortHandler)
		}
	}()

	for _, s := range p.stages {
		p.guard(s, "before", func() { s.before(x) })
		entered++
	}

	p.next.ServeHTTP(x.writer, x.request)
}

func (p *pipeline) unwind(x *exchange, entered int) {
	if x.failure != nil {
		x.snapshot = reqctx.FromContext(x.request.Context()).Snapshot()
	}

	for i := entered - 1; i >= 0; i-- {
		s := p.stages[i]
		if x.failure != nil {
			p.guard(s, "afterFailure", func() { s.afterFailure(x, x.failure) })
		} else {
			p.guard(s, "afterSuccess", func() { s.afterSuccess(x) })
		}
	}
}

func (p *pipeline) rendered(x *exchange, entered int) {
	for i := entered - 1; i >= 0; i-- {
		s := p.stages[i]
		if o, ok := s.(renderObserver); ok {
			p.guard(s, "afterRender", func() { o.afterRender(x) })
		}
	}
}

func (p *pipeline) render(x *exchange) {
	resp, ok := p.classifier.Classify(x.request, x.view, x.snapshot, x.failure)

	if x.writer.wroteHeader {
		p.fallback.Warn().
			Str("path", x.request.URL.Path).
			Int("status", x.writer.status).
			Msg("failure after response started; body left as is")
		return
	}

	if !ok {
		nativeError(x.writer, x.failure)
		return
	}

	if _, err := response.Write(x.writer, resp); err != nil {
		p.fallback.Err(err).Str("path", x.request.URL.Path).Msg("error writing error response")
	}
}

// guard runs one hook; a panic inside it is logged and swallowed.
func (p *pipeline) guard(s stage, hook string, fn func()) {
	defer func() {
		if rec := recover(); rec != nil {
			p.fallback.Error().
				Str("stage", s.name()).
				Str("hook", hook).
				Interface("panic", rec).
				Bytes("stack", debug.Stack()).
				Msg("pipeline hook failed")
		}
	}()
	fn()
}
