// Copyright 2025 The Rivaas Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package routing

import (
	"fmt"
	"io"
	"log/slog"

	"go.opentelemetry.io/otel/metric"

	"rivaas.dev/routing/route"
)

// noopLogger is a singleton no-op logger used when no logger is configured.
var noopLogger = slog.New(slog.NewTextHandler(io.Discard, nil))

// Handler is re-exported from the route package so callers registering
// routes need only this package.
type Handler = route.Handler

// HandlerFunc is re-exported from the route package.
type HandlerFunc = route.HandlerFunc

// Params is re-exported from the route package.
type Params = route.Params

// Func wraps a direct function as a Handler.
func Func(fn HandlerFunc) Handler {
	return route.Func(fn)
}

// Deferred wraps a "Controller.method" descriptor as a Handler.
func Deferred(ref string) Handler {
	return route.Deferred(ref)
}

// Router is the registration and resolution façade over the route store.
//
// Registration (Handle, GET, Group, Resource, On) runs single-threaded at
// startup. Call Freeze once registration is complete; after that Match and
// URL are safe for unbounded concurrent callers with no locking.
//
// Example:
//
//	r := routing.MustNew()
//	r.GET("users/:id", routing.Deferred("UserController.show")).SetName("users.show")
//	r.Freeze()
//
//	if m := r.Match("users/42", "GET", ""); m != nil {
//	    id := m.Params.Value("id") // "42"
//	}
type Router struct {
	store       *Store
	renderer    Renderer
	logger      *slog.Logger
	diagnostics DiagnosticHandler
	recorder    Recorder

	meterProvider metric.MeterProvider
}

// New creates a router with optional configuration. Configuration is
// validated immediately at startup rather than at resolution time; building
// the metric instruments is the only step that can fail.
//
// For a version that panics instead of returning an error, use MustNew.
func New(opts ...Option) (*Router, error) {
	r := &Router{
		store:  NewStore(),
		logger: noopLogger,
	}

	for _, opt := range opts {
		opt(r)
	}

	if r.meterProvider != nil {
		recorder, err := newMeterRecorder(r.meterProvider)
		if err != nil {
			return nil, fmt.Errorf("router observability setup failed: %w", err)
		}
		r.recorder = recorder
	}

	return r, nil
}

// MustNew creates a router and panics if configuration is invalid. This is
// a convenience wrapper around New for cases where configuration errors
// should fail the application immediately at startup.
func MustNew(opts ...Option) *Router {
	r, err := New(opts...)
	if err != nil {
		panic(fmt.Sprintf("routing.MustNew: %v", err))
	}
	return r
}

// Store returns the router's route store. The store is owned by the router
// instance and passed by reference; there is no process-wide registry.
func (r *Router) Store() *Store {
	return r.store
}

// Routes returns the ordered read-only view of all registered routes.
func (r *Router) Routes() []*route.Route {
	return r.store.List()
}

// Freeze makes the store immutable: further registration panics, and Match
// and URL become safe for unbounded concurrent callers. Call it once, after
// startup registration completes and before serving begins.
func (r *Router) Freeze() {
	r.store.Freeze()
	r.logger.Info("routes frozen", "count", r.store.Len())
}

// emit sends a diagnostic event if a handler is configured.
func (r *Router) emit(kind DiagnosticKind, message string, fields map[string]any) {
	if r.diagnostics != nil {
		r.diagnostics.OnDiagnostic(DiagnosticEvent{
			Kind:    kind,
			Message: message,
			Fields:  fields,
		})
	}
}
