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
	"log/slog"

	"go.opentelemetry.io/otel/metric"
)

// Option configures a Router during construction.
type Option func(*Router)

// WithLogger sets the structured logger for registration and freeze events.
// Without it the router is silent.
//
// Example:
//
//	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
//	r := routing.MustNew(routing.WithLogger(logger))
func WithLogger(logger *slog.Logger) Option {
	return func(r *Router) {
		if logger != nil {
			r.logger = logger
		}
	}
}

// WithRenderer sets the template renderer used by routes registered through
// On(...).Render. Page routes registered without a renderer fail at dispatch
// time with ErrNoRenderer.
func WithRenderer(renderer Renderer) Option {
	return func(r *Router) {
		r.renderer = renderer
	}
}

// WithDiagnostics sets the handler for registration-time diagnostic events
// such as shadowed routes.
func WithDiagnostics(handler DiagnosticHandler) Option {
	return func(r *Router) {
		r.diagnostics = handler
	}
}

// WithMeterProvider enables OpenTelemetry metrics for route registration and
// resolution using the given provider.
//
// Example:
//
//	r := routing.MustNew(routing.WithMeterProvider(otel.GetMeterProvider()))
func WithMeterProvider(provider metric.MeterProvider) Option {
	return func(r *Router) {
		r.meterProvider = provider
	}
}
