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

// Package routing provides an ordered, first-match-wins route registry with
// pattern compilation, group capture, resource expansion, domain
// constraints, and reverse URL generation.
//
// # Quick Start
//
//	r := routing.MustNew()
//
//	r.GET("users/:id", routing.Deferred("UserController.show")).
//	    SetName("users.show")
//
//	r.Resource("posts", "PostController")
//
//	r.Freeze()
//
//	if m := r.Match("users/42", "GET", ""); m != nil {
//	    _ = m.Params.Value("id") // "42"
//	}
//
//	url, _ := r.URL("posts.show", map[string]string{"id": "5"}, "")
//	// url == "posts/5"
//
// # Pattern Dialect
//
// Static segments match case-insensitively. ":name" binds a required
// parameter, a trailing ":name?" is optional, and a trailing "*" or "*name"
// captures the remainder of the path. Domain patterns use the same ":name"
// syntax with "." separators.
//
// # Ordering
//
// Registration order is match priority: Match scans the sequence front to
// back and the first route that resolves wins. Register literal patterns
// before parameterized ones that could swallow them.
//
// # Groups and Resources
//
// Group captures the routes registered inside a callback for collective
// configuration (Prefix, Use, Domain, Namespace, Format). Resource expands
// a name and controller into the seven conventional CRUD routes, narrowable
// with Only and Except.
//
// # Lifecycle
//
// Registration runs single-threaded at startup. Call Freeze once it
// completes; afterwards the store is immutable and Match and URL are safe
// for unbounded concurrent callers with no locking. Mutating a frozen
// router panics.
//
// # Observability
//
// WithLogger enables structured registration logging, WithMeterProvider
// enables OpenTelemetry metrics for registrations and match attempts, and
// WithDiagnostics surfaces registration-time anomalies such as shadowed
// routes. All three are optional; the router is silent by default.
package routing
