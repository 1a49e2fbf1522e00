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

	"rivaas.dev/routing/route"
)

// highParamThreshold is the parameter count beyond which a route is flagged
// as a likely design smell.
const highParamThreshold = 8

// Handle registers a route for the given verbs. The pattern uses the
// routing dialect: static segments match case-insensitively, ":name" binds a
// required parameter, a trailing ":name?" is optional, and a trailing "*" or
// "*name" captures the remainder of the path.
//
// Handle panics on an invalid pattern or after Freeze; registration runs at
// startup and misuse is a programming error. The returned route supports
// chained configuration:
//
//	r.Handle("users/:id", routing.Deferred("UserController.show"), "GET").
//	    SetName("users.show").
//	    Use("auth")
func (r *Router) Handle(path string, h Handler, verbs ...string) *route.Route {
	rt, err := route.New(r.store, path, verbs, h)
	if err != nil {
		panic(fmt.Sprintf("routing: cannot register route %q: %v", path, err))
	}

	r.checkShadowed(rt)
	if n := len(rt.ParamNames()); n > highParamThreshold {
		r.emit(DiagHighParamCount,
			fmt.Sprintf("route %q declares %d parameters", rt.Spec(), n),
			map[string]any{"spec": rt.Spec(), "params": n})
	}

	r.store.Add(rt)
	if r.recorder != nil {
		r.recorder.RecordRegistration()
	}
	r.logger.Debug("route registered", "spec", rt.Spec(), "verbs", rt.Verbs())

	return rt
}

// checkShadowed emits a diagnostic when an earlier route has the same spec
// and an overlapping verb set: resolution is first-match-wins, so the new
// route could never match for those verbs.
func (r *Router) checkShadowed(rt *route.Route) {
	if r.diagnostics == nil {
		return
	}
	for _, existing := range r.store.List() {
		if existing.Spec() != rt.Spec() {
			continue
		}
		for _, verb := range rt.Verbs() {
			if existing.Allows(verb) {
				r.emit(DiagShadowedRoute,
					fmt.Sprintf("route %q %s is shadowed by an earlier registration", rt.Spec(), verb),
					map[string]any{"spec": rt.Spec(), "verb": verb})
				return
			}
		}
	}
}

// GET registers a route for GET requests. HEAD is included automatically,
// matching the convention that a HEAD request resolves like its GET.
func (r *Router) GET(path string, h Handler) *route.Route {
	return r.Handle(path, h, "HEAD", "GET")
}

// POST registers a route for POST requests.
func (r *Router) POST(path string, h Handler) *route.Route {
	return r.Handle(path, h, "POST")
}

// PUT registers a route for PUT requests.
func (r *Router) PUT(path string, h Handler) *route.Route {
	return r.Handle(path, h, "PUT")
}

// PATCH registers a route for PATCH requests.
func (r *Router) PATCH(path string, h Handler) *route.Route {
	return r.Handle(path, h, "PATCH")
}

// DELETE registers a route for DELETE requests.
func (r *Router) DELETE(path string, h Handler) *route.Route {
	return r.Handle(path, h, "DELETE")
}

// Any registers a route for every standard verb.
func (r *Router) Any(path string, h Handler) *route.Route {
	return r.Handle(path, h, "HEAD", "GET", "POST", "PUT", "PATCH", "DELETE")
}
