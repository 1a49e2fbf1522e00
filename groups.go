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
	"rivaas.dev/routing/route"
)

// Group captures the routes registered inside fn and returns them as a
// group for collective configuration. Capture works by breakpoint: a marker
// is placed at the current end of the route sequence, fn registers routes
// through the router as usual, and everything past the marker belongs to the
// group. Members stay in the store in registration order — the group is a
// view, not a container.
//
// Groups do not nest: opening one inside fn returns ErrNestedGroup and
// registers nothing. A nil fn returns ErrNilGroupCallback.
//
// Example:
//
//	g, err := r.Group(func(r *routing.Router) {
//	    r.GET("users", routing.Deferred("UserController.index"))
//	    r.GET("users/:id", routing.Deferred("UserController.show"))
//	})
//	if err != nil {
//	    return err
//	}
//	g.Prefix("api").Use("auth")
func (r *Router) Group(fn func(*Router)) (*route.Group, error) {
	return r.GroupNamed("", fn)
}

// GroupNamed is Group with a name. The name scopes resource route names
// registered inside the group (see Resource) and labels the group itself.
func (r *Router) GroupNamed(name string, fn func(*Router)) (*route.Group, error) {
	if fn == nil {
		return nil, ErrNilGroupCallback
	}

	if err := r.store.Breakpoint(name); err != nil {
		return nil, err
	}
	defer r.store.ReleaseBreakpoint()

	fn(r)

	members := r.store.BreakpointRoutes()
	r.logger.Debug("group captured", "name", name, "routes", len(members))
	return route.NewGroup(name, members), nil
}
