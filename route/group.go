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

package route

// Group batch-applies configuration to the routes captured while a
// registration window was open on the store. It is a transient builder: it
// owns no routes and is not persisted — every call forwards to the member
// routes' own mutators.
//
// Example:
//
//	g, _ := r.Group(func(r *routing.Router) {
//	    r.GET("users", listUsers)
//	    r.GET("users/:id", showUser)
//	})
//	g.Prefix("api").Use("auth")
type Group struct {
	name   string
	routes []*Route
}

// NewGroup wraps the captured routes. The name, when non-empty, scopes
// resource route names registered inside the group.
func NewGroup(name string, routes []*Route) *Group {
	return &Group{name: name, routes: routes}
}

// Name returns the group name (empty for anonymous groups).
func (g *Group) Name() string {
	return g.name
}

// Routes returns a copy of the captured member routes in registration order.
func (g *Group) Routes() []*Route {
	out := make([]*Route, len(g.routes))
	copy(out, g.routes)
	return out
}

// Len returns the number of captured routes.
func (g *Group) Len() int {
	return len(g.routes)
}

// Prefix prepends a path prefix to every member route.
func (g *Group) Prefix(prefix string) *Group {
	for _, rt := range g.routes {
		rt.Prefix(prefix)
	}
	return g
}

// Domain constrains every member route to a host pattern.
func (g *Group) Domain(spec string) *Group {
	for _, rt := range g.routes {
		rt.SetDomain(spec)
	}
	return g
}

// Use appends middleware names to every member route.
func (g *Group) Use(middleware ...string) *Group {
	for _, rt := range g.routes {
		rt.Use(middleware...)
	}
	return g
}

// Namespace prepends a controller namespace to every member route's
// deferred handler descriptor.
func (g *Group) Namespace(namespace string) *Group {
	for _, rt := range g.routes {
		rt.SetNamespace(namespace)
	}
	return g
}

// Format sets the response format hint on every member route.
func (g *Group) Format(format string) *Group {
	for _, rt := range g.routes {
		rt.SetFormat(format)
	}
	return g
}
