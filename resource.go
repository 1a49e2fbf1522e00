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
	"slices"

	"rivaas.dev/routing/route"
)

// resourceAction describes one conventional CRUD route of a resource.
type resourceAction struct {
	name   string
	verbs  []string
	suffix string
}

// resourceActions is the canonical expansion order. Literal suffixes come
// before parameterized ones ("create" before ":id") so first-match
// resolution never binds "create" as an id.
var resourceActions = []resourceAction{
	{"index", []string{"HEAD", "GET"}, ""},
	{"create", []string{"HEAD", "GET"}, "/create"},
	{"store", []string{"POST"}, ""},
	{"show", []string{"HEAD", "GET"}, "/:id"},
	{"edit", []string{"HEAD", "GET"}, "/:id/edit"},
	{"update", []string{"PUT", "PATCH"}, "/:id"},
	{"destroy", []string{"DELETE"}, "/:id"},
}

// Resource bundles the routes expanded from one resource declaration so
// they can be narrowed or configured collectively after registration.
type Resource struct {
	name   string
	store  *Store
	order  []string
	routes map[string]*route.Route
}

// Resource expands a resource name and controller into the seven
// conventional CRUD routes, registered immediately in canonical order:
//
//	GET    posts          posts.index
//	GET    posts/create   posts.create
//	POST   posts          posts.store
//	GET    posts/:id      posts.show
//	GET    posts/:id/edit posts.edit
//	PUT    posts/:id      posts.update (also PATCH)
//	DELETE posts/:id      posts.destroy
//
// GET routes carry HEAD as well. Handlers are deferred descriptors of the
// form "PostController.show". Inside a named group the route names are
// scoped by the group name ("admin.posts.show").
//
// Narrow the set afterwards with Only or Except:
//
//	r.Resource("posts", "PostController").Only("index", "show")
func (r *Router) Resource(name, controller string) *Resource {
	prefix := ""
	if gn := r.store.BreakpointName(); gn != "" {
		prefix = gn + "."
	}

	res := &Resource{
		name:   name,
		store:  r.store,
		routes: make(map[string]*route.Route, len(resourceActions)),
	}

	for _, action := range resourceActions {
		rt := r.Handle(name+action.suffix, Deferred(controller+"."+action.name), action.verbs...)
		rt.SetName(prefix + name + "." + action.name)
		res.order = append(res.order, action.name)
		res.routes[action.name] = rt
	}

	r.logger.Debug("resource registered", "name", name, "controller", controller)
	return res
}

// Only narrows the resource to the named actions, removing the rest from
// the store. Unknown action names are ignored.
func (res *Resource) Only(actions ...string) *Resource {
	return res.filter(func(action string) bool {
		return slices.Contains(actions, action)
	})
}

// Except removes the named actions from the resource and the store.
func (res *Resource) Except(actions ...string) *Resource {
	return res.filter(func(action string) bool {
		return !slices.Contains(actions, action)
	})
}

func (res *Resource) filter(keep func(string) bool) *Resource {
	kept := res.order[:0]
	for _, action := range res.order {
		if keep(action) {
			kept = append(kept, action)
			continue
		}
		res.store.Remove(res.routes[action])
		delete(res.routes, action)
	}
	res.order = kept
	return res
}

// Use appends middleware to every remaining route of the resource.
func (res *Resource) Use(middleware ...string) *Resource {
	for _, action := range res.order {
		res.routes[action].Use(middleware...)
	}
	return res
}

// Routes returns the remaining routes in canonical action order.
func (res *Resource) Routes() []*route.Route {
	out := make([]*route.Route, 0, len(res.order))
	for _, action := range res.order {
		out = append(out, res.routes[action])
	}
	return out
}

// Route returns the route for one action, or nil if it was filtered out.
func (res *Resource) Route(action string) *route.Route {
	return res.routes[action]
}

// Name returns the resource name.
func (res *Resource) Name() string {
	return res.name
}
