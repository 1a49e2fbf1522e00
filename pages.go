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

// Page is a partial registration produced by On: a path waiting for a
// template to render.
type Page struct {
	router *Router
	path   string
}

// On starts a page registration for the given path. Nothing is registered
// until Render is called.
func (r *Router) On(path string) *Page {
	return &Page{router: r, path: path}
}

// Render completes the registration: a GET (and HEAD) route whose handler
// renders the named template through the router's Renderer. The renderer is
// consulted at dispatch time, not registration time; registering page routes
// without a renderer is allowed, but dispatching one fails with
// ErrNoRenderer.
//
// Example:
//
//	r.On("about").Render("pages.about").SetName("about")
func (p *Page) Render(template string) *route.Route {
	renderer := p.router.renderer

	h := Func(func(_ Params) (any, error) {
		if renderer == nil {
			return nil, fmt.Errorf("%w: page %q renders template %q", ErrNoRenderer, p.path, template)
		}
		content, err := renderer.Render(template)
		if err != nil {
			return nil, err
		}
		return content, nil
	})

	return p.router.Handle(p.path, h, "HEAD", "GET")
}
