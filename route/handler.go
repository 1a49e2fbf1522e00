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

// HandlerFunc is the direct-callable form of a route target. The routing
// core never invokes it; dispatch belongs to the caller.
type HandlerFunc func(p Params) (any, error)

// Handler is the target of a route. It is a tagged variant: either a direct
// function or a deferred "Controller.method" descriptor that an external
// resolver turns into an invocable at dispatch time. The routing core only
// stores descriptors; it never resolves them.
type Handler struct {
	fn  HandlerFunc
	ref string
}

// Func wraps a direct function as a Handler.
func Func(fn HandlerFunc) Handler {
	return Handler{fn: fn}
}

// Deferred wraps a "Controller.method" descriptor as a Handler.
func Deferred(ref string) Handler {
	return Handler{ref: ref}
}

// IsDeferred reports whether the handler is a descriptor awaiting external
// resolution.
func (h Handler) IsDeferred() bool {
	return h.fn == nil && h.ref != ""
}

// IsZero reports whether the handler has no target at all.
func (h Handler) IsZero() bool {
	return h.fn == nil && h.ref == ""
}

// Func returns the direct function and whether one is set.
func (h Handler) Func() (HandlerFunc, bool) {
	return h.fn, h.fn != nil
}

// Ref returns the deferred descriptor, or the empty string for direct
// handlers.
func (h Handler) Ref() string {
	return h.ref
}

// Namespaced returns a copy of the handler with the namespace prepended to
// its descriptor. Direct handlers are returned unchanged.
func (h Handler) Namespaced(namespace string) Handler {
	if !h.IsDeferred() || namespace == "" {
		return h
	}
	return Handler{ref: namespace + "." + h.ref}
}

// String describes the handler for logs and diagnostics.
func (h Handler) String() string {
	switch {
	case h.IsDeferred():
		return h.ref
	case h.fn != nil:
		return "func"
	default:
		return "<none>"
	}
}
