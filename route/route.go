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

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"rivaas.dev/routing/compiler"
)

var (
	// ErrNoVerbs indicates a route registered without any verbs.
	ErrNoVerbs = errors.New("route must declare at least one verb")

	// ErrNilHandler indicates a route registered with a zero Handler.
	ErrNilHandler = errors.New("route handler must not be empty")
)

// Registrar is the interface the route store implements so routes can
// enforce name uniqueness and freeze semantics without importing the store.
//
// All methods are called at startup during route registration, not during
// resolution, so interface dispatch overhead is acceptable.
type Registrar interface {
	// IsFrozen reports whether routes can no longer be modified.
	IsFrozen() bool

	// ClaimName registers name for rt, releasing oldName if the route was
	// renamed. Returns an error when the name is already taken.
	ClaimName(oldName, name string, rt *Route) error
}

// Route is one registration: a path spec bound to a verb set and a handler,
// with an optional unique name, domain constraint, middleware list, and
// response format. The compiled matcher is rebuilt whenever the path spec
// changes (Prefix), so the spec is effectively immutable between mutations.
//
// Mutators run during single-threaded startup registration only; Resolve is
// pure and safe for concurrent callers once the store is frozen.
type Route struct {
	registrar Registrar

	spec       string
	verbs      []string
	handler    Handler
	name       string
	middleware []string
	format     string

	matcher *compiler.Pattern

	domainSpec string
	domain     *compiler.Pattern
	domainErr  error
}

// New creates and compiles a route. Verbs are normalized to upper case with
// duplicates removed, preserving declaration order.
func New(registrar Registrar, spec string, verbs []string, h Handler) (*Route, error) {
	if h.IsZero() {
		return nil, fmt.Errorf("%w: %q", ErrNilHandler, spec)
	}

	normalized := normalizeVerbs(verbs)
	if len(normalized) == 0 {
		return nil, fmt.Errorf("%w: %q", ErrNoVerbs, spec)
	}

	matcher, err := compiler.Compile(spec)
	if err != nil {
		return nil, err
	}

	return &Route{
		registrar: registrar,
		spec:      strings.Trim(spec, "/"),
		verbs:     normalized,
		handler:   h,
		matcher:   matcher,
	}, nil
}

func normalizeVerbs(verbs []string) []string {
	out := make([]string, 0, len(verbs))
	for _, v := range verbs {
		v = strings.ToUpper(strings.TrimSpace(v))
		if v == "" || slices.Contains(out, v) {
			continue
		}
		out = append(out, v)
	}
	return out
}

// Resolve matches the route against a literal (path, verb, host) triple.
// It is a pure function: no side effects, safe for concurrent callers.
//
// The verb must be in the route's verb set. When a domain constraint is set,
// the host must match it before the path is considered; a host mismatch is
// a non-match regardless of the path. Host parameters are appended after
// path parameters in the result.
func (r *Route) Resolve(path, verb, host string) (Params, bool) {
	if !r.Allows(verb) {
		return nil, false
	}

	var hostValues []string
	var domain *compiler.Pattern
	if r.domainSpec != "" {
		var err error
		domain, err = r.domainPattern()
		if err != nil {
			return nil, false
		}
		var ok bool
		hostValues, ok = domain.Match(host)
		if !ok {
			return nil, false
		}
	}

	pathValues, ok := r.matcher.Match(path)
	if !ok {
		return nil, false
	}

	params := make(Params, 0, len(pathValues)+len(hostValues))
	params = appendParams(params, r.matcher.Params(), pathValues)
	if domain != nil {
		params = appendParams(params, domain.Params(), hostValues)
	}

	return params, true
}

// appendParams zips names with captured values, omitting absent optionals
// (empty captures).
func appendParams(params Params, names, values []string) Params {
	for i, name := range names {
		if i >= len(values) || values[i] == "" {
			continue
		}
		params = append(params, Param{Key: name, Value: values[i]})
	}
	return params
}

// Allows reports whether the verb is in the route's verb set. Comparison is
// case-insensitive.
func (r *Route) Allows(verb string) bool {
	return slices.Contains(r.verbs, strings.ToUpper(verb))
}

// Prefix prepends a path prefix to the route's spec and recompiles the
// matcher. Panics on an invalid resulting pattern; prefixes are applied at
// startup and a bad one is a programming error.
func (r *Route) Prefix(prefix string) *Route {
	r.checkMutable()

	prefix = strings.Trim(prefix, "/")
	if prefix == "" {
		return r
	}

	spec := prefix
	if r.spec != "" {
		spec = prefix + "/" + r.spec
	}

	matcher, err := compiler.Compile(spec)
	if err != nil {
		panic(fmt.Sprintf("routing: invalid route spec after prefix %q: %v", prefix, err))
	}

	r.spec = spec
	r.matcher = matcher
	return r
}

// SetDomain constrains the route to a host pattern. The domain matcher is
// compiled lazily on first use; the store's freeze pass forces compilation
// so resolution never writes.
func (r *Route) SetDomain(spec string) *Route {
	r.checkMutable()
	r.domainSpec = spec
	r.domain = nil
	r.domainErr = nil
	return r
}

// domainPattern returns the compiled domain matcher, compiling it on first
// use. Safe only while registration is single-threaded or after Prepare.
func (r *Route) domainPattern() (*compiler.Pattern, error) {
	if r.domain == nil && r.domainErr == nil && r.domainSpec != "" {
		r.domain, r.domainErr = compiler.CompileDomain(r.domainSpec)
	}
	return r.domain, r.domainErr
}

// Prepare forces lazy compilation so the route is read-only afterwards.
// The store calls this for every route at freeze time.
func (r *Route) Prepare() error {
	if r.domainSpec == "" {
		return nil
	}
	_, err := r.domainPattern()
	return err
}

// Use appends middleware names to the route. Appending, never replacing,
// preserves relative ordering across group and route-level calls.
func (r *Route) Use(middleware ...string) *Route {
	r.checkMutable()
	r.middleware = append(r.middleware, middleware...)
	return r
}

// SetName assigns a unique name for reverse routing. Uniqueness is enforced
// by the Registrar; a duplicate name panics, matching the fail-fast posture
// of startup registration. Renaming releases the previous name.
func (r *Route) SetName(name string) *Route {
	r.checkMutable()

	if err := r.registrar.ClaimName(r.name, name, r); err != nil {
		panic(err.Error())
	}
	r.name = name
	return r
}

// SetNamespace prepends a controller namespace to a deferred handler
// descriptor. Direct function handlers are unaffected.
func (r *Route) SetNamespace(namespace string) *Route {
	r.checkMutable()
	r.handler = r.handler.Namespaced(namespace)
	return r
}

// SetFormat records the response format hint for the route.
func (r *Route) SetFormat(format string) *Route {
	r.checkMutable()
	r.format = format
	return r
}

// URL generates a literal path from the route's pattern and the supplied
// parameter values. Fails with compiler.ErrMissingParameter when a required
// value is absent.
func (r *Route) URL(data map[string]string) (string, error) {
	return r.matcher.Generate(data)
}

func (r *Route) checkMutable() {
	if r.registrar != nil && r.registrar.IsFrozen() {
		panic(fmt.Sprintf("routing: cannot modify route %q after the store is frozen", r.spec))
	}
}

// Spec returns the current path spec.
func (r *Route) Spec() string {
	return r.spec
}

// ParamNames returns the path parameter names in match order.
func (r *Route) ParamNames() []string {
	return r.matcher.Params()
}

// Verbs returns a copy of the route's verb set in declaration order.
func (r *Route) Verbs() []string {
	out := make([]string, len(r.verbs))
	copy(out, r.verbs)
	return out
}

// Handler returns the route's handler.
func (r *Route) Handler() Handler {
	return r.handler
}

// Name returns the route name (empty if not named).
func (r *Route) Name() string {
	return r.name
}

// Domain returns the domain spec (empty if unconstrained).
func (r *Route) Domain() string {
	return r.domainSpec
}

// Middleware returns a copy of the route's middleware names in order.
func (r *Route) Middleware() []string {
	out := make([]string, len(r.middleware))
	copy(out, r.middleware)
	return out
}

// Format returns the response format hint (empty if unset).
func (r *Route) Format() string {
	return r.format
}
