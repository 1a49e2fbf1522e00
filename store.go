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
	"slices"
	"sync"
	"sync/atomic"

	"rivaas.dev/routing/route"
)

// Compile-time check that Store implements route.Registrar.
var _ route.Registrar = (*Store)(nil)

// breakpoint marks where a group's routes begin in the store. A single
// marker, not a stack: the start index cannot represent two overlapping,
// differently scoped windows, so opening a second breakpoint while one is
// active is a fail-fast programming error.
type breakpoint struct {
	active bool
	name   string
	start  int
}

// Store is the process-lifetime ordered route registry. Insertion order is
// match priority: resolution scans the sequence front to back and the first
// successful route wins.
//
// Registration runs single-threaded at startup. Freeze makes the store
// immutable; after that, reads take no locks and resolution is safe for
// unbounded concurrent callers. The store is owned by a Router instance and
// passed by reference, never a hidden global, so tests stay independent.
type Store struct {
	mu     sync.RWMutex
	routes []*route.Route
	names  map[string]*route.Route
	bp     breakpoint
	frozen atomic.Bool
}

// NewStore creates an empty route store.
func NewStore() *Store {
	return &Store{names: make(map[string]*route.Route)}
}

// Add appends a route to the ordered sequence. Routes registered inside an
// open breakpoint window use this same path as top-level registrations;
// that is how groups capture members without a dual add code path.
//
// Panics after Freeze: registration must complete before serving begins.
func (s *Store) Add(rt *route.Route) {
	if s.frozen.Load() {
		panic(fmt.Sprintf("routing: cannot register route %q after the store is frozen.\n"+
			"Routes must be registered during startup, before Freeze.", rt.Spec()))
	}

	s.mu.Lock()
	s.routes = append(s.routes, rt)
	s.mu.Unlock()
}

// Remove deletes a route from the sequence, releasing its name. Used when a
// resource declaration is narrowed with Only or Except during startup.
// Panics after Freeze.
func (s *Store) Remove(rt *route.Route) {
	if s.frozen.Load() {
		panic(fmt.Sprintf("routing: cannot remove route %q after the store is frozen", rt.Spec()))
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	i := slices.Index(s.routes, rt)
	if i < 0 {
		return
	}
	s.routes = slices.Delete(s.routes, i, i+1)
	if i < s.bp.start {
		s.bp.start--
	}
	if name := rt.Name(); name != "" && s.names[name] == rt {
		delete(s.names, name)
	}
}

// Breakpoint opens a capture window at the current end of the sequence.
// Fails with ErrNestedGroup if a window is already open; breakpoints never
// nest.
func (s *Store) Breakpoint(name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.bp.active {
		return fmt.Errorf("%w: group %q is still capturing", ErrNestedGroup, s.bp.name)
	}
	s.bp = breakpoint{active: true, name: name, start: len(s.routes)}
	return nil
}

// ReleaseBreakpoint closes the capture window. Only the active flag is
// cleared; the recorded start index is left behind.
func (s *Store) ReleaseBreakpoint() {
	s.mu.Lock()
	s.bp.active = false
	s.mu.Unlock()
}

// BreakpointRoutes returns the routes appended since the window opened.
// Nil when no window is active.
func (s *Store) BreakpointRoutes() []*route.Route {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if !s.bp.active {
		return nil
	}
	out := make([]*route.Route, len(s.routes)-s.bp.start)
	copy(out, s.routes[s.bp.start:])
	return out
}

// BreakpointName returns the active window's name, or "" when no window is
// open or the window is anonymous.
func (s *Store) BreakpointName() string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if !s.bp.active {
		return ""
	}
	return s.bp.name
}

// Find looks a route up for reverse generation. Priority order: exact name
// match, else deferred handler descriptor plus domain, else the descriptor
// alone. Returns nil when nothing matches.
func (s *Store) Find(ref, domain string) *route.Route {
	if !s.frozen.Load() {
		s.mu.RLock()
		defer s.mu.RUnlock()
	}

	if rt, ok := s.names[ref]; ok {
		return rt
	}

	if domain != "" {
		for _, rt := range s.routes {
			if h := rt.Handler(); h.IsDeferred() && h.Ref() == ref && rt.Domain() == domain {
				return rt
			}
		}
	}

	for _, rt := range s.routes {
		if h := rt.Handler(); h.IsDeferred() && h.Ref() == ref {
			return rt
		}
	}

	return nil
}

// List returns the ordered read-only view of the store. Before Freeze it
// copies; afterwards the internal slice is immutable and returned directly.
func (s *Store) List() []*route.Route {
	if s.frozen.Load() {
		return s.routes
	}

	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*route.Route, len(s.routes))
	copy(out, s.routes)
	return out
}

// Len returns the number of registered routes.
func (s *Store) Len() int {
	if s.frozen.Load() {
		return len(s.routes)
	}

	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.routes)
}

// ClaimName implements route.Registrar. It enforces global name uniqueness
// and releases oldName when a route is renamed.
func (s *Store) ClaimName(oldName, name string, rt *route.Route) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if existing, taken := s.names[name]; taken && existing != rt {
		return fmt.Errorf("%w: %s (existing: %s %q)",
			ErrDuplicateRouteName, name, existing.Verbs(), existing.Spec())
	}
	if oldName != "" {
		delete(s.names, oldName)
	}
	s.names[name] = rt
	return nil
}

// Freeze makes the store immutable. Every route's lazy domain matcher is
// compiled first so resolution never writes; an uncompilable domain panics
// here rather than surfacing as a silent non-match at request time.
//
// Freeze is idempotent. After it returns, Match and URL are safe for
// unbounded concurrent callers with no locking.
func (s *Store) Freeze() {
	if s.frozen.Load() {
		return
	}

	s.mu.Lock()
	for _, rt := range s.routes {
		if err := rt.Prepare(); err != nil {
			s.mu.Unlock()
			panic(fmt.Sprintf("routing: route %q has an invalid domain pattern: %v", rt.Spec(), err))
		}
	}
	s.mu.Unlock()

	s.frozen.Store(true)
}

// IsFrozen implements route.Registrar.
func (s *Store) IsFrozen() bool {
	return s.frozen.Load()
}
