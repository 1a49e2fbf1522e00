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
	"time"

	"rivaas.dev/routing/route"
)

// Match is the outcome of a successful resolution: the winning route and the
// parameter values bound from the path and host.
type Match struct {
	Route  *route.Route
	Params route.Params
}

// Match resolves a literal (path, verb, host) triple against the route
// sequence. Routes are scanned in registration order and the first one that
// resolves wins; later routes with overlapping patterns never see the
// request. Returns nil when no route matches.
//
// Resolution is pure and, once the store is frozen, safe for unbounded
// concurrent callers. Pass an empty host when domain constraints are not in
// play; routes without a domain constraint ignore the host entirely.
//
// Example:
//
//	m := r.Match("users/42", "GET", "")
//	if m == nil {
//	    // 404
//	}
//	id := m.Params.Value("id")
func (r *Router) Match(path, verb, host string) *Match {
	var start time.Time
	if r.recorder != nil {
		start = time.Now()
	}

	for _, rt := range r.store.List() {
		params, ok := rt.Resolve(path, verb, host)
		if !ok {
			continue
		}
		if r.recorder != nil {
			r.recorder.RecordMatch(true, time.Since(start))
		}
		return &Match{Route: rt, Params: params}
	}

	if r.recorder != nil {
		r.recorder.RecordMatch(false, time.Since(start))
	}
	return nil
}
