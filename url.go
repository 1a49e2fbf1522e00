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

import "fmt"

// URL generates a literal path for a route identified by name or by
// deferred handler descriptor. Lookup prefers an exact name match; failing
// that it scans for a deferred descriptor, preferring a route whose domain
// constraint equals domain. Pass an empty domain when it does not matter.
//
// Returns ErrRouteNotFound when no route matches the reference, and
// ErrMissingParameter when data lacks a required parameter. Optional
// parameters may be omitted; generation stops at the first absent one.
//
// Example:
//
//	url, err := r.URL("posts.show", map[string]string{"id": "5"}, "")
//	// url == "posts/5"
func (r *Router) URL(ref string, data map[string]string, domain string) (string, error) {
	rt := r.store.Find(ref, domain)
	if rt == nil {
		return "", fmt.Errorf("%w: %q", ErrRouteNotFound, ref)
	}
	return rt.URL(data)
}
