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

// Param is a single parameter extracted during route resolution.
type Param struct {
	Key   string
	Value string
}

// Params is an ordered list of extracted parameters. Order follows pattern
// declaration: path parameters first, then host parameters when the route
// carries a domain constraint.
type Params []Param

// Get returns the value for key and whether it was present. When a path and
// a host parameter share a name, the path value wins (it appears first).
func (ps Params) Get(key string) (string, bool) {
	for _, p := range ps {
		if p.Key == key {
			return p.Value, true
		}
	}
	return "", false
}

// Value returns the value for key, or the empty string.
func (ps Params) Value(key string) string {
	v, _ := ps.Get(key)
	return v
}

// Map returns the parameters as a map. Duplicate keys resolve to the first
// occurrence, matching Get.
func (ps Params) Map() map[string]string {
	if len(ps) == 0 {
		return nil
	}
	m := make(map[string]string, len(ps))
	for _, p := range ps {
		if _, ok := m[p.Key]; !ok {
			m[p.Key] = p.Value
		}
	}
	return m
}
