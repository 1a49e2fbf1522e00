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

import "rivaas.dev/routing/route"

// Renderer renders a named template to content. Routes registered through
// On(...).Render defer to this collaborator at dispatch time; the routing
// core itself never renders.
type Renderer interface {
	Render(name string) (string, error)
}

// Resolver turns a deferred "Controller.method" descriptor into an
// invocable. The routing core only stores descriptors — resolution happens
// outside it, at dispatch time. The interface is declared here so consumers
// share a compile-time contract.
type Resolver interface {
	Resolve(descriptor string) (route.HandlerFunc, error)
}
