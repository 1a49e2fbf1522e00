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

// Package route defines the Route type and its batch-configuration Group
// for the Rivaas routing core.
//
// A Route binds a compiled path pattern to a verb set and a Handler, with
// optional name, domain constraint, middleware list, and response format.
// Resolve is the forward direction (path, verb, host → parameters); URL is
// the reverse direction (parameters → path).
//
// Handlers are a tagged variant: a direct Go function or a deferred
// "Controller.method" descriptor. Descriptors keep the core decoupled from
// any dependency-injection mechanism; an external resolver turns them into
// invocables at dispatch time.
//
// The package talks to the store through the small Registrar interface so
// it stays free of store internals and import cycles, following the same
// layering as the compiler package beneath it.
package route
