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
	"errors"

	"rivaas.dev/routing/compiler"
)

var (
	// ErrNilGroupCallback indicates that Group was called without a callback.
	ErrNilGroupCallback = errors.New("group callback must not be nil")

	// ErrNestedGroup indicates an attempt to open a group while another
	// group's capture window is still active. Groups do not nest.
	ErrNestedGroup = errors.New("route group already open")

	// ErrRouteNotFound indicates that reverse generation could not find a
	// route by name or handler descriptor. An unmatched lookup is an
	// expected outcome, reported as this sentinel rather than a panic.
	ErrRouteNotFound = errors.New("route not found")

	// ErrDuplicateRouteName indicates that a route name is already taken.
	// Names are unique across the whole store.
	ErrDuplicateRouteName = errors.New("duplicate route name")

	// ErrNoRenderer indicates that a route registered via On(...).Render was
	// dispatched without a Renderer configured on the router.
	ErrNoRenderer = errors.New("no renderer configured")

	// ErrMissingParameter indicates that reverse generation lacked a value
	// for a required parameter. Re-exported from the compiler package so
	// callers of URL need only this package for errors.Is checks.
	ErrMissingParameter = compiler.ErrMissingParameter
)
