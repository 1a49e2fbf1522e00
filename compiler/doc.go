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

// Package compiler compiles path and domain specs into bidirectional
// patterns for the Rivaas routing core.
//
// A compiled Pattern works in both directions: Match extracts parameter
// values from a literal path or host, and Generate substitutes parameter
// values back into a literal string (reverse routing).
//
// # Pattern Dialect
//
// Path patterns are segment-based, separated by "/":
//
//	users               static segment, matched case-insensitively
//	users/:id           required parameter, one segment
//	users/:id?          optional parameter, must trail the pattern
//	files/*             wildcard tail, captures the remainder as one value
//	files/*name         named wildcard tail
//
// Domain patterns use "." as the separator and support only static and
// ":name" segments. CompileDomain rejects optional and wildcard segments;
// host specs are a narrower dialect than path specs.
//
// # Matching
//
// Patterns compile to anchored regular expressions. All literal text passes
// through regexp.QuoteMeta before the matcher is built, so characters that
// are meaningful to the regexp engine never widen a match. Static segments
// compare case-insensitively; captured parameter values keep their original
// case.
//
// # Reverse Generation
//
// Generate walks the compiled segments left to right. Required parameters
// without a value fail with ErrMissingParameter. Generation stops at the
// first absent optional parameter, emitting everything before it.
//
// # Import Cycle Prevention
//
// The compiler package is a leaf: it knows nothing about routes, stores, or
// handlers. The route package layers route semantics (verbs, domains,
// middleware) on top of compiled patterns.
//
// # Thread Safety
//
// A Pattern is immutable after compilation. Match and Generate are pure and
// safe for unbounded concurrent callers.
package compiler
