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

package compiler

import (
	"errors"
	"fmt"
	"net/url"
	"regexp"
	"strings"
)

var (
	// ErrMissingParameter indicates that reverse generation was asked to build
	// a URL without a value for a required (non-optional) parameter.
	ErrMissingParameter = errors.New("missing required parameter")

	// ErrEmptyParameterName indicates a ":" segment with no name after it.
	ErrEmptyParameterName = errors.New("parameter segment has no name")

	// ErrEmptySegment indicates an empty segment inside the pattern (e.g. "a//b").
	ErrEmptySegment = errors.New("pattern contains an empty segment")

	// ErrOptionalNotTrailing indicates that a required segment follows an
	// optional one. Optional parameters must trail the pattern.
	ErrOptionalNotTrailing = errors.New("optional parameters must trail the pattern")

	// ErrWildcardNotTrailing indicates a wildcard segment that is not the
	// final segment of the pattern.
	ErrWildcardNotTrailing = errors.New("wildcard must be the final segment")

	// ErrDomainSegment indicates an optional or wildcard segment inside a
	// domain pattern. Domain patterns support static and named segments only.
	ErrDomainSegment = errors.New("segment kind not allowed in domain patterns")
)

// DefaultWildcardParam is the capture key used for an unnamed wildcard tail ("*").
const DefaultWildcardParam = "path"

// segmentKind identifies how a single pattern segment matches and generates.
type segmentKind uint8

const (
	segStatic segmentKind = iota
	segParam
	segOptional
	segWildcard
)

// segment is one compiled pattern segment: literal text for segStatic,
// a parameter name for the other kinds.
type segment struct {
	kind  segmentKind
	value string
}

// Pattern is the compiled form of a path or domain spec. It operates in both
// directions: Match extracts parameter values from a literal input, and
// Generate substitutes values back into a literal string.
//
// Pattern is immutable after compilation and safe for concurrent use.
type Pattern struct {
	spec     string
	sep      string
	re       *regexp.Regexp
	segments []segment
	params   []string // capture names in match order
	wildcard bool
}

// Compile compiles a path spec into a Pattern.
//
// The path dialect supports:
//   - static segments, matched case-insensitively with all literal
//     characters escaped (literals can never act as wildcards)
//   - ":name" required parameters matching one segment
//   - ":name?" optional parameters, which must trail the pattern
//   - "*" or "*name" as the final segment, capturing the remainder
//     (including separators) as one value; "*" captures under
//     DefaultWildcardParam
//
// Example:
//
//	p, err := compiler.Compile("users/:id/posts/:slug?")
func Compile(spec string) (*Pattern, error) {
	return compile(spec, "/")
}

// CompileDomain compiles a host spec into a Pattern using "." as the segment
// separator. Domain patterns are a narrower dialect: static and ":name"
// segments only. Optional and wildcard segments are rejected.
//
// Example:
//
//	p, err := compiler.CompileDomain(":account.example.com")
func CompileDomain(spec string) (*Pattern, error) {
	return compile(spec, ".")
}

func compile(spec, sep string) (*Pattern, error) {
	p := &Pattern{spec: spec, sep: sep}

	trimmed := spec
	if sep == "/" {
		trimmed = strings.Trim(spec, "/")
	}

	if trimmed != "" {
		for part := range strings.SplitSeq(trimmed, sep) {
			seg, err := parseSegment(part, sep)
			if err != nil {
				return nil, fmt.Errorf("%w: %q", err, spec)
			}
			p.segments = append(p.segments, seg)
		}
	}

	if err := validateSegments(p.segments); err != nil {
		return nil, fmt.Errorf("%w: %q", err, spec)
	}

	re, params, hasWildcard := buildMatcher(p.segments, sep)
	p.re = re
	p.params = params
	p.wildcard = hasWildcard

	return p, nil
}

func parseSegment(part, sep string) (segment, error) {
	switch {
	case part == "":
		return segment{}, ErrEmptySegment

	case strings.HasPrefix(part, ":"):
		name := part[1:]
		kind := segParam
		if strings.HasSuffix(name, "?") {
			name = strings.TrimSuffix(name, "?")
			kind = segOptional
			if sep != "/" {
				return segment{}, ErrDomainSegment
			}
		}
		if name == "" {
			return segment{}, ErrEmptyParameterName
		}
		return segment{kind: kind, value: name}, nil

	case strings.HasPrefix(part, "*"):
		if sep != "/" {
			return segment{}, ErrDomainSegment
		}
		name := part[1:]
		if name == "" {
			name = DefaultWildcardParam
		}
		return segment{kind: segWildcard, value: name}, nil

	default:
		return segment{kind: segStatic, value: part}, nil
	}
}

// validateSegments enforces the tail rules: optional parameters may only be
// followed by other optional parameters, and a wildcard closes the pattern.
func validateSegments(segments []segment) error {
	sawOptional := false
	for i, seg := range segments {
		switch seg.kind {
		case segOptional:
			sawOptional = true
		case segWildcard:
			if sawOptional {
				return ErrOptionalNotTrailing
			}
			if i != len(segments)-1 {
				return ErrWildcardNotTrailing
			}
		default:
			if sawOptional {
				return ErrOptionalNotTrailing
			}
		}
	}
	return nil
}

// buildMatcher assembles the anchored, case-insensitive regular expression
// for the segments. Static text goes through regexp.QuoteMeta so literal
// characters cannot behave as metacharacters.
func buildMatcher(segments []segment, sep string) (*regexp.Regexp, []string, bool) {
	quotedSep := regexp.QuoteMeta(sep)
	segClass := "([^" + quotedSep + "]+)"

	var b strings.Builder
	b.WriteString("(?i)^")

	params := make([]string, 0, len(segments))
	hasWildcard := false

	for i, seg := range segments {
		lead := ""
		if i > 0 {
			lead = quotedSep
		}

		switch seg.kind {
		case segStatic:
			b.WriteString(lead)
			b.WriteString(regexp.QuoteMeta(seg.value))
		case segParam:
			b.WriteString(lead)
			b.WriteString(segClass)
			params = append(params, seg.value)
		case segOptional:
			// The separator joins the optional group so "users/:id?"
			// matches both "users" and "users/42".
			b.WriteString("(?:" + lead + segClass + ")?")
			params = append(params, seg.value)
		case segWildcard:
			b.WriteString(lead)
			b.WriteString("(.+)")
			params = append(params, seg.value)
			hasWildcard = true
		}
	}

	b.WriteString("$")

	return regexp.MustCompile(b.String()), params, hasWildcard
}

// Match resolves a literal input against the pattern. On success it returns
// the captured values in declaration order, aligned with Params(). Absent
// optional parameters yield empty strings; callers omit those from results.
func (p *Pattern) Match(input string) ([]string, bool) {
	if p.sep == "/" {
		input = strings.Trim(input, "/")
	}

	m := p.re.FindStringSubmatch(input)
	if m == nil {
		return nil, false
	}

	return m[1:], true
}

// Generate substitutes parameter values into the pattern, producing a
// literal path or host. A required parameter without a value fails with
// ErrMissingParameter. Generation stops at the first absent optional
// parameter; everything before it is emitted.
func (p *Pattern) Generate(data map[string]string) (string, error) {
	parts := make([]string, 0, len(p.segments))

	for _, seg := range p.segments {
		switch seg.kind {
		case segStatic:
			parts = append(parts, seg.value)
		case segParam:
			v, ok := data[seg.value]
			if !ok || v == "" {
				return "", fmt.Errorf("%w: %s", ErrMissingParameter, seg.value)
			}
			parts = append(parts, p.escape(v))
		case segOptional:
			v, ok := data[seg.value]
			if !ok || v == "" {
				return strings.Join(parts, p.sep), nil
			}
			parts = append(parts, p.escape(v))
		case segWildcard:
			v, ok := data[seg.value]
			if !ok || v == "" {
				return "", fmt.Errorf("%w: %s", ErrMissingParameter, seg.value)
			}
			// Wildcard values carry their own separators; emit them raw.
			parts = append(parts, v)
		}
	}

	return strings.Join(parts, p.sep), nil
}

// escape protects a single parameter value in path mode. Domain values are
// emitted verbatim.
func (p *Pattern) escape(v string) string {
	if p.sep == "/" {
		return url.PathEscape(v)
	}
	return v
}

// Spec returns the original pattern spec.
func (p *Pattern) Spec() string {
	return p.spec
}

// Params returns the parameter names in match order, including optional and
// wildcard names.
func (p *Pattern) Params() []string {
	out := make([]string, len(p.params))
	copy(out, p.params)
	return out
}

// IsStatic reports whether the pattern contains no parameters.
func (p *Pattern) IsStatic() bool {
	return len(p.params) == 0
}

// HasWildcard reports whether the pattern ends in a wildcard tail.
func (p *Pattern) HasWildcard() bool {
	return p.wildcard
}
