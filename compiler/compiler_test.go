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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompileStatic(t *testing.T) {
	t.Parallel()

	p, err := Compile("users")
	require.NoError(t, err)

	assert.True(t, p.IsStatic())
	assert.Empty(t, p.Params())

	values, ok := p.Match("users")
	assert.True(t, ok)
	assert.Empty(t, values)

	_, ok = p.Match("users/42")
	assert.False(t, ok, "static pattern must not match a longer path")
}

func TestCompileStaticCaseInsensitive(t *testing.T) {
	t.Parallel()

	p, err := Compile("Admin/Dashboard")
	require.NoError(t, err)

	_, ok := p.Match("admin/dashboard")
	assert.True(t, ok)

	_, ok = p.Match("ADMIN/DASHBOARD")
	assert.True(t, ok)
}

func TestCompileRequiredParameter(t *testing.T) {
	t.Parallel()

	p, err := Compile("users/:id")
	require.NoError(t, err)
	assert.Equal(t, []string{"id"}, p.Params())

	values, ok := p.Match("users/42")
	require.True(t, ok)
	assert.Equal(t, []string{"42"}, values)

	_, ok = p.Match("users")
	assert.False(t, ok, "required parameter must not match when absent")

	_, ok = p.Match("users/42/edit")
	assert.False(t, ok, "extra trailing segments must not match")
}

func TestCompileParameterKeepsCase(t *testing.T) {
	t.Parallel()

	p, err := Compile("users/:id")
	require.NoError(t, err)

	values, ok := p.Match("Users/AbC")
	require.True(t, ok)
	assert.Equal(t, "AbC", values[0], "captured values keep their original case")
}

func TestCompileOptionalParameter(t *testing.T) {
	t.Parallel()

	p, err := Compile("users/:id?")
	require.NoError(t, err)

	values, ok := p.Match("users/42")
	require.True(t, ok)
	assert.Equal(t, []string{"42"}, values)

	values, ok = p.Match("users")
	require.True(t, ok)
	assert.Equal(t, []string{""}, values, "absent optional captures empty")
}

func TestCompileMultipleTrailingOptionals(t *testing.T) {
	t.Parallel()

	p, err := Compile("reports/:year?/:month?")
	require.NoError(t, err)

	values, ok := p.Match("reports/2025/08")
	require.True(t, ok)
	assert.Equal(t, []string{"2025", "08"}, values)

	values, ok = p.Match("reports/2025")
	require.True(t, ok)
	assert.Equal(t, []string{"2025", ""}, values)

	values, ok = p.Match("reports")
	require.True(t, ok)
	assert.Equal(t, []string{"", ""}, values)
}

func TestCompileWildcardTail(t *testing.T) {
	t.Parallel()

	p, err := Compile("files/*")
	require.NoError(t, err)
	assert.True(t, p.HasWildcard())
	assert.Equal(t, []string{DefaultWildcardParam}, p.Params())

	values, ok := p.Match("files/css/app.css")
	require.True(t, ok)
	assert.Equal(t, []string{"css/app.css"}, values)

	_, ok = p.Match("files")
	assert.False(t, ok, "wildcard captures at least one character")
}

func TestCompileNamedWildcard(t *testing.T) {
	t.Parallel()

	p, err := Compile("docs/*page")
	require.NoError(t, err)
	assert.Equal(t, []string{"page"}, p.Params())

	values, ok := p.Match("docs/guides/routing")
	require.True(t, ok)
	assert.Equal(t, []string{"guides/routing"}, values)
}

func TestCompileEscapesLiterals(t *testing.T) {
	t.Parallel()

	// A dot in a static segment is a literal dot, not "any character".
	p, err := Compile("feed.xml")
	require.NoError(t, err)

	_, ok := p.Match("feed.xml")
	assert.True(t, ok)

	_, ok = p.Match("feedAxml")
	assert.False(t, ok, "literal characters must not behave as wildcards")
}

func TestCompileLeadingAndTrailingSlashes(t *testing.T) {
	t.Parallel()

	p, err := Compile("/users/:id/")
	require.NoError(t, err)

	values, ok := p.Match("/users/42/")
	require.True(t, ok)
	assert.Equal(t, []string{"42"}, values)

	values, ok = p.Match("users/42")
	require.True(t, ok)
	assert.Equal(t, []string{"42"}, values)
}

func TestCompileErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		spec string
		want error
	}{
		{"empty parameter name", "users/:", ErrEmptyParameterName},
		{"empty optional name", "users/:?", ErrEmptyParameterName},
		{"empty segment", "users//edit", ErrEmptySegment},
		{"required after optional", "users/:id?/edit", ErrOptionalNotTrailing},
		{"parameter after optional", "users/:id?/:tab", ErrOptionalNotTrailing},
		{"wildcard after optional", "users/:id?/*", ErrOptionalNotTrailing},
		{"wildcard not last", "files/*/meta", ErrWildcardNotTrailing},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := Compile(tt.spec)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestCompileDomain(t *testing.T) {
	t.Parallel()

	p, err := CompileDomain(":account.example.com")
	require.NoError(t, err)
	assert.Equal(t, []string{"account"}, p.Params())

	values, ok := p.Match("acme.example.com")
	require.True(t, ok)
	assert.Equal(t, []string{"acme"}, values)

	_, ok = p.Match("example.com")
	assert.False(t, ok)

	_, ok = p.Match("acme.example.org")
	assert.False(t, ok)
}

func TestCompileDomainStatic(t *testing.T) {
	t.Parallel()

	p, err := CompileDomain("blog.example.com")
	require.NoError(t, err)

	_, ok := p.Match("blog.example.com")
	assert.True(t, ok)

	_, ok = p.Match("Blog.Example.Com")
	assert.True(t, ok, "host comparison is case-insensitive")

	_, ok = p.Match("shop.example.com")
	assert.False(t, ok)
}

func TestCompileDomainRejectsWiderDialect(t *testing.T) {
	t.Parallel()

	_, err := CompileDomain("*.example.com")
	assert.ErrorIs(t, err, ErrDomainSegment)

	_, err = CompileDomain(":sub?.example.com")
	assert.ErrorIs(t, err, ErrDomainSegment)
}

func TestGenerate(t *testing.T) {
	t.Parallel()

	p, err := Compile("posts/:id")
	require.NoError(t, err)

	got, err := p.Generate(map[string]string{"id": "5"})
	require.NoError(t, err)
	assert.Equal(t, "posts/5", got)
}

func TestGenerateMissingRequired(t *testing.T) {
	t.Parallel()

	p, err := Compile("posts/:id")
	require.NoError(t, err)

	_, err = p.Generate(nil)
	assert.ErrorIs(t, err, ErrMissingParameter)
}

func TestGenerateOptional(t *testing.T) {
	t.Parallel()

	p, err := Compile("reports/:year/:month?")
	require.NoError(t, err)

	got, err := p.Generate(map[string]string{"year": "2025", "month": "08"})
	require.NoError(t, err)
	assert.Equal(t, "reports/2025/08", got)

	got, err = p.Generate(map[string]string{"year": "2025"})
	require.NoError(t, err)
	assert.Equal(t, "reports/2025", got, "generation stops at the absent optional")
}

func TestGenerateEscapesValues(t *testing.T) {
	t.Parallel()

	p, err := Compile("tags/:tag")
	require.NoError(t, err)

	got, err := p.Generate(map[string]string{"tag": "a b"})
	require.NoError(t, err)
	assert.Equal(t, "tags/a%20b", got)
}

func TestGenerateWildcard(t *testing.T) {
	t.Parallel()

	p, err := Compile("files/*")
	require.NoError(t, err)

	got, err := p.Generate(map[string]string{DefaultWildcardParam: "css/app.css"})
	require.NoError(t, err)
	assert.Equal(t, "files/css/app.css", got, "wildcard values keep their separators")

	_, err = p.Generate(nil)
	assert.ErrorIs(t, err, ErrMissingParameter)
}

func TestGenerateDomain(t *testing.T) {
	t.Parallel()

	p, err := CompileDomain(":account.example.com")
	require.NoError(t, err)

	got, err := p.Generate(map[string]string{"account": "acme"})
	require.NoError(t, err)
	assert.Equal(t, "acme.example.com", got)
}

func TestMatchRoundTrip(t *testing.T) {
	t.Parallel()

	p, err := Compile("users/:id/posts/:slug")
	require.NoError(t, err)

	generated, err := p.Generate(map[string]string{"id": "7", "slug": "hello"})
	require.NoError(t, err)

	values, ok := p.Match(generated)
	require.True(t, ok)
	assert.Equal(t, []string{"7", "hello"}, values)
}
