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
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func noop(_ Params) (any, error) {
	return nil, nil
}

func TestNew(t *testing.T) {
	t.Parallel()

	r, err := New()
	require.NoError(t, err)
	require.NotNil(t, r)
	assert.Equal(t, 0, r.Store().Len())
}

func TestNewWithOptions(t *testing.T) {
	t.Parallel()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	r, err := New(WithLogger(logger))
	require.NoError(t, err)
	assert.Same(t, logger, r.logger)
}

func TestMustNew(t *testing.T) {
	t.Parallel()

	assert.NotPanics(t, func() {
		MustNew()
	})
}

func TestHandleRegistersInOrder(t *testing.T) {
	t.Parallel()

	r := MustNew()
	r.GET("users", Deferred("UserController.index"))
	r.GET("users/:id", Deferred("UserController.show"))
	r.POST("users", Deferred("UserController.store"))

	routes := r.Routes()
	require.Len(t, routes, 3)
	assert.Equal(t, "users", routes[0].Spec())
	assert.Equal(t, "users/:id", routes[1].Spec())
	assert.Equal(t, "users", routes[2].Spec())
}

func TestHandlePanicsOnInvalidPattern(t *testing.T) {
	t.Parallel()

	r := MustNew()
	assert.Panics(t, func() {
		r.GET("users/:id?/posts", Deferred("UserController.posts"))
	})
}

func TestHandlePanicsOnEmptyHandler(t *testing.T) {
	t.Parallel()

	r := MustNew()
	assert.Panics(t, func() {
		r.GET("users", Handler{})
	})
}

func TestVerbHelpers(t *testing.T) {
	t.Parallel()

	r := MustNew()

	assert.Equal(t, []string{"HEAD", "GET"}, r.GET("a", Func(noop)).Verbs())
	assert.Equal(t, []string{"POST"}, r.POST("b", Func(noop)).Verbs())
	assert.Equal(t, []string{"PUT"}, r.PUT("c", Func(noop)).Verbs())
	assert.Equal(t, []string{"PATCH"}, r.PATCH("d", Func(noop)).Verbs())
	assert.Equal(t, []string{"DELETE"}, r.DELETE("e", Func(noop)).Verbs())
	assert.Equal(t, []string{"HEAD", "GET", "POST", "PUT", "PATCH", "DELETE"}, r.Any("f", Func(noop)).Verbs())
}

func TestMatchFirstWins(t *testing.T) {
	t.Parallel()

	r := MustNew()
	r.GET("users/create", Deferred("UserController.create")).SetName("users.create")
	r.GET("users/:id", Deferred("UserController.show")).SetName("users.show")
	r.Freeze()

	m := r.Match("users/create", "GET", "")
	require.NotNil(t, m)
	assert.Equal(t, "users.create", m.Route.Name())
	assert.Empty(t, m.Params)

	m = r.Match("users/42", "GET", "")
	require.NotNil(t, m)
	assert.Equal(t, "users.show", m.Route.Name())
	assert.Equal(t, "42", m.Params.Value("id"))
}

func TestMatchShadowedRouteNeverWins(t *testing.T) {
	t.Parallel()

	r := MustNew()
	r.GET("users/:id", Deferred("UserController.show")).SetName("first")
	r.GET("users/:id", Deferred("UserController.showAgain")).SetName("second")
	r.Freeze()

	m := r.Match("users/42", "GET", "")
	require.NotNil(t, m)
	assert.Equal(t, "first", m.Route.Name())
}

func TestMatchVerbMismatch(t *testing.T) {
	t.Parallel()

	r := MustNew()
	r.GET("users", Deferred("UserController.index"))
	r.Freeze()

	assert.Nil(t, r.Match("users", "DELETE", ""))
}

func TestMatchHeadResolvesLikeGet(t *testing.T) {
	t.Parallel()

	r := MustNew()
	r.GET("users", Deferred("UserController.index"))
	r.Freeze()

	assert.NotNil(t, r.Match("users", "HEAD", ""))
}

func TestMatchOptionalParameter(t *testing.T) {
	t.Parallel()

	r := MustNew()
	r.GET("users/:id?", Deferred("UserController.show"))
	r.Freeze()

	m := r.Match("users", "GET", "")
	require.NotNil(t, m)
	assert.Empty(t, m.Params)

	m = r.Match("users/7", "GET", "")
	require.NotNil(t, m)
	assert.Equal(t, "7", m.Params.Value("id"))
}

func TestMatchNoRoute(t *testing.T) {
	t.Parallel()

	r := MustNew()
	r.GET("users", Deferred("UserController.index"))
	r.Freeze()

	assert.Nil(t, r.Match("posts", "GET", ""))
}

func TestMatchDomainConstraint(t *testing.T) {
	t.Parallel()

	r := MustNew()
	r.GET("dashboard", Deferred("TenantController.dashboard")).
		SetDomain(":account.example.com")
	r.Freeze()

	assert.Nil(t, r.Match("dashboard", "GET", "example.com"))

	m := r.Match("dashboard", "GET", "acme.example.com")
	require.NotNil(t, m)
	assert.Equal(t, "acme", m.Params.Value("account"))
}

func TestMatchHostParamsAfterPathParams(t *testing.T) {
	t.Parallel()

	r := MustNew()
	r.GET("projects/:id", Deferred("ProjectController.show")).
		SetDomain(":account.example.com")
	r.Freeze()

	m := r.Match("projects/9", "GET", "acme.example.com")
	require.NotNil(t, m)
	require.Len(t, m.Params, 2)
	assert.Equal(t, "id", m.Params[0].Key)
	assert.Equal(t, "account", m.Params[1].Key)
}

func TestFreezePanicsOnLateRegistration(t *testing.T) {
	t.Parallel()

	r := MustNew()
	r.GET("users", Deferred("UserController.index"))
	r.Freeze()

	assert.Panics(t, func() {
		r.GET("posts", Deferred("PostController.index"))
	})
}

func TestFreezeIdempotent(t *testing.T) {
	t.Parallel()

	r := MustNew()
	r.GET("users", Deferred("UserController.index"))
	r.Freeze()

	assert.NotPanics(t, func() {
		r.Freeze()
	})
}

func TestFreezePanicsOnInvalidDomain(t *testing.T) {
	t.Parallel()

	r := MustNew()
	r.GET("users", Deferred("UserController.index")).SetDomain("*.example.com")

	assert.Panics(t, func() {
		r.Freeze()
	})
}

func TestDiagnosticsShadowedRoute(t *testing.T) {
	t.Parallel()

	var events []DiagnosticEvent
	r := MustNew(WithDiagnostics(DiagnosticHandlerFunc(func(e DiagnosticEvent) {
		events = append(events, e)
	})))

	r.GET("users/:id", Deferred("UserController.show"))
	r.GET("users/:id", Deferred("UserController.showAgain"))

	require.Len(t, events, 1)
	assert.Equal(t, DiagShadowedRoute, events[0].Kind)
	assert.Equal(t, "users/:id", events[0].Fields["spec"])
}

func TestDiagnosticsNoShadowOnDisjointVerbs(t *testing.T) {
	t.Parallel()

	var events []DiagnosticEvent
	r := MustNew(WithDiagnostics(DiagnosticHandlerFunc(func(e DiagnosticEvent) {
		events = append(events, e)
	})))

	r.GET("users", Deferred("UserController.index"))
	r.POST("users", Deferred("UserController.store"))

	assert.Empty(t, events)
}

func TestDiagnosticsHighParamCount(t *testing.T) {
	t.Parallel()

	var events []DiagnosticEvent
	r := MustNew(WithDiagnostics(DiagnosticHandlerFunc(func(e DiagnosticEvent) {
		events = append(events, e)
	})))

	r.GET("a/:p1/:p2/:p3/:p4/:p5/:p6/:p7/:p8/:p9", Deferred("DeepController.show"))

	require.Len(t, events, 1)
	assert.Equal(t, DiagHighParamCount, events[0].Kind)
	assert.Equal(t, 9, events[0].Fields["params"])
}
