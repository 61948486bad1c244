package controllers

import (
	"testing"

	json "github.com/bytedance/sonic"
	"github.com/fasthttp/router"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/valyala/fasthttp"

	"github.com/streetleague/skillbuilder/internal/services"
	"github.com/streetleague/skillbuilder/internal/services/auth"
	"github.com/streetleague/skillbuilder/internal/sessionstore"
)

type envelope struct {
	Error   bool            `json:"error"`
	Message string          `json:"message"`
	Data    map[string]any  `json:"data"`
	Status  int             `json:"status"`
}

func newAuthHandler() fasthttp.RequestHandler {
	svc := &services.Services{
		Auth: auth.NewAuthService(
			auth.NewMemoryCredentialStore(auth.SeedCredentials()),
			sessionstore.NewMemoryStore(),
			0,
		),
	}

	r := router.New()
	RegisterAuthRoutes(r, svc)
	return r.Handler
}

func decodeEnvelope(t *testing.T, ctx *fasthttp.RequestCtx) envelope {
	t.Helper()
	var env envelope
	require.NoError(t, json.Unmarshal(ctx.Response.Body(), &env))
	return env
}

func TestSignInEndpoint(t *testing.T) {
	h := newAuthHandler()

	ctx := performRequest(h, fasthttp.MethodPost, "http://test/api/auth/sign-in",
		[]byte(`{"email":"demo@streetleague.org","password":"Demo123!"}`))
	require.Equal(t, fasthttp.StatusOK, ctx.Response.StatusCode())

	env := decodeEnvelope(t, ctx)
	assert.False(t, env.Error)
	assert.Equal(t, true, env.Data["isSignedIn"])

	// The generic message never reveals which part of the credential failed.
	ctx = performRequest(h, fasthttp.MethodPost, "http://test/api/auth/sign-in",
		[]byte(`{"email":"demo@streetleague.org","password":"wrong"}`))
	assert.Equal(t, fasthttp.StatusUnauthorized, ctx.Response.StatusCode())
	assert.Equal(t, "Invalid email or password", decodeEnvelope(t, ctx).Message)
}

func TestSignInEndpointRejectsEmptyBody(t *testing.T) {
	ctx := performRequest(newAuthHandler(), fasthttp.MethodPost, "http://test/api/auth/sign-in", nil)
	assert.Equal(t, fasthttp.StatusBadRequest, ctx.Response.StatusCode())
}

func TestSignUpEndpointEnforcesPasswordRules(t *testing.T) {
	h := newAuthHandler()

	ctx := performRequest(h, fasthttp.MethodPost, "http://test/api/auth/sign-up",
		[]byte(`{"email":"new@streetleague.org","password":"Abcdefg1","firstName":"New","lastName":"User"}`))
	assert.Equal(t, fasthttp.StatusBadRequest, ctx.Response.StatusCode())
	assert.Equal(t, "Password does not meet the requirements", decodeEnvelope(t, ctx).Message)

	ctx = performRequest(h, fasthttp.MethodPost, "http://test/api/auth/sign-up",
		[]byte(`{"email":"new@streetleague.org","password":"Abcdefg1!","firstName":"New","lastName":"User"}`))
	assert.Equal(t, fasthttp.StatusOK, ctx.Response.StatusCode())
}

func TestSignUpEndpointDuplicateEmail(t *testing.T) {
	ctx := performRequest(newAuthHandler(), fasthttp.MethodPost, "http://test/api/auth/sign-up",
		[]byte(`{"email":"demo@streetleague.org","password":"Abcdefg1!","firstName":"Second","lastName":"Demo"}`))

	assert.Equal(t, fasthttp.StatusConflict, ctx.Response.StatusCode())
	assert.Equal(t, "An account with this email already exists", decodeEnvelope(t, ctx).Message)
}

func TestSessionEndpointLifecycle(t *testing.T) {
	h := newAuthHandler()

	ctx := performRequest(h, fasthttp.MethodGet, "http://test/api/auth/session", nil)
	require.Equal(t, fasthttp.StatusOK, ctx.Response.StatusCode())
	assert.Equal(t, false, decodeEnvelope(t, ctx).Data["isSignedIn"])

	performRequest(h, fasthttp.MethodPost, "http://test/api/auth/sign-in",
		[]byte(`{"email":"demo@streetleague.org","password":"Demo123!"}`))

	ctx = performRequest(h, fasthttp.MethodGet, "http://test/api/auth/session", nil)
	assert.Equal(t, true, decodeEnvelope(t, ctx).Data["isSignedIn"])

	ctx = performRequest(h, fasthttp.MethodPost, "http://test/api/auth/sign-out", nil)
	require.Equal(t, fasthttp.StatusOK, ctx.Response.StatusCode())

	ctx = performRequest(h, fasthttp.MethodGet, "http://test/api/auth/session", nil)
	assert.Equal(t, false, decodeEnvelope(t, ctx).Data["isSignedIn"])
}
