package controllers

import (
	"errors"
	"strings"

	"github.com/fasthttp/router"
	"github.com/valyala/fasthttp"

	"github.com/streetleague/skillbuilder/internal/perrors"
	"github.com/streetleague/skillbuilder/internal/services"
	"github.com/streetleague/skillbuilder/internal/services/auth"
)

type signInRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func RegisterAuthRoutes(r *router.Router, svc *services.Services) {
	// Sign in
	r.POST("/api/auth/sign-in", func(ctx *fasthttp.RequestCtx) {
		stdCtx := requestContext(ctx)
		var body signInRequest
		if err := parseBody(ctx, &body); err != nil {
			writeError(ctx, stdCtx, "Invalid request body", perrors.NewErrInvalidRequest("Invalid request body", err))
			return
		}

		result, err := svc.Auth.SignIn(stdCtx, body.Email, body.Password)
		if err != nil {
			writeError(ctx, stdCtx, "Failed to sign in", perrors.NewErrInternalServerError("Failed to sign in", err))
			return
		}

		if !result.Success {
			writeError(ctx, stdCtx, result.Error, perrors.New(perrors.ErrCodeUnauthorized, result.Error, errors.New(result.Error)))
			return
		}

		writeOK(ctx, stdCtx, "Signed in successfully", svc.Auth.State(stdCtx))
	})

	// Sign up
	r.POST("/api/auth/sign-up", func(ctx *fasthttp.RequestCtx) {
		stdCtx := requestContext(ctx)
		var body auth.SignUpRequest
		if err := parseBody(ctx, &body); err != nil {
			writeError(ctx, stdCtx, "Invalid request body", perrors.NewErrInvalidRequest("Invalid request body", err))
			return
		}

		if strings.TrimSpace(body.Email) == "" {
			writeError(ctx, stdCtx, "Email is required", perrors.NewErrInvalidRequest("Email is required", errors.New("email is required")))
			return
		}

		if strings.TrimSpace(body.FirstName) == "" || strings.TrimSpace(body.LastName) == "" {
			writeError(ctx, stdCtx, "First and last name are required", perrors.NewErrInvalidRequest("First and last name are required", errors.New("name is required")))
			return
		}

		if !auth.IsPasswordValid(body.Password) {
			writeError(ctx, stdCtx, "Password does not meet the requirements", perrors.NewErrInvalidRequest("Password does not meet the requirements", errors.New("weak password"), map[string]interface{}{
				"requirements": auth.PasswordRequirements(body.Password),
			}))
			return
		}

		result, err := svc.Auth.SignUp(stdCtx, body)
		if err != nil {
			writeError(ctx, stdCtx, "Failed to sign up", perrors.NewErrInternalServerError("Failed to sign up", err))
			return
		}

		if !result.Success {
			writeError(ctx, stdCtx, result.Error, perrors.New(perrors.ErrCodeConflict, result.Error, errors.New(result.Error)))
			return
		}

		writeOK(ctx, stdCtx, "Account created successfully", svc.Auth.State(stdCtx))
	})

	// Sign out
	r.POST("/api/auth/sign-out", func(ctx *fasthttp.RequestCtx) {
		stdCtx := requestContext(ctx)
		if err := svc.Auth.SignOut(stdCtx); err != nil {
			writeError(ctx, stdCtx, "Failed to sign out", perrors.NewErrInternalServerError("Failed to sign out", err))
			return
		}

		writeOK(ctx, stdCtx, "Signed out successfully", nil)
	})

	// Current session
	r.GET("/api/auth/session", func(ctx *fasthttp.RequestCtx) {
		stdCtx := requestContext(ctx)
		writeOK(ctx, stdCtx, "Session retrieved successfully", svc.Auth.State(stdCtx))
	})

	// Password requirement checklist, evaluated against the supplied candidate
	r.POST("/api/auth/password-requirements", func(ctx *fasthttp.RequestCtx) {
		stdCtx := requestContext(ctx)
		var body struct {
			Password string `json:"password"`
		}
		if err := parseBody(ctx, &body); err != nil {
			writeError(ctx, stdCtx, "Invalid request body", perrors.NewErrInvalidRequest("Invalid request body", err))
			return
		}

		writeOK(ctx, stdCtx, "Password requirements evaluated", auth.PasswordRequirements(body.Password))
	})
}
