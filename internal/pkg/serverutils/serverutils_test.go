package serverutils

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var errThingNotFound = errors.New("thing not found")

type createThingRequest struct {
	Name  string `json:"name" validate:"required"`
	Align string `json:"align" validate:"omitempty,oneof=left right"`
}

func newErrorApp() *fiber.App {
	app := fiber.New()
	app.Use(ErrorHandlerMiddleware(ErrorMapping{Err: errThingNotFound, Status: fiber.StatusNotFound}))
	app.Get("/ok", func(ctx *fiber.Ctx) error {
		return ctx.JSON(SuccessResponse("Success", fiber.Map{"id": 1}))
	})
	app.Get("/missing", func(ctx *fiber.Ctx) error {
		return fmt.Errorf("lookup: %w", errThingNotFound)
	})
	app.Get("/fiber", func(ctx *fiber.Ctx) error {
		return fiber.NewError(fiber.StatusConflict, "busy")
	})
	app.Get("/boom", func(ctx *fiber.Ctx) error {
		return errors.New("database exploded")
	})
	app.Get("/invalid", func(ctx *fiber.Ctx) error {
		return ValidateRequest(createThingRequest{Align: "middle"})
	})
	return app
}

func TestErrorHandlerMiddleware(t *testing.T) {
	tests := []struct {
		path       string
		wantStatus int
		wantMsg    string
		wantErrors int
	}{
		{path: "/ok", wantStatus: 200, wantMsg: "Success"},
		{path: "/missing", wantStatus: 404, wantMsg: "lookup: thing not found"},
		{path: "/fiber", wantStatus: 409, wantMsg: "busy"},
		{path: "/boom", wantStatus: 500, wantMsg: "Internal server error"},
		{path: "/invalid", wantStatus: 400, wantErrors: 2},
	}

	app := newErrorApp()
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			resp, err := app.Test(httptest.NewRequest("GET", tt.path, nil), -1)
			require.NoError(t, err)
			assert.Equal(t, tt.wantStatus, resp.StatusCode)

			var body BaseResponse[json.RawMessage]
			require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
			assert.Equal(t, tt.wantStatus == 200, body.Success)
			assert.Equal(t, tt.wantStatus, body.Code)
			if tt.wantMsg != "" {
				assert.Equal(t, tt.wantMsg, body.Message)
			}
			assert.Len(t, body.Errors, tt.wantErrors)
		})
	}
}

func signedToken(t *testing.T, secret string, claims jwt.MapClaims) string {
	t.Helper()
	s, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	require.NoError(t, err)
	return s
}

func TestJwtMiddleware(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	app := fiber.New()
	app.Get("/header", JwtMiddleware, func(ctx *fiber.Ctx) error {
		return ctx.SendString(ctx.Locals(UserIDKey).(string))
	})
	app.Get("/query", JwtQueryMiddleware, func(ctx *fiber.Ctx) error {
		return ctx.SendString(ctx.Locals(UserIDKey).(string))
	})

	valid := signedToken(t, "test-secret", jwt.MapClaims{"user_id": "u-1", "exp": time.Now().Add(time.Hour).Unix()})
	forged := signedToken(t, "other-secret", jwt.MapClaims{"user_id": "u-1"})
	noUser := signedToken(t, "test-secret", jwt.MapClaims{"exp": time.Now().Add(time.Hour).Unix()})

	tests := []struct {
		name       string
		path       string
		header     string
		wantStatus int
	}{
		{name: "valid header", path: "/header", header: "Bearer " + valid, wantStatus: 200},
		{name: "missing header", path: "/header", wantStatus: 401},
		{name: "forged header", path: "/header", header: "Bearer " + forged, wantStatus: 401},
		{name: "no user claim", path: "/header", header: "Bearer " + noUser, wantStatus: 401},
		{name: "valid query", path: "/query?token=" + valid, wantStatus: 200},
		{name: "missing query", path: "/query", wantStatus: 401},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("GET", tt.path, nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			resp, err := app.Test(req, -1)
			require.NoError(t, err)
			assert.Equal(t, tt.wantStatus, resp.StatusCode)
		})
	}
}
