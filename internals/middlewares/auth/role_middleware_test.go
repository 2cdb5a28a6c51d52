package auth

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"skillmatch_backend/internals/configs"
	"skillmatch_backend/internals/constants"
	identityService "skillmatch_backend/internals/features/identity/service"
	helper "skillmatch_backend/internals/helpers"
	"skillmatch_backend/internals/upstream"
)

// App mini dengan topologi guard yang sama seperti route production:
// group admin, group user (strict), dan satu endpoint guest-only.
func newGuardApp(rdb *redis.Client) *fiber.App {
	app := fiber.New()
	ok := func(c *fiber.Ctx) error { return helper.JsonOK(c, "ok", nil) }

	admin := app.Group("/api/a", AuthMiddleware(rdb),
		OnlyRoles(constants.RoleErrorAdmin("tes"), constants.AdminOnly...))
	admin.Get("/ping", ok)

	user := app.Group("/api/u", AuthMiddleware(rdb),
		OnlyRoles(constants.RoleErrorUser("tes"), constants.UserOnly...))
	user.Get("/ping", ok)

	app.Post("/api/auth/session", GuestOnly(), ok)
	return app
}

func mintToken(t *testing.T, role constants.Role) string {
	t.Helper()
	tok, err := identityService.MintSessionToken(&upstream.User{
		ID:       uuid.New(),
		Username: "tester",
		Role:     string(role),
	}, "upstream-token")
	require.NoError(t, err)
	return tok
}

func guardRequest(t *testing.T, app *fiber.App, method, path, token string) (int, helper.ErrorResponse) {
	t.Helper()
	req := httptest.NewRequest(method, path, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	var body helper.ErrorResponse
	_ = json.NewDecoder(resp.Body).Decode(&body)
	return resp.StatusCode, body
}

func TestGuardMatrix(t *testing.T) {
	configs.JWTSecret = "test-secret"

	app := newGuardApp(nil)
	adminToken := mintToken(t, constants.RoleAdmin)
	userToken := mintToken(t, constants.RoleUser)

	cases := []struct {
		name         string
		method, path string
		token        string
		wantStatus   int
		wantRedirect string
	}{
		{"anonymous admin route", "GET", "/api/a/ping", "", fiber.StatusUnauthorized, constants.RedirectLogin},
		{"anonymous user route", "GET", "/api/u/ping", "", fiber.StatusUnauthorized, constants.RedirectLogin},
		{"anonymous guest route", "POST", "/api/auth/session", "", fiber.StatusOK, ""},

		{"user on user route", "GET", "/api/u/ping", userToken, fiber.StatusOK, ""},
		{"user on admin route", "GET", "/api/a/ping", userToken, fiber.StatusForbidden, constants.RedirectUnauthorized},
		{"user on guest route", "POST", "/api/auth/session", userToken, fiber.StatusForbidden, constants.RedirectHome},

		{"admin on admin route", "GET", "/api/a/ping", adminToken, fiber.StatusOK, ""},
		// guard user bersifat strict: admin juga ditolak
		{"admin on user route", "GET", "/api/u/ping", adminToken, fiber.StatusForbidden, constants.RedirectUnauthorized},
		{"admin on guest route", "POST", "/api/auth/session", adminToken, fiber.StatusForbidden, constants.RedirectHome},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			status, body := guardRequest(t, app, tc.method, tc.path, tc.token)
			assert.Equal(t, tc.wantStatus, status)
			assert.Equal(t, tc.wantRedirect, body.Redirect)
		})
	}
}

func TestAuthMiddlewareRejectsBadTokens(t *testing.T) {
	configs.JWTSecret = "test-secret"
	app := newGuardApp(nil)

	t.Run("garbage token", func(t *testing.T) {
		status, body := guardRequest(t, app, "GET", "/api/u/ping", "bukan-jwt")
		assert.Equal(t, fiber.StatusUnauthorized, status)
		assert.Equal(t, constants.RedirectLogin, body.Redirect)
	})

	t.Run("wrong secret", func(t *testing.T) {
		other := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
			"user_id": uuid.New().String(),
			"role":    "USER",
			"exp":     time.Now().Add(time.Hour).Unix(),
		})
		signed, err := other.SignedString([]byte("secret-lain"))
		require.NoError(t, err)

		status, body := guardRequest(t, app, "GET", "/api/u/ping", signed)
		assert.Equal(t, fiber.StatusUnauthorized, status)
		assert.Equal(t, constants.RedirectLogin, body.Redirect)
	})

	t.Run("expired", func(t *testing.T) {
		expired := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
			"user_id": uuid.New().String(),
			"role":    "USER",
			"exp":     time.Now().Add(-time.Hour).Unix(),
		})
		signed, err := expired.SignedString([]byte(configs.JWTSecret))
		require.NoError(t, err)

		status, body := guardRequest(t, app, "GET", "/api/u/ping", signed)
		assert.Equal(t, fiber.StatusUnauthorized, status)
		assert.Equal(t, constants.RedirectLogin, body.Redirect)
	})
}

func TestAuthMiddlewareBlacklist(t *testing.T) {
	configs.JWTSecret = "test-secret"

	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })

	app := newGuardApp(rdb)
	token := mintToken(t, constants.RoleUser)

	status, _ := guardRequest(t, app, "GET", "/api/u/ping", token)
	require.Equal(t, fiber.StatusOK, status)

	// simulasi logout: token masuk blacklist
	require.NoError(t, mr.Set(BlacklistKey(token), "1"))

	status, body := guardRequest(t, app, "GET", "/api/u/ping", token)
	assert.Equal(t, fiber.StatusUnauthorized, status)
	assert.Equal(t, constants.RedirectLogin, body.Redirect)
}

func TestSessionCookieAccepted(t *testing.T) {
	configs.JWTSecret = "test-secret"
	app := newGuardApp(nil)
	token := mintToken(t, constants.RoleUser)

	req := httptest.NewRequest(http.MethodGet, "/api/u/ping", nil)
	req.AddCookie(&http.Cookie{Name: "sm_session", Value: token})
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}
