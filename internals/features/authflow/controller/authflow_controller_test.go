package controller

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"skillmatch_backend/internals/upstream"
)

func newAuthFlowApp(t *testing.T, upstreamStatus int, hits *atomic.Int32) *fiber.App {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		w.WriteHeader(upstreamStatus)
	}))
	t.Cleanup(server.Close)

	ctrl := NewAuthFlowController(upstream.NewClient(server.URL, 5*time.Second))
	app := fiber.New()
	app.Post("/api/auth/verify/:token", ctrl.VerifyEmail)
	app.Post("/api/auth/reset-password/:token", ctrl.ResetPassword)
	return app
}

func postJSON(t *testing.T, app *fiber.App, path, body string) *http.Response {
	t.Helper()
	req := httptest.NewRequest("POST", path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, 5000)
	require.NoError(t, err)
	return resp
}

func TestVerifyEmail(t *testing.T) {
	t.Run("sukses", func(t *testing.T) {
		var hits atomic.Int32
		app := newAuthFlowApp(t, http.StatusOK, &hits)
		resp := postJSON(t, app, "/api/auth/verify/tok-123", "")
		defer resp.Body.Close()
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)
		assert.Equal(t, int32(1), hits.Load())
	})

	t.Run("token kedaluwarsa", func(t *testing.T) {
		var hits atomic.Int32
		app := newAuthFlowApp(t, http.StatusNotFound, &hits)
		resp := postJSON(t, app, "/api/auth/verify/tok-basi", "")
		defer resp.Body.Close()
		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	})

	t.Run("backend down", func(t *testing.T) {
		var hits atomic.Int32
		app := newAuthFlowApp(t, http.StatusInternalServerError, &hits)
		resp := postJSON(t, app, "/api/auth/verify/tok-123", "")
		defer resp.Body.Close()
		assert.Equal(t, fiber.StatusBadGateway, resp.StatusCode)
	})
}

func TestResetPasswordValidation(t *testing.T) {
	var hits atomic.Int32
	app := newAuthFlowApp(t, http.StatusOK, &hits)

	t.Run("konfirmasi tidak sama", func(t *testing.T) {
		resp := postJSON(t, app, "/api/auth/reset-password/tok-123",
			`{"password":"rahasia-baru","confirm_password":"beda-sendiri"}`)
		defer resp.Body.Close()
		assert.Equal(t, fiber.StatusUnprocessableEntity, resp.StatusCode)
	})

	t.Run("terlalu pendek", func(t *testing.T) {
		resp := postJSON(t, app, "/api/auth/reset-password/tok-123",
			`{"password":"pendek","confirm_password":"pendek"}`)
		defer resp.Body.Close()
		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	})

	// validasi sinkron gagal → backend tidak pernah disentuh
	assert.Equal(t, int32(0), hits.Load())

	t.Run("sukses", func(t *testing.T) {
		resp := postJSON(t, app, "/api/auth/reset-password/tok-123",
			`{"password":"rahasia-baru","confirm_password":"rahasia-baru"}`)
		defer resp.Body.Close()
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)
		assert.Equal(t, int32(1), hits.Load())
	})
}
