package controller

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newProxyApp(target string) *fiber.App {
	app := fiber.New()
	ctrl := NewProxyController(target)
	app.All("/api/proxy/*", ctrl.Forward)
	return app
}

func TestProxyEchoesUpstream(t *testing.T) {
	var gotPath, gotQuery, gotAuth, gotBody string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotQuery = r.URL.RawQuery
		gotAuth = r.Header.Get("Authorization")
		raw, _ := io.ReadAll(r.Body)
		gotBody = string(raw)

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusTeapot)
		_, _ = w.Write([]byte(`{"hello":"dunia"}`))
	}))
	defer server.Close()

	app := newProxyApp(server.URL)
	req := httptest.NewRequest("POST", "/api/proxy/api/surveys?page=2", strings.NewReader(`{"a":1}`))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer abc")

	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	// status, body, dan path downstream di-echo apa adanya
	assert.Equal(t, http.StatusTeapot, resp.StatusCode)
	raw, _ := io.ReadAll(resp.Body)
	assert.JSONEq(t, `{"hello":"dunia"}`, string(raw))

	assert.Equal(t, "/api/surveys", gotPath)
	assert.Equal(t, "page=2", gotQuery)
	assert.Equal(t, "Bearer abc", gotAuth)
	assert.JSONEq(t, `{"a":1}`, gotBody)
}

func TestProxyMethodNotAllowed(t *testing.T) {
	app := newProxyApp("http://localhost:0")
	resp, err := app.Test(httptest.NewRequest("PATCH", "/api/proxy/api/surveys", nil))
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, fiber.StatusMethodNotAllowed, resp.StatusCode)
}

func TestProxyTargetUnreachable(t *testing.T) {
	// port 0 tidak pernah listen → transport error, bukan panic
	app := newProxyApp("http://127.0.0.1:0")
	resp, err := app.Test(httptest.NewRequest("GET", "/api/proxy/api/surveys", nil), 5000)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, fiber.StatusInternalServerError, resp.StatusCode)
	var body map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "Proxy request failed", body["error"])
}
