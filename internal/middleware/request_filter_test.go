package middleware_test

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"astroleap/internal/middleware"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newFilteredApp() *fiber.App {
	app := fiber.New()
	app.Use(middleware.RequestFilter())
	app.Get("/ping", func(c *fiber.Ctx) error {
		return c.SendString("pong")
	})
	return app
}

func TestRequestFilter_AllowsUserAgent(t *testing.T) {
	app := newFilteredApp()

	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set("User-Agent", "UnityPlayer/2022.3")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "pong", string(body))
}

func TestRequestFilter_RejectsMissingUserAgent(t *testing.T) {
	app := newFilteredApp()

	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Del("User-Agent")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.JSONEq(t, `{"error":"User-Agent required"}`, string(body))
}
