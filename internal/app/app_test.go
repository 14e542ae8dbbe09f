package app_test

import (
	"fmt"
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"astroleap/internal/app"
	"astroleap/internal/config"
	"astroleap/internal/database"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func TestMain(m *testing.M) {
	log.SetOutput(io.Discard)
	os.Exit(m.Run())
}

func newTestApp(t *testing.T, cfg config.Config) *fiber.App {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))
	t.Cleanup(func() { database.Close(db) })

	return app.New(cfg, app.Deps{DB: db})
}

func get(t *testing.T, a *fiber.App, path string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	req.Header.Set("User-Agent", "AstroLeapClient/1.0")
	resp, err := a.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func TestRateLimiter(t *testing.T) {
	a := newTestApp(t, config.Config{RateLimitMax: 2, RateLimitWindow: time.Minute})

	for i := 0; i < 2; i++ {
		resp := get(t, a, "/health")
		assert.Equal(t, http.StatusOK, resp.StatusCode)
	}

	resp := get(t, a, "/health")
	defer resp.Body.Close()
	body, _ := io.ReadAll(resp.Body)
	assert.Equal(t, http.StatusTooManyRequests, resp.StatusCode)
	assert.JSONEq(t, `{"error":"Too many requests"}`, string(body))
}

func TestEmailRoutesRequireMailer(t *testing.T) {
	a := newTestApp(t, config.Config{})

	req := httptest.NewRequest(http.MethodPost, "/send-verification-email", nil)
	req.Header.Set("User-Agent", "AstroLeapClient/1.0")
	resp, err := a.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestErrorHandlerWritesJSON(t *testing.T) {
	a := newTestApp(t, config.Config{})

	resp := get(t, a, "/nowhere")
	defer resp.Body.Close()
	body, _ := io.ReadAll(resp.Body)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Contains(t, string(body), `"error"`)
}
