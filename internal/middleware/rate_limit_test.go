package middleware

import (
	"io"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/retocart/server/internal/apperr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestRateLimit(t *testing.T) {
	app := fiber.New(fiber.Config{ErrorHandler: apperr.Handler(zap.NewNop())})
	app.Get("/jwt", RateLimit(2, time.Minute, nil), func(c *fiber.Ctx) error {
		return c.SendString("ok")
	})

	for i := 0; i < 2; i++ {
		resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/jwt", nil), -1)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	}

	resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/jwt", nil), -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusTooManyRequests, resp.StatusCode)
}

func TestMetricsEndpoint(t *testing.T) {
	m := NewMetrics()
	app := fiber.New(fiber.Config{ErrorHandler: apperr.Handler(zap.NewNop())})
	app.Use(m.Handler())
	app.Get("/metrics", m.Endpoint())
	app.Get("/ok", func(c *fiber.Ctx) error { return c.SendString("ok") })
	app.Get("/missing", func(c *fiber.Ctx) error { return apperr.ErrUserNotFound })

	for _, path := range []string{"/ok", "/missing"} {
		_, err := app.Test(httptest.NewRequest(fiber.MethodGet, path, nil), -1)
		require.NoError(t, err)
	}

	resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/metrics", nil), -1)
	require.NoError(t, err)
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	body := string(raw)

	assert.True(t, strings.Contains(body, `retocart_http_requests_total{method="GET",route="/ok",status="200"} 1`), body)
	assert.True(t, strings.Contains(body, `retocart_http_requests_total{method="GET",route="/missing",status="404"} 1`), body)
}
