package observability

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMiddleware_UsesRoutePattern(t *testing.T) {
	m := NewMetrics()
	app := fiber.New()
	app.Use(m.Middleware())
	app.Post("/habits/:id/completions", func(c *fiber.Ctx) error {
		return c.SendStatus(http.StatusCreated)
	})

	for _, path := range []string{"/habits/3/completions", "/habits/4/completions"} {
		_, err := app.Test(httptest.NewRequest(http.MethodPost, path, nil), -1)
		require.NoError(t, err)
	}

	assert.Equal(t, 2.0, testutil.ToFloat64(m.httpRequestsTotal.WithLabelValues("/habits/:id/completions", "201")))
	assert.Equal(t, 1, testutil.CollectAndCount(m.httpDuration))
}

func TestMiddleware_ErrorStatus(t *testing.T) {
	m := NewMetrics()
	app := fiber.New()
	app.Use(m.Middleware())
	app.Get("/fail", func(c *fiber.Ctx) error {
		return fiber.NewError(http.StatusBadGateway, "upstream")
	})

	_, err := app.Test(httptest.NewRequest(http.MethodGet, "/fail", nil), -1)
	require.NoError(t, err)
	assert.Equal(t, 1.0, testutil.ToFloat64(m.httpRequestsTotal.WithLabelValues("/fail", "502")))
}

func TestObservers(t *testing.T) {
	m := NewMetrics()
	m.CompletionRecorded()
	m.CompletionRecorded()
	m.TrendsExcluded(3)
	m.TrendsExcluded(0)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.completionsRecorded))
	assert.Equal(t, 3.0, testutil.ToFloat64(m.trendsExcludedEvents))

	var nilMetrics *Metrics
	assert.NotPanics(t, func() {
		nilMetrics.CompletionRecorded()
		nilMetrics.TrendsExcluded(1)
	})
}

func TestHandler_ExposesMetrics(t *testing.T) {
	m := NewMetrics()
	m.CompletionRecorded()

	app := fiber.New()
	app.Get("/metrics", m.Handler())

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/metrics", nil), -1)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), "habit_completions_recorded_total 1")
}
