package middleware

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMetricsApp(t *testing.T) (*fiber.App, *PrometheusMiddleware, *prometheus.Registry) {
	t.Helper()

	// Fresh registry per test; re-registering the same vec would panic.
	reg := prometheus.NewRegistry()
	mw, err := NewPrometheusMiddleware(reg)
	require.NoError(t, err)

	app := fiber.New()
	app.Use(mw.Handler())
	return app, mw, reg
}

func TestPrometheusMiddlewareCountsRequests(t *testing.T) {
	app, mw, _ := newMetricsApp(t)

	app.Get("/ok", func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})
	app.Get("/fail", func(c *fiber.Ctx) error {
		return fiber.NewError(fiber.StatusBadRequest, "bad request")
	})

	resp, err := app.Test(httptest.NewRequest("GET", "/ok", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, float64(1),
		testutil.ToFloat64(mw.requestCount.WithLabelValues("GET", "/ok", "200")))

	_, err = app.Test(httptest.NewRequest("GET", "/fail", nil))
	require.NoError(t, err)
	assert.Equal(t, float64(1),
		testutil.ToFloat64(mw.requestCount.WithLabelValues("GET", "/fail", "400")))
}

func TestPrometheusMiddlewareObservesDuration(t *testing.T) {
	app, mw, _ := newMetricsApp(t)

	app.Get("/samples/:id", func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})

	_, err := app.Test(httptest.NewRequest("GET", "/samples/123", nil))
	require.NoError(t, err)

	// Labels must carry the route pattern, never the raw path.
	assert.Equal(t, float64(1),
		testutil.ToFloat64(mw.requestCount.WithLabelValues("GET", "/samples/:id", "200")))
	assert.NotZero(t, testutil.CollectAndCount(mw.requestDuration))
}

func TestPrometheusMiddlewareSkipsMetricsEndpoint(t *testing.T) {
	app, _, reg := newMetricsApp(t)

	app.Get("/metrics", func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})

	_, err := app.Test(httptest.NewRequest("GET", "/metrics", nil))
	require.NoError(t, err)

	mfs, err := reg.Gather()
	require.NoError(t, err)
	for _, mf := range mfs {
		if mf.GetName() == "http_requests_total" {
			assert.Empty(t, mf.GetMetric(), "scrape traffic must not count itself")
		}
	}
}
