package handler

import (
	"context"
	"database/sql"
	"time"

	"github.com/gofiber/fiber/v2"

	"s3gateway/internal/service"
)

// RegisterRoutes attaches HTTP routes to the provided Fiber app.
// Handlers stay minimal and free of business logic; everything goes through
// the injected services.
func RegisterRoutes(app *fiber.App, db *sql.DB, objSvc service.ObjectService, sampleSvc service.SampleService) {
	// Serve the OpenAPI document and a Swagger UI page
	app.Get("/openapi.yaml", func(c *fiber.Ctx) error {
		c.Type("yaml")
		return c.SendFile("openapi.yaml")
	})
	app.Get("/docs", func(c *fiber.Ctx) error {
		html := `<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="UTF-8" />
  <meta name="viewport" content="width=device-width, initial-scale=1" />
  <title>API Docs</title>
  <link rel="stylesheet" href="https://unpkg.com/swagger-ui-dist@5/swagger-ui.css" />
</head>
<body>
  <div id="swagger-ui"></div>
  <script src="https://unpkg.com/swagger-ui-dist@5/swagger-ui-bundle.js"></script>
  <script>
    window.ui = SwaggerUIBundle({
      url: '/openapi.yaml',
      dom_id: '#swagger-ui',
      presets: [SwaggerUIBundle.presets.apis],
      layout: 'BaseLayout'
    });
  </script>
</body>
</html>`
		return c.Type("html").SendString(html)
	})

	// Health endpoint: checks DB connectivity only
	app.Get("/health", func(c *fiber.Ctx) error {
		ctx, cancel := context.WithTimeout(c.UserContext(), 2*time.Second)
		defer cancel()
		if err := db.PingContext(ctx); err != nil {
			return writeError(c, fiber.StatusServiceUnavailable, "SERVICE_UNAVAILABLE", "dependency unavailable")
		}
		return c.Status(fiber.StatusOK).JSON(fiber.Map{"status": "healthy"})
	})

	// Simple liveness probe
	app.Get("/healthz", func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})

	v1 := app.Group("/v1")

	st := v1.Group("/storage")
	st.Post("/upload", uploadObject(objSvc))
	st.Get("/download", downloadObject(objSvc))
	st.Get("/download-zip", downloadZip(objSvc))
	st.Post("/presigned", presignObject(objSvc))
	st.Post("/delete", deleteObject(objSvc))
	st.Post("/info", objectInfo(objSvc))
	st.Post("/list", listObjects(objSvc))

	sp := v1.Group("/samples")
	sp.Post("/list", listSamples(sampleSvc))
	sp.Post("/list-count", countSamples(sampleSvc))
	sp.Post("/info", sampleInfo(sampleSvc))
	sp.Post("/insert", insertSample(sampleSvc))
	sp.Post("/update", updateSample(sampleSvc))
	sp.Post("/delete", deleteSample(sampleSvc))
}
