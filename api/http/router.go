package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"

	"github.com/artem13815/resume-screening/api/http/handlers"
)

// Register wires all HTTP routes onto given Fiber app.
func Register(app *fiber.App, health *handlers.HealthHandler, resumes *handlers.ResumesHandler, screenings *handlers.ScreeningHandler, tailoring *handlers.TailorHandler) {
	app.Get("/swagger/*", swagger.HandlerDefault)

	api := app.Group("/api")
	v1 := api.Group("/v1")

	// Health and readiness endpoints for probes/monitoring
	v1.Get("/health", health.Health)
	v1.Get("/ready", health.Ready)

	r := v1.Group("/resumes")
	r.Post("/", resumes.Upload)
	r.Post("/bulk", resumes.BulkUpload)
	r.Get("/", resumes.List)
	r.Get("/:id", resumes.Get)
	r.Get("/:id/data", resumes.GetData)
	r.Delete("/:id", resumes.Delete)
	r.Post("/:id/tailor", tailoring.Tailor)
	r.Get("/:id/render", tailoring.Render)

	v1.Get("/templates", tailoring.Templates)

	v1.Post("/screenings", screenings.Create)
}
