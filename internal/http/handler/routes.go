package handler

import (
	"context"
	"database/sql"
	"time"

	"github.com/gofiber/fiber/v2"

	"riskmai/internal/service"
)

// Services groups the use cases exposed over HTTP.
type Services struct {
	Companies service.CompanyService
	Documents service.DocumentService
	Analyses  service.AnalysisService
}

// RegisterRoutes attaches HTTP routes to the provided Fiber app.
func RegisterRoutes(app *fiber.App, db *sql.DB, svc Services) {
	app.Get("/health", HealthCheck(db))
	app.Get("/healthz", LivenessProbe())

	companies := app.Group("/companies")
	companies.Post("/", CreateCompany(svc.Companies))
	companies.Get("/", ListCompanies(svc.Companies))
	companies.Get("/:id", GetCompany(svc.Companies))
	companies.Post("/:id/context", AddContext(svc.Companies))

	companies.Post("/:id/documents", UploadDocument(svc.Documents))
	companies.Get("/:id/documents/:document_id/file", DownloadDocument(svc.Documents))

	companies.Post("/:id/analyse", Analyse(svc.Analyses))
	companies.Post("/:id/dynamic-risk", DynamicRisk(svc.Analyses))
	companies.Get("/:id/analyses", ListAnalyses(svc.Analyses))
	companies.Get("/:id/analyses/:analysis_id", GetAnalysis(svc.Analyses))
}

// HealthCheck pings the database.
//
// @Summary Readiness probe
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Failure 503 {object} errorPayload
// @Router /health [get]
func HealthCheck(db *sql.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		ctx, cancel := context.WithTimeout(c.UserContext(), 2*time.Second)
		defer cancel()
		if db == nil {
			return writeError(c, fiber.StatusServiceUnavailable, "SERVICE_UNAVAILABLE", "dependency unavailable")
		}
		if err := db.PingContext(ctx); err != nil {
			return writeError(c, fiber.StatusServiceUnavailable, "SERVICE_UNAVAILABLE", "dependency unavailable")
		}
		return c.Status(fiber.StatusOK).JSON(fiber.Map{"status": "healthy"})
	}
}

// LivenessProbe always answers 200.
func LivenessProbe() fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	}
}
