package main

import (
	"context"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gofiber/contrib/otelfiber"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/swagger"
	_ "github.com/joho/godotenv/autoload"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"riskmai/docs"
	"riskmai/internal/config"
	"riskmai/internal/database"
	"riskmai/internal/database/migration"
	"riskmai/internal/extract"
	handlers "riskmai/internal/http/handler"
	"riskmai/internal/http/middleware"
	"riskmai/internal/llm"
	"riskmai/internal/news"
	"riskmai/internal/otel"
	"riskmai/internal/repository/postgres"
	"riskmai/internal/service"
	"riskmai/internal/storage"
)

// @title Risk Analysis API
// @version 1.0
// @description Company document ingestion and AI risk analysis.
// @BasePath /
func main() {
	// Load configuration from environment variables (.env auto-loaded if present)
	cfg := config.Load()

	if err := config.InitLogger(cfg.Log); err != nil {
		panic(err)
	}
	defer zap.L().Sync() //nolint:errcheck

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	shutdownTracing, err := otel.Init(ctx)
	if err != nil {
		zap.L().Fatal("failed to initialize tracing", zap.Error(err))
	}

	db, err := database.NewPostgres(cfg.Database)
	if err != nil {
		zap.L().Fatal("failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	if err := migration.EnsureMigrated(ctx, db, cfg.Database.Host); err != nil {
		zap.L().Fatal("failed to migrate database", zap.Error(err))
	}

	objStore, err := storage.NewMinIO(cfg.MinIO)
	if err != nil {
		zap.L().Fatal("failed to initialize object storage", zap.Error(err))
	}

	llmClient, err := llm.New(ctx, cfg.LLM, cfg.Analysis.TriggerPhrases)
	if err != nil {
		zap.L().Fatal("failed to initialize language model client", zap.Error(err))
	}
	defer llmClient.Close()

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	promMiddleware, err := middleware.NewPrometheusMiddleware(reg)
	if err != nil {
		zap.L().Fatal("failed to register http metrics", zap.Error(err))
	}
	analysisMetrics, err := service.NewAnalysisMetrics(reg)
	if err != nil {
		zap.L().Fatal("failed to register analysis metrics", zap.Error(err))
	}

	// Repositories and services
	companyRepo := postgres.NewCompanyPostgres(db)
	docRepo := postgres.NewDocumentPostgres(db)
	analysisRepo := postgres.NewAnalysisPostgres(db)

	services := handlers.Services{
		Companies: service.NewCompanyService(companyRepo, docRepo),
		Documents: service.NewDocumentService(objStore, docRepo, companyRepo, extract.New(extract.EmailBodyMode(cfg.Extract.EmailBodyMode))),
		Analyses: service.NewAnalysisService(service.AnalysisDeps{
			Companies: companyRepo,
			Documents: docRepo,
			Analyses:  analysisRepo,
			News:      news.NewClient(cfg.News),
			Model:     llmClient,
			Metrics:   analysisMetrics,
		}, service.AnalysisOptions{
			GeneralNewsLimit: cfg.Analysis.GeneralNewsLimit,
			RiskNewsLimit:    cfg.Analysis.RiskNewsLimit,
			Temperature:      cfg.LLM.Temperature,
			MaxTokens:        cfg.LLM.MaxTokens,
		}),
	}

	app := fiber.New(fiber.Config{
		ErrorHandler: handlers.ErrorHandler(),
		BodyLimit:    cfg.MaxUploadBytes,
	})

	// RequestID first so every later middleware and handler can read it
	app.Use(middleware.RequestID())
	app.Use(middleware.Logger())
	app.Use(otelfiber.Middleware())
	app.Use(promMiddleware.Handler())
	app.Use(middleware.SecurityHeaders())
	app.Use(middleware.CORS(cfg.CORSOrigins))

	app.Get("/metrics", adaptor.HTTPHandler(promhttp.HandlerFor(reg, promhttp.HandlerOpts{Registry: reg})))

	handlers.RegisterRoutes(app, db, services)

	// Swagger UI with dynamic host and scheme
	app.Get("/swagger/*", func(c *fiber.Ctx) error {
		scheme := c.Protocol()
		if proto := c.Get("X-Forwarded-Proto"); proto != "" {
			scheme = strings.Split(proto, ",")[0]
		}

		docs.SwaggerInfo.Host = c.Get("Host")
		docs.SwaggerInfo.Schemes = []string{scheme}

		return swagger.HandlerDefault(c)
	})

	go func() {
		<-ctx.Done()
		zap.L().Info("shutting down")
		if err := app.ShutdownWithTimeout(10 * time.Second); err != nil {
			zap.L().Error("server shutdown failed", zap.Error(err))
		}
	}()

	addr := ":" + cfg.Port
	zap.L().Info("starting server", zap.String("addr", addr), zap.String("llm_provider", llmClient.Name()))
	if err := app.Listen(addr); err != nil {
		zap.L().Error("server stopped", zap.Error(err))
	}

	flushCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := shutdownTracing(flushCtx); err != nil {
		zap.L().Error("tracing shutdown failed", zap.Error(err))
	}
}
