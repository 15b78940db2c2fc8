package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ansrivas/fiberprometheus/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/encryptcookie"
	"github.com/gofiber/fiber/v2/middleware/filesystem"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/joho/godotenv"
	zlog "github.com/rs/zerolog/log"

	"legalclarity/internal/analysis"
	"legalclarity/internal/config"
	"legalclarity/internal/database"
	"legalclarity/internal/handlers"
	"legalclarity/internal/logger"
	"legalclarity/internal/middleware"
	"legalclarity/internal/ocr"
	"legalclarity/internal/services"
	"legalclarity/internal/tts"
	"legalclarity/web"
)

func main() {
	// .env is optional; system environment wins.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		zlog.Fatal().Err(err).Msg("failed to load configuration")
	}

	if err := logger.Setup(logger.LogConfig{
		Level:      cfg.LogLevel,
		Format:     cfg.LogFormat,
		TimeFormat: time.RFC3339,
		Output:     cfg.LogOutput,
	}); err != nil {
		zlog.Fatal().Err(err).Msg("failed to configure logging")
	}
	log := logger.WithComponent("server")

	for _, warning := range cfg.Warnings {
		log.Warn().Msg(warning)
	}

	if err := os.MkdirAll(cfg.UploadDir, 0o755); err != nil {
		log.Fatal().Err(err).Str("dir", cfg.UploadDir).Msg("failed to create upload directory")
	}

	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to database")
	}
	defer database.Close(db)

	if err := database.AutoMigrate(db); err != nil {
		log.Fatal().Err(err).Msg("failed to run migrations")
	}

	// Adapters degrade to Unavailable when unconfigured; the routes stay
	// up and answer with their configured-off status codes.
	ctx := context.Background()
	adapters := services.AdapterStatus{}

	var extractor ocr.Service = ocr.Unavailable{}
	if cfg.HasGoogleCredentials() {
		svc, err := ocr.NewGoogleVisionService(ctx, cfg.GoogleClientOptions()...)
		if err != nil {
			log.Warn().Err(err).Msg("text extraction disabled")
		} else {
			extractor = svc
			adapters.Extraction = true
			defer svc.Close()
		}
	}

	var synthesizer tts.Service = tts.Unavailable{}
	if cfg.HasGoogleCredentials() {
		svc, err := tts.NewGoogleService(ctx, cfg.GoogleClientOptions()...)
		if err != nil {
			log.Warn().Err(err).Msg("text-to-speech disabled")
		} else {
			synthesizer = svc
			adapters.Speech = true
			defer svc.Close()
		}
	}

	var analyzer analysis.Service = analysis.Unavailable{}
	if cfg.HasGenerativeModel() {
		svc, err := analysis.NewGeminiService(ctx, cfg)
		if err != nil {
			log.Warn().Err(err).Msg("document analysis disabled")
		} else {
			analyzer = svc
			adapters.Analysis = true
		}
	}

	engine, err := web.Engine()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load templates")
	}
	staticFS, err := web.Static()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load static assets")
	}

	app := fiber.New(fiber.Config{
		Views:                 engine,
		BodyLimit:             cfg.MaxUploadSize,
		ErrorHandler:          errorHandler,
		DisableStartupMessage: true,
	})

	// Global middleware
	app.Use(recover.New())
	app.Use(fiberlogger.New())
	app.Use(compress.New())
	app.Use(encryptcookie.New(encryptcookie.Config{
		Key: middleware.CookieKey(cfg.SessionSecret),
	}))

	// Prometheus metrics
	prometheus := fiberprometheus.New("legalclarity")
	prometheus.RegisterAt(app, "/metrics")
	app.Use(prometheus.Middleware)

	app.Use("/static", filesystem.New(filesystem.Config{Root: staticFS}))

	sessions := middleware.NewSessionStore()

	authHandler := &handlers.AuthHandler{DB: db, Sessions: sessions}
	pageHandler := &handlers.PageHandler{DB: db, Sessions: sessions}
	analyzeHandler := &handlers.AnalyzeHandler{
		DB:        db,
		Sessions:  sessions,
		Analyzer:  analyzer,
		Extractor: extractor,
		UploadDir: cfg.UploadDir,
	}
	speechHandler := &handlers.SpeechHandler{Sessions: sessions, Synthesizer: synthesizer}
	healthHandler := &handlers.HealthHandler{DB: db, Adapters: adapters}

	// Public routes
	app.Get("/", pageHandler.Landing)
	app.Get("/register", authHandler.RegisterPage)
	app.Post("/register", authHandler.Register)
	app.Get("/login", authHandler.LoginPage)
	app.Post("/login", authHandler.Login)
	app.Get("/set_language/:lang", authHandler.SetLanguage)
	app.Get("/healthz", healthHandler.Health)

	// Authenticated routes
	requireUser := middleware.RequireUser(sessions, db)
	app.Get("/logout", requireUser, authHandler.Logout)
	app.Get("/dashboard", requireUser, pageHandler.Dashboard)
	app.Get("/analysis/:id", requireUser, pageHandler.ViewAnalysis)
	app.Post("/analyze", requireUser, analyzeHandler.Analyze)
	app.Post("/analyze-document", requireUser, analyzeHandler.AnalyzeDocument)
	app.Post("/text-to-speech", requireUser, speechHandler.TextToSpeech)

	// 404 handler
	app.Use(func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "resource not found",
		})
	})

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-quit
		log.Info().Msg("gracefully shutting down")
		_ = app.Shutdown()
	}()

	log.Info().Str("port", cfg.Port).Msg("starting server")
	if err := app.Listen(":" + cfg.Port); err != nil {
		log.Fatal().Err(err).Msg("failed to start server")
	}

	log.Info().Msg("server stopped")
}

// errorHandler handles errors that escape the handlers.
func errorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	message := "internal server error"

	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
		message = e.Message
	}
	if code == fiber.StatusRequestEntityTooLarge {
		message = "uploaded file is too large"
	}

	zlog.Error().Err(err).Str("url", c.OriginalURL()).Msg("request failed")

	return c.Status(code).JSON(fiber.Map{
		"error": message,
	})
}
