package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/tamirban/tamirban-api/internal/application/auth"
	"github.com/tamirban/tamirban-api/internal/application/billing"
	"github.com/tamirban/tamirban-api/internal/application/crm"
	"github.com/tamirban/tamirban-api/internal/infrastructure/cache"
	inframongo "github.com/tamirban/tamirban-api/internal/infrastructure/mongo"
	infrapdf "github.com/tamirban/tamirban-api/internal/infrastructure/pdf"
	"github.com/tamirban/tamirban-api/internal/infrastructure/sms"
	httpRouter "github.com/tamirban/tamirban-api/internal/interfaces/http"
	"github.com/tamirban/tamirban-api/pkg/config"
	"github.com/tamirban/tamirban-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("load configuration: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("starting application")

	ctx := context.Background()
	mongoClient, db, err := inframongo.Connect(ctx, cfg.Mongo)
	if err != nil {
		log.Fatal().Err(err).Msg("mongodb connection")
	}
	defer func() { _ = mongoClient.Disconnect(context.Background()) }()

	redisClient, err := cache.NewClient(ctx, cfg.Redis)
	if err != nil {
		log.Fatal().Err(err).Msg("redis connection")
	}
	defer func() { _ = redisClient.Close() }()

	customerRepo := inframongo.NewCustomerRepository(db)
	invoiceRepo := inframongo.NewInvoiceRepository(db)
	marketerRepo := inframongo.NewMarketerRepository(db)
	visitRepo := inframongo.NewVisitRepository(db)
	taskRepo := inframongo.NewTaskRepository(db)
	storyRepo := inframongo.NewStoryRepository(db)
	userRepo := inframongo.NewUserRepository(db)

	customerUC := crm.NewCustomerUseCase(customerRepo)
	marketerUC := crm.NewMarketerUseCase(marketerRepo)
	visitUC := crm.NewVisitUseCase(visitRepo, customerRepo)
	taskUC := crm.NewTaskUseCase(taskRepo)
	storyUC := crm.NewStoryUseCase(storyRepo)
	invoiceUC := billing.NewInvoiceUseCase(invoiceRepo, customerRepo)

	pdfGenerator := infrapdf.NewMarotoPDFGenerator()
	pdfUC := billing.NewPDFUseCase(invoiceRepo, customerRepo, pdfGenerator)

	otpStore := cache.NewOTPStore(redisClient, cfg.OTP)
	smsSender := sms.NewLogSender(log)
	authUC := auth.NewAuthUseCase(userRepo, otpStore, smsSender, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "TamirBan API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		pingCtx, cancel := context.WithTimeout(c.Context(), 2*time.Second)
		defer cancel()
		status := fiber.Map{"status": "ok", "service": cfg.App.Name}
		if err := mongoClient.Ping(pingCtx, nil); err != nil {
			status["status"] = "degraded"
			status["mongo"] = err.Error()
		}
		if err := redisClient.Ping(pingCtx).Err(); err != nil {
			status["status"] = "degraded"
			status["redis"] = err.Error()
		}
		return c.JSON(status)
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		CustomerUC: customerUC,
		MarketerUC: marketerUC,
		VisitUC:    visitUC,
		TaskUC:     taskUC,
		StoryUC:    storyUC,
		InvoiceUC:  invoiceUC,
		PDFUC:      pdfUC,
		AuthUC:     authUC,
		JWTSecret:  cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("http server stopped")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutdown signal received, stopping server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("server shutdown")
	}

	log.Info().Msg("application stopped")
}
