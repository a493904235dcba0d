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

	"github.com/ilogush/backoffice-api/internal/application/auth"
	"github.com/ilogush/backoffice-api/internal/application/realization"
	"github.com/ilogush/backoffice-api/internal/application/receiving"
	"github.com/ilogush/backoffice-api/internal/application/reports"
	appstock "github.com/ilogush/backoffice-api/internal/application/stock"
	"github.com/ilogush/backoffice-api/internal/application/usecase"
	infrapdf "github.com/ilogush/backoffice-api/internal/infrastructure/pdf"
	"github.com/ilogush/backoffice-api/internal/infrastructure/postgres"
	httpRouter "github.com/ilogush/backoffice-api/internal/interfaces/http"
	"github.com/ilogush/backoffice-api/pkg/config"
	"github.com/ilogush/backoffice-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	if cfg.DB.DatabaseURL != "" {
		log.Info().Str("db_host", postgres.DatabaseURLHostname(cfg.DB.DatabaseURL)).Msg("usando DATABASE_URL")
	}

	userRepo := postgres.NewUserRepository(pool)
	productRepo := postgres.NewProductRepository(pool)
	colorRepo := postgres.NewColorRepository(pool)
	receiptRepo := postgres.NewReceiptRepository(pool)
	realizationRepo := postgres.NewRealizationRepository(pool)
	orderRepo := postgres.NewOrderRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	stockUC := appstock.NewUsecase(txRunner)
	productUC := usecase.NewProductUseCase(productRepo)
	colorUC := usecase.NewColorUseCase(colorRepo)
	orderUC := usecase.NewOrderUseCase(txRunner, orderRepo)
	receivingUC := receiving.NewUsecase(txRunner, receiptRepo, productRepo)
	realizationUC := realization.NewUsecase(txRunner, realizationRepo, productRepo)

	pdfGenerator := infrapdf.NewMarotoStockReport()
	reportsUC := reports.NewUsecase(stockUC, pdfGenerator)

	authUC := auth.NewAuthUseCase(userRepo, auth.JWTConfig{
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

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Backoffice API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		StockUC:       stockUC,
		ProductUC:     productUC,
		ColorUC:       colorUC,
		OrderUC:       orderUC,
		ReceivingUC:   receivingUC,
		RealizationUC: realizationUC,
		ReportsUC:     reportsUC,
		AuthUC:        authUC,
		JWTSecret:     cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
