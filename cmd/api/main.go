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

	"github.com/aqualife/aqualife-api/internal/application/auth"
	"github.com/aqualife/aqualife-api/internal/application/inventory"
	"github.com/aqualife/aqualife-api/internal/application/orders"
	"github.com/aqualife/aqualife-api/internal/application/registration"
	"github.com/aqualife/aqualife-api/internal/application/stats"
	"github.com/aqualife/aqualife-api/internal/application/usecase"
	"github.com/aqualife/aqualife-api/internal/infrastructure/identity"
	infrapdf "github.com/aqualife/aqualife-api/internal/infrastructure/pdf"
	"github.com/aqualife/aqualife-api/internal/infrastructure/postgres"
	httpRouter "github.com/aqualife/aqualife-api/internal/interfaces/http"
	"github.com/aqualife/aqualife-api/pkg/config"
	"github.com/aqualife/aqualife-api/pkg/logger"
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

	customerRepo := postgres.NewCustomerRepository(pool)
	userRepo := postgres.NewUserRepository(pool)
	orderRepo := postgres.NewOrderRepository(pool)
	configRepo := postgres.NewConfigRepository(pool)
	identitySvc := identity.NewService(pool)

	registerUC := registration.NewUseCase(customerRepo, identitySvc)
	loginUC := auth.NewUseCase(identitySvc, customerRepo, userRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})
	inventorySvc := inventory.NewService()
	statsUC := stats.NewUseCase(orderRepo, customerRepo, userRepo)
	pdfGenerator := infrapdf.NewMarotoReceiptGenerator()
	ordersUC := orders.NewUseCase(orderRepo, customerRepo, configRepo, pdfGenerator)
	configUC := usecase.NewConfigUseCase(configRepo, userRepo)
	customerUC := usecase.NewCustomerUseCase(customerRepo)
	userUC := usecase.NewUserUseCase(userRepo, identitySvc)

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
		Title:    "AquaLife API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		RegisterUC:  registerUC,
		LoginUC:     loginUC,
		InventorySv: inventorySvc,
		StatsUC:     statsUC,
		OrdersUC:    ordersUC,
		ConfigUC:    configUC,
		CustomerUC:  customerUC,
		UserUC:      userUC,
		JWTSecret:   cfg.JWT.Secret,
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
}
