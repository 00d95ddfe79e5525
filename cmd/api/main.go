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
	"github.com/solnascente/frontdesk-api/internal/application/auth"
	"github.com/solnascente/frontdesk-api/internal/application/billing"
	"github.com/solnascente/frontdesk-api/internal/application/dashboard"
	appmeal "github.com/solnascente/frontdesk-api/internal/application/meal"
	"github.com/solnascente/frontdesk-api/internal/application/reservation"
	"github.com/solnascente/frontdesk-api/internal/application/usecase"
	"github.com/solnascente/frontdesk-api/internal/infrastructure/postgres"
	infraprinter "github.com/solnascente/frontdesk-api/internal/infrastructure/printer"
	httpRouter "github.com/solnascente/frontdesk-api/internal/interfaces/http"
	"github.com/solnascente/frontdesk-api/pkg/config"
	"github.com/solnascente/frontdesk-api/pkg/logger"
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

	companyRepo := postgres.NewCompanyRepository(pool)
	roomRepo := postgres.NewRoomRepository(pool)
	reservationRepo := postgres.NewReservationRepository(pool)
	mealRepo := postgres.NewMealRepository(pool)
	reportRepo := postgres.NewReportRepository(pool)
	userRepo := postgres.NewUserRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	authUC := auth.NewAuthUseCase(userRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})
	companyUC := usecase.NewCompanyUseCase(companyRepo)
	roomUC := usecase.NewRoomUseCase(roomRepo, reservationRepo)
	availabilityUC := reservation.NewAvailabilityUseCase(roomRepo, reservationRepo)
	lifecycleUC := reservation.NewLifecycleUseCase(txRunner, reservationRepo)
	dashboardUC := dashboard.NewUseCase(roomRepo, reservationRepo)

	// Impresora de tickets: con spool vacío (desarrollo) genera y descarta.
	ticketPrinter := infraprinter.NewMarotoTicketPrinter(cfg.App.HotelName, cfg.Printer.SpoolDir, log)
	mealUC := appmeal.NewUseCase(mealRepo, companyRepo, ticketPrinter, log)

	closingReportUC := billing.NewClosingReportUseCase(reportRepo, mealRepo)
	reportsUC := billing.NewReportsUseCase(reservationRepo, mealRepo, availabilityUC)

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
		Title:    cfg.App.Name,
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:        authUC,
		CompanyUC:     companyUC,
		RoomUC:        roomUC,
		Lifecycle:     lifecycleUC,
		Availability:  availabilityUC,
		DashboardUC:   dashboardUC,
		MealUC:        mealUC,
		ClosingReport: closingReportUC,
		ReportsUC:     reportsUC,
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
