package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/solnascente/frontdesk-api/internal/application/auth"
	"github.com/solnascente/frontdesk-api/internal/application/billing"
	"github.com/solnascente/frontdesk-api/internal/application/dashboard"
	"github.com/solnascente/frontdesk-api/internal/application/meal"
	"github.com/solnascente/frontdesk-api/internal/application/reservation"
	"github.com/solnascente/frontdesk-api/internal/application/usecase"
	"github.com/solnascente/frontdesk-api/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC         *auth.AuthUseCase
	CompanyUC      *usecase.CompanyUseCase
	RoomUC         *usecase.RoomUseCase
	Lifecycle      *reservation.LifecycleUseCase
	Availability   *reservation.AvailabilityUseCase
	DashboardUC    *dashboard.UseCase
	MealUC         *meal.UseCase
	ClosingReport  *billing.ClosingReportUseCase
	ReportsUC      *billing.ReportsUseCase
	JWTSecret      string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Alta de usuarios por un admin autenticado (p. ej. otro admin)
	protected.Post("/users", RequireRole(entity.RoleAdmin), authHandler.Register)

	// Companies (protegido)
	companies := protected.Group("/companies")
	companyHandler := NewCompanyHandler(deps.CompanyUC)
	companies.Get("/", companyHandler.List)
	companies.Post("/", companyHandler.Create)
	companies.Get("/:id", companyHandler.GetByID)
	companies.Put("/:id", companyHandler.Update)
	companies.Delete("/:id", companyHandler.Delete)

	// Rooms (protegido)
	rooms := protected.Group("/rooms")
	roomHandler := NewRoomHandler(deps.RoomUC)
	rooms.Get("/", roomHandler.List)
	rooms.Post("/", roomHandler.Create)
	rooms.Get("/:id", roomHandler.GetByID)
	rooms.Post("/:id/beds", roomHandler.AddBed)
	rooms.Post("/:id/maintenance", roomHandler.ToggleMaintenance)

	// Reservations (protegido)
	reservations := protected.Group("/reservations")
	reservationHandler := NewReservationHandler(deps.Lifecycle, deps.Availability)
	reservations.Get("/available-beds", reservationHandler.AvailableBeds)
	reservations.Post("/", reservationHandler.Create)
	reservations.Get("/:id", reservationHandler.Get)
	reservations.Delete("/:id", reservationHandler.Cancel)
	reservations.Post("/:id/check-in", reservationHandler.ConfirmCheckIn)
	reservations.Post("/:id/checkout", reservationHandler.Checkout)
	reservations.Post("/:id/change-room", reservationHandler.ChangeRoom)
	reservations.Post("/:id/luggage", reservationHandler.ToggleLuggage)

	// Dashboard (protegido)
	dashboardHandler := NewDashboardHandler(deps.DashboardUC)
	protected.Get("/dashboard", dashboardHandler.Overview)

	// Meals (protegido)
	meals := protected.Group("/meals")
	mealHandler := NewMealHandler(deps.MealUC)
	meals.Post("/", mealHandler.Register)

	// Reports (protegido; el cierre de facturación es solo admin)
	reports := protected.Group("/reports")
	reportHandler := NewReportHandler(deps.ClosingReport, deps.ReportsUC)
	reports.Get("/closing", RequireRole(entity.RoleAdmin), reportHandler.Closing)
	reports.Get("/occupancy", reportHandler.Occupancy)
	reports.Get("/free-beds", reportHandler.FreeBeds)
	reports.Get("/meals", reportHandler.MealHistory)
}
