package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/groundnut-admin/internal/application/reports"
	"github.com/tu-usuario/groundnut-admin/internal/infrastructure/pdf"
	"github.com/tu-usuario/groundnut-admin/internal/store"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	Store      *store.Store
	Reports    *reports.Service
	PDF        *pdf.SummaryGenerator
	JWTSecret  string
	JWTIssuer  string
	JWTExpMins int
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	api := app.Group("/api")

	// Auth (público)
	authHandler := NewAuthHandler(deps.Store, deps.JWTSecret, deps.JWTIssuer, deps.JWTExpMins)
	api.Post("/auth/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Users (solo ADMIN)
	users := protected.Group("/users", RequireRole("ADMIN"))
	userHandler := NewUserHandler(deps.Store)
	users.Get("/", userHandler.List)
	users.Post("/", userHandler.Create)
	users.Put("/:id", userHandler.Update)
	users.Delete("/:id", userHandler.Delete)

	// Companies
	companies := protected.Group("/companies")
	companyHandler := NewCompanyHandler(deps.Store)
	companies.Get("/", companyHandler.List)
	companies.Post("/", companyHandler.Create)
	companies.Put("/:id", companyHandler.Update)
	companies.Delete("/:id", companyHandler.Delete)

	// Vehicles
	vehicles := protected.Group("/vehicles")
	vehicleHandler := NewVehicleHandler(deps.Store)
	vehicles.Get("/", vehicleHandler.List)
	vehicles.Post("/", vehicleHandler.Create)
	vehicles.Put("/:id", vehicleHandler.Update)
	vehicles.Delete("/:id", vehicleHandler.Delete)

	// Products (lotes)
	products := protected.Group("/products")
	productHandler := NewProductHandler(deps.Store)
	products.Get("/", productHandler.List)
	products.Post("/", productHandler.Create)
	products.Put("/:id", productHandler.Update)
	products.Delete("/:id", productHandler.Delete)

	// Orders y transacciones
	orders := protected.Group("/orders")
	orderHandler := NewOrderHandler(deps.Store)
	orders.Get("/", orderHandler.List)
	orders.Post("/", orderHandler.Create)
	orders.Put("/:id", orderHandler.Update)
	orders.Delete("/:id", orderHandler.Delete)
	protected.Get("/transactions", orderHandler.ListTransactions)
	protected.Post("/transactions", orderHandler.CreateTransaction)

	// Cities
	cities := protected.Group("/cities")
	cityHandler := NewCityHandler(deps.Store)
	cities.Get("/", cityHandler.List)
	cities.Post("/", cityHandler.Create)
	cities.Put("/:id", cityHandler.Update)
	cities.Delete("/:id", cityHandler.Delete)

	// Alerts
	alerts := protected.Group("/alerts")
	alertHandler := NewAlertHandler(deps.Store)
	alerts.Get("/", alertHandler.List)
	alerts.Post("/", alertHandler.Create)
	alerts.Post("/:id/resolve", alertHandler.Resolve)

	// Activities
	activityHandler := NewActivityHandler(deps.Store)
	protected.Get("/activities", activityHandler.List)

	// Dashboard y analítica
	dashboardHandler := NewDashboardHandler(deps.Reports)
	protected.Get("/dashboard/summary", dashboardHandler.Summary)
	protected.Get("/analytics/regional", dashboardHandler.Regional)

	// Reportes
	reportHandler := NewReportHandler(deps.Reports, deps.PDF)
	protected.Get("/reports/export.csv", reportHandler.ExportCSV)
	protected.Get("/reports/export.pdf", reportHandler.ExportPDF)
}
