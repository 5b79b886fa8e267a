package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/medtrack/medtrack-api/internal/application/alerts"
	"github.com/medtrack/medtrack-api/internal/application/analytics"
	"github.com/medtrack/medtrack-api/internal/application/auth"
	"github.com/medtrack/medtrack-api/internal/application/usecase"
	"github.com/medtrack/medtrack-api/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC      *auth.AuthUseCase
	MedicineUC  *usecase.MedicineUseCase
	OrderUC     *usecase.OrderUseCase
	UserUC      *usecase.UserUseCase
	AlertsUC    *alerts.AlertsUseCase
	DashboardUC *analytics.DashboardUseCase
	JWTSecret   string
}

// Router registra las rutas de la API. Los gates RBAC por ruta reflejan la
// política de acceso del dominio (access.DefaultNavigation):
//
//	medicines  lectura: todos | escritura: admin, supplier | borrado: admin
//	orders     lectura: todos | creación: supplier, pharmacist | estado: admin
//	alerts     admin, pharmacist
//	users      admin
//	dashboard  todos los roles
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	allRoles := []entity.Role{entity.RoleAdmin, entity.RoleSupplier, entity.RolePharmacist}

	// Navigation (protegido, cualquier usuario autenticado; un usuario sin
	// roles recibe solo los items públicos)
	navHandler := NewNavigationHandler()
	protected.Get("/navigation", navHandler.Get)

	// Medicines (protegido)
	medicines := protected.Group("/medicines")
	medicineHandler := NewMedicineHandler(deps.MedicineUC)
	medicines.Get("/", RequireRole(allRoles...), medicineHandler.List)
	medicines.Get("/:id", RequireRole(allRoles...), medicineHandler.GetByID)
	medicines.Post("/", RequireRole(entity.RoleAdmin, entity.RoleSupplier), medicineHandler.Create)
	medicines.Put("/:id", RequireRole(entity.RoleAdmin, entity.RoleSupplier), medicineHandler.Update)
	medicines.Delete("/:id", RequireRole(entity.RoleAdmin), medicineHandler.Delete)

	// Orders (protegido)
	orders := protected.Group("/orders")
	orderHandler := NewOrderHandler(deps.OrderUC)
	orders.Get("/", RequireRole(allRoles...), orderHandler.List)
	orders.Get("/:id", RequireRole(allRoles...), orderHandler.GetByID)
	orders.Post("/", RequireRole(entity.RoleSupplier, entity.RolePharmacist), orderHandler.Create)
	orders.Patch("/:id/status", RequireRole(entity.RoleAdmin), orderHandler.UpdateStatus)

	// Users (protegido, solo admin)
	users := protected.Group("/users", RequireRole(entity.RoleAdmin))
	userHandler := NewUserHandler(deps.UserUC)
	users.Get("/", userHandler.List)
	users.Get("/:id", userHandler.GetByID)
	users.Put("/:id/role", userHandler.AssignRole)

	// Alerts (protegido, admin y pharmacist)
	alertsGroup := protected.Group("/alerts", RequireRole(entity.RoleAdmin, entity.RolePharmacist))
	alertHandler := NewAlertHandler(deps.AlertsUC)
	alertsGroup.Get("/", alertHandler.GetAlerts)
	alertsGroup.Get("/report", alertHandler.DownloadReport)

	// Dashboard (protegido, todos los roles)
	dashboard := protected.Group("/dashboard", RequireRole(allRoles...))
	dashboardHandler := NewDashboardHandler(deps.DashboardUC)
	dashboard.Get("/summary", dashboardHandler.GetSummary)
}
