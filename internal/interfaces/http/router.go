package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/agenciaflow/agencia-api/internal/application/auth"
	"github.com/agenciaflow/agencia-api/internal/application/review"
	"github.com/agenciaflow/agencia-api/internal/application/tasks"
	"github.com/agenciaflow/agencia-api/internal/application/usecase"
	"github.com/agenciaflow/agencia-api/internal/domain/permission"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC         *auth.AuthUseCase
	ClientUC       *usecase.ClientUseCase
	BrandUC        *usecase.BrandUseCase
	ServiceUC      *usecase.ServiceUseCase
	CollaboratorUC *usecase.CollaboratorUseCase
	ContractUC     *usecase.ContractUseCase
	DashboardUC    *usecase.DashboardUseCase
	ResourceUC     *usecase.ResourceUseCase
	CreateTaskUC   *tasks.CreateTaskUseCase
	AdvanceUC      *tasks.AdvanceStatusUseCase
	TaskQueryUC    *tasks.TaskQueryUseCase
	ReviewUC       *review.ReviewResourceUseCase
	Perm           *permission.Checker
	JWTSecret      string
}

// Router registra las rutas de la API. Las escrituras llevan un guard de
// permiso por ruta; los casos de uso vuelven a verificar el permiso propio.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	editBranding := RequirePermission(deps.Perm, permission.EditBranding)
	editAll := RequirePermission(deps.Perm, permission.EditAll)
	createTasks := RequirePermission(deps.Perm, permission.CreateTasks)
	manageUsers := RequirePermission(deps.Perm, permission.CanManageUsers)

	// Clients
	clients := protected.Group("/clients")
	clientHandler := NewClientHandler(deps.ClientUC)
	clients.Get("/", clientHandler.List)
	clients.Get("/:id", clientHandler.GetByID)
	clients.Post("/", editBranding, clientHandler.Create)
	clients.Put("/:id", editBranding, clientHandler.Update)
	clients.Delete("/:id", editAll, clientHandler.Delete)

	// Brands
	brands := protected.Group("/brands")
	brandHandler := NewBrandHandler(deps.BrandUC)
	brands.Get("/", brandHandler.List)
	brands.Get("/:id", brandHandler.GetByID)
	brands.Post("/", editBranding, brandHandler.Create)
	brands.Put("/:id", editBranding, brandHandler.Update)
	brands.Delete("/:id", editAll, brandHandler.Delete)

	// Services (catálogo + precios pactados)
	services := protected.Group("/services")
	serviceHandler := NewServiceHandler(deps.ServiceUC)
	services.Get("/", serviceHandler.List)
	services.Put("/overrides", editAll, serviceHandler.SetOverride)
	services.Get("/overrides/:client_id", serviceHandler.ListOverrides)
	services.Delete("/overrides/:client_id/:service_id", editAll, serviceHandler.DeleteOverride)
	services.Get("/:id", serviceHandler.GetByID)
	services.Post("/", editAll, serviceHandler.Create)
	services.Put("/:id", editAll, serviceHandler.Update)
	services.Delete("/:id", editAll, serviceHandler.Delete)

	// Tasks
	taskGroup := protected.Group("/tasks")
	taskHandler := NewTaskHandler(deps.CreateTaskUC, deps.AdvanceUC, deps.TaskQueryUC)
	taskGroup.Get("/", taskHandler.List)
	taskGroup.Get("/:id", taskHandler.GetByID)
	taskGroup.Post("/", createTasks, taskHandler.Create)
	taskGroup.Post("/bulk", createTasks, taskHandler.CreateBulk)
	taskGroup.Put("/:id", createTasks, taskHandler.Update)
	taskGroup.Patch("/:id/status", editAll, taskHandler.AdvanceStatus)
	taskGroup.Delete("/:id", editAll, taskHandler.Delete)

	// Resources (subida + revisión)
	resources := protected.Group("/resources")
	resourceHandler := NewResourceHandler(deps.ResourceUC, deps.ReviewUC)
	resources.Get("/", resourceHandler.List)
	resources.Get("/:id", resourceHandler.GetByID)
	resources.Get("/:id/history", resourceHandler.History)
	resources.Post("/", resourceHandler.Upload)
	resources.Post("/:id/review", editAll, resourceHandler.Review)
	resources.Delete("/:id", editAll, resourceHandler.Delete)

	// Collaborators (gestión de usuarios)
	collaborators := protected.Group("/collaborators")
	collaboratorHandler := NewCollaboratorHandler(deps.CollaboratorUC)
	collaborators.Get("/", manageUsers, collaboratorHandler.List)
	collaborators.Get("/:id", manageUsers, collaboratorHandler.GetByID)
	collaborators.Post("/:id/approve", manageUsers, collaboratorHandler.Approve)
	collaborators.Post("/:id/access", manageUsers, collaboratorHandler.SetSystemAccess)
	collaborators.Patch("/:id/active", manageUsers, collaboratorHandler.SetActive)
	collaborators.Put("/:id/password",
		RequirePermission(deps.Perm, permission.CanChangePasswordsDirectly),
		collaboratorHandler.ChangePassword)

	// Contracts
	contracts := protected.Group("/contracts")
	contractHandler := NewContractHandler(deps.ContractUC)
	contracts.Get("/", contractHandler.List)
	contracts.Get("/:id", contractHandler.GetByID)
	contracts.Get("/:id/pdf", contractHandler.DownloadPDF)
	contracts.Post("/", editAll, contractHandler.Create)
	contracts.Put("/:id", editAll, contractHandler.Update)
	contracts.Delete("/:id", editAll, contractHandler.Delete)

	// Dashboard
	dashboard := protected.Group("/dashboard")
	dashboardHandler := NewDashboardHandler(deps.DashboardUC)
	dashboard.Get("/", dashboardHandler.Get)
	dashboard.Get("/brands/:brand_id", dashboardHandler.BrandTaskLoad)
}
