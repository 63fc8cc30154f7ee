package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/crm-pro/internal/application/activity"
	"github.com/tu-usuario/crm-pro/internal/application/analytics"
	"github.com/tu-usuario/crm-pro/internal/application/assistant"
	"github.com/tu-usuario/crm-pro/internal/application/auth"
	"github.com/tu-usuario/crm-pro/internal/application/automation"
	"github.com/tu-usuario/crm-pro/internal/application/crm"
	"github.com/tu-usuario/crm-pro/internal/application/pipeline"
	"github.com/tu-usuario/crm-pro/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC    *auth.AuthUseCase
	AccountUC *crm.AccountUseCase
	ContactUC *crm.ContactUseCase
	DealUC    *pipeline.DealUseCase
	Engine    *automation.Engine
	Recorder  *activity.Recorder
	StatsUC   *analytics.StatsUseCase
	ChatUC    *assistant.ChatUseCase
	JWTSecret string
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

	protected.Get("/auth/me", authHandler.Me)

	// Accounts (protegido)
	accounts := protected.Group("/accounts")
	accountHandler := NewAccountHandler(deps.AccountUC)
	accounts.Get("/", accountHandler.List)
	accounts.Post("/", accountHandler.Create)
	accounts.Post("/import", RequireRole(entity.RoleAdmin), accountHandler.Import)
	accounts.Put("/:id", accountHandler.Update)
	accounts.Delete("/:id", accountHandler.Delete)

	// Contacts (protegido)
	contacts := protected.Group("/contacts")
	contactHandler := NewContactHandler(deps.ContactUC)
	contacts.Get("/", contactHandler.List)
	contacts.Post("/", contactHandler.Create)
	contacts.Put("/:id", contactHandler.Update)
	contacts.Delete("/:id", contactHandler.Delete)

	// Deals (protegido)
	deals := protected.Group("/deals")
	dealHandler := NewDealHandler(deps.DealUC)
	deals.Get("/", dealHandler.List)
	deals.Post("/", dealHandler.Create)
	deals.Put("/:id", dealHandler.Update)
	deals.Delete("/:id", dealHandler.Delete)

	// Workflows (protegido)
	workflows := protected.Group("/workflows")
	workflowHandler := NewWorkflowHandler(deps.Engine)
	workflows.Get("/", workflowHandler.List)
	workflows.Post("/", workflowHandler.Create)
	workflows.Delete("/:id", workflowHandler.Delete)

	// Activities (protegido, read-only)
	activityHandler := NewActivityHandler(deps.Recorder)
	protected.Get("/activities", activityHandler.List)

	// Stats (protegido)
	statsHandler := NewStatsHandler(deps.StatsUC)
	protected.Get("/stats", statsHandler.Summary)

	// Asistente (protegido)
	aiHandler := NewAIHandler(deps.ChatUC)
	protected.Post("/ai/chat", aiHandler.Chat)
}
