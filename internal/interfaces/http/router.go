package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tamirban/tamirban-api/internal/application/auth"
	"github.com/tamirban/tamirban-api/internal/application/billing"
	"github.com/tamirban/tamirban-api/internal/application/crm"
)

// RouterDeps dependencies for the router.
type RouterDeps struct {
	CustomerUC *crm.CustomerUseCase
	MarketerUC *crm.MarketerUseCase
	VisitUC    *crm.VisitUseCase
	TaskUC     *crm.TaskUseCase
	StoryUC    *crm.StoryUseCase
	InvoiceUC  *billing.InvoiceUseCase
	PDFUC      *billing.PDFUseCase
	AuthUC     *auth.AuthUseCase
	JWTSecret  string
}

// Router registers the API routes.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (public except register)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/login", authHandler.Login)
	authGroup.Post("/otp/request", authHandler.RequestOTP)
	authGroup.Post("/otp/verify", authHandler.VerifyOTP)
	authGroup.Post("/register", AuthMiddleware(deps.JWTSecret), RequireAdmin(), authHandler.Register)

	// Everything else needs a Bearer token
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	customers := protected.Group("/customers")
	customerHandler := NewCustomerHandler(deps.CustomerUC)
	customers.Post("/", customerHandler.Create)
	customers.Get("/", customerHandler.List)
	customers.Get("/:id", customerHandler.GetByID)
	customers.Put("/:id", customerHandler.Update)
	customers.Delete("/:id", RequireAdmin(), customerHandler.Delete)

	invoices := protected.Group("/invoices")
	invoiceHandler := NewInvoiceHandler(deps.InvoiceUC, deps.PDFUC)
	invoices.Post("/", invoiceHandler.Create)
	invoices.Post("/calculate", invoiceHandler.CalculateTotal)
	invoices.Get("/", invoiceHandler.List)
	invoices.Get("/:id", invoiceHandler.GetByID)
	invoices.Put("/:id", invoiceHandler.Update)
	invoices.Patch("/:id/status", invoiceHandler.ChangeStatus)
	invoices.Get("/:id/pdf", invoiceHandler.DownloadPDF)

	marketers := protected.Group("/marketers")
	marketerHandler := NewMarketerHandler(deps.MarketerUC)
	marketers.Post("/", RequireAdmin(), marketerHandler.Create)
	marketers.Get("/", marketerHandler.List)
	marketers.Get("/:id", marketerHandler.GetByID)
	marketers.Put("/:id", RequireAdmin(), marketerHandler.Update)

	visits := protected.Group("/visits")
	visitHandler := NewVisitHandler(deps.VisitUC)
	visits.Post("/", visitHandler.Create)
	visits.Get("/", visitHandler.List)

	tasks := protected.Group("/tasks")
	taskHandler := NewTaskHandler(deps.TaskUC)
	tasks.Post("/", taskHandler.Create)
	tasks.Get("/", taskHandler.List)
	tasks.Get("/:id", taskHandler.GetByID)
	tasks.Put("/:id", taskHandler.Update)

	stories := protected.Group("/stories")
	storyHandler := NewStoryHandler(deps.StoryUC)
	stories.Get("/", storyHandler.List)
	stories.Post("/", RequireAdmin(), storyHandler.Create)
	stories.Delete("/:id", RequireAdmin(), storyHandler.Deactivate)
}
