package rest

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi"

	"github.com/frahmantamala/legaltech-workflows/internal/auth"
	"github.com/frahmantamala/legaltech-workflows/internal/category"
	"github.com/frahmantamala/legaltech-workflows/internal/chat"
	"github.com/frahmantamala/legaltech-workflows/internal/replication"
	"github.com/frahmantamala/legaltech-workflows/internal/transport/middleware"
	"github.com/frahmantamala/legaltech-workflows/internal/transport/swagger"
	"github.com/frahmantamala/legaltech-workflows/internal/workflow"
)

func RegisterAllRoutes(
	router *chi.Mux,
	guards *auth.Guards,
	authHandler *auth.Handler,
	categoryHandler *category.Handler,
	workflowHandler *workflow.Handler,
	chatHandler *chat.Handler,
	replicationHandler *replication.Handler,
	healthHandler *HealthHandler,
	logger *slog.Logger,
) {
	// Apply global middleware
	router.Use(middleware.RequestID)
	router.Use(middleware.LoggingMiddleware(logger))
	router.Use(middleware.RecoveryMiddleware(logger))
	router.Use(guards.WithSession)

	// Static assets and API docs
	router.Handle("/static/*", http.StripPrefix("/static/", http.FileServer(http.Dir("./static"))))
	router.Get("/openapi.yml", func(w http.ResponseWriter, r *http.Request) {
		http.ServeFile(w, r, "./api/openapi.yml")
	})
	router.Handle("/swagger/*", swagger.Handler())

	// Health
	router.Get("/api/health", healthHandler.healthCheckHandler)
	router.Get("/api/ping", healthHandler.pingHandler)

	// Identity
	router.Get("/login", authHandler.LoginForm)
	router.Post("/login", authHandler.Login)
	router.Get("/logout", authHandler.Logout)

	// Authenticated views
	router.Group(func(r chi.Router) {
		r.Use(guards.RequireAuth)

		r.Get("/select-category", categoryHandler.SelectForm)
		r.Post("/select-category", categoryHandler.Select)
		r.Get("/settings", workflowHandler.Settings)

		// Views that additionally need a product category
		r.Group(func(cr chi.Router) {
			cr.Use(guards.RequireCategory)

			cr.Get("/", workflowHandler.Dashboard)

			for _, wf := range workflow.All() {
				cr.With(guards.RequirePermission(wf.Permission)).
					Get("/"+wf.Slug, workflowHandler.View(wf))
			}
		})
	})

	// Chat API; deliberately open, matching the demo's behavior
	router.Post("/api/start-session", chatHandler.StartSession)
	router.Post("/api/send-message", chatHandler.SendMessage)

	// Replication API
	router.Group(func(r chi.Router) {
		r.Use(guards.RequireAuth)

		r.With(guards.RequireCategory, guards.RequirePermissionJSON(auth.PermAgreementReplication)).
			Post("/api/agreement-replication", replicationHandler.Replicate)
		r.Get("/api/download-replicated-agreement/{state}", replicationHandler.Download)
	})
}
