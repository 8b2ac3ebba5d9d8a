package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi"
	"github.com/spf13/cobra"

	"github.com/frahmantamala/legaltech-workflows/internal"
	"github.com/frahmantamala/legaltech-workflows/internal/auth"
	"github.com/frahmantamala/legaltech-workflows/internal/category"
	"github.com/frahmantamala/legaltech-workflows/internal/chat"
	"github.com/frahmantamala/legaltech-workflows/internal/replication"
	"github.com/frahmantamala/legaltech-workflows/internal/session"
	"github.com/frahmantamala/legaltech-workflows/internal/transport"
	"github.com/frahmantamala/legaltech-workflows/internal/transport/rest"
	"github.com/frahmantamala/legaltech-workflows/internal/transport/web"
	"github.com/frahmantamala/legaltech-workflows/internal/user"
	"github.com/frahmantamala/legaltech-workflows/internal/workflow"
	"github.com/frahmantamala/legaltech-workflows/pkg/logger"
)

var httpServerCmd = &cobra.Command{
	Use:   "server",
	Short: "Start HTTP server",
	Long:  `Start the HTTP server that serves the demo views and APIs`,
	Run: func(cmd *cobra.Command, args []string) {
		startHTTPServer()
	},
}

type Dependencies struct {
	Config *internal.Config
	Router *chi.Mux
	Logger *slog.Logger
}

func startHTTPServer() {
	deps, err := initializeDependencies()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize dependencies: %v\n", err)
		os.Exit(1)
	}

	addr := fmt.Sprintf(":%d", deps.Config.Server.Port)
	slog.Info("Starting HTTP server", "address", addr)

	server := &http.Server{
		Addr:              addr,
		Handler:           deps.Router,
		ReadHeaderTimeout: deps.Config.Server.ReadHeaderTimeout,
		ReadTimeout:       deps.Config.Server.ReadTimeout,
		WriteTimeout:      deps.Config.Server.WriteTimeout,
		IdleTimeout:       deps.Config.Server.IdleTimeout,
	}

	// Signal handling for graceful shutdown
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	serverErrChan := make(chan error, 1)
	go func() {
		serverErrChan <- server.ListenAndServe()
	}()

	select {
	case sig := <-sigChan:
		slog.Info("Received signal, shutting down...", "signal", sig)
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		if err := server.Shutdown(ctx); err != nil {
			slog.Error("Server shutdown error", "error", err)
		}
	case err := <-serverErrChan:
		if err != nil && err != http.ErrServerClosed {
			slog.Error("Server failed to start", "error", err)
			os.Exit(1)
		}
	}

	slog.Info("Server stopped")
}

func initializeDependencies() (*Dependencies, error) {
	config, err := loadConfig(".")
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	logger.Init(config.Observability.Logging.Level, config.Observability.Logging.Format)
	lg := logger.L()

	views, err := web.NewRenderer(lg)
	if err != nil {
		return nil, fmt.Errorf("failed to load views: %w", err)
	}

	base := transport.NewBaseHandler(lg)

	sessions := session.NewStore(config.Session)

	users := user.NewService(user.NewDirectory(), lg)
	categories := category.NewService(category.NewStore(), lg)

	authService := auth.NewService(users, lg)
	guards := auth.NewGuards(sessions, authService, lg)
	authHandler := auth.NewHandler(base, authService, sessions, views, users)

	categoryHandler := category.NewHandler(base, categories, sessions, views)
	workflowHandler := workflow.NewHandler(base, categories, views)

	chatService := chat.NewService(chat.NewPooledResponder(), lg)
	chatHandler := chat.NewHandler(base, chatService, sessions)

	replicationService := replication.NewService(config.Replication, lg)
	replicationHandler := replication.NewHandler(base, replicationService, categories)

	healthHandler := rest.NewHealthHandler(sessions)

	router := chi.NewRouter()
	rest.RegisterAllRoutes(router, guards, authHandler, categoryHandler,
		workflowHandler, chatHandler, replicationHandler, healthHandler, lg)

	return &Dependencies{
		Config: config,
		Router: router,
		Logger: lg,
	}, nil
}
