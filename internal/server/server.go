package server

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"gemshop/internal/account"
	"gemshop/internal/cart"
	"gemshop/internal/catalog"
	"gemshop/internal/config"
	custommiddleware "gemshop/internal/middleware"
	"gemshop/internal/order"
	"gemshop/internal/store"
	"gemshop/internal/transport"
	"gemshop/internal/view"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
)

type Server struct {
	*http.Server
	config *config.Config
	logger *zap.Logger
}

func NewServer(cfg *config.Config, logger *zap.Logger, st store.Store) (*Server, error) {
	// Create router
	router := chi.NewRouter()

	// Add basic middleware
	router.Use(middleware.RequestID)
	router.Use(middleware.RealIP)
	router.Use(middleware.Recoverer)
	router.Use(custommiddleware.LoggingMiddleware(logger))
	router.Use(custommiddleware.ErrorHandlingMiddleware(logger))

	// Health check endpoint
	router.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	})

	// Shared stylesheet for the rendered pages
	router.Get("/static/style.css", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/css; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(view.Stylesheet))
	})

	// Initialize state managers over the profile store
	catalogManager := catalog.NewManager(st, logger)
	if err := catalogManager.Load(context.Background()); err != nil {
		return nil, fmt.Errorf("failed to load catalog: %w", err)
	}

	accountManager := account.NewManager(st, logger)
	cartEngine := cart.NewEngine(st, catalogManager, logger)
	orderLedger := order.NewLedger(st, cartEngine, accountManager, logger)

	// Initialize view renderer
	renderer, err := view.New()
	if err != nil {
		return nil, fmt.Errorf("failed to build renderer: %w", err)
	}

	// Initialize handlers
	storefrontHandler := transport.NewStorefrontHandler(
		catalogManager, cartEngine, accountManager, orderLedger, renderer, logger,
	)

	// Create admin gate
	adminOnly := custommiddleware.RequireAdmin(accountManager, logger)

	// Register routes. Storefront requests are dispatched one at a
	// time: the profile store has no cross-key transactions, so
	// overlapping read-modify-write cycles would lose updates.
	router.Group(func(r chi.Router) {
		r.Use(custommiddleware.SerializeMiddleware())
		storefrontHandler.RegisterRoutes(r, adminOnly)
	})

	server := &Server{
		Server: &http.Server{
			Addr:         fmt.Sprintf(":%s", cfg.Server.Port),
			Handler:      router,
			IdleTimeout:  time.Minute,
			ReadTimeout:  10 * time.Second,
			WriteTimeout: 30 * time.Second,
		},
		config: cfg,
		logger: logger,
	}

	return server, nil
}

func (s *Server) Close() error {
	s.logger.Info("Closing server resources")
	s.logger.Sync()
	return nil
}
