// cmd/main.go is the application entry point.
// It wires together all layers and starts the HTTP server.
package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/eventsphere/eventsphere/internal/config"
	"github.com/eventsphere/eventsphere/internal/database"
	"github.com/eventsphere/eventsphere/internal/handler"
	"github.com/eventsphere/eventsphere/internal/logger"
	"github.com/eventsphere/eventsphere/internal/repository"
	"github.com/eventsphere/eventsphere/internal/service"
	"github.com/eventsphere/eventsphere/internal/store"
	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
)

func main() {
	ctx := context.Background()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	slogger := logger.Setup(cfg.LogLevel)

	// ── 1. Open the document store ───────────────────────────────────────
	var kv store.KV
	switch cfg.StoreDriver {
	case config.DriverPostgres:
		pool, err := database.NewPool(ctx, cfg.DSN())
		if err != nil {
			log.Fatalf("database: %v", err)
		}
		defer pool.Close()

		pg := store.NewPostgresStore(pool)
		if err := pg.EnsureSchema(ctx); err != nil {
			log.Fatalf("schema: %v", err)
		}
		kv = pg
		slogger.Info("connected to postgres document store")
	default:
		kv = store.NewMemoryStore()
		slogger.Info("using in-memory document store")
	}

	// ── 2. Wire up layers ────────────────────────────────────────────────
	eventRepo := repository.NewEventRepository(kv)
	userRepo := repository.NewUserRepository(kv)
	eventSvc := service.NewEventService(eventRepo, userRepo)
	eventHandler := handler.NewEventHandler(eventSvc)

	// ── 3. Build the router ───────────────────────────────────────────────
	r := chi.NewRouter()

	// Global middleware stack
	r.Use(chimiddleware.Recoverer) // recover from panics, return 500
	r.Use(chimiddleware.RequestID) // attach request IDs
	r.Use(chimiddleware.RealIP)    // trust X-Forwarded-For
	r.Use(handler.Logger(slogger)) // structured access log
	r.Use(handler.CORS)            // permissive CORS for browser clients

	// Health
	r.Get("/health", handler.HealthCheck)

	// API routes
	r.Route("/events", func(r chi.Router) {
		r.Get("/", eventHandler.ListEvents)
		r.Post("/", eventHandler.CreateEvent)
		r.Get("/{id}", eventHandler.GetEvent)
		r.Put("/{id}", eventHandler.UpdateEvent)
		r.Delete("/{id}", eventHandler.DeleteEvent)
		r.Post("/{id}/register", eventHandler.Register)
		r.Get("/{id}/registrations", eventHandler.ListRegistrations)
	})
	r.Get("/dashboard", eventHandler.Dashboard)
	r.Get("/session", eventHandler.Session)
	r.Put("/session", eventHandler.SetSession)

	// ── 4. Start server with graceful shutdown ────────────────────────────
	srv := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.Port),
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Run in background goroutine so we can listen for shutdown signal.
	go func() {
		slogger.Info("server listening", "port", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server error: %v", err)
		}
	}()

	// Block until SIGINT or SIGTERM.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slogger.Info("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("graceful shutdown failed: %v", err)
	}
	slogger.Info("server stopped")
}
