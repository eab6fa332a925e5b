//	@title			Menupp API
//	@version		1.0
//	@description	Gateway for Menupp — user accounts and menu image storage.
//
//	@host		localhost:8080
//	@BasePath	/api/v1
//
//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization
//	@description				JWT Bearer token. Format: **Bearer {token}**

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

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	httpSwagger "github.com/swaggo/http-swagger/v2"

	"github.com/GabrielSB19/menupp-back/internal/auth"
	"github.com/GabrielSB19/menupp-back/internal/config"
	"github.com/GabrielSB19/menupp-back/internal/db"
	"github.com/GabrielSB19/menupp-back/internal/media"
	appMiddleware "github.com/GabrielSB19/menupp-back/internal/middleware"
	"github.com/GabrielSB19/menupp-back/internal/storage"
	"github.com/GabrielSB19/menupp-back/internal/token"
	"github.com/GabrielSB19/menupp-back/internal/user"

	_ "github.com/GabrielSB19/menupp-back/docs/swagger"
)

func main() {
	cfg := config.Load()

	pool, err := db.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("database connection failed: %v", err)
	}
	defer pool.Close()

	if err := db.Migrate(cfg.DatabaseURL); err != nil {
		log.Fatalf("database migration failed: %v", err)
	}

	store, err := newStore(cfg)
	if err != nil {
		log.Fatalf("object storage init failed: %v", err)
	}

	tokens, err := token.NewService(cfg.JWTSecret)
	if err != nil {
		log.Fatalf("token service init failed: %v", err)
	}

	// Wire dependencies: repository → service → handler
	userRepo := user.NewPostgresRepository(pool)
	userSvc := user.NewService(userRepo)
	authHandler := auth.NewHandler(userSvc, tokens)
	mediaHandler := media.NewHandler(store)

	// Router
	r := chi.NewRouter()
	r.Use(chiMiddleware.RequestID)
	r.Use(chiMiddleware.RealIP)
	r.Use(appMiddleware.Logger)
	r.Use(chiMiddleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type", "Origin"},
		MaxAge:         300,
	}))

	// Health check
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	})

	// Swagger UI — available at http://localhost:8080/swagger/
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
	))

	// API v1
	r.Route("/api/v1", func(r chi.Router) {
		// Public auth endpoints
		r.Route("/auth", func(r chi.Router) {
			r.Post("/register", authHandler.Register)
			r.Post("/login", authHandler.Login)
		})

		r.Route("/media", func(r chi.Router) {
			// Upload is public; only listing and deletion require auth.
			r.Post("/upload", mediaHandler.Upload)

			// Listing and deletion require a valid bearer token.
			r.Group(func(r chi.Router) {
				r.Use(appMiddleware.RequireAuth(tokens))
				r.Get("/", mediaHandler.List)
				r.Delete("/", mediaHandler.Delete)
			})
		})
	})

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in goroutine; wait for shutdown signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		log.Printf("server listening on :%s (env=%s, storage=%s)", cfg.Port, cfg.AppEnv, cfg.StorageDriver)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server error: %v", err)
		}
	}()

	<-quit
	log.Println("shutting down gracefully...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("forced shutdown: %v", err)
	}

	log.Println("server stopped")
}

// newStore builds the object-store backend selected by configuration.
func newStore(cfg *config.Config) (storage.Store, error) {
	switch cfg.StorageDriver {
	case "minio":
		return storage.NewMinioStore(
			cfg.StorageEndpoint,
			cfg.StorageAccessKey,
			cfg.StorageSecretKey,
			cfg.StorageBucket,
			cfg.StorageUseSSL,
		)
	case "gcs":
		return storage.NewGCSStore(context.Background(), cfg.StorageBucket, cfg.GCSCredentialsFile)
	default:
		return nil, fmt.Errorf("unknown storage driver %q", cfg.StorageDriver)
	}
}
