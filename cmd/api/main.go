package main

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/httprate"
	_ "github.com/go-sql-driver/mysql"
	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/mysql"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	httpSwagger "github.com/swaggo/http-swagger"
	"go.uber.org/zap"

	_ "github.com/portfoliohub/backend/docs"
	"github.com/portfoliohub/backend/internal/auth"
	authMiddleware "github.com/portfoliohub/backend/internal/auth/middleware"
	"github.com/portfoliohub/backend/internal/config"
	"github.com/portfoliohub/backend/internal/handlers"
	"github.com/portfoliohub/backend/internal/logger"
	"github.com/portfoliohub/backend/internal/metrics"
	"github.com/portfoliohub/backend/internal/middlewares"
	"github.com/portfoliohub/backend/internal/repositories"
	"github.com/portfoliohub/backend/internal/services"
)

// @title PortfolioHub API
// @version 1.0
// @description Backend API for portfolio content: projects, ideas, SOPs and KPIs with role-based access.
// @termsOfService http://swagger.io/terms/

// @contact.name API Support
// @contact.email support@portfoliohub.dev

// @license.name Apache 2.0
// @license.url http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080
// @BasePath /api/v1
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v\n", err)
	}

	// Initialize logger
	if err := logger.Init(cfg.Logging.Level); err != nil {
		log.Fatalf("Failed to initialize logger: %v\n", err)
	}
	defer logger.Sync()

	logger.Logger.Info("Starting PortfolioHub backend")

	// Connect to database
	db, err := connectDB(cfg.DSN())
	if err != nil {
		logger.Logger.Fatal("Failed to connect to database", zap.Error(err))
		os.Exit(1)
	}
	defer db.Close()

	// Run migrations
	if err := runMigrations(db); err != nil {
		logger.Logger.Fatal("Failed to run migrations", zap.Error(err))
	}

	// Initialize auth primitives
	tokenGenerator := auth.NewTokenGenerator(cfg.JWT.Secret, cfg.JWT.AccessTokenExpiry)
	passwordHasher := auth.NewPasswordHasher()

	// Initialize repositories
	userRepo := repositories.NewUserRepository(db, logger.Logger)
	sessionRepo := repositories.NewSessionRepository(db, logger.Logger)
	projectRepo := repositories.NewProjectRepository(db, logger.Logger)
	ideaRepo := repositories.NewIdeaRepository(db, logger.Logger)
	sopRepo := repositories.NewSOPRepository(db, logger.Logger)
	kpiRepo := repositories.NewKPIRepository(db, logger.Logger)

	// Initialize services
	authService := services.NewAuthService(userRepo, passwordHasher, tokenGenerator, logger.Logger)
	sessionService := services.NewSessionService(sessionRepo, userRepo, passwordHasher, cfg.Session.Lifetime, cfg.Session.RememberLifetime, logger.Logger)
	adminService := services.NewAdminService(userRepo, passwordHasher, logger.Logger)
	projectService := services.NewProjectService(projectRepo, logger.Logger)
	ideaService := services.NewIdeaService(ideaRepo, logger.Logger)
	sopService := services.NewSOPService(sopRepo, logger.Logger)
	kpiService := services.NewKPIService(kpiRepo, logger.Logger)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(authService, sessionService, cfg.Session.CookieSecure, logger.Logger)
	userHandler := handlers.NewUserHandler(adminService, sessionService, logger.Logger)
	projectHandler := handlers.NewProjectHandler(projectService, logger.Logger)
	ideaHandler := handlers.NewIdeaHandler(ideaService, logger.Logger)
	sopHandler := handlers.NewSOPHandler(sopService, logger.Logger)
	kpiHandler := handlers.NewKPIHandler(kpiService, logger.Logger)
	healthHandler := handlers.NewHealthHandler(db, logger.Logger)

	// Initialize metrics
	collector := metrics.NewCollector()

	// Identity middleware resolves bearer tokens and session cookies;
	// role checks happen inside the handlers.
	identity := authMiddleware.Identity(tokenGenerator, userRepo, sessionService, collector, logger.Logger)

	// Scheduled session cleanup alongside the manual admin endpoint
	janitor, err := services.NewSessionJanitor(sessionService, cfg.Session.CleanupSchedule, logger.Logger)
	if err != nil {
		logger.Logger.Fatal("Failed to create session janitor", zap.Error(err))
	}
	janitor.Start()
	defer janitor.Stop()

	// Setup router
	r := chi.NewRouter()

	// Apply middleware
	r.Use(middlewares.RequestID)
	r.Use(middlewares.RequestLogger(logger.Logger))
	r.Use(middlewares.Recovery(logger.Logger))
	r.Use(middlewares.CORS(cfg.CORS.AllowedOrigins))
	r.Use(httprate.LimitByIP(100, time.Minute))
	r.Use(middlewares.RequestSizeLimit(1 * 1024 * 1024)) // 1MB
	r.Use(collector.Middleware)

	// Operational endpoints outside the versioned API
	healthHandler.RegisterRoutes(r)
	r.Method(http.MethodGet, "/metrics", collector.Handler())

	// Swagger documentation
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL(fmt.Sprintf("http://localhost:%d/swagger/doc.json", cfg.Server.Port)),
	))

	// Scope router to /api/v1
	r.Route("/api/v1", func(r chi.Router) {
		r.Use(identity)

		authHandler.RegisterRoutes(r)
		userHandler.RegisterRoutes(r)
		projectHandler.RegisterRoutes(r)
		ideaHandler.RegisterRoutes(r)
		sopHandler.RegisterRoutes(r)
		kpiHandler.RegisterRoutes(r)
	})

	// Start server
	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in goroutine
	go func() {
		logger.Logger.Info("Server starting", zap.Int("port", cfg.Server.Port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Logger.Fatal("Server failed to start", zap.Error(err))
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Logger.Info("Shutting down server...")

	// Graceful shutdown
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Logger.Error("Server forced to shutdown", zap.Error(err))
	}

	logger.Logger.Info("Server exited")
}

// connectDB connects to the database
func connectDB(dsn string) (*sql.DB, error) {
	db, err := sql.Open("mysql", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(5 * time.Minute)

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return db, nil
}

// runMigrations runs database migrations
func runMigrations(db *sql.DB) error {
	driver, err := mysql.WithInstance(db, &mysql.Config{
		MigrationsTable: "portfolio_schema_migrations",
	})
	if err != nil {
		return fmt.Errorf("failed to create migration driver: %w", err)
	}

	// Get the working directory or use migrations folder relative to the binary
	migrationPath := "file://migrations"
	if _, err := os.Stat("migrations"); os.IsNotExist(err) {
		// Try parent directory if running from cmd
		if _, err := os.Stat("../migrations"); err == nil {
			migrationPath = "file://../migrations"
		}
	}

	m, err := migrate.NewWithDatabaseInstance(
		migrationPath,
		"mysql",
		driver,
	)
	if err != nil {
		return fmt.Errorf("failed to create migrate instance: %w", err)
	}

	if err := m.Up(); err != nil && err != migrate.ErrNoChange {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	return nil
}
