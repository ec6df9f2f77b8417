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
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
	"github.com/spf13/cobra"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/frahmantamala/travel-budget/internal"
	"github.com/frahmantamala/travel-budget/internal/auth"
	authpostgres "github.com/frahmantamala/travel-budget/internal/auth/postgres"
	"github.com/frahmantamala/travel-budget/internal/budget"
	budgetpostgres "github.com/frahmantamala/travel-budget/internal/budget/postgres"
	"github.com/frahmantamala/travel-budget/internal/core/events"
	"github.com/frahmantamala/travel-budget/internal/currency"
	"github.com/frahmantamala/travel-budget/internal/expense"
	expensepostgres "github.com/frahmantamala/travel-budget/internal/expense/postgres"
	"github.com/frahmantamala/travel-budget/internal/plan"
	planpostgres "github.com/frahmantamala/travel-budget/internal/plan/postgres"
	"github.com/frahmantamala/travel-budget/internal/transport/rest"
	"github.com/frahmantamala/travel-budget/internal/user"
	userpostgres "github.com/frahmantamala/travel-budget/internal/user/postgres"
	"github.com/frahmantamala/travel-budget/pkg/logger"
)

var httpServerCmd = &cobra.Command{
	Use:   "server",
	Short: "Start HTTP server",
	Long:  `Start the HTTP server to handle API requests`,
	Run: func(cmd *cobra.Command, args []string) {
		startHTTPServer()
	},
}

type Dependencies struct {
	Config *internal.Config
	DB     *sqlx.DB
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
	deps.Logger.Info("starting HTTP server", "address", addr)

	server := &http.Server{
		Addr:         addr,
		Handler:      deps.Router,
		ReadTimeout:  deps.Config.Server.ReadTimeout,
		WriteTimeout: deps.Config.Server.WriteTimeout,
		IdleTimeout:  deps.Config.Server.IdleTimeout,
	}

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	serverErrChan := make(chan error, 1)
	go func() {
		serverErrChan <- server.ListenAndServe()
	}()

	select {
	case sig := <-sigChan:
		deps.Logger.Info("received signal, shutting down", "signal", sig)
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		if err := server.Shutdown(ctx); err != nil {
			deps.Logger.Error("server shutdown error", "error", err)
		}
		if err := deps.DB.Close(); err != nil {
			deps.Logger.Error("database close error", "error", err)
		}
	case err := <-serverErrChan:
		if err != nil && err != http.ErrServerClosed {
			deps.Logger.Error("server failed to start", "error", err)
			os.Exit(1)
		}
	}

	deps.Logger.Info("server stopped")
}

func initializeDependencies() (*Dependencies, error) {
	config, err := loadConfig(".")
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	logger.Init(os.Getenv("APP_ENV"))
	log := logger.LoggerWrapper()

	db, err := initDB(config.Database)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	gormDB, err := gorm.Open(gormpostgres.New(gormpostgres.Config{Conn: db.DB}), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to initialize gorm: %w", err)
	}

	// Repositories
	userRepo := userpostgres.NewUserRepository(db)
	authRepo := authpostgres.NewRepository(gormDB)
	planRepo := planpostgres.NewPlanRepository(gormDB)
	budgetRepo := budgetpostgres.NewBudgetRepository(gormDB)
	expenseRepo := expensepostgres.NewExpenseRepository(gormDB)

	// Currency conversion with a live source and an in-memory rate cache
	rateClient := currency.NewClient(currency.ClientConfig{
		BaseURL: config.Rates.APIURL,
		APIKey:  config.Rates.APIKey,
		Timeout: config.Rates.Timeout,
	}, log)
	converter := currency.NewConverter(rateClient, log,
		currency.WithCacheTTL(config.Rates.CacheTTL))

	// In-process event bus for domain events
	eventBus := events.NewEventBus(log)
	events.RegisterActivityLogger(eventBus, log)

	// Services
	tokenGen := auth.NewJWTTokenGenerator(
		config.Security.AccessTokenSecret,
		config.Security.RefreshTokenSecret,
		config.Security.AccessTokenDuration,
		config.Security.RefreshTokenDuration,
	)
	authService := auth.NewService(authRepo, tokenGen)
	userService := user.NewService(userRepo, config.Security.BCryptCost, log)
	planService := plan.NewService(planRepo, log)
	budgetService := budget.NewService(budgetRepo, expenseRepo, log)
	expenseService := expense.NewService(expenseRepo, budgetRepo, converter, eventBus, log)

	// Handlers
	authHandler := auth.NewHandler(authService)
	userHandler := user.NewHandler(userService)
	planHandler := plan.NewHandler(planService)
	budgetHandler := budget.NewHandler(budgetService)
	expenseHandler := expense.NewHandler(expenseService)

	router := chi.NewRouter()
	rest.RegisterAllRoutes(router, db.DB, authHandler, userHandler, planHandler, budgetHandler, expenseHandler, log)

	return &Dependencies{
		Config: config,
		Logger: log,
		DB:     db,
		Router: router,
	}, nil
}

// initDB initializes the database connection
func initDB(cfg internal.DatabaseConfig) (*sqlx.DB, error) {
	const driver = "pgx"

	dbConn, err := sqlx.Connect(driver, cfg.Source)
	if err != nil {
		return nil, fmt.Errorf("failed to open db connection: %w", err)
	}

	dbConn.SetMaxIdleConns(cfg.MaxIdleConns)
	dbConn.SetMaxOpenConns(cfg.MaxOpenConns)
	dbConn.SetConnMaxLifetime(cfg.ConnMaxLifetime)
	dbConn.SetConnMaxIdleTime(cfg.ConnMaxIdleTime)

	if err := dbConn.Ping(); err != nil {
		_ = dbConn.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return dbConn, nil
}
