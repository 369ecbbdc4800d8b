package main

import (
	"database/sql"
	"flag"
	"log"
	"net/http"

	httpapi "banking-backoffice/internal/api/http"
	"banking-backoffice/internal/config"
	"banking-backoffice/internal/logger"
	"banking-backoffice/internal/repository/postgres"
	"banking-backoffice/internal/service"

	_ "github.com/lib/pq"
)

func main() {
	// Parse command-line flags
	configPath := flag.String("config", "config/config.dev.yaml", "Path to configuration file")
	flag.Parse()

	// Load configuration
	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize logger
	logger.Initialize(cfg.Log.Level, cfg.Log.Format)
	logger.Info("Starting Banking Back-Office API...", "log_level", cfg.Log.Level, "log_format", cfg.Log.Format)
	logger.Info("Server configuration", "address", cfg.GetServerAddress())
	logger.Info("Database configuration", "host", cfg.Database.Host, "port", cfg.Database.Port, "database", cfg.Database.Database, "user", cfg.Database.User)

	// Initialize Database
	db, err := sql.Open("postgres", cfg.GetDatabaseConnectionString())
	if err != nil {
		logger.Error("Failed to connect to database", "error", err)
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	// Test database connection
	if err := db.Ping(); err != nil {
		logger.Error("Failed to ping database", "error", err)
		log.Fatalf("Failed to ping database: %v", err)
	}
	logger.Info("Database connection established")

	// Apply schema migrations
	if err := postgres.RunMigrations(db); err != nil {
		logger.Error("Failed to run migrations", "error", err)
		log.Fatalf("Failed to run migrations: %v", err)
	}
	logger.Info("Database migrations applied")

	// Initialize Repositories
	store := postgres.NewStore(db)

	// Initialize Services
	billSvc := service.NewBillService(
		store.BillRepository,
		store.AccountRepository,
		store.CustomerRepository,
		store,
	)
	accountSvc := service.NewAccountService(
		store.AccountRepository,
		store.CustomerRepository,
		store,
	)
	depositSvc := service.NewDepositService(
		store.DepositRepository,
		store.AccountRepository,
		store,
	)
	withdrawalSvc := service.NewWithdrawalService(
		store.WithdrawalRepository,
		store.AccountRepository,
		store,
	)

	// Set up HTTP server
	router := httpapi.NewRouter(billSvc, accountSvc, depositSvc, withdrawalSvc)

	logger.Info("HTTP server listening", "address", cfg.GetServerAddress())
	if err := http.ListenAndServe(cfg.GetServerAddress(), router); err != nil {
		logger.Error("HTTP server error", "error", err)
		log.Fatalf("Failed to serve: %v", err)
	}
}
