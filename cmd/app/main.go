package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"orderbot/cmd"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

const shutdownTimeout = 10 * time.Second

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	ctx := context.Background()

	if err := godotenv.Load(".env"); err != nil {
		logger.Warn("No .env file loaded, using process environment", "error", err)
	}

	configs := getConfigs(logger)
	if err := configs.Validate(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	var gormDB *gorm.DB
	if configs.NewCustomerSink == cmd.NewCustomerSinkPostgres {
		db, err := gorm.Open(postgresdriver.Open(configs.PostgresDSN()), &gorm.Config{})
		if err != nil {
			log.Fatalf("Error connecting to database: %v", err)
		}
		gormDB = db
	}

	app, err := cmd.NewCompositionRoot(ctx, configs, gormDB, logger)
	if err != nil {
		log.Fatalf("Error building application: %v", err)
	}

	jobManager := app.CreateJobManager()
	if err = jobManager.StartAll(); err != nil {
		log.Fatalf("Failed to start jobs: %v", err)
	}

	startWebServer(ctx, app, configs.HTTPPort)
	jobManager.StopAll()
}

func getConfigs(logger *slog.Logger) cmd.Config {
	config := cmd.Config{
		HTTPPort:             envOrDefault("HTTP_PORT", cmd.DefaultHTTPPort),
		CatalogFile:          envOrDefault("CATALOG_FILE", cmd.DefaultCatalogFile),
		CustomerFile:         envOrDefault("CUSTOMER_FILE", cmd.DefaultCustomerFile),
		NewCustomerFile:      envOrDefault("NEW_CUSTOMER_FILE", cmd.DefaultNewCustomerFile),
		NewCustomerSink:      envOrDefault("NEW_CUSTOMER_SINK", cmd.NewCustomerSinkCSV),
		DBHost:               os.Getenv("DB_HOST"),
		DBPort:               os.Getenv("DB_PORT"),
		DBUser:               os.Getenv("DB_USER"),
		DBPassword:           os.Getenv("DB_PASSWORD"),
		DBName:               os.Getenv("DB_NAME"),
		DBSslMode:            envOrDefault("DB_SSLMODE", "disable"),
		SessionIdleTTL:       cmd.DefaultSessionIdleTTL,
		SessionSweepSchedule: envOrDefault("SESSION_SWEEP_SCHEDULE", cmd.DefaultSessionSweepSchedule),
	}

	if raw := os.Getenv("SESSION_IDLE_TTL"); raw != "" {
		ttl, err := time.ParseDuration(raw)
		if err != nil || ttl <= 0 {
			logger.Warn("Invalid SESSION_IDLE_TTL, using default",
				"value", raw, "default", cmd.DefaultSessionIdleTTL.String())
		} else {
			config.SessionIdleTTL = ttl
		}
	}

	return config
}

func envOrDefault(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

// startWebServer serves until SIGINT or SIGTERM, then shuts down gracefully.
func startWebServer(ctx context.Context, app cmd.CompositionRoot, port string) {
	e := echo.New()
	app.CreateHTTPServer().RegisterRoutes(e)

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		if err := e.Start(fmt.Sprintf("0.0.0.0:%s", port)); err != nil && !errors.Is(err, http.ErrServerClosed) {
			e.Logger.Fatal(err)
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		e.Logger.Error(err)
	}
}
