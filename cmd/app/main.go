package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"foodmarket/cmd"
	marketapi "foodmarket/internal/adapters/in/http"
	"foodmarket/internal/adapters/out/postgres/cartrepo"
	"foodmarket/internal/adapters/out/postgres/dishrepo"
	"foodmarket/internal/adapters/out/postgres/locationrepo"
	"foodmarket/internal/adapters/out/postgres/orderrepo"

	"github.com/cenkalti/backoff/v4"
	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/sync/errgroup"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

const shutdownTimeout = 10 * time.Second

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	configs := getConfigs()

	db, err := connectDB(configs)
	if err != nil {
		logger.Error("Database connection failed", "error", err)
		os.Exit(1)
	}

	if err := migrateDB(db); err != nil {
		logger.Error("Database migration failed", "error", err)
		os.Exit(1)
	}

	app, err := cmd.NewCompositionRoot(configs, db)
	if err != nil {
		logger.Error("Wiring failed", "error", err)
		os.Exit(1)
	}

	jobManager := app.CreateJobManager(logger)
	if err := jobManager.StartAll(); err != nil {
		logger.Error("Job startup failed", "error", err)
		os.Exit(1)
	}
	defer jobManager.StopAll()

	if err := runWebServer(&app, configs.HTTPPort, logger); err != nil {
		logger.Error("Server stopped with error", "error", err)
		os.Exit(1)
	}
}

func getConfigs() cmd.Config {
	return cmd.Config{
		HTTPPort:       goDotEnvVariable("HTTP_PORT"),
		DBHost:         goDotEnvVariable("DB_HOST"),
		DBPort:         goDotEnvVariable("DB_PORT"),
		DBUser:         goDotEnvVariable("DB_USER"),
		DBPassword:     goDotEnvVariable("DB_PASSWORD"),
		DBName:         goDotEnvVariable("DB_NAME"),
		DBSslMode:      goDotEnvVariable("DB_SSLMODE"),
		MatchRadiusKm:  envFloat("MATCH_RADIUS_KM", 10),
		MaxPendingAge:  envDuration("MAX_PENDING_AGE", 15*time.Minute),
		MaxLocationAge: envDuration("MAX_LOCATION_AGE", 30*time.Minute),
	}
}

func goDotEnvVariable(key string) string {
	err := godotenv.Load(".env")
	if err != nil {
		log.Fatalf("Error loading .env file")
	}
	return os.Getenv(key)
}

func envFloat(key string, fallback float64) float64 {
	raw := goDotEnvVariable(key)
	if raw == "" {
		return fallback
	}

	value, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		log.Fatalf("Invalid %s: %s", key, raw)
	}
	return value
}

func envDuration(key string, fallback time.Duration) time.Duration {
	raw := goDotEnvVariable(key)
	if raw == "" {
		return fallback
	}

	value, err := time.ParseDuration(raw)
	if err != nil {
		log.Fatalf("Invalid %s: %s", key, raw)
	}
	return value
}

// connectDB opens the connection and pings with exponential backoff, so the
// service survives the database coming up after it in a compose stack.
func connectDB(configs cmd.Config) (*gorm.DB, error) {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost, configs.DBPort, configs.DBUser,
		configs.DBPassword, configs.DBName, configs.DBSslMode)

	db, err := gorm.Open(gormpostgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}

	policy := backoff.NewExponentialBackOff(
		backoff.WithInitialInterval(time.Second),
		backoff.WithMaxElapsedTime(time.Minute),
	)
	if err := backoff.Retry(sqlDB.Ping, policy); err != nil {
		return nil, fmt.Errorf("database unreachable: %w", err)
	}

	return db, nil
}

func migrateDB(db *gorm.DB) error {
	return db.AutoMigrate(
		&orderrepo.OrderDTO{},
		&orderrepo.OrderItemDTO{},
		&orderrepo.StatusChangeDTO{},
		&cartrepo.CartDTO{},
		&cartrepo.CartItemDTO{},
		&dishrepo.DishDTO{},
		&dishrepo.DishVariantDTO{},
		&locationrepo.RestaurantLocationDTO{},
		&locationrepo.PartnerLocationDTO{},
	)
}

func runWebServer(app *cmd.CompositionRoot, port string, logger *slog.Logger) error {
	e := echo.New()
	e.HideBanner = true
	e.Use(marketapi.MetricsMiddleware())

	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	app.CreateServer().RegisterRoutes(e)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	group, groupCtx := errgroup.WithContext(ctx)

	group.Go(func() error {
		logger.Info("HTTP server starting", "port", port)
		if err := e.Start(fmt.Sprintf("0.0.0.0:%s", port)); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	group.Go(func() error {
		<-groupCtx.Done()
		logger.Info("Shutting down")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return e.Shutdown(shutdownCtx)
	})

	return group.Wait()
}
