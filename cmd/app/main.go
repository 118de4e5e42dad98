package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"strconv"
	"time"

	"marketplace/cmd"
	"marketplace/internal/adapters/out/postgres/orderrepo"
	"marketplace/internal/adapters/out/postgres/productrepo"
	"marketplace/internal/adapters/out/postgres/userrepo"
	"marketplace/internal/jobs"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	configs := getConfigs(logger)

	gormDB := mustConnectDB(configs, logger)
	mustMigrateDB(gormDB, logger)

	root := cmd.NewCompositionRoot(configs, gormDB, logger)
	defer root.Close()

	jobManager := jobs.NewJobManager(gormDB, logger)
	jobManager.StartAll()
	defer jobManager.StopAll()

	startWebServer(&root, configs.HTTPPort)
}

func getConfigs(logger *slog.Logger) cmd.Config {
	if err := godotenv.Load(".env"); err != nil {
		logger.Info("no .env file found, reading configuration from the environment")
	}

	return cmd.Config{
		HTTPPort:               envOrDefault("HTTP_PORT", "8080"),
		DBHost:                 mustEnv("DB_HOST", logger),
		DBPort:                 envOrDefault("DB_PORT", "5432"),
		DBUser:                 mustEnv("DB_USER", logger),
		DBPassword:             mustEnv("DB_PASSWORD", logger),
		DBName:                 mustEnv("DB_NAME", logger),
		DBSslMode:              envOrDefault("DB_SSLMODE", "disable"),
		JWTSecret:              mustEnv("JWT_SECRET", logger),
		KafkaHost:              os.Getenv("KAFKA_HOST"),
		KafkaOrderChangedTopic: envOrDefault("KAFKA_ORDER_CHANGED_TOPIC", "order.changed"),
		RedisAddr:              os.Getenv("REDIS_ADDR"),
		CommissionBasisPoints:  envInt64OrDefault("COMMISSION_BASIS_POINTS", 1000, logger),
		DefaultDeliveryFee:     envInt64OrDefault("DEFAULT_DELIVERY_FEE", 1500, logger),
	}
}

func mustEnv(key string, logger *slog.Logger) string {
	value := os.Getenv(key)
	if value == "" {
		logger.Error("missing required environment variable", "key", key)
		os.Exit(1)
	}
	return value
}

func envOrDefault(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func envInt64OrDefault(key string, fallback int64, logger *slog.Logger) int64 {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback
	}
	value, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		logger.Error("environment variable is not a number", "key", key, "value", raw)
		os.Exit(1)
	}
	return value
}

func mustConnectDB(configs cmd.Config, logger *slog.Logger) *gorm.DB {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost, configs.DBPort, configs.DBUser, configs.DBPassword, configs.DBName, configs.DBSslMode)

	gormDB, err := gorm.Open(gormpostgres.Open(dsn), &gorm.Config{})
	if err != nil {
		logger.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	return gormDB
}

func mustMigrateDB(gormDB *gorm.DB, logger *slog.Logger) {
	err := gormDB.AutoMigrate(&userrepo.UserDTO{}, &productrepo.ProductDTO{}, &orderrepo.OrderDTO{})
	if err != nil {
		logger.Error("failed to migrate database schema", "error", err)
		os.Exit(1)
	}
}

func startWebServer(root *cmd.CompositionRoot, port string) {
	e := echo.New()
	e.HideBanner = true
	e.Server.ReadTimeout = 10 * time.Second
	e.Server.WriteTimeout = 30 * time.Second

	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	server := root.CreateServer()
	server.RegisterRoutes(e)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
