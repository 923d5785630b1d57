package main

import (
	"context"
	"flag"
	"fmt"
	stdlog "log"
	"math/rand"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"github.com/segmentio/kafka-go"
	metricsmiddleware "github.com/slok/go-http-metrics/middleware"
	"github.com/slok/go-http-metrics/middleware/std"

	metricsprometheus "github.com/slok/go-http-metrics/metrics/prometheus"

	"github.com/valorapay/payment-gateway/internal/facades"
	"github.com/valorapay/payment-gateway/internal/handlers"
	"github.com/valorapay/payment-gateway/internal/identity"
	"github.com/valorapay/payment-gateway/internal/logger"
	"github.com/valorapay/payment-gateway/internal/middlewares"
	"github.com/valorapay/payment-gateway/internal/models"
	"github.com/valorapay/payment-gateway/internal/rails"
	"github.com/valorapay/payment-gateway/internal/repositories"
	"github.com/valorapay/payment-gateway/internal/services"

	_ "github.com/jackc/pgx/v5/stdlib"
	httpSwagger "github.com/swaggo/http-swagger"
)

// Build info variables, set via ldflags at build time.
var (
	buildVersion = "N/A" // Version of the service
	buildDate    = "N/A" // Build date
	buildCommit  = "N/A" // Git commit hash
)

// @title payment-gateway API
// @version 1.0.0
// @description Payment transaction lifecycle engine for card, instant transfer and bank slip rails
// @host localhost:8080
// @BasePath /api/v1
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	printBuildInfo()
	configPath := parseFlags()

	appHost, appPort, logLevel, environment,
		storageDriver,
		pgHost, pgPort, pgUser, pgPassword, pgDB,
		pgMaxOpenConns, pgMaxIdleConns,
		redisHost, redisPort, redisDB, redisPassword,
		kafkaBroker, kafkaTopic,
		webhookSecret, webhookDedupTTLSecond,
		apiSecretKey, apiTokenExpSecond,
		instantTransferKey,
		acquirerApprovalRate, acquirerTimeoutMs,
		err := parseConfig(configPath)
	if err != nil {
		stdlog.Fatalf("failed to parse config: %v", err)
	}

	if err := run(context.Background(),
		appHost, appPort, logLevel, environment,
		storageDriver,
		pgHost, pgPort, pgUser, pgPassword, pgDB,
		pgMaxOpenConns, pgMaxIdleConns,
		redisHost, redisPort, redisDB, redisPassword,
		kafkaBroker, kafkaTopic,
		webhookSecret, webhookDedupTTLSecond,
		apiSecretKey, apiTokenExpSecond,
		instantTransferKey,
		acquirerApprovalRate, acquirerTimeoutMs,
	); err != nil {
		stdlog.Fatalf("application stopped with error: %v", err)
	}
}

// printBuildInfo prints the build version, commit hash, and build date.
func printBuildInfo() {
	fmt.Printf("Starting service version %s, commit %s, build %s\n", buildVersion, buildCommit, buildDate)
}

// parseFlags parses command-line flags and returns the config file path.
func parseFlags() string {
	c := flag.String("c", "config.env", "Path to configuration file")
	flag.Parse()
	return *c
}

// parseConfig loads environment variables from a file and returns all
// application, storage, Redis, Kafka, webhook, auth and acquirer configuration.
func parseConfig(path string) (
	appHost, appPort, logLevel, environment string,
	storageDriver string,
	pgHost string, pgPort int, pgUser, pgPassword, pgDB string,
	pgMaxOpenConns, pgMaxIdleConns int,
	redisHost string, redisPort, redisDB int, redisPassword string,
	kafkaBroker, kafkaTopic string,
	webhookSecret string, webhookDedupTTLSecond int,
	apiSecretKey string, apiTokenExpSecond int,
	instantTransferKey string,
	acquirerApprovalRate float64, acquirerTimeoutMs int,
	err error,
) {
	_ = godotenv.Load(path)

	getEnv := func(key, defaultValue string) string {
		if val, ok := os.LookupEnv(key); ok && val != "" {
			return val
		}
		return defaultValue
	}

	// Application config
	appHost = getEnv("APP_HOST", "localhost")
	appPort = getEnv("APP_PORT", "8080")
	logLevel = getEnv("APP_LOG_LEVEL", "info")
	environment = getEnv("APP_ENVIRONMENT", "sandbox")
	if environment != "sandbox" && environment != "production" {
		err = fmt.Errorf("unknown APP_ENVIRONMENT %q", environment)
		return
	}

	// Storage config
	storageDriver = getEnv("STORAGE_DRIVER", "memory")
	if storageDriver != "memory" && storageDriver != "postgres" {
		err = fmt.Errorf("unknown STORAGE_DRIVER %q", storageDriver)
		return
	}

	// PostgreSQL config
	pgHost = getEnv("POSTGRES_HOST", "localhost")
	pgUser = getEnv("POSTGRES_USER", "user")
	pgPassword = getEnv("POSTGRES_PASSWORD", "password")
	pgDB = getEnv("POSTGRES_DB", "payments")
	if pgPort, err = strconv.Atoi(getEnv("POSTGRES_PORT", "5432")); err != nil {
		return
	}
	if pgMaxOpenConns, err = strconv.Atoi(getEnv("POSTGRES_MAX_OPEN_CONNS", "16")); err != nil {
		return
	}
	if pgMaxIdleConns, err = strconv.Atoi(getEnv("POSTGRES_MAX_IDLE_CONNS", "8")); err != nil {
		return
	}

	// Redis config. Empty host disables webhook delivery deduplication.
	redisHost = getEnv("REDIS_HOST", "")
	if redisPort, err = strconv.Atoi(getEnv("REDIS_PORT", "6379")); err != nil {
		return
	}
	if redisDB, err = strconv.Atoi(getEnv("REDIS_DB", "0")); err != nil {
		return
	}
	redisPassword = getEnv("REDIS_PASSWORD", "")

	// Kafka config. Empty broker disables event publishing.
	kafkaBroker = getEnv("KAFKA_BROKER", "")
	kafkaTopic = getEnv("KAFKA_TOPIC", "payment-events")

	// Webhook config
	webhookSecret = getEnv("WEBHOOK_SECRET", "webhook_secret_key")
	if webhookDedupTTLSecond, err = strconv.Atoi(getEnv("WEBHOOK_DEDUP_TTL_SECOND", "86400")); err != nil {
		return
	}

	// API auth config
	apiSecretKey = getEnv("API_SECRET_KEY", "my_super_secret_key")
	if apiTokenExpSecond, err = strconv.Atoi(getEnv("API_TOKEN_EXP_SECOND", "3600")); err != nil {
		return
	}

	// Rail config
	instantTransferKey = getEnv("INSTANT_TRANSFER_KEY", "gateway@valorapay.com")

	// Acquirer config
	if acquirerApprovalRate, err = strconv.ParseFloat(getEnv("ACQUIRER_APPROVAL_RATE", "0.85"), 64); err != nil {
		return
	}
	if acquirerTimeoutMs, err = strconv.Atoi(getEnv("ACQUIRER_TIMEOUT_MS", "2000")); err != nil {
		return
	}

	return
}

// run initializes the logger, storage, Redis, Kafka and HTTP server.
// It sets up routes, applies middleware, and handles graceful shutdown.
func run(ctx context.Context,
	appHost, appPort, logLevel, environment string,
	storageDriver string,
	pgHost string, pgPort int, pgUser, pgPassword, pgDB string,
	pgMaxOpenConns, pgMaxIdleConns int,
	redisHost string, redisPort, redisDB int, redisPassword string,
	kafkaBroker, kafkaTopic string,
	webhookSecret string, webhookDedupTTLSecond int,
	apiSecretKey string, apiTokenExpSecond int,
	instantTransferKey string,
	acquirerApprovalRate float64, acquirerTimeoutMs int,
) error {
	// Initialize logger
	if err := logger.Initialize(logLevel); err != nil {
		fmt.Println("failed to initialize logger:", err)
		return err
	}
	defer logger.Sync()
	log := logger.Log
	log.Infof("Logger initialized with level %s", logLevel)

	// Initialize storage
	var (
		store   services.TransactionStore
		refunds services.RefundStore
	)
	switch storageDriver {
	case "postgres":
		dsn := fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=disable",
			pgUser, pgPassword, pgHost, pgPort, pgDB)
		log.Infof("Connecting to PostgreSQL at %s:%d/%s", pgHost, pgPort, pgDB)

		db, err := sqlx.ConnectContext(ctx, "pgx", dsn)
		if err != nil {
			log.Errorw("PostgreSQL connection error", "error", err)
			return err
		}
		defer db.Close()
		db.SetMaxOpenConns(pgMaxOpenConns)
		db.SetMaxIdleConns(pgMaxIdleConns)
		if err := db.PingContext(ctx); err != nil {
			log.Errorw("PostgreSQL ping failed", "error", err)
			return err
		}

		pg := repositories.NewPostgresStore(db)
		store, refunds = pg, pg
	default:
		mem := repositories.NewMemoryStore()
		store, refunds = mem, mem
		log.Info("Using in-memory transaction store")
	}

	// Connect to Redis (optional webhook delivery cache)
	var deliveryCache services.DeliveryCache
	if redisHost != "" {
		rdb := redis.NewClient(&redis.Options{
			Addr:     fmt.Sprintf("%s:%d", redisHost, redisPort),
			Password: redisPassword,
			DB:       redisDB,
		})
		if err := rdb.Ping(ctx).Err(); err != nil {
			log.Errorw("Redis connection error", "error", err)
			return err
		}
		defer rdb.Close()
		deliveryCache = repositories.NewWebhookDeliveryCache(rdb, time.Duration(webhookDedupTTLSecond)*time.Second)
	}

	// Connect Kafka writer (optional event stream)
	var kafkaWriter services.KafkaWriter
	if kafkaBroker != "" {
		writer := &kafka.Writer{
			Addr:     kafka.TCP(kafkaBroker),
			Topic:    kafkaTopic,
			Balancer: &kafka.LeastBytes{},
		}
		defer writer.Close()
		kafkaWriter = writer
		log.Infof("Publishing transaction events to %s/%s", kafkaBroker, kafkaTopic)
	}

	// Initialize token verifier
	verifier := identity.New(apiSecretKey, time.Duration(apiTokenExpSecond)*time.Second)

	// Initialize rail processors
	acquirer := facades.NewSimulatedAcquirer(acquirerApprovalRate, rand.New(rand.NewSource(time.Now().UnixNano())))
	processors := map[models.Rail]services.RailProcessor{
		models.RailCard:            rails.NewCardProcessor(acquirer, time.Duration(acquirerTimeoutMs)*time.Millisecond),
		models.RailInstantTransfer: rails.NewInstantTransferProcessor(instantTransferKey),
		models.RailBankSlip:        rails.NewBankSlipProcessor(),
	}

	// Initialize services
	paymentService := services.NewPaymentService(store, refunds, processors, kafkaWriter)
	webhookService := services.NewWebhookService(webhookSecret, store, deliveryCache, kafkaWriter)

	// Initialize handlers
	methodsHandler := handlers.NewPaymentMethodsHandler(paymentService)
	createHandler := handlers.NewCreatePaymentHandler(paymentService)
	getHandler := handlers.NewGetPaymentHandler(paymentService)
	captureHandler := handlers.NewCapturePaymentHandler(paymentService)
	refundHandler := handlers.NewRefundPaymentHandler(paymentService)
	webhookHandler := handlers.NewWebhookHandler(webhookService)
	simulateHandler := handlers.NewSimulateSettlementHandler(paymentService)

	// Setup router
	r := chi.NewRouter()
	r.Use(chimiddleware.Recoverer)
	r.Use(middlewares.LoggingMiddleware(log))

	mw := metricsmiddleware.New(metricsmiddleware.Config{
		Recorder: metricsprometheus.NewRecorder(metricsprometheus.Config{}),
	})
	r.Use(func(next http.Handler) http.Handler {
		return std.Handler("", mw, next)
	})

	r.Route("/api/v1", func(r chi.Router) {
		// Public routes
		r.Get("/payment/methods", methodsHandler)
		r.Post("/webhook/settlement", webhookHandler)

		// Protected routes with token middleware
		r.Group(func(r chi.Router) {
			r.Use(middlewares.AuthMiddleware(verifier))
			r.Post("/payment/create", createHandler)
			r.Get("/payment/{transactionID}", getHandler)
			r.Post("/payment/{transactionID}/capture", captureHandler)
			r.Post("/payment/{transactionID}/refund", refundHandler)
		})

		// Sandbox-only settlement simulation
		if environment == "sandbox" {
			r.Post("/payment/simulate/{rail}/{transactionID}", simulateHandler)
		}
	})

	r.Handle("/metrics", promhttp.Handler())
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL(fmt.Sprintf("http://%s:%s/swagger/doc.json", appHost, appPort)),
	))

	srv := &http.Server{
		Addr:    fmt.Sprintf("%s:%s", appHost, appPort),
		Handler: r,
	}

	// Graceful shutdown
	errChan := make(chan error, 1)
	ctxShutdown, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	go func() {
		log.Infof("HTTP server listening on %s:%s (%s)", appHost, appPort, environment)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errChan <- fmt.Errorf("HTTP server failed: %w", err)
		}
	}()

	select {
	case <-ctxShutdown.Done():
		log.Info("Shutdown signal received, stopping HTTP server...")
	case serveErr := <-errChan:
		return serveErr
	}

	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Errorw("HTTP server shutdown error", "error", err)
	}

	log.Info("HTTP server stopped gracefully")
	return nil
}
