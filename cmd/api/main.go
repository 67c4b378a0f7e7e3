package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"webhook-reconciler/config"
	httpHandler "webhook-reconciler/internal/adapter/http/handler"
	pgStorage "webhook-reconciler/internal/adapter/storage/postgres"
	redisStorage "webhook-reconciler/internal/adapter/storage/redis"
	"webhook-reconciler/internal/core/ports"
	"webhook-reconciler/internal/service"
	"webhook-reconciler/pkg/logger"
)

func main() {
	// Load configuration
	cfg, err := config.Load("")
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	log := logger.New(cfg.Log.Level, cfg.Log.Pretty)

	log.Info().
		Str("mode", cfg.Server.Mode).
		Int("port", cfg.Server.Port).
		Msg("Starting Webhook Reconciler")

	ctx := context.Background()

	// Initialize PostgreSQL pool
	pool, err := pgStorage.NewPool(ctx, cfg.Database, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to PostgreSQL")
	}
	defer pool.Close()
	log.Info().Msg("PostgreSQL connected")

	// Initialize Redis client
	rdb, err := redisStorage.NewClient(ctx, cfg.Redis, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to Redis")
	}
	defer rdb.Close()
	log.Info().Msg("Redis connected")

	if cfg.Webhook.HMACKey == "" {
		log.Warn().Msg("webhook.hmac_key is empty, notification signatures will not be verified")
	}

	stores := cfg.Stores()
	currency := service.NewChargedCurrencyService(stores)

	// Initialize repositories
	orderRepo := pgStorage.NewOrderRepo(pool)
	notificationRepo := pgStorage.NewNotificationRepo(pool)
	ledgerRepo := pgStorage.NewLedgerRepo(pool, currency)
	invoiceRepo := pgStorage.NewInvoiceRepo(pool)
	caseRepo := pgStorage.NewCaseRepo(pool)
	shipmentRepo := pgStorage.NewShipmentRepo(pool)
	decisionRepo := pgStorage.NewDecisionRepo(pool)

	// Initialize Redis stores
	orderLock := redisStorage.NewOrderLock(rdb)
	mailQueue := redisStorage.NewMailQueue(rdb, cfg.Redis.MailQueueKey)

	// Initialize core services
	sink := service.NewDecisionSink(decisionRepo, logger.Component(log, "decision_sink"))
	mutator := service.NewOrderMutator(stores, ledgerRepo, shipmentRepo, mailQueue, logger.Component(log, "order_mutator"))
	guard := service.NewOrderLifecycleGuard(mutator, stores, sink, logger.Component(log, "lifecycle_guard"))

	success := service.NewSuccessfulAuthorizationHandler(service.SuccessDeps{
		Capture:  service.NewCaptureModeResolver(service.NewConfigCapturePolicy(stores)),
		Ledger:   ledgerRepo,
		Reviews:  service.NewManualReviewGate(),
		Invoices: service.NewInvoiceService(invoiceRepo, currency, logger.Component(log, "invoice_service")),
		Cases:    service.NewCaseManagementService(caseRepo, stores, logger.Component(log, "case_service")),
		Mutator:  mutator,
		Currency: currency,
		Config:   stores,
		Methods:  cfg.MethodCapabilities(),
		Sink:     sink,
	}, logger.Component(log, "success_handler"))
	failure := service.NewFailedAuthorizationHandler(guard, mutator, stores, sink, logger.Component(log, "failure_handler"))
	router := service.NewWebhookOutcomeRouter(success, failure, sink, logger.Component(log, "router"))

	processor := service.NewNotificationProcessor(
		orderRepo,
		notificationRepo,
		router,
		orderLock,
		service.ProcessorOptions{LockTTL: cfg.Webhook.LockTTL, LockWait: cfg.Webhook.LockWait},
		logger.Component(log, "notification_processor"),
	)

	// Initialize health checkers
	pgHealth := pgStorage.NewHealthCheck(pool)
	redisHealth := redisStorage.NewHealthCheck(rdb)

	// Setup Gin router with all routes
	engine := httpHandler.SetupRouter(httpHandler.RouterDeps{
		Processor:      processor,
		SigSvc:         service.NewHMACSignatureService(),
		HMACKey:        cfg.Webhook.HMACKey,
		HealthCheckers: []ports.HealthChecker{pgHealth, redisHealth},
		Logger:         log,
	})

	// HTTP Server with graceful shutdown
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:              addr,
		Handler:           engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Info().Str("addr", addr).Msg("HTTP server listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("HTTP server failed")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Server forced to shutdown")
	}

	log.Info().Msg("Server exited")
}
