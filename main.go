// File: mentorsetu/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"mentorsetu/config"
	"mentorsetu/cron"
	"mentorsetu/database"
	applicationRepo "mentorsetu/database/repository/applications"
	bookingRepo "mentorsetu/database/repository/bookings"
	kvstore "mentorsetu/database/repository/store"
	"mentorsetu/database/seed"
	"mentorsetu/handlers"
	"mentorsetu/middleware"
	"mentorsetu/routes"
	"mentorsetu/services/application"
	"mentorsetu/services/booking"
	"mentorsetu/services/mentor"
	"mentorsetu/services/payment"
	"mentorsetu/services/simulation"
	"mentorsetu/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/hibiken/asynq"
	"go.mongodb.org/mongo-driver/mongo"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	// Pick the persisted store backend.
	var kv kvstore.KeyValueStore
	var redisClients []*redis.Client
	var mongoClient *mongo.Client
	switch config.AppConfig.StoreBackend {
	case "mongo":
		if err := database.InitDB(); err != nil {
			logger.Sugar().Fatalf("main: %v", err)
		}
		mongoClient = database.MongoClient
		kv = kvstore.NewMongoStore(mongoClient)
	case "redis":
		client := utils.GetStoreClient()
		redisClients = append(redisClients, client)
		kv = kvstore.NewRedisStore(client)
	default:
		kv = kvstore.NewMemoryStore()
	}

	bookingStore := bookingRepo.NewKVBookingStore(kv, seed.Bookings())
	applicationStore := applicationRepo.NewKVApplicationStore(kv, seed.Applications())

	initCtx, cancelInit := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancelInit()
	if err := bookingStore.Initialize(initCtx); err != nil {
		logger.Sugar().Fatalf("main: failed to initialize booking store: %v", err)
	}
	if err := applicationStore.Initialize(initCtx); err != nil {
		logger.Sugar().Fatalf("main: failed to initialize application store: %v", err)
	}

	// Simulation policies.
	var failures simulation.FailurePolicy = simulation.NoFailurePolicy{}
	if config.AppConfig.SimulateFailures {
		failures = simulation.NewRandomFailurePolicy()
	}
	var latency simulation.LatencyPolicy = simulation.NoLatency{}
	if config.AppConfig.SimulateLatency {
		latency = simulation.NetworkLatency{}
	}

	// services.
	catalogService := &mentor.DefaultCatalogService{
		Catalog: seed.Mentors(),
		Latency: latency,
	}

	var reminders booking.ReminderScheduler
	if config.AppConfig.RemindersEnabled {
		reminders = cron.NewReminderQueue(asynq.RedisClientOpt{
			Addr:     config.AppConfig.RedisAddr,
			Password: config.AppConfig.RedisPassword,
			DB:       config.AppConfig.RedisQueueDB,
		})
	}

	bookingService := &booking.DefaultBookingSessionService{
		Store:     bookingStore,
		Failures:  failures,
		Latency:   latency,
		Reminders: reminders,
		Logger:    logger,
	}
	paymentService := &payment.DefaultPaymentService{
		Failures: failures,
		Latency:  latency,
	}
	applicationService := &application.DefaultApplicationService{
		Store:    applicationStore,
		Failures: failures,
		Latency:  latency,
	}

	if config.AppConfig.RemindersEnabled {
		cron.InitSessionWorker(bookingService)
	}

	utils.StartHealthMonitor(redisClients, mongoClient)

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		Mentor:      handlers.NewMentorHandler(catalogService),
		Booking:     handlers.NewBookingHandler(bookingService),
		Payment:     handlers.NewPaymentHandler(paymentService),
		Application: handlers.NewApplicationHandler(applicationService),
	}

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	if err := kv.Close(ctx); err != nil {
		logger.Sugar().Warnf("main: failed to close store: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
