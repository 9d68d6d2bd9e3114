package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"medibook-service/internal/app/config"
	"medibook-service/internal/app/delivery/http/middlewares"
	"medibook-service/internal/app/delivery/http/routers"
	"medibook-service/internal/app/drivers/database"
	"medibook-service/internal/app/drivers/logger"
	"medibook-service/internal/app/drivers/messaging"
	"medibook-service/internal/app/services/core/assignments"
	"medibook-service/internal/app/services/core/availability"
	"medibook-service/internal/app/services/core/templates"
	"medibook-service/internal/app/services/core/unavailability"
	"medibook-service/internal/app/services/shared/bookings"
	"medibook-service/internal/app/services/shared/counters"
	"medibook-service/internal/app/services/shared/publisher"
	sharedredis "medibook-service/internal/app/services/shared/redis"

	"github.com/go-chi/chi/v5"
	"github.com/sirupsen/logrus"
	"go.uber.org/zap"
)

func main() {
	driverConfig := config.NewDriverConfig()
	internalConfig := config.NewInternalConfig()

	logger.InitLogrus(internalConfig)
	zapLogger := logger.NewZapLogger(driverConfig, internalConfig)

	location, err := time.LoadLocation(internalConfig.App.Timezone)
	if err != nil {
		logrus.Fatalf("Error loading location: %v", err)
	}
	time.Local = location

	mongoDB := database.NewMongoDB(driverConfig)
	redisClient := database.NewRedisClient(driverConfig)
	rabbitMQ := messaging.NewRabbitMQ(driverConfig)
	chiRouter := chi.NewRouter()

	bootstrap := &config.Bootstrap{
		Router:         chiRouter,
		MongoDB:        mongoDB,
		Redis:          redisClient,
		RabbitMQ:       rabbitMQ,
		Logger:         zapLogger,
		InternalConfig: internalConfig,
		DriverConfig:   driverConfig,
	}
	bootstrapTheApp(bootstrap)

	server := &http.Server{
		Addr:    internalConfig.App.Port,
		Handler: chiRouter,
	}

	go func() {
		err := server.ListenAndServe()
		if err != nil && err != http.ErrServerClosed {
			logrus.Fatalf("Server failed to start: %v", err)
		}
	}()

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)
	<-c

	logrus.Println("Waiting for pending requests to be processed..")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Second*time.Duration(internalConfig.App.ShutdownTimeout),
	)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logrus.Fatalf("Server forced to shutdown: %v", err)
	}
	if err := bootstrap.Shutdown(shutdownCtx); err != nil {
		logrus.Fatalf("Failed to release resources: %v", err)
	}

	logrus.Println("Server exiting")
}

func bootstrapTheApp(bootstrap *config.Bootstrap) {
	dbName := bootstrap.DriverConfig.MongoDB.DbName

	// Shared collaborators
	redisRepository := sharedredis.NewRedisRepository(bootstrap.Redis)
	counterRepository := counters.NewCounterMongoRepository(bootstrap.MongoDB, dbName)
	bookingRepository := bookings.NewBookingMongoRepository(bootstrap.MongoDB, dbName)

	eventPublisher, err := publisher.NewRabbitMQPublisher(bootstrap.RabbitMQ, bootstrap.Logger)
	if err != nil {
		logrus.Fatalf("Failed to initialize lifecycle event publisher: %v", err)
	}

	// Middlewares
	m := middlewares.NewMiddlewares(bootstrap.Logger, bootstrap.InternalConfig)

	// Slot templates
	templateRepository := templates.NewTemplateMongoRepository(bootstrap.MongoDB, dbName)

	// Assignments
	assignmentRepository := assignments.NewAssignmentMongoRepository(bootstrap.MongoDB, dbName)
	assignmentUsecase := assignments.NewAssignmentUsecase(
		assignmentRepository,
		templateRepository,
		bookingRepository,
		counterRepository,
		bootstrap.Logger,
	)
	assignmentController := assignments.NewAssignmentController(bootstrap.Logger, assignmentUsecase)

	templateUsecase := templates.NewTemplateUsecase(
		templateRepository,
		counterRepository,
		redisRepository,
		assignmentUsecase,
		eventPublisher,
		bootstrap.Logger,
	)
	templateController := templates.NewTemplateController(bootstrap.Logger, templateUsecase)

	// Unavailability ledger
	unavailabilityRepository := unavailability.NewUnavailabilityMongoRepository(bootstrap.MongoDB, dbName)
	unavailabilityUsecase := unavailability.NewUnavailabilityUsecase(
		unavailabilityRepository,
		counterRepository,
		redisRepository,
		bootstrap.Logger,
	)
	unavailabilityController := unavailability.NewUnavailabilityController(bootstrap.Logger, unavailabilityUsecase)

	// Availability aggregation
	slotGenerator := availability.NewSlotGenerator(unavailabilityUsecase)
	availabilityUsecase := availability.NewAvailabilityUsecase(
		templateRepository,
		bookingRepository,
		redisRepository,
		slotGenerator,
		bootstrap.InternalConfig.App.AvailabilityWindowDays,
		time.Duration(bootstrap.InternalConfig.App.AvailabilityCacheTTLInSeconds)*time.Second,
		bootstrap.Logger,
	)
	availabilityController := availability.NewAvailabilityController(bootstrap.Logger, availabilityUsecase)

	// Broker-driven assignment sync worker
	syncWorker, err := assignments.NewSyncWorker(bootstrap.RabbitMQ, assignmentUsecase, bootstrap.Logger)
	if err != nil {
		logrus.Fatalf("Failed to initialize assignment sync worker: %v", err)
	}
	workerCtx, stopWorker := context.WithCancel(context.Background())
	go func() {
		if err := syncWorker.Run(workerCtx); err != nil && err != context.Canceled {
			bootstrap.Logger.Error("assignment sync worker stopped", zap.Error(err))
		}
	}()
	bootstrap.WorkerStop = stopWorker

	routers.SetupRoutes(
		bootstrap.Router,
		bootstrap.InternalConfig,
		m,
		templateController,
		unavailabilityController,
		availabilityController,
		assignmentController,
	)
}
