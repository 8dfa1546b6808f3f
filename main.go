package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"github.com/spf13/pflag"

	"reservation-service/configs"
	"reservation-service/controllers"
	"reservation-service/i18n"
	"reservation-service/middleware"
	"reservation-service/notify"
	"reservation-service/repository"
	"reservation-service/routes"
	"reservation-service/validation"
)

func main() {
	envFile := pflag.String("env-file", ".env", "dotenv file to load before reading the environment")
	port := pflag.String("port", "", "listen port, overrides PORT")
	pflag.Parse()

	cfg := configs.Load(*envFile)
	if *port != "" {
		cfg.Port = *port
	}

	// Initialize logger first
	configs.InitLogger(cfg.Env)
	logger := configs.LogWithContext("reservation-service", "startup")
	logger.WithFields(logrus.Fields{"env": cfg.Env, "store": cfg.StoreDriver}).Info("Starting reservation service initialization")

	ctx := context.Background()

	store, err := openStore(ctx, cfg, logger)
	if err != nil {
		logger.WithError(err).Fatal("Failed to initialize store")
	}

	catalog, err := i18n.Load(i18n.ParseLocale(cfg.DefaultLocale))
	if err != nil {
		logger.WithError(err).Fatal("Failed to load message catalog")
	}

	var redisClient *redis.Client
	if cfg.RedisURL != "" {
		start := time.Now()
		redisClient, err = configs.ConnectREDISDB(ctx, cfg.RedisURL)
		if err != nil {
			logger.WithError(err).WithField("duration", time.Since(start)).Warn("Redis unavailable, idempotency and event publishing disabled")
		} else {
			logger.WithField("duration", time.Since(start)).Info("Redis connected successfully")
		}
	}

	dispatcher := buildNotifier(ctx, cfg, catalog, redisClient, logger)

	controller := &controllers.Controller{
		Reservations:  store,
		Contacts:      store,
		Store:         store,
		Schema:        validation.NewSchema(cfg.AllowedEmailDomains),
		Notifier:      dispatcher,
		Catalog:       catalog,
		DefaultLocale: catalog.Fallback(),
		DevMode:       cfg.IsDevelopment(),
	}

	var extra []mux.MiddlewareFunc
	if redisClient != nil {
		extra = append(extra, middleware.Idempotency(redisClient, cfg.IdempotencyTTL, catalog, controller.DefaultLocale))
		logger.WithField("ttl", cfg.IdempotencyTTL).Info("Idempotency keys enabled")
	}

	// Register routes with logging
	router := routes.NewRouter(controller, extra...)
	logger.Info("Reservation, contact and health routes registered")

	// Create server with timeouts
	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      middleware.CORS(cfg.CORSAllowedOrigins)(router),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in goroutine
	go func() {
		logger.WithField("port", cfg.Port).Info("Reservation service started")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.WithError(err).Fatal("Failed to start server")
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...")

	// Give outstanding requests 30 seconds to complete
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.WithError(err).Error("Server forced to shutdown")
	} else {
		logger.Info("Server shutdown complete")
	}

	if err := store.Close(shutdownCtx); err != nil {
		logger.WithError(err).Warn("Failed to close store")
	}
	if redisClient != nil {
		if err := redisClient.Close(); err != nil {
			logger.WithError(err).Warn("Failed to close Redis")
		}
	}
}

func openStore(ctx context.Context, cfg *configs.Config, logger *logrus.Entry) (repository.Store, error) {
	start := time.Now()
	switch cfg.StoreDriver {
	case "mongo":
		client, err := configs.ConnectDBWithRetry(ctx, cfg.MongoURI, 5)
		if err != nil {
			return nil, fmt.Errorf("mongodb connection failed: %w", err)
		}
		store := repository.NewMongoStore(client,
			configs.GetCollection(client, cfg.MongoURI, repository.ReservationsCollection),
			configs.GetCollection(client, cfg.MongoURI, repository.ContactsCollection))
		if err := store.EnsureIndexes(ctx); err != nil {
			logger.WithError(err).Warn("Failed to create MongoDB indexes")
		}
		logger.WithField("duration", time.Since(start)).Info("MongoDB store ready")
		return store, nil

	case "postgres":
		db, err := configs.ConnectPSQLDatabase(cfg.DatabaseURL)
		if err != nil {
			return nil, fmt.Errorf("postgresql connection failed: %w", err)
		}
		store := repository.NewPostgresStore(db)
		if err := store.Migrate(ctx); err != nil {
			return nil, fmt.Errorf("postgresql migration failed: %w", err)
		}
		logger.WithField("duration", time.Since(start)).Info("PostgreSQL store ready")
		return store, nil

	case "memory":
		logger.Warn("Using in-memory store, records are lost on restart")
		return repository.NewMemoryStore(), nil
	}
	return nil, fmt.Errorf("unknown STORE_DRIVER %q", cfg.StoreDriver)
}

func buildNotifier(ctx context.Context, cfg *configs.Config, catalog *i18n.Catalog, redisClient *redis.Client, logger *logrus.Entry) *notify.Dispatcher {
	dispatcher := notify.NewDispatcher(configs.LogWithContext("notify", "dispatch"))

	if cfg.MailEnabled() {
		ses, err := configs.ConnectSES(ctx, cfg)
		if err != nil {
			logger.WithError(err).Warn("SES unavailable, email notifications disabled")
		} else {
			templates := map[notify.EventKind]string{
				notify.ReservationCreated: cfg.EmailTemplateReservation,
				notify.ContactReceived:    cfg.EmailTemplateContact,
			}
			staff := catalog.Messages(catalog.Fallback())
			dispatcher.Register("email", notify.NewSESMailer(ses, cfg.EmailFrom, cfg.EmailTo, templates, staff))
		}
	}

	if cfg.SMSEnabled() {
		dispatcher.Register("sms", notify.NewTwilioTexter(cfg.TwilioAccountSID, cfg.TwilioAuthToken, cfg.TwilioFrom, catalog))
	}

	if redisClient != nil {
		dispatcher.Register("redis", notify.NewRedisPublisher(redisClient, cfg.NotificationChannel))
	}

	logger.WithField("channels", dispatcher.Channels()).Info("Notification channels configured")
	return dispatcher
}
