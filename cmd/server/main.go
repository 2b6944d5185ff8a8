package main

import (
	"context"
	"database/sql"
	"net/http"
	"os"
	"os/signal"
	"time"

	_ "github.com/lib/pq"

	"newsletter/config"
	emailadapter "newsletter/internal/adapters/email"
	delivery "newsletter/internal/delivery/http"
	"newsletter/internal/delivery/http/controllers"
	"newsletter/internal/delivery/http/middleware"
	"newsletter/internal/repository/postgres"
	"newsletter/internal/services"
)

// main wires dependencies and keeps the server lifecycle small.
// Business logic lives in internal/services.
func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}
	logger := config.NewLogger()

	db, err := sql.Open("postgres", cfg.DBUrl)
	if err != nil {
		logger.Error("failed to open database", "err", err)
		os.Exit(1)
	}
	defer db.Close()
	if err := db.Ping(); err != nil {
		logger.Error("database unreachable", "err", err)
		os.Exit(1)
	}

	mailer, err := emailadapter.NewMailer(logger, emailadapter.MailerConfig{
		Provider:    cfg.Email.Provider,
		FromAddress: cfg.Email.FromAddress,
		FromName:    cfg.Email.FromName,
		SES: emailadapter.SESConfig{
			Region:             cfg.Email.SESRegion,
			AccessKeyID:        cfg.Email.SESAccessKeyID,
			SecretAccessKey:    cfg.Email.SESSecretAccessKey,
			InsecureSkipVerify: cfg.Email.SESInsecureSkipVerify,
		},
	})
	if err != nil {
		logger.Error("failed to create mailer", "err", err)
		os.Exit(1)
	}

	store := postgres.NewSubscriberStore(db)
	emailService := services.NewEmailService(mailer, emailadapter.NewTemplateRenderer())
	subscriptionService := services.NewSubscriptionService(store, emailService, cfg.BaseURL)

	subscriptionController := controllers.NewSubscriptionController(logger, subscriptionService)
	healthController := controllers.NewHealthController()

	router := delivery.NewRouter(subscriptionController, healthController)
	var handler http.Handler = middleware.LoggingMiddleware(logger, router)
	if len(cfg.AllowedOrigins) > 0 {
		handler = middleware.CORS(cfg.AllowedOrigins, handler)
	}

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logger.Info("starting server", "port", cfg.Port, "env", cfg.Environment)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server error", "err", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("graceful shutdown failed", "err", err)
	}
}
