package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"astroleap/internal/app"
	"astroleap/internal/config"
	"astroleap/internal/database"
	"astroleap/pkg/mailer"
	"astroleap/pkg/paypal"
	"astroleap/pkg/rabbitmq"
	"astroleap/pkg/redisstore"

	"github.com/redis/go-redis/v9"
)

func main() {
	// --- Configuration ---
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// --- Database ---
	db, err := database.Open(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer func() {
		if err := database.Close(db); err != nil {
			log.Printf("Error closing database: %v", err)
		}
	}()
	if cfg.DBAutoMigrate {
		if err := database.Migrate(db); err != nil {
			log.Fatalf("Failed to migrate database: %v", err)
		}
	}

	deps := app.Deps{
		DB: db,
		Gateway: paypal.NewClient(paypal.Config{
			ClientID:     cfg.PayPalClientID,
			ClientSecret: cfg.PayPalClientSecret,
			APIBase:      cfg.PayPalAPIBase,
			ReturnURL:    cfg.PayPalReturnURL,
			CancelURL:    cfg.PayPalCancelURL,
			BrandName:    cfg.PayPalBrandName,
			Timeout:      cfg.PayPalHTTPTimeout,
		}),
		Mailer: mailer.New(mailer.Config{
			Host:     cfg.SMTPHost,
			Port:     cfg.SMTPPort,
			From:     cfg.EmailFrom,
			Password: cfg.EmailPassword,
		}),
	}
	if cfg.PayPalHTTPTimeout == 0 {
		log.Println("Warning: PAYPAL_HTTP_TIMEOUT is 0, gateway calls have no timeout")
	}

	// --- Optional Redis store for the rate limiter ---
	if cfg.RedisAddr != "" {
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		if err := client.Ping(context.Background()).Err(); err != nil {
			log.Printf("Warning: Redis unavailable at %s, rate limiter stays in memory: %v", cfg.RedisAddr, err)
			client.Close()
		} else {
			store := redisstore.New(client, "astroleap:limiter:")
			defer store.Close()
			deps.LimiterStorage = store
			log.Printf("Rate limiter counters kept in Redis at %s", cfg.RedisAddr)
		}
	}

	// --- Optional RabbitMQ order events ---
	if cfg.RabbitMQURL != "" {
		mqClient, err := rabbitmq.NewClient(rabbitmq.Config{URL: cfg.RabbitMQURL, Queue: cfg.RabbitMQQueue})
		if err != nil {
			log.Printf("Warning: order events disabled: %v", err)
		} else {
			defer mqClient.Close()
			deps.Publisher = mqClient
		}
	} else {
		log.Println("RABBITMQ_URL is not set. Order events will not be published.")
	}

	application := app.New(cfg, deps)

	// --- Start HTTP Server ---
	log.Printf("Starting server on port %s", cfg.AppPort)

	// Graceful shutdown handling
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		if err := application.Listen(cfg.AppPort); err != nil {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	<-quit
	log.Println("Shutting down server...")

	if err := application.Shutdown(); err != nil {
		log.Printf("Error during Fiber shutdown: %v", err)
	}

	log.Println("Server gracefully stopped")
}
