package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/eshop-platform/payment-service/internal/app"
	"github.com/eshop-platform/payment-service/internal/broker"
	"github.com/eshop-platform/payment-service/internal/broker/rabbitmq"
	"github.com/eshop-platform/payment-service/internal/catalog"
	"github.com/eshop-platform/payment-service/internal/command"
	"github.com/eshop-platform/payment-service/internal/config"
	"github.com/eshop-platform/payment-service/internal/gateway/stripe"
	"github.com/eshop-platform/payment-service/internal/handler"
	"github.com/eshop-platform/payment-service/internal/logging"
	"github.com/eshop-platform/payment-service/internal/metrics"
	"github.com/eshop-platform/payment-service/internal/middleware"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	log := logging.Init("payment-service", cfg.LogLevel, cfg.AppEnv)

	processor := stripe.NewClient(cfg.StripeAPIBaseURL, cfg.StripeAPIKey, cfg.PaymentRedirectBaseURL)

	state := &app.State{
		CheckoutSessions: command.NewCreateCheckoutSessionHandler(processor),
		ProductPricing:   command.NewCreateProductPricingHandler(processor),
		Catalog:          catalog.NewRegistry(),
		AuthDomain:       cfg.Auth0Domain,
		AuthAudience:     cfg.Auth0Audience,
	}

	m := metrics.New()

	mq, err := rabbitmq.Connect(rabbitmq.Config{
		Host:     cfg.RabbitMQHost,
		Port:     cfg.RabbitMQPort,
		Username: cfg.RabbitMQUsername,
		Password: cfg.RabbitMQPassword,
	}, log)
	if err != nil {
		log.Error("failed to connect to broker", "error", err)
		os.Exit(1)
	}
	defer mq.Close()

	// one long-lived consumer task per queue; a dead subscription is fatal,
	// not restarted
	consumerCtx, stopConsumer := context.WithCancel(context.Background())
	defer stopConsumer()

	dispatcher := broker.NewDispatcher(state, m)
	go func() {
		err := mq.Consume(consumerCtx, broker.ProductCreatedQueue, dispatcher)
		if err != nil && !rabbitmq.IsShutdown(err) {
			log.Error("event consumer terminated", "queue", broker.ProductCreatedQueue, "error", err)
			os.Exit(1)
		}
	}()

	payments := handler.NewPaymentHandler(state.CheckoutSessions, state.ProductPricing)
	authn := middleware.Auth(cfg.JWTSecret, state.AuthDomain, state.AuthAudience)

	mux := http.NewServeMux()
	mux.HandleFunc("GET /{$}", handler.Index)
	mux.HandleFunc("GET /health", handler.Health)
	mux.Handle("GET /metrics", m.Handler())
	mux.Handle("POST /payments/checkout", authn(http.HandlerFunc(payments.CreateCheckoutSession)))
	mux.Handle("POST /products/pricing", authn(http.HandlerFunc(payments.CreateProductPricing)))

	root := middleware.Recovery(
		middleware.RequestID(
			middleware.Logging(
				middleware.Metrics(m)(mux))))

	addr := fmt.Sprintf(":%d", cfg.Port)
	srv := &http.Server{
		Addr:              addr,
		Handler:           root,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		log.Info("server started", "addr", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down")
	stopConsumer()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Error("server forced to shutdown", "error", err)
		os.Exit(1)
	}
	log.Info("server stopped")
}
