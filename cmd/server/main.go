package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/joho/godotenv"

	"github.com/shorajtomer/portfolio-backend/internal/config"
	"github.com/shorajtomer/portfolio-backend/internal/handler"
	appMiddleware "github.com/shorajtomer/portfolio-backend/internal/middleware"
	"github.com/shorajtomer/portfolio-backend/internal/repository"
	"github.com/shorajtomer/portfolio-backend/internal/service"
	"github.com/shorajtomer/portfolio-backend/pkg/payment"
)

func main() {
	// Load .env file if present (for local development)
	_ = godotenv.Load()

	cfg := config.Load()

	ctx := context.Background()

	// Initialize database
	db, err := repository.NewDB(ctx, cfg.MongoURL)
	if err != nil {
		log.Fatalf("database error: %v", err)
	}
	defer db.Disconnect(context.Background())

	database := db.Database(cfg.DBName)
	courseRepo := repository.NewCourseRepository(database)
	txRepo := repository.NewTransactionRepository(database)
	log.Println("database connected")

	// Payment gateway (nil when the key is absent; payment endpoints then 500)
	var gateway payment.Gateway
	if cfg.StripeAPIKey != "" {
		gateway = payment.NewStripeGateway(cfg.StripeAPIKey, cfg.StripeWebhookSecret)
	} else {
		log.Println("STRIPE_API_KEY not set, payment endpoints disabled")
	}

	// Initialize services
	catalogSvc := service.NewCatalogService(courseRepo)
	checkoutSvc := service.NewCheckoutService(courseRepo, txRepo, gateway)

	// Seed sample courses on first startup
	if err := catalogSvc.Seed(ctx); err != nil {
		log.Fatalf("seed error: %v", err)
	}

	// Initialize handlers
	catalogHandler := handler.NewCatalogHandler(catalogSvc)
	paymentHandler := handler.NewPaymentHandler(checkoutSvc)
	webhookHandler := handler.NewWebhookHandler(checkoutSvc)
	healthHandler := handler.NewHealthHandler(db)

	// Build router
	r := chi.NewRouter()

	// Global middleware
	r.Use(appMiddleware.Recovery)
	r.Use(appMiddleware.Logger)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS", "PATCH"},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	// Global rate limiter (20 req/sec per IP, burst of 40)
	globalRL := appMiddleware.NewRateLimiter(20, 40)
	r.Use(globalRL.Middleware())

	r.Get("/", catalogHandler.Root)
	r.Get("/health", healthHandler.Check)
	r.Get("/api/personal-info", catalogHandler.PersonalInfo)
	r.Get("/api/courses", catalogHandler.ListCourses)
	r.Get("/api/courses/{id}", catalogHandler.GetCourse)
	r.Get("/api/packages", catalogHandler.Packages)

	r.Group(func(r chi.Router) {
		r.Use(appMiddleware.StrictRateLimiter())
		r.Post("/api/payments/v1/checkout/session", paymentHandler.CreateCheckout)
	})
	r.Get("/api/payments/v1/checkout/status/{session_id}", paymentHandler.GetStatus)
	r.Post("/api/webhook/stripe", webhookHandler.HandleStripe)

	// Start server
	addr := fmt.Sprintf("0.0.0.0:%d", cfg.Port)
	server := &http.Server{
		Addr:        addr,
		Handler:     r,
		ReadTimeout: 30 * time.Second,
		IdleTimeout: 120 * time.Second,
	}

	// Graceful shutdown
	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		<-sigCh

		log.Println("shutting down...")
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		server.Shutdown(ctx)
	}()

	log.Printf("portfolio backend listening at http://%s", addr)
	if err := server.ListenAndServe(); err != http.ErrServerClosed {
		log.Fatalf("server error: %v", err)
	}
}
