package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"kairo/backend/internal/config"
	"kairo/backend/internal/httpserver"
	"kairo/backend/internal/infrastructure/password"
	"kairo/backend/internal/infrastructure/postgres"
	"kairo/backend/internal/infrastructure/token"
	authusecase "kairo/backend/internal/usecase/auth"
	customerusecase "kairo/backend/internal/usecase/customer"
	invoiceusecase "kairo/backend/internal/usecase/invoice"
	productusecase "kairo/backend/internal/usecase/product"
	stockusecase "kairo/backend/internal/usecase/stock"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	rootCtx := context.Background()
	db, err := postgres.New(rootCtx, cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}
	defer db.Close()
	if err := db.Migrate(rootCtx); err != nil {
		log.Fatalf("failed to run database migrations: %v", err)
	}

	tokenManager := token.NewJWTManager(cfg.JWTSecret, cfg.JWTExpiry, cfg.JWTIssuer)
	hasher := password.NewBcryptHasher()

	userRepo := postgres.NewUserRepository(db.Pool)
	customerRepo := postgres.NewCustomerRepository(db.Pool)
	productRepo := postgres.NewProductRepository(db.Pool)
	stockRepo := postgres.NewStockRepository(db.Pool)
	issuedRepo := postgres.NewIssuedInvoiceRepository(db.Pool)
	receivedRepo := postgres.NewReceivedInvoiceRepository(db.Pool)

	authService := authusecase.NewService(userRepo, hasher, tokenManager)
	customerService := customerusecase.NewService(customerRepo)
	productService := productusecase.NewService(productRepo)
	stockService := stockusecase.NewService(stockRepo, productRepo)
	invoiceService := invoiceusecase.NewService(issuedRepo, receivedRepo, customerRepo)

	server := httpserver.NewServer(cfg, authService, customerService, productService, stockService, invoiceService)
	log.Printf("HTTP server listening on %s", server.Addr())

	go func() {
		if err := server.Start(); err != nil {
			if errors.Is(err, http.ErrServerClosed) {
				log.Printf("HTTP server closed: %v", err)
				return
			}
			log.Fatalf("server error: %v", err)
		}
		log.Printf("HTTP server stopped accepting new connections")
	}()

	shutdownCtx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	<-shutdownCtx.Done()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		log.Printf("graceful shutdown failed: %v\n", err)
	} else {
		log.Printf("graceful shutdown completed")
	}
}
