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

	"scent-store-api/internal/auth"
	"scent-store-api/internal/client"
	"scent-store-api/internal/config"
	"scent-store-api/internal/repository"
	"scent-store-api/internal/server"
	"scent-store-api/internal/service"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"
)

func main() {
	// load .env into os.Environ
	if err := godotenv.Load(); err != nil {
		fmt.Println("No .env file found (ok in prod)")
	}

	cfg := &config.Config{}
	if err := env.Parse(cfg); err != nil {
		fmt.Printf("Failed to parse config: %v\n", err)
		os.Exit(1)
	}

	db := client.InitDBClient(cfg.Database)

	catalogRepo := repository.NewCatalogRepository(db)
	promoRepo := repository.NewPromoRepository(db)
	cartRepo := repository.NewCartRepository(db)
	orderRepo := repository.NewOrderRepository(db)
	reviewRepo := repository.NewReviewRepository(db)
	blogRepo := repository.NewBlogRepository(db)
	customerRepo := repository.NewCustomerRepository(db)

	if cfg.SeedSampleData {
		if err := repository.SeedSampleData(db); err != nil {
			log.Fatal("seed sample data:", err)
		}
	}

	tokens := auth.NewTokenIssuer(cfg.Auth.JWTSecret, time.Duration(cfg.Auth.TokenTTLHrs)*time.Hour)

	srv := server.NewServer(server.Deps{
		CartService:     service.NewCartService(cartRepo, catalogRepo, promoRepo),
		CheckoutService: service.NewCheckoutService(db, cartRepo, catalogRepo, promoRepo, orderRepo),
		CatalogService:  service.NewCatalogService(catalogRepo),
		ContentService:  service.NewContentService(reviewRepo, blogRepo, catalogRepo),
		AccountService:  service.NewAccountService(customerRepo, tokens),
		PromoService:    service.NewPromoService(promoRepo),
		OrderRepo:       orderRepo,
		ReviewRepo:      reviewRepo,
		Tokens:          tokens,
		OperatorAPIKey:  cfg.OperatorAPIKey,
	})

	serverAddr := cfg.HTTP.Host + ":" + cfg.HTTP.Port

	log.Println("Starting HTTP server on", serverAddr)
	go func() {
		if err := srv.Start(serverAddr); err != nil && err != http.ErrServerClosed {
			log.Fatal("HTTP server error")
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGTERM, syscall.SIGINT)

	<-sigChan
	log.Println("Signal received, starting graceful shutdown...")

	_, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(); err != nil {
		log.Fatal("HTTP server shutdown error")
	}
}
