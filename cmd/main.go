package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"time"

	muxhandlers "github.com/gorilla/handlers"

	"github.com/markjakearzadon/urbanoasis-gobackend/internal/config"
	"github.com/markjakearzadon/urbanoasis-gobackend/internal/db"
	"github.com/markjakearzadon/urbanoasis-gobackend/internal/handlers"
	"github.com/markjakearzadon/urbanoasis-gobackend/internal/services"
)

func main() {
	cfg, err := config.Load(".env")
	if err != nil {
		log.Fatal(err)
	}

	client, err := db.Connect(context.Background(), cfg.MongoURI)
	if err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}
	defer db.Disconnect(client)

	database := client.Database(cfg.DBName)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	if err := db.EnsureIndexes(ctx, database); err != nil {
		log.Printf("Warning: %v", err)
	}
	cancel()

	var properties services.PropertyStore = services.NewPropertyService(database)
	if cfg.RedisAddr != "" {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		rdb, err := services.NewRedisClient(ctx, cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
		cancel()
		if err != nil {
			log.Printf("Warning: Redis unavailable, listing cache disabled: %v", err)
		} else {
			defer rdb.Close()
			properties = services.NewCachedPropertyStore(properties, rdb, cfg.CacheTTL)
		}
	}

	stores := handlers.Stores{
		Users:      services.NewUserService(database),
		Properties: properties,
		Wishes:     services.NewWishService(database),
		Offers:     services.NewOfferService(database),
		Reviews:    services.NewReviewService(database),
	}
	tokens := services.NewTokenService(cfg.TokenSecret)
	gateway := services.NewStripeGateway(cfg.StripeSecretKey, cfg.StripeBaseURL)

	router := handlers.NewRouter(stores, tokens, gateway, handlers.Options{
		StrictAuth:  cfg.StrictAuth,
		CORSOrigins: cfg.CORSOrigins,
	})
	if !cfg.StrictAuth {
		log.Println("Warning: STRICT_AUTH is off, mutating routes are public")
	}

	server := &http.Server{
		Addr:         "0.0.0.0:" + cfg.Port,
		Handler:      muxhandlers.CombinedLoggingHandler(os.Stdout, router),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	}
	log.Printf("Urban Oasis Server is running at %s", cfg.Port)
	if err := server.ListenAndServe(); err != nil {
		log.Printf("Server stopped: %v", err)
	}
}
