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

	"github.com/joho/godotenv"
	"github.com/YuvaneshV12/chrono-gift/internal/config"
	"github.com/YuvaneshV12/chrono-gift/internal/infrastructure/dynamo"
	googleinfra "github.com/YuvaneshV12/chrono-gift/internal/infrastructure/google"
	jwtinfra "github.com/YuvaneshV12/chrono-gift/internal/infrastructure/jwt"
	s3infra "github.com/YuvaneshV12/chrono-gift/internal/infrastructure/s3"
	"github.com/YuvaneshV12/chrono-gift/internal/infrastructure/smtp"
	transporthttp "github.com/YuvaneshV12/chrono-gift/internal/transport/http"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, reading from environment")
	}

	cfg := config.Load()

	// Bootstrap DynamoDB tables (creates them if they don't exist).
	dynamoClient := dynamo.NewClient(cfg)
	dynamo.Bootstrap(context.Background(), dynamoClient, cfg.DynamoTables)

	// JWT provider is optional; the public gift flow works without it.
	var jwtProvider *jwtinfra.Provider
	if p, err := jwtinfra.NewProvider(cfg); err == nil {
		jwtProvider = p
	} else {
		log.Printf("WARN: JWT provider not available: %v", err)
	}

	// S3 media store.
	s3Client := s3infra.NewClient(cfg)
	mediaStore := s3infra.NewStore(s3Client, cfg.S3BucketName)

	deps := &transporthttp.Deps{
		UserRepo:        dynamo.NewUserRepo(dynamoClient, cfg.DynamoTables.Users),
		GiftRepo:        dynamo.NewGiftRepo(dynamoClient, cfg.DynamoTables.Gifts),
		TransactionRepo: dynamo.NewTransactionRepo(dynamoClient, cfg.DynamoTables.Transactions),
		MessageRepo:     dynamo.NewMessageRepo(dynamoClient, cfg.DynamoTables.GiftMessages),
		MediaStore:      mediaStore,
		Mailer:          smtp.NewMailer(cfg),
		GoogleVerifier:  googleinfra.NewVerifier(cfg.GoogleClientID, cfg.GoogleUserinfoURL),
		JWTProvider:     jwtProvider,
	}

	router := transporthttp.NewRouter(cfg, deps)

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.AppPort),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Printf("Server starting on :%s (env=%s)", cfg.AppPort, cfg.AppEnv)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("forced shutdown: %v", err)
	}
	log.Println("Server stopped")
}
