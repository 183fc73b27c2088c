package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/SangwanNishant/Ecommerce-Chat-Bot--Internship-Assign/internal/auth"
	"github.com/SangwanNishant/Ecommerce-Chat-Bot--Internship-Assign/internal/cache"
	"github.com/SangwanNishant/Ecommerce-Chat-Bot--Internship-Assign/internal/catalog"
	"github.com/SangwanNishant/Ecommerce-Chat-Bot--Internship-Assign/internal/chat"
	"github.com/SangwanNishant/Ecommerce-Chat-Bot--Internship-Assign/internal/config"
	"github.com/SangwanNishant/Ecommerce-Chat-Bot--Internship-Assign/internal/database"
	"github.com/SangwanNishant/Ecommerce-Chat-Bot--Internship-Assign/internal/events"
	"github.com/SangwanNishant/Ecommerce-Chat-Bot--Internship-Assign/internal/handlers"
	"github.com/SangwanNishant/Ecommerce-Chat-Bot--Internship-Assign/internal/idgen"
	"github.com/SangwanNishant/Ecommerce-Chat-Bot--Internship-Assign/internal/logger"
	"github.com/SangwanNishant/Ecommerce-Chat-Bot--Internship-Assign/internal/middleware"
	"github.com/SangwanNishant/Ecommerce-Chat-Bot--Internship-Assign/internal/purchase"
	"github.com/SangwanNishant/Ecommerce-Chat-Bot--Internship-Assign/internal/redis"
	"github.com/SangwanNishant/Ecommerce-Chat-Bot--Internship-Assign/internal/storage"
)

func main() {
	log := logger.New("server")
	ctx := context.Background()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load config: %v", err)
	}

	if cfg.Auth.SecretIsDefault {
		log.Warn("JWT_SECRET not set, using default (insecure for production)")
	}

	dbManager, err := database.NewDBManager(ctx, database.Config{
		PrimaryDSN:      cfg.Database.PrimaryDSN,
		ReplicaDSNs:     cfg.Database.ReplicaDSNs,
		MaxConns:        cfg.Database.MaxConns,
		MinConns:        cfg.Database.MinConns,
		MaxConnLifetime: cfg.Database.MaxConnLifetime,
		MaxConnIdleTime: cfg.Database.MaxConnIdleTime,
	})
	if err != nil {
		log.Fatal("Failed to connect to database: %v", err)
	}
	defer dbManager.Close()

	productStore := storage.NewPostgresStorage(dbManager)
	userStore := storage.NewUserStorage(dbManager)

	// Redis powers the product cache, the login rate limiter and the
	// chat event stream. The server still works without it.
	var (
		productCache *cache.Cache
		producer     *events.ChatProducer
		rateLimiter  *middleware.RateLimiter
	)
	redisClient, err := redis.NewRedisClient(ctx, redis.Config{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	if err != nil {
		log.Warn("Redis unavailable, running without cache, rate limits and events: %v", err)
	} else {
		defer redisClient.Close()
		productCache = cache.NewMultiTierCache(cfg.Cache.L1Capacity, redisClient.GetClient(), cfg.Cache.L2TTL)
		producer = events.NewChatProducer(redisClient.GetClient(), cfg.Redis.StreamName)
		rateLimiter = middleware.NewRateLimiter(redisClient.GetClient(), cfg.RateLimit.Requests, cfg.RateLimit.Window)
	}

	orderIDGen, err := idgen.NewGenerator(cfg.Snowflake.DatacenterID, cfg.Snowflake.WorkerID)
	if err != nil {
		log.Fatal("Failed to create order id generator: %v", err)
	}

	jwtManager := auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.TokenDuration)
	catalogService := catalog.NewService(productStore, productCache)
	chatService := chat.NewService(catalogService)
	validator := purchase.NewValidator(catalogService, orderIDGen)

	authHandler := handlers.NewAuthHandler(userStore, jwtManager, cfg.Server.IsProduction())
	chatHandler := handlers.NewChatHandler(chatService, producer)
	purchaseHandler := handlers.NewPurchaseHandler(validator, producer)
	authMiddleware := middleware.NewAuthMiddleware(jwtManager)

	login := http.HandlerFunc(authHandler.Login)
	if rateLimiter != nil {
		login = rateLimiter.Middleware(authHandler.Login)
	}

	mux := http.NewServeMux()
	mux.Handle("/api/auth/login", login)
	mux.HandleFunc("/api/auth/logout", authMiddleware.RequireAuth(authHandler.Logout))
	mux.HandleFunc("/api/chat", authMiddleware.RequireAuth(chatHandler.Chat))
	mux.HandleFunc("/api/purchase", authMiddleware.RequireAuth(purchaseHandler.Purchase))

	server := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      mux,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	go func() {
		log.Info("Listening on :%s", cfg.Server.Port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Server error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")
	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error("Shutdown error: %v", err)
	}
	log.Info("Server stopped")
}
