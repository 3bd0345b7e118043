package main

import (
	"context"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "nft-treasury-backend/docs"
	"nft-treasury-backend/internal/common/config"
	"nft-treasury-backend/internal/common/logger"
	"nft-treasury-backend/internal/common/middleware"
	membershiphttp "nft-treasury-backend/internal/features/membership/delivery/http"
	"nft-treasury-backend/internal/features/membership/repository"
	memoryrepo "nft-treasury-backend/internal/features/membership/repository/memory"
	postgresrepo "nft-treasury-backend/internal/features/membership/repository/postgres"
	redisrepo "nft-treasury-backend/internal/features/membership/repository/redis"
	membershipservice "nft-treasury-backend/internal/features/membership/service"
	perkshttp "nft-treasury-backend/internal/features/perks/delivery/http"
	perksservice "nft-treasury-backend/internal/features/perks/service"
	pinninghttp "nft-treasury-backend/internal/features/pinning/delivery/http"
	pinningservice "nft-treasury-backend/internal/features/pinning/service"
	"nft-treasury-backend/internal/platform/db"
	"nft-treasury-backend/internal/platform/mail"
	"nft-treasury-backend/internal/platform/pinata"
	redisplatform "nft-treasury-backend/internal/platform/redis"
	"nft-treasury-backend/internal/service/notifications"
)

// @title           NFT Treasury API
// @version         1.0
// @description     Backend for the NFT Treasury marketplace: BitBadges claim webhook, membership benefit queries, IPFS pinning proxy and Gold VIP perks.

// @host      localhost:3001
// @BasePath  /api

// @tag.name membership
// @tag.description Claim webhook ingestion and benefit queries

// @tag.name perks
// @tag.description Gold VIP events, airdrops, analytics and Discord invites

// @tag.name pinning
// @tag.description IPFS pin proxy (Pinata)

func main() {
	cfg := config.Load()
	logger.Init("nft-treasury-backend", cfg.Debug)

	// Cancellable root context for graceful shutdown.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	memberRepo, closeStore := buildMembershipRepository(ctx, cfg)
	defer closeStore()

	var sender mail.Sender
	if s, err := mail.NewSMTPSender(cfg.Mail.SMTPHost, cfg.Mail.SMTPPort, cfg.Mail.User, cfg.Mail.Password); err != nil {
		logger.Warn().Err(err).Msg("Mail transport disabled")
	} else {
		sender = s
	}
	notifier := notifications.NewService(sender, cfg.WebAppURL)

	pinataClient := pinata.NewClient(cfg.Pinata.JWT, cfg.Pinata.Gateway)

	membershipSvc := membershipservice.NewMembershipService(memberRepo, notifier, cfg.Webhook.SharedSecret)
	perksSvc := perksservice.NewPerksService(memberRepo, pinataClient, notifier)
	pinningSvc := pinningservice.NewPinningService(pinataClient)

	if !cfg.Debug {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(middleware.RequestID(), middleware.Logger(), gin.Recovery())

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = []string{cfg.Server.Origin}
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Content-Type", "Authorization", "Accept"}
	router.Use(cors.New(corsConfig))

	api := router.Group("/api")
	membershiphttp.NewMembershipHandler(membershipSvc).RegisterRoutes(api)
	perkshttp.NewPerksHandler(perksSvc).RegisterRoutes(api)
	pinninghttp.NewPinningHandler(pinningSvc).RegisterRoutes(api)

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":    "ok",
			"timestamp": time.Now().UTC(),
			"service":   "nft-treasury-backend",
		})
	})

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info().Int("port", cfg.Server.Port).Msg("HTTP server listening")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal().Err(err).Msg("Failed to start server")
		}
	}()

	<-ctx.Done()
	logger.Info().Msg("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error().Err(err).Msg("Server forced to shutdown")
	}

	logger.Info().Msg("Server exited")
}

// buildMembershipRepository selects the store backend. Memory is the
// default; Redis and Postgres give the Benefit Query API durable,
// instance-shared state.
func buildMembershipRepository(ctx context.Context, cfg *config.Config) (repository.MembershipRepository, func()) {
	switch cfg.Store.Backend {
	case "redis":
		rdb, err := redisplatform.Open(ctx, cfg.Store.RedisAddr, cfg.Store.RedisPassword, cfg.Store.RedisDB)
		if err != nil {
			logger.Fatal().Err(err).Msg("Failed to connect to Redis")
		}
		logger.Info().Str("addr", cfg.Store.RedisAddr).Msg("Using Redis membership store")
		return redisrepo.NewMembershipRepository(rdb.Client), func() { _ = rdb.Close() }

	case "postgres":
		pg, err := db.Open(ctx, cfg.Store.DatabaseURL)
		if err != nil {
			logger.Fatal().Err(err).Msg("Failed to connect to Postgres")
		}
		if err := postgresrepo.Migrate(ctx, pg); err != nil {
			logger.Fatal().Err(err).Msg("Failed to migrate memberships schema")
		}
		logger.Info().Msg("Using Postgres membership store")
		return postgresrepo.NewMembershipRepository(pg), func() { _ = pg.Close() }

	default:
		logger.Info().Msg("Using in-memory membership store")
		return memoryrepo.NewMembershipRepository(), func() {}
	}
}
