package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/gharseva/provider-portal/internal/api"
	"github.com/gharseva/provider-portal/internal/backend"
	"github.com/gharseva/provider-portal/internal/config"
	"github.com/gharseva/provider-portal/internal/core"
	"github.com/gharseva/provider-portal/internal/gateway/razorpay"
	"github.com/gharseva/provider-portal/internal/middleware"
	"github.com/gharseva/provider-portal/internal/session"
)

func main() {
	// .env is a local convenience; in deployment everything comes from the
	// real environment.
	_ = godotenv.Load()

	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("failed to initialize zap logger: %v", err)
	}
	defer logger.Sync()

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("failed to load configuration", zap.Error(err))
	}
	logger.Info("configuration loaded",
		zap.String("apiBaseURL", cfg.APIBaseURL),
		zap.Duration("apiTimeout", cfg.APITimeout),
		zap.Bool("checkoutConfigured", cfg.RazorpayKeyID != ""))

	// Wiring: backend client -> services -> purchase flow -> handlers.
	apiClient := backend.New(cfg.APIBaseURL, cfg.APITimeout, logger)
	store := session.NewStore([]byte(cfg.CookieHashKey), []byte(cfg.CookieBlockKey), cfg.CookieSecure)

	authService := core.NewAuthService(apiClient, logger)
	profileService := core.NewProfileService(apiClient, logger)
	subscriptionService := core.NewSubscriptionService(apiClient, logger)
	checkout := razorpay.New(cfg.RazorpayKeyID)
	flow := core.NewFlow(profileService, subscriptionService, checkout, logger)

	if strings.ToLower(cfg.GinMode) == "release" {
		gin.SetMode(gin.ReleaseMode)
	} else {
		gin.SetMode(gin.DebugMode)
	}

	router := gin.New()
	router.SetFuncMap(api.TemplateFuncs())
	router.LoadHTMLGlob(cfg.TemplatesGlob)
	if cfg.StaticDir != "" {
		router.Static("/static", cfg.StaticDir)
	}

	router.Use(middleware.RequestLogger(logger))
	router.Use(middleware.Recovery(logger))
	if cfg.ClientURL != "" {
		router.Use(middleware.CORS(cfg))
	}
	router.Use(middleware.LoadState(store))

	api.SetupRoutes(router, api.Handlers{
		Pages:         api.NewPageHandler(flow, profileService, store, logger),
		Auth:          api.NewAuthHandler(authService, store, logger),
		Profile:       api.NewProfileHandler(profileService, store, logger),
		Subscriptions: api.NewSubscriptionHandler(flow, profileService, store, logger),
	}, store, authService)

	httpServer := &http.Server{
		Addr:    fmt.Sprintf(":%s", cfg.Port),
		Handler: router,
	}

	go func() {
		logger.Info("starting HTTP server", zap.String("address", httpServer.Addr), zap.String("ginMode", gin.Mode()))
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("failed to start HTTP server", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit
	logger.Info("received shutdown signal", zap.String("signal", sig.String()))

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown was not graceful", zap.Error(err))
	}
	logger.Info("server stopped")
}
