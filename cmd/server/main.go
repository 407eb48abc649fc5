package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"hwidstore/internal/api"
	"hwidstore/internal/factory"
	"hwidstore/internal/services/auth"
	filestorage "hwidstore/internal/storage/file"
	redisstorage "hwidstore/internal/storage/redis"
)

func main() {
	// Set up logging with JSON output
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	apiKey := os.Getenv("API_KEY")
	if apiKey == "" {
		logger.Error("API_KEY must be set")
		os.Exit(1)
	}

	// Build factory config from environment
	cfg := factory.Config{
		AuthConfig: auth.Config{
			APIKey:   apiKey,
			AdminKey: os.Getenv("ADMIN_KEY"),
		},
		Logger:      logger,
		StorageType: os.Getenv("STORAGE_TYPE"),
	}

	// Configure the selected storage backend
	switch cfg.StorageType {
	case factory.StorageTypeRedis:
		redisURL := os.Getenv("REDIS_URL")
		if redisURL == "" {
			logger.Error("REDIS_URL required when STORAGE_TYPE=redis")
			os.Exit(1)
		}
		redisCfg := redisstorage.DefaultConfig()
		redisCfg.URL = redisURL
		cfg.RedisConfig = &redisCfg
	case factory.StorageTypeFile, "":
		fileCfg := filestorage.DefaultConfig()
		if path := os.Getenv("DATABASE_FILE"); path != "" {
			fileCfg.Path = path
		}
		if path := os.Getenv("ALLOWLIST_FILE"); path != "" {
			fileCfg.AllowlistPath = path
		}
		cfg.FileConfig = &fileCfg
	}

	// Create application factory
	app, err := factory.New(cfg)
	if err != nil {
		logger.Error("failed to create application", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Create API router
	router := api.NewRouter(api.RouterConfig{
		Logger:           logger,
		AuthService:      app.AuthService,
		Registry:         app.Registry,
		AllowlistService: app.AllowlistService,
		StatsService:     app.StatsService,
		Clock:            app.Clock,
	})

	// Create server
	serverConfig := api.DefaultServerConfig()
	if portStr := os.Getenv("PORT"); portStr != "" {
		port, err := strconv.Atoi(portStr)
		if err != nil {
			logger.Error("invalid PORT", slog.String("value", portStr))
			os.Exit(1)
		}
		serverConfig.Port = port
	}
	server := api.NewServer(router, serverConfig, logger)

	// Handle graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		<-sigCh
		logger.Info("shutdown signal received")
		cancel()
	}()

	// Start server in goroutine
	errCh := make(chan error, 1)
	go func() {
		errCh <- server.Start()
	}()

	logger.Info("server started", slog.String("addr", server.Addr()))

	// Wait for shutdown or error
	select {
	case err := <-errCh:
		if err != nil {
			logger.Error("server error", slog.String("error", err.Error()))
			os.Exit(1)
		}
	case <-ctx.Done():
		if err := server.Shutdown(context.Background()); err != nil {
			logger.Error("shutdown error", slog.String("error", err.Error()))
			os.Exit(1)
		}
	}

	logger.Info("server stopped")
}
