// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package main is the entry point for the ContentHub server.
// It loads configuration, connects to services, sets up routing, and starts
// the HTTP server with graceful shutdown support.
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"contenthub/internal/cache"
	"contenthub/internal/config"
	"contenthub/internal/database"
	"contenthub/internal/handlers"
	"contenthub/internal/logger"
	"contenthub/internal/middleware"
	"contenthub/internal/router"
	"contenthub/internal/seed"
	"contenthub/internal/session"
	"contenthub/internal/sidebar"
)

func main() {
	// Load configuration from .env and environment variables.
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "failed to load configuration:", err)
		os.Exit(2)
	}
	if err := cfg.RequireSessionStore(); err != nil {
		fmt.Fprintln(os.Stderr, "failed to load configuration:", err)
		os.Exit(2)
	}

	log, err := logger.New(logger.Options{Level: cfg.LogLevel, File: cfg.LogFile, Development: cfg.IsDev()})
	if err != nil {
		fmt.Fprintln(os.Stderr, "failed to build logger:", err)
		os.Exit(2)
	}
	defer func() { _ = log.Sync() }()

	log.Info("configuration loaded",
		zap.String("env", cfg.Env),
		zap.String("addr", cfg.Addr()),
		zap.String("store", cfg.RedactedStoreURI()),
	)

	ctx := context.Background()

	// Connect to the document store.
	conn, err := database.Open(ctx, cfg, log)
	if err != nil {
		log.Fatal("failed to connect to document store", zap.Error(err))
	}
	defer func() {
		if err := conn.Close(context.Background()); err != nil {
			log.Warn("document store close failed", zap.Error(err))
		}
	}()

	// Seed development data (no-op if data already exists).
	if cfg.IsDev() {
		if err := database.Bootstrap(ctx, conn, log); err != nil {
			log.Fatal("failed to bootstrap development data", zap.Error(err))
		}
	}

	// Connect to Valkey (sessions and the seed lock).
	valkeyClient, err := cache.ConnectValkey(ctx, cfg.ValkeyURL, log)
	if err != nil {
		log.Fatal("failed to connect to valkey", zap.Error(err))
	}
	defer valkeyClient.Close()

	// In non-development environments, mark cookies as Secure (HTTPS-only).
	secureCookies := !cfg.IsDev()
	sessionStore := session.NewStore(valkeyClient, secureCookies)

	catalog, err := seed.Bundled()
	if err != nil {
		log.Fatal("failed to load seed topics", zap.Error(err))
	}
	seeder := seed.New(conn,
		seed.WithLocker(seed.NewRedisLocker(valkeyClient), cfg.SeedLockTTL),
		seed.WithLogger(log.Named("seed")),
	)
	log.Info("seed topics loaded", zap.Strings("topics", catalog.Names()))

	loginLimiter := middleware.NewRateLimiter(cfg.LoginRateLimit, time.Minute)

	r := router.New(router.Deps{
		Log:           log.Named("http"),
		Sessions:      sessionStore,
		Sidebar:       sidebar.NewResolver(conn),
		Auth:          handlers.NewAuth(sessionStore, conn, log),
		Seed:          handlers.NewSeed(catalog, seeder, log),
		LoginLimiter:  loginLimiter,
		SecureCookies: secureCookies,
	})

	// Create the HTTP server with sensible timeouts. Seeding is a handful of
	// store round trips, each bounded by STORE_TIMEOUT.
	srv := &http.Server{
		Addr:         cfg.Addr(),
		Handler:      r,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 30*time.Second + 4*cfg.StoreTimeout,
		IdleTimeout:  120 * time.Second,
	}

	// Start the server in a goroutine so we can listen for shutdown signals.
	go func() {
		log.Info("server starting", zap.String("addr", cfg.Addr()))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("server failed to start", zap.Error(err))
		}
	}()

	// Graceful shutdown: wait for SIGINT or SIGTERM, then drain connections.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit
	log.Info("shutdown signal received", zap.String("signal", sig.String()))

	// Give active requests up to 30 seconds to complete.
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("server forced to shutdown", zap.Error(err))
		return
	}

	log.Info("server stopped gracefully")
}
