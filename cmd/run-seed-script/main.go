// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Command run-seed-script seeds one bundled topic into the document store
// named by MONGO_API_KEY and prints what it created and what it skipped.
//
// Usage:
//
//	run-seed-script [topic]
//
// The topic defaults to speed-insights. Exit status is 0 on success
// (including when everything was already seeded), 1 when the store or seed
// run fails, and 2 for configuration or usage errors.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"contenthub/internal/cache"
	"contenthub/internal/config"
	"contenthub/internal/database"
	"contenthub/internal/logger"
	"contenthub/internal/seed"
)

const defaultTopic = "speed-insights"

const (
	exitOK      = 0
	exitFailure = 1
	exitUsage   = 2
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

// run seeds the requested topic. The summary goes to stdout; logs and
// errors go to stderr.
func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	topicName := defaultTopic
	switch {
	case len(args) > 1:
		fmt.Fprintln(stderr, "usage: run-seed-script [topic]")
		return exitUsage
	case len(args) == 1 && (args[0] == "-h" || args[0] == "--help"):
		fmt.Fprintln(stdout, "usage: run-seed-script [topic]")
		return exitOK
	case len(args) == 1:
		topicName = args[0]
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(stderr, "error:", err)
		return exitUsage
	}

	log, err := logger.New(logger.Options{
		Level:       cfg.LogLevel,
		File:        cfg.LogFile,
		Development: cfg.IsDev(),
		Output:      zapcore.AddSync(stderr),
	})
	if err != nil {
		fmt.Fprintln(stderr, "error:", err)
		return exitUsage
	}
	defer func() { _ = log.Sync() }()

	catalog, err := seed.Bundled()
	if err != nil {
		fmt.Fprintln(stderr, "error: load seed topics:", err)
		return exitFailure
	}
	topic, ok := catalog.Lookup(topicName)
	if !ok {
		fmt.Fprintf(stderr, "error: unknown topic %q (available: %s)\n", topicName, strings.Join(catalog.Names(), ", "))
		return exitUsage
	}

	conn, err := database.Open(ctx, cfg, log)
	if err != nil {
		fmt.Fprintln(stderr, "error: connect to document store:", err)
		var cfgErr *config.ConfigurationError
		if errors.As(err, &cfgErr) {
			return exitUsage
		}
		return exitFailure
	}
	defer func() {
		if err := conn.Close(context.WithoutCancel(ctx)); err != nil {
			log.Warn("document store close failed", zap.Error(err))
		}
	}()

	opts := []seed.Option{seed.WithLogger(log.Named("seed"))}
	if cfg.ValkeyURL != "" {
		client, err := cache.ConnectValkey(ctx, cfg.ValkeyURL, log)
		if err != nil {
			fmt.Fprintln(stderr, "error: connect to valkey for the seed lock:", err)
			return exitFailure
		}
		defer client.Close()
		opts = append(opts, seed.WithLocker(seed.NewRedisLocker(client), cfg.SeedLockTTL))
	}

	res, err := seed.New(conn, opts...).SeedTopic(ctx, topic)
	if res != nil {
		seed.WriteSummary(stdout, res)
	}
	if err != nil {
		var seedErr *seed.Error
		if errors.As(err, &seedErr) {
			fmt.Fprintln(stderr, "error:", seedErr.Summary())
		} else {
			fmt.Fprintln(stderr, "error:", err)
		}
		return exitFailure
	}
	return exitOK
}
