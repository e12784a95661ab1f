package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/iudanet/dogbrowser/internal/client/api"
	"github.com/iudanet/dogbrowser/internal/client/auth"
	"github.com/iudanet/dogbrowser/internal/client/cli"
	"github.com/iudanet/dogbrowser/internal/client/dogs"
	"github.com/iudanet/dogbrowser/internal/client/iocli"
	"github.com/iudanet/dogbrowser/internal/client/state"
	"github.com/iudanet/dogbrowser/internal/client/storage/boltdb"
	"github.com/iudanet/dogbrowser/internal/config"
	"github.com/iudanet/dogbrowser/internal/observability"
)

var (
	// Version information set via ldflags during build
	Version   = "dev"
	BuildDate = "unknown"
	GitCommit = "unknown"
)

const serviceName = "dogbrowser"

func main() {
	os.Exit(run())
}

func run() int {
	// Глобальные флаги
	showVersion := flag.Bool("version", false, "Show version information")
	configPath := flag.String("config", "", "Path to config file (default: "+config.DefaultConfigPath+")")
	dogAPI := flag.String("dog-api", "", "Dog CEO API base URL")
	authAPI := flag.String("auth-api", "", "Auth API base URL")
	dbPath := flag.String("db", "", "Path to token database")
	logLevel := flag.String("log-level", "", "Log level: debug, info, warn, error")
	tracing := flag.Bool("trace", false, "Print request spans to stderr")

	flag.Parse()

	if *showVersion {
		printVersion()
		return 0
	}

	terminal := iocli.NewStdio()

	args := flag.Args()
	if len(args) == 0 {
		cli.PrintUsage(terminal)
		return 1
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		return 1
	}
	// флаги имеют приоритет над файлом
	if *dogAPI != "" {
		cfg.DogAPIBase = *dogAPI
	}
	if *authAPI != "" {
		cfg.AuthAPIBase = *authAPI
	}
	if *dbPath != "" {
		if cfg.DBPath, err = config.ExpandPath(*dbPath); err != nil {
			fmt.Fprintf(os.Stderr, "Invalid database path: %v\n", err)
			return 1
		}
	}
	if *logLevel != "" {
		cfg.LogLevel = *logLevel
	}
	if *tracing {
		cfg.Tracing = true
	}

	level, err := config.ParseLevel(cfg.LogLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	logger := observability.NewLogger(os.Stderr, level)
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	instruments, shutdown, err := observability.Init(ctx, observability.Options{
		TraceOutput:    os.Stderr,
		Logger:         logger,
		ServiceName:    serviceName,
		ServiceVersion: Version,
		Tracing:        cfg.Tracing,
	})
	if err != nil {
		logger.Error("failed to init observability", "error", err)
		return 1
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), 5*time.Second)
		defer cancel()
		if err := shutdown(shutdownCtx); err != nil {
			logger.Error("failed to shutdown observability", "error", err)
		}
	}()

	// Открываем BoltDB storage
	if err := os.MkdirAll(filepath.Dir(cfg.DBPath), 0o700); err != nil {
		logger.Error("failed to create database directory", "path", cfg.DBPath, "error", err)
		return 1
	}
	tokenStorage, err := boltdb.New(ctx, cfg.DBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to open database: %v\n", err)
		return 1
	}
	defer func() {
		if err := tokenStorage.Close(); err != nil {
			logger.Error("failed to close database", "error", err)
		}
	}()

	apiClient := api.NewClient(
		api.WithLogger(logger),
		api.WithTracer(instruments.Tracer(serviceName)),
		api.WithMeter(instruments.Meter(serviceName)),
	)

	catalog := dogs.NewCatalogService(apiClient, cfg.DogAPIBase,
		dogs.WithLogger(logger),
		dogs.WithCache(dogs.NewBreedCache(cfg.BreedCacheTTL, time.Now)),
	)
	images := dogs.NewImageService(apiClient, cfg.DogAPIBase, dogs.WithLogger(logger))
	authService := auth.NewService(apiClient, tokenStorage, cfg.AuthAPIBase, auth.WithLogger(logger))

	c := cli.New(
		terminal,
		state.NewDogStore(catalog, images, logger),
		state.NewAuthStore(authService, logger),
		authService,
		apiClient,
	)

	if err := c.Run(ctx, args[0], args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

func printVersion() {
	fmt.Printf("Dog Browser\n")
	fmt.Printf("Version:    %s\n", Version)
	fmt.Printf("Build Date: %s\n", BuildDate)
	fmt.Printf("Git Commit: %s\n", GitCommit)
}
