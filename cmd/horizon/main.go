package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/horizon-lab/project-horizon/internal/calendar"
	corecfg "github.com/horizon-lab/project-horizon/internal/core/config"
	"github.com/horizon-lab/project-horizon/internal/core/storage"
	"github.com/horizon-lab/project-horizon/internal/core/storage/memory"
	"github.com/horizon-lab/project-horizon/internal/core/storage/postgres"
	"github.com/horizon-lab/project-horizon/internal/events"
	"github.com/horizon-lab/project-horizon/internal/migrations"
	"github.com/horizon-lab/project-horizon/internal/profiles"
	"github.com/horizon-lab/project-horizon/internal/server"

	"golang.org/x/sync/errgroup"
)

// stores bundles the persistence backends selected by database.type.
type stores struct {
	events   storage.EventStore
	profiles storage.ProfileStore
	health   server.HealthChecker
	close    func() error
}

func main() {
	configPath := flag.String("config", "horizon.yaml", "Path to configuration file")
	flag.Parse()

	// 0. Load Configuration (bootstrap logger until the configured one is ready)
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stdout, nil)))

	cfg, err := corecfg.Load(*configPath)
	if err != nil {
		slog.Error("Failed to load config", "error", err)
		os.Exit(1)
	}

	// 1. Initialize Logger
	slog.SetDefault(newLogger(cfg.Log))
	slog.Info("Loaded config",
		"database_type", cfg.Database.Type,
		"base_path", cfg.Server.BasePath,
		"mode", cfg.Server.Mode,
	)

	// 2. Initialize Storage
	st, err := openStores(cfg.Database)
	if err != nil {
		slog.Error("Failed to initialize storage", "error", err)
		os.Exit(1)
	}
	defer st.close()

	// 3. Initialize Services
	profileSvc := profiles.NewService(st.profiles, st.events, cfg.Server.MaxBodySizeMB)
	eventSvc := events.NewService(st.events, st.profiles, cfg.Server.MaxBodySizeMB)
	calendarHandler := calendar.NewHandler(eventSvc, cfg.Calendar.ProductID)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// 3.1. Seed Profiles
	names, err := profiles.LoadSeedFile(cfg.Profiles.SeedFile)
	if err != nil {
		slog.Error("Failed to load profile seed file", "error", err)
		os.Exit(1)
	}
	if len(names) > 0 {
		created, err := profileSvc.Seed(ctx, names)
		if err != nil {
			slog.Error("Failed to seed profiles", "error", err)
			os.Exit(1)
		}
		slog.Info("Seeded profiles", "requested", len(names), "created", created)
	}

	// 4. Initialize Server
	srv := server.New(fmtAddr(cfg.Server.Host, cfg.Server.Port), st.health, cfg.Server.Mode, cfg.Server.CORSAllowedOrigins)
	api := srv.Engine.Group(cfg.Server.BasePath)
	if cfg.Server.BasePath != "" {
		api.GET("/health", srv.HealthHandler)
	}
	profileSvc.RegisterRoutes(api)
	eventSvc.RegisterRoutes(api)
	calendarHandler.RegisterRoutes(api)

	// 5. Start Services
	g, gctx := errgroup.WithContext(ctx)

	// Signal handler: cancels gctx, which stops the HTTP server below.
	g.Go(func() error {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
		defer signal.Stop(quit)
		select {
		case sig := <-quit:
			slog.Info("Signal received, shutting down...", "signal", sig.String())
			cancel()
		case <-gctx.Done():
		}
		return nil
	})

	// HTTP server blocks until the context is cancelled.
	g.Go(func() error {
		defer cancel()
		return srv.Run(gctx)
	})

	if err := g.Wait(); err != nil {
		slog.Error("Server stopped with error", "error", err)
	}

	slog.Info("Shutdown complete")
}

func openStores(cfg corecfg.DatabaseConfig) (*stores, error) {
	switch cfg.Type {
	case "memory":
		slog.Warn("Using in-memory storage; data is lost on restart")
		store := memory.NewStore()
		return &stores{
			events:   store,
			profiles: store,
			health:   store,
			close:    func() error { return nil },
		}, nil

	case "postgres":
		dbAdapter, err := postgres.NewAdapter(cfg.DSN, cfg.MaxOpenConns, cfg.MaxIdleConns)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize database: %w", err)
		}

		if err := migrations.RunMigrations(dbAdapter.DB(), cfg.AutoMigrate); err != nil {
			dbAdapter.Close()
			return nil, fmt.Errorf("failed to run database migrations: %w", err)
		}

		// Statements can only be prepared once the tables exist.
		if err := dbAdapter.Prepare(); err != nil {
			dbAdapter.Close()
			return nil, err
		}

		return &stores{
			events:   dbAdapter,
			profiles: postgres.NewProfileAdapter(dbAdapter.DB()),
			health:   dbAdapter,
			close:    dbAdapter.Close,
		}, nil

	default:
		return nil, fmt.Errorf("unsupported database type %q", cfg.Type)
	}
}

func newLogger(cfg corecfg.LogConfig) *slog.Logger {
	opts := &slog.HandlerOptions{Level: cfg.SlogLevel()}
	if cfg.Format == "json" {
		return slog.New(slog.NewJSONHandler(os.Stdout, opts))
	}
	return slog.New(slog.NewTextHandler(os.Stdout, opts))
}

func fmtAddr(host string, port int) string {
	return fmt.Sprintf("%s:%d", host, port)
}
