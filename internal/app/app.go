package app

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	goredis "github.com/redis/go-redis/v9"
	"golang.org/x/sync/errgroup"

	"github.com/MrSnakeDoc/leadscout/internal/config"
	"github.com/MrSnakeDoc/leadscout/internal/export"
	"github.com/MrSnakeDoc/leadscout/internal/httpserver"
	"github.com/MrSnakeDoc/leadscout/internal/httpserver/deps"
	"github.com/MrSnakeDoc/leadscout/internal/index"
	"github.com/MrSnakeDoc/leadscout/internal/logger"
	"github.com/MrSnakeDoc/leadscout/internal/redis"
	"github.com/MrSnakeDoc/leadscout/internal/scheduler"
	"github.com/MrSnakeDoc/leadscout/internal/session"
	redisstore "github.com/MrSnakeDoc/leadscout/internal/store/redis"
	"github.com/MrSnakeDoc/leadscout/internal/version"
)

type App struct {
	cfg         *config.Config
	logger      logger.Logger
	server      *httpserver.Server
	redisClient *goredis.Client
	exporter    *export.Simulator
	reloader    *scheduler.DatasetReloader
	collector   *scheduler.SessionCollector
}

func New() *App {
	cfg := config.Load()

	loggerClient := logger.New(cfg.LogLevel, cfg.PrettyLog)

	// Redis is optional: without it sessions live in memory only.
	var (
		redisClient *goredis.Client
		store       *redisstore.Store
	)
	if cfg.RedisEnabled() {
		loggerClient.Infof("Connecting to Redis at %s", cfg.RedisAddr)
		client, err := redis.New(context.Background(), redis.ConnectOptions{
			Addr:           cfg.RedisAddr,
			User:           cfg.RedisUser,
			Password:       cfg.RedisPassword,
			DB:             cfg.RedisDB,
			DialTimeout:    cfg.RedisDT,
			ReadTimeout:    cfg.RedisRT,
			WriteTimeout:   cfg.RedisWT,
			PoolSize:       cfg.RedisPoolSize,
			ConnectTimeout: cfg.RedisConnectTimeout,
			RetryInterval:  cfg.RedisRetryInterval,
			MaxWait:        cfg.RedisMaxWait,
			PingTimeout:    cfg.RedisPingTimeout,
			WarnThreshold:  cfg.RedisWarnThreshold,
		}, loggerClient)
		if err != nil {
			loggerClient.Warn("Redis unavailable, sessions will not survive a restart", logger.Error(err))
		} else {
			redisClient = client
			store = redisstore.NewStore(client)
			loggerClient.Info("Redis initialized successfully")
		}
	} else {
		loggerClient.Info("Redis not configured, sessions are kept in memory only")
	}

	catalog := index.NewCatalog()

	// Create manual reload trigger channel
	reloadTrigger := make(chan struct{}, 1)

	reloader := scheduler.NewDatasetReloader(
		cfg.DatasetFile,
		catalog,
		loggerClient,
		cfg.ReloadInterval,
		reloadTrigger,
	)

	sessionCfg := session.Config{
		TTL:         cfg.SessionTTL,
		InboxSize:   cfg.InboxSize,
		UnknownList: cfg.UnknownListPolicy,
		Collation:   cfg.CollationLocale,
	}

	// Keep the interfaces nil rather than holding a nil *Store.
	var (
		snapshots session.SnapshotStore
		status    deps.SnapshotStatus
		pruner    scheduler.Pruner
	)
	if store != nil {
		snapshots, status, pruner = store, store, store
	}

	sessions := session.NewManager(sessionCfg, catalog, snapshots, loggerClient)
	collector := scheduler.NewSessionCollector(sessions, pruner, loggerClient, cfg.SessionGCInterval)

	files := export.NewFileStore(cfg.ExportMaxFiles)
	exporter := export.NewSimulator(export.Config{
		CRMDelay:      cfg.ExportCRMDelay,
		DownloadDelay: cfg.ExportDownloadDelay,
	}, export.SimulatedCRM{Now: time.Now}, export.NewCSVTarget(files), loggerClient)

	// Dependencies passed to routes (extend as needed).
	d := deps.Deps{
		Logger:           loggerClient,
		StartTime:        time.Now(),
		Version:          version.Version,
		Commit:           version.Commit,
		BuildDate:        version.BuildDate,
		GoVersion:        version.GoVersion,
		TimeNow:          time.Now,
		AllowedHosts:     cfg.AllowedHosts,
		AllowedCIDRS:     cfg.AllowedCIDRS,
		TrustProxy:       cfg.TrustProxy,
		RequestTimeout:   cfg.RequestTimeout,
		RateBurst:        cfg.RateBurst,
		RateRefillPerMin: cfg.RateRefillPerMin,
		Catalog:          catalog,
		Sessions:         sessions,
		Exporter:         exporter,
		Files:            files,
		Snapshots:        status,
		ReloadTrigger:    reloadTrigger,
	}

	server := httpserver.New(cfg, loggerClient, d)

	return &App{
		cfg:         cfg,
		logger:      loggerClient,
		server:      server,
		redisClient: redisClient,
		exporter:    exporter,
		reloader:    reloader,
		collector:   collector,
	}
}

func (a *App) Run() error {
	defer func() { _ = a.logger.Sync() }()

	a.logger.Infof("🚀 Starting leadscout %s on %s", version.Version, a.cfg.ListenPort)
	a.logger.Info(version.String())

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Load the dataset (fatal if impossible) and start periodic refresh
	if err := a.reloader.Start(ctx); err != nil {
		return fmt.Errorf("failed to start dataset reloader: %w", err)
	}
	a.logger.Info("dataset reloader started",
		logger.Duration("interval", a.cfg.ReloadInterval))

	a.collector.Start(ctx)
	a.logger.Info("session collector started",
		logger.Duration("interval", a.cfg.SessionGCInterval))

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		if err := a.server.Start(); err != nil {
			return fmt.Errorf("http server error: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		a.logger.Info("⏳ Shutting down gracefully...")
		return a.shutdown()
	})

	if err := g.Wait(); err != nil {
		return err
	}

	a.logger.Info("✅ leadscout stopped cleanly")
	return nil
}

// shutdown stops background work, drains the server, then lets pending
// export timers finish before Redis goes away.
func (a *App) shutdown() error {
	a.reloader.Stop()
	a.collector.Stop()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), a.cfg.ShutdownTimeout)
	defer cancel()

	if err := a.server.Stop(shutdownCtx); err != nil {
		return fmt.Errorf("failed to stop server: %w", err)
	}

	if err := a.exporter.Wait(shutdownCtx); err != nil {
		a.logger.Warn("export timers still pending at shutdown", logger.Error(err))
	}

	if a.redisClient != nil {
		if err := a.redisClient.Close(); err != nil {
			a.logger.Warnf("failed to close redis: %v", err)
		} else {
			a.logger.Info("✅ Redis closed cleanly")
		}
	}
	return nil
}
