package app

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"goldprice/internal/adapters"
	"goldprice/internal/adapters/cache"
	"goldprice/internal/adapters/memory"
	"goldprice/internal/adapters/postgres"
	redisstore "goldprice/internal/adapters/redis"
	"goldprice/internal/api"
	"goldprice/internal/config"
	"goldprice/internal/conversion"
	"goldprice/internal/domain"
	"goldprice/internal/gold"
	"goldprice/internal/gold/handler"
	"goldprice/internal/language"
	"goldprice/internal/platform/db"
	httpserver "goldprice/internal/platform/http"
	"goldprice/internal/pricing"

	"github.com/sirupsen/logrus"
)

// SetupLogger falls back to info on an unknown level.
func SetupLogger(level string) {
	logrus.SetOutput(os.Stdout)
	if parsedLvl, parseErr := logrus.ParseLevel(level); parseErr != nil {
		logrus.SetLevel(logrus.InfoLevel)
	} else {
		logrus.SetLevel(parsedLvl)
	}
}

// NewService builds the pricing facade. cache may be nil.
func NewService(appCfg *config.AppConfig, historyCache adapters.HistoryCache) (*gold.Service, error) {
	loc, err := appCfg.Pricing.Location()
	if err != nil {
		return nil, err
	}
	engine := pricing.NewEngine(pricing.WithLocation(loc))
	return gold.NewService(engine, conversion.NewConverter(time.Now), historyCache), nil
}

// Run wires the application components, starts HTTP server and scheduler
func Run(appCfg *config.AppConfig) error {
	// Root context bound to OS signals for graceful shutdown
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return run(ctx, appCfg)
}

func run(ctx context.Context, appCfg *config.AppConfig) error {
	// Bounded context for startup operations (DB connect, initial reads)
	startupCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	store, closeStore, err := openPreferenceStore(startupCtx, appCfg)
	if err != nil {
		logrus.WithError(err).WithField("backend", appCfg.Preferences.Backend).Error("Failed to open preference store")
		return err
	}
	defer closeStore()
	logrus.WithField("backend", appCfg.Preferences.Backend).Info("✅ Preference store ready")

	lang, err := language.Load(startupCtx, store)
	if err != nil {
		logrus.WithError(err).Error("Failed to load language preference")
		return err
	}
	lang.Subscribe(func(l domain.Language) {
		logrus.WithField("language", l).Info("UI language changed")
	})

	historyCache, err := cache.NewHistoryCache(appCfg.Cache.HistoryMaxItems)
	if err != nil {
		return fmt.Errorf("failed to create history cache: %w", err)
	}
	defer historyCache.Close()

	service, err := NewService(appCfg, historyCache)
	if err != nil {
		return err
	}

	ticker := gold.NewTicker()
	scheduler := gold.NewScheduler(service, ticker, appCfg.Scheduler.RefreshInterval(), time.Now)
	defer func() {
		if shutDownErr := scheduler.Stop(); shutDownErr != nil {
			logrus.Errorf("Scheduler shutdown error: %v", shutDownErr)
		}
	}()
	if startErr := scheduler.Start(ctx); startErr != nil {
		logrus.WithError(startErr).Error("Failed to start scheduler")
		return startErr
	}
	logrus.Info("✅ Scheduler activation successful")

	router := api.NewRouter(handler.NewHandler(service, ticker, lang))

	logrus.Info("Starting http server")
	if serverErr := httpserver.Start(ctx, appCfg.HTTPServer, router); serverErr != nil {
		logrus.Errorf("HTTP server error: %v", serverErr)
		return serverErr
	}
	return nil
}

// openPreferenceStore returns the configured backend and its cleanup.
func openPreferenceStore(ctx context.Context, appCfg *config.AppConfig) (adapters.PreferenceStore, func(), error) {
	switch appCfg.Preferences.Backend {
	case config.BackendPostgres:
		if err := db.Migrate(ctx, appCfg.DbServer.DSN()); err != nil {
			return nil, nil, err
		}
		pool, err := db.CreatePoolAndPing(ctx, appCfg.DbServer)
		if err != nil {
			return nil, nil, err
		}
		return postgres.NewPreferenceRepository(pool), pool.Close, nil
	case config.BackendRedis:
		client, err := redisstore.NewClient(ctx, appCfg.Redis.Addr, appCfg.Redis.Password, appCfg.Redis.DB)
		if err != nil {
			return nil, nil, err
		}
		return redisstore.NewPreferenceStore(client), func() { _ = client.Close() }, nil
	case config.BackendMemory, "":
		return memory.NewPreferenceStore(), func() {}, nil
	default:
		return nil, nil, fmt.Errorf("unknown preferences backend %q", appCfg.Preferences.Backend)
	}
}
