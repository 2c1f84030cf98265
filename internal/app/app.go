// Package app wires configuration, clients, cache, and services together.
package app

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/bobmcallan/finsight/internal/clients/budget"
	"github.com/bobmcallan/finsight/internal/clients/ledger"
	"github.com/bobmcallan/finsight/internal/common"
	"github.com/bobmcallan/finsight/internal/interfaces"
	"github.com/bobmcallan/finsight/internal/services/analytics"
	"github.com/bobmcallan/finsight/internal/storage"
)

// App holds all initialized clients and services. Every handle is constructed
// here at process start and passed by reference; there are no package-level
// connection singletons.
type App struct {
	Config      *common.Config
	Logger      *common.Logger
	Cache       interfaces.CacheStore
	Ledger      interfaces.LedgerClient
	Budget      interfaces.BudgetClient
	Analytics   interfaces.AnalyticsService
	StartupTime time.Time
}

// getBinaryDir returns the directory containing the executable.
func getBinaryDir() string {
	exe, err := os.Executable()
	if err != nil {
		return "."
	}
	return filepath.Dir(exe)
}

// NewApp initializes configuration, logging, the cache store, upstream
// clients, and the analytics service. configPath may be empty, in which case
// the default resolution logic is used.
func NewApp(configPath string) (*App, error) {
	startupStart := time.Now()

	// Load version from .version file (fallback if ldflags not set)
	common.LoadVersionFromFile()

	binDir := getBinaryDir()

	// Load configuration - check provided path, FINSIGHT_CONFIG, then binary dir, then fallback
	if configPath == "" {
		configPath = os.Getenv("FINSIGHT_CONFIG")
	}
	if configPath == "" {
		configPath = filepath.Join(binDir, "finsight.toml")
		if _, err := os.Stat(configPath); os.IsNotExist(err) {
			configPath = "config/finsight.toml" // fallback for development
		}
	}

	config, err := common.LoadConfig(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	logger := common.NewLoggerFromConfig(config.Logging)

	if config.IsProduction() {
		if missing := config.ValidateRequired(); len(missing) > 0 {
			return nil, fmt.Errorf("missing required configuration: %v", missing)
		}
	}

	cache := storage.NewCacheStore(config.Cache, logger)

	ledgerClient := ledger.NewClient(
		ledger.WithBaseURL(config.Clients.Ledger.BaseURL),
		ledger.WithLogger(logger),
		ledger.WithRateLimit(config.Clients.Ledger.RateLimit),
		ledger.WithTimeout(config.Clients.Ledger.GetTimeout()),
	)

	budgetClient := budget.NewClient(
		budget.WithBaseURL(config.Clients.Budget.BaseURL),
		budget.WithLogger(logger),
		budget.WithRateLimit(config.Clients.Budget.RateLimit),
		budget.WithTimeout(config.Clients.Budget.GetTimeout()),
	)

	analyticsService := analytics.NewService(ledgerClient, budgetClient, cache, config.Cache.GetTTL(), logger)

	a := &App{
		Config:      config,
		Logger:      logger,
		Cache:       cache,
		Ledger:      ledgerClient,
		Budget:      budgetClient,
		Analytics:   analyticsService,
		StartupTime: startupStart,
	}

	logger.Info().Dur("startup", time.Since(startupStart)).Msg("App initialized")

	return a, nil
}

// Close releases all resources held by the App.
func (a *App) Close() {
	if a.Cache != nil {
		a.Cache.Close()
		a.Cache = nil
	}
}
