// Command flowpms runs a short client session against the configured API:
// it resolves the default user, loads their projects, runs a search, and
// prints the derived history analytics. It doubles as a smoke test for the
// mock API server.
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/multierr"

	"github.com/flowpms/flowpms-go/internal/dashboard"
	"github.com/flowpms/flowpms-go/internal/notify"
	"github.com/flowpms/flowpms-go/internal/projects"
	"github.com/flowpms/flowpms-go/internal/search"
	"github.com/flowpms/flowpms-go/internal/state"
	"github.com/flowpms/flowpms-go/internal/users"
	"github.com/flowpms/flowpms-go/pkg/apiclient"
	"github.com/flowpms/flowpms-go/pkg/auth"
	"github.com/flowpms/flowpms-go/pkg/config"
	"github.com/flowpms/flowpms-go/pkg/kv"
	"github.com/flowpms/flowpms-go/pkg/logger"
	"github.com/flowpms/flowpms-go/pkg/metrics"
)

func main() {
	logg := logger.New(logger.Options{ServiceName: "flowpms"})

	if err := godotenv.Load(); err != nil {
		logg.Warn(context.Background(), ".env file not found, relying on environment")
	}

	cfg, err := config.Load()
	if err != nil {
		logg.Error(context.Background(), "failed to load config", err)
		os.Exit(1)
	}

	logg = logger.New(logger.Options{
		ServiceName: "flowpms",
		Level:       logger.ParseLevel(cfg.App.LogLevel),
		WarnStack:   cfg.App.LogWarnStack,
	})

	if err := run(cfg, logg); err != nil {
		logg.Error(context.Background(), "client session failed", err)
		os.Exit(1)
	}
}

func run(cfg *config.Config, logg *logger.Logger) (err error) {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	store, closeStore, err := openStore(ctx, cfg)
	if err != nil {
		return fmt.Errorf("opening kv store: %w", err)
	}
	defer func() {
		err = multierr.Append(err, closeStore())
	}()

	registry := prometheus.NewRegistry()
	notifier := notify.NewLog(logg)
	tokens := auth.NewTokenStore(store)

	api, err := apiclient.New(cfg.API, logg,
		apiclient.WithTokenProvider(tokens),
		apiclient.WithNotifier(notifier),
		apiclient.WithMetrics(metrics.NewClientMetrics(registry)),
	)
	if err != nil {
		return err
	}

	userService, err := users.NewService(api, tokens, notifier, logg)
	if err != nil {
		return err
	}
	projectService, err := projects.NewService(api, notifier, logg)
	if err != nil {
		return err
	}
	appState, err := state.NewStore(userService, projectService, logg)
	if err != nil {
		return err
	}

	history := search.NewHistory(store, logg, cfg.Search.HistoryLimit)
	engine := search.NewEngine(api, history, logg,
		search.WithDebounce(cfg.Search.Debounce),
		search.WithMetrics(metrics.NewSearchMetrics(registry)),
	)

	if err := appState.Initialize(ctx); err != nil {
		return fmt.Errorf("initializing state: %w", err)
	}
	snap := appState.Snapshot()
	ctx = logg.WithUserID(ctx, snap.CurrentUser.ID.String())
	logg.Info(logg.WithField(ctx, "projects", len(snap.Projects)), "state initialized")

	notice := dashboard.NewNotice(store, logg)
	if !notice.Hidden(ctx) {
		logg.Info(ctx, "maintenance notice is visible")
	}

	feed := dashboard.NewFeed()
	logg.Info(logg.WithFields(ctx, map[string]any{
		"notifications": len(feed.Notifications(snap.CurrentUser, snap.Projects)),
		"tasks":         len(feed.Tasks(snap.Projects)),
	}), "dashboard feed generated")

	hits, err := engine.SearchNow(ctx, "project")
	if err != nil {
		return fmt.Errorf("running search: %w", err)
	}
	for _, hit := range hits {
		hit = search.HighlightResult(hit, "project")
		logg.Info(logg.WithFields(ctx, map[string]any{
			"type":  hit.Type.String(),
			"title": hit.Title,
		}), "search hit")
	}

	analytics := history.Analytics(ctx)
	logg.Info(logg.WithFields(ctx, map[string]any{
		"total_searches": analytics.TotalSearches,
		"top_queries":    len(analytics.TopQueries),
	}), "history analytics")
	return nil
}

// openStore picks the kv backend from config. Memory is the default and
// needs no teardown; sqlite and redis return their closers.
func openStore(ctx context.Context, cfg *config.Config) (kv.Store, func() error, error) {
	switch cfg.KV.Backend {
	case config.KVBackendSQLite:
		store, err := kv.NewSQLite(cfg.KV.SQLitePath)
		if err != nil {
			return nil, nil, err
		}
		return store, store.Close, nil
	case config.KVBackendRedis:
		store, err := kv.NewRedis(ctx, cfg.Redis)
		if err != nil {
			return nil, nil, err
		}
		return store, store.Close, nil
	case config.KVBackendMemory, "":
		return kv.NewMemory(), func() error { return nil }, nil
	default:
		return nil, nil, fmt.Errorf("unknown kv backend %q", cfg.KV.Backend)
	}
}
