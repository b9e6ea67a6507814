package app

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/eduka/eduka-api/internal/api"
	"github.com/eduka/eduka-api/internal/config"
	"github.com/eduka/eduka-api/internal/fixtures"
	"github.com/eduka/eduka-api/internal/logger"
	"github.com/eduka/eduka-api/internal/repository"
	"github.com/eduka/eduka-api/internal/store"
)

func Start() error {
	conf, err := config.Load("./cmd/app/config.yml")
	if err != nil {
		return fmt.Errorf("failed to initialize config -> %w", err)
	}

	if err = logger.Init(conf.API.Environment); err != nil {
		return fmt.Errorf("failed to initialize logger -> %w", err)
	}

	loader := fixtures.NewLoader(conf.Fixtures.Dir)

	latency := store.None()
	if conf.Fixtures.LatencyMS > 0 {
		latency = store.FixedLatency(time.Duration(conf.Fixtures.LatencyMS) * time.Millisecond)
	}

	repos := repository.NewRegistry(loader, latency)
	if err = repos.LoadAll(); err != nil {
		return fmt.Errorf("failed to load fixtures -> %w", err)
	}

	if conf.Fixtures.Watch {
		watcher, err := fixtures.NewWatcher(loader, repos.Reloads())
		if err != nil {
			return fmt.Errorf("failed to initialize fixtures watcher -> %w", err)
		}
		go watcher.Watch(context.Background())
	}

	s := api.NewServer(conf, repos)

	addr := ":" + s.Config.API.Port
	zap.L().Info(fmt.Sprintf("starting server at %v", addr))
	if err = s.Router.Run(addr); err != nil {
		return fmt.Errorf("failed to start the server -> %w", err)
	}

	return nil
}
