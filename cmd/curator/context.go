package main

import (
	"log/slog"
	"strings"
	"sync"

	"github.com/spf13/cobra"

	"curator/internal/config"
	"curator/internal/console"
	"curator/internal/logging"
	"curator/internal/model"
	"curator/internal/quota"
	"curator/internal/ytapi"
)

type commandContext struct {
	configFlag *string

	configOnce sync.Once
	config     *config.Config
	configErr  error
}

func newCommandContext(configFlag *string) *commandContext {
	return &commandContext{configFlag: configFlag}
}

func (c *commandContext) ensureConfig() (*config.Config, error) {
	c.configOnce.Do(func() {
		var path string
		if c.configFlag != nil {
			path = strings.TrimSpace(*c.configFlag)
		}
		cfg, _, _, err := config.Load(path)
		if err != nil {
			c.configErr = err
			return
		}
		if err := cfg.EnsureDirectories(); err != nil {
			c.configErr = err
			return
		}
		c.config = cfg
	})
	return c.config, c.configErr
}

// session bundles the wired components a provider-facing command needs.
// Close releases the state store and its lock.
type session struct {
	cfg      *config.Config
	logger   *slog.Logger
	store    *model.Store
	models   *model.Manager
	provider ytapi.Provider
	ledger   *quota.Ledger
	console  *console.Console
}

func (s *session) Close() error {
	return s.store.Close()
}

// openSession wires config, logging, state store, provider client, quota
// ledger, and console together. The console doubles as the ledger's
// confirmer so expensive charges prompt the operator.
func (c *commandContext) openSession() (*session, error) {
	cfg, err := c.ensureConfig()
	if err != nil {
		return nil, err
	}
	logger, err := logging.NewFromConfig(cfg)
	if err != nil {
		return nil, err
	}
	store, err := model.Open(cfg)
	if err != nil {
		return nil, err
	}
	provider, err := ytapi.New(cfg.YouTube.APIKey, cfg.YouTube.BaseURL, cfg.YouTube.Region,
		ytapi.WithRelevanceLanguage(cfg.YouTube.RelevanceLanguage))
	if err != nil {
		store.Close()
		return nil, err
	}

	cons := console.Default()
	return &session{
		cfg:      cfg,
		logger:   logger,
		store:    store,
		models:   model.NewManager(store, logger),
		provider: provider,
		ledger:   quota.NewLedger(cfg.Quota, cons, logger),
		console:  cons,
	}, nil
}

func shouldSkipConfig(cmd *cobra.Command) bool {
	for c := cmd; c != nil; c = c.Parent() {
		if c.Annotations != nil && c.Annotations["skipConfigLoad"] == "true" {
			return true
		}
	}
	return false
}
