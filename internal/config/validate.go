package config

import (
	"errors"
	"fmt"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validateYouTube(); err != nil {
		return err
	}
	if err := c.validateQuota(); err != nil {
		return err
	}
	if err := c.validateSearch(); err != nil {
		return err
	}
	if err := c.validateLogging(); err != nil {
		return err
	}
	return nil
}

func (c *Config) validateYouTube() error {
	if c.YouTube.APIKey == "" {
		defaultPath, err := DefaultConfigPath()
		if err != nil {
			defaultPath = "~/.config/curator/config.toml"
		}
		return fmt.Errorf("youtube.api_key is required. Set YOUTUBE_API_KEY env var or edit %s (create with 'curator config init')", defaultPath)
	}
	return nil
}

func (c *Config) validateQuota() error {
	if c.Quota.ConfirmThreshold > c.Quota.DailyBudget {
		return errors.New("quota.confirm_threshold must not exceed quota.daily_budget")
	}
	if c.Quota.WarnFloor > c.Quota.DailyBudget {
		return errors.New("quota.warn_floor must not exceed quota.daily_budget")
	}
	return nil
}

func (c *Config) validateSearch() error {
	if c.Search.PerPatternResults > 50 {
		return errors.New("search.per_pattern_results must not exceed the provider page cap of 50")
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch c.Logging.Format {
	case "console", "json":
		return nil
	default:
		return fmt.Errorf("logging.format: unsupported value %q", c.Logging.Format)
	}
}
