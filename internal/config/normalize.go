package config

import (
	"fmt"
	"os"
	"strings"
)

func (c *Config) normalize() error {
	if err := c.normalizePaths(); err != nil {
		return err
	}
	c.normalizeYouTube()
	c.normalizeQuota()
	c.normalizeSearch()
	c.normalizeLogging()
	return nil
}

func (c *Config) normalizePaths() error {
	var err error
	if strings.TrimSpace(c.Paths.StateDir) == "" {
		c.Paths.StateDir = defaultStateDir
	}
	if c.Paths.StateDir, err = expandPath(c.Paths.StateDir); err != nil {
		return fmt.Errorf("paths.state_dir: %w", err)
	}
	if strings.TrimSpace(c.Paths.LogDir) == "" {
		c.Paths.LogDir = defaultLogDir
	}
	if c.Paths.LogDir, err = expandPath(c.Paths.LogDir); err != nil {
		return fmt.Errorf("paths.log_dir: %w", err)
	}
	return nil
}

func (c *Config) normalizeYouTube() {
	if c.YouTube.APIKey == "" {
		c.YouTube.APIKey = strings.TrimSpace(os.Getenv("YOUTUBE_API_KEY"))
	}
	c.YouTube.BaseURL = strings.TrimRight(strings.TrimSpace(c.YouTube.BaseURL), "/")
	if c.YouTube.BaseURL == "" {
		c.YouTube.BaseURL = defaultYouTubeBaseURL
	}
	if strings.TrimSpace(c.YouTube.Region) == "" {
		c.YouTube.Region = defaultRegion
	}
	if strings.TrimSpace(c.YouTube.RelevanceLanguage) == "" {
		c.YouTube.RelevanceLanguage = defaultRelevanceLanguage
	}
}

func (c *Config) normalizeQuota() {
	if c.Quota.DailyBudget <= 0 {
		c.Quota.DailyBudget = defaultDailyBudget
	}
	if c.Quota.ConfirmThreshold <= 0 {
		c.Quota.ConfirmThreshold = defaultConfirmThreshold
	}
	if c.Quota.WarnFloor < 0 {
		c.Quota.WarnFloor = defaultWarnFloor
	}
	if c.Quota.SearchCost <= 0 {
		c.Quota.SearchCost = defaultSearchCost
	}
	if c.Quota.DetailCost <= 0 {
		c.Quota.DetailCost = defaultDetailCost
	}
	if c.Quota.WriteCost <= 0 {
		c.Quota.WriteCost = defaultWriteCost
	}
}

func (c *Config) normalizeSearch() {
	if c.Search.PerPatternResults <= 0 {
		c.Search.PerPatternResults = defaultPerPatternResults
	}
	if c.Search.MaxResults <= 0 {
		c.Search.MaxResults = defaultMaxResults
	}
}

func (c *Config) normalizeLogging() {
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	if c.Logging.Format == "" {
		c.Logging.Format = defaultLogFormat
	}
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
}
