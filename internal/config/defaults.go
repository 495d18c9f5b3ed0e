package config

const (
	defaultStateDir          = "~/.local/share/curator/state"
	defaultLogDir            = "~/.local/share/curator/logs"
	defaultYouTubeBaseURL    = "https://www.googleapis.com/youtube/v3"
	defaultRegion            = "US"
	defaultRelevanceLanguage = "en"
	defaultDailyBudget       = 10000
	defaultConfirmThreshold  = 100
	defaultWarnFloor         = 1000
	defaultSearchCost        = 100
	defaultDetailCost        = 1
	defaultWriteCost         = 50
	defaultPerPatternResults = 15
	defaultMaxResults        = 10
	defaultLogFormat         = "console"
	defaultLogLevel          = "info"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Paths: Paths{
			StateDir: defaultStateDir,
			LogDir:   defaultLogDir,
		},
		YouTube: YouTube{
			BaseURL:           defaultYouTubeBaseURL,
			Region:            defaultRegion,
			RelevanceLanguage: defaultRelevanceLanguage,
		},
		Quota: Quota{
			DailyBudget:      defaultDailyBudget,
			ConfirmThreshold: defaultConfirmThreshold,
			WarnFloor:        defaultWarnFloor,
			SearchCost:       defaultSearchCost,
			DetailCost:       defaultDetailCost,
			WriteCost:        defaultWriteCost,
		},
		Search: Search{
			PerPatternResults: defaultPerPatternResults,
			MaxResults:        defaultMaxResults,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
