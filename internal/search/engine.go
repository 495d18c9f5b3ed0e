package search

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"curator/internal/config"
	"curator/internal/model"
	"curator/internal/patterns"
	"curator/internal/quota"
	"curator/internal/scoring"
	"curator/internal/services"
	"curator/internal/ytapi"
)

// genericNoise lists title phrases that mark a candidate as off-purpose for
// the domain regardless of the target, applied after fetching. Per-target
// exclusions live in the learned model instead.
var genericNoise = map[patterns.Domain][]string{
	patterns.DomainBoard: {
		"unboxing only",
		"collection video",
		"lot for sale",
		"printing",
		"manufacturing",
	},
	patterns.DomainVideo: {
		"reaction video",
		"game bundle",
		"price guide",
		"collection video",
	},
}

// Engine orchestrates query cycles against a content provider.
type Engine struct {
	provider ytapi.Provider
	ledger   *quota.Ledger
	models   *model.Manager
	settings config.Search
	logger   *slog.Logger
}

// NewEngine creates a search engine.
func NewEngine(provider ytapi.Provider, ledger *quota.Ledger, models *model.Manager, settings config.Search, logger *slog.Logger) *Engine {
	if logger == nil {
		logger = slog.Default()
	}
	return &Engine{
		provider: provider,
		ledger:   ledger,
		models:   models,
		settings: settings,
		logger:   logger.With("component", "search"),
	}
}

// Search runs one full query cycle for the target name and returns the ranked
// shortlist, highest score first. Ties keep discovery order. The whole
// cycle's quota cost is charged before the first provider call; a declined
// charge aborts the cycle without fetching anything.
func (e *Engine) Search(ctx context.Context, target string, domain patterns.Domain, category patterns.Category) ([]scoring.Scored, error) {
	target = strings.TrimSpace(target)
	if target == "" {
		return nil, services.Wrap(services.ErrInput, "search", "validate", "target name required", nil)
	}
	templates := patterns.Templates(domain, category)
	if len(templates) == 0 {
		return nil, services.Wrap(services.ErrInput, "search", "validate",
			fmt.Sprintf("no query patterns for domain %q category %q", domain, category), nil)
	}

	searchID := uuid.NewString()
	ctx = services.WithSearchID(services.WithDomain(ctx, string(domain)), searchID)
	logger := e.logger.With("search_id", searchID, "target", target, "domain", domain, "category", category)

	cost := len(templates) * (e.ledger.SearchCost() + e.ledger.DetailCost())
	label := fmt.Sprintf("search cycle for %q (%d patterns)", target, len(templates))
	if err := e.ledger.EstimateAndCharge(cost, label); err != nil {
		return nil, err
	}

	mdl := e.models.Model(ctx, domain)
	exclusions := mdl.AllExclusions()
	trusted := mdl.TrustedChannels()
	now := time.Now().UTC()

	logger.Info("starting query cycle", "patterns", len(templates), "exclusions", len(exclusions))

	var ranked []scoring.Scored
	position := make(map[string]int)
	fetched, dropped := 0, 0

	for _, template := range templates {
		query := patterns.Expand(template, target, exclusions, trusted)
		items, err := ytapi.SearchAll(ctx, e.provider, ytapi.SearchRequest{
			Query:       query,
			Order:       "relevance",
			PageSize:    e.settings.PerPatternResults,
			WithDetails: true,
		}, e.settings.PerPatternResults)
		if err != nil {
			logger.Error("pattern fetch failed, discarding cycle", "query", query, "error", err)
			return nil, err
		}
		fetched += len(items)

		for _, item := range items {
			if mdl.IsNoise(item.ChannelTitle) || matchesGenericNoise(domain, item.Title) {
				dropped++
				continue
			}
			scored := scoring.Scored{
				Candidate: item,
				Score:     scoring.ScoreAt(now, item, mdl, target),
			}
			if idx, seen := position[item.ID]; seen {
				if scored.Score > ranked[idx].Score {
					ranked[idx] = scored
				}
				continue
			}
			position[item.ID] = len(ranked)
			ranked = append(ranked, scored)
		}
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Score > ranked[j].Score
	})
	if e.settings.MaxResults > 0 && len(ranked) > e.settings.MaxResults {
		ranked = ranked[:e.settings.MaxResults]
	}

	logger.Info("query cycle complete",
		"fetched", fetched,
		"dropped", dropped,
		"returned", len(ranked))
	return ranked, nil
}

func matchesGenericNoise(domain patterns.Domain, title string) bool {
	lower := strings.ToLower(title)
	for _, phrase := range genericNoise[domain] {
		if strings.Contains(lower, phrase) {
			return true
		}
	}
	return false
}
