package training

import (
	"context"
	"errors"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"curator/internal/console"
	"curator/internal/model"
	"curator/internal/patterns"
	"curator/internal/scoring"
	"curator/internal/services"
)

// Searcher runs one ranked query cycle. *search.Engine satisfies it.
type Searcher interface {
	Search(ctx context.Context, target string, domain patterns.Domain, category patterns.Category) ([]scoring.Scored, error)
}

// Loop is the interactive training session over one domain.
type Loop struct {
	searcher Searcher
	models   *model.Manager
	console  *console.Console
	logger   *slog.Logger

	// lastTarget tracks the previous target per domain so session
	// exclusions reset when the operator moves on to a new name.
	lastTarget map[patterns.Domain]string
}

// NewLoop creates a training loop.
func NewLoop(searcher Searcher, models *model.Manager, cons *console.Console, logger *slog.Logger) *Loop {
	if logger == nil {
		logger = slog.Default()
	}
	return &Loop{
		searcher:   searcher,
		models:     models,
		console:    cons,
		logger:     logger.With("component", "training"),
		lastTarget: make(map[patterns.Domain]string),
	}
}

// Run searches for the target and enters the review loop. It returns nil
// when the operator quits or the input stream closes; search failures and
// declined quota charges propagate.
func (l *Loop) Run(ctx context.Context, target string, domain patterns.Domain, category patterns.Category) error {
	target = strings.TrimSpace(target)
	if previous, ok := l.lastTarget[domain]; ok && previous != target {
		l.models.ClearSessionExclusions(ctx, domain)
		l.logger.Info("target changed, session exclusions cleared", "domain", domain, "previous", previous)
	}
	l.lastTarget[domain] = target

	results, err := l.searcher.Search(ctx, target, domain, category)
	if err != nil {
		return err
	}
	l.showResults(results)

	for {
		line, err := l.console.Prompt("train>")
		if err != nil {
			if errors.Is(err, services.ErrInput) {
				return nil
			}
			return err
		}
		command, argument, _ := strings.Cut(strings.TrimSpace(line), " ")
		argument = strings.TrimSpace(argument)

		switch strings.ToLower(command) {
		case "":
			continue
		case "quit", "done", "q":
			return nil
		case "abandon":
			l.models.ClearSessionExclusions(ctx, domain)
			l.console.Println("Session exclusions discarded.")
			return nil
		case "help", "?":
			l.showHelp()
		case "state":
			l.showState(ctx, domain)
		case "refresh":
			refreshed, err := l.searcher.Search(ctx, target, domain, category)
			if err != nil {
				return err
			}
			results = refreshed
			l.showResults(results)
		case "trust":
			if candidate, ok := l.pick(results, argument); ok {
				l.models.AddTrustedChannel(ctx, domain, candidate.Candidate.ChannelTitle)
				l.console.Printf("Trusting channel %q.\n", candidate.Candidate.ChannelTitle)
			}
		case "noise":
			if candidate, ok := l.pick(results, argument); ok {
				l.models.AddNoiseChannel(ctx, domain, candidate.Candidate.ChannelTitle)
				l.console.Printf("Muting channel %q.\n", candidate.Candidate.ChannelTitle)
			}
		case "hide":
			if argument == "" {
				l.console.Println("Usage: hide <phrase>")
				continue
			}
			l.models.AddExclusion(ctx, domain, argument, false)
			l.console.Printf("Hiding %q for this session.\n", strings.ToLower(argument))
		case "ban":
			if argument == "" {
				l.console.Println("Usage: ban <phrase>")
				continue
			}
			l.models.AddExclusion(ctx, domain, argument, true)
			l.console.Printf("Banning %q permanently.\n", strings.ToLower(argument))
		case "unban":
			if argument == "" {
				l.console.Println("Usage: unban <phrase>")
				continue
			}
			l.models.RemoveExclusion(ctx, domain, argument, true)
			l.models.RemoveExclusion(ctx, domain, argument, false)
			l.console.Printf("Removed %q from both exclusion tiers.\n", strings.ToLower(argument))
		case "flag":
			if candidate, ok := l.pick(results, argument); ok {
				if err := l.flag(ctx, domain, *candidate); err != nil {
					if errors.Is(err, services.ErrInput) {
						return nil
					}
					return err
				}
			}
		case "why":
			if candidate, ok := l.pick(results, argument); ok {
				l.showBreakdown(ctx, domain, target, *candidate)
			}
		default:
			l.console.Printf("Unknown command %q. Type help for the list.\n", command)
		}
	}
}

// flag marks a result irrelevant: the operator names the phrase that made it
// so and picks the tier. An empty phrase cancels the flag.
func (l *Loop) flag(ctx context.Context, domain patterns.Domain, result scoring.Scored) error {
	l.console.Printf("Flagging %q.\n", result.Candidate.Title)
	phrase, err := l.console.Prompt("Phrase to exclude (empty to cancel):")
	if err != nil {
		return err
	}
	if phrase == "" {
		l.console.Println("Cancelled.")
		return nil
	}
	persistent, err := l.console.Confirm("Exclude permanently?")
	if err != nil {
		return err
	}
	l.models.AddExclusion(ctx, domain, phrase, persistent)
	tier := "this session"
	if persistent {
		tier = "permanently"
	}
	l.console.Printf("Excluding %q %s.\n", strings.ToLower(phrase), tier)
	return nil
}

// pick resolves a 1-based result index argument. Bad input prints a notice
// and reports failure; it never ends the loop.
func (l *Loop) pick(results []scoring.Scored, argument string) (*scoring.Scored, bool) {
	index, err := strconv.Atoi(argument)
	if err != nil || index < 1 || index > len(results) {
		l.console.Printf("Pick a result number between 1 and %d.\n", len(results))
		return nil, false
	}
	return &results[index-1], true
}

func (l *Loop) showResults(results []scoring.Scored) {
	if len(results) == 0 {
		l.console.Println("No results. Try refresh after adjusting the model, or quit.")
		return
	}
	l.console.Printf("%d results:\n", len(results))
	for i, result := range results {
		candidate := result.Candidate
		duration := "?"
		if candidate.HasDuration {
			duration = candidate.Duration
		}
		l.console.Printf("%2d. [%3d] %s\n      %s | %s | %s\n",
			i+1, result.Score, candidate.Title, candidate.ChannelTitle, duration, candidate.URL())
	}
}

func (l *Loop) showBreakdown(ctx context.Context, domain patterns.Domain, target string, result scoring.Scored) {
	mdl := l.models.Model(ctx, domain)
	factors := scoring.BreakdownAt(time.Now().UTC(), result.Candidate, mdl, target)
	if len(factors) == 0 {
		l.console.Println("No factors contributed to this score.")
		return
	}
	l.console.Printf("Score %d for %q:\n", result.Score, result.Candidate.Title)
	for _, factor := range factors {
		l.console.Printf("  %+4d %s\n", factor.Points, factor.Name)
	}
}

func (l *Loop) showState(ctx context.Context, domain patterns.Domain) {
	mdl := l.models.Model(ctx, domain)
	l.console.Printf("Model for domain %q:\n", domain)
	l.console.Printf("  trusted channels:      %s\n", orNone(mdl.TrustedChannels()))
	l.console.Printf("  noise channels:        %s\n", orNone(mdl.NoiseChannels()))
	l.console.Printf("  persistent exclusions: %s\n", orNone(mdl.PersistentExclusions()))
	l.console.Printf("  session exclusions:    %s\n", orNone(mdl.SessionExclusions()))
}

func (l *Loop) showHelp() {
	l.console.Println(`Commands:
  flag <n>      mark result n irrelevant and exclude a phrase from it
  trust <n>     mark the channel of result n as trusted
  noise <n>     mark the channel of result n as noise
  hide <phrase> exclude a phrase for this session only
  ban <phrase>  exclude a phrase permanently
  unban <phrase> remove a phrase from both exclusion tiers
  why <n>       show the score breakdown for result n
  state         show the learned model
  refresh       re-run the search with the current model
  quit          end the session keeping session exclusions
  abandon       discard session exclusions and end the session`)
}

func orNone(values []string) string {
	if len(values) == 0 {
		return "(none)"
	}
	return strings.Join(values, ", ")
}
