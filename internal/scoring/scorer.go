package scoring

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"curator/internal/model"
	"curator/internal/patterns"
	"curator/internal/ytapi"
)

// Scored pairs a candidate with its relevance score.
type Scored struct {
	Candidate ytapi.Candidate
	Score     int
}

// Factor is one additive contribution to a score, kept for training-mode
// display.
type Factor struct {
	Name   string
	Points int
}

// Score computes the relevance of a candidate for the target name using the
// domain's learned model, evaluated at the current instant.
func Score(candidate ytapi.Candidate, mdl *model.Model, target string) int {
	return ScoreAt(time.Now().UTC(), candidate, mdl, target)
}

// ScoreAt computes the relevance score at a fixed instant. Identical inputs
// always produce identical output.
func ScoreAt(now time.Time, candidate ytapi.Candidate, mdl *model.Model, target string) int {
	total := 0
	for _, factor := range BreakdownAt(now, candidate, mdl, target) {
		total += factor.Points
	}
	return total
}

// BreakdownAt returns the individual factor contributions at a fixed
// instant. Only factors that contributed (positively or negatively) appear.
func BreakdownAt(now time.Time, candidate ytapi.Candidate, mdl *model.Model, target string) []Factor {
	weights := mdl.Weights()
	var factors []Factor
	add := func(name string, points int) {
		if points != 0 {
			factors = append(factors, Factor{Name: name, Points: points})
		}
	}

	if titleMatches(candidate.Title, target) {
		add("title match", weights.TitleMatch)
	}

	if candidate.HasStats {
		if points := clampInt(int(candidate.ViewCount/1000), weights.ViewCount); points > 0 {
			add("view count", points)
		}
		if candidate.ViewCount > 0 && candidate.LikeCount > 0 {
			ratio := int(candidate.LikeCount * 100 / candidate.ViewCount)
			if points := clampInt(ratio, weights.LikeRatio); points > 0 {
				add("like ratio", points)
			}
		}
	}

	switch {
	case mdl.IsTrusted(candidate.ChannelTitle):
		add("trusted channel", weights.TrustedChannel)
	case mdl.IsNoise(candidate.ChannelTitle):
		add("noise channel", weights.NoiseChannel)
	}

	if candidate.HasDuration {
		// The duration-fit category comes from title keywords rather than
		// the category that generated the query, so an ambiguous title can
		// land in the wrong bucket. Known quirk, kept as-is.
		if category, ok := InferCategory(candidate.Title); ok {
			if r, found := mdl.DurationRange(category); found && r.Contains(candidate.DurationMinutes) {
				add("duration fit", weights.DurationMatch)
			}
		}
	}

	contextPhrase := fmt.Sprintf("%s game", mdl.Domain())
	if strings.Contains(strings.ToLower(candidate.Description), contextPhrase) {
		add("context match", weights.ContextMatch)
	}

	if points := recencyPoints(now, candidate.PublishedAt, weights.Recency); points > 0 {
		add("recency", points)
	}

	return factors
}

// InferCategory guesses the intent category from title keywords. The first
// matching keyword wins; titles with no keyword report no category.
func InferCategory(title string) (patterns.Category, bool) {
	lower := strings.ToLower(title)
	switch {
	case strings.Contains(lower, "how to play"):
		return patterns.CategoryHowToPlay, true
	case strings.Contains(lower, "review"):
		return patterns.CategoryReview, true
	case strings.Contains(lower, "playthrough"), strings.Contains(lower, "gameplay"):
		return patterns.CategoryPlaythrough, true
	default:
		return "", false
	}
}

func titleMatches(title, target string) bool {
	target = strings.TrimSpace(target)
	if target == "" {
		return false
	}
	pattern, err := regexp.Compile(`(?i)\b` + regexp.QuoteMeta(target) + `\b`)
	if err != nil {
		return false
	}
	return pattern.MatchString(title)
}

// recencyPoints rewards candidates younger than a year, scaling down to zero
// at the boundary. Unparseable timestamps contribute nothing.
func recencyPoints(now time.Time, publishedAt string, weight int) int {
	if publishedAt == "" {
		return 0
	}
	published, err := time.Parse(time.RFC3339, publishedAt)
	if err != nil {
		return 0
	}
	ageDays := int(now.Sub(published).Hours() / 24)
	if ageDays < 0 || ageDays >= 365 {
		return 0
	}
	return clampInt((365-ageDays)/36, weight)
}

func clampInt(value, ceiling int) int {
	if value > ceiling {
		return ceiling
	}
	if value < 0 {
		return 0
	}
	return value
}
