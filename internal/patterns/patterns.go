package patterns

import (
	"fmt"
	"sort"
	"strings"
)

// Domain is a top-level content category with its own learned model and
// query patterns.
type Domain string

const (
	DomainBoard Domain = "board"
	DomainVideo Domain = "video"
)

// Category is a sub-purpose within a domain driving which templates and
// duration ranges apply.
type Category string

const (
	CategoryHowToPlay   Category = "how_to_play"
	CategoryReview      Category = "reviews"
	CategoryPlaythrough Category = "playthroughs"
)

// Domains lists the supported content domains.
func Domains() []Domain {
	return []Domain{DomainBoard, DomainVideo}
}

// Categories lists the supported intent categories.
func Categories() []Category {
	return []Category{CategoryHowToPlay, CategoryReview, CategoryPlaythrough}
}

// ParseDomain maps operator input to a Domain.
func ParseDomain(value string) (Domain, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "board":
		return DomainBoard, nil
	case "video":
		return DomainVideo, nil
	default:
		return "", fmt.Errorf("unknown domain %q (expected board or video)", value)
	}
}

// ParseCategory maps operator input to a Category.
func ParseCategory(value string) (Category, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "how_to_play", "how-to-play", "howto", "tutorial", "tutorials":
		return CategoryHowToPlay, nil
	case "review", "reviews":
		return CategoryReview, nil
	case "playthrough", "playthroughs":
		return CategoryPlaythrough, nil
	default:
		return "", fmt.Errorf("unknown category %q (expected how_to_play, reviews, or playthroughs)", value)
	}
}

const placeholder = "{name}"

var templates = map[Domain]map[Category][]string{
	DomainBoard: {
		CategoryHowToPlay: {
			`"{name}" "how to play"`,
			`"{name}" rules explanation`,
			`"{name}" tutorial board game`,
			`"{name}" learn to play`,
		},
		CategoryReview: {
			`"{name}" review board game`,
			`"{name}" review card game`,
			`"{name}" board game overview`,
			`"{name}" first impressions`,
		},
		CategoryPlaythrough: {
			`"{name}" playthrough board game`,
			`"{name}" gameplay board game`,
			`"{name}" full game`,
			`"{name}" actual play`,
		},
	},
	DomainVideo: {
		CategoryHowToPlay: {
			`"{name}" beginners guide`,
			`"{name}" tutorial`,
			`"{name}" getting started`,
			`"{name}" basics`,
		},
		CategoryReview: {
			`"{name}" review`,
			`"{name}" worth playing`,
			`"{name}" should you play`,
			`"{name}" before you buy`,
		},
		CategoryPlaythrough: {
			`"{name}" full gameplay`,
			`"{name}" walkthrough no commentary`,
			`"{name}" longplay`,
			`"{name}" complete game`,
		},
	},
}

// Templates returns the ordered template list for a domain and category. The
// returned slice is a copy; callers may not mutate the library.
func Templates(domain Domain, category Category) []string {
	byCategory, ok := templates[domain]
	if !ok {
		return nil
	}
	list := byCategory[category]
	out := make([]string, len(list))
	copy(out, list)
	return out
}

// Expand substitutes the target name into a template and appends the learned
// refinements: a -"phrase" clause per exclusion and a parenthesized OR-group
// of channel:"name" filters for trusted channels. Exclusions and channels are
// sorted so the produced query is deterministic.
func Expand(template, target string, exclusions, trustedChannels []string) string {
	parts := []string{strings.ReplaceAll(template, placeholder, target)}

	sortedExclusions := sortedCopy(exclusions)
	for _, phrase := range sortedExclusions {
		parts = append(parts, fmt.Sprintf("-%q", phrase))
	}

	sortedChannels := sortedCopy(trustedChannels)
	if len(sortedChannels) > 0 {
		channelParts := make([]string, 0, len(sortedChannels))
		for _, channel := range sortedChannels {
			channelParts = append(channelParts, fmt.Sprintf("channel:%q", channel))
		}
		parts = append(parts, "("+strings.Join(channelParts, " | ")+")")
	}

	return strings.Join(parts, " ")
}

func sortedCopy(values []string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		if strings.TrimSpace(v) == "" {
			continue
		}
		out = append(out, v)
	}
	sort.Strings(out)
	return out
}
