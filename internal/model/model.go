package model

import (
	"sort"
	"strings"

	json "github.com/goccy/go-json"

	"curator/internal/patterns"
)

// Weights are the named scoring weights consumed by the relevance scorer.
// NoiseChannel is negative: matching a noise channel subtracts points.
type Weights struct {
	TitleMatch     int `json:"title_match"`
	ViewCount      int `json:"view_count"`
	LikeRatio      int `json:"like_ratio"`
	TrustedChannel int `json:"trusted_channel"`
	NoiseChannel   int `json:"noise_channel"`
	DurationMatch  int `json:"duration_match"`
	ContextMatch   int `json:"context_match"`
	Recency        int `json:"recency"`
}

// DurationRange bounds the ideal duration for an intent category, in
// minutes. Max zero means open-ended: any duration at or above Min fits.
type DurationRange struct {
	Min int `json:"min"`
	Max int `json:"max"`
}

// Contains reports whether the given duration falls inside the range.
func (r DurationRange) Contains(minutes int) bool {
	if minutes < r.Min {
		return false
	}
	if r.Max == 0 {
		return true
	}
	return minutes <= r.Max
}

// Model is the learned relevance state for one content domain. Phrase sets
// are stored lowercased; channel sets keep their display casing. Mutate only
// through the exported methods so the trusted/noise invariant holds.
type Model struct {
	domain               patterns.Domain
	persistentExclusions map[string]struct{}
	sessionExclusions    map[string]struct{}
	trustedChannels      map[string]struct{}
	noiseChannels        map[string]struct{}
	weights              Weights
	durationRanges       map[patterns.Category]DurationRange
}

// DefaultWeights returns the stock scoring weights.
func DefaultWeights() Weights {
	return Weights{
		TitleMatch:     20,
		ViewCount:      10,
		LikeRatio:      15,
		TrustedChannel: 15,
		NoiseChannel:   -10,
		DurationMatch:  10,
		ContextMatch:   15,
		Recency:        10,
	}
}

func defaultDurationRanges() map[patterns.Category]DurationRange {
	return map[patterns.Category]DurationRange{
		patterns.CategoryHowToPlay:   {Min: 5, Max: 20},
		patterns.CategoryReview:      {Min: 10, Max: 30},
		patterns.CategoryPlaythrough: {Min: 30, Max: 0},
	}
}

// New constructs a model with default weights and duration ranges.
func New(domain patterns.Domain) *Model {
	return &Model{
		domain:               domain,
		persistentExclusions: make(map[string]struct{}),
		sessionExclusions:    make(map[string]struct{}),
		trustedChannels:      make(map[string]struct{}),
		noiseChannels:        make(map[string]struct{}),
		weights:              DefaultWeights(),
		durationRanges:       defaultDurationRanges(),
	}
}

// Domain returns the content domain this model belongs to.
func (m *Model) Domain() patterns.Domain { return m.domain }

// Weights returns the scoring weights.
func (m *Model) Weights() Weights { return m.weights }

// DurationRange returns the ideal duration bounds for a category.
func (m *Model) DurationRange(category patterns.Category) (DurationRange, bool) {
	r, ok := m.durationRanges[category]
	return r, ok
}

// AddExclusion records a lowercased exclusion phrase in the persistent or
// session tier.
func (m *Model) AddExclusion(phrase string, persistent bool) {
	normalized := normalizePhrase(phrase)
	if normalized == "" {
		return
	}
	if persistent {
		m.persistentExclusions[normalized] = struct{}{}
	} else {
		m.sessionExclusions[normalized] = struct{}{}
	}
}

// RemoveExclusion drops a phrase from the chosen tier. Removing a phrase
// that is absent is a no-op.
func (m *Model) RemoveExclusion(phrase string, persistent bool) {
	normalized := normalizePhrase(phrase)
	if persistent {
		delete(m.persistentExclusions, normalized)
	} else {
		delete(m.sessionExclusions, normalized)
	}
}

// HasPersistentExclusion reports whether the phrase sits in the persistent
// tier.
func (m *Model) HasPersistentExclusion(phrase string) bool {
	_, ok := m.persistentExclusions[normalizePhrase(phrase)]
	return ok
}

// HasExclusion reports whether the phrase sits in either tier.
func (m *Model) HasExclusion(phrase string) bool {
	normalized := normalizePhrase(phrase)
	if _, ok := m.persistentExclusions[normalized]; ok {
		return true
	}
	_, ok := m.sessionExclusions[normalized]
	return ok
}

// AllExclusions returns the union of both exclusion tiers, sorted. A phrase
// promoted from session to persistent may transiently live in both tiers;
// the union collapses it.
func (m *Model) AllExclusions() []string {
	union := make(map[string]struct{}, len(m.persistentExclusions)+len(m.sessionExclusions))
	for phrase := range m.persistentExclusions {
		union[phrase] = struct{}{}
	}
	for phrase := range m.sessionExclusions {
		union[phrase] = struct{}{}
	}
	return sortedKeys(union)
}

// PersistentExclusions returns the persistent tier, sorted.
func (m *Model) PersistentExclusions() []string {
	return sortedKeys(m.persistentExclusions)
}

// SessionExclusions returns the session tier, sorted.
func (m *Model) SessionExclusions() []string {
	return sortedKeys(m.sessionExclusions)
}

// ClearSessionExclusions empties the session tier. Called when the target
// name changes.
func (m *Model) ClearSessionExclusions() {
	m.sessionExclusions = make(map[string]struct{})
}

// AddTrustedChannel marks a channel trusted, evicting it from the noise set
// so the two sets stay disjoint.
func (m *Model) AddTrustedChannel(name string) {
	name = strings.TrimSpace(name)
	if name == "" {
		return
	}
	m.trustedChannels[name] = struct{}{}
	delete(m.noiseChannels, name)
}

// AddNoiseChannel marks a channel noisy, evicting it from the trusted set.
func (m *Model) AddNoiseChannel(name string) {
	name = strings.TrimSpace(name)
	if name == "" {
		return
	}
	m.noiseChannels[name] = struct{}{}
	delete(m.trustedChannels, name)
}

// IsTrusted reports trusted membership.
func (m *Model) IsTrusted(name string) bool {
	_, ok := m.trustedChannels[name]
	return ok
}

// IsNoise reports noise membership.
func (m *Model) IsNoise(name string) bool {
	_, ok := m.noiseChannels[name]
	return ok
}

// TrustedChannels returns the trusted set, sorted.
func (m *Model) TrustedChannels() []string {
	return sortedKeys(m.trustedChannels)
}

// NoiseChannels returns the noise set, sorted.
func (m *Model) NoiseChannels() []string {
	return sortedKeys(m.noiseChannels)
}

func normalizePhrase(phrase string) string {
	return strings.ToLower(strings.TrimSpace(phrase))
}

func sortedKeys(set map[string]struct{}) []string {
	out := make([]string, 0, len(set))
	for key := range set {
		out = append(out, key)
	}
	sort.Strings(out)
	return out
}

// payload is the serialized form of a model. Session exclusions are
// deliberately absent: they never survive a process.
type payload struct {
	Domain               patterns.Domain                    `json:"domain"`
	PersistentExclusions []string                           `json:"persistent_exclusions"`
	TrustedChannels      []string                           `json:"trusted_channels"`
	NoiseChannels        []string                           `json:"noise_channels"`
	Weights              Weights                            `json:"scoring_weights"`
	DurationRanges       map[patterns.Category]DurationRange `json:"duration_ranges"`
}

// Encode serializes the persistent portion of the model.
func (m *Model) Encode() ([]byte, error) {
	return json.Marshal(payload{
		Domain:               m.domain,
		PersistentExclusions: m.PersistentExclusions(),
		TrustedChannels:      m.TrustedChannels(),
		NoiseChannels:        m.NoiseChannels(),
		Weights:              m.weights,
		DurationRanges:       m.durationRanges,
	})
}

// Decode rebuilds a model from serialized bytes. Missing weights or ranges
// fall back to defaults so old payloads stay loadable.
func Decode(domain patterns.Domain, data []byte) (*Model, error) {
	var p payload
	if err := json.Unmarshal(data, &p); err != nil {
		return nil, err
	}
	m := New(domain)
	for _, phrase := range p.PersistentExclusions {
		m.AddExclusion(phrase, true)
	}
	for _, name := range p.TrustedChannels {
		m.AddTrustedChannel(name)
	}
	for _, name := range p.NoiseChannels {
		m.AddNoiseChannel(name)
	}
	if p.Weights != (Weights{}) {
		m.weights = p.Weights
	}
	if len(p.DurationRanges) > 0 {
		m.durationRanges = p.DurationRanges
	}
	return m, nil
}
