package model

import (
	"context"
	"log/slog"

	"curator/internal/patterns"
)

// KV is the narrow persistence surface the Manager needs. *Store satisfies
// it; tests substitute failing implementations.
type KV interface {
	Read(ctx context.Context, namespace, key string) ([]byte, bool, error)
	Write(ctx context.Context, namespace, key string, payload []byte) error
}

// Manager owns the in-memory models and mediates their persistence. Every
// mutation that flips a persistent field saves immediately; persistence
// failures degrade to in-memory-only state with a logged warning, and the
// mutation still succeeds for the caller.
type Manager struct {
	kv     KV
	logger *slog.Logger
	models map[patterns.Domain]*Model
}

// NewManager creates a manager over the given store.
func NewManager(kv KV, logger *slog.Logger) *Manager {
	if logger == nil {
		logger = slog.Default()
	}
	return &Manager{
		kv:     kv,
		logger: logger.With("component", "model"),
		models: make(map[patterns.Domain]*Model),
	}
}

// Model returns the learned model for a domain, loading it from the store on
// first use. Load failures fall back to a default model with a warning; a
// corrupt payload is not fatal.
func (m *Manager) Model(ctx context.Context, domain patterns.Domain) *Model {
	if cached, ok := m.models[domain]; ok {
		return cached
	}

	loaded := New(domain)
	data, found, err := m.kv.Read(ctx, NamespaceModels, string(domain))
	switch {
	case err != nil:
		m.logger.Warn("model load failed, using defaults", "domain", domain, "error", err)
	case found:
		decoded, decodeErr := Decode(domain, data)
		if decodeErr != nil {
			m.logger.Warn("model payload corrupt, using defaults", "domain", domain, "error", decodeErr)
		} else {
			loaded = decoded
		}
	}

	m.models[domain] = loaded
	return loaded
}

// Save persists the domain's model. Failures are absorbed: the model stays
// usable in memory and the warning surfaces in the log.
func (m *Manager) Save(ctx context.Context, domain patterns.Domain) {
	mdl, ok := m.models[domain]
	if !ok {
		return
	}
	data, err := mdl.Encode()
	if err != nil {
		m.logger.Warn("model encode failed, keeping in-memory state", "domain", domain, "error", err)
		return
	}
	if err := m.kv.Write(ctx, NamespaceModels, string(domain), data); err != nil {
		m.logger.Warn("model save failed, keeping in-memory state", "domain", domain, "error", err)
	}
}

// AddExclusion records an exclusion phrase; persistent additions are saved
// immediately.
func (m *Manager) AddExclusion(ctx context.Context, domain patterns.Domain, phrase string, persistent bool) {
	mdl := m.Model(ctx, domain)
	mdl.AddExclusion(phrase, persistent)
	if persistent {
		m.Save(ctx, domain)
	}
}

// RemoveExclusion drops an exclusion phrase; persistent removals are saved
// immediately.
func (m *Manager) RemoveExclusion(ctx context.Context, domain patterns.Domain, phrase string, persistent bool) {
	mdl := m.Model(ctx, domain)
	mdl.RemoveExclusion(phrase, persistent)
	if persistent {
		m.Save(ctx, domain)
	}
}

// AddTrustedChannel marks a channel trusted and saves.
func (m *Manager) AddTrustedChannel(ctx context.Context, domain patterns.Domain, name string) {
	mdl := m.Model(ctx, domain)
	mdl.AddTrustedChannel(name)
	m.Save(ctx, domain)
}

// AddNoiseChannel marks a channel noisy and saves.
func (m *Manager) AddNoiseChannel(ctx context.Context, domain patterns.Domain, name string) {
	mdl := m.Model(ctx, domain)
	mdl.AddNoiseChannel(name)
	m.Save(ctx, domain)
}

// ClearSessionExclusions empties the session tier for a domain. Session
// state is never persisted, so no save happens.
func (m *Manager) ClearSessionExclusions(ctx context.Context, domain patterns.Domain) {
	m.Model(ctx, domain).ClearSessionExclusions()
}
