package playlist

import (
	"context"
	"log/slog"
	"time"

	json "github.com/goccy/go-json"

	"curator/internal/model"
	"curator/internal/patterns"
)

// historyKey is the single entry under the history namespace holding the
// recent-guides list.
const historyKey = "playlists"

// historyLimit caps how many recent guides are remembered.
const historyLimit = 10

// Entry records one created guide playlist.
type Entry struct {
	PlaylistID string          `json:"playlist_id"`
	Title      string          `json:"title"`
	Target     string          `json:"target"`
	Domain     patterns.Domain `json:"domain"`
	VideoCount int             `json:"video_count"`
	CreatedAt  time.Time       `json:"created_at"`
}

// History is the local record of recently created guides, most recent
// first. Persistence failures degrade to a warning; creating a guide never
// fails because its bookkeeping did.
type History struct {
	kv     model.KV
	logger *slog.Logger
}

// NewHistory creates a history over the state store.
func NewHistory(kv model.KV, logger *slog.Logger) *History {
	if logger == nil {
		logger = slog.Default()
	}
	return &History{kv: kv, logger: logger.With("component", "playlist")}
}

// List returns the recorded guides, most recent first. A missing or corrupt
// record reads as empty.
func (h *History) List(ctx context.Context) []Entry {
	data, found, err := h.kv.Read(ctx, model.NamespaceHistory, historyKey)
	if err != nil {
		h.logger.Warn("history read failed", "error", err)
		return nil
	}
	if !found {
		return nil
	}
	var entries []Entry
	if err := json.Unmarshal(data, &entries); err != nil {
		h.logger.Warn("history payload corrupt, ignoring", "error", err)
		return nil
	}
	return entries
}

// Record prepends an entry and trims the list to the history limit.
func (h *History) Record(ctx context.Context, entry Entry) {
	entries := append([]Entry{entry}, h.List(ctx)...)
	if len(entries) > historyLimit {
		entries = entries[:historyLimit]
	}
	data, err := json.Marshal(entries)
	if err != nil {
		h.logger.Warn("history encode failed", "error", err)
		return
	}
	if err := h.kv.Write(ctx, model.NamespaceHistory, historyKey, data); err != nil {
		h.logger.Warn("history save failed", "error", err)
	}
}

// Forget drops a playlist from the history, keyed by ID. Used after the
// remote playlist is deleted.
func (h *History) Forget(ctx context.Context, playlistID string) {
	entries := h.List(ctx)
	kept := entries[:0]
	for _, entry := range entries {
		if entry.PlaylistID != playlistID {
			kept = append(kept, entry)
		}
	}
	data, err := json.Marshal(kept)
	if err != nil {
		h.logger.Warn("history encode failed", "error", err)
		return
	}
	if err := h.kv.Write(ctx, model.NamespaceHistory, historyKey, data); err != nil {
		h.logger.Warn("history save failed", "error", err)
	}
}
