package playlist

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"curator/internal/patterns"
	"curator/internal/quota"
	"curator/internal/services"
	"curator/internal/ytapi"
)

var titleCaser = cases.Title(language.English)

// Result summarizes a built guide.
type Result struct {
	PlaylistID string
	Title      string
	Inserted   int
	Failed     int
}

// Builder creates guide playlists from a reviewed selection.
type Builder struct {
	provider ytapi.Provider
	ledger   *quota.Ledger
	history  *History
	logger   *slog.Logger
}

// NewBuilder creates a playlist builder.
func NewBuilder(provider ytapi.Provider, ledger *quota.Ledger, history *History, logger *slog.Logger) *Builder {
	if logger == nil {
		logger = slog.Default()
	}
	return &Builder{
		provider: provider,
		ledger:   ledger,
		history:  history,
		logger:   logger.With("component", "playlist"),
	}
}

// GuideTitle derives the playlist title for a target name.
func GuideTitle(target string) string {
	return fmt.Sprintf("%s - Complete Guide", titleCaser.String(strings.TrimSpace(target)))
}

// Build expands the selection, creates the guide playlist, and inserts every
// unique video. Selected playlists contribute their full contents. Insert
// failures are logged and counted rather than aborting the guide; a creation
// failure aborts before any insert.
func (b *Builder) Build(ctx context.Context, target string, domain patterns.Domain, selection []ytapi.Candidate) (*Result, error) {
	target = strings.TrimSpace(target)
	if target == "" {
		return nil, services.Wrap(services.ErrInput, "playlist", "build", "target name required", nil)
	}
	if len(selection) == 0 {
		return nil, services.Wrap(services.ErrInput, "playlist", "build", "empty selection", nil)
	}

	videos, err := b.expand(ctx, selection)
	if err != nil {
		return nil, err
	}
	if len(videos) == 0 {
		return nil, services.Wrap(services.ErrInput, "playlist", "build", "selection contains no videos", nil)
	}

	cost := b.ledger.WriteCost() * (1 + len(videos))
	label := fmt.Sprintf("creating guide playlist with %d videos", len(videos))
	if err := b.ledger.EstimateAndCharge(cost, label); err != nil {
		return nil, err
	}

	title := GuideTitle(target)
	description := fmt.Sprintf("Curated %s guide for %s. Generated %s.",
		domain, target, time.Now().UTC().Format("2006-01-02"))
	playlistID, err := b.provider.CreatePlaylist(ctx, title, description)
	if err != nil {
		return nil, err
	}
	b.logger.Info("created guide playlist", "playlist_id", playlistID, "title", title)

	result := &Result{PlaylistID: playlistID, Title: title}
	for _, video := range videos {
		if _, err := b.provider.InsertPlaylistItem(ctx, playlistID, video.ID); err != nil {
			b.logger.Warn("insert failed, continuing", "video_id", video.ID, "error", err)
			result.Failed++
			continue
		}
		result.Inserted++
	}

	b.history.Record(ctx, Entry{
		PlaylistID: playlistID,
		Title:      title,
		Target:     target,
		Domain:     domain,
		VideoCount: result.Inserted,
		CreatedAt:  time.Now().UTC(),
	})
	return result, nil
}

// Delete removes a guide playlist from the account and from the local
// history.
func (b *Builder) Delete(ctx context.Context, playlistID string) error {
	playlistID = ytapi.ExtractPlaylistID(playlistID)
	if playlistID == "" {
		return services.Wrap(services.ErrInput, "playlist", "delete", "playlist id required", nil)
	}
	if err := b.ledger.EstimateAndCharge(b.ledger.WriteCost(), "deleting playlist"); err != nil {
		return err
	}
	if err := b.provider.DeletePlaylist(ctx, playlistID); err != nil {
		return err
	}
	b.history.Forget(ctx, playlistID)
	b.logger.Info("deleted playlist", "playlist_id", playlistID)
	return nil
}

// Items lists a playlist's contents in playlist order, charging detail quota
// for the fetch. Each returned candidate carries the membership entry ID
// needed to remove it.
func (b *Builder) Items(ctx context.Context, playlistID string) ([]ytapi.Candidate, error) {
	playlistID = ytapi.ExtractPlaylistID(playlistID)
	if playlistID == "" {
		return nil, services.Wrap(services.ErrInput, "playlist", "items", "playlist id required", nil)
	}
	if err := b.ledger.EstimateAndCharge(b.ledger.DetailCost(), "listing playlist items"); err != nil {
		return nil, err
	}
	return ytapi.ListAllPlaylistItems(ctx, b.provider, playlistID, "")
}

// RemoveVideo drops a video from a playlist by resolving its membership
// entry first. Removing a video the playlist does not contain is an input
// error, not a provider call.
func (b *Builder) RemoveVideo(ctx context.Context, playlistID, videoID string) error {
	videoID = strings.TrimSpace(videoID)
	if videoID == "" {
		return services.Wrap(services.ErrInput, "playlist", "remove video", "video id required", nil)
	}
	items, err := b.Items(ctx, playlistID)
	if err != nil {
		return err
	}
	var itemID string
	for _, item := range items {
		if item.ID == videoID && item.PlaylistItemID != "" {
			itemID = item.PlaylistItemID
			break
		}
	}
	if itemID == "" {
		return services.Wrap(services.ErrInput, "playlist", "remove video",
			fmt.Sprintf("video %s is not in the playlist", videoID), nil)
	}
	if err := b.ledger.EstimateAndCharge(b.ledger.WriteCost(), "removing playlist video"); err != nil {
		return err
	}
	if err := b.provider.RemovePlaylistItem(ctx, itemID); err != nil {
		return err
	}
	b.logger.Info("removed playlist video", "playlist_id", ytapi.ExtractPlaylistID(playlistID), "video_id", videoID)
	return nil
}

// expand flattens the selection into unique videos: videos pass through,
// playlists contribute their contents. First occurrence wins, so selection
// order decides the guide's ordering. Expanding a playlist charges detail
// quota before fetching.
func (b *Builder) expand(ctx context.Context, selection []ytapi.Candidate) ([]ytapi.Candidate, error) {
	var videos []ytapi.Candidate
	seen := make(map[string]struct{})
	add := func(candidate ytapi.Candidate) {
		if _, dup := seen[candidate.ID]; dup || candidate.ID == "" {
			return
		}
		seen[candidate.ID] = struct{}{}
		videos = append(videos, candidate)
	}

	for _, candidate := range selection {
		switch candidate.Kind {
		case ytapi.KindPlaylist:
			label := fmt.Sprintf("expanding playlist %q", candidate.Title)
			if err := b.ledger.EstimateAndCharge(b.ledger.DetailCost(), label); err != nil {
				return nil, err
			}
			items, err := ytapi.ListAllPlaylistItems(ctx, b.provider, candidate.ID, "")
			if err != nil {
				return nil, err
			}
			b.logger.Debug("expanded playlist", "playlist_id", candidate.ID, "videos", len(items))
			for _, item := range items {
				add(item)
			}
		case ytapi.KindVideo:
			add(candidate)
		default:
			b.logger.Debug("skipping non-video selection", "id", candidate.ID, "kind", candidate.Kind)
		}
	}
	return videos, nil
}
