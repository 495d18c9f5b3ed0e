package ytapi

import "context"

// SearchAll follows continuation cursors until the provider stops returning
// one and returns the flattened results in provider order. maxItems > 0 stops
// the loop once that many candidates have accumulated; the slice is truncated
// to the cap. A page failure aborts the fetch and discards everything already
// accumulated.
func SearchAll(ctx context.Context, provider Provider, req SearchRequest, maxItems int) ([]Candidate, error) {
	var items []Candidate
	req.Cursor = ""
	for {
		page, err := provider.Search(ctx, req)
		if err != nil {
			return nil, err
		}
		items = append(items, page.Items...)
		if maxItems > 0 && len(items) >= maxItems {
			return items[:maxItems], nil
		}
		if page.NextCursor == "" {
			return items, nil
		}
		req.Cursor = page.NextCursor
	}
}

// ListAllPlaylistItems drains a playlist's contents page by page. When
// ownerChannel is non-empty, items owned by a different channel are dropped
// after fetching; the filter never reaches the provider.
func ListAllPlaylistItems(ctx context.Context, provider Provider, playlistID, ownerChannel string) ([]Candidate, error) {
	var items []Candidate
	cursor := ""
	for {
		page, err := provider.ListPlaylistItems(ctx, playlistID, maxPageSize, cursor)
		if err != nil {
			return nil, err
		}
		for _, item := range page.Items {
			if ownerChannel != "" && item.ChannelID != ownerChannel {
				continue
			}
			items = append(items, item)
		}
		if page.NextCursor == "" {
			return items, nil
		}
		cursor = page.NextCursor
	}
}

// ListAllMyPlaylists drains the operator's playlist collection.
func ListAllMyPlaylists(ctx context.Context, provider Provider) ([]Candidate, error) {
	var items []Candidate
	cursor := ""
	for {
		page, err := provider.ListMyPlaylists(ctx, maxPageSize, cursor)
		if err != nil {
			return nil, err
		}
		items = append(items, page.Items...)
		if page.NextCursor == "" {
			return items, nil
		}
		cursor = page.NextCursor
	}
}
