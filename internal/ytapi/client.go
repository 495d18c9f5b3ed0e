package ytapi

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"curator/internal/services"
)

// The provider caps page sizes at 50 items regardless of what is requested.
const maxPageSize = 50

// SearchRequest describes a text search against the provider.
type SearchRequest struct {
	Query           string
	Kind            Kind   // empty searches videos and playlists together
	Order           string // relevance, date, viewCount, rating
	PublishedAfter  string // RFC 3339
	PublishedBefore string // RFC 3339
	PageSize        int
	Cursor          string
	// WithDetails hydrates statistics, durations, and item counts with
	// follow-up batched detail calls (one per resource type per page).
	WithDetails bool
}

// Provider defines the content provider operations the engine consumes.
type Provider interface {
	Search(ctx context.Context, req SearchRequest) (*Page, error)
	ListPlaylistItems(ctx context.Context, playlistID string, pageSize int, cursor string) (*Page, error)
	ListMyPlaylists(ctx context.Context, pageSize int, cursor string) (*Page, error)
	GetVideoDetails(ctx context.Context, id string) (*Candidate, error)
	CreatePlaylist(ctx context.Context, title, description string) (string, error)
	DeletePlaylist(ctx context.Context, id string) error
	InsertPlaylistItem(ctx context.Context, playlistID, videoID string) (string, error)
	RemovePlaylistItem(ctx context.Context, playlistItemID string) error
}

// Client provides access to the YouTube Data API v3.
type Client struct {
	apiKey            string
	authToken         string
	baseURL           string
	region            string
	relevanceLanguage string
	httpClient        *http.Client
}

var _ Provider = (*Client)(nil)

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient overrides the default HTTP client.
func WithHTTPClient(client *http.Client) Option {
	return func(c *Client) {
		if client != nil {
			c.httpClient = client
		}
	}
}

// WithAuthToken attaches an OAuth bearer token for operations on the
// operator's own playlists. Token acquisition happens outside this package.
func WithAuthToken(token string) Option {
	return func(c *Client) {
		c.authToken = strings.TrimSpace(token)
	}
}

// WithRelevanceLanguage sets the relevanceLanguage hint sent on searches.
func WithRelevanceLanguage(lang string) Option {
	return func(c *Client) {
		c.relevanceLanguage = strings.TrimSpace(lang)
	}
}

// New creates a YouTube Data API client.
func New(apiKey, baseURL, region string, opts ...Option) (*Client, error) {
	apiKey = strings.TrimSpace(apiKey)
	if apiKey == "" {
		return nil, errors.New("youtube api key required")
	}
	baseURL = strings.TrimSpace(baseURL)
	if baseURL == "" {
		return nil, errors.New("youtube base url required")
	}
	client := &Client{
		apiKey:     apiKey,
		baseURL:    strings.TrimRight(baseURL, "/"),
		region:     strings.TrimSpace(region),
		httpClient: &http.Client{Timeout: 15 * time.Second},
	}
	for _, opt := range opts {
		opt(client)
	}
	return client, nil
}

// Search executes one page of a text search. When req.WithDetails is set the
// returned candidates carry statistics, durations, and playlist item counts.
func (c *Client) Search(ctx context.Context, req SearchRequest) (*Page, error) {
	query := strings.TrimSpace(req.Query)
	if query == "" {
		return nil, errors.New("query must not be empty")
	}

	params := url.Values{}
	params.Set("part", "snippet")
	params.Set("q", query)
	params.Set("maxResults", strconv.Itoa(clampPageSize(req.PageSize)))
	if req.Kind != "" {
		params.Set("type", string(req.Kind))
	} else {
		params.Set("type", "video,playlist")
	}
	if req.Order != "" {
		params.Set("order", req.Order)
	}
	if req.PublishedAfter != "" {
		params.Set("publishedAfter", req.PublishedAfter)
	}
	if req.PublishedBefore != "" {
		params.Set("publishedBefore", req.PublishedBefore)
	}
	if req.Cursor != "" {
		params.Set("pageToken", req.Cursor)
	}
	if c.region != "" {
		params.Set("regionCode", c.region)
	}
	if c.relevanceLanguage != "" {
		params.Set("relevanceLanguage", c.relevanceLanguage)
	}

	var payload searchResponse
	if err := c.get(ctx, "/search", params, &payload); err != nil {
		return nil, services.Wrap(services.ErrProvider, "ytapi", "search", query, err)
	}

	page := &Page{NextCursor: payload.NextPageToken}
	for _, item := range payload.Items {
		candidate, ok := item.toCandidate()
		if !ok {
			continue
		}
		page.Items = append(page.Items, candidate)
	}

	if req.WithDetails {
		if err := c.hydrateDetails(ctx, page.Items); err != nil {
			return nil, services.Wrap(services.ErrProvider, "ytapi", "search details", query, err)
		}
	}
	return page, nil
}

// ListPlaylistItems fetches one page of a playlist's contents.
func (c *Client) ListPlaylistItems(ctx context.Context, playlistID string, pageSize int, cursor string) (*Page, error) {
	cleanID := ExtractPlaylistID(playlistID)
	if cleanID == "" {
		return nil, errors.New("playlist id must not be empty")
	}

	params := url.Values{}
	params.Set("part", "snippet")
	params.Set("playlistId", cleanID)
	params.Set("maxResults", strconv.Itoa(clampPageSize(pageSize)))
	if cursor != "" {
		params.Set("pageToken", cursor)
	}

	var payload playlistItemsResponse
	if err := c.get(ctx, "/playlistItems", params, &payload); err != nil {
		return nil, services.Wrap(services.ErrProvider, "ytapi", "list playlist items", cleanID, err)
	}

	page := &Page{NextCursor: payload.NextPageToken}
	for _, item := range payload.Items {
		page.Items = append(page.Items, item.toCandidate())
	}
	return page, nil
}

// ListMyPlaylists fetches one page of the authenticated operator's playlists.
func (c *Client) ListMyPlaylists(ctx context.Context, pageSize int, cursor string) (*Page, error) {
	params := url.Values{}
	params.Set("part", "snippet,contentDetails")
	params.Set("mine", "true")
	params.Set("maxResults", strconv.Itoa(clampPageSize(pageSize)))
	if cursor != "" {
		params.Set("pageToken", cursor)
	}

	var payload playlistsResponse
	if err := c.get(ctx, "/playlists", params, &payload); err != nil {
		return nil, services.Wrap(services.ErrProvider, "ytapi", "list my playlists", "", err)
	}

	page := &Page{NextCursor: payload.NextPageToken}
	for _, item := range payload.Items {
		page.Items = append(page.Items, item.toCandidate())
	}
	return page, nil
}

// GetVideoDetails fetches full metadata for a single video. A missing video
// returns (nil, nil).
func (c *Client) GetVideoDetails(ctx context.Context, id string) (*Candidate, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return nil, errors.New("video id must not be empty")
	}

	params := url.Values{}
	params.Set("part", "snippet,statistics,contentDetails")
	params.Set("id", id)

	var payload videosResponse
	if err := c.get(ctx, "/videos", params, &payload); err != nil {
		return nil, services.Wrap(services.ErrProvider, "ytapi", "video details", id, err)
	}
	if len(payload.Items) == 0 {
		return nil, nil
	}
	candidate := payload.Items[0].toCandidate()
	return &candidate, nil
}

// CreatePlaylist creates a playlist owned by the operator and returns its ID.
func (c *Client) CreatePlaylist(ctx context.Context, title, description string) (string, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return "", errors.New("playlist title must not be empty")
	}

	body := map[string]any{
		"snippet": map[string]any{
			"title":       title,
			"description": description,
		},
	}
	params := url.Values{}
	params.Set("part", "snippet")

	var payload playlistResource
	if err := c.post(ctx, "/playlists", params, body, &payload); err != nil {
		return "", services.Wrap(services.ErrProvider, "ytapi", "create playlist", title, err)
	}
	if payload.ID == "" {
		return "", services.Wrap(services.ErrProvider, "ytapi", "create playlist", "provider returned no id", nil)
	}
	return payload.ID, nil
}

// DeletePlaylist removes a playlist owned by the operator.
func (c *Client) DeletePlaylist(ctx context.Context, id string) error {
	cleanID := ExtractPlaylistID(id)
	if cleanID == "" {
		return errors.New("playlist id must not be empty")
	}
	params := url.Values{}
	params.Set("id", cleanID)
	if err := c.delete(ctx, "/playlists", params); err != nil {
		return services.Wrap(services.ErrProvider, "ytapi", "delete playlist", cleanID, err)
	}
	return nil
}

// InsertPlaylistItem appends a video to a playlist and returns the membership
// entry's ID.
func (c *Client) InsertPlaylistItem(ctx context.Context, playlistID, videoID string) (string, error) {
	cleanID := ExtractPlaylistID(playlistID)
	if cleanID == "" || strings.TrimSpace(videoID) == "" {
		return "", errors.New("playlist id and video id required")
	}

	body := map[string]any{
		"snippet": map[string]any{
			"playlistId": cleanID,
			"resourceId": map[string]any{
				"kind":    "youtube#video",
				"videoId": videoID,
			},
		},
	}
	params := url.Values{}
	params.Set("part", "snippet")

	var payload playlistItemResource
	if err := c.post(ctx, "/playlistItems", params, body, &payload); err != nil {
		return "", services.Wrap(services.ErrProvider, "ytapi", "insert playlist item", videoID, err)
	}
	return payload.ID, nil
}

// RemovePlaylistItem deletes a playlist membership entry.
func (c *Client) RemovePlaylistItem(ctx context.Context, playlistItemID string) error {
	playlistItemID = strings.TrimSpace(playlistItemID)
	if playlistItemID == "" {
		return errors.New("playlist item id must not be empty")
	}
	params := url.Values{}
	params.Set("id", playlistItemID)
	if err := c.delete(ctx, "/playlistItems", params); err != nil {
		return services.Wrap(services.ErrProvider, "ytapi", "remove playlist item", playlistItemID, err)
	}
	return nil
}

// ExtractPlaylistID accepts a bare playlist ID or any watch/playlist URL
// containing a list= parameter and returns the bare ID.
func ExtractPlaylistID(value string) string {
	value = strings.TrimSpace(value)
	if idx := strings.Index(value, "list="); idx >= 0 {
		rest := value[idx+len("list="):]
		if amp := strings.IndexByte(rest, '&'); amp >= 0 {
			rest = rest[:amp]
		}
		return rest
	}
	return value
}

// ExtractVideoID accepts a bare video ID, a watch URL with a v= parameter,
// or a youtu.be short link and returns the bare ID.
func ExtractVideoID(value string) string {
	value = strings.TrimSpace(value)
	for _, marker := range []string{"?v=", "&v="} {
		if idx := strings.Index(value, marker); idx >= 0 {
			rest := value[idx+len(marker):]
			if amp := strings.IndexByte(rest, '&'); amp >= 0 {
				rest = rest[:amp]
			}
			return rest
		}
	}
	if idx := strings.Index(value, "youtu.be/"); idx >= 0 {
		rest := value[idx+len("youtu.be/"):]
		if cut := strings.IndexAny(rest, "?&"); cut >= 0 {
			rest = rest[:cut]
		}
		return rest
	}
	return value
}

// hydrateDetails batch-fetches statistics and durations for video candidates
// and item counts for playlist candidates, one detail call per resource type.
func (c *Client) hydrateDetails(ctx context.Context, items []Candidate) error {
	videoIdx := make(map[string]int)
	playlistIdx := make(map[string]int)
	for i, item := range items {
		switch item.Kind {
		case KindVideo:
			videoIdx[item.ID] = i
		case KindPlaylist:
			playlistIdx[item.ID] = i
		}
	}

	if len(videoIdx) > 0 {
		ids := make([]string, 0, len(videoIdx))
		for id := range videoIdx {
			ids = append(ids, id)
		}
		params := url.Values{}
		params.Set("part", "snippet,statistics,contentDetails")
		params.Set("id", strings.Join(ids, ","))

		var payload videosResponse
		if err := c.get(ctx, "/videos", params, &payload); err != nil {
			return fmt.Errorf("video details: %w", err)
		}
		for _, item := range payload.Items {
			idx, ok := videoIdx[item.ID]
			if !ok {
				continue
			}
			detail := item.toCandidate()
			items[idx].Duration = detail.Duration
			items[idx].DurationMinutes = detail.DurationMinutes
			items[idx].HasDuration = detail.HasDuration
			items[idx].ViewCount = detail.ViewCount
			items[idx].LikeCount = detail.LikeCount
			items[idx].HasStats = detail.HasStats
			if items[idx].Description == "" {
				items[idx].Description = detail.Description
			}
		}
	}

	if len(playlistIdx) > 0 {
		ids := make([]string, 0, len(playlistIdx))
		for id := range playlistIdx {
			ids = append(ids, id)
		}
		params := url.Values{}
		params.Set("part", "snippet,contentDetails")
		params.Set("id", strings.Join(ids, ","))

		var payload playlistsResponse
		if err := c.get(ctx, "/playlists", params, &payload); err != nil {
			return fmt.Errorf("playlist details: %w", err)
		}
		for _, item := range payload.Items {
			if idx, ok := playlistIdx[item.ID]; ok {
				items[idx].ItemCount = item.ContentDetails.ItemCount
			}
		}
	}
	return nil
}

func clampPageSize(size int) int {
	if size <= 0 || size > maxPageSize {
		return maxPageSize
	}
	return size
}

func (c *Client) get(ctx context.Context, path string, params url.Values, out any) error {
	return c.do(ctx, http.MethodGet, path, params, nil, out)
}

func (c *Client) post(ctx context.Context, path string, params url.Values, body, out any) error {
	return c.do(ctx, http.MethodPost, path, params, body, out)
}

func (c *Client) delete(ctx context.Context, path string, params url.Values) error {
	return c.do(ctx, http.MethodDelete, path, params, nil, nil)
}

func (c *Client) do(ctx context.Context, method, path string, params url.Values, body, out any) error {
	endpoint, err := url.Parse(c.baseURL + path)
	if err != nil {
		return fmt.Errorf("parse url: %w", err)
	}
	if params == nil {
		params = url.Values{}
	}
	params.Set("key", c.apiKey)
	endpoint.RawQuery = params.Encode()

	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode body: %w", err)
		}
		reader = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint.String(), reader)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.authToken != "" {
		req.Header.Set("Authorization", "Bearer "+c.authToken)
	}

	requestStart := time.Now()
	resp, err := c.httpClient.Do(req)
	latency := time.Since(requestStart)
	if err != nil {
		return fmt.Errorf("execute request (latency=%v): %w", latency, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("youtube %s returned %d (latency=%v)", path, resp.StatusCode, latency)
	}
	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}
