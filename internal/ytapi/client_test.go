package ytapi_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"curator/internal/ytapi"
)

func TestNewRequiresAPIKey(t *testing.T) {
	if _, err := ytapi.New("", "https://example.com", "US"); err == nil {
		t.Fatal("expected error when api key missing")
	}
}

func TestSearchSinglePage(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/search" {
			t.Fatalf("unexpected path %q", r.URL.Path)
		}
		if r.URL.Query().Get("key") != "key" {
			t.Fatalf("expected key query parameter, got %q", r.URL.RawQuery)
		}
		if r.URL.Query().Get("q") != "Catan" {
			t.Fatalf("expected query, got %q", r.URL.Query().Get("q"))
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"items": [
				{"id": {"videoId": "v1"}, "snippet": {"title": "Catan tutorial", "channelTitle": "Guides"}},
				{"id": {"playlistId": "p1"}, "snippet": {"title": "Catan playthroughs", "channelTitle": "Guides"}}
			],
			"nextPageToken": ""
		}`))
	}))
	t.Cleanup(server.Close)

	client, err := ytapi.New("key", server.URL, "US")
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}

	page, err := client.Search(context.Background(), ytapi.SearchRequest{Query: "Catan", PageSize: 10})
	if err != nil {
		t.Fatalf("Search returned error: %v", err)
	}
	if len(page.Items) != 2 {
		t.Fatalf("expected 2 candidates, got %d", len(page.Items))
	}
	if page.Items[0].Kind != ytapi.KindVideo || page.Items[0].ID != "v1" {
		t.Fatalf("unexpected first candidate: %#v", page.Items[0])
	}
	if page.Items[1].Kind != ytapi.KindPlaylist || page.Items[1].ID != "p1" {
		t.Fatalf("unexpected second candidate: %#v", page.Items[1])
	}
}

func TestSearchWithDetailsHydratesStats(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		switch r.URL.Path {
		case "/search":
			_, _ = w.Write([]byte(`{
				"items": [{"id": {"videoId": "v1"}, "snippet": {"title": "Catan tutorial"}}]
			}`))
		case "/videos":
			if r.URL.Query().Get("id") != "v1" {
				t.Fatalf("expected batched id parameter, got %q", r.URL.Query().Get("id"))
			}
			_, _ = w.Write([]byte(`{
				"items": [{
					"id": "v1",
					"snippet": {"title": "Catan tutorial", "description": "board game rules"},
					"contentDetails": {"duration": "PT12M30S"},
					"statistics": {"viewCount": "5000", "likeCount": "400"}
				}]
			}`))
		default:
			t.Fatalf("unexpected path %q", r.URL.Path)
		}
	}))
	t.Cleanup(server.Close)

	client, err := ytapi.New("key", server.URL, "")
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}

	page, err := client.Search(context.Background(), ytapi.SearchRequest{Query: "Catan", WithDetails: true})
	if err != nil {
		t.Fatalf("Search returned error: %v", err)
	}
	if len(page.Items) != 1 {
		t.Fatalf("expected 1 candidate, got %d", len(page.Items))
	}
	got := page.Items[0]
	if !got.HasStats || got.ViewCount != 5000 || got.LikeCount != 400 {
		t.Fatalf("expected hydrated stats, got %#v", got)
	}
	if !got.HasDuration || got.DurationMinutes != 12 || got.Duration != "12m30s" {
		t.Fatalf("expected hydrated duration, got %#v", got)
	}
	if got.Description != "board game rules" {
		t.Fatalf("expected description backfill, got %q", got.Description)
	}
}

func TestSearchHTTPError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		_, _ = w.Write([]byte(`{"error": {"code": 403}}`))
	}))
	t.Cleanup(server.Close)

	client, err := ytapi.New("key", server.URL, "")
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	if _, err := client.Search(context.Background(), ytapi.SearchRequest{Query: "fail"}); err == nil {
		t.Fatal("expected error when provider returns non-200")
	}
}

func TestSearchEmptyQuery(t *testing.T) {
	client, err := ytapi.New("key", "https://example.com", "")
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	if _, err := client.Search(context.Background(), ytapi.SearchRequest{Query: "  "}); err == nil {
		t.Fatal("expected error for empty query")
	}
}

func TestCreatePlaylistPostsSnippet(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/playlists" {
			t.Fatalf("unexpected request %s %s", r.Method, r.URL.Path)
		}
		if r.Header.Get("Authorization") != "Bearer token" {
			t.Fatalf("expected bearer token header, got %q", r.Header.Get("Authorization"))
		}
		var body struct {
			Snippet struct {
				Title       string `json:"title"`
				Description string `json:"description"`
			} `json:"snippet"`
		}
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			t.Fatalf("decode body: %v", err)
		}
		if body.Snippet.Title != "Catan - Complete Guide" {
			t.Fatalf("unexpected title %q", body.Snippet.Title)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id": "new-playlist"}`))
	}))
	t.Cleanup(server.Close)

	client, err := ytapi.New("key", server.URL, "", ytapi.WithAuthToken("token"))
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}

	id, err := client.CreatePlaylist(context.Background(), "Catan - Complete Guide", "desc")
	if err != nil {
		t.Fatalf("CreatePlaylist returned error: %v", err)
	}
	if id != "new-playlist" {
		t.Fatalf("expected new playlist id, got %q", id)
	}
}

func TestGetVideoDetails(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/videos" {
			t.Fatalf("unexpected path %q", r.URL.Path)
		}
		if r.URL.Query().Get("id") != "v1" {
			t.Fatalf("expected id parameter, got %q", r.URL.Query().Get("id"))
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"items": [{
				"id": "v1",
				"snippet": {"title": "Catan tutorial", "channelTitle": "Guides"},
				"contentDetails": {"duration": "PT8M"},
				"statistics": {"viewCount": "1200", "likeCount": "90"}
			}]
		}`))
	}))
	t.Cleanup(server.Close)

	client, err := ytapi.New("key", server.URL, "")
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}

	candidate, err := client.GetVideoDetails(context.Background(), "v1")
	if err != nil {
		t.Fatalf("GetVideoDetails returned error: %v", err)
	}
	if candidate == nil || candidate.ID != "v1" || !candidate.HasStats || candidate.DurationMinutes != 8 {
		t.Fatalf("unexpected candidate: %#v", candidate)
	}
}

func TestGetVideoDetailsMissingVideo(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"items": []}`))
	}))
	t.Cleanup(server.Close)

	client, err := ytapi.New("key", server.URL, "")
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}

	candidate, err := client.GetVideoDetails(context.Background(), "gone")
	if err != nil {
		t.Fatalf("GetVideoDetails returned error: %v", err)
	}
	if candidate != nil {
		t.Fatalf("expected nil for missing video, got %#v", candidate)
	}
}

func TestRemovePlaylistItemSendsDelete(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodDelete || r.URL.Path != "/playlistItems" {
			t.Fatalf("unexpected request %s %s", r.Method, r.URL.Path)
		}
		if r.URL.Query().Get("id") != "item-1" {
			t.Fatalf("expected membership id parameter, got %q", r.URL.Query().Get("id"))
		}
		w.WriteHeader(http.StatusNoContent)
	}))
	t.Cleanup(server.Close)

	client, err := ytapi.New("key", server.URL, "", ytapi.WithAuthToken("token"))
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	if err := client.RemovePlaylistItem(context.Background(), "item-1"); err != nil {
		t.Fatalf("RemovePlaylistItem returned error: %v", err)
	}
	if err := client.RemovePlaylistItem(context.Background(), "  "); err == nil {
		t.Fatal("expected error for empty membership id")
	}
}

func TestExtractVideoID(t *testing.T) {
	cases := []struct {
		input    string
		expected string
	}{
		{"abc123", "abc123"},
		{"https://www.youtube.com/watch?v=abc123", "abc123"},
		{"https://www.youtube.com/watch?v=abc123&t=42s", "abc123"},
		{"https://www.youtube.com/watch?list=PL9&v=abc123", "abc123"},
		{"https://youtu.be/abc123", "abc123"},
		{"https://youtu.be/abc123?t=42", "abc123"},
		{"  abc123  ", "abc123"},
	}
	for _, tc := range cases {
		if got := ytapi.ExtractVideoID(tc.input); got != tc.expected {
			t.Fatalf("ExtractVideoID(%q) = %q, expected %q", tc.input, got, tc.expected)
		}
	}
}

func TestExtractPlaylistID(t *testing.T) {
	cases := []struct {
		input    string
		expected string
	}{
		{"PL123", "PL123"},
		{"https://www.youtube.com/playlist?list=PL123", "PL123"},
		{"https://www.youtube.com/watch?v=abc&list=PL123&index=2", "PL123"},
		{"  PL456  ", "PL456"},
	}
	for _, tc := range cases {
		if got := ytapi.ExtractPlaylistID(tc.input); got != tc.expected {
			t.Fatalf("ExtractPlaylistID(%q) = %q, expected %q", tc.input, got, tc.expected)
		}
	}
}
