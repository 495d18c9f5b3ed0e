package search_test

import (
	"context"
	"errors"
	"testing"

	"curator/internal/config"
	"curator/internal/model"
	"curator/internal/patterns"
	"curator/internal/quota"
	"curator/internal/search"
	"curator/internal/services"
	"curator/internal/testsupport"
	"curator/internal/ytapi"
)

// stubProvider serves canned search pages and fails loudly on anything else.
type stubProvider struct {
	search func(ctx context.Context, req ytapi.SearchRequest) (*ytapi.Page, error)
	calls  int
}

func (s *stubProvider) Search(ctx context.Context, req ytapi.SearchRequest) (*ytapi.Page, error) {
	s.calls++
	return s.search(ctx, req)
}

func (s *stubProvider) ListPlaylistItems(context.Context, string, int, string) (*ytapi.Page, error) {
	return nil, errors.New("not implemented")
}

func (s *stubProvider) ListMyPlaylists(context.Context, int, string) (*ytapi.Page, error) {
	return nil, errors.New("not implemented")
}

func (s *stubProvider) GetVideoDetails(context.Context, string) (*ytapi.Candidate, error) {
	return nil, errors.New("not implemented")
}

func (s *stubProvider) CreatePlaylist(context.Context, string, string) (string, error) {
	return "", errors.New("not implemented")
}

func (s *stubProvider) DeletePlaylist(context.Context, string) error {
	return errors.New("not implemented")
}

func (s *stubProvider) InsertPlaylistItem(context.Context, string, string) (string, error) {
	return "", errors.New("not implemented")
}

func (s *stubProvider) RemovePlaylistItem(context.Context, string) error {
	return errors.New("not implemented")
}

func newEngine(t *testing.T, provider ytapi.Provider, settings config.Search) (*search.Engine, *model.Manager) {
	t.Helper()
	cfg := testsupport.NewConfig(t)
	store := testsupport.MustOpenStore(t, cfg)
	models := model.NewManager(store, nil)
	ledger := quota.NewLedger(cfg.Quota, nil, nil)
	return search.NewEngine(provider, ledger, models, settings, nil), models
}

func TestSearchRanksAndCapsResults(t *testing.T) {
	provider := &stubProvider{}
	provider.search = func(context.Context, ytapi.SearchRequest) (*ytapi.Page, error) {
		call := string(rune('a' + provider.calls))
		return &ytapi.Page{Items: []ytapi.Candidate{
			{ID: "plain-" + call, Kind: ytapi.KindVideo, Title: "Unrelated"},
			{ID: "hit-" + call, Kind: ytapi.KindVideo, Title: "Catan review"},
		}}, nil
	}
	engine, _ := newEngine(t, provider, config.Search{PerPatternResults: 15, MaxResults: 3})

	results, err := engine.Search(context.Background(), "Catan", patterns.DomainBoard, patterns.CategoryReview)
	if err != nil {
		t.Fatalf("Search failed: %v", err)
	}
	if len(results) != 3 {
		t.Fatalf("expected results capped at 3, got %d", len(results))
	}
	for i := 1; i < len(results); i++ {
		if results[i].Score > results[i-1].Score {
			t.Fatalf("results not sorted by score: %d before %d", results[i-1].Score, results[i].Score)
		}
	}
	if results[0].Candidate.Title != "Catan review" {
		t.Fatalf("expected a title match at the top, got %#v", results[0].Candidate)
	}
}

func TestSearchDeduplicatesKeepingHighestScore(t *testing.T) {
	// The same video comes back for every pattern, but only one fetch carries
	// stats. The deduplicated entry must keep the higher-scoring copy.
	provider := &stubProvider{}
	provider.search = func(context.Context, ytapi.SearchRequest) (*ytapi.Page, error) {
		candidate := ytapi.Candidate{ID: "abc", Kind: ytapi.KindVideo, Title: "Catan review"}
		if provider.calls > 1 {
			candidate.ViewCount = 30000
			candidate.LikeCount = 3000
			candidate.HasStats = true
		}
		return &ytapi.Page{Items: []ytapi.Candidate{candidate}}, nil
	}
	engine, _ := newEngine(t, provider, config.Search{PerPatternResults: 15, MaxResults: 10})

	results, err := engine.Search(context.Background(), "Catan", patterns.DomainBoard, patterns.CategoryReview)
	if err != nil {
		t.Fatalf("Search failed: %v", err)
	}
	if len(results) != 1 {
		t.Fatalf("expected one deduplicated result, got %d", len(results))
	}
	weights := model.DefaultWeights()
	if results[0].Score <= weights.TitleMatch {
		t.Fatalf("dedup kept the statless copy: score %d", results[0].Score)
	}
}

func TestSearchFiltersNoiseChannelsAndGenericPhrases(t *testing.T) {
	provider := &stubProvider{
		search: func(context.Context, ytapi.SearchRequest) (*ytapi.Page, error) {
			return &ytapi.Page{Items: []ytapi.Candidate{
				{ID: "keep", Kind: ytapi.KindVideo, Title: "Catan review", ChannelTitle: "Fine Channel"},
				{ID: "noisy", Kind: ytapi.KindVideo, Title: "Catan review", ChannelTitle: "Spam Channel"},
				{ID: "generic", Kind: ytapi.KindVideo, Title: "Catan lot for sale", ChannelTitle: "Fine Channel"},
			}}, nil
		},
	}
	engine, models := newEngine(t, provider, config.Search{PerPatternResults: 15, MaxResults: 10})
	models.AddNoiseChannel(context.Background(), patterns.DomainBoard, "Spam Channel")

	results, err := engine.Search(context.Background(), "Catan", patterns.DomainBoard, patterns.CategoryReview)
	if err != nil {
		t.Fatalf("Search failed: %v", err)
	}
	if len(results) != 1 || results[0].Candidate.ID != "keep" {
		t.Fatalf("expected only the clean candidate, got %#v", results)
	}
}

func TestSearchDiscardsPartialResultsOnProviderFailure(t *testing.T) {
	provider := &stubProvider{}
	provider.search = func(context.Context, ytapi.SearchRequest) (*ytapi.Page, error) {
		if provider.calls >= 3 {
			return nil, services.Wrap(services.ErrProvider, "ytapi", "search", "boom", nil)
		}
		return &ytapi.Page{Items: []ytapi.Candidate{{ID: "x", Kind: ytapi.KindVideo, Title: "Catan review"}}}, nil
	}
	engine, _ := newEngine(t, provider, config.Search{PerPatternResults: 15, MaxResults: 10})

	results, err := engine.Search(context.Background(), "Catan", patterns.DomainBoard, patterns.CategoryReview)
	if !errors.Is(err, services.ErrProvider) {
		t.Fatalf("expected provider error, got %v", err)
	}
	if results != nil {
		t.Fatalf("expected no partial results, got %#v", results)
	}
}

func TestSearchAbortsWhenQuotaDeclined(t *testing.T) {
	provider := &stubProvider{
		search: func(context.Context, ytapi.SearchRequest) (*ytapi.Page, error) {
			return &ytapi.Page{}, nil
		},
	}
	cfg := testsupport.NewConfig(t)
	store := testsupport.MustOpenStore(t, cfg)
	decline := quota.ConfirmerFunc(func(string) (bool, error) { return false, nil })
	ledger := quota.NewLedger(cfg.Quota, decline, nil)
	engine := search.NewEngine(provider, ledger, model.NewManager(store, nil), config.Search{PerPatternResults: 15, MaxResults: 10}, nil)

	_, err := engine.Search(context.Background(), "Catan", patterns.DomainBoard, patterns.CategoryReview)
	if !errors.Is(err, services.ErrQuotaDeclined) {
		t.Fatalf("expected quota-declined error, got %v", err)
	}
	if provider.calls != 0 {
		t.Fatalf("declined charge must prevent provider calls, got %d", provider.calls)
	}
	if used := ledger.Status().Used; used != 0 {
		t.Fatalf("declined charge must not consume quota, used=%d", used)
	}
}

func TestSearchRejectsEmptyTarget(t *testing.T) {
	engine, _ := newEngine(t, &stubProvider{}, config.Search{PerPatternResults: 15, MaxResults: 10})
	_, err := engine.Search(context.Background(), "   ", patterns.DomainBoard, patterns.CategoryReview)
	if !errors.Is(err, services.ErrInput) {
		t.Fatalf("expected input error, got %v", err)
	}
}
