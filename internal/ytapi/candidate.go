package ytapi

import "fmt"

// Kind tags the resource type of a search result.
type Kind string

const (
	KindVideo    Kind = "video"
	KindPlaylist Kind = "playlist"
	KindChannel  Kind = "channel"
)

// Candidate is one raw result returned by the provider, immutable once
// fetched within a query cycle. Optional attributes carry a companion flag
// rather than sentinel values so a genuine zero (a 45-second video rounds to
// zero minutes) stays distinguishable from absent data.
type Candidate struct {
	ID           string
	Kind         Kind
	Title        string
	ChannelID    string
	ChannelTitle string
	Description  string
	// PublishedAt is the provider's RFC 3339 timestamp, kept raw. Scoring
	// parses it lazily and treats unparseable values as no recency signal.
	PublishedAt string

	// Video-only attributes.
	Duration        string
	DurationMinutes int
	HasDuration     bool
	ViewCount       int64
	LikeCount       int64
	HasStats        bool

	// Playlist-only attributes.
	ItemCount int

	// PlaylistItemID is set when the candidate came from a playlistItems
	// listing; it identifies the membership entry, not the video.
	PlaylistItemID string
}

// URL returns the canonical watch or playlist URL for the candidate.
func (c Candidate) URL() string {
	switch c.Kind {
	case KindPlaylist:
		return fmt.Sprintf("https://www.youtube.com/playlist?list=%s", c.ID)
	case KindChannel:
		return fmt.Sprintf("https://www.youtube.com/channel/%s", c.ID)
	default:
		return fmt.Sprintf("https://www.youtube.com/watch?v=%s", c.ID)
	}
}

// Page is one page of provider results plus the continuation cursor. An
// empty cursor means the listing is exhausted.
type Page struct {
	Items      []Candidate
	NextCursor string
}
