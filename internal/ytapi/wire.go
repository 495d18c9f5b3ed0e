package ytapi

import (
	"strconv"
	"strings"
)

type searchResponse struct {
	Items         []searchItem `json:"items"`
	NextPageToken string       `json:"nextPageToken"`
}

type searchItem struct {
	ID      searchItemID `json:"id"`
	Snippet snippet      `json:"snippet"`
}

type searchItemID struct {
	Kind       string `json:"kind"`
	VideoID    string `json:"videoId"`
	PlaylistID string `json:"playlistId"`
	ChannelID  string `json:"channelId"`
}

type snippet struct {
	Title        string `json:"title"`
	Description  string `json:"description"`
	ChannelID    string `json:"channelId"`
	ChannelTitle string `json:"channelTitle"`
	PublishedAt  string `json:"publishedAt"`
}

func (s searchItem) toCandidate() (Candidate, bool) {
	candidate := Candidate{
		Title:        s.Snippet.Title,
		Description:  s.Snippet.Description,
		ChannelID:    s.Snippet.ChannelID,
		ChannelTitle: s.Snippet.ChannelTitle,
		PublishedAt:  s.Snippet.PublishedAt,
	}
	switch {
	case s.ID.VideoID != "":
		candidate.ID = s.ID.VideoID
		candidate.Kind = KindVideo
	case s.ID.PlaylistID != "":
		candidate.ID = s.ID.PlaylistID
		candidate.Kind = KindPlaylist
	case s.ID.ChannelID != "":
		candidate.ID = s.ID.ChannelID
		candidate.Kind = KindChannel
	default:
		return Candidate{}, false
	}
	return candidate, true
}

type videosResponse struct {
	Items []videoResource `json:"items"`
}

type videoResource struct {
	ID             string  `json:"id"`
	Snippet        snippet `json:"snippet"`
	ContentDetails struct {
		Duration string `json:"duration"`
	} `json:"contentDetails"`
	Statistics struct {
		ViewCount string `json:"viewCount"`
		LikeCount string `json:"likeCount"`
	} `json:"statistics"`
}

func (v videoResource) toCandidate() Candidate {
	candidate := Candidate{
		ID:           v.ID,
		Kind:         KindVideo,
		Title:        v.Snippet.Title,
		Description:  v.Snippet.Description,
		ChannelID:    v.Snippet.ChannelID,
		ChannelTitle: v.Snippet.ChannelTitle,
		PublishedAt:  v.Snippet.PublishedAt,
	}
	if v.ContentDetails.Duration != "" {
		if minutes, err := ParseISODuration(v.ContentDetails.Duration); err == nil {
			candidate.DurationMinutes = minutes
			candidate.HasDuration = true
		}
		candidate.Duration = FormatDuration(v.ContentDetails.Duration)
	}
	if v.Statistics.ViewCount != "" {
		views, err := strconv.ParseInt(v.Statistics.ViewCount, 10, 64)
		if err == nil {
			candidate.ViewCount = views
			candidate.HasStats = true
		}
		if likes, err := strconv.ParseInt(v.Statistics.LikeCount, 10, 64); err == nil {
			candidate.LikeCount = likes
		}
	}
	return candidate
}

type playlistsResponse struct {
	Items         []playlistResource `json:"items"`
	NextPageToken string             `json:"nextPageToken"`
}

type playlistResource struct {
	ID             string  `json:"id"`
	Snippet        snippet `json:"snippet"`
	ContentDetails struct {
		ItemCount int `json:"itemCount"`
	} `json:"contentDetails"`
}

func (p playlistResource) toCandidate() Candidate {
	return Candidate{
		ID:           p.ID,
		Kind:         KindPlaylist,
		Title:        p.Snippet.Title,
		Description:  p.Snippet.Description,
		ChannelID:    p.Snippet.ChannelID,
		ChannelTitle: p.Snippet.ChannelTitle,
		PublishedAt:  p.Snippet.PublishedAt,
		ItemCount:    p.ContentDetails.ItemCount,
	}
}

type playlistItemsResponse struct {
	Items         []playlistItemResource `json:"items"`
	NextPageToken string                 `json:"nextPageToken"`
}

type playlistItemResource struct {
	ID      string `json:"id"`
	Snippet struct {
		Title                  string `json:"title"`
		ChannelTitle           string `json:"channelTitle"`
		PublishedAt            string `json:"publishedAt"`
		VideoOwnerChannelID    string `json:"videoOwnerChannelId"`
		VideoOwnerChannelTitle string `json:"videoOwnerChannelTitle"`
		ResourceID             struct {
			VideoID string `json:"videoId"`
		} `json:"resourceId"`
	} `json:"snippet"`
}

func (p playlistItemResource) toCandidate() Candidate {
	title := strings.TrimSpace(p.Snippet.Title)
	return Candidate{
		ID:             p.Snippet.ResourceID.VideoID,
		Kind:           KindVideo,
		Title:          title,
		ChannelID:      p.Snippet.VideoOwnerChannelID,
		ChannelTitle:   p.Snippet.VideoOwnerChannelTitle,
		PublishedAt:    p.Snippet.PublishedAt,
		PlaylistItemID: p.ID,
	}
}
