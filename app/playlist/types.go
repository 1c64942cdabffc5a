package playlist

import (
	"fmt"
	"time"
)

// Video is the normalized, validated representation of one playlist
// entry. It is constructed once by the normalizer and never mutated.
type Video struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Channel     string    `json:"channel"`
	PublishedAt time.Time `json:"published_at"`
	Duration    *int64    `json:"duration,omitempty"` // seconds, nil when unknown
	Description string    `json:"description"`
	Position    int       `json:"position"`
	URL         string    `json:"url"`
}

// SkippedRecord describes one raw entry that did not survive
// normalization.
type SkippedRecord struct {
	Position int
	ID       string
	Reason   string
}

// WatchURL returns the canonical watch URL for a video ID.
func WatchURL(videoID string) string {
	return "https://www.youtube.com/watch?v=" + videoID
}

// FormatDuration renders a duration in seconds as M:SS or H:MM:SS.
func FormatDuration(seconds int64) string {
	if seconds <= 0 {
		return "0:00"
	}
	m, s := seconds/60, seconds%60
	h, m := m/60, m%60
	if h > 0 {
		return fmt.Sprintf("%d:%02d:%02d", h, m, s)
	}
	return fmt.Sprintf("%d:%02d", m, s)
}
