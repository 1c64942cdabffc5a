// Package provider fetches raw playlist metadata from YouTube.
package provider

import (
	"context"
	"errors"
	"strings"
)

// Sentinel errors for playlist fetching.
var (
	ErrPlaylistNotFound  = errors.New("provider: playlist not found")
	ErrYtdlpNotInstalled = errors.New("provider: yt-dlp not installed")
)

// Provider fetches raw metadata for a playlist. Implementations own the
// raw record shape; callers treat the result as an opaque snapshot.
type Provider interface {
	Fetch(ctx context.Context, playlistID string) (*Playlist, error)
}

// ProviderError wraps fetch errors with the playlist that was requested.
//
// Use errors.As() to extract it, and errors.Is() against the sentinels
// above for classification.
type ProviderError struct {
	PlaylistID string
	Err        error
}

func (e *ProviderError) Error() string {
	return "provider: fetching " + e.PlaylistID + ": " + e.Err.Error()
}

func (e *ProviderError) Unwrap() error { return e.Err }

// PlaylistURL accepts either a full URL or a bare playlist ID and
// returns a playlist URL.
func PlaylistURL(idOrURL string) string {
	if strings.HasPrefix(idOrURL, "http://") || strings.HasPrefix(idOrURL, "https://") {
		return idOrURL
	}
	return "https://www.youtube.com/playlist?list=" + idOrURL
}

// ExtractID returns the playlist ID from a URL, or the input unchanged
// when it is already a bare ID.
func ExtractID(idOrURL string) string {
	if !strings.Contains(idOrURL, "list=") {
		return idOrURL
	}
	id := idOrURL[strings.Index(idOrURL, "list=")+len("list="):]
	if i := strings.IndexAny(id, "&#"); i >= 0 {
		id = id[:i]
	}
	return id
}
