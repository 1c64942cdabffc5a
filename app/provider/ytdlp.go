package provider

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os/exec"
	"strings"
	"time"
)

// Ytdlp fetches playlist metadata by invoking the yt-dlp executable
// with JSON output (-J). In fast mode only the flat playlist listing is
// used; otherwise each entry is enriched with a per-video metadata
// fetch, falling back to the flat entry when enrichment fails.
type Ytdlp struct {
	Path     string
	Timeout  time.Duration
	MaxItems int
	Fast     bool
}

var _ Provider = (*Ytdlp)(nil)

func NewYtdlp(path string, timeout time.Duration, maxItems int, fast bool) *Ytdlp {
	return &Ytdlp{
		Path:     path,
		Timeout:  timeout,
		MaxItems: maxItems,
		Fast:     fast,
	}
}

func (y *Ytdlp) Fetch(ctx context.Context, playlistID string) (*Playlist, error) {
	if _, err := exec.LookPath(y.Path); err != nil {
		return nil, &ProviderError{PlaylistID: playlistID, Err: ErrYtdlpNotInstalled}
	}

	args := []string{"-J", "--flat-playlist", "--no-warnings", "--ignore-errors"}
	if y.MaxItems > 0 {
		args = append(args, "--playlist-items", fmt.Sprintf("1-%d", y.MaxItems))
	}
	args = append(args, PlaylistURL(playlistID))

	data, err := y.run(ctx, args)
	if err != nil {
		return nil, &ProviderError{PlaylistID: playlistID, Err: err}
	}

	playlist, err := parsePlaylist(data)
	if err != nil {
		return nil, &ProviderError{PlaylistID: playlistID, Err: err}
	}

	slog.Debug("Fetched flat playlist", "playlist", playlist.ID, "entries", len(playlist.Entries))

	if !y.Fast {
		y.enrich(ctx, playlist)
	}

	return playlist, nil
}

// run executes yt-dlp with the given arguments and returns its stdout.
func (y *Ytdlp) run(ctx context.Context, args []string) ([]byte, error) {
	if y.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, y.Timeout)
		defer cancel()
	}

	cmd := exec.CommandContext(ctx, y.Path, args...)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		return nil, classifyRunError(err, stderr.String())
	}

	return stdout.Bytes(), nil
}

// enrich replaces flat entries with full per-video metadata where a
// per-video fetch succeeds. Failures keep the flat entry.
func (y *Ytdlp) enrich(ctx context.Context, playlist *Playlist) {
	for i, entry := range playlist.Entries {
		if entry == nil || entry.ID == "" {
			continue
		}

		full, err := y.fetchVideo(ctx, entry.ID)
		if err != nil {
			slog.Debug("Per-video fetch failed, keeping flat entry", "video", entry.ID, "error", err)
			continue
		}

		playlist.Entries[i] = mergeEntry(entry, full)

		if (i+1)%25 == 0 {
			slog.Info("Enriching playlist entries", "playlist", playlist.ID, "processed", i+1)
		}
	}
}

// fetchVideo fetches full metadata for a single video.
func (y *Ytdlp) fetchVideo(ctx context.Context, videoID string) (*RawRecord, error) {
	data, err := y.run(ctx, []string{"-J", "--no-warnings", "https://www.youtube.com/watch?v=" + videoID})
	if err != nil {
		return nil, err
	}

	var record RawRecord
	if err := json.Unmarshal(data, &record); err != nil {
		return nil, fmt.Errorf("failed to parse video JSON: %w", err)
	}
	if record.ID == "" {
		return nil, fmt.Errorf("video metadata missing id")
	}

	return &record, nil
}

// mergeEntry combines a flat playlist entry with a full per-video
// record. Full fields win where present; flat fields survive where the
// full fetch returned nothing.
func mergeEntry(flat, full *RawRecord) *RawRecord {
	merged := *full

	if merged.Title == "" {
		merged.Title = flat.Title
	}
	if merged.URL == "" {
		merged.URL = flat.URL
	}
	if merged.Channel == "" {
		merged.Channel = flat.Channel
	}
	if merged.Uploader == "" {
		merged.Uploader = flat.Uploader
	}
	if merged.ChannelID == "" {
		merged.ChannelID = flat.ChannelID
	}
	if merged.Description == "" {
		merged.Description = flat.Description
	}
	if merged.Duration == nil {
		merged.Duration = flat.Duration
	}
	if merged.Timestamp == nil {
		merged.Timestamp = flat.Timestamp
	}
	if merged.UploadDate == "" {
		merged.UploadDate = flat.UploadDate
	}

	return &merged
}

// parsePlaylist decodes the yt-dlp playlist JSON and drops null entries
// (yt-dlp emits null for unavailable videos under --ignore-errors).
func parsePlaylist(data []byte) (*Playlist, error) {
	var playlist Playlist
	if err := json.Unmarshal(data, &playlist); err != nil {
		return nil, fmt.Errorf("failed to parse playlist JSON: %w", err)
	}

	if playlist.ID == "" {
		return nil, fmt.Errorf("playlist metadata missing id")
	}

	entries := make([]*RawRecord, 0, len(playlist.Entries))
	for _, entry := range playlist.Entries {
		if entry != nil {
			entries = append(entries, entry)
		}
	}
	playlist.Entries = entries

	return &playlist, nil
}

// classifyRunError maps a yt-dlp failure to a sentinel error where the
// stderr output identifies a known condition.
func classifyRunError(err error, stderr string) error {
	lower := strings.ToLower(stderr)
	if strings.Contains(lower, "does not exist") || strings.Contains(lower, "not available") {
		return fmt.Errorf("%w: %s", ErrPlaylistNotFound, firstLine(stderr))
	}

	if stderr != "" {
		return fmt.Errorf("yt-dlp failed: %s: %w", firstLine(stderr), err)
	}
	return fmt.Errorf("yt-dlp failed: %w", err)
}

func firstLine(s string) string {
	s = strings.TrimSpace(s)
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		s = s[:i]
	}
	return s
}
