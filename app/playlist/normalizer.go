// Package playlist defines the normalized video model and the
// normalization rules that turn raw provider records into it.
package playlist

import (
	"strconv"
	"time"

	"github.com/araddon/dateparse"
	"golang.org/x/text/unicode/norm"

	"github.com/lysyi3m/playlist-export/app/provider"
)

// MalformedRecordError reports a raw entry missing a required field.
type MalformedRecordError struct {
	Position int
	ID       string
	Reason   string
}

func (e *MalformedRecordError) Error() string {
	if e.ID == "" {
		return "malformed record at position " + strconv.Itoa(e.Position) + ": " + e.Reason
	}
	return "malformed record " + e.ID + ": " + e.Reason
}

// Normalize converts one raw provider record into a Video. It fails
// when the required id or title is missing; every other field is
// defaulted. The position is assigned by the caller.
func Normalize(raw *provider.RawRecord, position int) (Video, error) {
	if raw.ID == "" {
		return Video{}, &MalformedRecordError{Position: position, Reason: "missing id"}
	}
	if raw.Title == "" {
		return Video{}, &MalformedRecordError{Position: position, ID: raw.ID, Reason: "missing title"}
	}

	video := Video{
		ID:          raw.ID,
		Title:       norm.NFC.String(raw.Title),
		Channel:     norm.NFC.String(coalesce(raw.Channel, raw.Uploader)),
		PublishedAt: normalizeTimestamp(raw),
		Duration:    normalizeDuration(raw.Duration),
		Description: raw.Description,
		Position:    position,
		URL:         WatchURL(raw.ID),
	}

	return video, nil
}

// NormalizeAll normalizes a raw entry sequence, collecting failures
// instead of short-circuiting. Duplicate video IDs keep the first
// occurrence. Surviving videos are renumbered 0..n-1 in input order.
func NormalizeAll(raws []*provider.RawRecord) ([]Video, []SkippedRecord) {
	videos := make([]Video, 0, len(raws))
	skipped := make([]SkippedRecord, 0)
	seen := make(map[string]bool, len(raws))

	for i, raw := range raws {
		if seen[raw.ID] {
			skipped = append(skipped, SkippedRecord{Position: i, ID: raw.ID, Reason: "duplicate id"})
			continue
		}

		video, err := Normalize(raw, len(videos))
		if err != nil {
			malformed := err.(*MalformedRecordError)
			skipped = append(skipped, SkippedRecord{Position: i, ID: malformed.ID, Reason: malformed.Reason})
			continue
		}

		seen[video.ID] = true
		videos = append(videos, video)
	}

	return videos, skipped
}

// normalizeTimestamp resolves the published time to UTC. The epoch
// timestamp wins; otherwise the upload date string is parsed with UTC
// assumed for timezone-less input. Missing dates yield the zero time.
func normalizeTimestamp(raw *provider.RawRecord) time.Time {
	if raw.Timestamp != nil {
		return time.Unix(*raw.Timestamp, 0).UTC()
	}

	if raw.UploadDate != "" {
		// yt-dlp upload dates are YYYYMMDD
		if t, err := time.ParseInLocation("20060102", raw.UploadDate, time.UTC); err == nil {
			return t
		}
		if t, err := dateparse.ParseIn(raw.UploadDate, time.UTC); err == nil {
			return t.UTC()
		}
	}

	return time.Time{}
}

func normalizeDuration(seconds *float64) *int64 {
	if seconds == nil || *seconds < 0 {
		return nil
	}
	d := int64(*seconds)
	return &d
}

func coalesce(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
