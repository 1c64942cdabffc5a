package playlist

import (
	"testing"
	"time"

	"github.com/lysyi3m/playlist-export/app/provider"
)

func floatPtr(f float64) *float64 { return &f }
func int64Ptr(i int64) *int64     { return &i }

func TestNormalize(t *testing.T) {
	raw := &provider.RawRecord{
		ID:          "vid1",
		Title:       "Test Video",
		Channel:     "Test Channel",
		Description: "A description",
		Duration:    floatPtr(125.0),
		Timestamp:   int64Ptr(1688378400),
	}

	video, err := Normalize(raw, 3)
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}

	if video.ID != "vid1" {
		t.Errorf("Expected ID 'vid1', got '%s'", video.ID)
	}
	if video.Title != "Test Video" {
		t.Errorf("Expected title 'Test Video', got '%s'", video.Title)
	}
	if video.Channel != "Test Channel" {
		t.Errorf("Expected channel 'Test Channel', got '%s'", video.Channel)
	}
	if video.Position != 3 {
		t.Errorf("Expected position 3, got %d", video.Position)
	}
	if video.URL != "https://www.youtube.com/watch?v=vid1" {
		t.Errorf("Unexpected URL: '%s'", video.URL)
	}
	if video.Duration == nil || *video.Duration != 125 {
		t.Errorf("Expected duration 125, got %v", video.Duration)
	}

	expected := time.Date(2023, 7, 3, 10, 0, 0, 0, time.UTC)
	if !video.PublishedAt.Equal(expected) {
		t.Errorf("Expected published %v, got %v", expected, video.PublishedAt)
	}
	if video.PublishedAt.Location() != time.UTC {
		t.Error("Expected published time in UTC")
	}
}

func TestNormalizeRequiredFields(t *testing.T) {
	tests := []struct {
		name string
		raw  *provider.RawRecord
	}{
		{"missing id", &provider.RawRecord{Title: "Has Title"}},
		{"missing title", &provider.RawRecord{ID: "vid1"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Normalize(tt.raw, 0)
			if err == nil {
				t.Fatal("Expected a MalformedRecordError")
			}
			if _, ok := err.(*MalformedRecordError); !ok {
				t.Errorf("Expected *MalformedRecordError, got %T", err)
			}
		})
	}
}

func TestNormalizeDefaults(t *testing.T) {
	video, err := Normalize(&provider.RawRecord{ID: "vid1", Title: "Bare"}, 0)
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}

	if video.Duration != nil {
		t.Errorf("Expected nil duration, got %v", video.Duration)
	}
	if video.Description != "" {
		t.Errorf("Expected empty description, got '%s'", video.Description)
	}
	if !video.PublishedAt.IsZero() {
		t.Errorf("Expected zero published time, got %v", video.PublishedAt)
	}
}

func TestNormalizeUploadDate(t *testing.T) {
	video, err := Normalize(&provider.RawRecord{
		ID:         "vid1",
		Title:      "Dated",
		UploadDate: "20230703",
	}, 0)
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}

	expected := time.Date(2023, 7, 3, 0, 0, 0, 0, time.UTC)
	if !video.PublishedAt.Equal(expected) {
		t.Errorf("Expected %v, got %v", expected, video.PublishedAt)
	}
}

func TestNormalizeTimezoneLessDateAssumesUTC(t *testing.T) {
	video, err := Normalize(&provider.RawRecord{
		ID:         "vid1",
		Title:      "Dated",
		UploadDate: "2023-07-03 10:00:00",
	}, 0)
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}

	expected := time.Date(2023, 7, 3, 10, 0, 0, 0, time.UTC)
	if !video.PublishedAt.Equal(expected) {
		t.Errorf("Expected %v, got %v", expected, video.PublishedAt)
	}
}

func TestNormalizeNegativeDuration(t *testing.T) {
	video, err := Normalize(&provider.RawRecord{
		ID:       "vid1",
		Title:    "Live",
		Duration: floatPtr(-1),
	}, 0)
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}

	if video.Duration != nil {
		t.Errorf("Expected negative duration to normalize to nil, got %v", video.Duration)
	}
}

func TestNormalizeUploaderFallback(t *testing.T) {
	video, err := Normalize(&provider.RawRecord{
		ID:       "vid1",
		Title:    "Video",
		Uploader: "Uploader Name",
	}, 0)
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}

	if video.Channel != "Uploader Name" {
		t.Errorf("Expected uploader fallback, got '%s'", video.Channel)
	}
}

func TestNormalizeAll(t *testing.T) {
	raws := []*provider.RawRecord{
		{ID: "vid1", Title: "First"},
		{ID: "vid2"}, // missing title
		{ID: "vid3", Title: "Third"},
	}

	videos, skipped := NormalizeAll(raws)

	if len(videos) != 2 {
		t.Fatalf("Expected 2 videos, got %d", len(videos))
	}
	if len(skipped) != 1 {
		t.Fatalf("Expected 1 skipped record, got %d", len(skipped))
	}

	if skipped[0].ID != "vid2" || skipped[0].Reason != "missing title" {
		t.Errorf("Unexpected skip note: %+v", skipped[0])
	}

	// Positions are renumbered gap-free over the survivors
	if videos[0].Position != 0 || videos[1].Position != 1 {
		t.Errorf("Expected positions 0,1, got %d,%d", videos[0].Position, videos[1].Position)
	}
	if videos[1].ID != "vid3" {
		t.Errorf("Expected 'vid3' at position 1, got '%s'", videos[1].ID)
	}
}

func TestNormalizeAllDeduplicates(t *testing.T) {
	raws := []*provider.RawRecord{
		{ID: "vid1", Title: "First"},
		{ID: "vid1", Title: "First Again"},
		{ID: "vid2", Title: "Second"},
	}

	videos, skipped := NormalizeAll(raws)

	if len(videos) != 2 {
		t.Fatalf("Expected 2 videos after dedup, got %d", len(videos))
	}
	if videos[0].Title != "First" {
		t.Errorf("Expected first occurrence to win, got '%s'", videos[0].Title)
	}
	if len(skipped) != 1 || skipped[0].Reason != "duplicate id" {
		t.Errorf("Expected one duplicate skip, got %+v", skipped)
	}
}

func TestNormalizeAllEmpty(t *testing.T) {
	videos, skipped := NormalizeAll(nil)
	if len(videos) != 0 || len(skipped) != 0 {
		t.Errorf("Expected empty results, got %d videos, %d skipped", len(videos), len(skipped))
	}
}

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		seconds  int64
		expected string
	}{
		{0, "0:00"},
		{59, "0:59"},
		{61, "1:01"},
		{3661, "1:01:01"},
		{7325, "2:02:05"},
	}

	for _, tt := range tests {
		if got := FormatDuration(tt.seconds); got != tt.expected {
			t.Errorf("FormatDuration(%d) = %q, expected %q", tt.seconds, got, tt.expected)
		}
	}
}
