package provider

// Raw provider types

// Playlist is the provider-level view of one playlist: its own metadata
// plus the unvalidated entries, in playlist order.
type Playlist struct {
	ID          string      `json:"id"`
	Title       string      `json:"title"`
	Channel     string      `json:"channel,omitempty"`
	Uploader    string      `json:"uploader,omitempty"`
	Description string      `json:"description,omitempty"`
	WebpageURL  string      `json:"webpage_url,omitempty"`
	Entries     []*RawRecord `json:"entries"`
}

// RawRecord is yt-dlp's native representation of one video entry.
// Nothing outside the normalizer should depend on these fields.
type RawRecord struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	URL         string   `json:"url,omitempty"`
	WebpageURL  string   `json:"webpage_url,omitempty"`
	Channel     string   `json:"channel,omitempty"`
	Uploader    string   `json:"uploader,omitempty"`
	ChannelID   string   `json:"channel_id,omitempty"`
	Description string   `json:"description,omitempty"`
	Duration    *float64 `json:"duration,omitempty"`
	Timestamp   *int64   `json:"timestamp,omitempty"`
	UploadDate  string   `json:"upload_date,omitempty"`
}
