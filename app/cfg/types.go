package cfg

type Cfg struct {
	// Export configuration
	OutDir   string
	Formats  []string
	Fast     bool
	MaxItems int

	// yt-dlp configuration
	YtdlpPath string
	Timeout   int

	// Batch mode configuration
	All           bool
	PlaylistsFile string

	// Positional playlist ID or URL (single-playlist mode)
	Playlist string

	// Application metadata
	Debug   bool
	Version string
}
