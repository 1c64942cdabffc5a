package cfg

import (
	"cmp"
	"fmt"
	"strings"

	"github.com/jessevdk/go-flags"
)

// Version is set at build time via -ldflags
var Version = "dev"

func GetVersion() string {
	return cmp.Or(Version, "unknown")
}

type rawCfg struct {
	// Export configuration
	OutDir   string `long:"out-dir" env:"PE_OUT_DIR" default:"./data" description:"Directory to write export artifacts into"`
	Formats  string `long:"formats" env:"PE_FORMATS" default:"json,csv,markdown,rss" description:"Comma-separated list of export formats"`
	Fast     bool   `long:"fast" env:"PE_FAST" description:"Fast mode: flat playlist entries only, no per-video metadata"`
	MaxItems int    `long:"max-items" env:"PE_MAX_ITEMS" default:"1000" description:"Maximum number of playlist entries to fetch"`

	// yt-dlp configuration
	YtdlpPath string `long:"ytdlp-path" env:"PE_YTDLP_PATH" default:"yt-dlp" description:"Path to the yt-dlp executable"`
	Timeout   int    `long:"timeout" env:"PE_TIMEOUT" default:"120" description:"Timeout for a single yt-dlp invocation in seconds"`

	// Batch mode configuration
	All           bool   `long:"all" description:"Export all playlists listed in the playlists file"`
	PlaylistsFile string `long:"playlists" env:"PE_PLAYLISTS_FILE" default:"./playlists.yml" description:"Path to the YAML playlists file used with --all"`

	// Application metadata
	Debug        bool `long:"debug" env:"PE_DEBUG" description:"Enable debug logging"`
	PrintVersion bool `long:"version" description:"Print version and exit"`
}

var globalCfg *Cfg

func Load() (*Cfg, error) {
	var raw rawCfg

	parser := flags.NewParser(&raw, flags.Default)
	parser.Usage = "[OPTIONS] [PLAYLIST]"

	args, err := parser.Parse()
	if err != nil {
		if flagsErr, ok := err.(*flags.Error); ok {
			if flagsErr.Type == flags.ErrHelp {
				return nil, nil
			}
		}
		return nil, fmt.Errorf("failed to parse configuration: %w", err)
	}

	if raw.PrintVersion {
		fmt.Printf("playlist-export %s\n", GetVersion())
		return nil, nil
	}

	cfg := &Cfg{
		OutDir:        raw.OutDir,
		Formats:       splitFormats(raw.Formats),
		Fast:          raw.Fast,
		MaxItems:      raw.MaxItems,
		YtdlpPath:     raw.YtdlpPath,
		Timeout:       raw.Timeout,
		All:           raw.All,
		PlaylistsFile: raw.PlaylistsFile,
		Debug:         raw.Debug,
		Version:       GetVersion(),
	}

	if len(args) > 0 {
		cfg.Playlist = args[0]
	}

	if !cfg.All && cfg.Playlist == "" {
		return nil, fmt.Errorf("provide a PLAYLIST argument or use --all")
	}
	if cfg.MaxItems < 0 {
		return nil, fmt.Errorf("max items must be non-negative")
	}
	if cfg.Timeout <= 0 {
		return nil, fmt.Errorf("timeout must be positive")
	}

	globalCfg = cfg

	return cfg, nil
}

func Get() *Cfg {
	if globalCfg == nil {
		panic("configuration not loaded - call cfg.Load() first")
	}
	return globalCfg
}

func splitFormats(s string) []string {
	parts := strings.Split(s, ",")
	formats := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.ToLower(strings.TrimSpace(p))
		if p != "" {
			formats = append(formats, p)
		}
	}
	return formats
}
