package config

// PlaylistsFile represents the top-level structure of a playlists file
type PlaylistsFile struct {
	Playlists []PlaylistConfig `yaml:"playlists"`
}

// PlaylistConfig identifies one playlist to export
type PlaylistConfig struct {
	Name    string   `yaml:"name"`
	ID      string   `yaml:"id"`
	Formats []string `yaml:"formats,omitempty"` // overrides the global format list when set
	Enabled *bool    `yaml:"enabled,omitempty"` // defaults to true
}

// IsEnabled reports whether the playlist should be exported
func (p *PlaylistConfig) IsEnabled() bool {
	return p.Enabled == nil || *p.Enabled
}
