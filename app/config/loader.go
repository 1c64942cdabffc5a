package config

import (
	"fmt"
	"log/slog"
	"os"

	"gopkg.in/yaml.v3"
)

// Loader handles loading and validation of the playlists file
type Loader struct {
	path string
}

// NewLoader creates a new playlists file loader
func NewLoader(path string) *Loader {
	return &Loader{path: path}
}

// Load reads the playlists file and returns the enabled playlist entries
func (l *Loader) Load() ([]PlaylistConfig, error) {
	data, err := os.ReadFile(l.path)
	if err != nil {
		return nil, fmt.Errorf("failed to read playlists file: %w", err)
	}

	var file PlaylistsFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	playlists := make([]PlaylistConfig, 0, len(file.Playlists))
	for i, p := range file.Playlists {
		if err := l.validate(&p); err != nil {
			return nil, fmt.Errorf("invalid playlist entry %d: %w", i+1, err)
		}

		l.setDefaults(&p)

		if !p.IsEnabled() {
			slog.Debug("Playlist disabled, skipping", "playlist", p.Name)
			continue
		}

		playlists = append(playlists, p)
	}

	slog.Debug("Loaded playlists file", "path", l.path, "playlists", len(playlists))
	return playlists, nil
}

// setDefaults applies default values to a playlist entry
func (l *Loader) setDefaults(p *PlaylistConfig) {
	if p.Name == "" {
		p.Name = p.ID
	}
}

// validate validates a playlist entry
func (l *Loader) validate(p *PlaylistConfig) error {
	if p.ID == "" {
		return fmt.Errorf("playlist id is required")
	}
	return nil
}
