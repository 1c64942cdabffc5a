// Package export serializes normalized video sequences into the
// supported artifact formats.
package export

import (
	"fmt"
	"io"

	"github.com/lysyi3m/playlist-export/app/playlist"
)

type Kind string

const (
	KindJSON     Kind = "json"
	KindCSV      Kind = "csv"
	KindMarkdown Kind = "markdown"
	KindRSS      Kind = "rss"
)

// Meta carries the playlist-level fields exporters may render (RSS
// channel element, Markdown heading). Artifact content never depends
// on anything else outside the video sequence.
type Meta struct {
	PlaylistID  string
	Title       string
	Channel     string
	Description string
	Link        string
	Generator   string
}

// Exporter serializes an ordered video sequence into one format. The
// input slice must not be mutated, and output order must match input
// order.
type Exporter interface {
	Kind() Kind
	Filename(playlistID string) string
	Export(w io.Writer, meta Meta, videos []playlist.Video) error
}

// For returns the exporter for a format kind.
func For(kind Kind) (Exporter, error) {
	switch kind {
	case KindJSON:
		return &JSONExporter{}, nil
	case KindCSV:
		return &CSVExporter{}, nil
	case KindMarkdown:
		return &MarkdownExporter{}, nil
	case KindRSS:
		return &RSSExporter{}, nil
	default:
		return nil, fmt.Errorf("unknown export format: %s", kind)
	}
}

// ParseKinds resolves format names (with common aliases) into kinds,
// dropping duplicates while preserving order.
func ParseKinds(names []string) ([]Kind, error) {
	kinds := make([]Kind, 0, len(names))
	seen := make(map[Kind]bool, len(names))

	for _, name := range names {
		var kind Kind
		switch name {
		case "json":
			kind = KindJSON
		case "csv":
			kind = KindCSV
		case "markdown", "md":
			kind = KindMarkdown
		case "rss", "xml":
			kind = KindRSS
		default:
			return nil, fmt.Errorf("unknown export format: %s", name)
		}

		if !seen[kind] {
			seen[kind] = true
			kinds = append(kinds, kind)
		}
	}

	if len(kinds) == 0 {
		return nil, fmt.Errorf("no export formats requested")
	}

	return kinds, nil
}
