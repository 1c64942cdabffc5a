package export

import (
	"encoding/json"
	"io"

	"github.com/lysyi3m/playlist-export/app/playlist"
)

// JSONExporter emits the video sequence as an indented JSON array with
// one object per record. Re-parsing the output reconstructs the
// sequence field-for-field.
type JSONExporter struct{}

var _ Exporter = (*JSONExporter)(nil)

func (e *JSONExporter) Kind() Kind { return KindJSON }

func (e *JSONExporter) Filename(playlistID string) string {
	return playlistID + ".json"
}

func (e *JSONExporter) Export(w io.Writer, meta Meta, videos []playlist.Video) error {
	if videos == nil {
		// an empty playlist is [], never null
		videos = []playlist.Video{}
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return enc.Encode(videos)
}
