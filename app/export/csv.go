package export

import (
	"encoding/csv"
	"io"
	"strconv"
	"time"

	"github.com/lysyi3m/playlist-export/app/playlist"
)

// csvHeader lists the Video attributes in artifact column order.
var csvHeader = []string{"id", "title", "channel", "published_at", "duration", "description", "position", "url"}

// CSVExporter emits one header row and one data row per record.
// Unknown durations and missing dates render as empty cells.
type CSVExporter struct{}

var _ Exporter = (*CSVExporter)(nil)

func (e *CSVExporter) Kind() Kind { return KindCSV }

func (e *CSVExporter) Filename(playlistID string) string {
	return playlistID + ".csv"
}

func (e *CSVExporter) Export(w io.Writer, meta Meta, videos []playlist.Video) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(csvHeader); err != nil {
		return err
	}

	for _, v := range videos {
		row := []string{
			v.ID,
			v.Title,
			v.Channel,
			formatCSVTime(v.PublishedAt),
			formatCSVDuration(v.Duration),
			v.Description,
			strconv.Itoa(v.Position),
			v.URL,
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}

func formatCSVTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(time.RFC3339)
}

func formatCSVDuration(seconds *int64) string {
	if seconds == nil {
		return ""
	}
	return strconv.FormatInt(*seconds, 10)
}
