package export

import (
	"bytes"
	"cmp"
	"fmt"
	"io"
	"strings"

	"github.com/lysyi3m/playlist-export/app/playlist"
)

// MarkdownExporter renders the playlist as an ordered list, one entry
// per record with the title linking to the watch URL.
type MarkdownExporter struct{}

var _ Exporter = (*MarkdownExporter)(nil)

func (e *MarkdownExporter) Kind() Kind { return KindMarkdown }

func (e *MarkdownExporter) Filename(playlistID string) string {
	return playlistID + ".md"
}

func (e *MarkdownExporter) Export(w io.Writer, meta Meta, videos []playlist.Video) error {
	var buf bytes.Buffer

	title := cmp.Or(meta.Title, "Playlist "+meta.PlaylistID)
	fmt.Fprintf(&buf, "# %s\n", escapeMarkdown(title))

	if meta.Description != "" {
		fmt.Fprintf(&buf, "\n%s\n", meta.Description)
	}

	for _, v := range videos {
		buf.WriteString("\n")
		fmt.Fprintf(&buf, "%d. [%s](%s)", v.Position+1, escapeMarkdown(v.Title), v.URL)

		if v.Channel != "" {
			fmt.Fprintf(&buf, " by %s", escapeMarkdown(v.Channel))
		}
		if !v.PublishedAt.IsZero() {
			fmt.Fprintf(&buf, " (%s)", v.PublishedAt.Format("2006-01-02"))
		}
		if v.Duration != nil {
			fmt.Fprintf(&buf, " [%s]", playlist.FormatDuration(*v.Duration))
		}
		buf.WriteString("\n")

		if v.Description != "" {
			for _, line := range strings.Split(strings.TrimRight(v.Description, "\n"), "\n") {
				fmt.Fprintf(&buf, "   > %s\n", line)
			}
		}
	}

	_, err := w.Write(buf.Bytes())
	return err
}

// escapeMarkdown escapes the characters that would break link syntax.
func escapeMarkdown(s string) string {
	replacer := strings.NewReplacer("[", `\[`, "]", `\]`, "(", `\(`, ")", `\)`)
	return replacer.Replace(s)
}
