package export

import (
	"bytes"
	"cmp"
	"encoding/xml"
	"fmt"
	"io"
	"time"

	"github.com/lysyi3m/playlist-export/app/playlist"
)

// RSSExporter emits an RSS 2.0 document with one item per record. The
// channel element is filled from the playlist metadata, with defaults
// so the required title/link/description fields are always present.
type RSSExporter struct{}

var _ Exporter = (*RSSExporter)(nil)

func (e *RSSExporter) Kind() Kind { return KindRSS }

func (e *RSSExporter) Filename(playlistID string) string {
	return playlistID + ".xml"
}

func (e *RSSExporter) Export(w io.Writer, meta Meta, videos []playlist.Video) error {
	var buf bytes.Buffer

	buf.WriteString(`<?xml version="1.0" encoding="UTF-8"?>`)
	buf.WriteString("\n")
	buf.WriteString(`<rss version="2.0">`)
	buf.WriteString("\n  <channel>\n")

	link := cmp.Or(meta.Link, "https://www.youtube.com/playlist?list="+meta.PlaylistID)

	e.writeElement(&buf, "title", cmp.Or(meta.Title, "Playlist "+meta.PlaylistID), 4)
	e.writeElement(&buf, "link", link, 4)
	e.writeElement(&buf, "description", cmp.Or(meta.Description, fmt.Sprintf("Videos from playlist %s", meta.PlaylistID)), 4)

	if meta.Generator != "" {
		e.writeElement(&buf, "generator", meta.Generator, 4)
	}

	if lastBuild := latestPublished(videos); !lastBuild.IsZero() {
		e.writeElement(&buf, "lastBuildDate", lastBuild.Format(time.RFC1123Z), 4)
	}

	for _, v := range videos {
		e.writeItem(&buf, v)
	}

	buf.WriteString("  </channel>\n</rss>\n")

	_, err := w.Write(buf.Bytes())
	return err
}

func (e *RSSExporter) writeItem(buf *bytes.Buffer, v playlist.Video) {
	buf.WriteString("    <item>\n")

	buf.WriteString(`      <guid isPermaLink="true">`)
	xml.EscapeText(buf, []byte(v.URL))
	buf.WriteString("</guid>\n")

	e.writeElement(buf, "title", v.Title, 6)
	e.writeElement(buf, "link", v.URL, 6)
	e.writeElement(buf, "description", cmp.Or(v.Description, "No description available"), 6)

	if !v.PublishedAt.IsZero() {
		e.writeElement(buf, "pubDate", v.PublishedAt.Format(time.RFC1123Z), 6)
	}

	if v.Channel != "" {
		e.writeElement(buf, "author", v.Channel, 6)
	}

	buf.WriteString("    </item>\n")
}

func (e *RSSExporter) writeElement(buf *bytes.Buffer, tag, content string, indent int) {
	if content == "" {
		return
	}

	for i := 0; i < indent; i++ {
		buf.WriteByte(' ')
	}

	buf.WriteString("<")
	buf.WriteString(tag)
	buf.WriteString(">")
	xml.EscapeText(buf, []byte(content))
	buf.WriteString("</")
	buf.WriteString(tag)
	buf.WriteString(">\n")
}

// latestPublished returns the newest published time across the
// sequence, or the zero time when no record carries a date.
func latestPublished(videos []playlist.Video) time.Time {
	var latest time.Time
	for _, v := range videos {
		if v.PublishedAt.After(latest) {
			latest = v.PublishedAt
		}
	}
	return latest
}
