// Package pipeline orchestrates one export run: fetch once, normalize
// once, fan out to the requested exporters.
package pipeline

import (
	"cmp"
	"context"
	"fmt"
	"log/slog"
	"os"
	"sync"

	"github.com/google/uuid"

	"github.com/lysyi3m/playlist-export/app/export"
	"github.com/lysyi3m/playlist-export/app/playlist"
	"github.com/lysyi3m/playlist-export/app/provider"
)

type Runner struct {
	provider  provider.Provider
	outDir    string
	generator string
}

func NewRunner(p provider.Provider, outDir, generator string) *Runner {
	return &Runner{
		provider:  p,
		outDir:    outDir,
		generator: generator,
	}
}

// Request describes one playlist export.
type Request struct {
	Playlist string // playlist ID or URL
	Name     string // display name for reporting, defaults to the ID
	Kinds    []export.Kind
}

// ExportResult is the outcome of one exporter invocation.
type ExportResult struct {
	Kind export.Kind
	Path string
	Err  error
}

// Report summarizes one run.
type Report struct {
	RunID      string
	PlaylistID string
	Title      string
	Videos     int
	Skipped    []playlist.SkippedRecord
	Results    []ExportResult
	Empty      bool
}

// Failed reports whether the run produced no artifact at all: every
// requested exporter failed. Per-record skips and partial export
// failures are warnings, not failures.
func (r *Report) Failed() bool {
	if len(r.Results) == 0 {
		return true
	}
	for _, res := range r.Results {
		if res.Err == nil {
			return false
		}
	}
	return true
}

// Run executes one export: a single provider fetch, a single
// normalization pass, then every requested exporter over the identical
// video sequence. A provider failure is fatal and leaves no files; an
// exporter failure never aborts its siblings.
func (r *Runner) Run(ctx context.Context, req Request) (*Report, error) {
	report := &Report{
		RunID:      uuid.NewString(),
		PlaylistID: provider.ExtractID(req.Playlist),
	}

	logger := slog.With("run", report.RunID, "playlist", report.PlaylistID)

	pl, err := r.provider.Fetch(ctx, req.Playlist)
	if err != nil {
		return nil, err
	}
	report.PlaylistID = pl.ID
	report.Title = pl.Title

	videos, skipped := playlist.NormalizeAll(pl.Entries)
	report.Videos = len(videos)
	report.Skipped = skipped

	if len(skipped) > 0 {
		ids := make([]string, 0, len(skipped))
		for _, s := range skipped {
			ids = append(ids, cmp.Or(s.ID, fmt.Sprintf("position %d", s.Position)))
		}
		logger.Warn("Skipped malformed records", "count", len(skipped), "records", ids)
	}

	if len(videos) == 0 {
		report.Empty = true
		logger.Warn("Playlist is empty, exporting empty artifacts")
	}

	if err := os.MkdirAll(r.outDir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create output directory: %w", err)
	}

	meta := export.Meta{
		PlaylistID:  pl.ID,
		Title:       pl.Title,
		Channel:     cmp.Or(pl.Channel, pl.Uploader),
		Description: pl.Description,
		Link:        cmp.Or(pl.WebpageURL, provider.PlaylistURL(pl.ID)),
		Generator:   r.generator,
	}

	report.Results = r.export(meta, videos, req.Kinds)

	for _, res := range report.Results {
		if res.Err != nil {
			logger.Error("Export failed", "format", res.Kind, "error", res.Err)
			continue
		}
		logger.Info("Export complete", "format", res.Kind, "path", res.Path, "videos", len(videos))
	}

	return report, nil
}

// export fans out to the requested exporters concurrently. All
// exporters read the same immutable slice and write to distinct files,
// so the output is identical to a sequential run.
func (r *Runner) export(meta export.Meta, videos []playlist.Video, kinds []export.Kind) []ExportResult {
	results := make([]ExportResult, len(kinds))

	var wg sync.WaitGroup
	for i, kind := range kinds {
		exporter, err := export.For(kind)
		if err != nil {
			results[i] = ExportResult{Kind: kind, Err: err}
			continue
		}

		wg.Add(1)
		go func(i int, kind export.Kind, exporter export.Exporter) {
			defer wg.Done()
			path, err := export.WriteFile(exporter, r.outDir, meta, videos)
			results[i] = ExportResult{Kind: kind, Path: path, Err: err}
		}(i, kind, exporter)
	}
	wg.Wait()

	return results
}
