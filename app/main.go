package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/lysyi3m/playlist-export/app/cfg"
	"github.com/lysyi3m/playlist-export/app/config"
	"github.com/lysyi3m/playlist-export/app/export"
	"github.com/lysyi3m/playlist-export/app/pipeline"
	"github.com/lysyi3m/playlist-export/app/provider"
)

func main() {
	os.Exit(run())
}

func run() int {
	appCfg, err := cfg.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	if appCfg == nil {
		// Help or version was shown, exit gracefully
		return 0
	}

	setupLogging(appCfg.Debug)

	defaultKinds, err := export.ParseKinds(appCfg.Formats)
	if err != nil {
		slog.Error("Invalid format list", "error", err)
		return 1
	}

	requests, err := buildRequests(appCfg, defaultKinds)
	if err != nil {
		slog.Error("Failed to build export list", "error", err)
		return 1
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	ytdlp := provider.NewYtdlp(
		appCfg.YtdlpPath,
		time.Duration(appCfg.Timeout)*time.Second,
		appCfg.MaxItems,
		appCfg.Fast,
	)
	runner := pipeline.NewRunner(ytdlp, appCfg.OutDir, "playlist-export/"+appCfg.Version)

	exported := 0
	reports := make([]string, 0, len(requests))

	for _, req := range requests {
		if ctx.Err() != nil {
			slog.Warn("Interrupted, stopping")
			break
		}

		report, err := runner.Run(ctx, req)
		if err != nil {
			reports = append(reports, fmt.Sprintf("✗ %s: %v", req.Name, err))
			continue
		}
		if report.Failed() {
			reports = append(reports, fmt.Sprintf("✗ %s: all exports failed", req.Name))
			continue
		}

		line := fmt.Sprintf("✓ %s: %d items → %s", req.Name, report.Videos, appCfg.OutDir)
		if len(report.Skipped) > 0 {
			line += fmt.Sprintf(" (%d skipped)", len(report.Skipped))
		}
		reports = append(reports, line)
		exported++
	}

	for _, line := range reports {
		fmt.Println(line)
	}
	fmt.Printf("\nDone. %d/%d playlist(s) exported.\n", exported, len(requests))

	if exported < len(requests) {
		return 1
	}
	return 0
}

// buildRequests resolves the playlists to export: the positional
// argument, or every enabled entry of the playlists file with --all.
func buildRequests(appCfg *cfg.Cfg, defaultKinds []export.Kind) ([]pipeline.Request, error) {
	if !appCfg.All {
		return []pipeline.Request{{
			Playlist: appCfg.Playlist,
			Name:     provider.ExtractID(appCfg.Playlist),
			Kinds:    defaultKinds,
		}}, nil
	}

	playlists, err := config.NewLoader(appCfg.PlaylistsFile).Load()
	if err != nil {
		return nil, err
	}
	if len(playlists) == 0 {
		return nil, fmt.Errorf("no enabled playlists in %s", appCfg.PlaylistsFile)
	}

	requests := make([]pipeline.Request, 0, len(playlists))
	for _, p := range playlists {
		kinds := defaultKinds
		if len(p.Formats) > 0 {
			kinds, err = export.ParseKinds(p.Formats)
			if err != nil {
				return nil, fmt.Errorf("playlist %s: %w", p.Name, err)
			}
		}
		requests = append(requests, pipeline.Request{
			Playlist: p.ID,
			Name:     p.Name,
			Kinds:    kinds,
		})
	}

	return requests, nil
}

func setupLogging(debug bool) {
	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
}
