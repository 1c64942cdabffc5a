package export

import (
	"path/filepath"

	"github.com/google/renameio/v2"

	"github.com/lysyi3m/playlist-export/app/playlist"
)

// WriteError reports a failure to produce one artifact, carrying the
// destination path.
type WriteError struct {
	Path string
	Err  error
}

func (e *WriteError) Error() string {
	return "export: writing " + e.Path + ": " + e.Err.Error()
}

func (e *WriteError) Unwrap() error { return e.Err }

// WriteFile renders one artifact atomically: the exporter writes into a
// pending temp file which replaces the destination only on success, so
// a failed export never leaves a partial file behind. Returns the
// destination path.
func WriteFile(exporter Exporter, dir string, meta Meta, videos []playlist.Video) (string, error) {
	path := filepath.Join(dir, exporter.Filename(meta.PlaylistID))

	pending, err := renameio.NewPendingFile(path)
	if err != nil {
		return "", &WriteError{Path: path, Err: err}
	}
	defer func() {
		_ = pending.Cleanup()
	}()

	if err := exporter.Export(pending, meta, videos); err != nil {
		return "", &WriteError{Path: path, Err: err}
	}

	if err := pending.CloseAtomicallyReplace(); err != nil {
		return "", &WriteError{Path: path, Err: err}
	}

	return path, nil
}
