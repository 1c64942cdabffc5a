package export

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/lysyi3m/playlist-export/app/playlist"
)

// failingExporter writes a partial prefix and then fails.
type failingExporter struct{}

func (failingExporter) Kind() Kind                   { return Kind("failing") }
func (failingExporter) Filename(id string) string    { return id + ".fail" }
func (failingExporter) Export(w io.Writer, meta Meta, videos []playlist.Video) error {
	_, _ = w.Write([]byte("partial"))
	return errors.New("render failed")
}

func TestWriteFile(t *testing.T) {
	dir := t.TempDir()

	path, err := WriteFile(&JSONExporter{}, dir, sampleMeta(), sampleVideos())
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}

	if path != filepath.Join(dir, "PLtest.json") {
		t.Errorf("Unexpected destination path: %s", path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Expected artifact to exist: %v", err)
	}
	if len(data) == 0 {
		t.Error("Expected non-empty artifact")
	}
}

func TestWriteFileLeavesNothingOnFailure(t *testing.T) {
	dir := t.TempDir()

	_, err := WriteFile(failingExporter{}, dir, sampleMeta(), nil)
	if err == nil {
		t.Fatal("Expected an error")
	}

	var writeErr *WriteError
	if !errors.As(err, &writeErr) {
		t.Fatalf("Expected *WriteError, got %T", err)
	}
	if writeErr.Path != filepath.Join(dir, "PLtest.fail") {
		t.Errorf("Expected destination path in error, got: %s", writeErr.Path)
	}

	// No partial file may appear at the destination
	if _, err := os.Stat(writeErr.Path); !os.IsNotExist(err) {
		t.Error("Failed export left a file at the destination")
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 0 {
		t.Errorf("Expected empty directory after failed export, found %d entries", len(entries))
	}
}

func TestWriteFileMissingDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "does", "not", "exist")

	_, err := WriteFile(&JSONExporter{}, dir, sampleMeta(), nil)

	var writeErr *WriteError
	if !errors.As(err, &writeErr) {
		t.Fatalf("Expected *WriteError, got %v", err)
	}
}
