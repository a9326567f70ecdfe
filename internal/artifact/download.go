package artifact

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/led-matrix/ledinstall/internal/transport"
)

// Download is a fetched artifact in its private temporary directory.
// Whoever holds the Download owns the directory and must call Cleanup
// once the file has been moved into place or is no longer needed.
type Download struct {
	// Path is the downloaded artifact file.
	Path string

	dir string
}

// Cleanup removes the temporary directory and everything in it. It is
// safe to call after the artifact file has been moved out.
func (d *Download) Cleanup() error {
	return os.RemoveAll(d.dir)
}

// Downloader fetches artifacts through a transfer tool.
type Downloader struct {
	tool transport.Tool

	// tempRoot overrides the system temp directory in tests.
	tempRoot string
}

// NewDownloader creates a downloader that fetches with the given tool.
func NewDownloader(tool transport.Tool) *Downloader {
	return &Downloader{tool: tool}
}

// NewDownloaderAt is NewDownloader with the temporary directory rooted
// at tempRoot instead of the system default.
func NewDownloaderAt(tool transport.Tool, tempRoot string) *Downloader {
	return &Downloader{tool: tool, tempRoot: tempRoot}
}

// Fetch downloads url into a fresh private temporary directory and
// returns the result, transferring ownership of the directory to the
// caller. On any failure the directory is removed before the error is
// returned. An empty or missing result file counts as a failure: a
// forge can answer a bad release tag with an empty 200 body.
func (d *Downloader) Fetch(ctx context.Context, url, authToken string) (*Download, error) {
	dir, err := os.MkdirTemp(d.tempRoot, "ledinstall-")
	if err != nil {
		return nil, fmt.Errorf("create download directory: %w", err)
	}

	dest := filepath.Join(dir, AppName)
	if err := d.tool.Fetch(ctx, url, dest, authToken); err != nil {
		_ = os.RemoveAll(dir)
		return nil, fmt.Errorf("download artifact: %w", err)
	}

	info, err := os.Stat(dest)
	if err != nil {
		_ = os.RemoveAll(dir)
		return nil, fmt.Errorf("download produced no file: %w", err)
	}
	if info.Size() == 0 {
		_ = os.RemoveAll(dir)
		return nil, fmt.Errorf("download produced an empty file from %s", url)
	}

	return &Download{Path: dest, dir: dir}, nil
}
