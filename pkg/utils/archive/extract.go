// Package archive validates zip payloads and expands them onto local storage.
//
// Extraction only starts once the whole payload is in memory, so a cancelled
// or interrupted transfer never leaves a partially written tree. Concurrent
// invocations targeting the same destination are not coordinated.
package archive

import (
	"archive/zip"
	"bytes"
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/olsync/olpull/pkg/domain/model"
)

// Result reports what an extraction wrote to disk
type Result struct {
	FileCount int   // Number of files written
	Size      int64 // Total uncompressed size in bytes
}

type config struct {
	flattenRoot bool
}

// Option is a functional option for extraction behavior
type Option func(*config)

// WithFlattenRoot strips a shared top-level directory from every entry, so an
// archive that wraps the whole project in a single folder lands directly in
// the destination instead of one level down.
func WithFlattenRoot() Option {
	return func(c *config) {
		c.flattenRoot = true
	}
}

// Extract validates data as a zip archive and expands every entry under
// destDir, creating the directory (and missing parents) if needed. Files at
// entry paths are overwritten, later duplicate entries win, and unrelated
// pre-existing files are left alone. Any entry that would resolve outside
// destDir aborts the extraction.
func Extract(ctx context.Context, data []byte, destDir string, opts ...Option) (*Result, error) {
	cfg := &config{}
	for _, opt := range opts {
		opt(cfg)
	}

	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		// zip.NewReader flags non-local entry names itself since Go 1.20.
		if errors.Is(err, zip.ErrInsecurePath) {
			return nil, goerr.Wrap(err, "archive entry escapes output directory",
				goerr.T(model.ErrTagUnsafeEntry),
			)
		}
		return nil, goerr.Wrap(err, "payload is not a valid zip archive",
			goerr.T(model.ErrTagCorruptArchive),
		)
	}

	if err := os.MkdirAll(destDir, 0755); err != nil {
		return nil, goerr.Wrap(err, "failed to create output directory",
			goerr.T(model.ErrTagUnwritable),
			goerr.V("dir", destDir),
		)
	}

	prefix := ""
	if cfg.flattenRoot {
		if prefix = singleRootPrefix(zr.File); prefix != "" {
			ctxlog.From(ctx).Debug("Flattening single root directory", "root", prefix)
		}
	}

	result := &Result{}
	for _, f := range zr.File {
		name := strings.TrimPrefix(f.Name, prefix)
		if name == "" || name == "/" {
			continue
		}

		written, err := extractEntry(f, name, destDir)
		if err != nil {
			return nil, err
		}
		if written {
			result.FileCount++
			result.Size += int64(f.UncompressedSize64)
		}
	}

	return result, nil
}

// extractEntry writes one archive entry below destDir, reporting whether a
// regular file was written. The joined path must stay inside destDir; entries
// like "../escape.txt" are rejected outright.
func extractEntry(f *zip.File, name, destDir string) (bool, error) {
	destPath := filepath.Join(destDir, filepath.FromSlash(name))
	if !strings.HasPrefix(destPath, filepath.Clean(destDir)+string(os.PathSeparator)) {
		return false, goerr.New("archive entry escapes output directory",
			goerr.T(model.ErrTagUnsafeEntry),
			goerr.V("entry", f.Name),
		)
	}

	if f.FileInfo().IsDir() {
		if err := os.MkdirAll(destPath, 0755); err != nil {
			return false, goerr.Wrap(err, "failed to create directory",
				goerr.T(model.ErrTagUnwritable),
				goerr.V("path", destPath),
			)
		}
		return false, nil
	}

	if err := os.MkdirAll(filepath.Dir(destPath), 0755); err != nil {
		return false, goerr.Wrap(err, "failed to create parent directories",
			goerr.T(model.ErrTagUnwritable),
			goerr.V("path", destPath),
		)
	}

	rc, err := f.Open()
	if err != nil {
		return false, goerr.Wrap(err, "failed to open archive entry",
			goerr.T(model.ErrTagCorruptArchive),
			goerr.V("entry", f.Name),
		)
	}
	defer rc.Close()

	dst, err := os.OpenFile(destPath, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, entryMode(f))
	if err != nil {
		return false, goerr.Wrap(err, "failed to create file",
			goerr.T(model.ErrTagUnwritable),
			goerr.V("path", destPath),
		)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, rc); err != nil {
		return false, goerr.Wrap(err, "failed to write file content",
			goerr.T(model.ErrTagUnwritable),
			goerr.V("path", destPath),
		)
	}

	return true, nil
}

// entryMode returns the entry's file permissions, falling back to 0644 for
// archives that carry no mode bits.
func entryMode(f *zip.File) os.FileMode {
	if mode := f.FileInfo().Mode().Perm(); mode != 0 {
		return mode
	}
	return 0644
}

// singleRootPrefix returns "dir/" when every entry lives under one shared
// top-level directory with content beneath it, or "" otherwise.
func singleRootPrefix(files []*zip.File) string {
	root := ""
	hasChild := false
	for _, f := range files {
		name := strings.Trim(f.Name, "/")
		if name == "" {
			continue
		}
		top, rest, _ := strings.Cut(name, "/")
		if root == "" {
			root = top
		} else if top != root {
			return ""
		}
		if rest != "" {
			hasChild = true
		}
	}
	if root == "" || !hasChild {
		return ""
	}
	return root + "/"
}
