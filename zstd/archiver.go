// Package zstd creates zstd-compressed tar backups of a knowledge base.
package zstd

import (
	"archive/tar"
	"context"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/docsmith/kb"
	"github.com/klauspost/compress/zstd"
)

// Ensure Archiver implements kb.Archiver at compile time.
var _ kb.Archiver = (*Archiver)(nil)

// Archiver writes tar.zst snapshots of a docs tree. Git metadata and
// rendered site output are excluded, the repository itself is the
// durable copy of history.
type Archiver struct {
	logger *slog.Logger
	now    func() time.Time
}

// NewArchiver returns an Archiver.
func NewArchiver(logger *slog.Logger) *Archiver {
	return &Archiver{logger: logger, now: time.Now}
}

// NewArchiverWithNow returns an Archiver with a fixed clock.
func NewArchiverWithNow(logger *slog.Logger, now func() time.Time) *Archiver {
	return &Archiver{logger: logger, now: now}
}

// excluded reports whether the relative slash path should be left out
// of the archive.
func excluded(rel string) bool {
	top, _, _ := strings.Cut(rel, "/")
	return top == ".git" || top == "site"
}

// CreateBackup archives srcDir into outDir and returns the archive path.
func (a *Archiver) CreateBackup(ctx context.Context, srcDir, outDir string) (string, error) {
	info, err := os.Stat(srcDir)
	if err != nil || !info.IsDir() {
		return "", kb.Errorf(kb.ENOTFOUND, "source directory %q does not exist", srcDir)
	}
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return "", err
	}

	absSrc, err := filepath.Abs(srcDir)
	if err != nil {
		return "", err
	}
	absOut, err := filepath.Abs(outDir)
	if err != nil {
		return "", err
	}

	name := filepath.Base(absSrc) + "_" + a.now().Format("20060102_150405") + ".tar.zst"
	path := filepath.Join(outDir, name)

	f, err := os.Create(path)
	if err != nil {
		return "", err
	}

	if err := a.write(ctx, f, absSrc, absOut); err != nil {
		f.Close()
		os.Remove(path)
		return "", err
	}
	if err := f.Close(); err != nil {
		os.Remove(path)
		return "", err
	}

	a.logger.Info("created backup", "path", path)
	return path, nil
}

func (a *Archiver) write(ctx context.Context, w io.Writer, absSrc, absOut string) error {
	zw, err := zstd.NewWriter(w)
	if err != nil {
		return err
	}
	tw := tar.NewWriter(zw)

	err = filepath.WalkDir(absSrc, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if err := ctx.Err(); err != nil {
			return err
		}
		if path == absSrc {
			return nil
		}
		// Keep the archive out of its own contents when the backup
		// directory lives inside the source tree.
		if path == absOut {
			if d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}

		rel, err := filepath.Rel(absSrc, path)
		if err != nil {
			return err
		}
		rel = filepath.ToSlash(rel)
		if excluded(rel) {
			if d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}

		info, err := d.Info()
		if err != nil {
			return err
		}
		if !info.Mode().IsRegular() && !info.IsDir() {
			return nil
		}

		hdr, err := tar.FileInfoHeader(info, "")
		if err != nil {
			return err
		}
		hdr.Name = rel
		if info.IsDir() {
			hdr.Name += "/"
		}
		if err := tw.WriteHeader(hdr); err != nil {
			return err
		}
		if info.IsDir() {
			return nil
		}

		src, err := os.Open(path)
		if err != nil {
			return err
		}
		_, err = io.Copy(tw, src)
		src.Close()
		return err
	})
	if err != nil {
		tw.Close()
		zw.Close()
		return err
	}

	if err := tw.Close(); err != nil {
		zw.Close()
		return err
	}
	return zw.Close()
}
