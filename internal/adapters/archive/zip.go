package archive

import (
	"context"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/klauspost/compress/zip"
	"go.trai.ch/revwatch/internal/core/domain"
	"go.trai.ch/zerr"
)

// ZipCompressor writes deflate-compressed zip archives in-process.
type ZipCompressor struct{}

// NewZipCompressor creates a new ZipCompressor.
func NewZipCompressor() *ZipCompressor {
	return &ZipCompressor{}
}

// Compress stores srcDir under its own base name inside the archive at dst.
func (c *ZipCompressor) Compress(_ context.Context, srcDir, dst string) (err error) {
	f, err := os.OpenFile(dst, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, domain.FilePerm) //nolint:gosec // path is built from config
	if err != nil {
		return zerr.Wrap(err, "failed to create archive file")
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = zerr.Wrap(cerr, "failed to close archive file")
		}
	}()

	w := zip.NewWriter(f)
	root := filepath.Dir(srcDir)

	walkErr := filepath.WalkDir(srcDir, func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		return addEntry(w, root, path, d)
	})
	if walkErr != nil {
		_ = w.Close()
		return zerr.Wrap(walkErr, "failed to add files to archive")
	}

	if err := w.Close(); err != nil {
		return zerr.Wrap(err, "failed to finalize archive")
	}
	return nil
}

func addEntry(w *zip.Writer, root, path string, d fs.DirEntry) error {
	info, err := d.Info()
	if err != nil {
		return err
	}
	if !info.IsDir() && !info.Mode().IsRegular() {
		return nil
	}

	rel, err := filepath.Rel(root, path)
	if err != nil {
		return err
	}

	header, err := zip.FileInfoHeader(info)
	if err != nil {
		return err
	}
	header.Name = filepath.ToSlash(rel)
	if info.IsDir() {
		header.Name += "/"
		_, err = w.CreateHeader(header)
		return err
	}
	header.Method = zip.Deflate

	dst, err := w.CreateHeader(header)
	if err != nil {
		return err
	}

	src, err := os.Open(path) //nolint:gosec // walking a trusted build directory
	if err != nil {
		return err
	}
	defer func() { _ = src.Close() }()

	_, err = io.Copy(dst, src)
	return err
}
