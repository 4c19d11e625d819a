// Package archive packages build output directories into zip archives.
package archive

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"go.trai.ch/revwatch/internal/core/domain"
	"go.trai.ch/revwatch/internal/core/ports"
	"go.trai.ch/zerr"
)

// Packager implements ports.Packager.
type Packager struct {
	logger     ports.Logger
	compressor func(req domain.ArchiveRequest) ports.Compressor
}

var _ ports.Packager = (*Packager)(nil)

// NewPackager creates a Packager choosing the compressor named by each request.
func NewPackager(runner ports.CommandRunner, logger ports.Logger) *Packager {
	native := NewZipCompressor()
	return &Packager{
		logger: logger,
		compressor: func(req domain.ArchiveRequest) ports.Compressor {
			if req.Archiver == domain.ArchiverSevenZip {
				return NewSevenZipCompressor(runner, req.SevenZipPath)
			}
			return native
		},
	}
}

// NewPackagerWithCompressor creates a Packager that always uses c.
func NewPackagerWithCompressor(c ports.Compressor, logger ports.Logger) *Packager {
	return &Packager{
		logger:     logger,
		compressor: func(domain.ArchiveRequest) ports.Compressor { return c },
	}
}

// Archive compresses req.SourceDir into <OutputDir>/<NewName>.zip.
// The archive is written under a temporary name and renamed once complete.
// Packaging is not interrupted by ctx cancellation.
func (p *Packager) Archive(ctx context.Context, req domain.ArchiveRequest) (string, error) {
	ctx = context.WithoutCancel(ctx)

	info, err := os.Stat(req.SourceDir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", zerr.With(zerr.Wrap(domain.ErrArchiveSourceMissing, "cannot package build"), "path", req.SourceDir)
		}
		return "", zerr.With(errors.Join(domain.ErrArchiveFailed, err), "path", req.SourceDir)
	}
	if !info.IsDir() {
		return "", zerr.With(zerr.Wrap(domain.ErrArchiveSourceNotDir, "cannot package build"), "path", req.SourceDir)
	}

	name := req.NewName
	if name == "" {
		name = filepath.Base(req.SourceDir)
	}
	outDir := req.OutputDir
	if outDir == "" {
		outDir = filepath.Dir(req.SourceDir)
	}
	final := filepath.Join(outDir, name+domain.ArchiveExt)

	if _, err := os.Stat(final); err == nil {
		if !req.Override {
			p.logger.Info("archive already exists: " + final)
			return final, nil
		}
		p.logger.Info("overriding existing archive: " + final)
		if err := os.Remove(final); err != nil {
			return "", p.failed(err, final)
		}
	}

	if err := os.MkdirAll(outDir, domain.DirPerm); err != nil {
		return "", p.failed(err, final)
	}

	tmp := filepath.Join(outDir, name+domain.TransferSuffix+domain.ArchiveExt)
	_ = os.Remove(tmp)

	p.logger.Info("compacting " + req.SourceDir + " -> " + final)
	if err := p.compressor(req).Compress(ctx, req.SourceDir, tmp); err != nil {
		_ = os.Remove(tmp)
		return "", p.failed(err, final)
	}

	if err := os.Rename(tmp, final); err != nil {
		_ = os.Remove(tmp)
		return "", p.failed(err, final)
	}

	return final, nil
}

func (p *Packager) failed(err error, path string) error {
	return zerr.With(errors.Join(domain.ErrArchiveFailed, err), "path", path)
}
