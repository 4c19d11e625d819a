package ports

import (
	"context"

	"go.trai.ch/revwatch/internal/core/domain"
)

//go:generate mockgen -source=packager.go -destination=mocks/mock_packager.go -package=mocks

// Packager archives build output directories.
type Packager interface {
	// Archive packages req.SourceDir and returns the archive path.
	Archive(ctx context.Context, req domain.ArchiveRequest) (string, error)
}

// Compressor writes the contents of a directory into a zip archive at dst.
type Compressor interface {
	Compress(ctx context.Context, srcDir, dst string) error
}
