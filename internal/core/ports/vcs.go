package ports

import (
	"context"

	"go.trai.ch/revwatch/internal/core/domain"
)

//go:generate mockgen -source=vcs.go -destination=mocks/mock_vcs.go -package=mocks

// VersionControl wraps the operations on a single working copy.
// Implementations never retry; retry policy belongs to the caller.
type VersionControl interface {
	// Revision returns the current working copy revision.
	// It fails with domain.ErrVcsQueryFailed when the revision cannot be determined.
	Revision(ctx context.Context) (int, error)

	// Update brings the working copy up to date and returns the revisions observed
	// before and after. It fails with domain.ErrVcsUpdateFailed when the update fails.
	Update(ctx context.Context) (before, after int, err error)

	// Log returns the raw log message of exactly one revision. Failures yield empty text.
	Log(ctx context.Context, revision int) string

	// Cleanup runs a maintenance pass on the working copy and reports success.
	Cleanup(ctx context.Context) bool
}

// VCSProvider opens the working copy described by a config snapshot.
type VCSProvider interface {
	Open(cfg domain.Config) (VersionControl, error)
}
