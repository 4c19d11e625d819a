// Package gitvcs reads a Git working copy as a linear sequence of numbered revisions.
//
// Revision N is the N-th commit on the first-parent chain of HEAD, counting the root
// commit as revision 1, so revision numbers grow monotonically on a linear branch.
package gitvcs

import (
	"context"
	"errors"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing/object"
	"go.trai.ch/revwatch/internal/core/domain"
	"go.trai.ch/revwatch/internal/core/ports"
	"go.trai.ch/zerr"
)

// DefaultRemote is the remote pulled by Update.
const DefaultRemote = "origin"

// Repository implements ports.VersionControl for a Git working copy.
type Repository struct {
	path   string
	remote string
}

var _ ports.VersionControl = (*Repository)(nil)

// NewRepository creates a Repository for the working copy at path.
func NewRepository(path string) *Repository {
	return &Repository{path: path, remote: DefaultRemote}
}

// Revision returns the first-parent depth of HEAD.
func (r *Repository) Revision(_ context.Context) (int, error) {
	repo, err := git.PlainOpen(r.path)
	if err != nil {
		return 0, r.queryError(err)
	}

	chain, err := firstParentChain(repo)
	if err != nil {
		return 0, r.queryError(err)
	}
	return len(chain), nil
}

// Update pulls the remote branch and returns the depth before and after.
func (r *Repository) Update(ctx context.Context) (int, int, error) {
	before, err := r.Revision(ctx)
	if err != nil {
		return 0, 0, err
	}

	repo, err := git.PlainOpen(r.path)
	if err != nil {
		return before, before, r.updateError(err)
	}
	wt, err := repo.Worktree()
	if err != nil {
		return before, before, r.updateError(err)
	}

	err = wt.PullContext(ctx, &git.PullOptions{RemoteName: r.remote})
	if err != nil && !errors.Is(err, git.NoErrAlreadyUpToDate) {
		return before, before, r.updateError(err)
	}

	after, err := r.Revision(ctx)
	if err != nil {
		return before, before, err
	}
	return before, after, nil
}

// Log returns the commit message of the given revision, or empty text when it does not exist.
func (r *Repository) Log(_ context.Context, revision int) string {
	repo, err := git.PlainOpen(r.path)
	if err != nil {
		return ""
	}
	chain, err := firstParentChain(repo)
	if err != nil || revision < 1 || revision > len(chain) {
		return ""
	}
	// chain is ordered from HEAD back to the root.
	return chain[len(chain)-revision].Message
}

// Cleanup removes untracked files and directories from the worktree.
func (r *Repository) Cleanup(_ context.Context) bool {
	repo, err := git.PlainOpen(r.path)
	if err != nil {
		return false
	}
	wt, err := repo.Worktree()
	if err != nil {
		return false
	}
	return wt.Clean(&git.CleanOptions{Dir: true}) == nil
}

// firstParentChain returns the commits from HEAD to the root following first parents.
func firstParentChain(repo *git.Repository) ([]*object.Commit, error) {
	head, err := repo.Head()
	if err != nil {
		return nil, zerr.Wrap(err, "failed to resolve HEAD")
	}

	commit, err := repo.CommitObject(head.Hash())
	if err != nil {
		return nil, zerr.Wrap(err, "failed to read HEAD commit")
	}

	var chain []*object.Commit
	for {
		chain = append(chain, commit)
		if commit.NumParents() == 0 {
			return chain, nil
		}
		commit, err = commit.Parent(0)
		if err != nil {
			return nil, zerr.Wrap(err, "failed to read parent commit")
		}
	}
}

func (r *Repository) queryError(err error) error {
	return zerr.With(errors.Join(domain.ErrVcsQueryFailed, err), "path", r.path)
}

func (r *Repository) updateError(err error) error {
	return zerr.With(errors.Join(domain.ErrVcsUpdateFailed, err), "path", r.path)
}
