// Package vcs selects the version control backend for a config snapshot.
package vcs

import (
	"go.trai.ch/revwatch/internal/adapters/gitvcs"
	"go.trai.ch/revwatch/internal/adapters/svn"
	"go.trai.ch/revwatch/internal/core/domain"
	"go.trai.ch/revwatch/internal/core/ports"
	"go.trai.ch/zerr"
)

// Provider implements ports.VCSProvider.
type Provider struct {
	runner ports.CommandRunner
}

var _ ports.VCSProvider = (*Provider)(nil)

// NewProvider creates a Provider whose svn clients run through runner.
func NewProvider(runner ports.CommandRunner) *Provider {
	return &Provider{runner: runner}
}

// Open returns the client for the working copy at the snapshot's project path.
func (p *Provider) Open(cfg domain.Config) (ports.VersionControl, error) {
	switch cfg.VCS.Kind {
	case domain.VCSKindSVN:
		return svn.NewClient(p.runner, cfg.VCS.ExePath, cfg.Project.Path), nil
	case domain.VCSKindGit:
		return gitvcs.NewRepository(cfg.Project.Path), nil
	default:
		return nil, zerr.With(zerr.Wrap(domain.ErrUnknownVCSKind, "cannot open working copy"), "kind", string(cfg.VCS.Kind))
	}
}
