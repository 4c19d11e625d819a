package vcs

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/revwatch/internal/adapters/process"
	"go.trai.ch/revwatch/internal/core/ports"
)

// NodeID is the unique identifier for the VCS provider Graft node.
const NodeID graft.ID = "adapter.vcs_provider"

func init() {
	graft.Register(graft.Node[ports.VCSProvider]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{process.RunnerNodeID},
		Run: func(ctx context.Context) (ports.VCSProvider, error) {
			runner, err := graft.Dep[ports.CommandRunner](ctx)
			if err != nil {
				return nil, err
			}
			return NewProvider(runner), nil
		},
	})
}
