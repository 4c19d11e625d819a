package archive

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/revwatch/internal/adapters/logger"
	"go.trai.ch/revwatch/internal/adapters/process"
	"go.trai.ch/revwatch/internal/core/ports"
)

// NodeID is the unique identifier for the packager Graft node.
const NodeID graft.ID = "adapter.packager"

func init() {
	graft.Register(graft.Node[ports.Packager]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{process.RunnerNodeID, logger.NodeID},
		Run: func(ctx context.Context) (ports.Packager, error) {
			runner, err := graft.Dep[ports.CommandRunner](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewPackager(runner, log), nil
		},
	})
}
