package unreal

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/revwatch/internal/adapters/logger"
	"go.trai.ch/revwatch/internal/adapters/process"
	"go.trai.ch/revwatch/internal/core/ports"
)

// NodeID is the unique identifier for the build executor Graft node.
const NodeID graft.ID = "adapter.build_executor"

func init() {
	graft.Register(graft.Node[ports.BuildExecutor]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{process.StarterNodeID, process.KillerNodeID, logger.NodeID},
		Run: func(ctx context.Context) (ports.BuildExecutor, error) {
			starter, err := graft.Dep[ports.ProcessStarter](ctx)
			if err != nil {
				return nil, err
			}
			killer, err := graft.Dep[ports.ProcessKiller](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewExecutor(starter, killer, log), nil
		},
	})
}
