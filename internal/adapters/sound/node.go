package sound

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/revwatch/internal/adapters/logger"
	"go.trai.ch/revwatch/internal/adapters/process"
	"go.trai.ch/revwatch/internal/core/ports"
)

// NodeID is the unique identifier for the notifier Graft node.
const NodeID graft.ID = "adapter.notifier"

func init() {
	graft.Register(graft.Node[ports.Notifier]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{process.StarterNodeID, logger.NodeID},
		Run: func(ctx context.Context) (ports.Notifier, error) {
			starter, err := graft.Dep[ports.ProcessStarter](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewNotifier(starter, log), nil
		},
	})
}
