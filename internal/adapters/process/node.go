package process

import (
	"context"
	"os"

	"github.com/grindlemire/graft"
	"go.trai.ch/revwatch/internal/core/ports"
)

const (
	// StarterNodeID is the unique identifier for the process starter Graft node.
	StarterNodeID graft.ID = "adapter.process_starter"
	// RunnerNodeID is the unique identifier for the command runner Graft node.
	RunnerNodeID graft.ID = "adapter.command_runner"
	// KillerNodeID is the unique identifier for the process killer Graft node.
	KillerNodeID graft.ID = "adapter.process_killer"
)

func init() {
	graft.Register(graft.Node[ports.ProcessStarter]{
		ID:        StarterNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.ProcessStarter, error) {
			return NewStarter(), nil
		},
	})

	graft.Register(graft.Node[ports.CommandRunner]{
		ID:        RunnerNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{StarterNodeID},
		Run: func(ctx context.Context) (ports.CommandRunner, error) {
			starter, err := graft.Dep[ports.ProcessStarter](ctx)
			if err != nil {
				return nil, err
			}
			return NewRunner(starter), nil
		},
	})

	graft.Register(graft.Node[ports.ProcessKiller]{
		ID:        KillerNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.ProcessKiller, error) {
			return NewKiller(os.Getpid()), nil
		},
	})
}
