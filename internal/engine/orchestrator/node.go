package orchestrator

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/revwatch/internal/adapters/archive" //nolint:depguard // Wired in engine wiring
	"go.trai.ch/revwatch/internal/adapters/config"  //nolint:depguard // Wired in engine wiring
	"go.trai.ch/revwatch/internal/adapters/logger"  //nolint:depguard // Wired in engine wiring
	"go.trai.ch/revwatch/internal/adapters/metrics" //nolint:depguard // Wired in engine wiring
	"go.trai.ch/revwatch/internal/adapters/process" //nolint:depguard // Wired in engine wiring
	"go.trai.ch/revwatch/internal/adapters/sound"   //nolint:depguard // Wired in engine wiring
	"go.trai.ch/revwatch/internal/adapters/unreal"  //nolint:depguard // Wired in engine wiring
	"go.trai.ch/revwatch/internal/adapters/vcs"     //nolint:depguard // Wired in engine wiring
	"go.trai.ch/revwatch/internal/core/ports"
)

// NodeID is the unique identifier for the orchestrator Graft node.
const NodeID graft.ID = "engine.orchestrator"

func init() {
	graft.Register(graft.Node[*Orchestrator]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			config.NodeID,
			vcs.NodeID,
			unreal.NodeID,
			archive.NodeID,
			sound.NodeID,
			process.KillerNodeID,
			logger.NodeID,
			metrics.NodeID,
		},
		Run: runNode,
	})
}

func runNode(ctx context.Context) (*Orchestrator, error) {
	loader, err := graft.Dep[ports.ConfigLoader](ctx)
	if err != nil {
		return nil, err
	}

	provider, err := graft.Dep[ports.VCSProvider](ctx)
	if err != nil {
		return nil, err
	}

	executor, err := graft.Dep[ports.BuildExecutor](ctx)
	if err != nil {
		return nil, err
	}

	packager, err := graft.Dep[ports.Packager](ctx)
	if err != nil {
		return nil, err
	}

	notifier, err := graft.Dep[ports.Notifier](ctx)
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

	recorder, err := graft.Dep[*metrics.PrometheusRecorder](ctx)
	if err != nil {
		return nil, err
	}

	return New(Deps{
		Loader:   loader,
		VCS:      provider,
		Executor: executor,
		Packager: packager,
		Notifier: notifier,
		Killer:   killer,
		Logger:   log,
		Recorder: recorder,
	}), nil
}
