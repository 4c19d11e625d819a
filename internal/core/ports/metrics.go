package ports

import (
	"time"

	"go.trai.ch/revwatch/internal/core/domain"
)

// Recorder defines observability hooks for the control loop.
//
//go:generate mockgen -source=metrics.go -destination=mocks/mock_metrics.go -package=mocks
type Recorder interface {
	IncIteration(result string)
	IncConfigReload(success bool)
	IncCleanup(success bool)
	IncSkippedBuild()
	ObserveBuild(outcome domain.BuildOutcome, d time.Duration)
	IncPackage(success bool)
	SetWatermark(revision int)
}
