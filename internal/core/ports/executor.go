// Package ports defines the core interfaces for the application.
package ports

import (
	"context"

	"go.trai.ch/revwatch/internal/core/domain"
)

// BuildExecutor defines the interface for running the external build tool.
//
//go:generate mockgen -source=executor.go -destination=mocks/mock_executor.go -package=mocks
type BuildExecutor interface {
	// Execute runs the build described by req to completion and classifies the result.
	// Failures are reported through the outcome, never as errors.
	Execute(ctx context.Context, req domain.BuildRequest) domain.BuildOutcome
}
