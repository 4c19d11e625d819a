// Package metrics exposes control loop metrics.
//
// Components receive a ports.Recorder. NoopRecorder is used when metrics are disabled,
// PrometheusRecorder when the metrics endpoint is enabled.
package metrics

import (
	"time"

	"go.trai.ch/revwatch/internal/core/domain"
	"go.trai.ch/revwatch/internal/core/ports"
)

// NoopRecorder is a Recorder that does nothing.
type NoopRecorder struct{}

var _ ports.Recorder = NoopRecorder{}

func (NoopRecorder) IncIteration(string)                             {}
func (NoopRecorder) IncConfigReload(bool)                            {}
func (NoopRecorder) IncCleanup(bool)                                 {}
func (NoopRecorder) IncSkippedBuild()                                {}
func (NoopRecorder) ObserveBuild(domain.BuildOutcome, time.Duration) {}
func (NoopRecorder) IncPackage(bool)                                 {}
func (NoopRecorder) SetWatermark(int)                                {}
