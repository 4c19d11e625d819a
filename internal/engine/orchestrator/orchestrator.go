// Package orchestrator implements the revision watch control loop.
//
// One iteration reloads the configuration, cleans the working copy when due, syncs it,
// and, when new revisions arrived, collects their logs, evaluates keyword commands and
// drives build, package and notify. The watermark and the configuration snapshot are
// owned by the goroutine running the loop.
package orchestrator

import (
	"context"
	"fmt"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/google/uuid"
	"go.trai.ch/revwatch/internal/core/domain"
	"go.trai.ch/revwatch/internal/core/ports"
	"go.trai.ch/revwatch/internal/retry"
	"go.trai.ch/zerr"
)

// Result classifies how an iteration ended.
type Result string

const (
	// ResultConfigUnavailable means no valid configuration has been loaded yet.
	ResultConfigUnavailable Result = "config_unavailable"
	// ResultCleanupFailed means the working copy cleanup failed and the iteration was cut short.
	ResultCleanupFailed Result = "cleanup_failed"
	// ResultInitialized means the watermark was set on the first sync.
	ResultInitialized Result = "initialized"
	// ResultUnchanged means no unsettled revision arrived.
	ResultUnchanged Result = "unchanged"
	// ResultSkipped means a log keyword settled the revision without building.
	ResultSkipped Result = "skipped"
	// ResultBuildFailed means the build tool exited with a non-zero code.
	ResultBuildFailed Result = "build_failed"
	// ResultBuildError means the build tool could not be launched or observed.
	ResultBuildError Result = "build_error"
	// ResultPackaged means the build was archived.
	ResultPackaged Result = "packaged"
	// ResultPackageFailed means the build succeeded but could not be archived.
	ResultPackageFailed Result = "package_failed"
	// ResultError means the iteration was aborted by a configuration or VCS error.
	ResultError Result = "error"
)

const (
	cleanupRetryDelay = 5 * time.Second
	fallbackInterval  = 30 * time.Second
)

// Deps holds the collaborators of the control loop.
type Deps struct {
	Loader   ports.ConfigLoader
	VCS      ports.VCSProvider
	Executor ports.BuildExecutor
	Packager ports.Packager
	Notifier ports.Notifier
	Killer   ports.ProcessKiller
	Logger   ports.Logger
	Recorder ports.Recorder
}

// Orchestrator runs the control loop and owns its state.
type Orchestrator struct {
	loader   ports.ConfigLoader
	vcs      ports.VCSProvider
	executor ports.BuildExecutor
	packager ports.Packager
	notifier ports.Notifier
	killer   ports.ProcessKiller
	logger   ports.Logger
	recorder ports.Recorder

	reloadPolicy retry.Policy
	newID        func() string
	wake         chan struct{}

	cfg        domain.Config
	hasConfig  bool
	configHash uint64
	watermark  domain.Watermark
}

// New creates an Orchestrator with an unset watermark and no configuration.
func New(deps Deps) *Orchestrator {
	return &Orchestrator{
		loader:       deps.Loader,
		vcs:          deps.VCS,
		executor:     deps.Executor,
		packager:     deps.Packager,
		notifier:     deps.Notifier,
		killer:       deps.Killer,
		logger:       deps.Logger,
		recorder:     deps.Recorder,
		reloadPolicy: retry.Fixed(domain.ConfigRetryDelay, 0),
		newID:        uuid.NewString,
		wake:         make(chan struct{}, 1),
	}
}

// Wake ends the current wait early. It never blocks.
func (o *Orchestrator) Wake() {
	select {
	case o.wake <- struct{}{}:
	default:
	}
}

// Watermark returns a copy of the current progress state.
func (o *Orchestrator) Watermark() domain.Watermark {
	return o.watermark
}

// Run loops until ctx is cancelled, reading the configuration from configPath on every pass.
func (o *Orchestrator) Run(ctx context.Context, configPath string) error {
	o.logger.Info("watching for new revisions")
	for {
		if ctx.Err() != nil {
			o.logger.Info("stopped watching")
			return nil
		}

		result, err := o.RunIteration(ctx, configPath)
		if err != nil {
			o.logger.Error(err)
			result = ResultError
		}
		o.recorder.IncIteration(string(result))

		if !o.wait(ctx, o.delay()) {
			o.logger.Info("stopped watching")
			return nil
		}
	}
}

// RunIteration executes one pass of the control loop. Only configuration and VCS
// failures, or a panic in a collaborator, are returned as errors.
func (o *Orchestrator) RunIteration(ctx context.Context, configPath string) (result Result, err error) {
	defer func() {
		if r := recover(); r != nil {
			result = ResultError
			err = zerr.With(zerr.New("iteration panicked"), "panic", fmt.Sprint(r))
		}
	}()

	if !o.reloadConfig(configPath) {
		return ResultConfigUnavailable, nil
	}
	cfg := o.cfg

	vc, err := o.vcs.Open(cfg)
	if err != nil {
		return ResultError, zerr.Wrap(err, "failed to open working copy")
	}

	if !o.cleanup(ctx, cfg, vc) {
		return ResultCleanupFailed, nil
	}

	current, changed, err := o.sync(ctx, vc)
	if err != nil {
		return ResultError, err
	}

	if o.watermark.Init(current) {
		o.logger.Info(fmt.Sprintf("watching from revision %d", current))
		o.recorder.SetWatermark(current)
		return ResultInitialized, nil
	}

	if !changed || !o.watermark.NeedsBuild(current) {
		return ResultUnchanged, nil
	}

	return o.dispatch(ctx, cfg, vc, current), nil
}

func (o *Orchestrator) reloadConfig(path string) bool {
	cfg, err := o.loader.Load(path)
	if err != nil {
		o.recorder.IncConfigReload(false)
		if !o.hasConfig {
			o.logger.Error(zerr.Wrap(err, "no valid configuration"))
			return false
		}
		o.logger.Warn("configuration reload failed, keeping the previous snapshot: " + err.Error())
		return true
	}

	o.recorder.IncConfigReload(true)
	o.cfg = cfg
	o.hasConfig = true
	o.dumpConfig(cfg)
	return true
}

// dumpConfig prints the snapshot when verbose printing is enabled and the snapshot changed.
func (o *Orchestrator) dumpConfig(cfg domain.Config) {
	if !cfg.PrintConfig {
		o.configHash = 0
		return
	}
	dump := cfg.String()
	sum := xxhash.Sum64String(dump)
	if sum == o.configHash {
		return
	}
	o.configHash = sum
	o.logger.Info("configuration:\n" + dump)
}

func (o *Orchestrator) cleanup(ctx context.Context, cfg domain.Config, vc ports.VersionControl) bool {
	if !o.watermark.CleanupDue(time.Now(), cfg.VCS.CleanupTimeout) {
		return true
	}

	o.logger.Info("cleaning up working copy " + cfg.Project.Path)
	o.terminateHosts(ctx, cfg)

	policy := retry.Fixed(cleanupRetryDelay, cfg.VCS.CleanupRetries)
	ok := policy.Until(ctx, func() bool { return vc.Cleanup(ctx) })
	o.recorder.IncCleanup(ok)
	if !ok {
		o.logger.Error(zerr.With(zerr.Wrap(domain.ErrCleanupFailed, "cleanup did not succeed"),
			"attempts", cfg.VCS.CleanupRetries+1))
		o.notifier.Beep()
		o.say(ctx, cfg, cfg.Speech.CleanupFailed)
		return false
	}

	o.watermark.MarkCleanup(time.Now())
	return true
}

func (o *Orchestrator) terminateHosts(ctx context.Context, cfg domain.Config) {
	n, err := o.killer.KillByName(ctx, cfg.Unreal.HostProcesses)
	if err != nil {
		o.logger.Warn("could not terminate every build host process: " + err.Error())
	}
	if n > 0 {
		o.logger.Info(fmt.Sprintf("terminated %d build host process(es)", n))
	}
}

func (o *Orchestrator) sync(ctx context.Context, vc ports.VersionControl) (int, bool, error) {
	before, after, err := vc.Update(ctx)
	if err != nil {
		return 0, false, err
	}
	changed := after > before

	current, err := vc.Revision(ctx)
	if err != nil {
		return 0, false, err
	}

	if changed {
		o.logger.Info(fmt.Sprintf("working copy updated: %d → %d", before, after))
	} else {
		o.logger.Info(fmt.Sprintf("no remote changes, at revision %d", current))
	}
	return current, changed, nil
}

func (o *Orchestrator) dispatch(ctx context.Context, cfg domain.Config, vc ports.VersionControl, current int) Result {
	last, _ := o.watermark.LastBuilt()
	rng := domain.NewRevisionRange(last, current, cfg.Export.MaxRelevantLogs)

	logs, effect := o.collectLogs(ctx, cfg, vc, rng)

	if effect.Has(domain.EffectSkipBuild) {
		o.logger.Info(fmt.Sprintf("ignoring build of revision %d", current))
		o.recorder.IncSkippedBuild()
		o.advance(current)
		o.say(ctx, cfg, cfg.Speech.IgnoringBuild)
		return ResultSkipped
	}

	buildType := cfg.Unreal.BuildType
	if effect.Has(domain.EffectSwitchToDevBuild) {
		buildType = domain.DevelopmentBuildType
		o.logger.Info("switching to " + buildType + " build for this revision")
	}

	switch o.build(ctx, cfg, current, buildType) {
	case domain.BuildUnexpectedError:
		o.notifier.Play(ctx, cfg.Sounds.BuildUnknownError)
		o.say(ctx, cfg, cfg.Speech.BuildUnknownError)
		return ResultBuildError
	case domain.BuildFailed:
		o.advance(current)
		o.notifier.Play(ctx, cfg.Sounds.BuildFail)
		o.say(ctx, cfg, cfg.Speech.BuildFailed)
		return ResultBuildFailed
	case domain.BuildSuccess:
		return o.pack(ctx, cfg, current, buildType, logs)
	default:
		return ResultBuildError
	}
}

func (o *Orchestrator) collectLogs(
	ctx context.Context,
	cfg domain.Config,
	vc ports.VersionControl,
	rng domain.RevisionRange,
) ([]RevisionLog, domain.CommandEffect) {
	keywords := cfg.Keywords.Keywords()
	logs := make([]RevisionLog, 0, rng.Len())
	effect := domain.EffectNone

	for rev := range rng.Revisions() {
		text := vc.Log(ctx, rev)
		logs = append(logs, RevisionLog{Revision: rev, Text: text})

		if matches := domain.ScanLog(text, keywords); len(matches) > 0 {
			e := cfg.Keywords.Effect(matches)
			o.logger.Info(fmt.Sprintf("revision %d requests %s", rev, e))
			effect |= e
		}
	}
	return logs, effect
}

func (o *Orchestrator) build(ctx context.Context, cfg domain.Config, current int, buildType string) domain.BuildOutcome {
	o.logger.Info(fmt.Sprintf("change detected, building revision %d (%s)", current, buildType))
	o.notifier.Play(ctx, cfg.Sounds.BuildStarting)
	o.say(ctx, cfg, cfg.Speech.BuildStarting)

	req := domain.BuildRequest{
		ID:            o.newID(),
		ExePath:       cfg.Unreal.ExePath,
		ProjectFile:   cfg.Project.File,
		Platform:      cfg.Unreal.Platform,
		BuildType:     buildType,
		ArchiveDir:    cfg.Unreal.OutputDir,
		ExtraArgs:     cfg.Unreal.ExtraArgs,
		HostProcesses: cfg.Unreal.HostProcesses,
	}

	start := time.Now()
	outcome := o.executor.Execute(ctx, req)
	o.recorder.ObserveBuild(outcome, time.Since(start))
	return outcome
}

func (o *Orchestrator) pack(
	ctx context.Context,
	cfg domain.Config,
	current int,
	buildType string,
	logs []RevisionLog,
) Result {
	outDir := cfg.Unreal.BuildOutputDir()
	if len(logs) > 0 {
		if _, err := WriteLogDump(outDir, logs); err != nil {
			o.logger.Error(err)
		}
	}

	path, err := o.packager.Archive(ctx, domain.ArchiveRequest{
		SourceDir:    outDir,
		Override:     cfg.Export.OverrideZip,
		NewName:      domain.BuildName(current, cfg.Project.Name(), buildType),
		OutputDir:    cfg.Export.OutputDir,
		Archiver:     cfg.Export.Archiver,
		SevenZipPath: cfg.Export.SevenZipPath,
	})
	o.advance(current)
	o.recorder.IncPackage(err == nil)

	if err != nil {
		o.logger.Error(err)
		o.notifier.Play(ctx, cfg.Sounds.BuildFail)
		o.say(ctx, cfg, cfg.Speech.PackagingFailed)
		return ResultPackageFailed
	}

	o.logger.Info(fmt.Sprintf("build completed for revision %d: %s", current, path))
	o.notifier.Play(ctx, cfg.Sounds.BuildSuccess)
	o.say(ctx, cfg, cfg.Speech.Phrase(cfg.Speech.BuildCompleted, buildType))
	return ResultPackaged
}

func (o *Orchestrator) advance(revision int) {
	o.watermark.Advance(revision)
	last, _ := o.watermark.LastBuilt()
	o.recorder.SetWatermark(last)
}

func (o *Orchestrator) say(ctx context.Context, cfg domain.Config, phrase string) {
	if cfg.Speech.Enabled && phrase != "" {
		o.notifier.Speak(ctx, phrase)
	}
}

func (o *Orchestrator) delay() time.Duration {
	if !o.hasConfig {
		return o.reloadPolicy.Delay(1)
	}
	if d := o.cfg.VCS.PollInterval; d > 0 {
		return d
	}
	return fallbackInterval
}

// wait sleeps d, returning early on Wake. It reports false once ctx is done.
func (o *Orchestrator) wait(ctx context.Context, d time.Duration) bool {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return false
	case <-o.wake:
		return true
	case <-t.C:
		return true
	}
}
