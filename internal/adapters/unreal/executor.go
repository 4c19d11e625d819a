// Package unreal runs the Unreal Automation Tool BuildCookRun command.
package unreal

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"go.trai.ch/revwatch/internal/core/domain"
	"go.trai.ch/revwatch/internal/core/ports"
	"go.trai.ch/revwatch/internal/ui/style"
	"go.trai.ch/zerr"
)

// OutputSource tags the build tool's output lines in the log.
const OutputSource = "uat"

// Executor implements ports.BuildExecutor.
type Executor struct {
	starter ports.ProcessStarter
	killer  ports.ProcessKiller
	logger  ports.Logger
}

var _ ports.BuildExecutor = (*Executor)(nil)

// NewExecutor creates a new Executor.
func NewExecutor(starter ports.ProcessStarter, killer ports.ProcessKiller, logger ports.Logger) *Executor {
	return &Executor{starter: starter, killer: killer, logger: logger}
}

// Execute terminates the build host processes, runs BuildCookRun and streams its output
// into the logger line by line.
func (e *Executor) Execute(ctx context.Context, req domain.BuildRequest) domain.BuildOutcome {
	if n, _ := e.killer.KillByName(ctx, req.HostProcesses); n > 0 {
		e.logger.Info(fmt.Sprintf("terminated %d build host process(es)", n))
	}

	spec := Command(req)
	e.logger.Info(style.Rule)
	e.logger.Info(style.Arrow + " Building: " + strings.Join(append([]string{spec.Name}, spec.Args...), " "))

	proc, err := e.starter.Start(ctx, spec)
	if err != nil {
		e.logger.Error(e.unexpected(req, err))
		return domain.BuildUnexpectedError
	}

	for line := range proc.Lines() {
		e.logger.Output(OutputSource, line)
	}

	code, err := proc.Wait()
	e.logger.Info(style.Rule)
	if err != nil {
		e.logger.Error(e.unexpected(req, err))
		return domain.BuildUnexpectedError
	}
	if code != 0 {
		e.logger.Warn(fmt.Sprintf("%s: exit code %d (build %s)", domain.ErrBuildFailed.Error(), code, req.ID))
		return domain.BuildFailed
	}

	return domain.BuildSuccess
}

func (e *Executor) unexpected(req domain.BuildRequest, err error) error {
	return zerr.With(errors.Join(domain.ErrBuildUnexpected, err), "build_id", req.ID)
}

// Command returns the process spec for a BuildCookRun invocation.
// Batch files are launched through cmd.exe.
func Command(req domain.BuildRequest) ports.ProcessSpec {
	args := []string{
		"BuildCookRun",
		"-project=" + req.ProjectFile,
		"-noP4",
		"-clientconfig=" + req.BuildType,
		"-targetplatform=" + req.Platform,
		"-build", "-cook", "-stage", "-pak", "-package",
		"-utf8output",
	}
	if req.ArchiveDir != "" {
		args = append(args, "-archive", "-archivedirectory="+req.ArchiveDir)
	}
	args = append(args, req.ExtraArgs...)

	spec := ports.ProcessSpec{
		Name: req.ExePath,
		Args: args,
		Dir:  filepath.Dir(req.ProjectFile),
		PTY:  true,
	}

	switch strings.ToLower(filepath.Ext(req.ExePath)) {
	case ".bat", ".cmd":
		spec.Name = "cmd"
		spec.Args = append([]string{"/C", req.ExePath}, args...)
	}

	return spec
}
