package process

import (
	"context"
	"strings"

	"go.trai.ch/revwatch/internal/core/ports"
)

// Runner implements ports.CommandRunner on top of a ports.ProcessStarter.
type Runner struct {
	starter ports.ProcessStarter
}

var _ ports.CommandRunner = (*Runner)(nil)

// NewRunner creates a new Runner.
func NewRunner(starter ports.ProcessStarter) *Runner {
	return &Runner{starter: starter}
}

// Run starts the command, collects its output and waits for it to exit.
func (r *Runner) Run(ctx context.Context, spec ports.ProcessSpec) (ports.CommandResult, error) {
	proc, err := r.starter.Start(ctx, spec)
	if err != nil {
		return ports.CommandResult{ExitCode: -1}, err
	}

	var lines []string
	for line := range proc.Lines() {
		lines = append(lines, line)
	}

	code, err := proc.Wait()
	return ports.CommandResult{
		Output:   strings.Join(lines, "\n"),
		ExitCode: code,
	}, err
}
