package ports

import (
	"context"
	"iter"
)

//go:generate mockgen -source=process.go -destination=mocks/mock_process.go -package=mocks

// ProcessSpec describes a child process.
type ProcessSpec struct {
	Name string
	Args []string
	Dir  string
	// Env is appended to the inherited environment.
	Env []string
	// PTY requests a pseudo terminal so the child keeps line-buffered, colored output.
	PTY bool
}

// Process is a running child process.
type Process interface {
	// Lines yields the combined output one line at a time while the process runs.
	// The sequence can be consumed only once.
	Lines() iter.Seq[string]

	// Wait blocks until the process exits and returns its exit code.
	// An error means the process could not be observed; the exit code is then -1.
	Wait() (int, error)
}

// ProcessStarter launches child processes.
type ProcessStarter interface {
	Start(ctx context.Context, spec ProcessSpec) (Process, error)
}

// CommandResult is the collected output of a short-lived command.
type CommandResult struct {
	Output   string
	ExitCode int
}

// CommandRunner runs short-lived commands to completion.
type CommandRunner interface {
	Run(ctx context.Context, spec ProcessSpec) (CommandResult, error)
}

// ProcessKiller terminates running processes by executable name.
type ProcessKiller interface {
	// KillByName terminates every process whose name matches one of names, including
	// its children, and returns how many processes were signalled.
	KillByName(ctx context.Context, names []string) (int, error)
}
