// Package process starts, observes and terminates child processes.
package process

import (
	"bufio"
	"context"
	"errors"
	"io"
	"iter"
	"os"
	"os/exec"
	"strings"
	"sync"
	"syscall"

	"github.com/creack/pty"
	"go.trai.ch/revwatch/internal/core/domain"
	"go.trai.ch/revwatch/internal/core/ports"
	"go.trai.ch/zerr"
)

// maxLineSize bounds a single output line; longer lines are yielded in chunks of this size.
const maxLineSize = 1 << 20

// Starter implements ports.ProcessStarter using os/exec and pty.
type Starter struct{}

var _ ports.ProcessStarter = (*Starter)(nil)

// NewStarter creates a new Starter.
func NewStarter() *Starter {
	return &Starter{}
}

// Start launches the process in a PTY when requested and supported, or with standard pipes.
// The child is detached from ctx cancellation and always runs to completion.
func (s *Starter) Start(ctx context.Context, spec ports.ProcessSpec) (ports.Process, error) {
	if spec.Name == "" {
		return nil, zerr.Wrap(domain.ErrProcessStartFailed, "empty command")
	}
	ctx = context.WithoutCancel(ctx)

	if spec.PTY {
		cmd := command(ctx, spec)
		ptmx, err := pty.Start(cmd)
		if err == nil {
			return newProcess(cmd, ptmx), nil
		}
		if !errors.Is(err, pty.ErrUnsupported) {
			return nil, startError(err, spec)
		}
	}

	cmd := command(ctx, spec)
	r, w, err := os.Pipe()
	if err != nil {
		return nil, startError(err, spec)
	}
	cmd.Stdout = w
	cmd.Stderr = w

	if err := cmd.Start(); err != nil {
		_ = r.Close()
		_ = w.Close()
		return nil, startError(err, spec)
	}
	// The child holds its own copy of the write end.
	_ = w.Close()

	return newProcess(cmd, r), nil
}

func command(ctx context.Context, spec ports.ProcessSpec) *exec.Cmd {
	cmd := exec.CommandContext(ctx, spec.Name, spec.Args...) //nolint:gosec // user provided command
	cmd.Dir = spec.Dir
	if len(spec.Env) > 0 {
		cmd.Env = append(os.Environ(), spec.Env...)
	}
	return cmd
}

func startError(err error, spec ports.ProcessSpec) error {
	return zerr.With(errors.Join(domain.ErrProcessStartFailed, err), "command", spec.Name)
}

// process is a started child with a single combined output stream.
type process struct {
	cmd    *exec.Cmd
	output io.ReadCloser

	once    sync.Once
	readErr error
}

func newProcess(cmd *exec.Cmd, output io.ReadCloser) *process {
	return &process{cmd: cmd, output: output}
}

// Lines yields output lines with trailing carriage returns removed.
func (p *process) Lines() iter.Seq[string] {
	return func(yield func(string) bool) {
		p.once.Do(func() {
			scanner := bufio.NewScanner(p.output)
			scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)
			scanner.Split(scanChunkedLines)
			for scanner.Scan() {
				if !yield(strings.TrimSuffix(scanner.Text(), "\r")) {
					break
				}
			}
			p.readErr = readError(scanner.Err())
			// The child blocks on a full pipe until someone reads it.
			_, _ = io.Copy(io.Discard, p.output)
		})
	}
}

// scanChunkedLines is bufio.ScanLines that cuts a line at maxLineSize instead of failing.
func scanChunkedLines(data []byte, atEOF bool) (int, []byte, error) {
	advance, token, err := bufio.ScanLines(data, atEOF)
	if advance > 0 || token != nil || err != nil {
		return advance, token, err
	}
	if len(data) >= maxLineSize {
		return maxLineSize, data[:maxLineSize], nil
	}
	return 0, nil, nil
}

// Wait drains any unread output, then waits for the child to exit.
func (p *process) Wait() (int, error) {
	p.once.Do(func() {
		_, err := io.Copy(io.Discard, p.output)
		p.readErr = readError(err)
	})

	err := p.cmd.Wait()
	_ = p.output.Close()

	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return exitErr.ExitCode(), nil
		}
		return -1, zerr.Wrap(err, "failed to wait for process")
	}
	if p.readErr != nil {
		return -1, zerr.Wrap(p.readErr, "failed to read process output")
	}

	return 0, nil
}

// readError filters the errors that signal the normal end of a PTY stream.
func readError(err error) error {
	if err == nil || errors.Is(err, syscall.EIO) || errors.Is(err, os.ErrClosed) {
		return nil
	}
	return err
}
