package process_test

import (
	"context"
	"path/filepath"
	"runtime"
	"slices"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/revwatch/internal/adapters/process"
	"go.trai.ch/revwatch/internal/core/domain"
	"go.trai.ch/revwatch/internal/core/ports"
)

func skipOnWindows(t *testing.T) {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("requires a POSIX shell")
	}
}

func collect(proc ports.Process) []string {
	return slices.Collect(proc.Lines())
}

func TestStarter_Start_Lines(t *testing.T) {
	skipOnWindows(t)

	for _, usePTY := range []bool{false, true} {
		name := "pipe"
		if usePTY {
			name = "pty"
		}
		t.Run(name, func(t *testing.T) {
			proc, err := process.NewStarter().Start(context.Background(), ports.ProcessSpec{
				Name: "sh",
				Args: []string{"-c", "echo line1; printf 'part1'; sleep 0.1; echo part2; echo line3"},
				PTY:  usePTY,
			})
			require.NoError(t, err)

			lines := collect(proc)
			code, err := proc.Wait()
			require.NoError(t, err)

			assert.Zero(t, code)
			assert.Equal(t, []string{"line1", "part1part2", "line3"}, lines)
		})
	}
}

func TestStarter_Start_ExitCode(t *testing.T) {
	skipOnWindows(t)

	proc, err := process.NewStarter().Start(context.Background(), ports.ProcessSpec{
		Name: "sh",
		Args: []string{"-c", "echo failing >&2; exit 3"},
	})
	require.NoError(t, err)

	lines := collect(proc)
	code, err := proc.Wait()
	require.NoError(t, err)

	assert.Equal(t, 3, code)
	assert.Equal(t, []string{"failing"}, lines)
}

func TestStarter_Start_WaitWithoutReading(t *testing.T) {
	skipOnWindows(t)

	proc, err := process.NewStarter().Start(context.Background(), ports.ProcessSpec{
		Name: "sh",
		Args: []string{"-c", "yes revwatch | head -n 100000"},
	})
	require.NoError(t, err)

	code, err := proc.Wait()
	require.NoError(t, err)
	assert.Zero(t, code)
	assert.Empty(t, collect(proc), "output is consumed once")
}

func waitWithin(t *testing.T, proc ports.Process, d time.Duration) int {
	t.Helper()
	type result struct {
		code int
		err  error
	}
	done := make(chan result, 1)
	go func() {
		code, err := proc.Wait()
		done <- result{code, err}
	}()
	select {
	case res := <-done:
		require.NoError(t, res.err)
		return res.code
	case <-time.After(d):
		t.Fatal("process did not finish")
		return -1
	}
}

func TestStarter_Start_LongLine(t *testing.T) {
	skipOnWindows(t)

	proc, err := process.NewStarter().Start(context.Background(), ports.ProcessSpec{
		Name: "sh",
		Args: []string{"-c", "head -c 2000000 /dev/zero | tr '\\0' a; echo; echo done"},
	})
	require.NoError(t, err)

	lines := collect(proc)
	assert.Zero(t, waitWithin(t, proc, 10*time.Second))

	require.Len(t, lines, 3)
	assert.Equal(t, strings.Repeat("a", 1<<20), lines[0])
	assert.Equal(t, strings.Repeat("a", 2000000-1<<20), lines[1])
	assert.Equal(t, "done", lines[2])
}

func TestStarter_Start_StopReadingEarly(t *testing.T) {
	skipOnWindows(t)

	proc, err := process.NewStarter().Start(context.Background(), ports.ProcessSpec{
		Name: "sh",
		Args: []string{"-c", "echo first; yes revwatch | head -n 200000"},
	})
	require.NoError(t, err)

	var first string
	for line := range proc.Lines() {
		first = line
		break
	}
	assert.Equal(t, "first", first)
	assert.Zero(t, waitWithin(t, proc, 10*time.Second))
}

func TestStarter_Start_EnvAndDir(t *testing.T) {
	skipOnWindows(t)
	dir, err := filepath.EvalSymlinks(t.TempDir())
	require.NoError(t, err)

	proc, err := process.NewStarter().Start(context.Background(), ports.ProcessSpec{
		Name: "sh",
		Args: []string{"-c", "echo $REVWATCH_TEST; pwd -P"},
		Dir:  dir,
		Env:  []string{"REVWATCH_TEST=value-123"},
	})
	require.NoError(t, err)

	lines := collect(proc)
	_, err = proc.Wait()
	require.NoError(t, err)

	require.Len(t, lines, 2)
	assert.Equal(t, "value-123", lines[0])
	assert.Equal(t, dir, lines[1])
}

func TestStarter_Start_DetachedFromCancellation(t *testing.T) {
	skipOnWindows(t)
	ctx, cancel := context.WithCancel(context.Background())

	proc, err := process.NewStarter().Start(ctx, ports.ProcessSpec{
		Name: "sh",
		Args: []string{"-c", "sleep 0.2; echo done"},
	})
	require.NoError(t, err)
	cancel()

	lines := collect(proc)
	code, err := proc.Wait()
	require.NoError(t, err)
	assert.Zero(t, code)
	assert.Equal(t, []string{"done"}, lines)
}

func TestStarter_Start_InvalidCommand(t *testing.T) {
	_, err := process.NewStarter().Start(context.Background(), ports.ProcessSpec{
		Name: "revwatch-command-that-does-not-exist",
	})
	require.ErrorIs(t, err, domain.ErrProcessStartFailed)

	_, err = process.NewStarter().Start(context.Background(), ports.ProcessSpec{})
	require.ErrorIs(t, err, domain.ErrProcessStartFailed)
}

func TestRunner_Run(t *testing.T) {
	skipOnWindows(t)

	res, err := process.NewRunner(process.NewStarter()).Run(context.Background(), ports.ProcessSpec{
		Name: "sh",
		Args: []string{"-c", "echo 42; echo rev"},
	})
	require.NoError(t, err)
	assert.Equal(t, ports.CommandResult{Output: "42\nrev", ExitCode: 0}, res)
}

func TestRunner_Run_StartFailure(t *testing.T) {
	res, err := process.NewRunner(process.NewStarter()).Run(context.Background(), ports.ProcessSpec{
		Name: "revwatch-command-that-does-not-exist",
	})
	require.ErrorIs(t, err, domain.ErrProcessStartFailed)
	assert.Equal(t, -1, res.ExitCode)
}
