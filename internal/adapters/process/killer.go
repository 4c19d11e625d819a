package process

import (
	"context"
	"errors"
	"slices"
	"strings"

	psutil "github.com/shirou/gopsutil/v3/process"
	"go.trai.ch/revwatch/internal/core/ports"
	"go.trai.ch/zerr"
)

// Killer implements ports.ProcessKiller using gopsutil.
type Killer struct {
	self int32
}

var _ ports.ProcessKiller = (*Killer)(nil)

// NewKiller creates a new Killer that never terminates the calling process.
func NewKiller(self int) *Killer {
	return &Killer{self: int32(self)} //nolint:gosec // pids fit in int32
}

// KillByName terminates matching processes together with their children.
// Names are compared case-insensitively.
func (k *Killer) KillByName(ctx context.Context, names []string) (int, error) {
	if len(names) == 0 {
		return 0, nil
	}

	procs, err := psutil.ProcessesWithContext(ctx)
	if err != nil {
		return 0, zerr.Wrap(err, "failed to list processes")
	}

	var errs []error
	killed := 0
	for _, p := range procs {
		if p.Pid == k.self {
			continue
		}
		name, err := p.NameWithContext(ctx)
		if err != nil || !matches(name, names) {
			continue
		}

		killed += k.killTree(ctx, p, &errs)
	}

	return killed, errors.Join(errs...)
}

func (k *Killer) killTree(ctx context.Context, p *psutil.Process, errs *[]error) int {
	killed := 0
	if children, err := p.ChildrenWithContext(ctx); err == nil {
		for _, child := range children {
			killed += k.killTree(ctx, child, errs)
		}
	}

	if err := p.KillWithContext(ctx); err != nil {
		*errs = append(*errs, zerr.With(zerr.Wrap(err, "failed to kill process"), "pid", p.Pid))
		return killed
	}
	return killed + 1
}

func matches(name string, names []string) bool {
	return slices.ContainsFunc(names, func(n string) bool {
		return strings.EqualFold(n, name)
	})
}
