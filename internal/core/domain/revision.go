package domain

import (
	"fmt"
	"iter"
)

// RevisionRange is an inclusive span of revisions whose logs are collected for one build.
// The zero value is the empty range.
type RevisionRange struct {
	Start int
	End   int
}

// NewRevisionRange returns the revisions to collect logs for when the working copy moved
// from watermark to current. The range ends at current, starts no earlier than
// watermark+1 and holds at most maxLogs revisions. A maxLogs of zero, or a current
// revision that is not ahead of the watermark, yields the empty range.
func NewRevisionRange(watermark, current, maxLogs int) RevisionRange {
	if maxLogs <= 0 || current <= watermark {
		return RevisionRange{}
	}
	start := max(watermark+1, current-maxLogs+1)
	return RevisionRange{Start: start, End: current}
}

// Empty reports whether the range holds no revisions.
func (r RevisionRange) Empty() bool {
	return r.Len() == 0
}

// Len returns the number of revisions in the range.
func (r RevisionRange) Len() int {
	if r.End < r.Start || r.End == 0 {
		return 0
	}
	return r.End - r.Start + 1
}

// Revisions yields the revisions in ascending order.
func (r RevisionRange) Revisions() iter.Seq[int] {
	return func(yield func(int) bool) {
		if r.Empty() {
			return
		}
		for rev := r.Start; rev <= r.End; rev++ {
			if !yield(rev) {
				return
			}
		}
	}
}

func (r RevisionRange) String() string {
	if r.Empty() {
		return "(none)"
	}
	return fmt.Sprintf("r%d..r%d", r.Start, r.End)
}

// BuildName is the templated identifier of a packaged build.
func BuildName(revision int, projectName, buildType string) string {
	return fmt.Sprintf("[%d] %s (%s)", revision, projectName, buildType)
}
