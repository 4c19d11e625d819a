package domain

import "time"

// Watermark is the orchestrator's in-memory progress state. It is never persisted.
type Watermark struct {
	lastBuilt   int
	builtSet    bool
	lastCleanup time.Time
}

// LastBuilt returns the last settled revision and whether it has been initialized.
func (w *Watermark) LastBuilt() (int, bool) {
	return w.lastBuilt, w.builtSet
}

// Init sets the watermark on the first successful sync. It is a no-op once set.
// It reports whether the watermark was initialized by this call.
func (w *Watermark) Init(revision int) bool {
	if w.builtSet {
		return false
	}
	w.lastBuilt = revision
	w.builtSet = true
	return true
}

// Advance moves the watermark forward to revision. Lower revisions are ignored so the
// watermark never decreases.
func (w *Watermark) Advance(revision int) {
	if !w.builtSet || revision > w.lastBuilt {
		w.lastBuilt = revision
		w.builtSet = true
	}
}

// NeedsBuild reports whether current is a revision that has not been settled yet.
func (w *Watermark) NeedsBuild(current int) bool {
	return w.builtSet && current > w.lastBuilt
}

// CleanupDue reports whether a cleanup should run at now.
func (w *Watermark) CleanupDue(now time.Time, timeout time.Duration) bool {
	if w.lastCleanup.IsZero() {
		return true
	}
	return now.Sub(w.lastCleanup) >= timeout
}

// MarkCleanup records a successful cleanup at now.
func (w *Watermark) MarkCleanup(now time.Time) {
	w.lastCleanup = now
}

// LastCleanup returns the time of the last successful cleanup, zero if none.
func (w *Watermark) LastCleanup() time.Time {
	return w.lastCleanup
}
