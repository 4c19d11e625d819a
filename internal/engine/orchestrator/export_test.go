package orchestrator

// SetIDSource replaces the build ID generator.
// This is exported for testing purposes only.
func (o *Orchestrator) SetIDSource(f func() string) {
	o.newID = f
}
