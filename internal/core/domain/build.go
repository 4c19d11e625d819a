package domain

// BuildOutcome classifies a finished build tool invocation.
type BuildOutcome uint8

const (
	// BuildSuccess means the build tool exited with code 0.
	BuildSuccess BuildOutcome = iota
	// BuildFailed means the build tool ran and exited with a non-zero code.
	BuildFailed
	// BuildUnexpectedError means the build tool could not be launched or observed.
	BuildUnexpectedError
)

func (o BuildOutcome) String() string {
	switch o {
	case BuildSuccess:
		return "success"
	case BuildFailed:
		return "failed"
	case BuildUnexpectedError:
		return "unexpected_error"
	default:
		return "unknown"
	}
}

// BuildRequest describes one invocation of the build tool.
type BuildRequest struct {
	// ID correlates log lines of one build.
	ID            string
	ExePath       string
	ProjectFile   string
	Platform      string
	BuildType     string
	ArchiveDir    string
	ExtraArgs     []string
	HostProcesses []string
}

// ArchiveRequest describes one packaging of a build output directory.
type ArchiveRequest struct {
	SourceDir string
	Override  bool
	// NewName is the archive base name without extension; the source directory name is used when empty.
	NewName string
	// OutputDir receives the archive; the parent of SourceDir is used when empty.
	OutputDir    string
	Archiver     Archiver
	SevenZipPath string
}
