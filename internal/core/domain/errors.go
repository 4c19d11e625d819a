package domain

import "go.trai.ch/zerr"

var (
	// ErrConfigNotFound is returned when the configuration file does not exist.
	ErrConfigNotFound = zerr.New("could not find config file")

	// ErrConfigReadFailed is returned when the config file cannot be read.
	ErrConfigReadFailed = zerr.New("failed to read config file")

	// ErrConfigParseFailed is returned when the config file cannot be parsed.
	ErrConfigParseFailed = zerr.New("failed to parse config file")

	// ErrConfigInvalid is returned when a parsed config fails validation.
	ErrConfigInvalid = zerr.New("invalid configuration")

	// ErrProjectFileNotFound is returned when no .uproject file exists under the project path.
	ErrProjectFileNotFound = zerr.New("could not find project file")

	// ErrUnknownVCSKind is returned when vcs.kind names an unsupported backend.
	ErrUnknownVCSKind = zerr.New("unknown version control kind, expected 'svn' or 'git'")

	// ErrUnknownArchiver is returned when build_export.archiver names an unsupported archiver.
	ErrUnknownArchiver = zerr.New("unknown archiver, expected 'native' or '7z'")

	// ErrVcsQueryFailed is returned when the working copy revision cannot be determined.
	ErrVcsQueryFailed = zerr.New("failed to query working copy revision")

	// ErrVcsUpdateFailed is returned when the working copy update fails.
	ErrVcsUpdateFailed = zerr.New("failed to update working copy")

	// ErrCleanupFailed is returned when the working copy maintenance pass fails.
	ErrCleanupFailed = zerr.New("working copy cleanup failed")

	// ErrBuildFailed is returned when the build tool exits with a non-zero code.
	ErrBuildFailed = zerr.New("build failed")

	// ErrBuildUnexpected is returned when the build tool cannot be launched or observed.
	ErrBuildUnexpected = zerr.New("unexpected error during build")

	// ErrProcessStartFailed is returned when a child process cannot be started.
	ErrProcessStartFailed = zerr.New("failed to start process")

	// ErrArchiveSourceMissing is returned when the directory to archive does not exist.
	ErrArchiveSourceMissing = zerr.New("archive source does not exist")

	// ErrArchiveSourceNotDir is returned when the path to archive is not a directory.
	ErrArchiveSourceNotDir = zerr.New("archive source is not a directory")

	// ErrArchiveFailed is returned when compression or the final rename fails.
	ErrArchiveFailed = zerr.New("failed to create archive")

	// ErrLogDumpFailed is returned when the revision log sidecar cannot be written.
	ErrLogDumpFailed = zerr.New("failed to write revision log file")
)
