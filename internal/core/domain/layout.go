package domain

import "time"

const (
	// ConfigFileName is the default name of the configuration file.
	ConfigFileName = "revwatch.yaml"

	// EnvFileName is the optional dotenv file loaded at startup.
	EnvFileName = ".env"

	// LogDumpFileName is the sidecar written into the build output with the collected revision logs.
	LogDumpFileName = "vcs_logs.txt"

	// ProjectFileExt is the extension of the project file handed to the build tool.
	ProjectFileExt = ".uproject"

	// ArchiveExt is the extension of packaged build archives.
	ArchiveExt = ".zip"

	// TransferSuffix is appended to archive names while compression is in progress.
	TransferSuffix = " TRANSFERRING..."

	// DirPerm is the default permission for directories (rwxr-x---).
	DirPerm = 0o750

	// FilePerm is the default permission for files (rw-r--r--).
	FilePerm = 0o644

	// ConfigRetryDelay is the pause before reloading when no valid config has been seen yet.
	ConfigRetryDelay = 10 * time.Second
)
