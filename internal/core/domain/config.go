package domain

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"
)

// VCSKind selects the version control backend.
type VCSKind string

const (
	// VCSKindSVN drives a Subversion working copy through the svn binary.
	VCSKindSVN VCSKind = "svn"
	// VCSKindGit reads a Git working copy, numbering revisions by first-parent depth.
	VCSKindGit VCSKind = "git"
)

// Archiver selects the compressor used by the packager.
type Archiver string

const (
	// ArchiverNative compresses in-process.
	ArchiverNative Archiver = "native"
	// ArchiverSevenZip shells out to 7-Zip.
	ArchiverSevenZip Archiver = "7z"
)

// DevelopmentBuildType is the build type forced by the dev build keyword.
const DevelopmentBuildType = "Development"

// MaxRelevantLogsLimit is the exclusive upper bound for build_export.max_num_relevant_logs.
const MaxRelevantLogsLimit = 999

// Config is an immutable snapshot of the configuration, reloaded on every iteration.
type Config struct {
	// Source is the path the snapshot was read from.
	Source      string
	Project     ProjectConfig
	VCS         VCSConfig
	Unreal      UnrealConfig
	Export      ExportConfig
	Keywords    KeywordConfig
	Sounds      SoundConfig
	Speech      SpeechConfig
	PrintConfig bool
}

// ProjectConfig locates the project being built.
type ProjectConfig struct {
	Path string
	// File is the discovered .uproject file under Path.
	File string
}

// Name is the project directory name, used in archive names.
func (p ProjectConfig) Name() string {
	return filepath.Base(p.Path)
}

// VCSConfig configures the working copy polling.
type VCSConfig struct {
	Kind           VCSKind
	ExePath        string
	PollInterval   time.Duration
	CleanupTimeout time.Duration
	CleanupRetries int
}

// UnrealConfig configures the build tool.
type UnrealConfig struct {
	ExePath          string
	Platform         string
	BuildType        string
	OutputDir        string
	DefaultBuildName string
	HostProcesses    []string
	ExtraArgs        []string
}

// BuildOutputDir is the directory the build tool leaves the packaged build in.
func (u UnrealConfig) BuildOutputDir() string {
	return filepath.Join(u.OutputDir, u.DefaultBuildName)
}

// ExportConfig configures packaging of finished builds.
type ExportConfig struct {
	OverrideZip     bool
	OutputDir       string
	MaxRelevantLogs int
	Archiver        Archiver
	SevenZipPath    string
}

// KeywordConfig maps commit message keywords to command effects.
type KeywordConfig struct {
	Enabled      bool
	MakeDevBuild string
	IgnoreBuild  string
}

// SoundConfig holds the sound selectors for each pipeline event.
type SoundConfig struct {
	BuildStarting     SoundSelector
	BuildSuccess      SoundSelector
	BuildFail         SoundSelector
	BuildUnknownError SoundSelector
}

// SpeechConfig holds the spoken phrases for each pipeline event.
// BuildCompleted may contain the {build_type} placeholder.
type SpeechConfig struct {
	Enabled           bool
	BuildStarting     string
	BuildCompleted    string
	BuildFailed       string
	BuildUnknownError string
	IgnoringBuild     string
	CleanupFailed     string
	PackagingFailed   string
}

// Phrase expands the placeholders of a configured phrase.
func (s SpeechConfig) Phrase(template, buildType string) string {
	return strings.ReplaceAll(template, "{build_type}", buildType)
}

// SoundSelector is a set of candidate asset paths. A candidate may be a file or a
// directory of audio files.
type SoundSelector []string

// String renders the selector as base names, for config dumps.
func (s SoundSelector) String() string {
	names := make([]string, len(s))
	for i, p := range s {
		names[i] = filepath.Base(p)
	}
	return strings.Join(names, ", ")
}

// String renders the snapshot section by section.
func (c Config) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "source: %s\nprint config: %t\n\n", c.Source, c.PrintConfig)
	fmt.Fprintf(&b, "[project]\nname: %s\npath: %s\nproject file: %s\n\n",
		c.Project.Name(), c.Project.Path, c.Project.File)
	fmt.Fprintf(&b, "[vcs]\nkind: %s\nexe: %s\nupdate interval: %s\ncleanup timeout: %s\ncleanup retries: %d\n\n",
		c.VCS.Kind, c.VCS.ExePath, c.VCS.PollInterval, c.VCS.CleanupTimeout, c.VCS.CleanupRetries)
	fmt.Fprintf(&b, "[unreal]\nexe: %s\nplatform: %s\nbuild type: %s\noutput: %s\nhost processes: %s\n\n",
		c.Unreal.ExePath, c.Unreal.Platform, c.Unreal.BuildType, c.Unreal.BuildOutputDir(),
		strings.Join(c.Unreal.HostProcesses, ", "))
	fmt.Fprintf(&b, "[build_export]\noverride zip: %t\noutput: %s\nmax relevant logs: %d\narchiver: %s\n\n",
		c.Export.OverrideZip, c.Export.OutputDir, c.Export.MaxRelevantLogs, c.Export.Archiver)
	fmt.Fprintf(&b, "[special_log_keywords]\nenabled: %t\nmake dev build: %s\nignore build: %s\n\n",
		c.Keywords.Enabled, c.Keywords.MakeDevBuild, c.Keywords.IgnoreBuild)
	fmt.Fprintf(&b, "[sounds]\nbuild starting: %s\nbuild success: %s\nbuild fail: %s\nbuild unknown error: %s\n",
		c.Sounds.BuildStarting, c.Sounds.BuildSuccess, c.Sounds.BuildFail, c.Sounds.BuildUnknownError)
	return b.String()
}
