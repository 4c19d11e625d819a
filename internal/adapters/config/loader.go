// Package config provides the configuration loader for revwatch.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"os/exec"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"go.trai.ch/revwatch/internal/core/domain"
	"go.trai.ch/revwatch/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// Defaults applied when a key is absent.
const (
	DefaultSVNExe           = "svn"
	DefaultUATExe           = "C:/Program Files/Epic Games/UE_5.3/Engine/Build/BatchFiles/RunUAT.bat"
	DefaultSevenZipExe      = "7z"
	DefaultPlatform         = "Win64"
	DefaultBuildType        = "Shipping"
	DefaultBuildName        = "Windows"
	DefaultBinDir           = "./bin"
	DefaultExportDir        = "./builds"
	DefaultPollInterval     = 30 * time.Second
	DefaultCleanupTimeout   = time.Hour
	DefaultMaxRelevantLogs  = 10
	DefaultDevBuildKeyword  = "#devbuild"
	DefaultIgnoreKeyword    = "#ignorebuild"
	minCleanupTimeoutSecond = 1.0
)

// DefaultHostProcesses are the editor processes terminated before builds and cleanups.
var DefaultHostProcesses = []string{"UnrealEditor.exe", "UnrealEditor-Cmd.exe"}

// DefaultSpeech holds the phrases spoken when the speech section leaves them unset.
var DefaultSpeech = domain.SpeechConfig{
	Enabled:           true,
	BuildStarting:     "Starting build!",
	BuildCompleted:    "Build {build_type} completed!",
	BuildFailed:       "Build failed, do better!",
	BuildUnknownError: "Unexpected error during build!",
	IgnoringBuild:     "Ignoring build...",
	CleanupFailed:     "Failed to clean project!",
	PackagingFailed:   "Packaging failed!",
}

// Loader implements ports.ConfigLoader using a YAML file.
type Loader struct {
	Logger ports.Logger
	// LookPath resolves bare executable names. Defaults to exec.LookPath.
	LookPath func(file string) (string, error)
}

var _ ports.ConfigLoader = (*Loader)(nil)

// NewLoader creates a new Loader with the given logger.
func NewLoader(logger ports.Logger) *Loader {
	return &Loader{Logger: logger, LookPath: exec.LookPath}
}

// Load reads the configuration file at path and returns a validated snapshot.
// An empty path selects revwatch.yaml in the working directory.
// Validation failures wrap domain.ErrConfigInvalid and still return the snapshot.
func (l *Loader) Load(path string) (domain.Config, error) {
	if path == "" {
		path = domain.ConfigFileName
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return domain.Config{}, zerr.With(errors.Join(domain.ErrConfigReadFailed, err), "path", path)
	}

	var file Configfile
	if err := readAndUnmarshalYAML(abs, &file); err != nil {
		return domain.Config{}, err
	}

	cfg := l.build(abs, &file)

	if problems := l.validate(&cfg); len(problems) > 0 {
		return cfg, errors.Join(append([]error{domain.ErrConfigInvalid}, problems...)...)
	}

	return cfg, nil
}

func readAndUnmarshalYAML(path string, v any) error {
	data, err := os.ReadFile(path) //nolint:gosec // path is provided by user
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return zerr.With(zerr.Wrap(domain.ErrConfigNotFound, "config file missing"), "path", path)
		}
		return zerr.With(errors.Join(domain.ErrConfigReadFailed, err), "path", path)
	}

	if err := yaml.Unmarshal(data, v); err != nil {
		return zerr.With(errors.Join(domain.ErrConfigParseFailed, err), "path", path)
	}
	return nil
}

func (l *Loader) build(configPath string, file *Configfile) domain.Config {
	root := filepath.Dir(configPath)

	cfg := domain.Config{
		Source:      configPath,
		PrintConfig: true,
		VCS: domain.VCSConfig{
			Kind:           domain.VCSKindSVN,
			ExePath:        DefaultSVNExe,
			PollInterval:   DefaultPollInterval,
			CleanupTimeout: DefaultCleanupTimeout,
		},
		Unreal: domain.UnrealConfig{
			ExePath:          DefaultUATExe,
			Platform:         DefaultPlatform,
			BuildType:        DefaultBuildType,
			OutputDir:        resolvePath(root, DefaultBinDir),
			DefaultBuildName: DefaultBuildName,
			HostProcesses:    slices.Clone(DefaultHostProcesses),
		},
		Export: domain.ExportConfig{
			OutputDir:       resolvePath(root, DefaultExportDir),
			MaxRelevantLogs: DefaultMaxRelevantLogs,
			Archiver:        domain.ArchiverNative,
			SevenZipPath:    DefaultSevenZipExe,
		},
		Keywords: domain.KeywordConfig{
			Enabled:      true,
			MakeDevBuild: DefaultDevBuildKeyword,
			IgnoreBuild:  DefaultIgnoreKeyword,
		},
		Speech: DefaultSpeech,
	}

	if file.Development != nil && file.Development.PrintConfig != nil {
		cfg.PrintConfig = *file.Development.PrintConfig
	}
	if file.Project != nil && file.Project.Path != "" {
		cfg.Project.Path = resolvePath(root, file.Project.Path)
		cfg.Project.File = findProjectFile(cfg.Project.Path)
	}

	l.applyVCS(root, &cfg.VCS, file.VCS)
	applyUnreal(root, &cfg.Unreal, file.Unreal)
	l.applyExport(root, &cfg.Export, file.BuildExport)
	applyKeywords(&cfg.Keywords, file.Keywords)
	applySounds(root, &cfg.Sounds, file.Sounds)
	applySpeech(&cfg.Speech, file.Speech)

	return cfg
}

func (l *Loader) applyVCS(root string, vcs *domain.VCSConfig, dto *VCSDTO) {
	if dto == nil {
		return
	}
	if dto.Kind != "" {
		vcs.Kind = domain.VCSKind(strings.ToLower(dto.Kind))
	}
	if dto.ExePath != "" {
		vcs.ExePath = resolveExe(root, dto.ExePath)
	}
	if dto.UpdateIntervalInSeconds != nil {
		seconds := *dto.UpdateIntervalInSeconds
		if seconds <= 0 {
			l.Logger.Warn(fmt.Sprintf("fixing vcs update interval '%ds' -> '1s'", seconds))
			seconds = 1
		}
		vcs.PollInterval = time.Duration(seconds) * time.Second
	}
	if dto.CleanupTimeoutInSeconds != nil && *dto.CleanupTimeoutInSeconds > minCleanupTimeoutSecond {
		vcs.CleanupTimeout = time.Duration(*dto.CleanupTimeoutInSeconds * float64(time.Second))
	}
	if dto.CleanupRetries != nil && *dto.CleanupRetries > 0 {
		vcs.CleanupRetries = *dto.CleanupRetries
	}
}

func applyUnreal(root string, unreal *domain.UnrealConfig, dto *UnrealDTO) {
	if dto == nil {
		return
	}
	if dto.UATExePath != "" {
		unreal.ExePath = resolvePath(root, dto.UATExePath)
	}
	if dto.Platform != "" {
		unreal.Platform = dto.Platform
	}
	if dto.BuildType != "" {
		unreal.BuildType = dto.BuildType
	}
	if dto.OutputDirectory != "" {
		unreal.OutputDir = resolvePath(root, dto.OutputDirectory)
	}
	if dto.DefaultBuildName != "" {
		unreal.DefaultBuildName = dto.DefaultBuildName
	}
	if dto.HostProcesses != nil {
		unreal.HostProcesses = dto.HostProcesses
	}
	unreal.ExtraArgs = strings.Fields(dto.ExtraArgs)
}

func (l *Loader) applyExport(root string, export *domain.ExportConfig, dto *BuildExportDTO) {
	if dto == nil {
		return
	}
	if dto.OverrideZip != nil {
		export.OverrideZip = *dto.OverrideZip
	}
	if dto.OutputDirectory != "" {
		export.OutputDir = resolvePath(root, dto.OutputDirectory)
	}
	if dto.MaxNumRelevantLogs != nil {
		n := *dto.MaxNumRelevantLogs
		clamped := min(max(n, 0), domain.MaxRelevantLogsLimit-1)
		if clamped != n {
			l.Logger.Warn(fmt.Sprintf("fixing max relevant logs '%d' -> '%d'", n, clamped))
		}
		export.MaxRelevantLogs = clamped
	}
	if dto.Archiver != "" {
		export.Archiver = domain.Archiver(strings.ToLower(dto.Archiver))
	}
	if dto.SevenZipExePath != "" {
		export.SevenZipPath = resolveExe(root, dto.SevenZipExePath)
	}
}

func applyKeywords(keywords *domain.KeywordConfig, dto *KeywordsDTO) {
	if dto == nil {
		return
	}
	if dto.Enabled != nil {
		keywords.Enabled = *dto.Enabled
	}
	if dto.MakeDevBuild != nil {
		keywords.MakeDevBuild = *dto.MakeDevBuild
	}
	if dto.IgnoreBuild != nil {
		keywords.IgnoreBuild = *dto.IgnoreBuild
	}
}

func applySounds(root string, sounds *domain.SoundConfig, dto *SoundsDTO) {
	if dto == nil {
		return
	}
	sounds.BuildStarting = resolveSelector(root, dto.BuildStarting)
	sounds.BuildSuccess = resolveSelector(root, dto.BuildSuccess)
	sounds.BuildFail = resolveSelector(root, dto.BuildFail)
	sounds.BuildUnknownError = resolveSelector(root, dto.BuildUnknownError)
}

func applySpeech(speech *domain.SpeechConfig, dto *SpeechDTO) {
	if dto == nil {
		return
	}
	if dto.Enabled != nil {
		speech.Enabled = *dto.Enabled
	}
	for dst, src := range map[*string]*string{
		&speech.BuildStarting:     dto.BuildStarting,
		&speech.BuildCompleted:    dto.BuildCompleted,
		&speech.BuildFailed:       dto.BuildFailed,
		&speech.BuildUnknownError: dto.BuildUnknownError,
		&speech.IgnoringBuild:     dto.IgnoringBuild,
		&speech.CleanupFailed:     dto.CleanupFailed,
		&speech.PackagingFailed:   dto.PackagingFailed,
	} {
		if src != nil {
			*dst = *src
		}
	}
}

// validate returns one error per invalid setting, prefixed with its section.
func (l *Loader) validate(cfg *domain.Config) []error {
	var problems []error
	invalid := func(section, format string, args ...any) {
		problems = append(problems, zerr.New(fmt.Sprintf("[%s] ", section)+fmt.Sprintf(format, args...)))
	}

	switch info, err := os.Stat(cfg.Project.Path); {
	case cfg.Project.Path == "":
		invalid("project", "path is not set")
	case err != nil:
		invalid("project", "path %q does not exist", cfg.Project.Path)
	case !info.IsDir():
		invalid("project", "path %q is not a directory", cfg.Project.Path)
	case cfg.Project.File == "":
		invalid("project", "%s: no %s file under %q",
			domain.ErrProjectFileNotFound.Error(), domain.ProjectFileExt, cfg.Project.Path)
	}

	switch cfg.VCS.Kind {
	case domain.VCSKindSVN:
		if resolved, ok := l.executable(cfg.VCS.ExePath); ok {
			cfg.VCS.ExePath = resolved
		} else {
			invalid("vcs", "svn executable %q not found", cfg.VCS.ExePath)
		}
	case domain.VCSKindGit:
	default:
		invalid("vcs", "%s: %q", domain.ErrUnknownVCSKind.Error(), cfg.VCS.Kind)
	}

	if !isFile(cfg.Unreal.ExePath) {
		invalid("unreal", "build tool executable %q not found", cfg.Unreal.ExePath)
	}

	switch cfg.Export.Archiver {
	case domain.ArchiverNative:
	case domain.ArchiverSevenZip:
		if resolved, ok := l.executable(cfg.Export.SevenZipPath); ok {
			cfg.Export.SevenZipPath = resolved
		} else {
			invalid("build_export", "7-Zip executable %q not found", cfg.Export.SevenZipPath)
		}
	default:
		invalid("build_export", "%s: %q", domain.ErrUnknownArchiver.Error(), cfg.Export.Archiver)
	}

	if cfg.Keywords.Enabled && (cfg.Keywords.MakeDevBuild == "" || cfg.Keywords.IgnoreBuild == "") {
		invalid("special_log_keywords", "keywords must not be empty while enabled")
	}

	return problems
}

// executable resolves an executable given either as a path or as a bare name on PATH.
func (l *Loader) executable(exe string) (string, bool) {
	if exe == "" {
		return "", false
	}
	if strings.ContainsAny(exe, `/\`) {
		return exe, isFile(exe)
	}
	lookPath := l.LookPath
	if lookPath == nil {
		lookPath = exec.LookPath
	}
	resolved, err := lookPath(exe)
	if err != nil {
		return exe, false
	}
	return resolved, true
}

// findProjectFile returns the first project file found walking dir in lexical order.
func findProjectFile(dir string) string {
	var found string
	_ = filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return nil //nolint:nilerr // unreadable entries are skipped
		}
		if !d.IsDir() && filepath.Ext(path) == domain.ProjectFileExt {
			found = path
			return fs.SkipAll
		}
		return nil
	})
	return found
}

func resolvePath(root, path string) string {
	if filepath.IsAbs(path) {
		return filepath.Clean(path)
	}
	return filepath.Join(root, path)
}

// resolveExe resolves relative paths but keeps bare names for PATH lookup.
func resolveExe(root, exe string) string {
	if !strings.ContainsAny(exe, `/\`) {
		return exe
	}
	return resolvePath(root, exe)
}

func resolveSelector(root string, paths PathList) domain.SoundSelector {
	if len(paths) == 0 {
		return nil
	}
	out := make(domain.SoundSelector, 0, len(paths))
	for _, p := range paths {
		if p != "" {
			out = append(out, resolvePath(root, p))
		}
	}
	return out
}

func isFile(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}
