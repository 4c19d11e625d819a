package config

import (
	"gopkg.in/yaml.v3"
)

// Configfile represents the structure of the revwatch.yaml configuration file.
// Pointer fields distinguish an absent key from its zero value.
type Configfile struct {
	Project     *ProjectDTO     `yaml:"project"`
	VCS         *VCSDTO         `yaml:"vcs"`
	Unreal      *UnrealDTO      `yaml:"unreal"`
	BuildExport *BuildExportDTO `yaml:"build_export"`
	Keywords    *KeywordsDTO    `yaml:"special_log_keywords"`
	Sounds      *SoundsDTO      `yaml:"sounds"`
	Speech      *SpeechDTO      `yaml:"speech"`
	Development *DevelopmentDTO `yaml:"development"`
}

// ProjectDTO represents the project section.
type ProjectDTO struct {
	Path string `yaml:"path"`
}

// VCSDTO represents the vcs section.
type VCSDTO struct {
	Kind                    string   `yaml:"kind"`
	ExePath                 string   `yaml:"exe_path"`
	UpdateIntervalInSeconds *int     `yaml:"update_interval_in_seconds"`
	CleanupTimeoutInSeconds *float64 `yaml:"cleanup_timeout_in_seconds"`
	CleanupRetries          *int     `yaml:"cleanup_retries"`
}

// UnrealDTO represents the unreal section.
type UnrealDTO struct {
	UATExePath       string   `yaml:"uat_exe_path"`
	Platform         string   `yaml:"platform"`
	BuildType        string   `yaml:"build_type"`
	OutputDirectory  string   `yaml:"output_directory"`
	DefaultBuildName string   `yaml:"default_build_name"`
	HostProcesses    []string `yaml:"host_processes"`
	ExtraArgs        string   `yaml:"extra_args"`
}

// BuildExportDTO represents the build_export section.
type BuildExportDTO struct {
	OverrideZip        *bool  `yaml:"override_zip"`
	OutputDirectory    string `yaml:"output_directory"`
	MaxNumRelevantLogs *int   `yaml:"max_num_relevant_logs"`
	Archiver           string `yaml:"archiver"`
	SevenZipExePath    string `yaml:"sevenzip_exe_path"`
}

// KeywordsDTO represents the special_log_keywords section.
type KeywordsDTO struct {
	Enabled      *bool   `yaml:"enabled"`
	MakeDevBuild *string `yaml:"make_dev_build"`
	IgnoreBuild  *string `yaml:"ignore_build"`
}

// SoundsDTO represents the sounds section.
type SoundsDTO struct {
	BuildStarting     PathList `yaml:"build_starting"`
	BuildSuccess      PathList `yaml:"build_success"`
	BuildFail         PathList `yaml:"build_fail"`
	BuildUnknownError PathList `yaml:"build_unknown_error"`
}

// SpeechDTO represents the speech section.
type SpeechDTO struct {
	Enabled           *bool   `yaml:"enabled"`
	BuildStarting     *string `yaml:"build_starting"`
	BuildCompleted    *string `yaml:"build_completed"`
	BuildFailed       *string `yaml:"build_failed"`
	BuildUnknownError *string `yaml:"build_unknown_error"`
	IgnoringBuild     *string `yaml:"ignoring_build"`
	CleanupFailed     *string `yaml:"cleanup_failed"`
	PackagingFailed   *string `yaml:"packaging_failed"`
}

// DevelopmentDTO represents the development section.
type DevelopmentDTO struct {
	PrintConfig *bool `yaml:"print_config"`
}

// PathList accepts either a single string or a list of strings.
type PathList []string

// UnmarshalYAML implements yaml.Unmarshaler.
func (p *PathList) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind == yaml.ScalarNode {
		var single string
		if err := value.Decode(&single); err != nil {
			return err
		}
		if single == "" {
			*p = nil
			return nil
		}
		*p = PathList{single}
		return nil
	}

	var list []string
	if err := value.Decode(&list); err != nil {
		return err
	}
	*p = list
	return nil
}
