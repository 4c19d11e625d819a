package domain_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/revwatch/internal/core/domain"
)

func TestSpeechConfig_Phrase(t *testing.T) {
	var s domain.SpeechConfig
	assert.Equal(t, "Build Development completed!", s.Phrase("Build {build_type} completed!", "Development"))
	assert.Equal(t, "Starting build!", s.Phrase("Starting build!", "Shipping"))
}

func TestConfigPaths(t *testing.T) {
	root := filepath.Join("work", "studio")
	cfg := domain.Config{
		Project: domain.ProjectConfig{Path: filepath.Join(root, "MyGame")},
		Unreal:  domain.UnrealConfig{OutputDir: filepath.Join(root, "bin"), DefaultBuildName: "Windows"},
	}

	assert.Equal(t, "MyGame", cfg.Project.Name())
	assert.Equal(t, filepath.Join(root, "bin", "Windows"), cfg.Unreal.BuildOutputDir())
}

func TestSoundSelector_String(t *testing.T) {
	sel := domain.SoundSelector{filepath.Join("sounds", "start"), filepath.Join("sounds", "yay.wav")}
	assert.Equal(t, "start, yay.wav", sel.String())
}

func TestConfig_String(t *testing.T) {
	cfg := domain.Config{
		Project:  domain.ProjectConfig{Path: "MyGame"},
		VCS:      domain.VCSConfig{Kind: domain.VCSKindGit},
		Keywords: domain.KeywordConfig{Enabled: true, MakeDevBuild: "#devbuild", IgnoreBuild: "#ignorebuild"},
	}

	out := cfg.String()
	for _, section := range []string{"[project]", "[vcs]", "[unreal]", "[build_export]", "[special_log_keywords]", "[sounds]"} {
		assert.Contains(t, out, section)
	}
	assert.Contains(t, out, "kind: git")
	assert.Contains(t, out, "make dev build: #devbuild")
}

func TestBuildOutcome_String(t *testing.T) {
	assert.Equal(t, "success", domain.BuildSuccess.String())
	assert.Equal(t, "failed", domain.BuildFailed.String())
	assert.Equal(t, "unexpected_error", domain.BuildUnexpectedError.String())
	assert.Equal(t, "unknown", domain.BuildOutcome(9).String())
}
