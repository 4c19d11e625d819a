package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeProject(t *testing.T, dir string) string {
	t.Helper()
	project := filepath.Join(dir, "MyGame")
	require.NoError(t, os.MkdirAll(project, 0o750))
	require.NoError(t, os.WriteFile(filepath.Join(project, "MyGame.uproject"), []byte("{}"), 0o600))

	uat := filepath.Join(dir, "RunUAT.sh")
	require.NoError(t, os.WriteFile(uat, []byte("#!/bin/sh\n"), 0o600))

	configPath := filepath.Join(dir, "revwatch.yaml")
	content := "project:\n  path: ./MyGame\n" +
		"vcs:\n  kind: git\n" +
		"unreal:\n  uat_exe_path: ./RunUAT.sh\n"
	require.NoError(t, os.WriteFile(configPath, []byte(content), 0o600))
	return configPath
}

func TestRun(t *testing.T) {
	tests := []struct {
		name         string
		args         func(dir string) []string
		expectedExit int
	}{
		{
			name:         "version",
			args:         func(string) []string { return []string{"version"} },
			expectedExit: 0,
		},
		{
			name: "config with valid file",
			args: func(dir string) []string {
				return []string{"config", "--config", writeProject(t, dir)}
			},
			expectedExit: 0,
		},
		{
			name: "config with missing file",
			args: func(dir string) []string {
				return []string{"config", "-c", filepath.Join(dir, "missing.yaml")}
			},
			expectedExit: 1,
		},
		{
			name:         "unknown flag",
			args:         func(string) []string { return []string{"--no-such-flag"} },
			expectedExit: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			t.Chdir(dir)

			exitCode := run(tt.args(dir))
			assert.Equal(t, tt.expectedExit, exitCode)
		})
	}
}

func TestRun_LoadsEnvFile(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	configPath := writeProject(t, dir)

	t.Setenv("REVWATCH_CONFIG", "")
	require.NoError(t, os.Unsetenv("REVWATCH_CONFIG"))
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("REVWATCH_CONFIG="+configPath+"\n"), 0o600))

	assert.Equal(t, 0, run([]string{"config"}))
	assert.Equal(t, configPath, os.Getenv("REVWATCH_CONFIG"))
}
