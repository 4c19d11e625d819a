package orchestrator_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/revwatch/internal/core/domain"
	"go.trai.ch/revwatch/internal/engine/orchestrator"
)

var sampleLogs = []orchestrator.RevisionLog{
	{Revision: 101, Text: "r101 | alice | Fix spawn volume"},
	{Revision: 102, Text: "r102 | dave | Tweak lighting #devbuild\nAlso bump texture budget"},
	{Revision: 103, Text: "r103 | carol | Add main menu"},
}

func TestFormatLogDump(t *testing.T) {
	g := goldie.New(t)
	g.Assert(t, "vcs_logs", orchestrator.FormatLogDump(sampleLogs))
}

func TestFormatLogDump_Empty(t *testing.T) {
	assert.Empty(t, orchestrator.FormatLogDump(nil))
}

func TestWriteLogDump(t *testing.T) {
	dir := t.TempDir()

	path, err := orchestrator.WriteLogDump(dir, sampleLogs)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, domain.LogDumpFileName), path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, orchestrator.FormatLogDump(sampleLogs), data)
}

func TestWriteLogDump_MissingDir(t *testing.T) {
	_, err := orchestrator.WriteLogDump(filepath.Join(t.TempDir(), "missing"), sampleLogs)
	require.ErrorIs(t, err, domain.ErrLogDumpFailed)
}
