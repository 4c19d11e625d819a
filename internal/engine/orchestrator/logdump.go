package orchestrator

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"

	"go.trai.ch/revwatch/internal/core/domain"
	"go.trai.ch/zerr"
)

// RevisionLog is the raw log message of one revision.
type RevisionLog struct {
	Revision int
	Text     string
}

// FormatLogDump renders logs in ascending revision order, each followed by a blank line.
func FormatLogDump(logs []RevisionLog) []byte {
	var buf bytes.Buffer
	for _, l := range logs {
		buf.WriteString(l.Text)
		buf.WriteString("\n\n")
	}
	return buf.Bytes()
}

// WriteLogDump writes the collected logs into dir and returns the file path.
func WriteLogDump(dir string, logs []RevisionLog) (string, error) {
	path := filepath.Join(dir, domain.LogDumpFileName)
	if err := os.WriteFile(path, FormatLogDump(logs), domain.FilePerm); err != nil {
		return "", zerr.With(errors.Join(domain.ErrLogDumpFailed, err), "path", path)
	}
	return path, nil
}
