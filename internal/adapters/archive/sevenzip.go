package archive

import (
	"context"
	"fmt"

	"go.trai.ch/revwatch/internal/core/ports"
	"go.trai.ch/zerr"
)

// SevenZipCompressor shells out to the 7-Zip command line tool.
type SevenZipCompressor struct {
	runner ports.CommandRunner
	exe    string
}

// NewSevenZipCompressor creates a compressor running exe through runner.
func NewSevenZipCompressor(runner ports.CommandRunner, exe string) *SevenZipCompressor {
	return &SevenZipCompressor{runner: runner, exe: exe}
}

// Compress runs `7z a -tzip <dst> <srcDir>`.
func (c *SevenZipCompressor) Compress(ctx context.Context, srcDir, dst string) error {
	res, err := c.runner.Run(ctx, ports.ProcessSpec{
		Name: c.exe,
		Args: []string{"a", "-tzip", dst, srcDir},
	})
	if err != nil {
		return zerr.Wrap(err, "failed to run 7-Zip")
	}
	if res.ExitCode != 0 {
		return zerr.With(zerr.New(fmt.Sprintf("7-Zip exited with code %d", res.ExitCode)), "output", res.Output)
	}
	return nil
}
