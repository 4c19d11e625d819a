// Package svn drives a Subversion working copy through the svn command line client.
package svn

import (
	"context"
	"errors"
	"strconv"
	"strings"

	"go.trai.ch/revwatch/internal/core/domain"
	"go.trai.ch/revwatch/internal/core/ports"
	"go.trai.ch/zerr"
)

// Client implements ports.VersionControl for one working copy.
type Client struct {
	runner ports.CommandRunner
	exe    string
	path   string
}

var _ ports.VersionControl = (*Client)(nil)

// NewClient creates a Client running exe against the working copy at path.
func NewClient(runner ports.CommandRunner, exe, path string) *Client {
	return &Client{runner: runner, exe: exe, path: path}
}

// Revision returns the revision reported by `svn info --show-item revision`.
func (c *Client) Revision(ctx context.Context) (int, error) {
	res, err := c.run(ctx, "info", "--show-item", "revision", c.path)
	if err != nil {
		return 0, queryError(err, res)
	}
	if res.ExitCode != 0 {
		return 0, queryError(zerr.New("svn info exited with non-zero code"), res)
	}

	rev, err := strconv.Atoi(strings.TrimSpace(res.Output))
	if err != nil {
		return 0, queryError(zerr.Wrap(err, "unparseable revision"), res)
	}
	return rev, nil
}

// Update runs `svn update` and returns the revisions before and after it.
func (c *Client) Update(ctx context.Context) (int, int, error) {
	before, err := c.Revision(ctx)
	if err != nil {
		return 0, 0, err
	}

	res, err := c.run(ctx, "update", c.path)
	if err == nil && res.ExitCode != 0 {
		err = zerr.New("svn update exited with non-zero code")
	}
	if err != nil {
		err = errors.Join(domain.ErrVcsUpdateFailed, err)
		err = zerr.With(err, "exit_code", res.ExitCode)
		return before, before, zerr.With(err, "output", res.Output)
	}

	after, err := c.Revision(ctx)
	if err != nil {
		return before, before, err
	}
	return before, after, nil
}

// Log returns the output of `svn log --revision <revision>`, or empty text on failure.
func (c *Client) Log(ctx context.Context, revision int) string {
	res, err := c.run(ctx, "log", "--revision", strconv.Itoa(revision), c.path)
	if err != nil || res.ExitCode != 0 {
		return ""
	}
	return res.Output
}

// Cleanup removes unversioned and ignored files, vacuums pristines and includes externals.
func (c *Client) Cleanup(ctx context.Context) bool {
	res, err := c.run(ctx,
		"cleanup",
		"--remove-unversioned",
		"--remove-ignored",
		"--vacuum-pristines",
		"--include-externals",
		c.path,
	)
	return err == nil && res.ExitCode == 0
}

func (c *Client) run(ctx context.Context, args ...string) (ports.CommandResult, error) {
	return c.runner.Run(ctx, ports.ProcessSpec{
		Name: c.exe,
		Args: args,
		Dir:  c.path,
	})
}

func queryError(err error, res ports.CommandResult) error {
	err = errors.Join(domain.ErrVcsQueryFailed, err)
	return zerr.With(err, "output", res.Output)
}
