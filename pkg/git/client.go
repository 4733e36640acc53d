// Package git identifies the running reviewer build from its git checkout.
package git

import (
	"context"
	"fmt"
	"log/slog"
	"os/exec"
	"strings"
)

// Client runs git commands in a working directory.
type Client struct {
	WorkDir string
	Logger  *slog.Logger
}

// NewClient creates a new git client for the given working directory.
func NewClient(workDir string, logger *slog.Logger) *Client {
	return &Client{
		WorkDir: workDir,
		Logger:  logger,
	}
}

// IsInstalled reports whether a git binary is on PATH.
func IsInstalled() bool {
	_, err := exec.LookPath("git")
	return err == nil
}

// Run executes a raw git command in the working directory and returns its
// trimmed output. The process lives only for the duration of the call.
func (c *Client) Run(ctx context.Context, args ...string) (string, error) {
	if c.Logger != nil {
		c.Logger.Debug("executing git", "args", args, "dir", c.WorkDir)
	}

	cmd := exec.CommandContext(ctx, "git", args...)
	cmd.Dir = c.WorkDir

	out, err := cmd.CombinedOutput()
	output := string(out)

	if err != nil {
		return output, fmt.Errorf("git %s failed: %w\nOutput: %s", args[0], err, output)
	}

	return strings.TrimSpace(output), nil
}

// Version returns `git describe --always` for the working directory, which
// names the revision the reviewer was built from. It implements
// core.VersionProvider.
func (c *Client) Version(ctx context.Context) (string, error) {
	label, err := c.Run(ctx, "describe", "--always")
	if err != nil {
		return "", err
	}
	if label == "" {
		return "", fmt.Errorf("git describe returned an empty revision in %s", c.WorkDir)
	}
	return label, nil
}
