// Package fontaine shells out to pyfontaine for glyph-set coverage reports.
package fontaine

import (
	"context"
	"errors"
	"os"
	"os/exec"

	"github.com/fontcheck/fontcheck/internal/domain"
)

const defaultBinary = "pyfontaine"

// Runner implements domain.CoverageRunner over a pyfontaine subprocess.
type Runner struct {
	binary string
}

// New creates a Runner. The FONTAINE_BIN environment variable overrides the
// executable name.
func New() *Runner {
	binary := defaultBinary
	if env := os.Getenv("FONTAINE_BIN"); env != "" {
		binary = env
	}
	return &Runner{binary: binary}
}

// Run invokes `pyfontaine --missing --set <glyphSet> <fontPath>` and returns
// its combined output. A missing executable or an exceeded deadline maps to
// ErrCoverageToolUnavailable so callers degrade to WARNING; a nonzero exit
// is returned as-is with whatever output the tool produced.
func (r *Runner) Run(ctx context.Context, fontPath, glyphSet string) (string, error) {
	cmd := exec.CommandContext(ctx, r.binary, "--missing", "--set", glyphSet, fontPath)
	out, err := cmd.CombinedOutput()
	if err != nil {
		var execErr *exec.Error
		if errors.As(err, &execErr) {
			return "", domain.ErrCoverageToolUnavailable
		}
		if ctx.Err() != nil {
			return "", domain.ErrCoverageToolUnavailable
		}
		return string(out), err
	}
	return string(out), nil
}
