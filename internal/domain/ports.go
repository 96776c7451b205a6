package domain

import (
	"context"
	"errors"
	"time"

	"github.com/fontcheck/fontcheck/internal/domain/font"
	"github.com/fontcheck/fontcheck/internal/domain/metadata"
)

// FontParser loads and persists parsed font table models. Parsing the binary
// tables themselves is the external parser's responsibility; the core only
// consumes the table object model and writes back through it for autofixes.
type FontParser interface {
	// Discover lists the logical font file names of a family folder.
	Discover(familyDir string) ([]string, error)
	Parse(familyDir, filename string) (*font.Font, error)
	Save(familyDir, filename string, f *font.Font) error
	// Path resolves the on-disk location of a discovered font file, for
	// handing to external tools.
	Path(familyDir, filename string) string
}

// MetadataStore loads and persists the family metadata description.
// Save is invoked only by autofix paths.
type MetadataStore interface {
	Load(familyDir string) (*metadata.Family, error)
	Save(familyDir string, fam *metadata.Family) error
}

// ErrCoverageToolUnavailable marks a coverage-tool invocation that could not
// run at all (missing executable, timeout). Checks degrade to WARNING on it.
var ErrCoverageToolUnavailable = errors.New("coverage tool unavailable")

// CoverageRunner invokes the external glyph-coverage tool for one font file
// and glyph set, returning the tool's combined output.
type CoverageRunner interface {
	Run(ctx context.Context, fontPath, glyphSet string) (string, error)
}

// WebDirectory answers the two advisory remote lookups. Both are fallible
// external services; callers degrade to WARNING on any error.
type WebDirectory interface {
	// FamilyListed reports whether the family is listed in the remote font
	// directory, returning the queried URL.
	FamilyListed(ctx context.Context, familyName string) (url string, listed bool, err error)
	// DesignerProfiles fetches the known designer names from the remote
	// profiles CSV (first column).
	DesignerProfiles(ctx context.Context) ([]string, error)
}

// GitInfo resolves version-control facts about the family folder.
type GitInfo interface {
	IsGitRepo(path string) bool
	CommitHash(path string) (string, error)
}

// RunEntry is one persisted run summary.
type RunEntry struct {
	Timestamp  time.Time `json:"timestamp"`
	CommitHash string    `json:"commit_hash,omitempty"`
	Summary    Summary   `json:"summary"`
}

// RunHistory persists run summaries per family folder.
type RunHistory interface {
	Save(familyDir string, entry RunEntry) error
	Load(familyDir string) ([]RunEntry, error)
}
