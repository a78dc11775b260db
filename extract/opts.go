package extract

import (
	"time"

	"github.com/grailbio/base/retry"
)

// Opts configures a run.
type Opts struct {
	// TargetsPath names the newline-delimited list of regions
	// (e.g. "chr1:1-100") to extract from every input BAM. Region strings are
	// passed to the tool verbatim; malformed regions surface as tool errors.
	TargetsPath string
	// Workdir is the output root directory.
	Workdir string
	// Force re-runs extraction and merge even when their outputs already
	// exist on disk.
	Force bool
	// Parallelism caps the number of simultaneous per-BAM tasks in batch
	// mode; 0 = runtime.NumCPU().
	Parallelism int
	// Retry is the backoff schedule between failed extraction attempts.
	Retry retry.Policy
	// MaxTries bounds extraction attempts per region, including the first.
	MaxTries int
	// Tool runs the external toolchain. nil means samtools from $PATH.
	Tool Tool
}

var DefaultOpts = Opts{
	Force:       false,
	Parallelism: 0,
	Retry:       retry.Backoff(500*time.Millisecond, 30*time.Second, 2),
	MaxTries:    5,
}
