package extract

import (
	"bytes"
	"context"
	"os/exec"
	"strings"

	"github.com/grailbio/base/errors"
)

// Tool runs the external alignment toolchain. Implementations must be safe
// for concurrent use; in batch mode every per-BAM task shares one Tool.
type Tool interface {
	// Extract writes the subset of bamPath overlapping region to outPath.
	// A non-nil error is retryable.
	Extract(ctx context.Context, bamPath, region, outPath string) error
	// Merge consolidates every path listed in listPath into outPath.
	Merge(ctx context.Context, listPath, outPath string) error
	// Index builds the random-access index for bamPath.
	Index(ctx context.Context, bamPath string) error
}

// Samtools returns a Tool backed by the samtools binary at path. An empty
// path uses "samtools" from $PATH. Commands are invoked with explicit
// argument vectors, never through a shell.
func Samtools(path string) Tool {
	if path == "" {
		path = "samtools"
	}
	return samtools{path: path}
}

type samtools struct {
	path string
}

func (s samtools) Extract(ctx context.Context, bamPath, region, outPath string) error {
	return s.run(ctx, "view", bamPath, region, "-o", outPath, "-O", "BAM")
}

func (s samtools) Merge(ctx context.Context, listPath, outPath string) error {
	// -c and -p collapse identical @RG and @PG header lines across the
	// inputs; -f allows forced reruns to overwrite an existing merge.
	return s.run(ctx, "merge", "-f", "-c", "-p", "-b", listPath, outPath)
}

func (s samtools) Index(ctx context.Context, bamPath string) error {
	return s.run(ctx, "index", bamPath)
}

func (s samtools) run(ctx context.Context, args ...string) error {
	cmd := exec.CommandContext(ctx, s.path, args...)
	var stderr bytes.Buffer
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		return errors.E(err, s.path+" "+strings.Join(args, " "), strings.TrimSpace(stderr.String()))
	}
	return nil
}
