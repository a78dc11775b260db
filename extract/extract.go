// Package extract orchestrates bulk extraction of genomic regions from BAM
// files via an external samtools binary, consolidating each input's extracted
// regions into a single merged, indexed BAM. It is a batch orchestrator over
// the toolchain, not a BAM codec: inputs and outputs are opaque files.
package extract

import (
	"context"
	"os"
	"path/filepath"
	"time"

	"github.com/grailbio/base/errors"
	"github.com/grailbio/base/retry"
)

// skipAnnotation is appended to a timing log line when existing output made
// the step a no-op.
const skipAnnotation = " SKIP: same file found"

// extractRegion produces the region-scoped subset of t.bamPath under
// subbam/, retrying failed tool invocations per t.opts. Output that already
// exists is skipped unless Force is set; that skip is the pipeline's
// idempotent re-run guarantee. Newly produced outputs are recorded in the
// task manifest.
func (t *fileTask) extractRegion(ctx context.Context, region string) error {
	start := time.Now()
	subdir := filepath.Join(t.outdir, "subbam")
	if err := os.MkdirAll(subdir, 0777); err != nil {
		return errors.E(err, "mkdir", subdir)
	}
	// The output path is a pure function of (region, prefix), which is what
	// makes skip-on-existing sound.
	outPath := filepath.Join(subdir, region+"."+t.prefix+".bam")
	skip := ""
	if !t.opts.Force && exists(outPath) {
		skip = skipAnnotation
	} else {
		if err := t.extractWithRetry(ctx, region, outPath); err != nil {
			return err
		}
		if err := t.manifest.Append(outPath); err != nil {
			return err
		}
	}
	t.log.Printf("%s\t%s%s", region, elapsed(start), skip)
	return nil
}

// extractWithRetry invokes the tool up to t.opts.MaxTries times, waiting out
// t.opts.Retry between attempts. Callers see only success or the final
// failure.
func (t *fileTask) extractWithRetry(ctx context.Context, region, outPath string) error {
	var err error
	for tries := 0; ; tries++ {
		if err = t.opts.Tool.Extract(ctx, t.bamPath, region, outPath); err == nil {
			return nil
		}
		if tries+1 >= t.opts.MaxTries {
			break
		}
		if werr := retry.Wait(ctx, t.opts.Retry, tries); werr != nil {
			break
		}
	}
	return errors.E(err, "extract", region, t.bamPath)
}

func exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
