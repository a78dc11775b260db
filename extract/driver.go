package extract

import (
	"context"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/grailbio/base/errors"
)

// fileTask drives extract-then-merge for one input BAM. Each task exclusively
// owns its working subtree <workdir>/<prefix>/, its log, and its manifest;
// the batch coordinator never writes into a per-file subtree.
type fileTask struct {
	opts     *Opts
	bamPath  string
	prefix   string
	outdir   string
	log      *Log
	manifest Manifest
}

// ExtractFile runs the full pipeline for a single BAM: every region in
// opts.TargetsPath is extracted into <workdir>/<prefix>/subbam/ in list
// order, then the extracted pieces are merged and indexed as
// <workdir>/<prefix>/<prefix>.targets.bam.
func ExtractFile(ctx context.Context, opts Opts, bamPath string) error {
	t, err := newFileTask(opts, bamPath)
	if err != nil {
		return err
	}
	defer t.log.Close() // nolint: errcheck
	if err := t.run(ctx); err != nil {
		t.log.Printf("error\t%v", err)
		return err
	}
	return nil
}

func newFileTask(opts Opts, bamPath string) (*fileTask, error) {
	normalize(&opts)
	prefix := strings.TrimSuffix(filepath.Base(bamPath), ".bam")
	outdir := filepath.Join(opts.Workdir, prefix)
	if err := os.MkdirAll(outdir, 0777); err != nil {
		return nil, errors.E(err, "mkdir", outdir)
	}
	log, err := CreateLog(filepath.Join(outdir, prefix+".log"), nil)
	if err != nil {
		return nil, err
	}
	return &fileTask{
		opts:     &opts,
		bamPath:  bamPath,
		prefix:   prefix,
		outdir:   outdir,
		log:      log,
		manifest: Manifest{Path: filepath.Join(outdir, "subbam", manifestName)},
	}, nil
}

func (t *fileTask) run(ctx context.Context) error {
	regions, err := ReadList(ctx, t.opts.TargetsPath)
	if err != nil {
		return err
	}
	t.log.Printf("Extract:\t%s", t.prefix)
	for _, region := range regions {
		if err := t.extractRegion(ctx, region); err != nil {
			return err
		}
	}
	return t.merge(ctx)
}

// merge consolidates every manifest entry into the single indexed target
// BAM, honoring the same skip-unless-forced policy as region extraction.
// Merge and index failures are fatal for this BAM and are never retried.
func (t *fileTask) merge(ctx context.Context) error {
	start := time.Now()
	merged := filepath.Join(t.outdir, t.prefix+".targets.bam")
	skip := ""
	if !t.opts.Force && exists(merged) {
		skip = skipAnnotation
	} else {
		if err := t.opts.Tool.Merge(ctx, t.manifest.Path, merged); err != nil {
			return errors.E(err, "merge", t.bamPath)
		}
		if err := t.opts.Tool.Index(ctx, merged); err != nil {
			return errors.E(err, "index", merged)
		}
	}
	t.log.Printf("merged bam\t%s%s", elapsed(start), skip)
	return nil
}

// elapsed renders wall time since start for the timing logs, e.g.
// "1.234567(s)".
func elapsed(start time.Time) string {
	return strconv.FormatFloat(time.Since(start).Seconds(), 'f', 6, 64) + "(s)"
}

func normalize(opts *Opts) {
	if opts.Tool == nil {
		opts.Tool = Samtools("")
	}
	if opts.Retry == nil {
		opts.Retry = DefaultOpts.Retry
	}
	if opts.MaxTries <= 0 {
		opts.MaxTries = DefaultOpts.MaxTries
	}
}
