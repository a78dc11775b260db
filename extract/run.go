package extract

import (
	"context"
	"io/ioutil"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/grailbio/base/errors"
)

// runLogName is the top-level log written under the working directory.
const runLogName = "extract.log"

// Run bootstraps and times a whole run. Exactly one of bamPath and
// bamListPath must be non-empty; the caller validates that before getting
// here. The working directory is resolved to an absolute path and created if
// needed, and the run log is written to <workdir>/extract.log as well as
// stdout.
func Run(ctx context.Context, opts Opts, bamPath, bamListPath string) error {
	wkdir, err := filepath.Abs(opts.Workdir)
	if err != nil {
		return errors.E(err, "resolve workdir", opts.Workdir)
	}
	opts.Workdir = wkdir
	if err := os.MkdirAll(wkdir, 0777); err != nil {
		return errors.E(err, "mkdir", wkdir)
	}
	runLog, err := CreateLog(filepath.Join(wkdir, runLogName), os.Stdout)
	if err != nil {
		return err
	}
	defer runLog.Close() // nolint: errcheck

	execDir, err := os.Getwd()
	if err != nil {
		return err
	}
	runLog.Printf("Preparing processes ......\n Current directory: %s", execDir)
	// samtools view drops transient .bam.bai files in the process working
	// directory when reading remote inputs; sweep them before and after the
	// run. They are unrelated to the pipeline's own outputs.
	purge(execDir, ".bam.bai")
	defer purge(execDir, ".bam.bai")

	start := time.Now()
	runLog.Printf("Started ......")
	if bamListPath != "" {
		err = ExtractBatch(ctx, opts, bamListPath, runLog)
	} else {
		err = ExtractFile(ctx, opts, bamPath)
	}
	if err != nil {
		runLog.Printf("error\t%v", err)
		return err
	}
	runLog.Printf("Completed\n Output directory %s\nTotal run time\t%s", wkdir, elapsed(start))
	return nil
}

// purge removes regular files under dir whose names end in suffix. Removal
// errors are ignored.
func purge(dir, suffix string) {
	fis, err := ioutil.ReadDir(dir)
	if err != nil {
		return
	}
	for _, fi := range fis {
		if !fi.IsDir() && strings.HasSuffix(fi.Name(), suffix) {
			os.Remove(filepath.Join(dir, fi.Name())) // nolint: errcheck
		}
	}
}
