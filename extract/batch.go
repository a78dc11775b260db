package extract

import (
	"context"
	"runtime"

	"github.com/grailbio/base/errors"
	"github.com/grailbio/base/traverse"
	"github.com/hashicorp/go-multierror"
)

// ExtractBatch fans ExtractFile out over every BAM named in listPath, one
// task at a time per worker on a bounded worker group. The batch is
// best-effort, not transactional: one BAM's failure never cancels in-flight
// or queued siblings. Failures are logged to runLog (when non-nil) and
// aggregated into the returned error; nil means every task succeeded.
func ExtractBatch(ctx context.Context, opts Opts, listPath string, runLog *Log) error {
	bams, err := ReadList(ctx, listPath)
	if err != nil {
		return err
	}
	parallelism := opts.Parallelism
	if parallelism <= 0 {
		// Hardware parallelism, floor of 2.
		if parallelism = runtime.NumCPU(); parallelism < 2 {
			parallelism = 2
		}
	}
	if parallelism > len(bams) {
		parallelism = len(bams)
	}

	// Workers drain a shared queue and report into an indexed results slice;
	// there is no other shared mutable state between them.
	taskCh := make(chan int, len(bams))
	for i := range bams {
		taskCh <- i
	}
	close(taskCh)
	errs := make([]error, len(bams))
	_ = traverse.Each(parallelism, func(_ int) error {
		for i := range taskCh {
			errs[i] = ExtractFile(ctx, opts, bams[i])
		}
		return nil
	})

	var result *multierror.Error
	for i, err := range errs {
		if err == nil {
			continue
		}
		if runLog != nil {
			runLog.Printf("failed\t%s\t%v", bams[i], err)
		}
		result = multierror.Append(result, errors.E(err, bams[i]))
	}
	return result.ErrorOrNil()
}
