package extract

import (
	"bufio"
	"context"
	"io"

	"github.com/grailbio/base/compress"
	"github.com/grailbio/base/file"
	"github.com/pkg/errors"
)

// ReadList reads a newline-delimited list file and returns its non-empty
// lines in file order. The path may name any scheme supported by
// grailbio/base/file (e.g. s3://), and gzipped lists are decompressed
// transparently. Line contents are not validated.
func ReadList(ctx context.Context, path string) ([]string, error) {
	in, err := file.Open(ctx, path)
	if err != nil {
		return nil, errors.Wrapf(err, "open list %s", path)
	}
	defer in.Close(ctx)
	var r io.Reader = in.Reader(ctx)
	if u := compress.NewReaderPath(r, in.Name()); u != nil {
		r = u
	}
	var lines []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		if line := sc.Text(); line != "" {
			lines = append(lines, line)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, errors.Wrapf(err, "read list %s", path)
	}
	return lines, nil
}
