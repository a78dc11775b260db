package extract

import (
	"io/ioutil"
	"os"
	"strings"

	"github.com/grailbio/base/errors"
)

// manifestName is the per-BAM ledger consulted by the merge step.
const manifestName = "bam.list"

// Manifest is the append-only ledger of extracted region files for one input
// BAM, one path per line. Append is the only mutation and entries are never
// removed during a run. A Manifest is owned by exactly one per-file task;
// concurrent mutation of the same manifest file is not supported.
type Manifest struct {
	Path string
}

// Append records path in the manifest, creating the file if needed. A path
// already present is left alone, so re-runs never duplicate entries.
func (m Manifest) Append(path string) error {
	entries, err := m.Entries()
	if err != nil && !os.IsNotExist(err) {
		return errors.E(err, "read manifest", m.Path)
	}
	for _, e := range entries {
		if e == path {
			return nil
		}
	}
	f, err := os.OpenFile(m.Path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
	if err != nil {
		return errors.E(err, "append manifest", m.Path)
	}
	if _, err = f.WriteString(path + "\n"); err != nil {
		f.Close() // nolint: errcheck
		return errors.E(err, "append manifest", m.Path)
	}
	return f.Close()
}

// Entries returns the recorded paths in file order. The error is
// os.IsNotExist-compatible when the manifest has not been created yet.
func (m Manifest) Entries() ([]string, error) {
	data, err := ioutil.ReadFile(m.Path)
	if err != nil {
		return nil, err
	}
	var entries []string
	for _, line := range strings.Split(string(data), "\n") {
		if line != "" {
			entries = append(entries, line)
		}
	}
	return entries, nil
}
