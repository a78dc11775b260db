package extract

import (
	"fmt"
	"io"
	"os"
	"sync"
	"time"
)

// A Log writes timestamped lines to one destination file, serializing
// concurrent writers. Each Log is an explicit handle owned by whoever created
// it: the run wrapper owns <workdir>/extract.log and each per-file task owns
// its own <prefix>.log, so two tasks never share a destination except through
// the run log's internal lock.
type Log struct {
	mu   sync.Mutex
	f    *os.File
	echo io.Writer
}

// CreateLog opens a Log at path, truncating any previous run's log. When echo
// is non-nil every message is also copied there without the timestamp (the
// run log echoes to stdout).
func CreateLog(path string, echo io.Writer) (*Log, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, err
	}
	return &Log{f: f, echo: echo}, nil
}

// Printf writes one "<RFC3339 timestamp> <message>" line.
func (l *Log) Printf(format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintf(l.f, "%s %s\n", time.Now().Format(time.RFC3339), msg)
	if l.echo != nil {
		fmt.Fprintln(l.echo, msg)
	}
}

func (l *Log) Close() error {
	return l.f.Close()
}
