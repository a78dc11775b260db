package extract

import (
	"context"
	"errors"
	"fmt"
	"io/ioutil"
	"strings"
	"sync"
)

// fakeTool implements Tool by writing small marker files, recording every
// invocation in order. Failure injection is keyed by "<bam> <region>": a
// positive count fails that many Extract attempts before succeeding, a
// negative count fails every attempt.
type fakeTool struct {
	mu       sync.Mutex
	calls    []string
	failures map[string]int
}

func newFakeTool() *fakeTool {
	return &fakeTool{failures: map[string]int{}}
}

func (f *fakeTool) Extract(_ context.Context, bamPath, region, outPath string) error {
	key := bamPath + " " + region
	f.mu.Lock()
	f.calls = append(f.calls, fmt.Sprintf("view %s %s", bamPath, region))
	n := f.failures[key]
	if n > 0 {
		f.failures[key] = n - 1
	}
	f.mu.Unlock()
	if n != 0 {
		return errors.New("exit status 1")
	}
	return ioutil.WriteFile(outPath, []byte(region+"\n"), 0666)
}

func (f *fakeTool) Merge(_ context.Context, listPath, outPath string) error {
	f.mu.Lock()
	f.calls = append(f.calls, "merge "+outPath)
	f.mu.Unlock()
	entries, err := Manifest{Path: listPath}.Entries()
	if err != nil {
		return err
	}
	var merged []byte
	for _, e := range entries {
		data, err := ioutil.ReadFile(e)
		if err != nil {
			return err
		}
		merged = append(merged, data...)
	}
	return ioutil.WriteFile(outPath, merged, 0666)
}

func (f *fakeTool) Index(_ context.Context, bamPath string) error {
	f.mu.Lock()
	f.calls = append(f.calls, "index "+bamPath)
	f.mu.Unlock()
	return ioutil.WriteFile(bamPath+".bai", []byte("index\n"), 0666)
}

// snapshot returns a copy of the call log.
func (f *fakeTool) snapshot() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.calls...)
}

// viewCalls counts recorded Extract invocations, optionally restricted to
// those mentioning substr.
func (f *fakeTool) viewCalls(substr string) int {
	n := 0
	for _, c := range f.snapshot() {
		if strings.HasPrefix(c, "view ") && strings.Contains(c, substr) {
			n++
		}
	}
	return n
}
