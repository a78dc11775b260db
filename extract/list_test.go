package extract

import (
	"context"
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/grailbio/testutil"
	"github.com/grailbio/testutil/assert"
	"github.com/klauspost/compress/gzip"
	"github.com/stretchr/testify/require"
)

func TestReadList(t *testing.T) {
	tempDir, cleanup := testutil.TempDir(t, "", "")
	defer cleanup()

	path := filepath.Join(tempDir, "targets.list")
	require.NoError(t, ioutil.WriteFile(path, []byte("chr1:1-100\n\nchr2:5-10\n"), 0666))
	lines, err := ReadList(context.Background(), path)
	require.NoError(t, err)
	assert.EQ(t, lines, []string{"chr1:1-100", "chr2:5-10"})
}

func TestReadListGzip(t *testing.T) {
	tempDir, cleanup := testutil.TempDir(t, "", "")
	defer cleanup()

	path := filepath.Join(tempDir, "targets.list.gz")
	f, err := os.Create(path)
	require.NoError(t, err)
	gz := gzip.NewWriter(f)
	_, err = gz.Write([]byte("chr1:1-100\nchr1:200-300\n"))
	require.NoError(t, err)
	require.NoError(t, gz.Close())
	require.NoError(t, f.Close())

	lines, err := ReadList(context.Background(), path)
	require.NoError(t, err)
	assert.EQ(t, lines, []string{"chr1:1-100", "chr1:200-300"})
}

func TestReadListMissing(t *testing.T) {
	tempDir, cleanup := testutil.TempDir(t, "", "")
	defer cleanup()

	_, err := ReadList(context.Background(), filepath.Join(tempDir, "no-such.list"))
	require.Error(t, err)
}
