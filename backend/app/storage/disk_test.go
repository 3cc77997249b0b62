package storage

import (
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPutGet(t *testing.T) {
	t.Parallel()

	d, err := NewDisk(t.TempDir())
	require.NoError(t, err)

	path, err := d.Put("r.txt", strings.NewReader("hello"))
	require.NoError(t, err)

	rc, err := d.Get(path)
	require.NoError(t, err)
	defer rc.Close()
	b, err := io.ReadAll(rc)
	require.NoError(t, err)
	require.Equal(t, "hello", string(b))
}

func TestPut_AlreadyExists(t *testing.T) {
	t.Parallel()

	d, err := NewDisk(t.TempDir())
	require.NoError(t, err)

	_, err = d.Put("r.txt", strings.NewReader("one"))
	require.NoError(t, err)
	_, err = d.Put("r.txt", strings.NewReader("two"))
	require.ErrorIs(t, err, ErrAlreadyExists)
}

func TestGet_NotFound(t *testing.T) {
	t.Parallel()

	d, err := NewDisk(t.TempDir())
	require.NoError(t, err)

	_, err = d.Get(d.Root + "/missing.bin")
	require.ErrorIs(t, err, ErrNotFound)
}

func TestRemove(t *testing.T) {
	t.Parallel()

	d, err := NewDisk(t.TempDir())
	require.NoError(t, err)

	path, err := d.Put("r.txt", strings.NewReader("one"))
	require.NoError(t, err)
	require.NoError(t, d.Remove(path))

	// name is free again after removal
	_, err = d.Put("r.txt", strings.NewReader("two"))
	require.NoError(t, err)

	// removing twice is fine
	require.NoError(t, d.Remove(d.Root+"/never-existed"))
}

// Put ignores directory components in the name, uploads cannot escape the
// storage root.
func TestPut_StripsPath(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	d, err := NewDisk(root)
	require.NoError(t, err)

	path, err := d.Put("../../etc/evil.txt", strings.NewReader("x"))
	require.NoError(t, err)
	require.Equal(t, root+"/evil.txt", path)
}
