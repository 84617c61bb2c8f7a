package output

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteStdout(t *testing.T) {
	for _, dest := range []string{"", "-"} {
		var buf bytes.Buffer
		name, err := New(&buf).Write(dest, []byte("data"))

		require.NoError(t, err)
		assert.Equal(t, StdoutName, name)
		assert.Equal(t, "data", buf.String())
	}
}

func TestWriteFileCreatesDirectories(t *testing.T) {
	dest := filepath.Join(t.TempDir(), "a", "b", "out.html")
	var buf bytes.Buffer

	name, err := New(&buf).Write(dest, []byte("<p>x</p>"))

	require.NoError(t, err)
	assert.Equal(t, dest, name)
	assert.Empty(t, buf.String())
	data, err := os.ReadFile(dest)
	require.NoError(t, err)
	assert.Equal(t, "<p>x</p>", string(data))
}

func TestWriteFileReplacesKeepingMode(t *testing.T) {
	dir := t.TempDir()
	dest := filepath.Join(dir, "page.html")
	require.NoError(t, os.WriteFile(dest, []byte("old content that is longer"), 0600))

	_, err := New(nil).Write(dest, []byte("new"))
	require.NoError(t, err)

	data, err := os.ReadFile(dest)
	require.NoError(t, err)
	assert.Equal(t, "new", string(data))

	info, err := os.Stat(dest)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0600), info.Mode().Perm())

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1, "no temporary files left behind")
}

func TestTarget(t *testing.T) {
	dir := t.TempDir()
	w := New(nil)

	tests := []struct {
		name, dest, input, want string
	}{
		{"stdout", "", "page.html", ""},
		{"dash", "-", "page.html", "-"},
		{"file", filepath.Join(dir, "out.html"), "page.html", filepath.Join(dir, "out.html")},
		{"existing dir", dir, "in/page.html", filepath.Join(dir, "page.json")},
		{"trailing slash", filepath.Join(dir, "new") + "/", "notes.md", filepath.Join(dir, "new", "notes.json")},
		{"stdin input", dir, "-", filepath.Join(dir, "index.json")},
		{"url path", dir, "/docs/", filepath.Join(dir, "docs.json")},
		{"url root", dir, "/", filepath.Join(dir, "index.json")},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, w.Target(tt.dest, tt.input, ".json"))
		})
	}
}
