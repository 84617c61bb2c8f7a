// Package output writes rendered documents to stdout or to disk.
// File writes go through a temporary file in the target directory that is
// renamed into place, so --replace never leaves a half-written input behind.
package output

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// StdoutName is the destination name reported for stdout writes.
const StdoutName = "stdout"

// Writer writes rendered output.
type Writer struct {
	stdout io.Writer
}

// New creates a Writer. Output without a destination goes to stdout.
func New(stdout io.Writer) *Writer {
	return &Writer{stdout: stdout}
}

// Write writes data to dest. An empty dest or "-" means stdout. It returns
// the name of what was written.
func (w *Writer) Write(dest string, data []byte) (string, error) {
	if dest == "" || dest == "-" {
		if _, err := w.stdout.Write(data); err != nil {
			return "", fmt.Errorf("writing to stdout: %w", err)
		}
		return StdoutName, nil
	}

	dir := filepath.Dir(dest)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("creating directory %s: %w", dir, err)
	}
	if err := writeFileAtomic(dest, data); err != nil {
		return "", fmt.Errorf("writing file %s: %w", dest, err)
	}
	return dest, nil
}

// Target resolves the destination for a run. When dest is an existing
// directory, or ends in a path separator, the file is named after the input
// with the renderer's extension (e.g. out/ + page.html → out/page.json).
// Otherwise dest is returned unchanged.
func (w *Writer) Target(dest, input, ext string) string {
	if dest == "" || dest == "-" {
		return dest
	}
	isDir := strings.HasSuffix(dest, "/") || strings.HasSuffix(dest, string(filepath.Separator))
	if info, err := os.Stat(dest); err == nil && info.IsDir() {
		isDir = true
	}
	if !isDir {
		return dest
	}
	return filepath.Join(dest, baseName(input)+ext)
}

// baseName strips directories and extension from an input name. Stdin and
// bare URL paths become "index".
func baseName(input string) string {
	name := strings.TrimSuffix(filepath.Base(filepath.FromSlash(input)), filepath.Ext(input))
	switch name {
	case "", ".", "/", "-":
		return "index"
	}
	if name == string(filepath.Separator) {
		return "index"
	}
	return name
}

// writeFileAtomic keeps the mode of an existing target.
func writeFileAtomic(path string, data []byte) error {
	mode := os.FileMode(0644)
	if info, err := os.Stat(path); err == nil {
		mode = info.Mode().Perm()
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Chmod(mode); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), path)
}
