package fs

import (
	"io"
	"os"
)

// ReadFile reads the whole file in binary mode. The handle is closed before
// returning, so a following Rewrite never overlaps with it.
func ReadFile(path string) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return io.ReadAll(f)
}

// Rewrite truncates the file at path and writes content in its place.
// The file's existing permissions are kept; a missing file is created with
// 0666 less the umask.
func Rewrite(path string, content []byte) error {
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0666)
	if err != nil {
		return err
	}

	if _, err := f.Write(content); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
