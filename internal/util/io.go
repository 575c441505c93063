package util

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// EnsureDir creates path and any missing parents.
func EnsureDir(path string) error {
	return os.MkdirAll(path, 0755)
}

// ExpandHome expands a leading ~/ in a path.
func ExpandHome(path string) string {
	if !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, path[2:])
}

// CopyFile copies src to dst, creating dst's directory as needed.
func CopyFile(src, dst string) error {
	if err := EnsureDir(filepath.Dir(dst)); err != nil {
		return err
	}
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()
	out, err := os.Create(dst)
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, in); err != nil {
		_ = out.Close()
		return err
	}
	return out.Close()
}

// WriteFileAtomic writes data to a temp file next to path and renames it
// into place, so readers never see a partial file. Returns the sha256 of
// what was written.
func WriteFileAtomic(path string, data []byte, perm os.FileMode) (string, error) {
	if err := EnsureDir(filepath.Dir(path)); err != nil {
		return "", fmt.Errorf("create dir: %w", err)
	}

	tmpPath := path + ".tmp"
	if err := os.WriteFile(tmpPath, data, perm); err != nil {
		_ = os.Remove(tmpPath)
		return "", fmt.Errorf("write temp file: %w", err)
	}

	sum, err := SHA256File(tmpPath)
	if err != nil {
		_ = os.Remove(tmpPath)
		return "", err
	}
	want, _ := SHA256Reader(bytes.NewReader(data))
	if sum != want {
		_ = os.Remove(tmpPath)
		return "", fmt.Errorf("checksum mismatch writing %s", path)
	}

	if err := os.Rename(tmpPath, path); err != nil {
		_ = os.Remove(tmpPath)
		return "", err
	}
	return sum, nil
}
