package export

import (
	"archive/zip"
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"
	"strings"
)

// WriteArchive writes files into a zip archive on w.
func WriteArchive(w io.Writer, files []File) error {
	zw := zip.NewWriter(w)

	for _, f := range files {
		name, err := cleanPath(f.Path)
		if err != nil {
			return err
		}
		fw, err := zw.CreateHeader(&zip.FileHeader{Name: name, Method: zip.Deflate})
		if err != nil {
			return fmt.Errorf("add %s to archive: %w", name, err)
		}
		if _, err := io.WriteString(fw, f.Content); err != nil {
			return fmt.Errorf("write %s to archive: %w", name, err)
		}
	}

	if err := zw.Close(); err != nil {
		return fmt.Errorf("close archive: %w", err)
	}
	return nil
}

// WriteDir writes files below dir, creating directories as needed.
func WriteDir(dir string, files []File) error {
	for _, f := range files {
		name, err := cleanPath(f.Path)
		if err != nil {
			return err
		}
		full := filepath.Join(dir, filepath.FromSlash(name))
		if err := os.MkdirAll(filepath.Dir(full), 0o755); err != nil {
			return fmt.Errorf("create directory for %s: %w", name, err)
		}
		if err := os.WriteFile(full, []byte(f.Content), 0o644); err != nil {
			return fmt.Errorf("write %s: %w", name, err)
		}
	}
	return nil
}

// cleanPath rejects absolute paths and paths that escape the package root.
func cleanPath(p string) (string, error) {
	clean := path.Clean(p)
	if clean == "." || path.IsAbs(clean) || clean == ".." || strings.HasPrefix(clean, "../") {
		return "", fmt.Errorf("invalid export path %q", p)
	}
	return clean, nil
}
