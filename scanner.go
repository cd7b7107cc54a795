package brandgen

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	ignore "github.com/sabhiram/go-gitignore"
)

// DefaultIncludes are the patterns that identify brand files below SourceDir.
var DefaultIncludes = []string{
	"**/*.brand.yaml",
	"**/*.brand.yml",
	"**/*.brand.json",
}

// ScanStats tracks brand file discovery
type ScanStats struct {
	FilesDiscovered int // Files matched by the include patterns
	FilesScanned    int // Files kept after filtering
	FilesSkipped    int // Files dropped by .gitignore or vendored directories
}

// skippedDirs never contain brand files of the project itself.
var skippedDirs = map[string]bool{
	"node_modules": true,
	".git":         true,
}

// loadGitIgnore compiles sourceDir/.gitignore. A missing file is not an
// error; nothing is ignored then.
func loadGitIgnore(sourceDir string) *ignore.GitIgnore {
	gi, err := ignore.CompileIgnoreFile(filepath.Join(sourceDir, ".gitignore"))
	if err != nil {
		return nil
	}
	return gi
}

// shouldSkipFile reports whether rel (relative to the source dir) is
// excluded from discovery.
//
// Two layers:
// 1. Directory check: anything under node_modules or .git
// 2. Gitignore check: patterns from the source dir's .gitignore
func shouldSkipFile(rel string, gi *ignore.GitIgnore) bool {
	for _, part := range strings.Split(filepath.ToSlash(rel), "/") {
		if skippedDirs[part] {
			return true
		}
	}
	return gi != nil && gi.MatchesPath(filepath.ToSlash(rel))
}

// FindBrandFiles expands includes below sourceDir and returns the matching
// brand files in sorted order.
func FindBrandFiles(sourceDir string, includes []string) ([]string, ScanStats, error) {
	var stats ScanStats
	if len(includes) == 0 {
		includes = DefaultIncludes
	}

	info, err := os.Stat(sourceDir)
	if err != nil {
		return nil, stats, fmt.Errorf("source dir: %w", err)
	}
	if !info.IsDir() {
		return nil, stats, fmt.Errorf("source dir %s is not a directory", sourceDir)
	}

	gi := loadGitIgnore(sourceDir)
	seen := make(map[string]bool)
	var files []string

	for _, pattern := range includes {
		// Use doublestar for ** glob support
		matches, err := doublestar.FilepathGlob(filepath.Join(sourceDir, pattern))
		if err != nil {
			return nil, stats, fmt.Errorf("glob pattern %q: %w", pattern, err)
		}

		for _, match := range matches {
			if seen[match] {
				continue
			}
			seen[match] = true

			fi, err := os.Stat(match)
			if err != nil || fi.IsDir() {
				continue
			}
			stats.FilesDiscovered++

			rel, err := filepath.Rel(sourceDir, match)
			if err != nil {
				rel = match
			}
			if shouldSkipFile(rel, gi) {
				stats.FilesSkipped++
				continue
			}
			files = append(files, match)
			stats.FilesScanned++
		}
	}

	sort.Strings(files)
	return files, stats, nil
}

// GetRelativePath returns a relative path from the current working directory
func GetRelativePath(absPath string) string {
	cwd, err := os.Getwd()
	if err != nil {
		return absPath
	}

	rel, err := filepath.Rel(cwd, absPath)
	if err != nil {
		return absPath
	}

	return rel
}
