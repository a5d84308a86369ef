// File: pkg/consolidate/traversal.go
package consolidate

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"

	"go.uber.org/zap"
)

// ErrInvalidDirectory is returned when the source directory is missing or is
// not a directory.
var ErrInvalidDirectory = errors.New("not a valid directory")

// PathMatcher decides whether a path relative to the source root is excluded.
type PathMatcher interface {
	MatchesPath(path string, isDir bool) bool
}

// ValidateDirectory checks that dir exists and is a directory.
func ValidateDirectory(dir string) error {
	info, err := os.Stat(dir)
	if err != nil || !info.IsDir() {
		return fmt.Errorf("'%s' is %w", dir, ErrInvalidDirectory)
	}
	return nil
}

// Collect walks dir recursively and returns every file whose extension is in
// exts, sorted by path. A nil matcher excludes nothing.
func Collect(dir string, exts ExtensionSet, matcher PathMatcher, logger *zap.Logger) ([]FileEntry, error) {
	if err := ValidateDirectory(dir); err != nil {
		return nil, err
	}
	logger.Debug("Starting file collection",
		zap.String("directory", dir),
		zap.Strings("extensions", exts.Sorted()))

	var entries []FileEntry
	err := filepath.WalkDir(walkRoot(dir), func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			logger.Warn("Error accessing path during traversal", zap.String("path", path), zap.Error(err))
			return nil // Skip what cannot be read
		}

		relPath := relativeLabel(dir, path)
		if d.IsDir() {
			if relPath != "." && matcher != nil && matcher.MatchesPath(relPath, true) {
				logger.Debug("Skipping excluded directory", zap.String("directory", path))
				return filepath.SkipDir
			}
			return nil
		}

		if !isFileEntry(path, d) {
			return nil
		}
		if !exts.Contains(extensionOf(d.Name())) {
			return nil
		}
		if matcher != nil && matcher.MatchesPath(relPath, false) {
			logger.Debug("Skipping excluded file", zap.String("filePath", path))
			return nil
		}

		entries = append(entries, FileEntry{Path: path, RelPath: relPath})
		logger.Debug("Collected file", zap.String("filePath", path))
		return nil
	})
	if err != nil {
		logger.Error("Error during file traversal", zap.Error(err))
		return nil, fmt.Errorf("failed to walk %s: %w", dir, err)
	}

	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Path < entries[j].Path
	})

	logger.Debug("Completed file collection", zap.Int("files", len(entries)))
	return entries, nil
}

// walkRoot makes WalkDir descend into a root that is a symlink to a directory.
func walkRoot(dir string) string {
	info, err := os.Lstat(dir)
	if err == nil && info.Mode()&fs.ModeSymlink != 0 {
		return dir + string(filepath.Separator)
	}
	return dir
}

// isFileEntry reports whether a non-directory entry should be considered.
// Regular files count; so do symlinks unless they point at a directory or
// a special file. A dangling symlink counts and fails later as a read error.
func isFileEntry(path string, d fs.DirEntry) bool {
	if d.Type().IsRegular() {
		return true
	}
	if d.Type()&fs.ModeSymlink == 0 {
		return false
	}
	info, err := os.Stat(path)
	if err != nil {
		return true
	}
	return info.Mode().IsRegular()
}

// relativeLabel returns path relative to dir with '/' separators, falling
// back to path itself when no relative form exists.
func relativeLabel(dir, path string) string {
	rel, err := filepath.Rel(dir, path)
	if err != nil {
		return filepath.ToSlash(path)
	}
	return filepath.ToSlash(rel)
}
