package concat

import (
	"io/fs"
	"path/filepath"
	"strings"

	"go.uber.org/zap"
)

// ExtensionSet is the set of recognized file extensions, stored
// lowercased with a leading dot.
type ExtensionSet map[string]bool

// NewExtensionSet normalizes raw extension entries. An empty input
// yields the default set.
func NewExtensionSet(extensions []string) ExtensionSet {
	if len(extensions) == 0 {
		extensions = DefaultExtensions
	}
	set := make(ExtensionSet, len(extensions))
	for _, ext := range extensions {
		ext = strings.ToLower(strings.TrimSpace(ext))
		if ext == "" {
			continue
		}
		if !strings.HasPrefix(ext, ".") {
			ext = "." + ext
		}
		set[ext] = true
	}
	return set
}

// Contains reports whether the path's extension is recognized.
func (s ExtensionSet) Contains(path string) bool {
	return s[strings.ToLower(filepath.Ext(path))]
}

// CollectFiles walks the tree under rootDir and returns, in traversal
// order, every file whose extension is recognized and whose path clears
// the ignore set. Ignored directories are pruned without descending.
// An unreadable root is an error; unreadable entries below it are
// logged and skipped.
func CollectFiles(rootDir string, ignores *IgnoreSet, extensions ExtensionSet, logger *zap.Logger) ([]string, error) {
	var files []string

	err := filepath.WalkDir(rootDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if path == rootDir {
				return err
			}
			logger.Warn("Error accessing path during traversal", zap.String("path", path), zap.Error(err))
			return nil
		}

		relPath, relErr := filepath.Rel(rootDir, path)
		if relErr != nil {
			logger.Warn("Failed to compute relative path", zap.String("path", path), zap.Error(relErr))
			return nil
		}

		if d.IsDir() {
			if relPath != "." && ignores.MatchesPath(relPath) {
				logger.Debug("Skipping ignored directory", zap.String("directory", path))
				return filepath.SkipDir
			}
			return nil
		}

		if ignores.MatchesPath(relPath) {
			logger.Debug("Skipping ignored file", zap.String("file", path))
			return nil
		}
		if !extensions.Contains(path) {
			return nil
		}

		files = append(files, path)
		return nil
	})
	if err != nil {
		return nil, err
	}

	logger.Debug("Completed file collection", zap.String("rootDir", rootDir), zap.Int("fileCount", len(files)))
	return files, nil
}
