package concat

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"
)

// OutputFileName returns the name of the i-th (1-based) output file.
func OutputFileName(i int) string {
	return fmt.Sprintf("concatenated_part_%d.txt", i)
}

// WriteGroups writes each group into its numbered output file under
// outputDir, creating the directory if needed. Every group produces a
// file, including empty groups.
func WriteGroups(groups [][]string, rootDir, outputDir string, logger *zap.Logger) error {
	if err := ensureDirectory(outputDir, logger); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	for i, group := range groups {
		outputPath := filepath.Join(outputDir, OutputFileName(i+1))
		if err := writeGroup(outputPath, group, rootDir, logger); err != nil {
			return fmt.Errorf("failed to write %s: %w", outputPath, err)
		}
		logger.Debug("Wrote output file", zap.String("file", outputPath), zap.Int("memberCount", len(group)))
	}
	return nil
}

// writeGroup concatenates the group's members into one output file.
// Unreadable members are skipped with a warning.
func writeGroup(outputPath string, files []string, rootDir string, logger *zap.Logger) error {
	outFile, err := os.Create(outputPath)
	if err != nil {
		logger.Error("Failed to create output file", zap.String("file", outputPath), zap.Error(err))
		return err
	}
	defer func() {
		if err := outFile.Close(); err != nil {
			logger.Error("Failed to close output file", zap.String("file", outputPath), zap.Error(err))
		}
	}()

	writer := bufio.NewWriter(outFile)
	for _, file := range files {
		content, err := readSourceFile(file, rootDir)
		if err != nil {
			logger.Warn("Skipping unreadable source file", zap.String("file", file), zap.Error(err))
			continue
		}
		if _, err := writer.WriteString(content.Content); err != nil {
			return err
		}
	}
	return writer.Flush()
}

// readSourceFile reads one source file and prefixes its content with a
// header identifying the root-relative path.
func readSourceFile(path, rootDir string) (FileContent, error) {
	relPath, err := filepath.Rel(rootDir, path)
	if err != nil {
		relPath = path
	}
	relPath = filepath.ToSlash(relPath)

	data, err := os.ReadFile(path)
	if err != nil {
		return FileContent{}, fmt.Errorf("error reading file %s: %w", path, err)
	}

	return FileContent{
		Path:    relPath,
		Content: fmt.Sprintf("// File: %s\n%s\n\n", relPath, data),
	}, nil
}

// ensureDirectory ensures a directory exists, creating it if necessary.
func ensureDirectory(path string, logger *zap.Logger) error {
	if err := os.MkdirAll(path, 0o755); err != nil {
		logger.Error("Failed to create directory", zap.String("path", path), zap.Error(err))
		return err
	}
	return nil
}
