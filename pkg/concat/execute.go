package concat

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"go.uber.org/zap"
)

// Execute runs the full concatenation process: validate the root,
// collect matching files, split them into groups, and write the
// numbered output files.
func Execute(args *Arguments, logger *zap.Logger) error {
	if logger == nil {
		logger = zap.NewNop()
	}

	if args.NumberOfFiles <= 0 {
		return fmt.Errorf("number of output files must be a positive integer, got %d", args.NumberOfFiles)
	}

	startTime := time.Now()
	logger.Info("Starting concatenation",
		zap.String("rootDirectory", args.RootDirectory),
		zap.String("outputDirectory", args.OutputDirectory),
		zap.Int("numberOfFiles", args.NumberOfFiles))

	rootDir, err := filepath.Abs(args.RootDirectory)
	if err != nil {
		return fmt.Errorf("failed to resolve root directory: %w", err)
	}
	info, err := os.Stat(rootDir)
	if err != nil {
		return fmt.Errorf("root directory %s is not accessible: %w", rootDir, err)
	}
	if !info.IsDir() {
		return fmt.Errorf("root path %s is not a directory", rootDir)
	}

	ignores, err := NewIgnoreSet(args.IgnoreEntries)
	if err != nil {
		return fmt.Errorf("failed to parse ignore entries: %w", err)
	}
	extensions := NewExtensionSet(args.Extensions)

	files, err := CollectFiles(rootDir, ignores, extensions, logger)
	if err != nil {
		logger.Error("Failed to collect files", zap.Error(err))
		return fmt.Errorf("failed to collect files: %w", err)
	}
	logger.Info("Collected files", zap.Int("fileCount", len(files)))

	groups := SplitFiles(files, args.NumberOfFiles)
	if err := WriteGroups(groups, rootDir, args.OutputDirectory, logger); err != nil {
		logger.Error("Failed to write output files", zap.Error(err))
		return err
	}

	logger.Info("Concatenation completed",
		zap.Int("fileCount", len(files)),
		zap.Int("outputFiles", len(groups)),
		zap.Duration("elapsed", time.Since(startTime)))
	return nil
}
