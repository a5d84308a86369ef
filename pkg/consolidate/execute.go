// File: pkg/consolidate/execute.go
package consolidate

import (
	"fmt"
	"os"
	"time"

	"consolidate/pkg/ignore"

	"go.uber.org/zap"
)

// Run collects the configured files and writes the consolidated output.
// The source directory is validated before the output file is touched.
func Run(cfg Config, logger *zap.Logger) (Summary, error) {
	startTime := time.Now()
	logger.Info("Starting consolidation",
		zap.String("directory", cfg.SourceDirectory),
		zap.String("outputFile", cfg.OutputPath),
		zap.Bool("lineNumbers", cfg.IncludeLineNumbers))

	if err := ValidateDirectory(cfg.SourceDirectory); err != nil {
		return Summary{}, err
	}

	matcher, err := buildMatcher(cfg, logger)
	if err != nil {
		return Summary{}, err
	}

	entries, err := Collect(cfg.SourceDirectory, cfg.Extensions, matcher, logger)
	if err != nil {
		logger.Error("Failed to collect files", zap.Error(err))
		return Summary{}, fmt.Errorf("failed to collect files: %w", err)
	}

	summary, err := Consolidate(cfg, entries, logger)
	if err != nil {
		logger.Error("Failed to write consolidated file", zap.String("outputFile", cfg.OutputPath), zap.Error(err))
		return summary, fmt.Errorf("failed to write consolidated file: %w", err)
	}

	if cfg.TreePath != "" {
		if err := WriteTree(cfg.TreePath, cfg.SourceDirectory, entries, logger); err != nil {
			logger.Error("Failed to write tree structure", zap.String("treeFile", cfg.TreePath), zap.Error(err))
			return summary, fmt.Errorf("failed to write tree structure: %w", err)
		}
	}

	summary.Elapsed = time.Since(startTime)
	logger.Info("Consolidation completed",
		zap.String("outputFile", summary.OutputPath),
		zap.Int("totalFiles", summary.Files),
		zap.Int("undecodable", summary.Undecodable),
		zap.Int("readErrors", summary.ReadErrors),
		zap.Duration("elapsed", summary.Elapsed))
	return summary, nil
}

// buildMatcher returns nil unless exclude patterns or an ignore file were given.
func buildMatcher(cfg Config, logger *zap.Logger) (PathMatcher, error) {
	if len(cfg.ExcludePatterns) == 0 && cfg.IgnoreFile == "" {
		return nil, nil
	}

	rules := ignore.New(logger)
	if cfg.IgnoreFile != "" {
		if err := rules.CompileFile(cfg.IgnoreFile); err != nil {
			return nil, fmt.Errorf("failed to load exclude patterns: %w", err)
		}
	}
	rules.CompileLines(cfg.ExcludePatterns...)
	logger.Debug("Loaded exclude rules", zap.Int("totalRules", rules.Len()))
	return rules, nil
}

// ensureDirectory ensures a directory exists, creating it if necessary.
func ensureDirectory(path string, logger *zap.Logger) error {
	if err := os.MkdirAll(path, 0o755); err != nil {
		logger.Error("Failed to create directory", zap.String("path", path), zap.Error(err))
		return err
	}
	return nil
}

// writeToFile writes data to a file and logs the operation.
func writeToFile(path string, data []byte, perm os.FileMode, logger *zap.Logger) error {
	if err := os.WriteFile(path, data, perm); err != nil {
		logger.Error("Failed to write file", zap.String("path", path), zap.Error(err))
		return err
	}
	logger.Debug("Successfully wrote file", zap.String("path", path))
	return nil
}
