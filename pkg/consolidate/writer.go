// File: pkg/consolidate/writer.go
package consolidate

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"go.uber.org/zap"
)

// Artifact format.
const (
	headerFormat           = "# === %s ===\n"
	footer                 = "#\n\n"
	undecodablePlaceholder = "# [Binary file or encoding not supported]\n"
	readErrorFormat        = "# [Error reading file: %v]\n"
	lineNumberFormat       = "%4d | "
)

// Consolidate writes every entry into cfg.OutputPath, truncating any
// previous content. Missing parent directories are created.
func Consolidate(cfg Config, entries []FileEntry, logger *zap.Logger) (summary Summary, err error) {
	logger.Debug("Writing consolidated output", zap.String("outputFile", cfg.OutputPath))

	if err := ensureDirectory(filepath.Dir(cfg.OutputPath), logger); err != nil {
		return summary, fmt.Errorf("failed to create output directory: %w", err)
	}

	outFile, err := os.Create(cfg.OutputPath)
	if err != nil {
		logger.Error("Failed to create output file", zap.String("file", cfg.OutputPath), zap.Error(err))
		return summary, fmt.Errorf("failed to create output file: %w", err)
	}
	defer func() {
		if closeErr := outFile.Close(); closeErr != nil {
			logger.Error("Failed to close output file", zap.String("file", cfg.OutputPath), zap.Error(closeErr))
			if err == nil {
				err = fmt.Errorf("failed to close output file: %w", closeErr)
			}
		}
	}()

	writer := bufio.NewWriter(outFile)
	summary, err = WriteConsolidated(writer, entries, cfg.IncludeLineNumbers, logger)
	summary.OutputPath = cfg.OutputPath
	if err != nil {
		return summary, err
	}

	if err := writer.Flush(); err != nil {
		logger.Error("Failed to flush output file", zap.String("file", cfg.OutputPath), zap.Error(err))
		return summary, fmt.Errorf("failed to flush output: %w", err)
	}
	return summary, nil
}

// WriteConsolidated writes the header, content and footer of each entry to w
// in order. Unreadable entries get a placeholder and still count.
func WriteConsolidated(w io.Writer, entries []FileEntry, lineNumbers bool, logger *zap.Logger) (Summary, error) {
	var summary Summary
	for _, entry := range entries {
		result := ReadSource(entry, logger)
		if err := writeEntry(w, result, lineNumbers); err != nil {
			logger.Error("Failed to write entry",
				zap.String("contentPath", entry.RelPath),
				zap.Error(err))
			return summary, fmt.Errorf("failed to write %s: %w", entry.RelPath, err)
		}

		summary.Files++
		switch result.Outcome {
		case OutcomeUndecodable:
			summary.Undecodable++
		case OutcomeReadError:
			summary.ReadErrors++
		}
	}
	return summary, nil
}

func writeEntry(w io.Writer, result FileResult, lineNumbers bool) error {
	if _, err := fmt.Fprintf(w, headerFormat, result.Entry.RelPath); err != nil {
		return err
	}

	var err error
	switch result.Outcome {
	case OutcomeUndecodable:
		_, err = io.WriteString(w, undecodablePlaceholder)
	case OutcomeReadError:
		_, err = fmt.Fprintf(w, readErrorFormat, result.Err)
	default:
		if lineNumbers {
			err = writeNumbered(w, result.Content)
		} else {
			_, err = w.Write(result.Content)
		}
	}
	if err != nil {
		return err
	}

	_, err = io.WriteString(w, footer)
	return err
}

// writeNumbered prefixes each line with its 1-based number. Line terminators
// are kept as they are, including a missing one on the last line.
func writeNumbered(w io.Writer, content []byte) error {
	for n := 1; len(content) > 0; n++ {
		end := bytes.IndexByte(content, '\n') + 1
		if end == 0 {
			end = len(content)
		}
		if _, err := fmt.Fprintf(w, lineNumberFormat, n); err != nil {
			return err
		}
		if _, err := w.Write(content[:end]); err != nil {
			return err
		}
		content = content[end:]
	}
	return nil
}
