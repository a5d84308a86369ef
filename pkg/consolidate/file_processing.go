package consolidate

import (
	"errors"
	"io"
	"os"

	"go.uber.org/zap"
	"golang.org/x/text/encoding"
	"golang.org/x/text/transform"
)

// ReadSource reads one entry as UTF-8 text. Undecodable content and read
// failures are reported through the result, never as an error.
func ReadSource(entry FileEntry, logger *zap.Logger) FileResult {
	result := FileResult{Entry: entry}

	file, err := os.Open(entry.Path)
	if err != nil {
		logger.Warn("Failed to open source file", zap.String("filePath", entry.Path), zap.Error(err))
		result.Outcome = OutcomeReadError
		result.Err = err
		return result
	}
	defer file.Close()

	content, err := io.ReadAll(transform.NewReader(file, encoding.UTF8Validator))
	switch {
	case errors.Is(err, encoding.ErrInvalidUTF8):
		logger.Warn("Source file is not valid UTF-8", zap.String("filePath", entry.Path))
		result.Outcome = OutcomeUndecodable
	case err != nil:
		logger.Warn("Failed to read source file", zap.String("filePath", entry.Path), zap.Error(err))
		result.Outcome = OutcomeReadError
		result.Err = err
	default:
		logger.Debug("Read source file",
			zap.String("filePath", entry.Path),
			zap.Int("contentSizeBytes", len(content)))
		result.Outcome = OutcomeContent
		result.Content = content
	}
	return result
}
