package snapshot

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"go.uber.org/zap"
)

// outputTimestampLayout names the output file down to the second, UTC.
const outputTimestampLayout = "2006-01-02-15-04-05"

// WriteDocument writes the rendered document to a timestamped file, creating
// outputDir first when one is given. It returns the path written.
func WriteDocument(content, outputDir string, logger *zap.Logger) (string, error) {
	timestamp := time.Now().UTC().Format(outputTimestampLayout)
	outputFile := fmt.Sprintf("%s%s-UTC.txt", OutputFilePrefix, timestamp)

	if outputDir != "" {
		if err := os.MkdirAll(outputDir, 0o755); err != nil {
			return "", fmt.Errorf("failed to create output directory %s: %w", outputDir, err)
		}
		outputFile = filepath.Join(outputDir, outputFile)
	}

	if err := os.WriteFile(outputFile, []byte(content), 0o644); err != nil {
		return "", fmt.Errorf("failed to write output file %s: %w", outputFile, err)
	}

	logger.Debug("Wrote output document",
		zap.String("file", outputFile),
		zap.Int("sizeBytes", len(content)))
	return outputFile, nil
}
