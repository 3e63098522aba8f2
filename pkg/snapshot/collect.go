package snapshot

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"go.uber.org/zap"
)

// CollectContents walks the filesystem under root and returns one entry per
// surviving regular file, in walk order. Binary files are carried through
// the byte-widening encoding so the document stays a single text stream.
//
// Errors are fatal: a file that disappears mid-walk or a permission failure
// aborts the collection rather than producing a silently incomplete
// document.
func CollectContents(root string, rules *RuleSets, logger *zap.Logger) ([]FileContent, error) {
	var entries []FileContent

	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return fmt.Errorf("failed to access %s: %w", path, walkErr)
		}

		relPath, relErr := filepath.Rel(root, path)
		if relErr != nil {
			return fmt.Errorf("failed to resolve %s relative to %s: %w", path, root, relErr)
		}
		if relPath == "." {
			return nil
		}

		if d.IsDir() {
			// The metadata directory is never configurable; skipping it
			// wholesale avoids walking object databases. Rule-matched
			// directories are still descended so negated patterns can
			// resurrect individual files underneath them.
			if d.Name() == gitMetadataDir {
				return filepath.SkipDir
			}
			return nil
		}
		if !d.Type().IsRegular() {
			return nil
		}

		normalized := normalizeRelPath(relPath, false)
		if rules.IgnoredInContent(normalized) {
			logger.Debug("Ignored in content", zap.String("path", normalized))
			return nil
		}

		data, readErr := readFileBytes(path)
		if readErr != nil {
			return readErr
		}

		entry := FileContent{Path: normalized}
		if isTextPayload(data) {
			entry.Payload = string(data)
		} else {
			logger.Debug("Encoding binary file", zap.String("path", normalized), zap.Int("sizeBytes", len(data)))
			entry.Payload = encodeBinary(data)
			entry.Binary = true
		}
		entries = append(entries, entry)
		return nil
	})
	if err != nil {
		return nil, err
	}

	logger.Debug("Collected file contents", zap.Int("fileCount", len(entries)))
	return entries, nil
}

// readFileBytes reads a whole file; the handle is closed before returning on
// every path.
func readFileBytes(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	return data, nil
}
