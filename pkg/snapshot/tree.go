package snapshot

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"go.uber.org/zap"
)

// TreeLister produces the raw hierarchical listing of a directory: one line
// per entry, each containing the entry's path after the drawing characters.
// Availability is optional; the document simply omits the tree section when
// no lister is present.
type TreeLister interface {
	Available() bool
	List(root string) (string, error)
}

// ExecTreeLister shells out to the system `tree` command.
type ExecTreeLister struct{}

// Available reports whether the tree binary can be found on PATH.
func (ExecTreeLister) Available() bool {
	_, err := exec.LookPath("tree")
	return err == nil
}

// List runs `tree -a -f --noreport` so every line carries the full path.
func (ExecTreeLister) List(root string) (string, error) {
	out, err := exec.Command("tree", "-a", "-f", "--noreport", root).Output()
	if err != nil {
		return "", fmt.Errorf("tree command failed for %s: %w", root, err)
	}
	return string(out), nil
}

// treeInstallHint is printed once when no tree backend is available.
const treeInstallHint = `The 'tree' command is not found. Please install it using one of the following commands:
For Debian-based systems (e.g., Ubuntu): sudo apt-get install tree
For Red Hat-based systems (e.g., Fedora, CentOS): sudo yum install tree`

type treeEntry struct {
	line    string // Original listing line, drawing characters included.
	relPath string // Normalized root-relative path.
	isDir   bool
}

// FilterTree prunes the raw listing down to the entries that survive the
// VCS and tree-and-content rule sets, then drops directories left without
// any surviving file underneath. Line order is preserved. The content-only
// set plays no part here.
func FilterTree(raw, root string, rules *RuleSets, logger *zap.Logger) string {
	var entries []treeEntry
	nonEmptyDirs := make(map[string]bool)

	for _, line := range strings.Split(raw, "\n") {
		fullPath := extractFullPath(line, root)
		if fullPath == "" || fullPath == root || fullPath == "." {
			continue
		}

		relPath, err := filepath.Rel(root, fullPath)
		if err != nil || relPath == "." {
			continue
		}

		info, statErr := os.Stat(fullPath)
		isDir := statErr == nil && info.IsDir()
		normalized := normalizeRelPath(relPath, isDir)

		if rules.IgnoredInTree(normalized) {
			logger.Debug("Ignored in tree", zap.String("path", normalized))
			continue
		}

		if !isDir {
			markNonEmptyDirs(normalized, nonEmptyDirs)
		}
		entries = append(entries, treeEntry{line: line, relPath: normalized, isDir: isDir})
	}

	// Directories are emitted only when at least one file survived below
	// them, so pruned subtrees leave no dangling branches.
	var kept []string
	for _, e := range entries {
		if e.isDir && !nonEmptyDirs[strings.TrimSuffix(e.relPath, "/")] {
			logger.Debug("Dropping empty directory from tree", zap.String("path", e.relPath))
			continue
		}
		kept = append(kept, strings.Replace(e.line, "./", "", 1))
	}

	return strings.Join(kept, "\n")
}

// extractFullPath locates the path token embedded in a raw listing line,
// either via the "./" marker or the root prefix.
func extractFullPath(line, root string) string {
	idx := strings.Index(line, "./")
	if idx == -1 {
		idx = strings.Index(line, root)
	}
	if idx == -1 {
		return ""
	}
	return strings.TrimSpace(line[idx:])
}

// markNonEmptyDirs records every ancestor directory of a surviving file.
func markNonEmptyDirs(relPath string, nonEmptyDirs map[string]bool) {
	dir := pathDir(relPath)
	for dir != "" {
		nonEmptyDirs[dir] = true
		dir = pathDir(dir)
	}
}

// pathDir is path.Dir with "" instead of "." for top-level entries.
func pathDir(p string) string {
	i := strings.LastIndex(p, "/")
	if i <= 0 {
		return ""
	}
	return p[:i]
}
