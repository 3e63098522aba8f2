// Package snapshot converts a directory's structure and file contents into
// one pasteable text document, applying layered gitignore-style rules to
// both the tree listing and the content dump.
package snapshot

import (
	"fmt"
	"path/filepath"
	"time"

	"go.uber.org/zap"
)

// Runner executes the snapshot pipeline. The tree lister and the clipboard
// are injected capabilities; both have working defaults from NewRunner and
// both degrade gracefully when the host lacks them.
type Runner struct {
	Tree      TreeLister
	Clipboard Clipboard

	logger *zap.Logger
}

// NewRunner returns a Runner wired to the system tree command and the
// system clipboard.
func NewRunner(logger *zap.Logger) *Runner {
	return &Runner{
		Tree:      ExecTreeLister{},
		Clipboard: NewSystemClipboard(logger),
		logger:    logger,
	}
}

// Run converts args.InputDir into a single document and delivers it: stdout
// when requested, otherwise a timestamped file plus a best-effort clipboard
// copy. It returns the path of the written file ("" for stdout).
func (r *Runner) Run(args Arguments) (string, error) {
	startTime := time.Now()

	root := args.InputDir
	if root == "" {
		root = "."
	}
	r.logger.Debug("Starting snapshot", zap.String("root", root))

	absRoot, err := filepath.Abs(root)
	if err != nil {
		return "", fmt.Errorf("failed to resolve %s: %w", root, err)
	}

	rules, err := LoadRuleSets(root, args.IgnorePatterns, r.logger)
	if err != nil {
		return "", err
	}

	treeText := ""
	if r.Tree.Available() {
		raw, listErr := r.Tree.List(root)
		if listErr != nil {
			return "", listErr
		}
		treeText = FilterTree(raw, root, rules, r.logger)
	} else {
		// Not fatal: the document is still useful without the tree section.
		fmt.Println(treeInstallHint)
		r.logger.Debug("No tree backend available; omitting tree section")
	}

	entries, err := CollectContents(root, rules, r.logger)
	if err != nil {
		return "", err
	}

	document := RenderDocument(filepath.Base(absRoot), rules.HasGitignore, treeText, entries)

	if args.ToStdout {
		fmt.Print(document)
		r.logger.Debug("Snapshot written to stdout", zap.Duration("elapsed", time.Since(startTime)))
		return "", nil
	}

	outputFile, err := WriteDocument(document, args.OutputDir, r.logger)
	if err != nil {
		return "", err
	}

	if r.Clipboard.TryCopy(document) {
		r.logger.Debug("Snapshot copied to clipboard")
	} else {
		r.logger.Debug("Clipboard copy skipped or failed")
	}

	fmt.Printf("[SUCCESS] Repository structure and contents successfully saved to file: %q\n", "./"+outputFile)
	r.logger.Debug("Snapshot complete",
		zap.String("outputFile", outputFile),
		zap.Int("contentSections", len(entries)),
		zap.Duration("elapsed", time.Since(startTime)))
	return outputFile, nil
}
