package snapshot

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"

	"github.com/kirill-markin/repo-to-text/pkg/gitignore"
)

// RuleSets holds the three independent matchers applied during a run. They
// are composed by explicit OR at each decision site and never merged into a
// single rule list: the content-only set must not affect the tree.
type RuleSets struct {
	VCS            *gitignore.Spec // From .gitignore; nil when absent or disabled.
	Content        *gitignore.Spec // Content-only exclusions; nil when unconfigured.
	TreeAndContent *gitignore.Spec // Settings patterns then CLI patterns; never nil.
	HasGitignore   bool            // Whether a .gitignore file exists at the root.
}

// LoadRuleSets reads the settings document and the VCS ignore file at the
// root and compiles the three rule sets. CLI patterns are appended after the
// settings-declared tree-and-content patterns, so they win on conflict under
// last-match-wins.
func LoadRuleSets(root string, cliPatterns []string, logger *zap.Logger) (*RuleSets, error) {
	settings, err := LoadSettings(root)
	if err != nil {
		return nil, err
	}

	rules := &RuleSets{}

	gitignorePath := filepath.Join(root, GitignoreFileName)
	if _, statErr := os.Stat(gitignorePath); statErr == nil {
		rules.HasGitignore = true
		if settings.UseGitignore() {
			spec, compileErr := gitignore.CompileFile(gitignorePath)
			if compileErr != nil {
				return nil, fmt.Errorf("failed to read %s: %w", gitignorePath, compileErr)
			}
			rules.VCS = spec
			logger.Debug("Loaded .gitignore rules",
				zap.String("path", gitignorePath),
				zap.Int("patternCount", spec.Len()))
		} else {
			logger.Debug("Skipping .gitignore per settings", zap.String("path", gitignorePath))
		}
	} else if !os.IsNotExist(statErr) {
		return nil, fmt.Errorf("failed to stat %s: %w", gitignorePath, statErr)
	}

	if settings != nil && settings.IgnoreContent != nil {
		rules.Content = gitignore.CompileLines(settings.IgnoreContent...)
		logger.Debug("Compiled content-only ignore rules", zap.Int("patternCount", rules.Content.Len()))
	}

	var treeAndContent []string
	if settings != nil {
		treeAndContent = append(treeAndContent, settings.IgnoreTreeAndContent...)
	}
	treeAndContent = append(treeAndContent, cliPatterns...)
	rules.TreeAndContent = gitignore.CompileLines(treeAndContent...)
	logger.Debug("Compiled tree-and-content ignore rules",
		zap.Int("settingsPatterns", len(treeAndContent)-len(cliPatterns)),
		zap.Int("cliPatterns", len(cliPatterns)))

	return rules, nil
}

// IgnoredInTree reports whether a normalized relative path is excluded from
// the directory structure section. The content-only set is deliberately not
// consulted: such paths stay visible in the tree.
func (r *RuleSets) IgnoredInTree(relPath string) bool {
	return isAlwaysIgnored(relPath) ||
		r.VCS.MatchesPath(relPath) ||
		r.TreeAndContent.MatchesPath(relPath)
}

// IgnoredInContent reports whether a normalized relative path is excluded
// from the content sections.
func (r *RuleSets) IgnoredInContent(relPath string) bool {
	return isAlwaysIgnored(relPath) ||
		r.VCS.MatchesPath(relPath) ||
		r.Content.MatchesPath(relPath) ||
		r.TreeAndContent.MatchesPath(relPath)
}

// isAlwaysIgnored applies the built-in, non-configurable exclusions: the VCS
// metadata directory and prior output documents.
func isAlwaysIgnored(relPath string) bool {
	segments := strings.Split(strings.TrimSuffix(relPath, "/"), "/")
	for _, segment := range segments {
		if segment == gitMetadataDir {
			return true
		}
	}
	return strings.HasPrefix(segments[len(segments)-1], OutputFilePrefix)
}

// normalizeRelPath converts a root-relative path into the canonical form the
// matchers expect: forward slashes, no leading "./", and a trailing slash
// when the path names a directory.
func normalizeRelPath(relPath string, isDir bool) string {
	p := filepath.ToSlash(relPath)
	p = strings.TrimPrefix(p, "./")
	if isDir && !strings.HasSuffix(p, "/") {
		p += "/"
	}
	return p
}
