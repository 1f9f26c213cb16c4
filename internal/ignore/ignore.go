// Package ignore decides which files in a watched config directory are
// editor or tool artefacts whose changes should not trigger a reload.
//
// Built-in patterns cover swap, backup and lock files written by common
// editors. Further gitignore-syntax patterns are read from .gitignore and
// .shortkeyignore files in the directory tree, using go-git's matcher.
package ignore

import (
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/go-git/go-git/v5/plumbing/format/gitignore"
)

// DefaultPatterns match files that editors create next to the file being
// edited. 4913 is the probe file vim writes to test directory permissions.
var DefaultPatterns = []string{
	"*.swp",
	"*.swo",
	"*.swx",
	"*~",
	".#*",
	`\#*#`,
	"4913",
	"*.tmp",
	".DS_Store",
}

// ignoreFiles are read in every directory, in this order.
var ignoreFiles = []string{".gitignore", ".shortkeyignore"}

// Matcher checks paths under a root directory against the built-in patterns
// and any ignore files found from the root downward.
type Matcher struct {
	rootPath         string
	defaults         []gitignore.Pattern
	skipDirs         map[string]bool
	dirPatterns      sync.Map // dir (string) -> []gitignore.Pattern
	combinedMatchers sync.Map // dir (string) -> gitignore.Matcher
}

// NewMatcher creates a Matcher rooted at rootPath. Extra patterns are added
// to DefaultPatterns at root level.
func NewMatcher(rootPath string, extra ...string) *Matcher {
	lines := append(append([]string{}, DefaultPatterns...), extra...)

	return &Matcher{
		rootPath: rootPath,
		defaults: parsePatterns(lines, nil),
		skipDirs: map[string]bool{
			".git":    true,
			".jj":     true,
			".svn":    true,
			".hg":     true,
			".vscode": true,
			".idea":   true,
		},
	}
}

// Root returns the directory the matcher is rooted at.
func (m *Matcher) Root() string {
	return m.rootPath
}

// Match reports whether path should be ignored. isDir must be true when
// path is a directory so that directory-only patterns ("backup/") apply.
func (m *Matcher) Match(path string, isDir bool) bool {
	if isDir && m.skipDirs[filepath.Base(path)] {
		return true
	}

	if path == m.rootPath {
		return false
	}

	relPath, err := filepath.Rel(m.rootPath, path)
	if err != nil {
		relPath = path
	}

	components := pathToComponents(relPath)
	if len(components) == 0 {
		return false
	}

	return m.getCombinedMatcher(filepath.Dir(path)).Match(components, isDir)
}

// pathToComponents splits a slash-separated path into its individual parts.
func pathToComponents(path string) []string {
	path = filepath.ToSlash(path)
	if path == "" || path == "." {
		return nil
	}

	return strings.Split(path, "/")
}

// parsePatterns converts gitignore lines into patterns scoped to domain
// (nil for the root).
func parsePatterns(lines []string, domain []string) []gitignore.Pattern {
	var patterns []gitignore.Pattern

	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		patterns = append(patterns, gitignore.ParsePattern(line, domain))
	}

	return patterns
}

// getDirPatterns returns the parsed ignore-file patterns of one directory.
func (m *Matcher) getDirPatterns(dir string) []gitignore.Pattern {
	if v, ok := m.dirPatterns.Load(dir); ok {
		patterns, _ := v.([]gitignore.Pattern)
		return patterns
	}

	var domain []string

	relPath, _ := filepath.Rel(m.rootPath, dir)
	if relPath != "" && relPath != "." {
		domain = pathToComponents(relPath)
	}

	var patterns []gitignore.Pattern

	for _, name := range ignoreFiles {
		content, err := os.ReadFile(filepath.Join(dir, name))
		if err != nil {
			continue
		}

		patterns = append(patterns, parsePatterns(strings.Split(string(content), "\n"), domain)...)
	}

	m.dirPatterns.Store(dir, patterns)

	return patterns
}

// getCombinedMatcher returns a matcher over the defaults and every ignore
// file from the root down to dir. Later patterns take precedence, so an
// ignore file can re-include a default with "!pattern".
func (m *Matcher) getCombinedMatcher(dir string) gitignore.Matcher {
	if v, ok := m.combinedMatchers.Load(dir); ok {
		matcher, _ := v.(gitignore.Matcher)
		return matcher
	}

	allPatterns := append([]gitignore.Pattern{}, m.defaults...)

	var pathParts []string

	relDir, _ := filepath.Rel(m.rootPath, dir)
	if relDir != "" && relDir != "." {
		pathParts = pathToComponents(relDir)
	}

	currentPath := m.rootPath
	allPatterns = append(allPatterns, m.getDirPatterns(currentPath)...)

	for _, part := range pathParts {
		currentPath = filepath.Join(currentPath, part)
		allPatterns = append(allPatterns, m.getDirPatterns(currentPath)...)
	}

	matcher := gitignore.NewMatcher(allPatterns)
	m.combinedMatchers.Store(dir, matcher)

	return matcher
}

// Forget drops cached patterns so edited ignore files are re-read.
func (m *Matcher) Forget() {
	m.dirPatterns.Clear()
	m.combinedMatchers.Clear()
}
