package ignore_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/chatter/shortkey/internal/ignore"
)

func TestFastIgnoreDirs(t *testing.T) {
	root := t.TempDir()

	m := ignore.NewMatcher(root)

	fastDirs := []string{".git", ".jj", ".svn", ".hg", ".vscode", ".idea"}
	for _, name := range fastDirs {
		dir := filepath.Join(root, name)
		if !m.Match(dir, true) {
			t.Errorf("expected %s to be ignored (fast path)", name)
		}
	}
}

func TestFastIgnoreDirs_NotAppliedToFiles(t *testing.T) {
	root := t.TempDir()

	m := ignore.NewMatcher(root)

	// A file named ".git" (a worktree pointer) should not be fast-path ignored.
	file := filepath.Join(root, ".git")
	if m.Match(file, false) {
		t.Error("fast-path should only apply to directories, not files")
	}
}

func TestGitignorePatterns(t *testing.T) {
	root := t.TempDir()

	gitignore := "*.log\nbuild/\n"
	if err := os.WriteFile(filepath.Join(root, ".gitignore"), []byte(gitignore), 0o644); err != nil {
		t.Fatal(err)
	}

	m := ignore.NewMatcher(root)

	tests := []struct {
		path  string
		isDir bool
		want  bool
		desc  string
	}{
		{filepath.Join(root, "app.log"), false, true, "*.log should match files"},
		{filepath.Join(root, "main.go"), false, false, "main.go should not be ignored"},
		{filepath.Join(root, "build"), true, true, "build/ pattern should match directories"},
		{filepath.Join(root, "build"), false, false, "build/ pattern should NOT match files"},
		{filepath.Join(root, "src"), true, false, "src/ should not be ignored"},
	}

	for _, tt := range tests {
		got := m.Match(tt.path, tt.isDir)
		if got != tt.want {
			t.Errorf("%s: Match(%q, isDir=%v) = %v, want %v", tt.desc, tt.path, tt.isDir, got, tt.want)
		}
	}
}

func TestHierarchicalGitignore(t *testing.T) {
	root := t.TempDir()

	// Root .gitignore ignores *.bak
	if err := os.WriteFile(filepath.Join(root, ".gitignore"), []byte("*.bak\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	// Create subdir with its own .gitignore that ignores *.dat
	subdir := filepath.Join(root, "sub")
	if err := os.MkdirAll(subdir, 0o755); err != nil {
		t.Fatal(err)
	}

	if err := os.WriteFile(filepath.Join(subdir, ".gitignore"), []byte("*.dat\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	m := ignore.NewMatcher(root)

	tests := []struct {
		path  string
		isDir bool
		want  bool
		desc  string
	}{
		// Root pattern applies everywhere
		{filepath.Join(root, "foo.bak"), false, true, "root *.bak matches in root"},
		{filepath.Join(subdir, "bar.bak"), false, true, "root *.bak matches in subdir"},

		// Subdir pattern applies only in subdir
		{filepath.Join(subdir, "data.dat"), false, true, "sub *.dat matches in subdir"},
		{filepath.Join(root, "data.dat"), false, false, "sub *.dat should NOT match in root"},

		// Unignored files
		{filepath.Join(subdir, "keys.toml"), false, false, ".toml not ignored anywhere"},
	}

	for _, tt := range tests {
		got := m.Match(tt.path, tt.isDir)
		if got != tt.want {
			t.Errorf("%s: Match(%q, isDir=%v) = %v, want %v", tt.desc, tt.path, tt.isDir, got, tt.want)
		}
	}
}

func TestRootPathNeverIgnored(t *testing.T) {
	root := t.TempDir()

	// Even with a wildcard gitignore, the root itself should not be ignored.
	if err := os.WriteFile(filepath.Join(root, ".gitignore"), []byte("*\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	m := ignore.NewMatcher(root)

	if m.Match(root, true) {
		t.Error("root path should never be ignored")
	}
}

func TestNegationPattern(t *testing.T) {
	root := t.TempDir()

	// Ignore all .log files except important.log
	gitignore := "*.log\n!important.log\n"
	if err := os.WriteFile(filepath.Join(root, ".gitignore"), []byte(gitignore), 0o644); err != nil {
		t.Fatal(err)
	}

	m := ignore.NewMatcher(root)

	if !m.Match(filepath.Join(root, "debug.log"), false) {
		t.Error("debug.log should be ignored")
	}

	if m.Match(filepath.Join(root, "important.log"), false) {
		t.Error("important.log should NOT be ignored (negation pattern)")
	}
}

func TestNoGitignore(t *testing.T) {
	root := t.TempDir()

	m := ignore.NewMatcher(root)

	// Without a .gitignore, regular files/dirs should not be ignored.
	if m.Match(filepath.Join(root, "file.txt"), false) {
		t.Error("file.txt should not be ignored when no .gitignore exists")
	}

	if m.Match(filepath.Join(root, "src"), true) {
		t.Error("src/ should not be ignored when no .gitignore exists")
	}

	// But fast-path dirs should still be ignored.
	if !m.Match(filepath.Join(root, ".git"), true) {
		t.Error(".git should always be ignored via fast path")
	}
}

func TestDefaultPatterns_EditorArtefacts(t *testing.T) {
	root := t.TempDir()

	m := ignore.NewMatcher(root)

	ignored := []string{
		".config.toml.swp",
		".config.toml.swo",
		"config.toml~",
		".#config.toml",
		"#config.toml#",
		"4913",
		"config.toml.tmp",
		".DS_Store",
	}
	for _, name := range ignored {
		if !m.Match(filepath.Join(root, name), false) {
			t.Errorf("%s should be ignored by default", name)
		}
	}

	for _, name := range []string{"config.toml", "shortcuts.toml", ".gitignore"} {
		if m.Match(filepath.Join(root, name), false) {
			t.Errorf("%s should not be ignored", name)
		}
	}
}

func TestExtraPatterns(t *testing.T) {
	root := t.TempDir()

	m := ignore.NewMatcher(root, "*.orig")

	if !m.Match(filepath.Join(root, "config.toml.orig"), false) {
		t.Error("extra pattern should be applied")
	}
}

func TestShortkeyIgnoreFile(t *testing.T) {
	root := t.TempDir()

	if err := os.WriteFile(filepath.Join(root, ".shortkeyignore"), []byte("draft-*.toml\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	m := ignore.NewMatcher(root)

	if !m.Match(filepath.Join(root, "draft-keys.toml"), false) {
		t.Error(".shortkeyignore patterns should apply")
	}
	if m.Match(filepath.Join(root, "keys.toml"), false) {
		t.Error("keys.toml should not be ignored")
	}
}

func TestIgnoreFileCanReincludeDefault(t *testing.T) {
	root := t.TempDir()

	if err := os.WriteFile(filepath.Join(root, ".gitignore"), []byte("!keep.tmp\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	m := ignore.NewMatcher(root)

	if m.Match(filepath.Join(root, "keep.tmp"), false) {
		t.Error("negation in an ignore file should override a default")
	}
	if !m.Match(filepath.Join(root, "other.tmp"), false) {
		t.Error("other .tmp files should stay ignored")
	}
}

func TestForget_RereadsIgnoreFiles(t *testing.T) {
	root := t.TempDir()
	ignPath := filepath.Join(root, ".gitignore")

	m := ignore.NewMatcher(root)
	target := filepath.Join(root, "local.toml")

	if m.Match(target, false) {
		t.Fatal("local.toml should not be ignored initially")
	}

	if err := os.WriteFile(ignPath, []byte("local.toml\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	if m.Match(target, false) {
		t.Error("cached patterns should be used until Forget")
	}

	m.Forget()

	if !m.Match(target, false) {
		t.Error("patterns should be re-read after Forget")
	}
}
