package ignore

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

func TestMatchesPath(t *testing.T) {
	tests := []struct {
		name    string
		pattern string
		path    string
		isDir   bool
		want    bool
	}{
		{"basename anywhere", "*.o", "src/lib/x.o", false, true},
		{"basename no match", "*.o", "src/lib/x.c", false, false},
		{"star stays in segment", "src/*.c", "src/a/b.c", false, false},
		{"anchored inner slash", "src/*.c", "src/b.c", false, true},
		{"leading slash anchors", "/build", "sub/build", true, false},
		{"leading slash root", "/build", "build", true, true},
		{"dir only on dir", "build/", "a/build", true, true},
		{"dir only on file", "build/", "a/build", false, false},
		{"dir only descendant", "build/", "a/build/out.c", false, true},
		{"dir only nested same name", "build/", "build/build", false, true},
		{"double star prefix", "**/gen", "x/y/gen", true, true},
		{"double star suffix", "vendor/**", "vendor/a/b.c", false, true},
		{"double star suffix not self", "vendor/**", "vendor", true, false},
		{"double star middle", "a/**/z.h", "a/b/c/z.h", false, true},
		{"double star middle direct", "a/**/z.h", "a/z.h", false, true},
		{"question mark", "?.md", "docs/a.md", false, true},
		{"question mark one char", "?.md", "docs/ab.md", false, false},
		{"dot is literal", "a.c", "abc", false, false},
		{"escaped hash", `\#notes.md`, "#notes.md", false, true},
		{"descendant of matched file path", ".git", ".git/objects/ab", false, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rules := New(zaptest.NewLogger(t))
			rules.CompileLines(tt.pattern)
			require.Equal(t, 1, rules.Len())
			assert.Equal(t, tt.want, rules.MatchesPath(tt.path, tt.isDir))
		})
	}
}

func TestNegationLastRuleWins(t *testing.T) {
	rules := New(zaptest.NewLogger(t))
	rules.CompileLines("*.md", "!README.md")

	assert.True(t, rules.MatchesPath("docs/guide.md", false))

	matched, rule := rules.MatchesPathWithRule("README.md", false)
	assert.False(t, matched)
	require.NotNil(t, rule)
	assert.Equal(t, "!README.md", rule.Line)
	assert.Equal(t, 2, rule.LineNo)
	assert.Equal(t, "flag", rule.Source)
}

func TestCommentsAndBlankLinesSkipped(t *testing.T) {
	rules := New(nil)
	rules.CompileLines("", "   ", "# comment", "/")
	assert.Equal(t, 0, rules.Len())
	assert.False(t, rules.MatchesPath("anything.c", false))
}

func TestCompileFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "exclude")
	require.NoError(t, os.WriteFile(path, []byte("# generated\r\nbuild/\r\n*.tmp\n"), 0o644))

	rules := New(zaptest.NewLogger(t))
	require.NoError(t, rules.CompileFile(path))
	assert.Equal(t, 2, rules.Len())

	matched, rule := rules.MatchesPathWithRule("x/build", true)
	assert.True(t, matched)
	require.NotNil(t, rule)
	assert.Equal(t, 2, rule.LineNo)
	assert.Equal(t, path, rule.Source)
}

func TestCompileFileMissing(t *testing.T) {
	rules := New(zaptest.NewLogger(t))
	err := rules.CompileFile(filepath.Join(t.TempDir(), "nope"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestNormalizePath(t *testing.T) {
	assert.Equal(t, "a/b", normalizePath("./a/b/"))
	assert.Equal(t, "a/b", normalizePath(filepath.Join("a", "b")))
}
