package consolidate

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

func TestRenderTree(t *testing.T) {
	entries := []FileEntry{
		{RelPath: "Zeta.md"},
		{RelPath: "a/x.c"},
		{RelPath: "a/inner/deep.h"},
		{RelPath: "b/y.md"},
		{RelPath: "alpha.c"},
	}

	want := "src/\n" +
		"├── a/\n" +
		"│   ├── inner/\n" +
		"│   │   └── deep.h\n" +
		"│   └── x.c\n" +
		"├── b/\n" +
		"│   └── y.md\n" +
		"├── alpha.c\n" +
		"└── Zeta.md\n"
	assert.Equal(t, want, RenderTree("src/", entries))
}

func TestRenderTreeEmpty(t *testing.T) {
	assert.Equal(t, "./\n", RenderTree(".", nil))
}

func TestWriteTree(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out", "tree.txt")
	entries := []FileEntry{{RelPath: "a.c"}}

	require.NoError(t, WriteTree(path, "proj", entries, zaptest.NewLogger(t)))
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "proj/\n└── a.c\n", string(data))
}
