// File: pkg/consolidate/tree.go
package consolidate

import (
	"fmt"
	"path/filepath"
	"sort"
	"strings"

	"go.uber.org/zap"
)

type treeNode struct {
	name     string
	isDir    bool
	children map[string]*treeNode
}

func newTreeNode(name string, isDir bool) *treeNode {
	return &treeNode{name: name, isDir: isDir, children: make(map[string]*treeNode)}
}

// RenderTree draws the consolidated files as a tree under root.
// Directories come first, then files, each group alphabetical ignoring case.
func RenderTree(root string, entries []FileEntry) string {
	top := newTreeNode(root, true)
	for _, entry := range entries {
		parts := strings.Split(entry.RelPath, "/")
		node := top
		for i, part := range parts {
			child, ok := node.children[part]
			if !ok {
				child = newTreeNode(part, i < len(parts)-1)
				node.children[part] = child
			}
			node = child
		}
	}

	var b strings.Builder
	b.WriteString(strings.TrimSuffix(filepath.ToSlash(root), "/") + "/\n")
	renderTreeNode(&b, top, "")
	return b.String()
}

func renderTreeNode(b *strings.Builder, node *treeNode, prefix string) {
	children := make([]*treeNode, 0, len(node.children))
	for _, child := range node.children {
		children = append(children, child)
	}
	sort.Slice(children, func(i, j int) bool {
		if children[i].isDir != children[j].isDir {
			return children[i].isDir
		}
		li, lj := strings.ToLower(children[i].name), strings.ToLower(children[j].name)
		if li != lj {
			return li < lj
		}
		return children[i].name < children[j].name
	})

	for i, child := range children {
		connector := "├── "
		extension := "│   "
		if i == len(children)-1 {
			connector = "└── "
			extension = "    "
		}

		if child.isDir {
			fmt.Fprintf(b, "%s%s%s/\n", prefix, connector, child.name)
			renderTreeNode(b, child, prefix+extension)
			continue
		}
		fmt.Fprintf(b, "%s%s%s\n", prefix, connector, child.name)
	}
}

// WriteTree renders the tree of entries and writes it to path.
func WriteTree(path, root string, entries []FileEntry, logger *zap.Logger) error {
	if err := ensureDirectory(filepath.Dir(path), logger); err != nil {
		return fmt.Errorf("failed to create tree output directory: %w", err)
	}
	return writeToFile(path, []byte(RenderTree(root, entries)), 0o644, logger)
}
