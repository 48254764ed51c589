// Package tree groups a flat change collection into a directory hierarchy.
package tree

import (
	"strings"

	"github.com/DanEscher98/git-changes-view/internal/changes"
)

// rootName is the sentinel name for the synthetic root node.
const rootName = "."

// Node is one entry in the file tree. Directory nodes are purely structural;
// only file leaves carry stats, each mapping to exactly one change record.
type Node struct {
	Name       string
	IsFile     bool
	Insertions int
	Deletions  int
	Loc        *int
	Children   map[string]*Node
}

// NewNode creates a node with an empty child map.
func NewNode(name string) *Node {
	return &Node{Name: name, Children: map[string]*Node{}}
}

// Build constructs a single-root tree from the given records. Paths are
// split on `/` and must already be clean relative paths; intermediate
// directory nodes are created on demand and shared across records.
func Build(records []changes.Record) *Node {
	root := NewNode(rootName)

	for _, record := range records {
		parts := strings.Split(record.Path, "/")
		node := root

		for i, part := range parts {
			child, ok := node.Children[part]
			if !ok {
				child = NewNode(part)
				node.Children[part] = child
			}

			if i == len(parts)-1 {
				child.IsFile = true
				child.Insertions = record.Insertions
				child.Deletions = record.Deletions
				child.Loc = record.Loc
			}

			node = child
		}
	}

	return root
}
