package render

import (
	"slices"
	"strings"

	"github.com/jedib0t/go-pretty/v6/text"

	"github.com/DanEscher98/git-changes-view/internal/tree"
)

// Box-drawing connectors for tree lines.
const (
	connectorBranch = "├── "
	connectorCorner = "└── "
	prefixContinue  = "│   "
	prefixBlank     = "    "
)

// treeLine is a display line before column alignment. Directory lines carry
// no stats and are excluded from width computations.
type treeLine struct {
	text  string
	stats *rowStats
}

// Tree renders the whole tree as connector-prefixed lines with stats columns
// aligned globally across every file row, regardless of nesting depth.
// An empty tree yields nil.
func Tree(root *tree.Node, useColor bool) []string {
	treeLines := collectLines(root, "")
	if len(treeLines) == 0 {
		return nil
	}

	maxTextWidth := 0
	var rows []rowStats

	for _, line := range treeLines {
		if line.stats == nil {
			continue
		}

		// Box-drawing connectors are multi-byte, so measure display
		// width, not byte length.
		maxTextWidth = max(maxTextWidth, text.StringWidth(line.text))
		rows = append(rows, *line.stats)
	}

	widths := measureColumns(rows)

	result := make([]string, 0, len(treeLines))

	for _, line := range treeLines {
		if line.stats == nil {
			result = append(result, line.text)
			continue
		}

		padding := strings.Repeat(" ", maxTextWidth-text.StringWidth(line.text))
		result = append(result, line.text+padding+"  "+formatStats(*line.stats, widths, useColor))
	}

	return result
}

// collectLines walks the tree depth-first, visiting directories before files
// at each level and each group alphabetically. The last sibling gets the
// corner connector; directory recursion extends the prefix with either a
// blank run or a vertical continuation.
func collectLines(node *tree.Node, prefix string) []treeLine {
	children := sortedChildren(node)

	var lines []treeLine

	for i, child := range children {
		isLast := i == len(children)-1

		connector := connectorBranch
		if isLast {
			connector = connectorCorner
		}

		if child.IsFile {
			lines = append(lines, treeLine{
				text:  prefix + connector + child.Name,
				stats: &rowStats{loc: child.Loc, ins: child.Insertions, dels: child.Deletions},
			})

			continue
		}

		lines = append(lines, treeLine{text: prefix + connector + child.Name + "/"})

		extension := prefixContinue
		if isLast {
			extension = prefixBlank
		}

		lines = append(lines, collectLines(child, prefix+extension)...)
	}

	return lines
}

func sortedChildren(node *tree.Node) []*tree.Node {
	children := make([]*tree.Node, 0, len(node.Children))
	for _, child := range node.Children {
		children = append(children, child)
	}

	slices.SortFunc(children, func(a, b *tree.Node) int {
		if a.IsFile != b.IsFile {
			if a.IsFile {
				return 1
			}

			return -1
		}

		return strings.Compare(a.Name, b.Name)
	})

	return children
}
