package render

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/DanEscher98/git-changes-view/internal/changes"
	"github.com/DanEscher98/git-changes-view/internal/tree"
)

func TestTree_RendersConnectorsAndGlobalAlignment(t *testing.T) {
	t.Parallel()

	root := tree.Build([]changes.Record{
		{Path: "a/b.py", Insertions: 1, Deletions: 2, Loc: intPtr(30)},
		{Path: "a/c.py", Insertions: 3, Deletions: 4},
		{Path: "d.py", Insertions: 5, Deletions: 6, Loc: intPtr(7)},
	})

	lines := Tree(root, false)

	require.Equal(t, []string{
		"├── a/",
		"│   ├── b.py  30  +1 -2",
		"│   └── c.py   -  +3 -4",
		"└── d.py       7  +5 -6",
	}, lines)
}

func TestTree_DirectoriesPrecedeFiles(t *testing.T) {
	t.Parallel()

	root := tree.Build([]changes.Record{
		{Path: "aaa.go"},
		{Path: "zzz/inner.go"},
		{Path: "bbb/inner.go"},
	})

	lines := Tree(root, false)
	require.Len(t, lines, 5)

	require.True(t, strings.HasPrefix(lines[0], "├── bbb/"))
	require.True(t, strings.HasPrefix(lines[2], "├── zzz/"))
	require.True(t, strings.HasPrefix(lines[4], "└── aaa.go"))
}

func TestTree_LastSiblingUsesCornerConnector(t *testing.T) {
	t.Parallel()

	root := tree.Build([]changes.Record{
		{Path: "dir/one.go"},
		{Path: "dir/two.go"},
	})

	lines := Tree(root, false)
	require.Len(t, lines, 3)

	require.Equal(t, "└── dir/", lines[0])
	require.True(t, strings.HasPrefix(lines[1], "    ├── one.go"))
	require.True(t, strings.HasPrefix(lines[2], "    └── two.go"))
}

func TestTree_NestedPrefixContinuation(t *testing.T) {
	t.Parallel()

	root := tree.Build([]changes.Record{
		{Path: "top/nested/deep.go"},
		{Path: "top/side.go"},
		{Path: "other.go"},
	})

	lines := Tree(root, false)
	require.Len(t, lines, 5)

	require.Equal(t, "├── top/", lines[0])
	require.Equal(t, "│   ├── nested/", lines[1])
	require.True(t, strings.HasPrefix(lines[2], "│   │   └── deep.go"))
	require.True(t, strings.HasPrefix(lines[3], "│   └── side.go"))
	require.True(t, strings.HasPrefix(lines[4], "└── other.go"))
}

func TestTree_EmptyYieldsNoLines(t *testing.T) {
	t.Parallel()

	require.Empty(t, Tree(tree.Build(nil), false))
}

func TestTree_ColorStripsBackToPlain(t *testing.T) {
	t.Parallel()

	root := tree.Build([]changes.Record{
		{Path: "fileA.go", Insertions: 12, Deletions: 1, Loc: intPtr(200)},
		{Path: "fileB.go", Insertions: 5, Deletions: 8, Loc: intPtr(44)},
	})

	colored := Tree(root, true)
	plain := Tree(root, false)

	require.Len(t, colored, 2)

	for i := range colored {
		require.Equal(t, plain[i], stripEscapes(colored[i]))
	}
}
