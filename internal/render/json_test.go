package render

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/DanEscher98/git-changes-view/internal/changes"
)

func TestJSON_SummaryMatchesFiles(t *testing.T) {
	t.Parallel()

	records := []changes.Record{
		{Path: "src/a.py", Insertions: 10, Deletions: 5, Loc: intPtr(123)},
		{Path: "src/b.py", Insertions: 3, Deletions: 0},
	}

	doc, err := JSON(records, "default", "abc123")
	require.NoError(t, err)

	var parsed struct {
		Mode  string `json:"mode"`
		Files []struct {
			Path       string `json:"path"`
			Loc        *int   `json:"loc"`
			Insertions int    `json:"insertions"`
			Deletions  int    `json:"deletions"`
		} `json:"files"`
		Summary struct {
			TotalInsertions int `json:"total_insertions"`
			TotalDeletions  int `json:"total_deletions"`
			Net             int `json:"net"`
			FileCount       int `json:"file_count"`
		} `json:"summary"`
		Base string `json:"base"`
	}

	require.NoError(t, json.Unmarshal([]byte(doc), &parsed))

	require.Equal(t, "default", parsed.Mode)
	require.Equal(t, "abc123", parsed.Base)
	require.Len(t, parsed.Files, 2)

	gotIns, gotDels := 0, 0
	for _, f := range parsed.Files {
		gotIns += f.Insertions
		gotDels += f.Deletions
	}

	require.Equal(t, gotIns, parsed.Summary.TotalInsertions)
	require.Equal(t, gotDels, parsed.Summary.TotalDeletions)
	require.Equal(t, gotIns-gotDels, parsed.Summary.Net)
	require.Equal(t, len(parsed.Files), parsed.Summary.FileCount)
}

func TestJSON_AbsentLocIsExplicitNull(t *testing.T) {
	t.Parallel()

	doc, err := JSON([]changes.Record{{Path: "bin.dat"}}, "uncommitted", "HEAD")
	require.NoError(t, err)

	require.Contains(t, doc, `"loc": null`)
}

func TestJSON_BaseOmittedWhenEmpty(t *testing.T) {
	t.Parallel()

	doc, err := JSON([]changes.Record{{Path: "a.go"}}, "default", "")
	require.NoError(t, err)

	require.NotContains(t, doc, `"base"`)
}

func TestJSON_PrettyPrintedWithTwoSpaceIndent(t *testing.T) {
	t.Parallel()

	doc, err := JSON([]changes.Record{{Path: "a.go", Insertions: 1}}, "since-last", "HEAD~1")
	require.NoError(t, err)

	lines := strings.Split(doc, "\n")
	require.Greater(t, len(lines), 2)
	require.Equal(t, `  "mode": "since-last",`, lines[1])
}
