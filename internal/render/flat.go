package render

import (
	"github.com/jedib0t/go-pretty/v6/text"

	"github.com/DanEscher98/git-changes-view/internal/changes"
)

// Flat renders one line per record: the path padded to the longest path in
// the collection, two spaces, then the aligned stats token. Column widths
// are computed across the whole collection. An empty collection yields nil.
func Flat(records []changes.Record, useColor bool) []string {
	if len(records) == 0 {
		return nil
	}

	maxPathLen := 0
	rows := make([]rowStats, 0, len(records))

	for _, r := range records {
		maxPathLen = max(maxPathLen, len(r.Path))
		rows = append(rows, rowStats{loc: r.Loc, ins: r.Insertions, dels: r.Deletions})
	}

	widths := measureColumns(rows)

	lines := make([]string, 0, len(records))
	for i, r := range records {
		path := text.AlignLeft.Apply(r.Path, maxPathLen)
		lines = append(lines, path+"  "+formatStats(rows[i], widths, useColor))
	}

	return lines
}
