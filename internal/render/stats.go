// Package render formats change collections as aligned flat lists, directory
// trees, or JSON documents.
package render

import (
	"strconv"

	"github.com/fatih/color"
	"github.com/jedib0t/go-pretty/v6/text"
)

// absentMarker is rendered in the loc column when no line count is known.
const absentMarker = "-"

// minColumnWidth is the floor for every numeric column.
const minColumnWidth = 1

var (
	insColor  = color.New(color.FgGreen)
	delsColor = color.New(color.FgRed)
)

func init() {
	// Color use is decided by an explicit flag threaded from the CLI,
	// never by terminal detection inside the renderer.
	insColor.EnableColor()
	delsColor.EnableColor()
}

// columnWidths holds the per-column display widths for one rendering call.
type columnWidths struct {
	loc  int
	ins  int
	dels int
}

// rowStats is one row's numeric values prior to alignment.
type rowStats struct {
	loc  *int
	ins  int
	dels int
}

func locDisplay(loc *int) string {
	if loc == nil {
		return absentMarker
	}

	return strconv.Itoa(*loc)
}

// measureColumns computes each column's width as the maximum formatted
// length across all rows, with a floor of one character. The absent marker
// counts like any other value.
func measureColumns(rows []rowStats) columnWidths {
	w := columnWidths{loc: minColumnWidth, ins: minColumnWidth, dels: minColumnWidth}

	for _, row := range rows {
		w.loc = max(w.loc, len(locDisplay(row.loc)))
		w.ins = max(w.ins, len(strconv.Itoa(row.ins)))
		w.dels = max(w.dels, len(strconv.Itoa(row.dels)))
	}

	return w
}

// formatStats renders one row's `<loc>  +<ins> -<dels>` token with every
// column right-aligned to the given widths. When useColor is set the
// insertions segment is wrapped in green and the deletions segment in red;
// stripping the escapes reproduces the plain form exactly, since widths are
// applied before the escapes are added.
func formatStats(row rowStats, w columnWidths, useColor bool) string {
	locPart := text.AlignRight.Apply(locDisplay(row.loc), w.loc)
	insPart := "+" + text.AlignRight.Apply(strconv.Itoa(row.ins), w.ins)
	delsPart := "-" + text.AlignRight.Apply(strconv.Itoa(row.dels), w.dels)

	if useColor {
		insPart = insColor.Sprint(insPart)
		delsPart = delsColor.Sprint(delsPart)
	}

	return locPart + "  " + insPart + " " + delsPart
}
