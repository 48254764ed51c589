package changes

import (
	"strconv"
	"strings"
)

// numstatFieldCount is the minimum tab-separated field count of a valid line.
const numstatFieldCount = 3

// binaryMarker is what git prints instead of a count for binary files.
const binaryMarker = "-"

// renameArrow separates the old and new sides of a renamed path.
const renameArrow = " => "

// ParseNumstat parses `git diff --numstat` output into records.
// Each line has the format `<insertions>\t<deletions>\t<path>`; binary files
// carry the literal `-` for either count and normalize to zero. Lines with
// fewer than three fields are dropped. Input order is preserved and Loc is
// left unset.
func ParseNumstat(output string) []Record {
	output = strings.TrimSpace(output)
	if output == "" {
		return nil
	}

	var records []Record

	for _, line := range strings.Split(output, "\n") {
		if line == "" {
			continue
		}

		parts := strings.SplitN(line, "\t", numstatFieldCount)
		if len(parts) < numstatFieldCount {
			continue
		}

		records = append(records, Record{
			Path:       normalizeRename(parts[2]),
			Insertions: parseCount(parts[0]),
			Deletions:  parseCount(parts[1]),
		})
	}

	return records
}

func parseCount(field string) int {
	if field == binaryMarker {
		return 0
	}

	n, err := strconv.Atoi(field)
	if err != nil {
		return 0
	}

	return n
}

// normalizeRename resolves git's rename syntax to the new-side path.
// `{old => new}/file.txt` and `oldfull => newfull` both occur; braces are
// stripped first, then anything left of the arrow is discarded.
func normalizeRename(p string) string {
	if !strings.Contains(p, renameArrow) {
		return p
	}

	p = strings.ReplaceAll(p, "{", "")
	p = strings.ReplaceAll(p, "}", "")

	if idx := strings.Index(p, renameArrow); idx >= 0 {
		p = p[idx+len(renameArrow):]
	}

	return p
}
