// Package changes defines the normalized per-file change record and the
// numstat normalizer that produces it.
package changes

import (
	"path"
	"slices"
	"strings"
)

// Sort keys accepted by SortBy.
const (
	SortName    = "name"
	SortChanges = "changes"
	SortPath    = "path"
)

// Record holds one file's change statistics.
type Record struct {
	// Path is the forward-slash-delimited path relative to the repo root.
	Path       string
	Insertions int
	Deletions  int
	// Loc is the file's current line count at the comparison target.
	// Nil when the file does not exist there or cannot be read.
	Loc *int
}

// Net returns insertions minus deletions. May be negative.
func (r Record) Net() int {
	return r.Insertions - r.Deletions
}

// Total returns insertions plus deletions.
func (r Record) Total() int {
	return r.Insertions + r.Deletions
}

// Summary aggregates a record collection for footer and JSON output.
type Summary struct {
	TotalInsertions int
	TotalDeletions  int
	Net             int
	FileCount       int
}

// Summarize computes totals over the given records.
func Summarize(records []Record) Summary {
	var s Summary

	for _, r := range records {
		s.TotalInsertions += r.Insertions
		s.TotalDeletions += r.Deletions
	}

	s.Net = s.TotalInsertions - s.TotalDeletions
	s.FileCount = len(records)

	return s
}

// SortBy orders records in place by the given key: SortName sorts by the
// final path segment case-insensitively, SortChanges by descending total
// lines changed, SortPath by the full path. Unknown keys sort like SortName.
// The sort is stable so equal keys keep their input order.
func SortBy(records []Record, key string) {
	switch key {
	case SortChanges:
		slices.SortStableFunc(records, func(a, b Record) int {
			return b.Total() - a.Total()
		})
	case SortPath:
		slices.SortStableFunc(records, func(a, b Record) int {
			return strings.Compare(a.Path, b.Path)
		})
	default:
		slices.SortStableFunc(records, func(a, b Record) int {
			return strings.Compare(
				strings.ToLower(path.Base(a.Path)),
				strings.ToLower(path.Base(b.Path)),
			)
		})
	}
}
