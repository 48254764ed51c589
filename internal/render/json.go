package render

import (
	"encoding/json"
	"fmt"

	"github.com/DanEscher98/git-changes-view/internal/changes"
)

// jsonIndent is the indent unit of the pretty-printed document.
const jsonIndent = "  "

// fileEntry is one record in the JSON files list. Loc marshals to an
// explicit null when absent.
type fileEntry struct {
	Path       string `json:"path"`
	Loc        *int   `json:"loc"`
	Insertions int    `json:"insertions"`
	Deletions  int    `json:"deletions"`
}

type summaryEntry struct {
	TotalInsertions int `json:"total_insertions"`
	TotalDeletions  int `json:"total_deletions"`
	Net             int `json:"net"`
	FileCount       int `json:"file_count"`
}

type document struct {
	Mode    string       `json:"mode"`
	Files   []fileEntry  `json:"files"`
	Summary summaryEntry `json:"summary"`
	Base    string       `json:"base,omitempty"`
}

// JSON projects the record collection into a pretty-printed document with
// the comparison mode, per-file stats, computed summary, and the base
// reference when one was resolved.
func JSON(records []changes.Record, mode, baseRef string) (string, error) {
	files := make([]fileEntry, 0, len(records))
	for _, r := range records {
		files = append(files, fileEntry{
			Path:       r.Path,
			Loc:        r.Loc,
			Insertions: r.Insertions,
			Deletions:  r.Deletions,
		})
	}

	summary := changes.Summarize(records)

	doc := document{
		Mode:  mode,
		Files: files,
		Summary: summaryEntry{
			TotalInsertions: summary.TotalInsertions,
			TotalDeletions:  summary.TotalDeletions,
			Net:             summary.Net,
			FileCount:       summary.FileCount,
		},
		Base: baseRef,
	}

	out, err := json.MarshalIndent(doc, "", jsonIndent)
	if err != nil {
		return "", fmt.Errorf("marshal document: %w", err)
	}

	return string(out), nil
}
