package gitio

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// shortHashLen is the displayed commit id length.
const shortHashLen = 6

// maxMessageLen caps the displayed first line of a commit message.
const maxMessageLen = 50

// commitDateLayout formats commit timestamps for display.
const commitDateLayout = "2006-01-02 15:04:05"

// commitLogFormat asks git for hash, committer timestamp, and subject,
// tab-separated.
const commitLogFormat = "%H%x09%ct%x09%s"

// commitFieldCount is the number of tab-separated fields in commitLogFormat.
const commitFieldCount = 3

// CommitInfo is the short commit descriptor shown in the comparison footer.
type CommitInfo struct {
	ShortHash string
	Message   string
	Date      string
}

// Format renders `<date> <short id> <message>`, truncating messages longer
// than maxMessageLen with an ellipsis.
func (c CommitInfo) Format() string {
	msg := c.Message
	if len(msg) > maxMessageLen {
		msg = msg[:maxMessageLen-3] + "..."
	}

	return fmt.Sprintf("%s %s %s", c.Date, c.ShortHash, msg)
}

// ComparisonInfo describes the two endpoints of a comparison. A nil Head
// means the uncommitted working tree.
type ComparisonInfo struct {
	Base *CommitInfo
	Head *CommitInfo
}

// CommitInfo looks up the short descriptor for a commit reference.
func (r *Repository) CommitInfo(ref string) (*CommitInfo, error) {
	out, _, err := runGit(r.root, "log", "-1", "--format="+commitLogFormat, ref)
	if err != nil {
		return nil, fmt.Errorf("commit info for %s: %w", ref, err)
	}

	parts := strings.SplitN(strings.TrimSpace(out), "\t", commitFieldCount)
	if len(parts) < commitFieldCount || len(parts[0]) < shortHashLen {
		return nil, fmt.Errorf("commit info for %s: unexpected log output %q", ref, out)
	}

	timestamp, err := strconv.ParseInt(parts[1], 10, 64)
	if err != nil {
		return nil, fmt.Errorf("commit info for %s: parse timestamp: %w", ref, err)
	}

	return &CommitInfo{
		ShortHash: parts[0][:shortHashLen],
		Message:   parts[2],
		Date:      time.Unix(timestamp, 0).Format(commitDateLayout),
	}, nil
}

// ComparisonInfo resolves the display-only comparison endpoints for the
// given mode. Callers treat failures as "omit the footer", never fatal.
func (r *Repository) ComparisonInfo(mode string) (*ComparisonInfo, error) {
	switch mode {
	case ModeUncommitted:
		head, err := r.CommitInfo("HEAD")
		if err != nil {
			return nil, err
		}

		return &ComparisonInfo{Base: head, Head: nil}, nil
	case ModeSinceLast:
		base, err := r.CommitInfo("HEAD~1")
		if err != nil {
			return nil, err
		}

		head, err := r.CommitInfo("HEAD")
		if err != nil {
			return nil, err
		}

		return &ComparisonInfo{Base: base, Head: head}, nil
	default:
		baseRef, err := r.MergeBase()
		if err != nil {
			return nil, err
		}

		base, err := r.CommitInfo(baseRef)
		if err != nil {
			return nil, err
		}

		head, err := r.CommitInfo("HEAD")
		if err != nil {
			return nil, err
		}

		return &ComparisonInfo{Base: base, Head: head}, nil
	}
}
