// Package gitio runs git queries for a working repository: discovery,
// merge-base resolution, numstat diffs, commit metadata, and per-file line
// counts. All queries shell out to the git binary.
package gitio

import (
	"bytes"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/DanEscher98/git-changes-view/internal/changes"
)

// Comparison modes.
const (
	// ModeDefault compares HEAD against the merge base with a main branch.
	ModeDefault = "default"
	// ModeUncommitted compares the working tree (staged + unstaged) against HEAD.
	ModeUncommitted = "uncommitted"
	// ModeSinceLast compares HEAD against its immediate predecessor.
	ModeSinceLast = "since-last"
)

// mergeBaseCandidates are tried in order when resolving the default base.
var mergeBaseCandidates = []string{"main", "origin/main", "master", "origin/master"}

var (
	// ErrNotARepository indicates no git root exists at or above the start directory.
	ErrNotARepository = errors.New("not a git repository")
	// ErrEmptyRepository indicates the repository has no commits.
	ErrEmptyRepository = errors.New("repository has no commits")
	// ErrMergeBaseNotFound indicates no candidate base branch shares history with HEAD.
	ErrMergeBaseNotFound = errors.New("merge base not found")
	// ErrInsufficientHistory indicates fewer than two commits exist for a
	// since-last comparison.
	ErrInsufficientHistory = errors.New("not enough commits")
)

// Repository is a handle on a discovered git working tree.
type Repository struct {
	root string
}

// Discover locates the repository root at or above dir.
func Discover(dir string) (*Repository, error) {
	out, _, err := runGit(dir, "rev-parse", "--show-toplevel")
	if err != nil {
		return nil, ErrNotARepository
	}

	return &Repository{root: strings.TrimSpace(out)}, nil
}

// Root returns the repository's top-level directory.
func (r *Repository) Root() string {
	return r.root
}

// EnsureCommits verifies the repository has at least one commit.
func (r *Repository) EnsureCommits() error {
	_, _, err := runGit(r.root, "rev-parse", "--verify", "HEAD")
	if err != nil {
		return ErrEmptyRepository
	}

	return nil
}

// MergeBase finds the nearest common ancestor of HEAD and the first
// resolvable candidate branch (main, origin/main, master, origin/master).
func (r *Repository) MergeBase() (string, error) {
	for _, branch := range mergeBaseCandidates {
		out, _, err := runGit(r.root, "merge-base", "HEAD", branch)
		if err == nil {
			return strings.TrimSpace(out), nil
		}
	}

	return "", ErrMergeBaseNotFound
}

// Numstat returns the raw `git diff --numstat` output for the given mode.
func (r *Repository) Numstat(mode string) (string, error) {
	switch mode {
	case ModeUncommitted:
		out, _, err := runGit(r.root, "diff", "--numstat", "HEAD")
		if err != nil {
			return "", fmt.Errorf("diff working tree: %w", err)
		}

		return out, nil
	case ModeSinceLast:
		out, stderr, err := runGit(r.root, "diff", "--numstat", "HEAD~1", "HEAD")
		if err != nil {
			if strings.Contains(stderr, "unknown revision") || strings.Contains(stderr, "HEAD~1") {
				return "", ErrInsufficientHistory
			}

			return "", fmt.Errorf("diff since last commit: %w", err)
		}

		return out, nil
	default:
		base, err := r.MergeBase()
		if err != nil {
			return "", err
		}

		out, _, err := runGit(r.root, "diff", "--numstat", base, "HEAD")
		if err != nil {
			return "", fmt.Errorf("diff against merge base: %w", err)
		}

		return out, nil
	}
}

// Changes runs the numstat diff for the given mode, normalizes it, and
// enriches every record with its current line count. Line-count failures
// are per-file and leave Loc unset.
func (r *Repository) Changes(mode string) ([]changes.Record, error) {
	raw, err := r.Numstat(mode)
	if err != nil {
		return nil, err
	}

	records := changes.ParseNumstat(raw)
	for i := range records {
		records[i].Loc = r.LineCount(records[i].Path, mode)
	}

	return records, nil
}

// BaseRef returns the comparison base reference for the given mode, or the
// empty string when it cannot be resolved.
func (r *Repository) BaseRef(mode string) string {
	switch mode {
	case ModeUncommitted:
		return "HEAD"
	case ModeSinceLast:
		return "HEAD~1"
	default:
		base, err := r.MergeBase()
		if err != nil {
			return ""
		}

		return base
	}
}

// LineCount returns the file's current line count: the working-tree content
// for uncommitted mode, the blob at HEAD otherwise. Nil when the file does
// not exist at the target or its content is binary.
func (r *Repository) LineCount(path, mode string) *int {
	if mode == ModeUncommitted {
		data, err := os.ReadFile(filepath.Join(r.root, filepath.FromSlash(path)))
		if err != nil {
			return nil
		}

		n := countLines(data)

		return &n
	}

	out, _, err := runGit(r.root, "show", "HEAD:"+path)
	if err != nil {
		return nil
	}

	if strings.ContainsRune(out, '\x00') {
		return nil
	}

	n := countLines([]byte(out))

	return &n
}

// countLines counts newline-terminated lines plus a final unterminated one.
func countLines(data []byte) int {
	n := bytes.Count(data, []byte("\n"))
	if len(data) > 0 && data[len(data)-1] != '\n' {
		n++
	}

	return n
}

// runGit executes git with the given arguments in dir, returning stdout and
// stderr. The returned error carries the trimmed stderr text when git
// produced any.
func runGit(dir string, args ...string) (string, string, error) {
	slog.Debug("running git", "dir", dir, "args", args)

	cmd := exec.Command("git", append([]string{"-C", dir}, args...)...)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	if err != nil {
		msg := strings.TrimSpace(stderr.String())
		if msg != "" {
			return "", msg, fmt.Errorf("git %s: %s", args[0], msg)
		}

		return "", "", fmt.Errorf("git %s: %w", args[0], err)
	}

	return stdout.String(), strings.TrimSpace(stderr.String()), nil
}
