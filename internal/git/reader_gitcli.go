package git

import (
	"bytes"
	"context"
	"fmt"
	"iter"
	"os/exec"
	"sort"
	"strings"
	"time"
)

// CLIReader reads commit history by shelling out to the git binary.
type CLIReader struct {
	path string
	ctx  context.Context // bounds calls that take no context of their own
}

// NewCLIReader verifies that path is a repository root and returns a reader for it.
func NewCLIReader(ctx context.Context, path string) (*CLIReader, error) {
	out, err := runGit(ctx, path, "rev-parse", "--is-bare-repository", "--show-prefix")
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrInvalidRepository, path, err)
	}
	// A non-empty prefix means path is a subdirectory of a work tree.
	lines := strings.Split(strings.TrimSpace(string(out)), "\n")
	if len(lines) > 1 && strings.TrimSpace(lines[1]) != "" {
		return nil, fmt.Errorf("%w: %s: not the repository root", ErrInvalidRepository, path)
	}
	return &CLIReader{path: path, ctx: ctx}, nil
}

// Branches returns the short names of all local branches, sorted.
func (r *CLIReader) Branches() ([]string, error) {
	out, err := runGit(r.ctx, r.path, "for-each-ref", "--format=%(refname:short)", "refs/heads")
	if err != nil {
		return nil, fmt.Errorf("list branches of %s: %w", r.path, err)
	}

	var names []string
	for _, line := range strings.Split(string(out), "\n") {
		if name := strings.TrimSpace(line); name != "" {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	return names, nil
}

// Commits yields the history reachable from branch.
func (r *CLIReader) Commits(ctx context.Context, branch string) iter.Seq2[CommitRecord, error] {
	return func(yield func(CommitRecord, error) bool) {
		// Each commit is prefixed by 0x1e (record separator) with NUL-separated fields.
		const format = "%x1e%H%x00%aI%x00%an%x00%ae"

		if strings.HasPrefix(branch, "-") {
			yield(CommitRecord{}, fmt.Errorf("invalid branch name %q", branch))
			return
		}

		out, err := runGit(ctx, r.path, "log", "--no-color", "--pretty=format:"+format, branch, "--")
		if err != nil {
			yield(CommitRecord{}, fmt.Errorf("read history of %q in %s: %w", branch, r.path, err))
			return
		}

		for _, rec := range bytes.Split(out, []byte{0x1e}) {
			if len(bytes.TrimSpace(rec)) == 0 {
				continue
			}
			c, err := parseLogRecord(rec)
			if err != nil {
				yield(CommitRecord{}, fmt.Errorf("read history of %q in %s: %w", branch, r.path, err))
				return
			}
			if !yield(c, nil) {
				return
			}
		}
	}
}

// Close is a no-op; every git invocation is a separate process.
func (r *CLIReader) Close() error {
	return nil
}

func parseLogRecord(rec []byte) (CommitRecord, error) {
	rec = bytes.TrimRight(rec, "\r\n")
	fields := bytes.SplitN(rec, []byte{0x00}, 4)
	if len(fields) < 4 {
		return CommitRecord{}, fmt.Errorf("unexpected git log record format")
	}

	when, err := time.Parse(time.RFC3339, string(fields[1]))
	if err != nil {
		return CommitRecord{}, fmt.Errorf("parse author date: %w", err)
	}

	return CommitRecord{
		ID:     string(fields[0]),
		Author: AuthorInfo{Name: string(fields[2]), Email: string(fields[3])},
		When:   when,
	}, nil
}

func runGit(ctx context.Context, repoPath string, args ...string) ([]byte, error) {
	args = append([]string{"-C", repoPath}, args...)
	cmd := exec.CommandContext(ctx, "git", args...)
	var stderr bytes.Buffer
	cmd.Stderr = &stderr
	out, err := cmd.Output()
	if err != nil {
		return nil, fmt.Errorf("git %s failed: %w: %s", args[2], err, strings.TrimSpace(stderr.String()))
	}
	return out, nil
}
