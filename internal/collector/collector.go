// Package collector merges commit histories across branches and repositories
// into one stream of authored dates, counting every commit at most once per repository.
package collector

import (
	"context"
	"fmt"
	"iter"
	"strings"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/masmgr/commitheat/internal/calendar"
	"github.com/masmgr/commitheat/internal/git"
	"github.com/masmgr/commitheat/internal/log"
)

// Request describes what to collect.
type Request struct {
	Repositories []string // processed in order
	Authors      []string // exact email or name; empty accepts every author
	Branches     []string // names or glob patterns; empty means every local branch
	Range        calendar.Range
}

// Stats summarizes one repository pass.
type Stats struct {
	Repository string
	Branches   int
	Visited    int // commit visits, counting a commit once per branch it was reached from
	Unique     int // distinct commit IDs
	Matched    int // unique commits that passed the author and date filter
}

// RepositoryError reports a repository that could not be opened or read.
// Source adapters already name the path in their errors.
type RepositoryError struct {
	Path string
	Err  error
}

func (e *RepositoryError) Error() string {
	return e.Err.Error()
}

func (e *RepositoryError) Unwrap() error {
	return e.Err
}

// Collector yields the authored dates of unique, filtered commits.
type Collector struct {
	open    git.OpenFunc
	logger  *log.Logger
	onStats func(Stats)
}

// New creates a collector reading repositories through open.
func New(open git.OpenFunc, logger *log.Logger) *Collector {
	if logger == nil {
		logger = log.Discard()
	}
	return &Collector{open: open, logger: logger}
}

// OnStats registers fn to receive the stats of every completed repository pass.
func (c *Collector) OnStats(fn func(Stats)) {
	c.onStats = fn
}

// Dates yields one authored date per logically unique commit that matches the request.
// The sequence ends at the first error; the caller must treat it as fatal.
func (c *Collector) Dates(ctx context.Context, req Request) iter.Seq2[calendar.Date, error] {
	return func(yield func(calendar.Date, error) bool) {
		for _, path := range req.Repositories {
			ok, err := c.collectRepository(ctx, path, req, yield)
			if err != nil {
				yield(calendar.Date{}, &RepositoryError{Path: path, Err: err})
				return
			}
			if !ok {
				return
			}
		}
	}
}

// collectRepository runs one repository pass with its own seen set.
// It returns false when the consumer stopped the sequence.
// A Close failure is reported only for a completed pass; a stopped consumer cannot receive it.
func (c *Collector) collectRepository(ctx context.Context, path string, req Request, yield func(calendar.Date, error) bool) (cont bool, err error) {
	src, err := c.open(ctx, path)
	if err != nil {
		return false, err
	}
	defer func() {
		if cerr := src.Close(); cerr != nil && err == nil && cont {
			cont, err = false, fmt.Errorf("close %s: %w", path, cerr)
		}
	}()

	branches, err := resolveBranches(src, req.Branches)
	if err != nil {
		return false, err
	}
	c.logger.Debugf("%s: reading %d branch(es): %s", path, len(branches), strings.Join(branches, ", "))

	stats := Stats{Repository: path, Branches: len(branches)}
	seen := make(map[string]struct{})

	for _, branch := range branches {
		for commit, err := range src.Commits(ctx, branch) {
			if err != nil {
				return false, err
			}
			stats.Visited++

			if _, dup := seen[commit.ID]; dup {
				continue
			}
			// Marked seen whether or not it matches, so a commit is judged once.
			seen[commit.ID] = struct{}{}
			stats.Unique++

			date := commit.Date()
			if !matches(commit, date, req) {
				continue
			}
			stats.Matched++
			if !yield(date, nil) {
				return false, nil
			}
		}
	}

	c.logger.Debugf("%s: %d visits, %d unique commits, %d matched", path, stats.Visited, stats.Unique, stats.Matched)
	if c.onStats != nil {
		c.onStats(stats)
	}
	return true, nil
}

func matches(commit git.CommitRecord, date calendar.Date, req Request) bool {
	if !req.Range.Contains(date) {
		return false
	}
	if len(req.Authors) == 0 {
		return true
	}
	for _, identity := range req.Authors {
		if commit.Author.Matches(identity) {
			return true
		}
	}
	return false
}

// resolveBranches expands the requested branch list against the repository.
// Literal names pass through; glob patterns must match at least one local branch.
func resolveBranches(src git.CommitSource, requested []string) ([]string, error) {
	if len(requested) == 0 {
		return src.Branches()
	}

	var known []string
	var out []string
	added := make(map[string]struct{})
	add := func(name string) {
		if _, ok := added[name]; !ok {
			added[name] = struct{}{}
			out = append(out, name)
		}
	}

	for _, name := range requested {
		if !isGlob(name) {
			add(name)
			continue
		}
		if !doublestar.ValidatePattern(name) {
			return nil, fmt.Errorf("invalid branch pattern %q", name)
		}
		if known == nil {
			var err error
			if known, err = src.Branches(); err != nil {
				return nil, err
			}
		}
		matched := false
		for _, b := range known {
			if ok, _ := doublestar.Match(name, b); ok {
				add(b)
				matched = true
			}
		}
		if !matched {
			return nil, fmt.Errorf("branch pattern %q matches no branch", name)
		}
	}
	return out, nil
}

func isGlob(name string) bool {
	return strings.ContainsAny(name, "*?[{")
}
