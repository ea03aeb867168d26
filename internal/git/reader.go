package git

import (
	"context"
	"fmt"
	"io"
	"iter"
	"sort"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/object"
	"github.com/go-git/go-git/v5/plumbing/storer"
)

// HistoryReader reads commit history from a Git repository using go-git.
type HistoryReader struct {
	path string
	repo *git.Repository
}

// NewHistoryReader opens the repository at path.
// The path must be the repository root (or a bare repository); parents are not searched.
func NewHistoryReader(path string) (*HistoryReader, error) {
	repo, err := git.PlainOpen(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrInvalidRepository, path, err)
	}
	return &HistoryReader{path: path, repo: repo}, nil
}

// Branches returns the short names of all local branches, sorted.
func (r *HistoryReader) Branches() ([]string, error) {
	refs, err := r.repo.Branches()
	if err != nil {
		return nil, fmt.Errorf("list branches of %s: %w", r.path, err)
	}
	defer refs.Close()

	var names []string
	err = refs.ForEach(func(ref *plumbing.Reference) error {
		names = append(names, ref.Name().Short())
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("list branches of %s: %w", r.path, err)
	}

	sort.Strings(names)
	return names, nil
}

// Commits yields the history reachable from branch.
// The branch may be any revision go-git can resolve (branch, tag, remote ref, HEAD).
func (r *HistoryReader) Commits(ctx context.Context, branch string) iter.Seq2[CommitRecord, error] {
	return func(yield func(CommitRecord, error) bool) {
		hash, err := r.repo.ResolveRevision(plumbing.Revision(branch))
		if err != nil {
			yield(CommitRecord{}, fmt.Errorf("resolve branch %q in %s: %w", branch, r.path, err))
			return
		}

		cIter, err := r.repo.Log(&git.LogOptions{From: *hash})
		if err != nil {
			yield(CommitRecord{}, fmt.Errorf("read history of %q in %s: %w", branch, r.path, err))
			return
		}
		defer cIter.Close()

		err = cIter.ForEach(func(c *object.Commit) error {
			if err := ctx.Err(); err != nil {
				return err
			}
			if !yield(newCommitRecord(c), nil) {
				return storer.ErrStop
			}
			return nil
		})
		if err != nil {
			yield(CommitRecord{}, fmt.Errorf("read history of %q in %s: %w", branch, r.path, err))
		}
	}
}

// Close releases file handles held by the repository storage.
func (r *HistoryReader) Close() error {
	if c, ok := r.repo.Storer.(io.Closer); ok {
		return c.Close()
	}
	return nil
}

func newCommitRecord(c *object.Commit) CommitRecord {
	return CommitRecord{
		ID:     c.Hash.String(),
		Author: AuthorInfo{Name: c.Author.Name, Email: c.Author.Email},
		When:   c.Author.When,
	}
}
