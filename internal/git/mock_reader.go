package git

import (
	"context"
	"fmt"
	"iter"
	"sort"
)

// MockSource is a test double for CommitSource.
// It allows tests to provide predefined commit data without needing a real Git repository.
type MockSource struct {
	BranchCommits map[string][]CommitRecord
	Error         error // returned from Branches and yielded by Commits when set
	CloseError    error // returned from Close when set
	Closed        bool
}

// NewMockSource creates a new MockSource with the given branches.
func NewMockSource(branches map[string][]CommitRecord) *MockSource {
	return &MockSource{BranchCommits: branches}
}

// Branches returns the sorted branch names.
func (m *MockSource) Branches() ([]string, error) {
	if m.Error != nil {
		return nil, m.Error
	}
	names := make([]string, 0, len(m.BranchCommits))
	for name := range m.BranchCommits {
		names = append(names, name)
	}
	sort.Strings(names)
	return names, nil
}

// Commits yields the predefined records of branch.
func (m *MockSource) Commits(_ context.Context, branch string) iter.Seq2[CommitRecord, error] {
	return func(yield func(CommitRecord, error) bool) {
		if m.Error != nil {
			yield(CommitRecord{}, m.Error)
			return
		}
		records, ok := m.BranchCommits[branch]
		if !ok {
			yield(CommitRecord{}, fmt.Errorf("unknown branch %q", branch))
			return
		}
		for _, c := range records {
			if !yield(c, nil) {
				return
			}
		}
	}
}

// Close marks the source as closed.
func (m *MockSource) Close() error {
	m.Closed = true
	return m.CloseError
}

// MockOpener returns an OpenFunc serving sources by path.
// Unknown paths fail with ErrInvalidRepository.
func MockOpener(sources map[string]*MockSource) OpenFunc {
	return func(_ context.Context, path string) (CommitSource, error) {
		src, ok := sources[path]
		if !ok {
			return nil, fmt.Errorf("%w: %s", ErrInvalidRepository, path)
		}
		return src, nil
	}
}
