package git

import (
	"context"
	"fmt"
	"iter"
)

// CommitSource defines the interface for reading commit history from one repository.
// This abstraction allows for easier testing and alternative implementations.
type CommitSource interface {
	// Branches returns the names of all local branches.
	Branches() ([]string, error)
	// Commits yields every commit reachable from branch, each at most once.
	Commits(ctx context.Context, branch string) iter.Seq2[CommitRecord, error]
	// Close releases the repository handle.
	Close() error
}

// OpenFunc opens the repository at path.
type OpenFunc func(ctx context.Context, path string) (CommitSource, error)

// Opener returns the OpenFunc for the given backend.
func Opener(backend Backend) (OpenFunc, error) {
	switch backend {
	case BackendGoGit, "":
		return func(_ context.Context, path string) (CommitSource, error) { return NewHistoryReader(path) }, nil
	case BackendGitCLI:
		return func(ctx context.Context, path string) (CommitSource, error) { return NewCLIReader(ctx, path) }, nil
	default:
		return nil, fmt.Errorf("unknown source backend %q", backend)
	}
}

// Compile-time interface conformance checks.
var (
	_ CommitSource = (*HistoryReader)(nil)
	_ CommitSource = (*CLIReader)(nil)
	_ CommitSource = (*MockSource)(nil)
)
