// Package gittest builds throwaway Git repositories for tests.
package gittest

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	gogit "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/object"
)

// Repo is a non-bare repository rooted in a test temp directory.
type Repo struct {
	Dir  string
	Repo *gogit.Repository

	tb      testing.TB
	wt      *gogit.Worktree
	commits int
}

// New initializes an empty repository in tb.TempDir().
func New(tb testing.TB) *Repo {
	tb.Helper()

	dir := tb.TempDir()
	repo, err := gogit.PlainInit(dir, false)
	if err != nil {
		tb.Fatalf("PlainInit: %v", err)
	}
	wt, err := repo.Worktree()
	if err != nil {
		tb.Fatalf("Worktree: %v", err)
	}
	return &Repo{Dir: dir, Repo: repo, tb: tb, wt: wt}
}

// Signature returns an author signature for name <email> at when.
func Signature(name, email string, when time.Time) object.Signature {
	return object.Signature{Name: name, Email: email, When: when}
}

// Commit records a change on the checked-out branch and returns its hash.
func (r *Repo) Commit(msg string, author object.Signature) string {
	r.tb.Helper()

	r.commits++
	rel := "file.txt"
	content := fmt.Sprintf("commit %d: %s at %s\n", r.commits, msg, author.When)
	if err := os.WriteFile(filepath.Join(r.Dir, rel), []byte(content), 0o644); err != nil {
		r.tb.Fatalf("WriteFile: %v", err)
	}
	if _, err := r.wt.Add(rel); err != nil {
		r.tb.Fatalf("Add: %v", err)
	}

	hash, err := r.wt.Commit(msg, &gogit.CommitOptions{
		Author:    &author,
		Committer: &author,
	})
	if err != nil {
		r.tb.Fatalf("Commit: %v", err)
	}
	return hash.String()
}

// Checkout switches to branch, creating it from HEAD when create is set.
func (r *Repo) Checkout(branch string, create bool) {
	r.tb.Helper()

	err := r.wt.Checkout(&gogit.CheckoutOptions{
		Branch: plumbing.NewBranchReferenceName(branch),
		Create: create,
	})
	if err != nil {
		r.tb.Fatalf("Checkout(%s): %v", branch, err)
	}
}

// Head returns the short name of the checked-out branch.
func (r *Repo) Head() string {
	r.tb.Helper()

	head, err := r.Repo.Head()
	if err != nil {
		r.tb.Fatalf("Head: %v", err)
	}
	return head.Name().Short()
}
