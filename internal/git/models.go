package git

import (
	"errors"
	"strings"
	"time"

	"github.com/masmgr/commitheat/internal/calendar"
)

// ErrInvalidRepository is returned when a path does not hold a readable Git repository.
var ErrInvalidRepository = errors.New("invalid git repository")

// CommitRecord represents the minimal information the heatmap needs about a commit.
type CommitRecord struct {
	ID     string
	Author AuthorInfo
	When   time.Time // authored timestamp, in the author's recorded offset
}

// Date returns the authored calendar date.
func (c CommitRecord) Date() calendar.Date {
	return calendar.DateOf(c.When)
}

// AuthorInfo represents commit author information.
type AuthorInfo struct {
	Name  string
	Email string
}

// Matches reports whether identity exactly equals the author's email or name.
func (a AuthorInfo) Matches(identity string) bool {
	return identity == a.Email || identity == a.Name
}

func (a AuthorInfo) String() string {
	return a.Name + " <" + a.Email + ">"
}

// Backend selects the implementation used to read history.
type Backend string

const (
	BackendGoGit  Backend = "go-git"
	BackendGitCLI Backend = "git-cli"
)

// ParseBackend parses a backend name. The empty string selects go-git.
func ParseBackend(s string) (Backend, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "go-git", "gogit":
		return BackendGoGit, nil
	case "git-cli", "cli", "git":
		return BackendGitCLI, nil
	default:
		return "", errors.New("unknown source backend " + s + " (expected go-git or git-cli)")
	}
}
