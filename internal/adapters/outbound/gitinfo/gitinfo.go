package gitinfo

import (
	"errors"
	"fmt"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
)

var (
	ErrNotRepository = errors.New("not inside a git work tree")
	ErrNoCommit      = errors.New("repository has no commits")
)

// Lookup implements domain.GitInfo with go-git; no git binary is needed.
type Lookup struct{}

func New() *Lookup {
	return &Lookup{}
}

// CommitHash returns the HEAD commit of the work tree containing dir. The
// catalog usually sits somewhere below the repository root, so parent
// directories are searched too.
func (Lookup) CommitHash(dir string) (string, error) {
	repo, err := git.PlainOpenWithOptions(dir, &git.PlainOpenOptions{DetectDotGit: true})
	if errors.Is(err, git.ErrRepositoryNotExists) {
		return "", fmt.Errorf("%s: %w", dir, ErrNotRepository)
	}
	if err != nil {
		return "", fmt.Errorf("opening git repo: %w", err)
	}

	head, err := repo.Head()
	if errors.Is(err, plumbing.ErrReferenceNotFound) {
		return "", ErrNoCommit
	}
	if err != nil {
		return "", fmt.Errorf("getting HEAD: %w", err)
	}

	return head.Hash().String(), nil
}
