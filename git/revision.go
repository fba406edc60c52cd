package git

import (
	"errors"
	"fmt"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
)

const shortHashLength = 7

// HeadRevision returns the abbreviated hash of the commit checked out in the
// repository at root. A root that is not a repository, or a repository
// without commits, yields an empty string and no error.
func HeadRevision(root string) (string, error) {
	repository, err := git.PlainOpen(root)
	if errors.Is(err, git.ErrRepositoryNotExists) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("failed to open repository at '%v': %w", root, err)
	}

	head, err := repository.Head()
	if errors.Is(err, plumbing.ErrReferenceNotFound) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("failed to resolve HEAD at '%v': %w", root, err)
	}

	return head.Hash().String()[:shortHashLength], nil
}
