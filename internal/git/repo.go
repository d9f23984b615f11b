// Package git provides repository access through go-git for operations that
// need full ref resolution, such as repository root discovery and resolving
// HEAD through packed refs.
package git

import (
	"fmt"

	gogit "github.com/go-git/go-git/v5"

	headsuperrors "headsup.dev/headsup/internal/errors"
)

// RepoRoot returns the root directory of the git repository containing path.
func RepoRoot(path string) (string, error) {
	repo, err := gogit.PlainOpenWithOptions(path, &gogit.PlainOpenOptions{
		DetectDotGit: true,
	})
	if err != nil {
		return "", headsuperrors.NewNotARepositoryError(path, err)
	}

	worktree, err := repo.Worktree()
	if err != nil {
		return "", fmt.Errorf("failed to get worktree: %w", err)
	}

	return worktree.Filesystem.Root(), nil
}

// HeadHash returns the fully resolved HEAD commit hash for the repository
// containing path. Unlike reading .git/HEAD directly, this resolves symbolic
// references and packed refs.
func HeadHash(path string) (string, error) {
	repo, err := gogit.PlainOpenWithOptions(path, &gogit.PlainOpenOptions{
		DetectDotGit: true,
	})
	if err != nil {
		return "", headsuperrors.NewNotARepositoryError(path, err)
	}

	head, err := repo.Head()
	if err != nil {
		return "", fmt.Errorf("failed to resolve HEAD: %w", err)
	}

	return head.Hash().String(), nil
}
