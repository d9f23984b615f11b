package gitdir

import (
	"os"
	"path/filepath"
	"strings"
)

// Branch returns the current branch name (or detached-HEAD marker) for the
// repository containing path, walking parent directories until a .git entry
// is found. The second return value is false when no branch information is
// available: empty path, no repository in the ancestor chain, or unreadable
// or unrecognized HEAD contents.
//
// Branch only reads the filesystem; it never creates, writes, or deletes
// anything, and it never returns an error. It is safe to call from multiple
// goroutines.
func Branch(path string) (string, bool) {
	if path == "" {
		return "", false
	}

	dir := path
	for {
		gitPath := filepath.Join(dir, ".git")

		if info, err := os.Stat(gitPath); err == nil {
			if info.IsDir() {
				// A .git directory with an unreadable HEAD is a malformed
				// repository; do not consult ancestors.
				contents, err := os.ReadFile(filepath.Join(gitPath, "HEAD"))
				if err != nil {
					return "", false
				}
				return ParseHead(string(contents))
			}

			// .git as a regular file marks a linked worktree pointing at
			// the real git directory. A malformed marker does not end the
			// walk; the search continues upward.
			if head, ok := worktreeHead(gitPath); ok {
				return ParseHead(head)
			}
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", false
		}
		dir = parent
	}
}

// worktreeHead reads a "gitdir: <path>" marker file and returns the raw
// contents of the HEAD file it points at.
func worktreeHead(markerPath string) (string, bool) {
	contents, err := os.ReadFile(markerPath)
	if err != nil {
		return "", false
	}

	gitDir, ok := strings.CutPrefix(string(contents), "gitdir: ")
	if !ok {
		return "", false
	}
	gitDir = strings.TrimSpace(gitDir)

	head, err := os.ReadFile(filepath.Join(gitDir, "HEAD"))
	if err != nil {
		return "", false
	}
	return string(head), true
}
