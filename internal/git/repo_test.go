package git

import (
	"os"
	"path/filepath"
	"regexp"
	"testing"

	"github.com/stretchr/testify/require"

	"headsup.dev/headsup/internal/errors"
	"headsup.dev/headsup/testhelpers"
)

func TestRepoRoot(t *testing.T) {
	t.Parallel()

	repo, err := testhelpers.NewGitRepo(t.TempDir())
	require.NoError(t, err)
	require.NoError(t, repo.CreateChangeAndCommit("initial", ""))

	nested := filepath.Join(repo.Dir, "a", "b")
	require.NoError(t, os.MkdirAll(nested, 0750))

	root, err := RepoRoot(nested)
	require.NoError(t, err)

	// macOS tempdirs resolve through /private; compare resolved paths.
	expected, err := filepath.EvalSymlinks(repo.Dir)
	require.NoError(t, err)
	actual, err := filepath.EvalSymlinks(root)
	require.NoError(t, err)
	require.Equal(t, expected, actual)
}

func TestRepoRootNotARepository(t *testing.T) {
	t.Parallel()

	_, err := RepoRoot(t.TempDir())
	require.Error(t, err)
	require.ErrorIs(t, err, errors.ErrNotARepository)
}

func TestHeadHash(t *testing.T) {
	t.Parallel()

	repo, err := testhelpers.NewGitRepo(t.TempDir())
	require.NoError(t, err)
	require.NoError(t, repo.CreateChangeAndCommit("initial", ""))

	sha, err := repo.GetCurrentSHA()
	require.NoError(t, err)

	hash, err := HeadHash(repo.Dir)
	require.NoError(t, err)
	require.Equal(t, sha, hash)
	require.Regexp(t, regexp.MustCompile("^[0-9a-f]{40}$"), hash)
}
