package git

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/object"
	"github.com/stretchr/testify/require"
)

// testRepoHelper provides helper functions for creating test git repositories.
type testRepoHelper struct {
	t       *testing.T
	repoDir string
	repo    *git.Repository
}

// newTestRepo creates a new test repository in a temporary directory.
func newTestRepo(t *testing.T) *testRepoHelper {
	t.Helper()

	repoDir := t.TempDir()
	repo, err := git.PlainInit(repoDir, false)
	require.NoError(t, err, "failed to init test repo")

	return &testRepoHelper{
		t:       t,
		repoDir: repoDir,
		repo:    repo,
	}
}

// setIdentity writes user.name and user.email to the repository config.
func (h *testRepoHelper) setIdentity(name, email string) {
	h.t.Helper()

	cfg, err := h.repo.Config()
	require.NoError(h.t, err)
	cfg.User.Name = name
	cfg.User.Email = email
	require.NoError(h.t, h.repo.SetConfig(cfg))
}

// makeCommit creates a test commit in the repository.
func (h *testRepoHelper) makeCommit(message string) plumbing.Hash {
	h.t.Helper()

	filename := filepath.Join(h.repoDir, "test.txt")
	require.NoError(h.t, os.WriteFile(filename, []byte(message), 0o644))

	worktree, err := h.repo.Worktree()
	require.NoError(h.t, err)
	_, err = worktree.Add("test.txt")
	require.NoError(h.t, err)

	hash, err := worktree.Commit(message, &git.CommitOptions{
		Author: &object.Signature{
			Name:  "Test Author",
			Email: "test@example.com",
			When:  time.Now(),
		},
	})
	require.NoError(h.t, err, "failed to commit")
	return hash
}

func (h *testRepoHelper) head() plumbing.Hash {
	h.t.Helper()

	ref, err := h.repo.Head()
	require.NoError(h.t, err)
	return ref.Hash()
}

// fixedClock returns the same instant on every call.
type fixedClock struct{ t time.Time }

func (c fixedClock) Now() time.Time { return c.t }
