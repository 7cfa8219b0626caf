package git

import (
	"testing"

	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/filemode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	fserrors "github.com/theleagueof/fontship/internal/errors"
)

func TestWriteTree_OverBase(t *testing.T) {
	h := newTestRepo(t)
	h.makeCommit("initial")
	base, err := HeadTree(h.repo)
	require.NoError(t, err)

	hash, err := WriteTree(h.repo, base, map[string][]byte{
		"dist/otf/Font-Regular.otf": []byte("regular"),
		"dist/otf/Font-Bold.otf":    []byte("bold"),
		"dist/README":               []byte("readme"),
		"test.txt":                  []byte("replaced"),
	})
	require.NoError(t, err)

	tree, err := h.repo.TreeObject(hash)
	require.NoError(t, err)

	for path, want := range map[string]string{
		"dist/otf/Font-Regular.otf": "regular",
		"dist/otf/Font-Bold.otf":    "bold",
		"dist/README":               "readme",
		"test.txt":                  "replaced",
	} {
		f, err := tree.File(path)
		require.NoError(t, err, path)
		got, err := f.Contents()
		require.NoError(t, err)
		assert.Equal(t, want, got, path)
	}

	names := make([]string, 0, len(tree.Entries))
	for _, e := range tree.Entries {
		names = append(names, e.Name)
	}
	assert.Equal(t, []string{"dist", "test.txt"}, names)
	assert.Equal(t, filemode.Dir, tree.Entries[0].Mode)
}

func TestWriteTree_KeepsExistingSubtreeEntries(t *testing.T) {
	h := newTestRepo(t)

	first, err := WriteTree(h.repo, plumbing.ZeroHash, map[string][]byte{"a/one": []byte("1")})
	require.NoError(t, err)
	second, err := WriteTree(h.repo, first, map[string][]byte{"a/two": []byte("2")})
	require.NoError(t, err)

	tree, err := h.repo.TreeObject(second)
	require.NoError(t, err)
	_, err = tree.File("a/one")
	assert.NoError(t, err)
	_, err = tree.File("a/two")
	assert.NoError(t, err)
}

func TestWriteTree_Deterministic(t *testing.T) {
	h := newTestRepo(t)
	files := map[string][]byte{"b": []byte("b"), "a/c": []byte("c"), "a.txt": []byte("a")}

	first, err := WriteTree(h.repo, plumbing.ZeroHash, files)
	require.NoError(t, err)
	second, err := WriteTree(h.repo, plumbing.ZeroHash, files)
	require.NoError(t, err)
	assert.Equal(t, first, second)

	// "a.txt" sorts before "a/" in git order.
	tree, err := h.repo.TreeObject(first)
	require.NoError(t, err)
	require.Len(t, tree.Entries, 3)
	assert.Equal(t, "a.txt", tree.Entries[0].Name)
	assert.Equal(t, "a", tree.Entries[1].Name)
	assert.Equal(t, "b", tree.Entries[2].Name)
}

func TestWriteTree_EmptyTree(t *testing.T) {
	h := newTestRepo(t)
	hash, err := WriteTree(h.repo, plumbing.ZeroHash, nil)
	require.NoError(t, err)
	assert.Equal(t, "4b825dc642cb6eb9a060e54bf8d69288fbee4904", hash.String())
}

func TestWriteTree_Errors(t *testing.T) {
	h := newTestRepo(t)

	tests := []struct {
		name     string
		base     plumbing.Hash
		files    map[string][]byte
		wantKind fserrors.Kind
	}{
		{"absolute path", plumbing.ZeroHash, map[string][]byte{"/etc/passwd": nil}, fserrors.KindValidation},
		{"parent escape", plumbing.ZeroHash, map[string][]byte{"../x": nil}, fserrors.KindValidation},
		{"unclean path", plumbing.ZeroHash, map[string][]byte{"a//b": nil}, fserrors.KindValidation},
		{"git dir", plumbing.ZeroHash, map[string][]byte{".git/config": nil}, fserrors.KindValidation},
		{"empty path", plumbing.ZeroHash, map[string][]byte{"": nil}, fserrors.KindValidation},
		{"file and dir", plumbing.ZeroHash, map[string][]byte{"a": nil, "a/b": nil}, fserrors.KindValidation},
		{"missing base", plumbing.NewHash("0123456789abcdef0123456789abcdef01234567"), map[string][]byte{"a": nil}, fserrors.KindTree},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := WriteTree(h.repo, tt.base, tt.files)
			require.Error(t, err)
			assert.Equal(t, tt.wantKind, fserrors.GetKind(err), "got %v", err)
		})
	}
}
