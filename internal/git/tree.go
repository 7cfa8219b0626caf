package git

import (
	"fmt"
	"path"
	"sort"
	"strings"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/filemode"
	"github.com/go-git/go-git/v5/plumbing/object"
	"github.com/go-git/go-git/v5/plumbing/storer"

	fserrors "github.com/theleagueof/fontship/internal/errors"
)

// HeadTree returns the tree of the commit HEAD points at.
func HeadTree(repo *git.Repository) (plumbing.Hash, error) {
	const op = "git.HeadTree"

	head, err := repo.Head()
	if err != nil {
		return plumbing.ZeroHash, fserrors.Wrap(err, fserrors.KindHead, op, "failed to resolve HEAD")
	}
	c, err := repo.CommitObject(head.Hash())
	if err != nil {
		return plumbing.ZeroHash, fserrors.Wrap(err, fserrors.KindHead, op, "HEAD is not a commit")
	}
	return c.TreeHash, nil
}

// WriteTree writes files (slash separated paths relative to the repository
// root, mapped to their contents) on top of the tree base and returns the
// id of the resulting root tree. A zero base starts from an empty tree.
// Existing entries not named in files are kept. Nothing outside the object
// store is touched.
func WriteTree(repo *git.Repository, base plumbing.Hash, files map[string][]byte) (plumbing.Hash, error) {
	const op = "git.WriteTree"

	root := newDirNode()
	for p, content := range files {
		parts, err := splitRepoPath(p)
		if err != nil {
			return plumbing.ZeroHash, fserrors.Wrap(err, fserrors.KindValidation, op, "invalid path")
		}
		if err := root.insert(parts, content); err != nil {
			return plumbing.ZeroHash, fserrors.Wrap(err, fserrors.KindValidation, op, "conflicting paths")
		}
	}

	var baseTree *object.Tree
	if !base.IsZero() {
		t, err := repo.TreeObject(base)
		if err != nil {
			return plumbing.ZeroHash, fserrors.Wrapf(err, fserrors.KindTree, op, "tree %s not found", base)
		}
		baseTree = t
	}

	w := &treeWriter{repo: repo, s: repo.Storer}
	hash, err := w.write(baseTree, root)
	if err != nil {
		return plumbing.ZeroHash, err
	}
	return hash, nil
}

type dirNode struct {
	files map[string][]byte
	dirs  map[string]*dirNode
}

func newDirNode() *dirNode {
	return &dirNode{files: map[string][]byte{}, dirs: map[string]*dirNode{}}
}

func (d *dirNode) insert(parts []string, content []byte) error {
	name := parts[0]
	if len(parts) == 1 {
		if _, ok := d.dirs[name]; ok {
			return fmt.Errorf("%s is both a file and a directory", name)
		}
		d.files[name] = content
		return nil
	}
	if _, ok := d.files[name]; ok {
		return fmt.Errorf("%s is both a file and a directory", name)
	}
	sub, ok := d.dirs[name]
	if !ok {
		sub = newDirNode()
		d.dirs[name] = sub
	}
	return sub.insert(parts[1:], content)
}

func splitRepoPath(p string) ([]string, error) {
	if p == "" || strings.HasPrefix(p, "/") || path.Clean(p) != p {
		return nil, fmt.Errorf("path %q must be relative and clean", p)
	}
	parts := strings.Split(p, "/")
	for _, part := range parts {
		if part == "." || part == ".." || part == ".git" {
			return nil, fmt.Errorf("path %q has a reserved component", p)
		}
	}
	return parts, nil
}

type treeWriter struct {
	repo *git.Repository
	s    storer.EncodedObjectStorer
}

func (w *treeWriter) write(base *object.Tree, node *dirNode) (plumbing.Hash, error) {
	const op = "git.WriteTree"

	entries := map[string]object.TreeEntry{}
	if base != nil {
		for _, e := range base.Entries {
			entries[e.Name] = e
		}
	}

	for name, content := range node.files {
		hash, err := w.writeBlob(content)
		if err != nil {
			return plumbing.ZeroHash, fserrors.IOWrap(err, op, "failed to write blob "+name)
		}
		entries[name] = object.TreeEntry{Name: name, Mode: filemode.Regular, Hash: hash}
	}

	for name, sub := range node.dirs {
		var subBase *object.Tree
		if e, ok := entries[name]; ok && e.Mode == filemode.Dir {
			t, err := w.repo.TreeObject(e.Hash)
			if err != nil {
				return plumbing.ZeroHash, fserrors.Wrapf(err, fserrors.KindTree, op, "subtree %s not found", name)
			}
			subBase = t
		}
		hash, err := w.write(subBase, sub)
		if err != nil {
			return plumbing.ZeroHash, err
		}
		entries[name] = object.TreeEntry{Name: name, Mode: filemode.Dir, Hash: hash}
	}

	tree := &object.Tree{Entries: make([]object.TreeEntry, 0, len(entries))}
	for _, e := range entries {
		tree.Entries = append(tree.Entries, e)
	}
	// Git orders entries bytewise, comparing directory names as if they
	// ended in "/".
	sort.Slice(tree.Entries, func(i, j int) bool {
		return sortKey(tree.Entries[i]) < sortKey(tree.Entries[j])
	})

	obj := w.s.NewEncodedObject()
	if err := tree.Encode(obj); err != nil {
		return plumbing.ZeroHash, fserrors.IOWrap(err, op, "failed to encode tree")
	}
	hash, err := w.s.SetEncodedObject(obj)
	if err != nil {
		return plumbing.ZeroHash, fserrors.IOWrap(err, op, "failed to write tree")
	}
	return hash, nil
}

func (w *treeWriter) writeBlob(content []byte) (plumbing.Hash, error) {
	obj := w.s.NewEncodedObject()
	obj.SetType(plumbing.BlobObject)
	obj.SetSize(int64(len(content)))

	wr, err := obj.Writer()
	if err != nil {
		return plumbing.ZeroHash, err
	}
	if _, err := wr.Write(content); err != nil {
		wr.Close()
		return plumbing.ZeroHash, err
	}
	if err := wr.Close(); err != nil {
		return plumbing.ZeroHash, err
	}
	return w.s.SetEncodedObject(obj)
}

func sortKey(e object.TreeEntry) string {
	if e.Mode == filemode.Dir {
		return e.Name + "/"
	}
	return e.Name
}
