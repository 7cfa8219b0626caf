package git

import (
	"context"
	"errors"
	"io"
	"sync"

	"github.com/charmbracelet/log"
	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/config"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/object"
	"github.com/go-git/go-git/v5/storage"

	fserrors "github.com/theleagueof/fontship/internal/errors"
)

// MessagePrefix marks every commit written by Fontship.
const MessagePrefix = "[fontship] "

// DefaultAuthorName is the author recorded on release commits.
const DefaultAuthorName = "Fontship"

// BuilderConfig configures a Builder.
type BuilderConfig struct {
	AuthorName string
	Scope      config.Scope
	Clock      Clock
	Logger     *log.Logger
}

// DefaultBuilderConfig returns the default builder configuration.
func DefaultBuilderConfig() BuilderConfig {
	return BuilderConfig{
		AuthorName: DefaultAuthorName,
		Scope:      config.SystemScope,
		Clock:      RealClock{},
	}
}

// BuilderOption configures a Builder.
type BuilderOption func(*BuilderConfig)

// WithAuthorName overrides the author name of release commits.
func WithAuthorName(name string) BuilderOption {
	return func(c *BuilderConfig) {
		if name != "" {
			c.AuthorName = name
		}
	}
}

// WithScope selects the git config scope the committer identity is read from.
func WithScope(scope config.Scope) BuilderOption {
	return func(c *BuilderConfig) {
		c.Scope = scope
	}
}

// WithClock sets the clock used for signature timestamps.
func WithClock(clock Clock) BuilderOption {
	return func(c *BuilderConfig) {
		c.Clock = clock
	}
}

// WithLogger sets the logger.
func WithLogger(logger *log.Logger) BuilderOption {
	return func(c *BuilderConfig) {
		c.Logger = logger
	}
}

// Builder writes release commits onto HEAD of a repository.
//
// Commits made through one Builder are serialized. Other writers to the same
// repository are detected when the branch is advanced, not prevented.
type Builder struct {
	cfg  BuilderConfig
	repo *git.Repository
	mu   sync.Mutex
}

// NewBuilder creates a Builder for repo.
func NewBuilder(repo *git.Repository, opts ...BuilderOption) *Builder {
	cfg := DefaultBuilderConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.Logger == nil {
		cfg.Logger = log.New(io.Discard)
	}
	return &Builder{cfg: cfg, repo: repo}
}

// Commit records tree as a new commit on top of HEAD and advances HEAD (or
// the branch it points at) to it. The message is prefixed with
// MessagePrefix. The committer is the identity configured in the
// repository; the author is the configured author name with the
// committer's email.
//
// On failure HEAD is left untouched and the error kind tells which
// precondition failed. Nothing is retried.
func (b *Builder) Commit(ctx context.Context, tree plumbing.Hash, message string) (plumbing.Hash, error) {
	const op = "git.Commit"

	b.mu.Lock()
	defer b.mu.Unlock()

	if err := ctx.Err(); err != nil {
		return plumbing.ZeroHash, fserrors.Wrap(err, fserrors.KindInternal, op, "canceled before commit")
	}

	name, email, err := identity(b.repo, b.cfg.Scope)
	if err != nil {
		return plumbing.ZeroHash, fserrors.Wrap(err, fserrors.KindIdentity, op, "failed to resolve committer identity")
	}
	committer := object.Signature{Name: name, Email: email, When: b.cfg.Clock.Now()}
	author := object.Signature{Name: b.cfg.AuthorName, Email: email, When: b.cfg.Clock.Now()}

	refName, parent, err := b.head()
	if err != nil {
		return plumbing.ZeroHash, fserrors.Wrap(err, fserrors.KindHead, op, "failed to resolve HEAD commit")
	}

	treeObj, err := b.repo.TreeObject(tree)
	if err != nil {
		return plumbing.ZeroHash, fserrors.Wrapf(err, fserrors.KindTree, op, "tree %s not found", tree)
	}

	commit := &object.Commit{
		Author:       author,
		Committer:    committer,
		Message:      MessagePrefix + message,
		TreeHash:     treeObj.Hash,
		ParentHashes: []plumbing.Hash{parent},
	}

	obj := b.repo.Storer.NewEncodedObject()
	if err := commit.Encode(obj); err != nil {
		return plumbing.ZeroHash, fserrors.IOWrap(err, op, "failed to encode commit")
	}
	hash, err := b.repo.Storer.SetEncodedObject(obj)
	if err != nil {
		return plumbing.ZeroHash, fserrors.IOWrap(err, op, "failed to write commit object")
	}

	if err := advance(b.repo.Storer, refName, parent, hash); err != nil {
		if errors.Is(err, storage.ErrReferenceHasChanged) {
			return plumbing.ZeroHash, fserrors.Wrapf(err, fserrors.KindStaleParent, op, "%s moved away from %s", refName, parent)
		}
		return plumbing.ZeroHash, fserrors.IOWrap(err, op, "failed to update "+refName.String())
	}

	b.cfg.Logger.Debug("release commit written",
		"commit", hash.String(),
		"parent", parent.String(),
		"tree", tree.String(),
		"ref", refName.String(),
	)
	return hash, nil
}

// head returns the reference that HEAD advances (the checked out branch, or
// HEAD itself when detached) and the commit it points at.
func (b *Builder) head() (plumbing.ReferenceName, plumbing.Hash, error) {
	ref, err := b.repo.Storer.Reference(plumbing.HEAD)
	if err != nil {
		return "", plumbing.ZeroHash, err
	}

	name := plumbing.HEAD
	if ref.Type() == plumbing.SymbolicReference {
		name = ref.Target()
		ref, err = b.repo.Storer.Reference(name)
		if err != nil {
			// unborn branch
			return "", plumbing.ZeroHash, err
		}
	}

	c, err := b.repo.CommitObject(ref.Hash())
	if err != nil {
		return "", plumbing.ZeroHash, err
	}
	return name, c.Hash, nil
}

type referenceStorer interface {
	Reference(plumbing.ReferenceName) (*plumbing.Reference, error)
	CheckAndSetReference(newRef, oldRef *plumbing.Reference) error
}

// advance moves name from parent to next. It fails with
// storage.ErrReferenceHasChanged if name no longer points at parent; any
// other error from the ref store is returned as is.
func advance(s referenceStorer, name plumbing.ReferenceName, parent, next plumbing.Hash) error {
	cur, err := s.Reference(name)
	if err != nil {
		return err
	}
	if cur.Hash() != parent {
		return storage.ErrReferenceHasChanged
	}
	return s.CheckAndSetReference(plumbing.NewHashReference(name, next), plumbing.NewHashReference(name, parent))
}
