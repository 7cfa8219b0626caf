package git

import (
	"path/filepath"
	"time"

	"github.com/Masterminds/semver/v3"
	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/config"
	"github.com/go-git/go-git/v5/plumbing"

	fserrors "github.com/theleagueof/fontship/internal/errors"
)

// Status summarizes the state of a project repository.
type Status struct {
	Root        string
	IsRepo      bool
	HasHead     bool
	HasIdentity bool
	Clean       bool
	Branch      string
	Head        string
	Tag         string
	Remote      string
}

// Name returns the base name of the repository root.
func (s Status) Name() string {
	if s.Root == "" {
		return ""
	}
	return filepath.Base(s.Root)
}

// Inspect reports the state of the repository containing path. It never
// fails: checks that cannot be performed are reported as false.
func Inspect(path string, scope config.Scope) Status {
	repo, err := Discover(path)
	if err != nil {
		return Status{}
	}
	st := Status{IsRepo: true}

	wt, err := repo.Worktree()
	if err == nil {
		st.Root = wt.Filesystem.Root()
		if ws, err := wt.Status(); err == nil {
			st.Clean = ws.IsClean()
		}
	}

	if _, _, err := identity(repo, scope); err == nil {
		st.HasIdentity = true
	}

	if head, err := repo.Head(); err == nil {
		if _, err := repo.CommitObject(head.Hash()); err == nil {
			st.HasHead = true
		}
		st.Head = head.Hash().String()
		if head.Name().IsBranch() {
			st.Branch = head.Name().Short()
		}
		st.Tag = tagAt(repo, head.Hash())
	}

	if remote, err := repo.Remote("origin"); err == nil && len(remote.Config().URLs) > 0 {
		st.Remote = fserrors.RedactSensitive(remote.Config().URLs[0])
	}
	return st
}

// tagAt returns the name of a tag pointing at hash, if any. Annotated tags
// are peeled to their target commit. When several tags match, annotated tags
// win over lightweight ones, newer annotated tags over older ones, and the
// higher version over the lower one.
func tagAt(repo *git.Repository, hash plumbing.Hash) string {
	iter, err := repo.Tags()
	if err != nil {
		return ""
	}
	defer iter.Close()

	var best *tagCandidate
	_ = iter.ForEach(func(ref *plumbing.Reference) error {
		c := tagCandidate{name: ref.Name().Short()}
		target := ref.Hash()
		if tag, err := repo.TagObject(target); err == nil {
			target = tag.Target
			c.annotated = true
			c.when = tag.Tagger.When
		}
		if target == hash && (best == nil || c.preferredOver(*best)) {
			best = &c
		}
		return nil
	})
	if best == nil {
		return ""
	}
	return best.name
}

type tagCandidate struct {
	name      string
	annotated bool
	when      time.Time
}

func (c tagCandidate) preferredOver(o tagCandidate) bool {
	if c.annotated != o.annotated {
		return c.annotated
	}
	if !c.when.Equal(o.when) {
		return c.when.After(o.when)
	}
	cv, cerr := semver.NewVersion(c.name)
	ov, oerr := semver.NewVersion(o.name)
	if cerr == nil && oerr == nil && !cv.Equal(ov) {
		return cv.GreaterThan(ov)
	}
	return c.name > o.name
}
