package cli

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/go-git/go-git/v5/plumbing"
	"github.com/spf13/cobra"

	fserrors "github.com/theleagueof/fontship/internal/errors"
	"github.com/theleagueof/fontship/internal/fileutil"
	"github.com/theleagueof/fontship/internal/git"
	"github.com/theleagueof/fontship/internal/version"
)

type commitOptions struct {
	message string
	tree    string
	add     []string
}

func newCommitCmd(a *app) *cobra.Command {
	opts := &commitOptions{}
	cmd := &cobra.Command{
		Use:   "commit",
		Short: "Record a release step as a Fontship commit",
		Long: `Write a commit on top of HEAD that records an automated release step.

The commit message is prefixed with "[fontship]". The committer is the
identity configured in git; the author is Fontship with the committer's email.

Either pass the id of a tree that already exists in the repository with
--tree, or name files with --add to snapshot them on top of HEAD's tree.
The new commit id is printed on stdout.

Examples:
  fontship commit -m "Normalize version" --add sources/font.glyphs
  fontship commit -m "Build" --tree 4b825dc642cb6eb9a060e54bf8d69288fbee4904`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runCommit(cmd.Context(), cmd.OutOrStdout(), opts)
		},
	}

	cmd.Flags().StringVarP(&opts.message, "message", "m", "", "commit message (without the [fontship] prefix)")
	cmd.Flags().StringVar(&opts.tree, "tree", "", "id of an existing tree object to commit")
	cmd.Flags().StringSliceVarP(&opts.add, "add", "a", nil, "file to snapshot on top of HEAD (repeatable)")
	_ = cmd.MarkFlagRequired("message")
	cmd.MarkFlagsMutuallyExclusive("tree", "add")

	return cmd
}

func (a *app) runCommit(ctx context.Context, stdout io.Writer, opts *commitOptions) error {
	const op = "cli.commit"

	if strings.TrimSpace(opts.message) == "" {
		return fserrors.Validation(op, "commit message must not be empty")
	}
	scope, err := git.ParseScope(a.cfg.Commit.IdentityScope)
	if err != nil {
		return err
	}

	a.console.welcome(version.Get())
	a.console.header("commit-header")

	repo, err := git.Discover(a.cfg.Path)
	if err != nil {
		return err
	}

	var tree plumbing.Hash
	switch {
	case opts.tree != "":
		if !plumbing.IsHash(opts.tree) {
			return fserrors.Validation(op, fmt.Sprintf("%q is not an object id", opts.tree))
		}
		tree = plumbing.NewHash(opts.tree)
	case len(opts.add) > 0:
		wt, err := repo.Worktree()
		if err != nil {
			return fserrors.Wrap(err, fserrors.KindRepository, op, "repository has no work tree")
		}
		files, err := readFiles(wt.Filesystem.Root(), a.cfg.Path, opts.add)
		if err != nil {
			return err
		}
		base, err := git.HeadTree(repo)
		if err != nil {
			return err
		}
		if tree, err = git.WriteTree(repo, base, files); err != nil {
			return err
		}
	default:
		return fserrors.Localized("error-no-changes")
	}

	builder := git.NewBuilder(repo,
		git.WithAuthorName(a.cfg.Commit.AuthorName),
		git.WithScope(scope),
		git.WithLogger(a.logger),
	)
	hash, err := builder.Commit(ctx, tree, opts.message)
	if err != nil {
		return err
	}

	a.console.line("commit-done", hash.String()[:7])
	fmt.Fprintln(stdout, hash.String())
	a.console.outro()
	return nil
}

// readFiles reads paths (relative to base, or absolute) and keys their
// contents by slash separated path relative to the repository root.
func readFiles(root, base string, paths []string) (map[string][]byte, error) {
	const op = "cli.readFiles"

	absRoot, err := filepath.Abs(root)
	if err != nil {
		return nil, fserrors.Wrap(err, fserrors.KindConfig, op, "failed to resolve repository root")
	}

	files := make(map[string][]byte, len(paths))
	for _, p := range paths {
		if !filepath.IsAbs(p) {
			p = filepath.Join(base, p)
		}
		abs, err := filepath.Abs(p)
		if err != nil {
			return nil, fserrors.Wrap(err, fserrors.KindValidation, op, "failed to resolve "+p)
		}
		rel, err := filepath.Rel(absRoot, abs)
		if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
			return nil, fserrors.Validation(op, fmt.Sprintf("%s is outside the repository", p))
		}
		content, err := fileutil.ReadFileLimited(abs, fileutil.MaxSnapshotSize)
		if err != nil {
			return nil, fserrors.Wrap(err, fserrors.KindValidation, op, "failed to read "+p)
		}
		files[filepath.ToSlash(rel)] = content
	}
	return files, nil
}
