package cli

import (
	"github.com/spf13/cobra"

	"github.com/theleagueof/fontship/internal/git"
	"github.com/theleagueof/fontship/internal/normalize"
	"github.com/theleagueof/fontship/internal/version"
)

func newStatusCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show the status of the font project",
		Long: `Inspect the project repository and report what Fontship knows about it.

The canonical project name and font version are always shown. Individual
checks (repository, commits, committer identity, clean tree) are shown with
--verbose or --debug.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runStatus()
		},
	}
}

func (a *app) runStatus() error {
	scope, err := git.ParseScope(a.cfg.Commit.IdentityScope)
	if err != nil {
		return err
	}

	a.console.welcome(version.Get())
	a.console.header("status-header")

	st := git.Inspect(a.cfg.Path, scope)
	a.console.check("status-is-repo", st.IsRepo)
	a.console.check("status-has-head", st.HasHead)
	a.console.check("status-identity", st.HasIdentity)
	a.console.check("status-clean", st.Clean)

	if st.Branch != "" {
		a.console.line("status-branch", st.Branch)
	}
	a.console.line("status-project", projectName(a.cfg.Project.Name, st))
	a.console.line("status-version", fontVersion(a.cfg.Project.Version, st))

	a.logger.Debug("repository status",
		"root", st.Root,
		"head", st.Head,
		"tag", st.Tag,
		"remote", st.Remote,
	)

	a.console.outro()
	return nil
}

// projectName prefers the configured name and falls back to the
// repository directory name.
func projectName(configured string, st git.Status) string {
	name := configured
	if name == "" {
		name = st.Name()
	}
	return normalize.ProjectName(name)
}

// fontVersion prefers the configured version and falls back to the tag at
// HEAD.
func fontVersion(configured string, st git.Status) string {
	v := configured
	if v == "" {
		v = st.Tag
	}
	return normalize.FontVersion(v)
}
