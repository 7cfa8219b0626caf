// Package git provides the go-git backed repository operations Fontship
// needs: repository discovery, writing release commits and trees, and
// inspecting repository state.
package git

import (
	"errors"
	"fmt"
	"path/filepath"
	"time"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/config"

	fserrors "github.com/theleagueof/fontship/internal/errors"
)

// Clock provides the current time for commit signatures.
type Clock interface {
	Now() time.Time
}

// RealClock implements Clock using the system time.
type RealClock struct{}

// Now returns the current system time.
func (RealClock) Now() time.Time {
	return time.Now()
}

// Discover opens the repository containing path, walking up parent
// directories until a repository root is found.
func Discover(path string) (*git.Repository, error) {
	const op = "git.Discover"

	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, fserrors.Wrap(err, fserrors.KindConfig, op, "failed to get absolute path")
	}

	repo, err := git.PlainOpenWithOptions(absPath, &git.PlainOpenOptions{
		DetectDotGit:          true,
		EnableDotGitCommonDir: true,
	})
	if err != nil {
		return nil, fserrors.Wrap(err, fserrors.KindRepository, op, fmt.Sprintf("no repository at or above %s", absPath))
	}
	return repo, nil
}

// ParseScope maps a configuration value to the git config scope used to
// resolve the committer identity. "system" merges system, global and local
// configuration the way git does; "local" only reads the repository's own
// config.
func ParseScope(s string) (config.Scope, error) {
	switch s {
	case "", "system":
		return config.SystemScope, nil
	case "global":
		return config.GlobalScope, nil
	case "local":
		return config.LocalScope, nil
	default:
		return config.LocalScope, fserrors.Validation("git.ParseScope", fmt.Sprintf("unknown config scope %q", s))
	}
}

var (
	errNoName  = errors.New("user.name is not set")
	errNoEmail = errors.New("user.email is not set")
)

// identity reads user.name and user.email from the repository configuration.
func identity(repo *git.Repository, scope config.Scope) (name, email string, err error) {
	cfg, err := repo.ConfigScoped(scope)
	if err != nil {
		return "", "", err
	}
	if cfg.User.Name == "" {
		return "", "", errNoName
	}
	if cfg.User.Email == "" {
		return "", "", errNoEmail
	}
	return cfg.User.Name, cfg.User.Email, nil
}
