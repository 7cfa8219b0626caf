package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"golang.org/x/text/language"

	fserrors "github.com/theleagueof/fontship/internal/errors"
	"github.com/theleagueof/fontship/internal/normalize"
)

// EnvPrefix is the prefix for environment variable overrides, e.g.
// FONTSHIP_PATH or FONTSHIP_COMMIT_AUTHOR_NAME.
const EnvPrefix = "FONTSHIP"

// Loader handles configuration loading and merging.
type Loader struct {
	v           *viper.Viper
	configPath  string
	searchPaths []string
}

// NewLoader creates a new configuration loader.
func NewLoader() *Loader {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	return &Loader{
		v:           v,
		searchPaths: []string{"."},
	}
}

// WithConfigPath sets an explicit config file path.
func (l *Loader) WithConfigPath(path string) *Loader {
	l.configPath = path
	return l
}

// WithSearchPaths adds directories to search for config files.
func (l *Loader) WithSearchPaths(paths ...string) *Loader {
	l.searchPaths = append(l.searchPaths, paths...)
	return l
}

// BindFlags binds command line flags to configuration keys. Flags that were
// not set on the command line do not override file or environment values.
func (l *Loader) BindFlags(flags *pflag.FlagSet, keys map[string]string) error {
	const op = "config.BindFlags"

	for key, name := range keys {
		f := flags.Lookup(name)
		if f == nil {
			return fserrors.Config(op, fmt.Sprintf("unknown flag %q", name))
		}
		if err := l.v.BindPFlag(key, f); err != nil {
			return fserrors.ConfigWrap(err, op, fmt.Sprintf("failed to bind flag %q", name))
		}
	}
	return nil
}

// Load loads the configuration.
func (l *Loader) Load() (*Config, error) {
	const op = "config.Load"

	l.setDefaults()

	if err := l.loadConfigFile(); err != nil {
		return nil, fserrors.ConfigWrap(err, op, "failed to load config file")
	}

	cfg := &Config{}
	if err := l.v.Unmarshal(cfg); err != nil {
		return nil, fserrors.ConfigWrap(err, op, "failed to unmarshal config")
	}

	return cfg, nil
}

// setDefaults sets default values using Viper.
func (l *Loader) setDefaults() {
	defaults := DefaultConfig()

	l.v.SetDefault("path", defaults.Path)
	l.v.SetDefault("language", EnvLocale())
	l.v.SetDefault("debug", defaults.Debug)
	l.v.SetDefault("verbose", defaults.Verbose)
	l.v.SetDefault("quiet", defaults.Quiet)

	l.v.SetDefault("project.name", defaults.Project.Name)
	l.v.SetDefault("project.version", defaults.Project.Version)

	l.v.SetDefault("commit.author_name", defaults.Commit.AuthorName)
	l.v.SetDefault("commit.identity_scope", defaults.Commit.IdentityScope)

	l.v.SetDefault("output.json", defaults.Output.JSON)
	l.v.SetDefault("output.color", defaults.Output.Color)
	l.v.SetDefault("output.log_level", defaults.Output.LogLevel)
}

// EnvLocale picks the locale from the environment the way the C library
// does: the first of LC_ALL, LC_MESSAGES and LANG that is set wins. A value
// that does not name a language, such as POSIX, yields
// normalize.DefaultLocale.
func EnvLocale() string {
	for _, env := range []string{"LC_ALL", "LC_MESSAGES", "LANG"} {
		v := os.Getenv(env)
		if v == "" {
			continue
		}
		if _, err := language.ParseBase(normalize.Language(v)); err != nil {
			return normalize.DefaultLocale
		}
		return v
	}
	return normalize.DefaultLocale
}

// loadConfigFile loads the configuration file, if any.
func (l *Loader) loadConfigFile() error {
	if l.configPath != "" {
		l.v.SetConfigFile(l.configPath)
		if err := l.v.ReadInConfig(); err != nil {
			return fmt.Errorf("reading config file %s: %w", l.configPath, err)
		}
		return nil
	}

	configFile, ok := findConfigFile(l.searchPaths)
	if !ok {
		// No config file found - this is OK, we use defaults
		return nil
	}
	l.v.SetConfigFile(configFile)
	if err := l.v.ReadInConfig(); err != nil {
		return fmt.Errorf("reading config file %s: %w", configFile, err)
	}
	return nil
}

func findConfigFile(searchPaths []string) (string, bool) {
	for _, searchPath := range searchPaths {
		for _, name := range ConfigFileNames {
			for _, ext := range ConfigFileExtensions {
				configFile := filepath.Join(searchPath, name+"."+ext)
				if _, err := os.Stat(configFile); err == nil {
					return configFile, true
				}
			}
		}
	}
	return "", false
}

// GetConfigPath returns the path to the loaded config file, if any.
func (l *Loader) GetConfigPath() string {
	return l.v.ConfigFileUsed()
}
