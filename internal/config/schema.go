// Package config provides configuration management for Fontship.
package config

// Config is the root configuration for Fontship. It is loaded once by the CLI
// and passed explicitly to every component that needs a setting.
type Config struct {
	// Path is where repository discovery starts (default: ".").
	Path string `mapstructure:"path" json:"path"`
	// Language is the locale used for console output, e.g. "en-US" or "tr_TR.UTF-8".
	Language string `mapstructure:"language" json:"language"`
	// Debug enables debug logging and status checks.
	Debug bool `mapstructure:"debug" json:"debug"`
	// Verbose enables status checks on the console.
	Verbose bool `mapstructure:"verbose" json:"verbose"`
	// Quiet suppresses the welcome and outro lines.
	Quiet bool `mapstructure:"quiet" json:"quiet"`
	// Project describes the font project being released.
	Project ProjectConfig `mapstructure:"project" json:"project"`
	// Commit configures release commits.
	Commit CommitConfig `mapstructure:"commit" json:"commit"`
	// Output configures logging and console rendering.
	Output OutputConfig `mapstructure:"output" json:"output"`
}

// ProjectConfig describes the font project.
type ProjectConfig struct {
	// Name is the free-text project name; defaults to the repository directory name.
	Name string `mapstructure:"name" json:"name,omitempty"`
	// Version is the font version; defaults to the tag at HEAD.
	Version string `mapstructure:"version" json:"version,omitempty"`
}

// CommitConfig configures release commits.
type CommitConfig struct {
	// AuthorName is the author recorded on release commits.
	AuthorName string `mapstructure:"author_name" json:"author_name"`
	// IdentityScope selects which git config files supply the committer
	// identity: "system", "global" or "local".
	IdentityScope string `mapstructure:"identity_scope" json:"identity_scope"`
}

// OutputConfig configures output settings.
type OutputConfig struct {
	// JSON switches log output to JSON.
	JSON bool `mapstructure:"json" json:"json"`
	// Color enables colored console output.
	Color bool `mapstructure:"color" json:"color"`
	// LogLevel is one of debug, info, warn, error.
	LogLevel string `mapstructure:"log_level" json:"log_level"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Path:     ".",
		Language: "",
		Commit: CommitConfig{
			AuthorName:    "Fontship",
			IdentityScope: "system",
		},
		Output: OutputConfig{
			Color:    true,
			LogLevel: "info",
		},
	}
}

// ConfigFileNames to search for.
var ConfigFileNames = []string{
	"fontship",
	".fontship",
}

// ConfigFileExtensions supported by Viper.
var ConfigFileExtensions = []string{
	"yaml",
	"yml",
	"json",
	"toml",
}
