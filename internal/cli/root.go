// Package cli provides the command-line interface for Fontship.
package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"

	"github.com/theleagueof/fontship/internal/config"
	fserrors "github.com/theleagueof/fontship/internal/errors"
	"github.com/theleagueof/fontship/internal/i18n"
	"github.com/theleagueof/fontship/internal/normalize"
	"github.com/theleagueof/fontship/internal/version"
)

// globalFlags holds persistent flag values.
type globalFlags struct {
	cfgFile  string
	path     string
	language string
	debug    bool
	verbose  bool
	quiet    bool
	json     bool
	noColor  bool
}

// app carries everything a subcommand needs. It is built once per run in
// PersistentPreRunE and handed to commands explicitly.
type app struct {
	cfg     *config.Config
	logger  *log.Logger
	text    *i18n.Localizer
	console *console
}

// flagKeys maps configuration keys to persistent flag names.
var flagKeys = map[string]string{
	"path":        "path",
	"language":    "language",
	"debug":       "debug",
	"verbose":     "verbose",
	"quiet":       "quiet",
	"output.json": "json",
}

// NewRootCmd builds the fontship command tree writing to stdout and stderr.
func NewRootCmd(stdout, stderr io.Writer) *cobra.Command {
	flags := &globalFlags{}
	a := &app{
		text:   i18n.New(normalize.Language(config.EnvLocale())),
		logger: newLogger(stderr),
	}

	root := &cobra.Command{
		Use:   "fontship",
		Short: "A font development toolkit and collaborative work flow",
		Long: `Fontship automates the release chores of font projects.

It derives canonical project and version names, inspects the project
repository and records automated release steps as tagged commits.`,
		Version: version.Get(),
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Name() == "version" || cmd.Name() == "help" {
				return nil
			}
			return a.init(cmd, flags, stderr)
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.SetOut(stdout)
	root.SetErr(stderr)

	pf := root.PersistentFlags()
	pf.StringVarP(&flags.cfgFile, "config", "c", "", "config file (default: fontship.yaml)")
	pf.StringVarP(&flags.path, "path", "p", ".", "path to the project repository")
	pf.StringVarP(&flags.language, "language", "l", "", "set language (e.g. en-US, tr-TR)")
	pf.BoolVarP(&flags.debug, "debug", "d", false, "enable debug output")
	pf.BoolVarP(&flags.verbose, "verbose", "v", false, "enable verbose output")
	pf.BoolVarP(&flags.quiet, "quiet", "q", false, "discard welcome and outro lines")
	pf.BoolVar(&flags.json, "json", false, "output logs as JSON")
	pf.BoolVar(&flags.noColor, "no-color", false, "disable colored output")

	root.AddCommand(newVersionCmd(stdout))
	root.AddCommand(newStatusCmd(a))
	root.AddCommand(newCommitCmd(a))

	return root
}

// Execute runs the CLI with os.Args and returns the exit code.
func Execute(ctx context.Context) int {
	root := NewRootCmd(os.Stdout, os.Stderr)
	return run(ctx, root, os.Stderr)
}

func run(ctx context.Context, root *cobra.Command, stderr io.Writer) int {
	cmd, err := root.ExecuteContextC(ctx)
	if err == nil {
		return 0
	}
	if ctx.Err() != nil {
		fmt.Fprintln(stderr, "Operation canceled")
		return 130
	}

	tr := i18n.New(normalize.Language(config.EnvLocale()))
	if cmd == nil {
		cmd = root
	}
	if lang, ferr := cmd.Flags().GetString("language"); ferr == nil && lang != "" {
		tr = i18n.New(normalize.Language(lang))
	}
	fmt.Fprintf(stderr, "Error: %s\n", fserrors.Localize(err, tr))
	return 1
}

// init loads configuration and wires the logger, localizer and console.
func (a *app) init(cmd *cobra.Command, flags *globalFlags, stderr io.Writer) error {
	loader := config.NewLoader()
	if flags.cfgFile != "" {
		loader.WithConfigPath(flags.cfgFile)
	}
	if err := loader.BindFlags(cmd.Flags(), flagKeys); err != nil {
		return err
	}

	cfg, err := loader.Load()
	if err != nil {
		return err
	}
	if flags.noColor {
		cfg.Output.Color = false
	}
	if err := config.Validate(cfg); err != nil {
		return err
	}
	a.cfg = cfg

	a.text = i18n.New(normalize.LanguageOr(cfg.Language, normalize.DefaultLocale))
	configureLogger(a.logger, cfg)
	if !cfg.Output.Color {
		lipgloss.SetColorProfile(termenv.Ascii)
	}
	a.console = newConsole(stderr, a.text, cfg)

	if path := loader.GetConfigPath(); path != "" {
		a.logger.Debug("loaded config", "file", path)
	}
	return nil
}

func newLogger(w io.Writer) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		ReportCaller:    false,
		Prefix:          "fontship",
	})
}

// configureLogger applies format and level settings to the logger.
func configureLogger(logger *log.Logger, cfg *config.Config) {
	if cfg.Output.JSON {
		logger.SetFormatter(log.JSONFormatter)
	} else {
		logger.SetFormatter(log.TextFormatter)
	}

	switch cfg.Output.LogLevel {
	case "debug":
		logger.SetLevel(log.DebugLevel)
	case "warn":
		logger.SetLevel(log.WarnLevel)
	case "error":
		logger.SetLevel(log.ErrorLevel)
	default:
		logger.SetLevel(log.InfoLevel)
	}

	if cfg.Debug || cfg.Verbose {
		logger.SetLevel(log.DebugLevel)
	}
}

func newVersionCmd(stdout io.Writer) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(stdout, "fontship %s\n", version.Get())
		},
	}
}
