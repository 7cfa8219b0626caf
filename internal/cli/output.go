package cli

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"

	"github.com/theleagueof/fontship/internal/config"
	"github.com/theleagueof/fontship/internal/i18n"
)

// Styles
var styles = struct {
	Frame   lipgloss.Style
	Header  lipgloss.Style
	Success lipgloss.Style
	Error   lipgloss.Style
}{
	Frame:   lipgloss.NewStyle().Foreground(lipgloss.Color("6")),
	Header:  lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
	Success: lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
	Error:   lipgloss.NewStyle().Foreground(lipgloss.Color("1")),
}

// console prints the framed, localized progress lines around a run.
type console struct {
	w      io.Writer
	text   *i18n.Localizer
	quiet  bool
	checks bool
}

func newConsole(w io.Writer, text *i18n.Localizer, cfg *config.Config) *console {
	return &console{
		w:      w,
		text:   text,
		quiet:  cfg.Quiet,
		checks: cfg.Debug || cfg.Verbose,
	}
}

// welcome prints the header at the start of a run.
func (c *console) welcome(version string) {
	if c.quiet {
		return
	}
	fmt.Fprintf(c.w, "%s %s\n", styles.Frame.Render("┏━"), styles.Frame.Render(c.text.Text("welcome", version)))
}

// outro prints the footer at the end of a successful run.
func (c *console) outro() {
	if c.quiet {
		return
	}
	fmt.Fprintf(c.w, "%s %s\n", styles.Frame.Render("┗━"), styles.Frame.Render(c.text.Text("outro")))
}

// header announces a subcommand.
func (c *console) header(key string) {
	fmt.Fprintf(c.w, "%s %s\n", styles.Frame.Render("┣━"), styles.Header.Render(c.text.Text(key)))
}

// line prints an informational line.
func (c *console) line(key string, args ...any) {
	fmt.Fprintf(c.w, "%s %s\n", styles.Frame.Render("┠─"), c.text.Text(key, args...))
}

// check prints a yes/no status line; only shown in debug or verbose mode.
func (c *console) check(key string, val bool) {
	if !c.checks {
		return
	}
	fmt.Fprintf(c.w, "%s %s %s\n", styles.Frame.Render("┠─"), c.text.Text(key), c.yesNo(val))
}

func (c *console) yesNo(val bool) string {
	if val {
		return styles.Success.Render(c.text.Text("setup-true"))
	}
	return styles.Error.Render(c.text.Text("setup-false"))
}
