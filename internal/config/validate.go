package config

import (
	"fmt"
	"os"
	"slices"
	"strings"

	"golang.org/x/text/language"

	fserrors "github.com/theleagueof/fontship/internal/errors"
	"github.com/theleagueof/fontship/internal/normalize"
)

// ValidationError contains all validation errors.
type ValidationError struct {
	Errors []string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	return fmt.Sprintf("configuration validation failed:\n  - %s", strings.Join(e.Errors, "\n  - "))
}

// HasErrors returns true if there are validation errors.
func (e *ValidationError) HasErrors() bool {
	return len(e.Errors) > 0
}

// Addf adds a formatted error to the validation error.
func (e *ValidationError) Addf(format string, args ...any) {
	e.Errors = append(e.Errors, fmt.Sprintf(format, args...))
}

// Validate validates the configuration.
func Validate(cfg *Config) error {
	verr := &ValidationError{}

	validatePath(verr, cfg.Path)
	validateLanguage(verr, cfg.Language)
	validateCommit(verr, cfg.Commit)
	validateOutput(verr, cfg.Output)

	if verr.HasErrors() {
		return fserrors.Wrap(verr, fserrors.KindConfig, "config.Validate", "invalid configuration")
	}
	return nil
}

func validatePath(verr *ValidationError, path string) {
	if path == "" {
		verr.Addf("path: required")
		return
	}
	info, err := os.Stat(path)
	if err != nil {
		verr.Addf("path: %v", err)
		return
	}
	if !info.IsDir() {
		verr.Addf("path: %s is not a directory", path)
	}
}

func validateLanguage(verr *ValidationError, locale string) {
	lang := normalize.Language(locale)
	if lang == "" {
		// Resolved to normalize.DefaultLocale at use.
		return
	}
	if _, err := language.ParseBase(lang); err != nil {
		verr.Addf("language: %q is not a known language (%v)", locale, err)
	}
}

func validateCommit(verr *ValidationError, cfg CommitConfig) {
	if strings.TrimSpace(cfg.AuthorName) == "" {
		verr.Addf("commit.author_name: required")
	}
	validScopes := []string{"system", "global", "local"}
	if !slices.Contains(validScopes, cfg.IdentityScope) {
		verr.Addf("commit.identity_scope: must be one of %v, got %q", validScopes, cfg.IdentityScope)
	}
}

func validateOutput(verr *ValidationError, cfg OutputConfig) {
	validLevels := []string{"debug", "info", "warn", "error"}
	if !slices.Contains(validLevels, cfg.LogLevel) {
		verr.Addf("output.log_level: must be one of %v, got %q", validLevels, cfg.LogLevel)
	}
}
