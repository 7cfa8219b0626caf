package config

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	fserrors "github.com/theleagueof/fontship/internal/errors"
)

func TestValidate(t *testing.T) {
	dir := t.TempDir()

	tests := []struct {
		name    string
		modify  func(*Config)
		wantErr string
	}{
		{"defaults", func(*Config) {}, ""},
		{"posix locale", func(c *Config) { c.Language = "C.UTF-8" }, ""},
		{"empty language", func(c *Config) { c.Language = "" }, ""},
		{"missing path", func(c *Config) { c.Path = "" }, "path: required"},
		{"nonexistent path", func(c *Config) { c.Path = filepath.Join(dir, "missing") }, "path:"},
		{"unknown language", func(c *Config) { c.Language = "xyzw-AB" }, "language:"},
		{"empty author", func(c *Config) { c.Commit.AuthorName = " " }, "commit.author_name"},
		{"bad scope", func(c *Config) { c.Commit.IdentityScope = "repo" }, "commit.identity_scope"},
		{"bad log level", func(c *Config) { c.Output.LogLevel = "trace" }, "output.log_level"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			cfg.Path = dir
			cfg.Language = "en-US"
			tt.modify(cfg)

			err := Validate(cfg)
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.True(t, fserrors.IsKind(err, fserrors.KindConfig))
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
