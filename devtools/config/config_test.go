package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "devtools.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadNoPath(t *testing.T) {
	cfg, err := Load("", true)
	require.NoError(t, err)
	assert.Equal(t, Default(), *cfg)
}

func TestLoadMissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing.yaml")

	cfg, err := Load(path, false)
	require.NoError(t, err)
	assert.Equal(t, Default(), *cfg)

	_, err = Load(path, true)
	assert.Error(t, err)
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := writeConfig(t, `
language: zh-TW
compare:
  algorithm: myers
inspect:
  format: json
`)

	cfg, err := Load(path, true)
	require.NoError(t, err)

	want := Default()
	want.Language = "zh-TW"
	want.Compare.Algorithm = "myers"
	want.Inspect.Format = "json"
	assert.Equal(t, want, *cfg)
	assert.Equal(t, DefaultAddr, cfg.Serve.Addr)
	assert.Equal(t, "text", cfg.Compare.Format)
}

func TestLoadInvalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
		errPart string
	}{
		{"malformed", "language: [", "parsing config"},
		{"language", "language: fr", "language"},
		{"algorithm", "compare:\n  algorithm: patience", "compare.algorithm"},
		{"compare_format", "compare:\n  format: pdf", "compare.format"},
		{"inspect_format", "inspect:\n  format: csv", "inspect.format"},
		{"empty_addr", "serve:\n  addr: \"\"", "serve.addr"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.content), true)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errPart)
		})
	}
}

func TestDefaultIsValid(t *testing.T) {
	cfg := Default()
	assert.NoError(t, cfg.Validate())
}
