package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadMissingFile(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	require.Equal(t, Default(), cfg)
}

func TestLoadOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("prompt: '>> '\nhistsize: 10\n"), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, ">> ", cfg.Prompt)
	require.Equal(t, 10, cfg.HistSize)
	require.Equal(t, Default().RcFile, cfg.RcFile, "unset keys keep defaults")
}

func TestLoadMalformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("prompt: [oops\n"), 0o644))

	_, err := Load(path)
	require.Error(t, err)
}
