package config_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"hubdeploy/internal/adapters/config"
	"hubdeploy/internal/core/domain"
	"hubdeploy/internal/core/ports/mocks"
)

func newLoader(t *testing.T) *config.Loader {
	t.Helper()
	ctrl := gomock.NewController(t)
	mockLogger := mocks.NewMockLogger(ctrl)
	mockLogger.EXPECT().Warn(gomock.Any()).AnyTimes()
	return config.NewLoader(mockLogger)
}

func createFile(t *testing.T, dir, name, content string) {
	t.Helper()
	err := os.WriteFile(filepath.Join(dir, name), []byte(content), domain.FilePerm)
	require.NoError(t, err)
}

func TestLoader_Load(t *testing.T) {
	t.Run("MissingFileYieldsDefaults", func(t *testing.T) {
		loader := newLoader(t)

		cfg, err := loader.Load(context.Background(), t.TempDir())
		require.NoError(t, err)
		assert.Equal(t, domain.DefaultHubHost, cfg.DefaultHub)
		assert.Equal(t, domain.DefaultTimeout, cfg.Timeout)
		assert.Empty(t, cfg.Hubs)
	})

	t.Run("FileOverridesDefaults", func(t *testing.T) {
		loader := newLoader(t)
		dir := t.TempDir()
		createFile(t, dir, domain.ConfigFileName, `
defaultHub: 10.0.0.5
timeout: 90s
hubs:
  garage: 10.0.0.6
  main: 10.0.0.5
`)

		cfg, err := loader.Load(context.Background(), dir)
		require.NoError(t, err)
		assert.Equal(t, "10.0.0.5", cfg.DefaultHub)
		assert.Equal(t, 90*time.Second, cfg.Timeout)
		assert.Equal(t, "10.0.0.6", cfg.Hubs["garage"])
	})

	t.Run("FindsFileInParentDirectory", func(t *testing.T) {
		loader := newLoader(t)
		rootDir := t.TempDir()
		createFile(t, rootDir, domain.ConfigFileName, "defaultHub: parent.local\n")

		nested := filepath.Join(rootDir, "apps", "thermostat")
		require.NoError(t, os.MkdirAll(nested, domain.DirPerm))

		cfg, err := loader.Load(context.Background(), nested)
		require.NoError(t, err)
		assert.Equal(t, "parent.local", cfg.DefaultHub)
	})

	t.Run("NearestFileWins", func(t *testing.T) {
		loader := newLoader(t)
		rootDir := t.TempDir()
		createFile(t, rootDir, domain.ConfigFileName, "defaultHub: outer.local\n")

		nested := filepath.Join(rootDir, "project")
		require.NoError(t, os.MkdirAll(nested, domain.DirPerm))
		createFile(t, nested, domain.ConfigFileName, "defaultHub: inner.local\n")

		cfg, err := loader.Load(context.Background(), nested)
		require.NoError(t, err)
		assert.Equal(t, "inner.local", cfg.DefaultHub)
	})

	t.Run("EnvironmentWinsOverFile", func(t *testing.T) {
		loader := newLoader(t)
		dir := t.TempDir()
		createFile(t, dir, domain.ConfigFileName, "defaultHub: file.local\ntimeout: 10s\n")

		t.Setenv("HUBDEPLOY_HUB", "env.local")
		t.Setenv("HUBDEPLOY_TIMEOUT", "45s")

		cfg, err := loader.Load(context.Background(), dir)
		require.NoError(t, err)
		assert.Equal(t, "env.local", cfg.DefaultHub)
		assert.Equal(t, 45*time.Second, cfg.Timeout)
	})

	t.Run("InvalidYAML", func(t *testing.T) {
		loader := newLoader(t)
		dir := t.TempDir()
		createFile(t, dir, domain.ConfigFileName, "defaultHub: [unclosed\n")

		_, err := loader.Load(context.Background(), dir)
		require.Error(t, err)
		assert.Contains(t, err.Error(), domain.ErrConfigParseFailed.Error())
	})

	t.Run("InvalidTimeout", func(t *testing.T) {
		loader := newLoader(t)
		dir := t.TempDir()
		createFile(t, dir, domain.ConfigFileName, "timeout: ninety\n")

		_, err := loader.Load(context.Background(), dir)
		require.Error(t, err)
		assert.Contains(t, err.Error(), domain.ErrConfigParseFailed.Error())
	})
}
