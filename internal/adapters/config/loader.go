// Package config provides the configuration loader for hubdeploy.
package config

import (
	"context"
	"os"
	"path/filepath"
	"time"

	"github.com/sethvargo/go-envconfig"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"

	"hubdeploy/internal/core/domain"
	"hubdeploy/internal/core/ports"
)

// Loader implements ports.ConfigLoader using a YAML file plus environment
// overrides.
type Loader struct {
	Logger ports.Logger
}

// NewLoader creates a new Loader with the given logger.
func NewLoader(logger ports.Logger) *Loader {
	return &Loader{Logger: logger}
}

// Load resolves the effective configuration for an invocation. The nearest
// hubdeploy.yaml above cwd is read if present; a missing file is not an
// error. HUBDEPLOY_HUB and HUBDEPLOY_TIMEOUT override the file.
func (l *Loader) Load(ctx context.Context, cwd string) (domain.HubConfig, error) {
	cfg := domain.DefaultHubConfig()

	if configPath, found := findConfiguration(cwd); found {
		var file hubdeployFile
		if err := readAndUnmarshalYAML(configPath, &file); err != nil {
			return domain.HubConfig{}, err
		}
		if err := applyFile(&cfg, file); err != nil {
			return domain.HubConfig{}, zerr.With(err, "config_path", configPath)
		}
	}

	var env envOverrides
	if err := envconfig.Process(ctx, &env); err != nil {
		return domain.HubConfig{}, zerr.Wrap(err, domain.ErrConfigParseFailed.Error())
	}
	if env.Hub != "" {
		cfg.DefaultHub = env.Hub
	}
	if env.Timeout > 0 {
		cfg.Timeout = env.Timeout
	}

	return cfg, nil
}

// findConfiguration walks up from cwd looking for the nearest config file.
func findConfiguration(cwd string) (string, bool) {
	currentDir := cwd

	for {
		configPath := filepath.Join(currentDir, domain.ConfigFileName)
		if _, err := os.Stat(configPath); err == nil {
			return configPath, true
		}

		parentDir := filepath.Dir(currentDir)
		if parentDir == currentDir {
			// Reached root
			break
		}
		currentDir = parentDir
	}

	return "", false
}

func applyFile(cfg *domain.HubConfig, file hubdeployFile) error {
	if file.DefaultHub != "" {
		cfg.DefaultHub = file.DefaultHub
	}
	if file.Timeout != "" {
		timeout, err := time.ParseDuration(file.Timeout)
		if err != nil {
			wrapped := zerr.Wrap(err, domain.ErrConfigParseFailed.Error())
			return zerr.With(wrapped, "field", "timeout")
		}
		cfg.Timeout = timeout
	}
	if len(file.Hubs) > 0 {
		cfg.Hubs = file.Hubs
	}
	return nil
}

func readAndUnmarshalYAML[T any](configPath string, target *T) error {
	// #nosec G304 -- configPath is validated by caller
	configFile, err := os.ReadFile(configPath)
	if err != nil {
		return zerr.Wrap(err, domain.ErrConfigReadFailed.Error())
	}

	if parseErr := yaml.Unmarshal(configFile, target); parseErr != nil {
		return zerr.Wrap(parseErr, domain.ErrConfigParseFailed.Error())
	}

	return nil
}
