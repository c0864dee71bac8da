package domain_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"hubdeploy/internal/core/domain"
)

func TestHubConfig_ResolveTarget(t *testing.T) {
	cfg := domain.HubConfig{
		DefaultHub: "dev",
		Timeout:    10 * time.Second,
		Hubs: map[string]string{
			"dev":    "192.168.2.222",
			"garage": "10.0.0.17",
		},
	}

	t.Run("default hub alias is expanded", func(t *testing.T) {
		target := cfg.ResolveTarget("", 0)
		assert.Equal(t, "192.168.2.222", target.Host)
		assert.Equal(t, 10*time.Second, target.Timeout)
	})

	t.Run("override wins and aliases expand", func(t *testing.T) {
		target := cfg.ResolveTarget("garage", 0)
		assert.Equal(t, "10.0.0.17", target.Host)
	})

	t.Run("unknown override is used verbatim", func(t *testing.T) {
		target := cfg.ResolveTarget("192.168.2.200", 0)
		assert.Equal(t, "192.168.2.200", target.Host)
	})

	t.Run("explicit timeout wins", func(t *testing.T) {
		target := cfg.ResolveTarget("", 3*time.Second)
		assert.Equal(t, 3*time.Second, target.Timeout)
	})

	t.Run("zero config falls back to built-in defaults", func(t *testing.T) {
		target := domain.HubConfig{}.ResolveTarget("", 0)
		assert.Equal(t, domain.DefaultHubHost, target.Host)
		assert.Equal(t, domain.DefaultTimeout, target.Timeout)
	})
}
