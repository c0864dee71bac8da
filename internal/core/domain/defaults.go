package domain

import "time"

const (
	// DefaultHubHost is the hub address used when neither flag, environment,
	// nor config file names one.
	DefaultHubHost = "192.168.2.222"

	// DefaultTimeout bounds hub HTTP requests unless configured otherwise.
	DefaultTimeout = 30 * time.Second

	// ConfigFileName is the name of the project configuration file.
	ConfigFileName = "hubdeploy.yaml"

	// FilePerm is the default permission for files (rw-r--r--).
	FilePerm = 0o644

	// DirPerm is the default permission for directories (rwxr-x---).
	DirPerm = 0o750
)

// HubConfig is the resolved configuration for hub access.
type HubConfig struct {
	// DefaultHub is the host deploys go to when no override is given.
	DefaultHub string

	// Timeout bounds hub HTTP requests.
	Timeout time.Duration

	// Hubs maps short alias names to hub hosts.
	Hubs map[string]string
}

// DefaultHubConfig returns the built-in configuration.
func DefaultHubConfig() HubConfig {
	return HubConfig{
		DefaultHub: DefaultHubHost,
		Timeout:    DefaultTimeout,
	}
}

// ResolveTarget picks the hub for one invocation. A non-empty override wins
// over the configured default; alias names from Hubs are expanded in either
// position. An override that matches no alias is used verbatim as a host.
func (c HubConfig) ResolveTarget(override string, timeout time.Duration) HubTarget {
	host := c.DefaultHub
	if override != "" {
		host = override
	}
	if host == "" {
		host = DefaultHubHost
	}
	if mapped, ok := c.Hubs[host]; ok {
		host = mapped
	}

	if timeout <= 0 {
		timeout = c.Timeout
	}
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	return HubTarget{Host: host, Timeout: timeout}
}
