package config

import "time"

// hubdeployFile represents the structure of the hubdeploy.yaml configuration file.
type hubdeployFile struct {
	DefaultHub string            `yaml:"defaultHub"`
	Timeout    string            `yaml:"timeout"`
	Hubs       map[string]string `yaml:"hubs"`
}

// envOverrides are environment variables that win over the file.
type envOverrides struct {
	Hub     string        `env:"HUBDEPLOY_HUB"`
	Timeout time.Duration `env:"HUBDEPLOY_TIMEOUT"`
}
