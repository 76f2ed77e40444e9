package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strconv"

	"github.com/puerro-dev/puerro/internal/errors"
)

const (
	// ConfigFileName is the name of the configuration file.
	ConfigFileName = "puerro.json"

	// DefaultPort is the default development server port.
	DefaultPort = 3000

	// DefaultHost is the default development server host.
	DefaultHost = "localhost"

	// DefaultOutput is the default export output directory.
	DefaultOutput = "dist"

	// DefaultNamespace is the default metrics namespace.
	DefaultNamespace = "puerro"
)

// Config represents the complete puerro.json configuration.
type Config struct {
	// Name is the project name.
	Name string `json:"name,omitempty"`

	// Dev contains development server configuration.
	Dev DevConfig `json:"dev,omitempty"`

	// Metrics contains Prometheus metrics configuration.
	Metrics MetricsConfig `json:"metrics,omitempty"`

	// Export contains static export configuration.
	Export ExportConfig `json:"export,omitempty"`

	// configPath stores the path where the config was loaded from.
	configPath string
}

// DevConfig contains development server settings.
type DevConfig struct {
	// Port is the port to run the dev server on.
	Port int `json:"port,omitempty"`

	// Host is the host to bind to.
	Host string `json:"host,omitempty"`

	// Pretty enables pretty-printed HTML output.
	Pretty bool `json:"pretty,omitempty"`
}

// MetricsConfig contains Prometheus metrics settings.
type MetricsConfig struct {
	// Enabled exposes /metrics on the dev server.
	Enabled bool `json:"enabled,omitempty"`

	// Namespace is the metrics namespace.
	Namespace string `json:"namespace,omitempty"`
}

// ExportConfig contains static export settings.
type ExportConfig struct {
	// Output is the directory exported HTML is written to.
	Output string `json:"output,omitempty"`

	// Bucket is an optional S3 bucket to upload the export to.
	Bucket string `json:"bucket,omitempty"`

	// Region is the AWS region for the bucket.
	Region string `json:"region,omitempty"`
}

// Default returns a configuration with all defaults applied.
func Default() *Config {
	return &Config{
		Dev: DevConfig{
			Port:   DefaultPort,
			Host:   DefaultHost,
			Pretty: true,
		},
		Metrics: MetricsConfig{
			Enabled:   true,
			Namespace: DefaultNamespace,
		},
		Export: ExportConfig{
			Output: DefaultOutput,
		},
	}
}

// Load reads puerro.json from dir, applies defaults for missing fields,
// and overlays environment variables. A missing file is not an error: the
// defaults are returned.
func Load(dir string) (*Config, error) {
	cfg := Default()

	path := filepath.Join(dir, ConfigFileName)
	data, err := os.ReadFile(path)
	if err == nil {
		if err := json.Unmarshal(data, cfg); err != nil {
			return nil, errors.New("E060").
				WithDetail("%s: %v", path, err).
				WithSuggestion("Check the JSON syntax in " + ConfigFileName)
		}
		cfg.configPath = path
	} else if !os.IsNotExist(err) {
		return nil, errors.FromError(err, "E060")
	}

	cfg.applyDefaults()
	cfg.applyEnv()
	return cfg, nil
}

// Path returns the file the configuration was loaded from, or "" if the
// defaults were used.
func (c *Config) Path() string {
	return c.configPath
}

// Addr returns the dev server listen address.
func (c *Config) Addr() string {
	return c.Dev.Host + ":" + strconv.Itoa(c.Dev.Port)
}

// applyDefaults fills zero-valued fields after unmarshalling.
func (c *Config) applyDefaults() {
	if c.Dev.Port == 0 {
		c.Dev.Port = DefaultPort
	}
	if c.Dev.Host == "" {
		c.Dev.Host = DefaultHost
	}
	if c.Metrics.Namespace == "" {
		c.Metrics.Namespace = DefaultNamespace
	}
	if c.Export.Output == "" {
		c.Export.Output = DefaultOutput
	}
}

// applyEnv overlays environment variables onto the configuration.
func (c *Config) applyEnv() {
	if v := os.Getenv("PUERRO_PORT"); v != "" {
		if port, err := strconv.Atoi(v); err == nil && port > 0 {
			c.Dev.Port = port
		}
	}
	if v := os.Getenv("PUERRO_HOST"); v != "" {
		c.Dev.Host = v
	}
	if v := os.Getenv("PUERRO_METRICS_NAMESPACE"); v != "" {
		c.Metrics.Namespace = v
	}
}
