package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

const (
	EnvMetricsEnabled   = "METRICS_ENABLED"
	EnvMetricsPath      = "METRICS_PATH"
	EnvMetricsNamespace = "METRICS_NAMESPACE"
)

// MetricsConfig controls the Prometheus exposition endpoint.
type MetricsConfig struct {
	Enabled   *bool  `toml:"enabled"`
	Path      string `toml:"path"`
	Namespace string `toml:"namespace"`
}

// IsEnabled reports whether metrics are collected and exposed. Defaults to true.
func (c *MetricsConfig) IsEnabled() bool {
	return c.Enabled == nil || *c.Enabled
}

func (c *MetricsConfig) Finalize() error {
	if c.Path == "" {
		c.Path = "/metrics"
	}
	if c.Namespace == "" {
		c.Namespace = "gym_rutinas"
	}

	if v := os.Getenv(EnvMetricsEnabled); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			c.Enabled = &b
		}
	}
	if v := os.Getenv(EnvMetricsPath); v != "" {
		c.Path = v
	}
	if v := os.Getenv(EnvMetricsNamespace); v != "" {
		c.Namespace = v
	}

	if !strings.HasPrefix(c.Path, "/") || c.Path == "/" {
		return fmt.Errorf("invalid path %q", c.Path)
	}
	return nil
}

func (c *MetricsConfig) Merge(overlay *MetricsConfig) {
	if overlay.Enabled != nil {
		c.Enabled = overlay.Enabled
	}
	if overlay.Path != "" {
		c.Path = overlay.Path
	}
	if overlay.Namespace != "" {
		c.Namespace = overlay.Namespace
	}
}
