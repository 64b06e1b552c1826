package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// fileConfig mirrors the YAML layout accepted through DASHBOARD_CONFIG.
type fileConfig struct {
	Port            string          `yaml:"port"`
	Provider        string          `yaml:"provider"`
	UpstreamTimeout string          `yaml:"upstream_timeout"`
	RefreshInterval string          `yaml:"refresh_interval"`
	Logging         fileLogging     `yaml:"logging"`
	Preferences     filePreferences `yaml:"preferences"`
	Upstreams       fileUpstreams   `yaml:"upstreams"`
	Metrics         fileMetrics     `yaml:"metrics"`
}

type fileLogging struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

type filePreferences struct {
	Backend string `yaml:"backend"`
	Path    string `yaml:"path"`
}

type fileUpstreams struct {
	Wikipedia string `yaml:"wikipedia"`
	Geocoding string `yaml:"geocoding"`
	Forecast  string `yaml:"forecast"`
	SportsDB  string `yaml:"sportsdb"`
	NewsFeed  string `yaml:"news_feed"`
	NewsRelay string `yaml:"news_relay"`
}

type fileMetrics struct {
	Enabled      *bool  `yaml:"enabled"`
	Port         string `yaml:"port"`
	OtlpEndpoint string `yaml:"otlp_endpoint"`
	ServiceName  string `yaml:"service_name"`
	OtlpInsecure *bool  `yaml:"otlp_insecure"`
}

// loadFile reads the optional YAML overlay. A missing path yields an empty overlay.
func loadFile(path string) (fileConfig, error) {
	var cfg fileConfig
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return fileConfig{}, fmt.Errorf("config: read %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return fileConfig{}, fmt.Errorf("config: parse %s: %w", path, err)
	}
	return cfg, nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

func boolOr(v *bool, fallback bool) bool {
	if v == nil {
		return fallback
	}
	return *v
}

func parseDurationOr(raw string, fallback time.Duration) time.Duration {
	if raw == "" {
		return fallback
	}
	parsed, err := time.ParseDuration(raw)
	if err != nil || parsed <= 0 {
		return fallback
	}
	return parsed
}
