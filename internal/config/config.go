package config

// Config holds runtime configuration for the dashboard.
type Config struct {
	Port            string
	Provider        string
	UpstreamTimeout Duration
	RefreshInterval Duration
	Logging         LoggingConfig
	Preferences     PreferencesConfig
	Upstreams       UpstreamsConfig
	Metrics         MetricsConfig
}

// LoggingConfig selects the log level and handler format.
type LoggingConfig struct {
	Level  string
	Format string
}

// PreferencesConfig chooses where the preference slot lives.
type PreferencesConfig struct {
	Backend string
	Path    string
}

// Load reads configuration from environment variables with sensible defaults.
// When DASHBOARD_CONFIG names a YAML file its values replace the defaults; env still wins.
func Load() Config {
	file, _ := loadFile(envOrDefault(envConfigFile, ""))
	return Config{
		Port:            envOrDefault(envPort, firstNonEmpty(file.Port, defaultPort)),
		Provider:        envOrDefault(envProvider, firstNonEmpty(file.Provider, defaultProvider)),
		UpstreamTimeout: durationEnvOrDefault(envUpstreamTimeout, parseDurationOr(file.UpstreamTimeout, defaultUpstreamTimeout)),
		RefreshInterval: durationEnvOrDefault(envRefreshInterval, parseDurationOr(file.RefreshInterval, defaultRefreshInterval)),
		Logging: LoggingConfig{
			Level:  envOrDefault(envLogLevel, file.Logging.Level),
			Format: envOrDefault(envLogFormat, file.Logging.Format),
		},
		Preferences: PreferencesConfig{
			Backend: envOrDefault(envPreferencesBackend, firstNonEmpty(file.Preferences.Backend, defaultPreferencesBackend)),
			Path:    envOrDefault(envPreferencesPath, firstNonEmpty(file.Preferences.Path, defaultPreferencesPath)),
		},
		Upstreams: loadUpstreams(file.Upstreams),
		Metrics:   loadMetrics(file.Metrics),
	}
}
