package config

// Default returns the default configuration: every category enabled, no
// extra deny-list entries, 10 MB log files kept for two weeks.
func Default() *Config {
	return &Config{
		Categories: map[string]bool{},
		Log: LogConfig{
			MaxSizeMB:  10,
			MaxBackups: 3,
			MaxAgeDays: 14,
		},
	}
}
