package app

import "errors"

// Config holds all the necessary configuration for an App instance to run.
type Config struct {
	ManifestPath string // hcl file or directory

	LogFormat    string
	LogLevel     string
	WorkerCount  int
	ReportFormat string
}

// NewConfig validates a Config and applies defaults for unset fields.
func NewConfig(cfg Config) (*Config, error) {
	if cfg.ManifestPath == "" {
		return nil, errors.New("ManifestPath is a required configuration field and cannot be empty")
	}
	if cfg.WorkerCount < 1 {
		cfg.WorkerCount = 4
	}
	if cfg.ReportFormat == "" {
		cfg.ReportFormat = "text"
	}
	return &cfg, nil
}
