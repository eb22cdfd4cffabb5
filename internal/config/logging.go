package config

// LoggingConfig configures logging.
type LoggingConfig struct {
	Level      string          `yaml:"level"`      // debug, info, warn, error
	Format     string          `yaml:"format"`     // console, json
	Output     string          `yaml:"output"`     // stderr, stdout or a file path
	Categories map[string]bool `yaml:"categories"` // Per-category toggles
}
