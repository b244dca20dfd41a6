package config

import (
	"os"
	"path/filepath"
)

// Config holds all configuration for the application
type Config struct {
	// Project settings
	ProjectPath string

	// Output settings
	OutputJSONFile string
	OutputJSONDir  string

	// Selection config discovery
	ConfigGlob string

	// Command flags
	Flags Flags
}

// Flags holds command-line flags
type Flags struct {
	ConfigPaths []string
	NoSelect    bool
	Verbose     bool
	Record      bool
	JSONOnly    bool
	Interactive bool
	Limit       int
}

// New creates a new Config with defaults
func New() *Config {
	return &Config{
		ProjectPath:    DefaultProjectPath,
		OutputJSONFile: DefaultOutputJSONFile,
		OutputJSONDir:  DefaultOutputJSONDir,
		ConfigGlob:     DefaultConfigGlob,
	}
}

// Load creates a config and applies flags
func Load(flags Flags) *Config {
	cfg := New()
	cfg.Flags = flags
	return cfg
}

// GetOutputPath returns the full path to the report JSON file.
// Resolves to an absolute path so run and report always read/write the
// same file regardless of cwd.
func (c *Config) GetOutputPath() string {
	p := filepath.Join(c.ProjectPath, c.OutputJSONDir, c.OutputJSONFile)
	if abs, err := filepath.Abs(p); err == nil {
		return abs
	}
	return p
}

// GetEnvPath returns the path to the project's .env file
func (c *Config) GetEnvPath() string {
	return filepath.Join(c.ProjectPath, ".env")
}

// GetHistoryTable returns the MySQL table name for run history
func (c *Config) GetHistoryTable() string {
	if table := os.Getenv("CUTE_DB_TABLE"); table != "" {
		return table
	}
	return DefaultHistoryTable
}
