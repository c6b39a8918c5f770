package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config holds all configuration for the application
type Config struct {
	// Project settings
	ProjectPath string `yaml:"-"`

	// Output settings
	OutputJSONFile string `yaml:"output_file"`
	OutputJSONDir  string `yaml:"output_dir"`
	NoColor        bool   `yaml:"no_color"`
	NoProgress     bool   `yaml:"no_progress"`

	// Execution settings
	CaseTimeout time.Duration `yaml:"case_timeout"`
	FailFast    bool          `yaml:"fail_fast"`

	// Run history
	History HistoryConfig `yaml:"history"`

	// Command flags
	Flags Flags `yaml:"-"`
}

// HistoryConfig points at the MySQL database that keeps past runs
type HistoryConfig struct {
	Enabled  bool   `yaml:"enabled"`
	Host     string `yaml:"host"`
	Port     string `yaml:"port"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	Database string `yaml:"database"`
}

// Flags holds command-line flags
type Flags struct {
	Filter       string
	FailFast     bool
	Timeout      time.Duration
	NoProgress   bool
	NoColor      bool
	OpenFailures bool
	History      bool
}

// New creates a new Config with defaults
func New() *Config {
	return &Config{
		ProjectPath:    DefaultProjectPath,
		OutputJSONFile: DefaultOutputJSONFile,
		OutputJSONDir:  DefaultOutputJSONDir,
		CaseTimeout:    DefaultCaseTimeout,
		History: HistoryConfig{
			Host:     DefaultHistoryHost,
			Port:     DefaultHistoryPort,
			User:     DefaultHistoryUser,
			Database: DefaultHistoryDatabase,
		},
	}
}

// Load creates a config for the project at projectPath: defaults, then
// .semrun.yaml, then .env and the process environment.
func Load(projectPath string) (*Config, error) {
	cfg := New()
	if projectPath != "" {
		cfg.ProjectPath = projectPath
	}

	if err := cfg.loadFile(filepath.Join(cfg.ProjectPath, DefaultConfigFile)); err != nil {
		return nil, err
	}

	// .env file might not exist, that's okay - use environment variables
	envPath := filepath.Join(cfg.ProjectPath, DefaultEnvFile)
	if err := godotenv.Load(envPath); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("load %s: %w", envPath, err)
	}
	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) loadFile(path string) error {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("parse config %s: %w", path, err)
	}
	return nil
}

func (c *Config) applyEnv() error {
	if v := os.Getenv(EnvCaseTimeout); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvCaseTimeout, err)
		}
		c.CaseTimeout = d
	}
	if v := os.Getenv(EnvOutputDir); v != "" {
		c.OutputJSONDir = v
	}
	if v := os.Getenv(EnvNoColor); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvNoColor, err)
		}
		c.NoColor = b
	}
	if v := os.Getenv(EnvHistoryEnabled); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvHistoryEnabled, err)
		}
		c.History.Enabled = b
	}
	setIfPresent(&c.History.Host, EnvHistoryHost)
	setIfPresent(&c.History.Port, EnvHistoryPort)
	setIfPresent(&c.History.User, EnvHistoryUser)
	setIfPresent(&c.History.Password, EnvHistoryPassword)
	setIfPresent(&c.History.Database, EnvHistoryDatabase)
	return nil
}

func setIfPresent(dst *string, key string) {
	if v, ok := os.LookupEnv(key); ok {
		*dst = v
	}
}

// ApplyFlags copies parsed command flags over the loaded settings. Only flags
// that carry a value override the file and environment.
func (c *Config) ApplyFlags(flags Flags) {
	c.Flags = flags
	if flags.Timeout > 0 {
		c.CaseTimeout = flags.Timeout
	}
	if flags.FailFast {
		c.FailFast = true
	}
	if flags.NoProgress {
		c.NoProgress = true
	}
	if flags.NoColor {
		c.NoColor = true
	}
	if flags.History {
		c.History.Enabled = true
	}
}

// GetOutputPath returns the full path to the output JSON file (under project so run and failures use the same file).
// Resolves to an absolute path so run and failures always read/write the same file regardless of cwd.
func (c *Config) GetOutputPath() string {
	p := filepath.Join(c.ProjectPath, c.OutputJSONDir, c.OutputJSONFile)
	if abs, err := filepath.Abs(p); err == nil {
		return abs
	}
	return p
}
