package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/example/ivrprompts/internal/db"
)

// Default values used when neither the config file nor the environment sets a field.
const (
	DefaultFlowsDir    = "IVRs"
	DefaultAudioDir    = "."
	DefaultCampaignCSV = "ivrcampaignassociation.csv"
	DefaultWorkers     = 4
	DefaultLogLevel    = "info"
)

// Environment variables that override the config file.
const (
	EnvFlowsDir    = "IVRPROMPTS_FLOWS_DIR"
	EnvAudioDir    = "IVRPROMPTS_AUDIO_DIR"
	EnvCampaignCSV = "IVRPROMPTS_CAMPAIGN_CSV"
	EnvDBPath      = "IVRPROMPTS_DB_PATH"
	EnvWorkers     = "IVRPROMPTS_WORKERS"
	EnvLogLevel    = "IVRPROMPTS_LOG_LEVEL"
)

// Config represents the ivrprompts configuration
type Config struct {
	FlowsDir    string `yaml:"flows_dir"`
	AudioDir    string `yaml:"audio_dir"`
	CampaignCSV string `yaml:"campaign_csv"`
	DBPath      string `yaml:"db_path,omitempty"` // defaults to ~/.ivrprompts/ivrprompts.db
	Workers     int    `yaml:"workers"`
	LogLevel    string `yaml:"log_level"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		FlowsDir:    DefaultFlowsDir,
		AudioDir:    DefaultAudioDir,
		CampaignCSV: DefaultCampaignCSV,
		Workers:     DefaultWorkers,
		LogLevel:    DefaultLogLevel,
	}
}

// Path returns the config file location for dir.
func Path(dir string) string {
	return filepath.Join(dir, ".ivrprompts", "config.yaml")
}

// LoadConfig reads .ivrprompts/config.yaml from dir, then applies .env and
// environment overrides. A missing config file yields the defaults.
func LoadConfig(dir string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(Path(dir))
	switch {
	case errors.Is(err, fs.ErrNotExist):
	case err != nil:
		return nil, fmt.Errorf("failed to read config: %w", err)
	default:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	}

	// .env is optional; variables already set in the environment win.
	_ = godotenv.Load(filepath.Join(dir, ".env"))

	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}

	if cfg.DBPath == "" {
		path, err := db.DefaultPath()
		if err != nil {
			return nil, err
		}
		cfg.DBPath = path
	}
	if cfg.Workers <= 0 {
		cfg.Workers = DefaultWorkers
	}

	return cfg, nil
}

// SaveConfig writes config.yaml to dir
func SaveConfig(dir string, cfg *Config) error {
	cfgDir := filepath.Dir(Path(dir))
	if err := os.MkdirAll(cfgDir, 0755); err != nil {
		return fmt.Errorf("failed to create .ivrprompts dir: %w", err)
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(Path(dir), data, 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	return nil
}

func (c *Config) applyEnv() error {
	overrides := map[string]*string{
		EnvFlowsDir:    &c.FlowsDir,
		EnvAudioDir:    &c.AudioDir,
		EnvCampaignCSV: &c.CampaignCSV,
		EnvDBPath:      &c.DBPath,
		EnvLogLevel:    &c.LogLevel,
	}
	for key, field := range overrides {
		if v := strings.TrimSpace(os.Getenv(key)); v != "" {
			*field = v
		}
	}

	if v := strings.TrimSpace(os.Getenv(EnvWorkers)); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid %s %q: %w", EnvWorkers, v, err)
		}
		c.Workers = n
	}
	return nil
}
