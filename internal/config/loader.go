package config

import (
	"fmt"
	"os"

	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v3"
)

// LogConfig controls the global zerolog logger.
type LogConfig struct {
	Level      string `yaml:"level" envconfig:"LOG_LEVEL"`
	Format     string `yaml:"format" envconfig:"LOG_FORMAT"`   // json or console
	Output     string `yaml:"output" envconfig:"LOG_OUTPUT"`   // stdout, stderr or file
	FilePath   string `yaml:"file_path" envconfig:"LOG_FILE_PATH"`
	TimeFormat string `yaml:"time_format" envconfig:"LOG_TIME_FORMAT"`
}

// AssistantConfig holds the classifier and context-store tunables.
type AssistantConfig struct {
	ConfidenceThreshold float64 `yaml:"confidence_threshold" envconfig:"CONFIDENCE_THRESHOLD"`
	HistoryWindow       int     `yaml:"history_window" envconfig:"HISTORY_WINDOW"`
	RecentTopicLimit    int     `yaml:"recent_topic_limit" envconfig:"RECENT_TOPIC_LIMIT"`
}

// LoanConfig holds the illustrative financing parameters used by the
// loan response generator.
type LoanConfig struct {
	APR             float64 `yaml:"apr" envconfig:"LOAN_APR"`
	DownPaymentRate float64 `yaml:"down_payment_rate" envconfig:"LOAN_DOWN_PAYMENT_RATE"`
	TermsMonths     []int   `yaml:"terms_months"`
}

// SessionConfig controls optional conversation persistence.
type SessionConfig struct {
	RedisURL   string `yaml:"redis_url" envconfig:"REDIS_URL"`
	TTLSeconds int    `yaml:"ttl_seconds" envconfig:"SESSION_TTL_SECONDS"`
	ArchiveDir string `yaml:"archive_dir" envconfig:"ARCHIVE_DIR"`
}

// Config is the root configuration for the assistant.
type Config struct {
	Log       LogConfig       `yaml:"log"`
	Assistant AssistantConfig `yaml:"assistant"`
	Loan      LoanConfig      `yaml:"loan"`
	Session   SessionConfig   `yaml:"session"`
}

// Default returns the built-in configuration used when no config file
// is present.
func Default() *Config {
	return &Config{
		Log: LogConfig{
			Level:      "info",
			Format:     "console",
			Output:     "stdout",
			TimeFormat: "rfc3339",
		},
		Assistant: AssistantConfig{
			ConfidenceThreshold: 0.3,
			HistoryWindow:       6,
			RecentTopicLimit:    5,
		},
		Loan: LoanConfig{
			APR:             5.5,
			DownPaymentRate: 0.15,
			TermsMonths:     []int{60, 72},
		},
		Session: SessionConfig{
			TTLSeconds: 2400,
			ArchiveDir: "data/sessions",
		},
	}
}

// Load reads the YAML config file at path and applies environment
// variable overrides. A missing file is not an error; defaults are
// used instead.
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err == nil {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("error parsing YAML config: %w", err)
		}
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	if err := envconfig.Process("", cfg); err != nil {
		return nil, fmt.Errorf("error processing environment configuration: %w", err)
	}

	return cfg, nil
}
