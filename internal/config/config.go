package config

import (
	"log"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	configPathEnv      = "FADA_MONITOR_CONFIG"
	smtpHostEnv        = "SMTP_HOST"
	smtpPortEnv        = "SMTP_PORT"
	smtpUserEnv        = "SMTP_USER"
	smtpPasswordEnv    = "SMTP_PASSWORD"
	notificationEnv    = "NOTIFICATION_EMAIL"
	anthropicAPIKeyEnv = "ANTHROPIC_API_KEY"
	summaryModelEnv    = "FADA_SUMMARY_MODEL"
)

// Config holds all settings required across the application. It is built
// once at process start and passed into constructors; nothing reads the
// environment after Load returns.
type Config struct {
	Source  SourceConfig  `yaml:"source"`
	Storage StorageConfig `yaml:"storage"`
	HTTP    HTTPConfig    `yaml:"http"`
	Extract ExtractConfig `yaml:"extract"`
	Summary SummaryConfig `yaml:"summary"`
	SMTP    SMTPConfig    `yaml:"smtp"`
	Notify  NotifyConfig  `yaml:"notify"`
	Watch   WatchConfig   `yaml:"watch"`
	Logging LoggingConfig `yaml:"logging"`
}

// SourceConfig identifies the press-release listing to monitor.
type SourceConfig struct {
	BaseURL     string `yaml:"baseUrl"`
	ListingPath string `yaml:"listingPath"`
}

// ListingURL resolves the absolute listing page URL.
func (s SourceConfig) ListingURL() string {
	return s.BaseURL + s.ListingPath
}

// StorageConfig locates the state file and download directory.
type StorageConfig struct {
	StateFile   string `yaml:"stateFile"`
	DownloadDir string `yaml:"downloadDir"`
}

// HTTPConfig bounds the two fetch operations, in seconds.
type HTTPConfig struct {
	ListingTimeoutSec  int `yaml:"listingTimeoutSec"`
	DocumentTimeoutSec int `yaml:"documentTimeoutSec"`
}

// ListingTimeout resolves the listing fetch bound.
func (h HTTPConfig) ListingTimeout() time.Duration {
	return time.Duration(h.ListingTimeoutSec) * time.Second
}

// DocumentTimeout resolves the document fetch bound.
func (h HTTPConfig) DocumentTimeout() time.Duration {
	return time.Duration(h.DocumentTimeoutSec) * time.Second
}

// ExtractConfig tunes PDF text extraction. DisablePrimary forces the
// fallback engine, mirroring an environment where the primary capability is
// not usable.
type ExtractConfig struct {
	DisablePrimary bool `yaml:"disablePrimary"`
}

// SummaryConfig controls the external summarization call. Disabled is the
// deliberate off switch; it is distinct from a missing API key.
type SummaryConfig struct {
	Disabled      bool   `yaml:"disabled"`
	APIKey        string `yaml:"apiKey"`
	Model         string `yaml:"model"`
	MaxTokens     int    `yaml:"maxTokens"`
	MaxInputBytes int    `yaml:"maxInputBytes"`
}

// SMTPConfig wires outbound mail submission.
type SMTPConfig struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
}

// Configured reports whether credentials allow sending mail at all.
func (s SMTPConfig) Configured() bool {
	return s.User != "" && s.Password != ""
}

// NotifyConfig holds the notification recipient.
type NotifyConfig struct {
	Email string `yaml:"email"`
}

// WatchConfig defines the recurring-run interval for watch mode, in minutes.
type WatchConfig struct {
	IntervalMin int `yaml:"intervalMin"`
}

// Interval resolves the watch period.
func (w WatchConfig) Interval() time.Duration {
	return time.Duration(w.IntervalMin) * time.Minute
}

// LoggingConfig selects log verbosity.
type LoggingConfig struct {
	Level string `yaml:"level"`
}

// Load reads YAML configuration (if present) and applies environment
// overrides. path may be empty, in which case FADA_MONITOR_CONFIG is
// consulted; a missing file falls back to defaults.
func Load(path string) Config {
	cfg := defaultConfig()

	if path == "" {
		path = os.Getenv(configPathEnv)
	}
	if path != "" {
		if raw, err := os.ReadFile(path); err != nil {
			log.Printf("config: cannot read %s: %v (falling back to defaults)", path, err)
		} else {
			var fileCfg Config
			if err := yaml.Unmarshal(raw, &fileCfg); err != nil {
				log.Printf("config: cannot parse %s: %v (falling back to defaults)", path, err)
			} else {
				cfg = mergeConfig(cfg, fileCfg)
			}
		}
	}

	cfg.applyEnvOverrides()
	return cfg
}

func (c *Config) applyEnvOverrides() {
	if v := os.Getenv(smtpHostEnv); v != "" {
		c.SMTP.Host = v
	}
	if v := os.Getenv(smtpPortEnv); v != "" {
		if port, err := strconv.Atoi(v); err == nil {
			c.SMTP.Port = port
		} else {
			log.Printf("config: invalid %s=%q, keeping %d", smtpPortEnv, v, c.SMTP.Port)
		}
	}
	if v := os.Getenv(smtpUserEnv); v != "" {
		c.SMTP.User = v
	}
	if v := os.Getenv(smtpPasswordEnv); v != "" {
		c.SMTP.Password = v
	}
	if v := os.Getenv(notificationEnv); v != "" {
		c.Notify.Email = v
	}
	if v := os.Getenv(anthropicAPIKeyEnv); v != "" {
		c.Summary.APIKey = v
	}
	if v := os.Getenv(summaryModelEnv); v != "" {
		c.Summary.Model = v
	}
}

func mergeConfig(base, override Config) Config {
	if override.Source.BaseURL != "" {
		base.Source.BaseURL = override.Source.BaseURL
	}
	if override.Source.ListingPath != "" {
		base.Source.ListingPath = override.Source.ListingPath
	}

	if override.Storage.StateFile != "" {
		base.Storage.StateFile = override.Storage.StateFile
	}
	if override.Storage.DownloadDir != "" {
		base.Storage.DownloadDir = override.Storage.DownloadDir
	}

	if override.HTTP.ListingTimeoutSec > 0 {
		base.HTTP.ListingTimeoutSec = override.HTTP.ListingTimeoutSec
	}
	if override.HTTP.DocumentTimeoutSec > 0 {
		base.HTTP.DocumentTimeoutSec = override.HTTP.DocumentTimeoutSec
	}

	if override.Extract.DisablePrimary {
		base.Extract.DisablePrimary = true
	}

	if override.Summary.Disabled {
		base.Summary.Disabled = true
	}
	if override.Summary.APIKey != "" {
		base.Summary.APIKey = override.Summary.APIKey
	}
	if override.Summary.Model != "" {
		base.Summary.Model = override.Summary.Model
	}
	if override.Summary.MaxTokens > 0 {
		base.Summary.MaxTokens = override.Summary.MaxTokens
	}
	if override.Summary.MaxInputBytes > 0 {
		base.Summary.MaxInputBytes = override.Summary.MaxInputBytes
	}

	if override.SMTP.Host != "" {
		base.SMTP.Host = override.SMTP.Host
	}
	if override.SMTP.Port > 0 {
		base.SMTP.Port = override.SMTP.Port
	}
	if override.SMTP.User != "" {
		base.SMTP.User = override.SMTP.User
	}
	if override.SMTP.Password != "" {
		base.SMTP.Password = override.SMTP.Password
	}

	if override.Notify.Email != "" {
		base.Notify.Email = override.Notify.Email
	}

	if override.Watch.IntervalMin > 0 {
		base.Watch.IntervalMin = override.Watch.IntervalMin
	}

	if override.Logging.Level != "" {
		base.Logging.Level = override.Logging.Level
	}

	return base
}

func defaultConfig() Config {
	home, err := os.UserHomeDir()
	if err != nil {
		home = "."
	}

	return Config{
		Source: SourceConfig{
			BaseURL:     "https://fada.in",
			ListingPath: "/press-release-list.php",
		},
		Storage: StorageConfig{
			StateFile:   filepath.Join(home, ".fada_monitor_state.json"),
			DownloadDir: filepath.Join(home, "fada_reports"),
		},
		HTTP: HTTPConfig{
			ListingTimeoutSec:  30,
			DocumentTimeoutSec: 60,
		},
		Summary: SummaryConfig{
			Model:         "claude-sonnet-4-20250514",
			MaxTokens:     2000,
			MaxInputBytes: 50000,
		},
		SMTP: SMTPConfig{
			Host: "smtp.gmail.com",
			Port: 587,
		},
		Notify:  NotifyConfig{Email: ""},
		Watch:   WatchConfig{IntervalMin: 24 * 60},
		Logging: LoggingConfig{Level: "info"},
	}
}
