package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Server   ServerConfig   `yaml:"server"`
	Pinnacle PinnacleConfig `yaml:"pinnacle"`
	Betbck   BetbckConfig   `yaml:"betbck"`
	Analyzer AnalyzerConfig `yaml:"analyzer"`
	Postgres PostgresConfig `yaml:"postgres"`
	Logging  LoggingConfig  `yaml:"logging"`
}

type ServerConfig struct {
	Addr              string        `yaml:"addr"`
	ReadHeaderTimeout time.Duration `yaml:"read_header_timeout"`
	RefreshInterval   time.Duration `yaml:"refresh_interval"` // reference odds refresh for active events
	EventTTL          time.Duration `yaml:"event_ttl"`        // how long an alerted event stays active
}

type PinnacleConfig struct {
	BaseURL string        `yaml:"base_url"` // odds relay base URL
	Origin  string        `yaml:"origin"`   // Origin/Referer the relay expects
	Timeout time.Duration `yaml:"timeout"`
}

type BetbckConfig struct {
	BaseURL       string            `yaml:"base_url"`
	LoginPagePath string            `yaml:"login_page_path"`
	LoginPath     string            `yaml:"login_path"`
	MainPagePath  string            `yaml:"main_page_path"` // page holding the search prerequisites
	SearchPath    string            `yaml:"search_path"`
	Username      string            `yaml:"username"`
	Password      string            `yaml:"password"`
	Headers       map[string]string `yaml:"headers"`
	Timeout       time.Duration     `yaml:"timeout"`
}

type AnalyzerConfig struct {
	MinValuePercent  float64 `yaml:"min_value_percent"` // notify only at or above this EV percent
	TelegramBotToken string  `yaml:"telegram_bot_token"`
	TelegramChatID   int64   `yaml:"telegram_chat_id"`
}

type PostgresConfig struct {
	DSN string `yaml:"dsn"` // empty disables bet history persistence
}

type LoggingConfig struct {
	Level string `yaml:"level"` // debug, info, warn, error
}

func Load(configPath string) (*Config, error) {
	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	config.applyDefaults()
	config.applyEnvOverrides()
	return &config, nil
}

func (c *Config) applyDefaults() {
	if c.Server.Addr == "" {
		c.Server.Addr = ":5001"
	}
	if c.Server.ReadHeaderTimeout <= 0 {
		c.Server.ReadHeaderTimeout = 10 * time.Second
	}
	if c.Server.RefreshInterval <= 0 {
		c.Server.RefreshInterval = 3 * time.Second
	}
	if c.Server.EventTTL <= 0 {
		c.Server.EventTTL = 5 * time.Minute
	}
	if c.Pinnacle.Timeout <= 0 {
		c.Pinnacle.Timeout = 10 * time.Second
	}
	if c.Betbck.Timeout <= 0 {
		c.Betbck.Timeout = 15 * time.Second
	}
	if c.Betbck.SearchPath == "" {
		c.Betbck.SearchPath = "/Qubic/PlayerGameSelection.php"
	}
	if c.Logging.Level == "" {
		c.Logging.Level = "info"
	}
}

// applyEnvOverrides keeps secrets out of committed configs.
func (c *Config) applyEnvOverrides() {
	if v := os.Getenv("PINNACLE_BASE_URL"); v != "" {
		c.Pinnacle.BaseURL = v
	}
	if v := os.Getenv("BETBCK_USERNAME"); v != "" {
		c.Betbck.Username = v
	}
	if v := os.Getenv("BETBCK_PASSWORD"); v != "" {
		c.Betbck.Password = v
	}
	if v := os.Getenv("TELEGRAM_BOT_TOKEN"); v != "" {
		c.Analyzer.TelegramBotToken = v
	}
	if v := os.Getenv("TELEGRAM_CHAT_ID"); v != "" {
		if chatID, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Analyzer.TelegramChatID = chatID
		}
	}
	if v := os.Getenv("POSTGRES_DSN"); v != "" {
		c.Postgres.DSN = v
	}
}
