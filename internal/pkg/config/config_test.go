package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadDefaults(t *testing.T) {
	path := writeConfig(t, "server:\n  addr: \":9000\"\n")

	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Server.Addr != ":9000" {
		t.Errorf("addr = %q", cfg.Server.Addr)
	}
	if cfg.Server.RefreshInterval != 3*time.Second {
		t.Errorf("refresh interval default = %v", cfg.Server.RefreshInterval)
	}
	if cfg.Server.EventTTL != 5*time.Minute {
		t.Errorf("event ttl default = %v", cfg.Server.EventTTL)
	}
	if cfg.Betbck.SearchPath != "/Qubic/PlayerGameSelection.php" {
		t.Errorf("search path default = %q", cfg.Betbck.SearchPath)
	}
	if cfg.Logging.Level != "info" {
		t.Errorf("log level default = %q", cfg.Logging.Level)
	}
}

func TestLoadEnvOverrides(t *testing.T) {
	path := writeConfig(t, `
betbck:
  username: from_file
analyzer:
  telegram_chat_id: 1
`)
	t.Setenv("BETBCK_USERNAME", "from_env")
	t.Setenv("TELEGRAM_CHAT_ID", "42")
	t.Setenv("POSTGRES_DSN", "postgres://env")

	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Betbck.Username != "from_env" {
		t.Errorf("username = %q, env must win", cfg.Betbck.Username)
	}
	if cfg.Analyzer.TelegramChatID != 42 {
		t.Errorf("chat id = %d", cfg.Analyzer.TelegramChatID)
	}
	if cfg.Postgres.DSN != "postgres://env" {
		t.Errorf("dsn = %q", cfg.Postgres.DSN)
	}
}

func TestLoadErrors(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("missing file must error")
	}
	path := writeConfig(t, "server: [not a mapping")
	if _, err := Load(path); err == nil {
		t.Error("malformed yaml must error")
	}
}
