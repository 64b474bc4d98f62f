package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// Config holds the server configuration. Values are layered: defaults,
// then an optional YAML file, then REMINDME_* environment variables.
type Config struct {
	Addr      string      `koanf:"addr"`
	BaseURL   string      `koanf:"base_url"`
	DataDir   string      `koanf:"data_dir"`
	JWTSecret string      `koanf:"jwt_secret"`
	Email     EmailConfig `koanf:"email"`
}

type EmailConfig struct {
	FromEmail    string `koanf:"from_email"`
	ResendAPIKey string `koanf:"resend_api_key"`
	SMTPEnabled  bool   `koanf:"smtp_enabled"`
	SMTPHost     string `koanf:"smtp_host"`
	SMTPPort     string `koanf:"smtp_port"`
	SMTPUser     string `koanf:"smtp_user"`
	SMTPPass     string `koanf:"smtp_pass"`
}

func defaults() map[string]interface{} {
	return map[string]interface{}{
		"addr":             ":8080",
		"base_url":         "http://localhost:8080",
		"data_dir":         "data",
		"jwt_secret":       "default-secret-key",
		"email.from_email": "RemindMe <reminders@resend.dev>",
		"email.smtp_port":  "587",
	}
}

// Load reads the configuration. path may be empty or point to a missing
// file; only a malformed file is an error.
func Load(path string) (Config, error) {
	k := koanf.New(".")

	if err := k.Load(confmap.Provider(defaults(), "."), nil); err != nil {
		return Config{}, fmt.Errorf("load defaults: %w", err)
	}

	if path != "" {
		if _, err := os.Stat(path); err == nil {
			if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
				return Config{}, fmt.Errorf("load config file %s: %w", path, err)
			}
		}
	}

	// REMINDME_ADDR -> addr, REMINDME_EMAIL__SMTP_HOST -> email.smtp_host.
	// Double underscore separates nesting levels so keys like jwt_secret
	// stay intact.
	err := k.Load(env.Provider("REMINDME_", ".", func(s string) string {
		s = strings.ToLower(strings.TrimPrefix(s, "REMINDME_"))
		return strings.ReplaceAll(s, "__", ".")
	}), nil)
	if err != nil {
		return Config{}, fmt.Errorf("load env: %w", err)
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	return cfg, nil
}
