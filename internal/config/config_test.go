package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.Addr)
	assert.Equal(t, "http://localhost:8080", cfg.BaseURL)
	assert.Equal(t, "data", cfg.DataDir)
	assert.Equal(t, "default-secret-key", cfg.JWTSecret)
	assert.Equal(t, "587", cfg.Email.SMTPPort)
	assert.False(t, cfg.Email.SMTPEnabled)
}

func TestLoadMissingFileIsNotAnError(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.Equal(t, ":8080", cfg.Addr)
}

func TestLoadYAMLFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
addr: ":9090"
jwt_secret: file-secret
email:
  smtp_enabled: true
  smtp_host: mail.example.com
`), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, ":9090", cfg.Addr)
	assert.Equal(t, "file-secret", cfg.JWTSecret)
	assert.True(t, cfg.Email.SMTPEnabled)
	assert.Equal(t, "mail.example.com", cfg.Email.SMTPHost)
	// Untouched keys keep their defaults.
	assert.Equal(t, "data", cfg.DataDir)
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("REMINDME_ADDR", ":7070")
	t.Setenv("REMINDME_JWT_SECRET", "env-secret")
	t.Setenv("REMINDME_EMAIL__SMTP_HOST", "smtp.env.example.com")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, ":7070", cfg.Addr)
	assert.Equal(t, "env-secret", cfg.JWTSecret)
	assert.Equal(t, "smtp.env.example.com", cfg.Email.SMTPHost)
}

func TestEnvBeatsFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("addr: \":9090\"\n"), 0644))
	t.Setenv("REMINDME_ADDR", ":6060")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, ":6060", cfg.Addr)
}
