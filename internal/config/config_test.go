package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yml")
	content := `api:
  environment: "test"
  base_url: "localhost:9090"
  port: "9090"
  jwt_signing_key: "secret"
  allowed_cors_domains: "https://eduka.fr"
gin:
  mode: "test"
fixtures:
  dir: "./fixtures"
  watch: false
  latency_ms: 150
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	conf, err := Load(path)

	require.NoError(t, err)
	assert.Equal(t, "test", conf.API.Environment)
	assert.Equal(t, "9090", conf.API.Port)
	assert.Equal(t, "secret", conf.API.JWTSigningKey)
	assert.Equal(t, "https://eduka.fr", conf.API.AllowedCORSDomains)
	assert.Equal(t, "./fixtures", conf.Fixtures.Dir)
	assert.False(t, conf.Fixtures.Watch)
	assert.Equal(t, 150, conf.Fixtures.LatencyMS)
}

func TestLoad_EnvOverride(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yml")
	require.NoError(t, os.WriteFile(path, []byte("api:\n  port: \"8080\"\n"), 0o644))

	t.Setenv("API_PORT", "3000")

	conf, err := Load(path)

	require.NoError(t, err)
	assert.Equal(t, "3000", conf.API.Port)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yml"))

	assert.Error(t, err)
}
