package config

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, ProviderMistral, cfg.Provider)
	assert.Equal(t, "mistral-small-latest", cfg.Model)
	assert.Equal(t, 0.7, cfg.Temperature)
	assert.Equal(t, 1024, cfg.MaxTokens)
	assert.Equal(t, 8080, cfg.Server.Port)
	assert.True(t, cfg.Render.Escape)
	assert.Zero(t, cfg.Timeout())
}

func TestSaveAndLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.codeexplainer.yml")

	original := DefaultConfig()
	original.Provider = ProviderOpenAI
	original.Model = "gpt-4o"
	original.Temperature = 0.2
	original.MaxTokens = 512
	original.RequestTimeout = 30
	original.Server.Port = 9090
	original.Render.Escape = false

	require.NoError(t, original.Save(path))

	loaded, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, original.Provider, loaded.Provider)
	assert.Equal(t, original.Model, loaded.Model)
	assert.Equal(t, original.Temperature, loaded.Temperature)
	assert.Equal(t, original.MaxTokens, loaded.MaxTokens)
	assert.Equal(t, 30*time.Second, loaded.Timeout())
	assert.Equal(t, 9090, loaded.Server.Port)
	assert.False(t, loaded.Render.Escape)
}

func TestLoadMissingFile(t *testing.T) {
	// Loading a missing file should return defaults, not an error.
	cfg, err := Load(filepath.Join(t.TempDir(), "nonexistent.yml"))
	require.NoError(t, err)
	assert.Equal(t, ProviderMistral, cfg.Provider)
}

func TestLoadEnvOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.yml")
	require.NoError(t, DefaultConfig().Save(path))

	t.Setenv("CODEEXPLAINER_MAX_TOKENS", "2048")
	t.Setenv("CODEEXPLAINER_SERVER__PORT", "3000")

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 2048, loaded.MaxTokens)
	assert.Equal(t, 3000, loaded.Server.Port)
}

func TestLoadProviderSwitchPicksDefaultModel(t *testing.T) {
	t.Setenv("CODEEXPLAINER_PROVIDER", "ollama")

	loaded, err := Load(filepath.Join(t.TempDir(), "missing.yml"))
	require.NoError(t, err)
	assert.Equal(t, ProviderOllama, loaded.Provider)
	assert.Equal(t, "llama3", loaded.Model)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"defaults", func(*Config) {}, false},
		{"empty provider", func(c *Config) { c.Provider = "" }, true},
		{"invalid provider", func(c *Config) { c.Provider = "invalid" }, true},
		{"empty model", func(c *Config) { c.Model = "" }, true},
		{"negative temperature", func(c *Config) { c.Temperature = -0.1 }, true},
		{"zero max tokens", func(c *Config) { c.MaxTokens = 0 }, true},
		{"negative timeout", func(c *Config) { c.RequestTimeout = -1 }, true},
		{"negative rpm", func(c *Config) { c.RateLimitRPM = -1 }, true},
		{"port out of range", func(c *Config) { c.Server.Port = 70000 }, true},
		{"empty data dir", func(c *Config) { c.Server.DataDir = "" }, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestDefaultModel(t *testing.T) {
	assert.Equal(t, "gpt-4o-mini", DefaultModel(ProviderOpenAI))
	assert.Equal(t, "mistral-small-latest", DefaultModel("unknown"))
}

func TestValidatePort(t *testing.T) {
	assert.NoError(t, validatePort("8080"))
	assert.Error(t, validatePort("http"))
	assert.Error(t, validatePort("0"))
}
