package config

// defaultModels maps each provider to the model used when none is configured.
var defaultModels = map[ProviderType]string{
	ProviderMistral:    "mistral-small-latest",
	ProviderOpenAI:     "gpt-4o-mini",
	ProviderOpenRouter: "mistralai/mistral-small",
	ProviderOllama:     "llama3",
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Provider:     ProviderMistral,
		Model:        defaultModels[ProviderMistral],
		Temperature:  0.7,
		MaxTokens:    1024,
		RateLimitRPM: 60,
		Server: ServerConfig{
			Port:    8080,
			DataDir: ".codeexplainer",
		},
		Render: RenderConfig{
			Escape: true,
		},
	}
}

// DefaultModel returns the default model for provider, falling back to the
// Mistral default for unknown providers.
func DefaultModel(provider ProviderType) string {
	if m, ok := defaultModels[provider]; ok {
		return m
	}
	return defaultModels[ProviderMistral]
}
