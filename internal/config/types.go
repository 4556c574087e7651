package config

// ProviderType identifies an LLM provider.
type ProviderType string

const (
	ProviderMistral    ProviderType = "mistral"
	ProviderOpenAI     ProviderType = "openai"
	ProviderOpenRouter ProviderType = "openrouter"
	ProviderOllama     ProviderType = "ollama"
)

// Config is the top-level codeexplainer configuration, corresponding to
// .codeexplainer.yml. API keys are never stored here; they come from the
// provider's environment variable.
type Config struct {
	Provider       ProviderType `yaml:"provider" koanf:"provider"`
	Model          string       `yaml:"model" koanf:"model"`
	BaseURL        string       `yaml:"base_url" koanf:"base_url"`
	Temperature    float64      `yaml:"temperature" koanf:"temperature"`
	MaxTokens      int          `yaml:"max_tokens" koanf:"max_tokens"`
	RequestTimeout int          `yaml:"request_timeout_seconds" koanf:"request_timeout_seconds"`
	RateLimitRPM   int          `yaml:"rate_limit_rpm" koanf:"rate_limit_rpm"`
	Server         ServerConfig `yaml:"server" koanf:"server"`
	Render         RenderConfig `yaml:"render" koanf:"render"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port            int    `yaml:"port" koanf:"port"`
	DataDir         string `yaml:"data_dir" koanf:"data_dir"`
	AllowAllOrigins bool   `yaml:"allow_all_origins" koanf:"allow_all_origins"`
}

// RenderConfig controls how explanations are turned into HTML.
type RenderConfig struct {
	// Escape HTML-escapes explanation text before markup is added.
	Escape bool `yaml:"escape" koanf:"escape"`
}
