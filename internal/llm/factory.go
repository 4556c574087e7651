package llm

import (
	"fmt"
	"os"
	"strings"
)

// Provider names accepted by NewProvider.
const (
	ProviderMistral    = "mistral"
	ProviderOpenAI     = "openai"
	ProviderOpenRouter = "openrouter"
	ProviderOllama     = "ollama"
)

// defaultBaseURLs holds the endpoint used when the config leaves base_url empty.
var defaultBaseURLs = map[string]string{
	ProviderMistral:    "https://api.mistral.ai/v1",
	ProviderOpenAI:     "https://api.openai.com/v1",
	ProviderOpenRouter: "https://openrouter.ai/api/v1",
}

// APIKeyEnvVar returns the environment variable holding the API key for
// providerType, or "" when the provider needs none.
func APIKeyEnvVar(providerType string) string {
	switch providerType {
	case ProviderMistral:
		return "MISTRAL_API_KEY"
	case ProviderOpenAI:
		return "OPENAI_API_KEY"
	case ProviderOpenRouter:
		return "OPENROUTER_API_KEY"
	default:
		return ""
	}
}

// NewProvider creates a provider for providerType. The API key is read from
// the environment so it never has to be written to a config file.
func NewProvider(providerType, model, baseURL string) (Provider, error) {
	switch providerType {
	case ProviderMistral, ProviderOpenAI, ProviderOpenRouter:
		envVar := APIKeyEnvVar(providerType)
		apiKey := os.Getenv(envVar)
		if apiKey == "" {
			return nil, fmt.Errorf("%s environment variable is not set", envVar)
		}
		if baseURL == "" {
			baseURL = defaultBaseURLs[providerType]
		}
		return NewCompatProvider(providerType, apiKey, baseURL, model), nil

	case ProviderOllama:
		if baseURL == "" {
			host := os.Getenv("OLLAMA_HOST")
			if host == "" {
				host = "http://localhost:11434"
			}
			baseURL = strings.TrimRight(host, "/") + "/v1"
		}
		// Ollama ignores the key but the client requires a non-empty one.
		return NewCompatProvider(providerType, "ollama", baseURL, model), nil

	default:
		return nil, fmt.Errorf("unsupported provider type: %s", providerType)
	}
}
