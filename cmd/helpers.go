package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/ziadkadry99/codeexplainer/internal/config"
	"github.com/ziadkadry99/codeexplainer/internal/explainer"
	"github.com/ziadkadry99/codeexplainer/internal/llm"
)

// loadConfig loads and validates the config, providing a user-friendly error.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w\nRun `codeexplainer init` to create a config file", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", cfgFile, err)
	}
	return cfg, nil
}

// createLLMProviderFromConfig creates a rate-limited LLM provider. A missing
// API key is not fatal: the service then answers from the fallback table.
func createLLMProviderFromConfig(cfg *config.Config) llm.Provider {
	provider, err := llm.NewProvider(string(cfg.Provider), cfg.Model, cfg.BaseURL)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
		fmt.Fprintf(os.Stderr, "Explanations will use the built-in fallback text.\n")
		return nil
	}
	return llm.NewRateLimitedProvider(provider, cfg.RateLimitRPM)
}

// newExplainService wires the explainer from config.
func newExplainService(cfg *config.Config, logger *slog.Logger) *explainer.Service {
	return explainer.New(createLLMProviderFromConfig(cfg), nil, explainer.Options{
		Model:       cfg.Model,
		Temperature: cfg.Temperature,
		MaxTokens:   cfg.MaxTokens,
		Timeout:     cfg.Timeout(),
		Escape:      cfg.Render.Escape,
		Logger:      logger,
	})
}
