package main

import (
	"fmt"

	"github.com/cj5427533/BilingualBuddy/internal/config"
	"github.com/cj5427533/BilingualBuddy/internal/provider"
	"github.com/cj5427533/BilingualBuddy/internal/provider/openai"
	"github.com/cj5427533/BilingualBuddy/internal/provider/rulebased"
)

func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(configFile)
	if err != nil {
		return nil, fmt.Errorf("config.Load() > %w", err)
	}
	return cfg, nil
}

// newProvider selects the answer backend from the configuration. The OpenAI
// client must be closed by the caller; the rule-based provider has nothing to
// release, so the returned closer may be nil.
func newProvider(cfg *config.Config) (provider.Provider, func() error, error) {
	switch cfg.Provider {
	case config.ProviderOpenAI:
		if cfg.OpenAI.APIKey == "" {
			return nil, nil, fmt.Errorf("OPENAI_API_KEY environment variable is required")
		}
		client := openai.NewClient(cfg.OpenAI.APIKey, cfg.OpenAI.Model, provider.DefaultMaxRetryAttempts)
		return client, client.Close, nil
	case config.ProviderRuleBased:
		return rulebased.NewProvider(), nil, nil
	default:
		return nil, nil, fmt.Errorf("unknown provider: %s", cfg.Provider)
	}
}
