package config

import (
	"fmt"

	"github.com/spf13/viper"
)

const (
	ProviderRuleBased = "rulebased"
	ProviderOpenAI    = "openai"
)

type Config struct {
	// Provider selects the answer backend: "rulebased" or "openai".
	Provider string       `mapstructure:"provider" validate:"oneof=rulebased openai"`
	OpenAI   OpenAIConfig `mapstructure:"openai"`
	Papago   PapagoConfig `mapstructure:"papago"`
	Server   ServerConfig `mapstructure:"server"`
	TTS      TTSConfig    `mapstructure:"tts"`
}

type OpenAIConfig struct {
	APIKey string `mapstructure:"api_key"`
	Model  string `mapstructure:"model" validate:"required"`
}

type PapagoConfig struct {
	ClientID     string `mapstructure:"client_id"`
	ClientSecret string `mapstructure:"client_secret"`
}

type ServerConfig struct {
	Address string `mapstructure:"address" validate:"required"`
}

type TTSConfig struct {
	// Command is the external synthesizer binary. Empty disables speech.
	Command      string `mapstructure:"command"`
	LanguageFlag string `mapstructure:"language_flag"`
}

func Load(configFile string) (*Config, error) {
	v := viper.New()

	v.SetConfigType("yaml")

	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("config")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.config/bilingualbuddy")
	}

	v.SetDefault("provider", ProviderRuleBased)
	v.SetDefault("openai.model", "gpt-4o-mini")
	v.SetDefault("server.address", ":8080")
	v.SetDefault("tts.language_flag", "-v")

	// Credentials come from environment variables only (not from config file)
	if err := v.BindEnv("openai.api_key", "OPENAI_API_KEY"); err != nil {
		return nil, fmt.Errorf("failed to bind OPENAI_API_KEY environment variable: %w", err)
	}
	if err := v.BindEnv("openai.model", "OPENAI_MODEL"); err != nil {
		return nil, fmt.Errorf("failed to bind OPENAI_MODEL environment variable: %w", err)
	}
	if err := v.BindEnv("papago.client_id", "PAPAGO_CLIENT_ID"); err != nil {
		return nil, fmt.Errorf("failed to bind PAPAGO_CLIENT_ID environment variable: %w", err)
	}
	if err := v.BindEnv("papago.client_secret", "PAPAGO_CLIENT_SECRET"); err != nil {
		return nil, fmt.Errorf("failed to bind PAPAGO_CLIENT_SECRET environment variable: %w", err)
	}
	if err := v.BindEnv("provider", "BUDDY_PROVIDER"); err != nil {
		return nil, fmt.Errorf("failed to bind BUDDY_PROVIDER environment variable: %w", err)
	}

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("configuration file found but could not be read: %w. Please check the file format and permissions", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration format: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}
