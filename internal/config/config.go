package config

import (
	"fmt"
	"os"
	"time"

	"github.com/khaled-Y/Arabic-Verb-Conjugator-Trainer/pkg/validator"
	"github.com/spf13/viper"
)

type Config struct {
	App     AppConfig     `mapstructure:"app" validate:"required"`
	Server  ServerConfig  `mapstructure:"server" validate:"required"`
	Catalog CatalogConfig `mapstructure:"catalog" validate:"required"`
	AI      AIConfig      `mapstructure:"ai" validate:"required"`
	Env     string        `mapstructure:"env" validate:"oneof=development production staging"`
}

type AppConfig struct {
	SuggestionLimit  int `mapstructure:"suggestion_limit" validate:"min=1,max=100"`
	GenerateAttempts int `mapstructure:"generate_attempts" validate:"min=1,max=50"`
}

type ServerConfig struct {
	Host            string        `mapstructure:"host" validate:"required"`
	Port            string        `mapstructure:"port" validate:"required"`
	ReadTimeout     time.Duration `mapstructure:"read_timeout" validate:"min=1"`
	WriteTimeout    time.Duration `mapstructure:"write_timeout" validate:"min=1"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout" validate:"min=1"`
	StaticDir       string        `mapstructure:"static_dir"`
}

type CatalogConfig struct {
	// Source is either a local JSON file path or an http(s) URL.
	Source  string        `mapstructure:"source" validate:"required"`
	Timeout time.Duration `mapstructure:"timeout" validate:"min=1"`
}

type AIConfig struct {
	BaseURL string        `mapstructure:"base_url" validate:"required,url"`
	Model   string        `mapstructure:"model" validate:"required"`
	APIKey  string        `mapstructure:"api_key"`
	Timeout time.Duration `mapstructure:"timeout" validate:"min=1"`
}

func Init() (*Config, error) {
	v := viper.New()

	v.AutomaticEnv()

	configName := os.Getenv("CONFIG_NAME")
	if configName == "" {
		configName = "default"
	}

	v.AddConfigPath("configs")
	v.SetConfigName(configName)

	if err := v.BindEnv("ai.api_key", "GEMINI_API_KEY"); err != nil {
		return nil, fmt.Errorf("failed to bind GEMINI_API_KEY: %w", err)
	}
	if err := v.BindEnv("catalog.source", "CATALOG_SOURCE"); err != nil {
		return nil, fmt.Errorf("failed to bind CATALOG_SOURCE: %w", err)
	}
	if err := v.BindEnv("server.port", "PORT"); err != nil {
		return nil, fmt.Errorf("failed to bind PORT: %w", err)
	}

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	cfg := Config{}

	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := validator.ValidateStruct(cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}
