package config

import (
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

func LoadEnv() error {
	err := godotenv.Load(".env")
	if err != nil {
		log.Println(fmt.Printf("Error loading .env file:%v", err))
		return err
	}
	return nil
}

func GetEnv(key string) string {
	value := os.Getenv(key)
	if value == "" {
		log.Fatalf("Environment variable %s is required but not set", key)
	}
	return value
}

func GetEnvOrDefault(key string, fallback string) string {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	return value
}

const defaultModel = "gpt-4o-mini"

// AppConfig holds the intake agent settings loaded once at startup and
// immutable for the process lifetime.
type AppConfig struct {
	SystemPrompt string `yaml:"system_prompt"`
	Model        string `yaml:"model"`
}

// LoadAppConfig reads the YAML config file carrying the agent's system
// prompt and model identifier.
func LoadAppConfig(path string) (*AppConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}

	var cfg AppConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	if cfg.Model == "" {
		cfg.Model = defaultModel
	}

	return &cfg, nil
}
