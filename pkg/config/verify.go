package config

import (
	"fmt"

	"github.com/invopop/jsonschema"
)

// Verify loads the config file and checks required fields and value bounds
func Verify(path string) error {
	cfg, err := Load(path)
	if err != nil {
		return err
	}
	return validateRequiredFields(cfg)
}

// validateRequiredFields performs basic validation of required fields
func validateRequiredFields(cfg *Config) error {
	if cfg.Server.Listen == "" {
		return fmt.Errorf("server.listen is required")
	}
	if cfg.Server.Timeout == 0 {
		return fmt.Errorf("server.timeout is required")
	}

	if cfg.NewsAPI.APIKey == "" {
		return fmt.Errorf("newsapi.api_key is required")
	}

	if cfg.Recommend.WeightAdjustment < 0 || cfg.Recommend.WeightAdjustment > 1 {
		return fmt.Errorf("recommend.weight_adjustment must be within [0, 1]")
	}
	if cfg.Recommend.DefaultLimit < 1 {
		return fmt.Errorf("recommend.default_limit must be positive")
	}

	return nil
}

// GenerateSchema generates a JSON schema for the Config struct
func GenerateSchema() (*jsonschema.Schema, error) {
	return jsonschema.Reflect(&Config{}), nil
}
