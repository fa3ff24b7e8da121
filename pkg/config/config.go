package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

//go:generate go run ../../cmd/schema/main.go schema.json

// Config holds the application configuration
type Config struct {
	Server struct {
		Listen  string        `yaml:"listen" json:"listen" jsonschema:"default=:8080,description=HTTP server listen address"`
		Timeout time.Duration `yaml:"timeout" json:"timeout" jsonschema:"default=30s,description=HTTP server timeout"`
	} `yaml:"server" json:"server" jsonschema:"description=Server configuration"`

	Database struct {
		DSN             string `yaml:"dsn" json:"dsn" jsonschema:"default=file:newscurator.db?cache=shared&mode=rwc,description=Database connection string"`
		MaxOpenConns    int    `yaml:"max_open_conns" json:"max_open_conns" jsonschema:"default=10,description=Maximum number of open connections"`
		MaxIdleConns    int    `yaml:"max_idle_conns" json:"max_idle_conns" jsonschema:"default=5,description=Maximum number of idle connections"`
		ConnMaxLifetime int    `yaml:"conn_max_lifetime" json:"conn_max_lifetime" jsonschema:"default=3600,description=Connection maximum lifetime in seconds"`
	} `yaml:"database" json:"database" jsonschema:"description=Database configuration"`

	NewsAPI NewsAPIConfig `yaml:"newsapi" json:"newsapi" jsonschema:"description=News API configuration"`

	Recommend RecommendConfig `yaml:"recommend" json:"recommend" jsonschema:"description=Recommendation engine configuration"`
}

// NewsAPIConfig holds news API client configuration
type NewsAPIConfig struct {
	Endpoint    string        `yaml:"endpoint" json:"endpoint" jsonschema:"default=https://api.thenewsapi.com/v1/news,description=News API base URL"`
	APIKey      string        `yaml:"api_key" json:"api_key" jsonschema:"required,description=News API token (can use environment variable)"`
	Language    string        `yaml:"language" json:"language" jsonschema:"default=en,description=Article language filter"`
	Timeout     time.Duration `yaml:"timeout" json:"timeout" jsonschema:"default=10s,description=Request timeout per fetch"`
	SourcesFile string        `yaml:"sources_file" json:"sources_file" jsonschema:"description=Optional JSON file with trusted source domains"`
}

// RecommendConfig holds recommendation engine settings
type RecommendConfig struct {
	DefaultLimit     int     `yaml:"default_limit" json:"default_limit" jsonschema:"default=20,description=Default recommendation list size"`
	WeightAdjustment float64 `yaml:"weight_adjustment" json:"weight_adjustment" jsonschema:"default=0.1,minimum=0,maximum=1,description=Per-keyword weight adjustment applied on each reaction"`
}

// Load reads configuration from a YAML file
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path) //nolint:gosec // file path comes from CLI flag
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	// expand environment variables
	expanded := os.ExpandEnv(string(data))

	var cfg Config
	if err := yaml.Unmarshal([]byte(expanded), &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	// set defaults for server
	if cfg.Server.Listen == "" {
		cfg.Server.Listen = ":8080"
	}
	if cfg.Server.Timeout == 0 {
		cfg.Server.Timeout = 30 * time.Second
	}

	// set defaults for database
	if cfg.Database.DSN == "" {
		cfg.Database.DSN = "file:newscurator.db?cache=shared&mode=rwc&_txlock=immediate"
	}
	if cfg.Database.MaxOpenConns == 0 {
		cfg.Database.MaxOpenConns = 10
	}
	if cfg.Database.MaxIdleConns == 0 {
		cfg.Database.MaxIdleConns = 5
	}
	if cfg.Database.ConnMaxLifetime == 0 {
		cfg.Database.ConnMaxLifetime = 3600
	}

	// set defaults for news api
	if cfg.NewsAPI.Endpoint == "" {
		cfg.NewsAPI.Endpoint = "https://api.thenewsapi.com/v1/news"
	}
	if cfg.NewsAPI.Language == "" {
		cfg.NewsAPI.Language = "en"
	}
	if cfg.NewsAPI.Timeout == 0 {
		cfg.NewsAPI.Timeout = 10 * time.Second
	}

	// set defaults for recommendations
	if cfg.Recommend.DefaultLimit == 0 {
		cfg.Recommend.DefaultLimit = 20
	}
	if cfg.Recommend.WeightAdjustment == 0 {
		cfg.Recommend.WeightAdjustment = 0.1
	}

	return &cfg, nil
}
