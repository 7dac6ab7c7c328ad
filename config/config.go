package config

import (
	"github.com/jinzhu/configor"
)

// Config - Application configuration
type Config struct {
	Log    string `yaml:"log" default:"" env:"LOG_PATH"` // Log file path, empty for stderr
	Debug  bool   `yaml:"debug" default:"false" env:"DEBUG"`
	Search struct {
		Endpoint     string `yaml:"endpoint" default:"https://dummyjson.com/products/search" env:"SEARCH_ENDPOINT"`
		Timeout      int    `yaml:"timeout" default:"0" env:"SEARCH_TIMEOUT"` // Timeout in seconds, 0 disables it
		UserAgent    string `yaml:"user_agent" default:"mcp-product-search/1.0" env:"SEARCH_USER_AGENT"`
		MaxQueries   int    `yaml:"max_queries" default:"50" env:"SEARCH_MAX_QUERIES"`       // Queries accepted by one search_multiple call
		MaxErrorBody int    `yaml:"max_error_body" default:"512" env:"SEARCH_MAX_ERROR_BODY"` // Characters of an error body kept for diagnostics
	} `yaml:"search"`
}

// LoadConfig - Load configuration file
func LoadConfig(path string) (*Config, error) {
	cfg := &Config{}
	err := configor.New(&configor.Config{
		Debug:      false,
		Verbose:    false,
		Silent:     true,
		AutoReload: false,
	}).Load(cfg, path)
	return cfg, err
}
