package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

// Config is the one-shot CLI configuration.
type Config struct {
	LLM         LLMConfig         `yaml:"llm"`
	Search      SearchConfig      `yaml:"search"`
	Query       QueryConfig       `yaml:"query"`
	ExportDir   string            `yaml:"export_dir"`
	Log         LogConfig         `yaml:"log"`
	Concurrency ConcurrencyConfig `yaml:"concurrency"`
	DB          DBConfig          `yaml:"db"`
}

// LLMConfig selects and configures the narrative generation provider.
type LLMConfig struct {
	Provider string `yaml:"provider"` // "together" (default) or "openai"
	BaseURL  string `yaml:"base_url"`
	APIKey   string `yaml:"api_key"`
	Model    string `yaml:"model"`
}

// SearchConfig selects and configures the search provider.
type SearchConfig struct {
	Provider string       `yaml:"provider"` // "serper" (default) or "tavily"
	Serper   SerperConfig `yaml:"serper"`
	Tavily   TavilyConfig `yaml:"tavily"`
	Enrich   bool         `yaml:"enrich"` // fetch page text for short snippets
}

// SerperConfig holds the Serper API key.
type SerperConfig struct {
	APIKey string `yaml:"api_key"`
}

// TavilyConfig holds the Tavily API key.
type TavilyConfig struct {
	APIKey string `yaml:"api_key"`
}

// QueryConfig is the analysis target for a one-shot run.
type QueryConfig struct {
	City       string `yaml:"city"`
	Country    string `yaml:"country"`
	Sector     string `yaml:"sector"`
	CustomIdea string `yaml:"custom_idea"`
}

// LogConfig controls log level and optional file output.
type LogConfig struct {
	Level string `yaml:"level"`
	File  string `yaml:"file"`
}

// ConcurrencyConfig bounds outbound generation calls.
type ConcurrencyConfig struct {
	QPS int `yaml:"qps"`
	RPM int `yaml:"rpm"`
}

// DBConfig is the optional analysis history database. An empty Host
// disables history entirely.
type DBConfig struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	Name     string `yaml:"name"`
}

// LoadConfig reads a yaml config from path. ${VAR} references in the file
// expand from the environment, so API keys can stay out of the file itself.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	expanded := os.ExpandEnv(string(data))

	var cfg Config
	if err := yaml.Unmarshal([]byte(expanded), &cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}
