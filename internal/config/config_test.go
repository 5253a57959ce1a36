package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadConfig_ExpandsEnvironment(t *testing.T) {
	t.Setenv("TEST_SERPER_KEY", "expanded-key")

	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `
llm:
  provider: together
  api_key: plain-key
search:
  provider: serper
  serper:
    api_key: ${TEST_SERPER_KEY}
query:
  city: Lima
  country: Peru
  sector: Tourism
concurrency:
  qps: 2
  rpm: 30
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}

	if cfg.Search.Serper.APIKey != "expanded-key" {
		t.Errorf("serper api key = %q, want env expansion", cfg.Search.Serper.APIKey)
	}
	if cfg.LLM.APIKey != "plain-key" {
		t.Errorf("llm api key = %q", cfg.LLM.APIKey)
	}
	if cfg.Query.City != "Lima" || cfg.Concurrency.RPM != 30 {
		t.Errorf("config not fully parsed: %+v", cfg)
	}
}

func TestLoadConfig_MissingFile(t *testing.T) {
	if _, err := LoadConfig(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Fatal("LoadConfig() error = nil, want missing file error")
	}
}
