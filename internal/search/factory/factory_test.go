package factory

import (
	"testing"

	"github.com/iWorld-y/venture_radar/internal/config"
)

func TestNewSearcher_DefaultsToSerper(t *testing.T) {
	cfg := config.SearchConfig{Serper: config.SerperConfig{APIKey: "k"}}
	if _, err := NewSearcher(cfg); err != nil {
		t.Fatalf("NewSearcher() error = %v", err)
	}
}

func TestNewSearcher_MissingKeyIsError(t *testing.T) {
	if _, err := NewSearcher(config.SearchConfig{Provider: "serper"}); err == nil {
		t.Fatal("NewSearcher() error = nil, want missing key error")
	}
	if _, err := NewSearcher(config.SearchConfig{Provider: "tavily"}); err == nil {
		t.Fatal("NewSearcher() error = nil, want missing key error")
	}
}

func TestNewSearcher_UnknownProvider(t *testing.T) {
	if _, err := NewSearcher(config.SearchConfig{Provider: "bing"}); err == nil {
		t.Fatal("NewSearcher() error = nil, want unknown provider error")
	}
}
