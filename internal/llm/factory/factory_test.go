package factory

import (
	"context"
	"testing"

	"github.com/iWorld-y/venture_radar/internal/config"
)

func TestNewGenerator_DefaultsToTogether(t *testing.T) {
	cfg := config.LLMConfig{APIKey: "k"}
	if _, err := NewGenerator(context.Background(), cfg); err != nil {
		t.Fatalf("NewGenerator() error = %v", err)
	}
}

func TestNewGenerator_MissingKeyIsError(t *testing.T) {
	if _, err := NewGenerator(context.Background(), config.LLMConfig{Provider: "together"}); err == nil {
		t.Fatal("NewGenerator() error = nil, want missing key error")
	}
}

func TestNewGenerator_OpenAIRequiresBaseURL(t *testing.T) {
	if _, err := NewGenerator(context.Background(), config.LLMConfig{Provider: "openai"}); err == nil {
		t.Fatal("NewGenerator() error = nil, want missing base url error")
	}
}

func TestNewGenerator_UnknownProvider(t *testing.T) {
	if _, err := NewGenerator(context.Background(), config.LLMConfig{Provider: "anthropic", APIKey: "k"}); err == nil {
		t.Fatal("NewGenerator() error = nil, want unknown provider error")
	}
}
