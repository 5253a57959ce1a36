package factory

import (
	"fmt"

	"github.com/iWorld-y/venture_radar/internal/config"
	"github.com/iWorld-y/venture_radar/internal/search"
	"github.com/iWorld-y/venture_radar/internal/search/serper"
	"github.com/iWorld-y/venture_radar/internal/search/tavily"
)

// NewSearcher builds the configured search provider.
func NewSearcher(cfg config.SearchConfig) (search.Searcher, error) {
	provider := cfg.Provider
	if provider == "" {
		provider = "serper"
	}

	switch provider {
	case "serper":
		if cfg.Serper.APIKey == "" {
			return nil, fmt.Errorf("serper api key is missing")
		}
		return serper.NewClient(cfg.Serper.APIKey), nil

	case "tavily":
		if cfg.Tavily.APIKey == "" {
			return nil, fmt.Errorf("tavily api key is missing")
		}
		return tavily.NewClient(cfg.Tavily.APIKey), nil

	default:
		return nil, fmt.Errorf("unknown search provider: %s", provider)
	}
}
