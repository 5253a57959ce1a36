package server

import (
	"context"

	"github.com/go-kratos/kratos/v2/log"

	"github.com/iWorld-y/venture_radar/internal/biz"
	"github.com/iWorld-y/venture_radar/internal/conf"
	"github.com/iWorld-y/venture_radar/internal/config"
	drLogger "github.com/iWorld-y/venture_radar/internal/logger"
	llmfactory "github.com/iWorld-y/venture_radar/internal/llm/factory"
	searchfactory "github.com/iWorld-y/venture_radar/internal/search/factory"
	"github.com/iWorld-y/venture_radar/internal/storage"
)

// radarConfig converts the kratos conf.Radar into the pipeline's config
// types.
func radarConfig(c *conf.Radar) *config.Config {
	cfg := &config.Config{ExportDir: c.ExportDir}

	if c.Llm != nil {
		cfg.LLM = config.LLMConfig{
			Provider: c.Llm.Provider,
			BaseURL:  c.Llm.BaseUrl,
			APIKey:   c.Llm.ApiKey,
			Model:    c.Llm.Model,
		}
	}
	if c.Search != nil {
		cfg.Search = config.SearchConfig{
			Provider: c.Search.Provider,
			Enrich:   c.Search.Enrich,
		}
		if c.Search.Serper != nil {
			cfg.Search.Serper = config.SerperConfig{APIKey: c.Search.Serper.ApiKey}
		}
		if c.Search.Tavily != nil {
			cfg.Search.Tavily = config.TavilyConfig{APIKey: c.Search.Tavily.ApiKey}
		}
	}
	if c.Log != nil {
		cfg.Log = config.LogConfig{Level: c.Log.Level, File: c.Log.File}
	}
	if c.Concurrency != nil {
		cfg.Concurrency = config.ConcurrencyConfig{QPS: int(c.Concurrency.Qps), RPM: int(c.Concurrency.Rpm)}
	}
	if c.Db != nil {
		cfg.DB = config.DBConfig{
			Host:     c.Db.Host,
			Port:     int(c.Db.Port),
			User:     c.Db.User,
			Password: c.Db.Password,
			Name:     c.Db.Name,
		}
	}
	return cfg
}

// NewAnalysisUseCase initializes the pipeline from the server config.
func NewAnalysisUseCase(c *conf.Radar, logger log.Logger) (*biz.AnalysisUseCase, func(), error) {
	helper := log.NewHelper(logger)
	cfg := radarConfig(c)

	if err := drLogger.InitLogger(cfg.Log.Level, cfg.Log.File); err != nil {
		helper.Errorf("failed to init pipeline logger: %v", err)
		_ = drLogger.InitLogger("info", "")
	}

	ctx := context.Background()

	searcher, err := searchfactory.NewSearcher(cfg.Search)
	if err != nil {
		return nil, nil, err
	}

	generator, err := llmfactory.NewGenerator(ctx, cfg.LLM)
	if err != nil {
		return nil, nil, err
	}

	limiter := biz.NewLimiter(cfg.Concurrency.QPS, cfg.Concurrency.RPM)

	// History is optional: an unset host means no database at all and a
	// purely request-scoped service.
	var history *storage.Storage
	if cfg.DB.Host != "" {
		s, err := storage.NewStorage(cfg.DB)
		if err != nil {
			helper.Errorf("failed to connect history database, continuing without it: %v", err)
		} else {
			history = s
			helper.Info("analysis history enabled")
		}
	}

	cleanup := func() {
		if history != nil {
			if err := history.Close(); err != nil {
				helper.Errorf("failed to close history database: %v", err)
			}
		}
	}

	return biz.NewAnalysisUseCase(searcher, generator, limiter, cfg.Search.Enrich, history), cleanup, nil
}
