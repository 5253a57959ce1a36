package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"strings"

	"github.com/joho/godotenv"

	"github.com/iWorld-y/venture_radar/internal/biz"
	"github.com/iWorld-y/venture_radar/internal/config"
	llmfactory "github.com/iWorld-y/venture_radar/internal/llm/factory"
	"github.com/iWorld-y/venture_radar/internal/logger"
	"github.com/iWorld-y/venture_radar/internal/model"
	"github.com/iWorld-y/venture_radar/internal/report"
	searchfactory "github.com/iWorld-y/venture_radar/internal/search/factory"
	"github.com/iWorld-y/venture_radar/internal/storage"
)

func main() {
	confPath := flag.String("conf", "config.yaml", "config file path")
	flag.Parse()

	// API keys may come from a .env instead of the yaml.
	_ = godotenv.Load()

	cfg, err := config.LoadConfig(*confPath)
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	// Input validation happens before any network call.
	q, err := resolveQuery(cfg.Query)
	if err != nil {
		log.Fatalf("config error: %v", err)
	}

	if err := logger.InitLogger(cfg.Log.Level, cfg.Log.File); err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	logger.Log.Info("starting venture radar...")

	ctx := context.Background()

	searcher, err := searchfactory.NewSearcher(cfg.Search)
	if err != nil {
		logger.Log.Fatalf("failed to init search client: %v", err)
	}

	generator, err := llmfactory.NewGenerator(ctx, cfg.LLM)
	if err != nil {
		logger.Log.Fatalf("failed to init llm client: %v", err)
	}

	limiter := biz.NewLimiter(cfg.Concurrency.QPS, cfg.Concurrency.RPM)

	// History is optional; an unset host skips the database entirely.
	var history *storage.Storage
	if cfg.DB.Host != "" {
		s, err := storage.NewStorage(cfg.DB)
		if err != nil {
			logger.Log.Errorf("failed to connect history database, continuing without it: %v", err)
		} else {
			history = s
			defer history.Close()
		}
	}

	uc := biz.NewAnalysisUseCase(searcher, generator, limiter, cfg.Search.Enrich, history)

	result, err := uc.Analyze(ctx, q)
	if err != nil {
		logger.Log.Fatalf("analysis failed: %v", err)
	}

	fmt.Printf("Feasibility analysis for entrepreneurship in the sector: %s\n", q.Sector)
	fmt.Printf("Location: %s, %s\n\n", q.City, q.Country)
	fmt.Println(result.Narrative)

	if result.LineChart != nil {
		fmt.Printf("\n%s (%d points)\n", result.LineChart.Title, len(result.LineChart.Points))
	}
	if result.PieChart != nil {
		fmt.Printf("%s (%d slices)\n", result.PieChart.Title, len(result.PieChart.Slices))
	}

	exportDir := cfg.ExportDir
	if exportDir == "" {
		exportDir = "exports"
	}

	path, err := report.Save(&model.Report{
		City:     q.City,
		Country:  q.Country,
		Sections: map[string]string{q.Sector: result.Narrative},
		Sources:  result.Sources,
	}, exportDir)
	if err != nil {
		logger.Log.Fatalf("failed to export document: %v", err)
	}
	logger.Log.Infof("analysis exported to %s", path)
}

// resolveQuery validates the configured query and applies the custom idea
// escape hatch.
func resolveQuery(qc config.QueryConfig) (model.Query, error) {
	city := strings.TrimSpace(qc.City)
	country := strings.TrimSpace(qc.Country)
	sector := strings.TrimSpace(qc.Sector)
	idea := strings.TrimSpace(qc.CustomIdea)

	if sector == "" && idea != "" {
		sector = "Custom idea: " + idea
	}
	if city == "" || country == "" || sector == "" {
		return model.Query{}, fmt.Errorf("query requires city, country, and a sector or custom idea")
	}
	return model.Query{City: city, Country: country, Sector: sector}, nil
}
