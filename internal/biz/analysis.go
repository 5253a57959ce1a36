package biz

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/go-shiori/go-readability"
	"golang.org/x/time/rate"

	"github.com/iWorld-y/venture_radar/internal/chart"
	"github.com/iWorld-y/venture_radar/internal/extract"
	"github.com/iWorld-y/venture_radar/internal/llm"
	"github.com/iWorld-y/venture_radar/internal/logger"
	"github.com/iWorld-y/venture_radar/internal/model"
	"github.com/iWorld-y/venture_radar/internal/search"
	"github.com/iWorld-y/venture_radar/internal/storage"
)

const (
	searchSuffix   = "city feasibility analysis statistics"
	maxResults     = 10
	shortSnippet   = 200  // runes; below this a snippet is worth enriching
	maxEnrichRunes = 1200 // cap on fetched page text
)

// NewLimiter maps concurrency config onto a token bucket: limit from RPM,
// burst from QPS. A non-positive RPM means effectively unlimited.
func NewLimiter(qps, rpm int) *rate.Limiter {
	if rpm <= 0 {
		return rate.NewLimiter(rate.Inf, 1)
	}
	if qps < 1 {
		qps = 1
	}
	return rate.NewLimiter(rate.Limit(float64(rpm)/60.0), qps)
}

// AnalysisResult is everything one pipeline run produces.
type AnalysisResult struct {
	Query     model.Query
	Narrative string
	Sources   []string
	LineChart *chart.LineChart
	PieChart  *chart.PieChart
}

// AnalysisUseCase runs the linear pipeline: search, generate, extract,
// chart. One pass per call, no retries, no shared state between calls.
type AnalysisUseCase struct {
	searcher  search.Searcher
	generator llm.Generator
	limiter   *rate.Limiter
	enrich    bool
	history   *storage.Storage // nil when history is not configured
}

// NewAnalysisUseCase wires the pipeline. history may be nil.
func NewAnalysisUseCase(searcher search.Searcher, generator llm.Generator, limiter *rate.Limiter, enrich bool, history *storage.Storage) *AnalysisUseCase {
	return &AnalysisUseCase{
		searcher:  searcher,
		generator: generator,
		limiter:   limiter,
		enrich:    enrich,
		history:   history,
	}
}

// Analyze runs one feasibility analysis for an already-validated query.
func (uc *AnalysisUseCase) Analyze(ctx context.Context, q model.Query) (*AnalysisResult, error) {
	logger.Log.Infof("analyzing sector [%s] in %s, %s", q.Sector, q.City, q.Country)

	// 1. Search for context.
	searchQuery := fmt.Sprintf("%s %s %s %s", q.City, q.Country, q.Sector, searchSuffix)
	resp, err := uc.searcher.Search(ctx, &search.Request{
		Query:      searchQuery,
		MaxResults: maxResults,
	})
	if err != nil {
		return nil, fmt.Errorf("search failed: %w", err)
	}
	logger.Log.Debugf("search returned %d results", len(resp.Results))

	snippets := make([]string, 0, len(resp.Results))
	sources := make([]string, 0, len(resp.Results))
	for _, item := range resp.Results {
		snippet := item.Snippet
		if uc.enrich && len([]rune(snippet)) < shortSnippet {
			if fetched, err := fetchAndCleanContent(item.Link); err == nil && len(fetched) > len(snippet) {
				snippet = truncateRunes(fetched, maxEnrichRunes)
			}
		}
		if snippet != "" {
			snippets = append(snippets, snippet)
		}
		sources = append(sources, item.Link)
	}
	searchContext := strings.Join(snippets, "\n")

	// 2. Generate the narrative.
	if err := uc.limiter.Wait(ctx); err != nil {
		return nil, err
	}
	narrative, err := uc.generator.Generate(ctx, llm.BuildPrompt(searchContext, q.City, q.Country, q.Sector))
	if err != nil {
		return nil, fmt.Errorf("generation failed: %w", err)
	}

	// 3. Extract numbers and build chart specs. Empty extractions are a
	// valid outcome, not an error.
	result := &AnalysisResult{
		Query:     q,
		Narrative: narrative,
		Sources:   sources,
		LineChart: chart.BuildLineChart(extract.NumericSeries(narrative)),
		PieChart:  chart.BuildPieChart(extract.ShareBreakdown(narrative)),
	}

	// 4. Best-effort history write. Never blocks or fails the response.
	if uc.history != nil {
		if _, err := uc.history.SaveAnalysis(ctx, &storage.Record{
			City:      q.City,
			Country:   q.Country,
			Sector:    q.Sector,
			Narrative: narrative,
			Sources:   sources,
		}); err != nil {
			logger.Log.Errorf("failed to save analysis history: %v", err)
		}
	}

	logger.Log.Infof("analysis complete for %s, %s (%d sources)", q.City, q.Country, len(sources))
	return result, nil
}

// History lists recent analyses, or nil when history is not configured.
func (uc *AnalysisUseCase) History(ctx context.Context, limit int) ([]storage.Record, error) {
	if uc.history == nil {
		return nil, nil
	}
	return uc.history.ListRecent(ctx, limit)
}

func fetchAndCleanContent(url string) (string, error) {
	article, err := readability.FromURL(url, 30*time.Second)
	if err != nil {
		return "", err
	}
	return article.TextContent, nil
}

func truncateRunes(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}
