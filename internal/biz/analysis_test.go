package biz

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/iWorld-y/venture_radar/internal/model"
	"github.com/iWorld-y/venture_radar/internal/search"
)

// mockSearcher records queries and replays canned results.
type mockSearcher struct {
	calls   int
	lastReq *search.Request
	resp    *search.Response
	err     error
}

func (m *mockSearcher) Search(ctx context.Context, req *search.Request) (*search.Response, error) {
	m.calls++
	m.lastReq = req
	if m.err != nil {
		return nil, m.err
	}
	return m.resp, nil
}

// mockGenerator records prompts and replays a canned narrative.
type mockGenerator struct {
	calls      int
	lastPrompt string
	narrative  string
	err        error
}

func (m *mockGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	m.calls++
	m.lastPrompt = prompt
	if m.err != nil {
		return "", m.err
	}
	return m.narrative, nil
}

func testQuery() model.Query {
	return model.Query{City: "Lima", Country: "Peru", Sector: "Tourism"}
}

func TestAnalyze_BuildsSearchQueryAndContext(t *testing.T) {
	searcher := &mockSearcher{resp: &search.Response{Results: []search.Result{
		{Snippet: "snippet one", Link: "http://a"},
		{Snippet: "snippet two", Link: "http://b"},
	}}}
	generator := &mockGenerator{narrative: "Steady growth without figures."}

	uc := NewAnalysisUseCase(searcher, generator, NewLimiter(0, 0), false, nil)

	result, err := uc.Analyze(context.Background(), testQuery())
	if err != nil {
		t.Fatalf("Analyze() error = %v", err)
	}

	wantQuery := "Lima Peru Tourism city feasibility analysis statistics"
	if searcher.lastReq.Query != wantQuery {
		t.Errorf("search query = %q, want %q", searcher.lastReq.Query, wantQuery)
	}
	if !strings.Contains(generator.lastPrompt, "Context: snippet one\nsnippet two") {
		t.Errorf("prompt missing joined context:\n%s", generator.lastPrompt)
	}
	if !strings.Contains(generator.lastPrompt, "'Tourism' sector in Lima, Peru") {
		t.Errorf("prompt missing query interpolation:\n%s", generator.lastPrompt)
	}
	if diff := cmp.Diff([]string{"http://a", "http://b"}, result.Sources); diff != "" {
		t.Errorf("sources mismatch (-want +got):\n%s", diff)
	}
}

func TestAnalyze_NoNumbersMeansNoCharts(t *testing.T) {
	searcher := &mockSearcher{resp: &search.Response{}}
	generator := &mockGenerator{narrative: "The outlook is positive but no figures are available."}

	uc := NewAnalysisUseCase(searcher, generator, NewLimiter(0, 0), false, nil)

	result, err := uc.Analyze(context.Background(), testQuery())
	if err != nil {
		t.Fatalf("Analyze() error = %v", err)
	}
	if result.LineChart != nil {
		t.Errorf("LineChart = %v, want nil", result.LineChart)
	}
	if result.PieChart != nil {
		t.Errorf("PieChart = %v, want nil", result.PieChart)
	}
}

func TestAnalyze_ExtractsChartsFromNarrative(t *testing.T) {
	searcher := &mockSearcher{resp: &search.Response{}}
	generator := &mockGenerator{
		narrative: "In 2023 the market reached 12 million and in 2021 it was 5 million.\n" +
			"Competitors: Hotels: 60%, Hostels: 25%",
	}

	uc := NewAnalysisUseCase(searcher, generator, NewLimiter(0, 0), false, nil)

	result, err := uc.Analyze(context.Background(), testQuery())
	if err != nil {
		t.Fatalf("Analyze() error = %v", err)
	}

	if result.LineChart == nil {
		t.Fatal("LineChart = nil, want chart")
	}
	if result.LineChart.Points[0].Year != 2021 {
		t.Errorf("first point year = %d, want 2021 (sorted ascending)", result.LineChart.Points[0].Year)
	}

	if result.PieChart == nil {
		t.Fatal("PieChart = nil, want chart")
	}
	if result.PieChart.Slices[0].Label != "Hotels" {
		t.Errorf("first slice = %+v, want Hotels", result.PieChart.Slices[0])
	}
}

func TestAnalyze_SearchFailureAbortsBeforeGeneration(t *testing.T) {
	searcher := &mockSearcher{err: errors.New("boom")}
	generator := &mockGenerator{narrative: "unused"}

	uc := NewAnalysisUseCase(searcher, generator, NewLimiter(0, 0), false, nil)

	if _, err := uc.Analyze(context.Background(), testQuery()); err == nil {
		t.Fatal("Analyze() error = nil, want search failure")
	}
	if generator.calls != 0 {
		t.Errorf("generator called %d times after search failure, want 0", generator.calls)
	}
}

func TestAnalyze_GenerationFailurePropagates(t *testing.T) {
	searcher := &mockSearcher{resp: &search.Response{Results: []search.Result{{Snippet: "s", Link: "http://a"}}}}
	generator := &mockGenerator{err: errors.New("missing output.choices")}

	uc := NewAnalysisUseCase(searcher, generator, NewLimiter(0, 0), false, nil)

	if _, err := uc.Analyze(context.Background(), testQuery()); err == nil {
		t.Fatal("Analyze() error = nil, want generation failure")
	}
}

func TestHistory_NilStoreReturnsNothing(t *testing.T) {
	uc := NewAnalysisUseCase(&mockSearcher{resp: &search.Response{}}, &mockGenerator{}, NewLimiter(0, 0), false, nil)

	records, err := uc.History(context.Background(), 5)
	if err != nil {
		t.Fatalf("History() error = %v", err)
	}
	if records != nil {
		t.Errorf("History() = %v, want nil", records)
	}
}
