package service

import (
	"context"
	"strings"

	"github.com/go-kratos/kratos/v2/log"

	"github.com/iWorld-y/venture_radar/internal/biz"
	"github.com/iWorld-y/venture_radar/internal/chart"
	"github.com/iWorld-y/venture_radar/internal/model"
	"github.com/iWorld-y/venture_radar/internal/report"
	"github.com/iWorld-y/venture_radar/internal/storage"
)

// ValidationError is a user-input problem caught before any network call.
// The HTTP layer surfaces it as a warning, not a server failure.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

const (
	warnMissingInput = "Please enter a city and country, and select a sector or describe your entrepreneurship idea."
	warnMissingIdea  = "Please describe your entrepreneurship idea."
)

// AnalyzeRequest is one user action.
type AnalyzeRequest struct {
	City       string `json:"city"`
	Country    string `json:"country"`
	Sector     string `json:"sector"`
	CustomIdea string `json:"custom_idea"`
}

// AnalyzeReply carries everything the page renders.
type AnalyzeReply struct {
	City      string           `json:"city"`
	Country   string           `json:"country"`
	Sector    string           `json:"sector"`
	Narrative string           `json:"narrative"`
	Sources   []string         `json:"sources"`
	LineChart *chart.LineChart `json:"line_chart,omitempty"`
	PieChart  *chart.PieChart  `json:"pie_chart,omitempty"`
	Filename  string           `json:"filename"`
}

// ExportRequest is the analysis payload the page already holds; export is
// stateless on the server side.
type ExportRequest struct {
	City     string            `json:"city"`
	Country  string            `json:"country"`
	Sections map[string]string `json:"sections"`
	Sources  []string          `json:"sources"`
}

// AnalysisService validates user input and drives the pipeline.
type AnalysisService struct {
	uc        *biz.AnalysisUseCase
	exportDir string
	log       *log.Helper
}

// NewAnalysisService builds the service. exportDir is where export files
// are written before being streamed back.
func NewAnalysisService(uc *biz.AnalysisUseCase, exportDir string, logger log.Logger) *AnalysisService {
	if exportDir == "" {
		exportDir = "exports"
	}
	return &AnalysisService{
		uc:        uc,
		exportDir: exportDir,
		log:       log.NewHelper(logger),
	}
}

// resolveSector maps the selector value (catalogue entry or custom escape
// hatch) to the effective sector string.
func resolveSector(sector, customIdea string) (string, error) {
	sector = strings.TrimSpace(sector)
	customIdea = strings.TrimSpace(customIdea)

	if sector == CustomSectorOption {
		if customIdea == "" {
			return "", &ValidationError{Message: warnMissingIdea}
		}
		return customIdeaPrefix + customIdea, nil
	}
	return sector, nil
}

// Analyze validates the request and, only if complete, runs the pipeline.
// Invalid input aborts with zero outbound calls.
func (s *AnalysisService) Analyze(ctx context.Context, req *AnalyzeRequest) (*AnalyzeReply, error) {
	sector, err := resolveSector(req.Sector, req.CustomIdea)
	if err != nil {
		return nil, err
	}

	city := strings.TrimSpace(req.City)
	country := strings.TrimSpace(req.Country)
	if city == "" || country == "" || sector == "" {
		return nil, &ValidationError{Message: warnMissingInput}
	}

	result, err := s.uc.Analyze(ctx, model.Query{City: city, Country: country, Sector: sector})
	if err != nil {
		s.log.Errorf("analysis failed for %s, %s: %v", city, country, err)
		return nil, err
	}

	return &AnalyzeReply{
		City:      city,
		Country:   country,
		Sector:    sector,
		Narrative: result.Narrative,
		Sources:   result.Sources,
		LineChart: result.LineChart,
		PieChart:  result.PieChart,
		Filename:  report.Filename(city, country),
	}, nil
}

// Export assembles the DOCX and returns its path and download name.
func (s *AnalysisService) Export(req *ExportRequest) (path string, filename string, err error) {
	city := strings.TrimSpace(req.City)
	country := strings.TrimSpace(req.Country)
	if city == "" || country == "" {
		return "", "", &ValidationError{Message: warnMissingInput}
	}

	r := &model.Report{
		City:     city,
		Country:  country,
		Sections: req.Sections,
		Sources:  req.Sources,
	}

	path, err = report.Save(r, s.exportDir)
	if err != nil {
		return "", "", err
	}
	return path, report.Filename(city, country), nil
}

// History lists recent analyses when the history store is configured.
func (s *AnalysisService) History(ctx context.Context, limit int) ([]storage.Record, error) {
	return s.uc.History(ctx, limit)
}
