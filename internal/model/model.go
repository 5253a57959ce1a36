// Package model holds the plain data types shared across the pipeline.
package model

// Query identifies one feasibility analysis: a city, its country, and
// the business sector (or a free-form custom idea) to evaluate.
type Query struct {
	City    string `json:"city"`
	Country string `json:"country"`
	Sector  string `json:"sector"`
}

// SeriesPoint is a single year/value pair pulled out of the narrative.
type SeriesPoint struct {
	Year  int     `json:"year"`
	Value float64 `json:"value"`
}

// Share is a labeled percentage pulled out of the narrative.
// Percentages come straight from the text and need not sum to 100.
type Share struct {
	Label   string  `json:"label"`
	Percent float64 `json:"percent"`
}

// Report is the assembled document content before rendering.
// Sections maps a sector name to its narrative text.
type Report struct {
	City     string            `json:"city"`
	Country  string            `json:"country"`
	Sections map[string]string `json:"sections"`
	Sources  []string          `json:"sources"`
}
