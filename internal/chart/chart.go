// Package chart turns extracted numbers into renderer-agnostic chart specs.
// The page (or any other consumer) does the actual drawing.
package chart

import (
	"sort"

	"github.com/iWorld-y/venture_radar/internal/model"
)

// LineChart is a time-series spec, points sorted ascending by year.
type LineChart struct {
	Title  string              `json:"title"`
	XLabel string              `json:"x_label"`
	YLabel string              `json:"y_label"`
	Points []model.SeriesPoint `json:"points"`
}

// PieChart is a share-breakdown spec, slices in appearance order.
type PieChart struct {
	Title  string        `json:"title"`
	Slices []model.Share `json:"slices"`
}

// BuildLineChart sorts the series by year and wraps it in a spec. The sort
// is stable so ties keep their original appearance order. Returns nil for
// an empty series: no data, no chart.
func BuildLineChart(series []model.SeriesPoint) *LineChart {
	if len(series) == 0 {
		return nil
	}

	points := make([]model.SeriesPoint, len(series))
	copy(points, series)
	sort.SliceStable(points, func(i, j int) bool {
		return points[i].Year < points[j].Year
	})

	return &LineChart{
		Title:  "Market Size Projection",
		XLabel: "Year",
		YLabel: "Market Size",
		Points: points,
	}
}

// BuildPieChart wraps the breakdown in a spec without reordering,
// aggregating, or normalizing. Returns nil for an empty breakdown.
func BuildPieChart(shares []model.Share) *PieChart {
	if len(shares) == 0 {
		return nil
	}

	slices := make([]model.Share, len(shares))
	copy(slices, shares)

	return &PieChart{
		Title:  "Market Share",
		Slices: slices,
	}
}
