// Package extract pulls chartable numbers out of free-form narrative text.
//
// Both scans are best-effort heuristics over prose with no grammar: any
// 4-digit run counts as a year, so false pairs (currency amounts, counts)
// are expected output, not bugs. Callers treat empty results as "no chart",
// never as an error.
package extract

import (
	"regexp"
	"strconv"

	"github.com/iWorld-y/venture_radar/internal/model"
)

var (
	// A 4-digit token, then the nearest following number on the same line.
	seriesPattern = regexp.MustCompile(`(\d{4}).*?(\d+(?:\.\d+)?)`)

	// "<one or two words>: <number>%".
	sharePattern = regexp.MustCompile(`(\w+(?:\s+\w+)?)\s*:\s*(\d+(?:\.\d+)?)\s*%`)
)

// NumericSeries scans text for (year, value) candidate pairs in match order.
// No deduplication and no plausibility check on the year token.
func NumericSeries(text string) []model.SeriesPoint {
	matches := seriesPattern.FindAllStringSubmatch(text, -1)
	if len(matches) == 0 {
		return nil
	}

	points := make([]model.SeriesPoint, 0, len(matches))
	for _, m := range matches {
		year, err := strconv.Atoi(m[1])
		if err != nil {
			continue
		}
		value, err := strconv.ParseFloat(m[2], 64)
		if err != nil {
			continue
		}
		points = append(points, model.SeriesPoint{Year: year, Value: value})
	}
	return points
}

// ShareBreakdown scans text for label/percentage pairs in appearance order.
// Labels may repeat and percentages need not sum to 100.
func ShareBreakdown(text string) []model.Share {
	matches := sharePattern.FindAllStringSubmatch(text, -1)
	if len(matches) == 0 {
		return nil
	}

	shares := make([]model.Share, 0, len(matches))
	for _, m := range matches {
		percent, err := strconv.ParseFloat(m[2], 64)
		if err != nil {
			continue
		}
		shares = append(shares, model.Share{Label: m[1], Percent: percent})
	}
	return shares
}
