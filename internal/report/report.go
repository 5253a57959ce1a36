// Package report assembles a feasibility analysis into a downloadable DOCX.
package report

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/gingfrederik/docx"

	"github.com/iWorld-y/venture_radar/internal/model"
)

const disclaimer = "\nNote: This document was generated by an AI assistant. Verify the information with official sources for more accurate and up-to-date data."

const (
	titleSize   = 20
	headingSize = 16
)

// paragraph is one rendered line. A zero size means regular body text.
type paragraph struct {
	text string
	size int
}

// compose flattens a report into the document's paragraph sequence:
// title, location, one heading+body pair per sector, a Sources section
// with one bulleted line per link (duplicates kept), and the disclaimer.
// Sector entries are emitted in sorted key order so equal inputs always
// produce the same document.
func compose(r *model.Report) []paragraph {
	paras := []paragraph{
		{text: fmt.Sprintf("Feasibility Analysis - %s, %s", r.City, r.Country), size: titleSize},
		{text: "Location", size: headingSize},
		{text: fmt.Sprintf("%s, %s", r.City, r.Country)},
	}

	sectors := make([]string, 0, len(r.Sections))
	for sector := range r.Sections {
		sectors = append(sectors, sector)
	}
	sort.Strings(sectors)

	for _, sector := range sectors {
		paras = append(paras,
			paragraph{text: sector, size: headingSize},
			paragraph{text: r.Sections[sector]},
		)
	}

	paras = append(paras, paragraph{text: "Sources", size: headingSize})
	for _, source := range r.Sources {
		paras = append(paras, paragraph{text: "- " + source})
	}

	paras = append(paras, paragraph{text: disclaimer})
	return paras
}

// Build assembles the DOCX file in memory.
func Build(r *model.Report) *docx.File {
	f := docx.NewFile()
	for _, para := range compose(r) {
		p := f.AddParagraph()
		run := p.AddText(para.text)
		if para.size > 0 {
			run.Size(para.size)
		}
	}
	return f
}

// Filename derives the deterministic export name from the location, with
// spaces replaced by underscores.
func Filename(city, country string) string {
	return fmt.Sprintf("Feasibility_Analysis_%s_%s.docx",
		strings.ReplaceAll(city, " ", "_"),
		strings.ReplaceAll(country, " ", "_"))
}

// Save writes the assembled document into dir, creating it if needed, and
// returns the file path.
func Save(r *model.Report, dir string) (string, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("creating export dir: %w", err)
	}

	path := filepath.Join(dir, Filename(r.City, r.Country))
	if err := Build(r).Save(path); err != nil {
		return "", fmt.Errorf("saving document: %w", err)
	}
	return path, nil
}
