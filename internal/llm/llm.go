package llm

import (
	"context"
	"fmt"
)

// Generator produces free-form analysis text for a prompt.
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// Fixed sampling parameters for feasibility narratives. TopK and
// RepetitionPenalty only apply to the together provider; the openai
// provider has no equivalent knobs.
const (
	MaxTokens         = 4096
	Temperature       = 0.2
	TopP              = 0.9
	TopK              = 50
	RepetitionPenalty = 1.1
)

// StopSequences ends generation before the model starts a new fake query.
var StopSequences = []string{"City:"}

// BuildPrompt interpolates the search context and the query into the fixed
// feasibility analysis prompt.
func BuildPrompt(searchContext, city, country, sector string) string {
	return fmt.Sprintf("Context: %s\n\nCity: %s\nCountry: %s\nSector: %s\n\n"+
		"Provide a detailed and extensive feasibility analysis on starting a business in the '%s' sector in %s, %s. "+
		"The information should be accurate, complete, and based on real data. "+
		"Include statistics, relevant numerical data, market analysis, entry barriers, and any additional information that may be of interest. "+
		"Make sure to cover multiple aspects of business feasibility.\n\n"+
		"Where possible, include numerical data that can be used to create charts. "+
		"For example, you could provide market size projections over the next 5 years, or a breakdown of market share by competitors.\n\n"+
		"Feasibility analysis:",
		searchContext, city, country, sector, sector, city, country)
}
