package service

// Sectors is the fixed industry/business/service catalogue offered by the
// selector. Free-text ideas go through CustomSectorOption instead.
var Sectors = []string{
	"Manufacturing Industry", "Retail Trade", "Tourism", "Information Technology",
	"Agriculture", "Transport and Logistics", "Private Education", "Healthcare", "Restaurants and Cafes",
	"Construction", "Financial Services", "Handicrafts", "Audiovisual Production", "Renewable Energy",
	"Telecommunications", "Consulting Services", "Real Estate", "Fashion and Textiles",
}

// CustomSectorOption is the selector's free-text escape hatch.
const CustomSectorOption = "Describe your own entrepreneurship idea"

// customIdeaPrefix marks free-text ideas so they read as a sector name in
// prompts and reports.
const customIdeaPrefix = "Custom idea: "

// SectorOptions is the selector content: the catalogue plus the escape hatch.
func SectorOptions() []string {
	return append(append([]string{}, Sectors...), CustomSectorOption)
}
