// File: services/assistant/classifier.go
package assistant

import "strings"

// keywordRule binds one trigger substring to a category. Rules are ordered;
// classification returns the category of the first keyword found in the
// input, so earlier rules win over later ones.
type keywordRule struct {
	Keyword  string
	Category string
}

var serviceKeywords = []keywordRule{
	{"computer", "IT & Tech Support"},
	{"laptop", "IT & Tech Support"},
	{"pc", "IT & Tech Support"},
	{"tech", "IT & Tech Support"},
	{"plumb", "Plumbing Services"},
	{"leak", "Plumbing Services"},
	{"pipe", "Plumbing Services"},
	{"toilet", "Plumbing Services"},
	{"sink", "Plumbing Services"},
	{"faucet", "Plumbing Services"},
	{"electric", "Electrical Services"},
	{"wiring", "Electrical Services"},
	{"outlet", "Electrical Services"},
	{"power", "Electrical Services"},
	{"lighting", "Electrical Services"},
	{"hvac", "HVAC Services"},
	{"heating", "HVAC Services"},
	{"cooling", "HVAC Services"},
	{"air conditioning", "HVAC Services"},
	{"ac", "HVAC Services"},
	{"furnace", "HVAC Services"},
	{"car", "Car Repair & Maintenance"},
	{"auto", "Car Repair & Maintenance"},
	{"vehicle", "Car Repair & Maintenance"},
	{"brake", "Car Repair & Maintenance"},
	{"engine", "Car Repair & Maintenance"},
	{"clean", "House Cleaning"},
	{"cleaning", "House Cleaning"},
	{"paint", "Painting Services"},
	{"painting", "Painting Services"},
	{"handyman", "General Handyman"},
	{"repair", "General Handyman"},
}

// categoryDescriptions feeds the found-providers reply.
var categoryDescriptions = map[string]string{
	"IT & Tech Support":        "computer repair, network setup, smart home installation, and tech troubleshooting",
	"Plumbing Services":        "leak repair, drain cleaning, fixture installation, and water heater services",
	"Electrical Services":      "outlet installation, lighting repair, wiring, and electrical safety",
	"HVAC Services":            "AC repair/installation, heating system maintenance, and duct cleaning",
	"Car Repair & Maintenance": "engine diagnostics, brake repair, oil changes, and general automotive maintenance",
	"House Cleaning":           "regular cleaning, deep cleaning, and move-in/out cleaning services",
	"Painting Services":        "interior and exterior painting for residential and commercial properties",
	"General Handyman":         "home repairs, furniture assembly, and general maintenance tasks",
}

// noMatchPrompt enumerates the supported categories when no keyword matches.
const noMatchPrompt = "I understand you need help with a service. Could you please specify which type of service you're looking for?\n\n" +
	"• Computer/IT repair\n" +
	"• Plumbing\n" +
	"• Electrical work\n" +
	"• HVAC (heating/cooling)\n" +
	"• Auto repair\n" +
	"• House cleaning\n" +
	"• Painting\n" +
	"• General handyman services\n\n" +
	"Once you tell me the service type, I can find the perfect professional for your needs!"

// ClassifyService maps a free-text utterance to a category by scanning the
// keyword dictionary in order; the first keyword found as a substring of the
// lowercased input wins. No scoring, no fuzzy matching.
func ClassifyService(input string) (string, bool) {
	lower := strings.ToLower(input)
	for _, rule := range serviceKeywords {
		if strings.Contains(lower, rule.Keyword) {
			return rule.Category, true
		}
	}
	return "", false
}

// describeCategory returns the blurb for a category.
func describeCategory(category string) string {
	if d, ok := categoryDescriptions[category]; ok {
		return d
	}
	return "various professional services"
}
