package services

import "strings"

// BioAnalysis is what keyword matching can tell about an influencer bio.
type BioAnalysis struct {
	Industry      string
	ExpertiseTags []string
	// Score is 0..100.
	Score int
}

type keywordGroup struct {
	label    string
	keywords []string
}

// Industries are checked in order; the first match wins.
var industryKeywords = []keywordGroup{
	{"SaaS", []string{"saas", "software", "tech", "startup", "b2b", "enterprise"}},
	{"Marketing", []string{"marketing", "growth", "demand gen", "brand", "content"}},
	{"Sales", []string{"sales", "revenue", "b2b sales", "account executive"}},
	{"Product", []string{"product", "pm", "product manager", "ux", "design"}},
	{"Technology", []string{"tech", "engineering", "developer", "cto"}},
}

var tagKeywords = []struct{ keyword, tag string }{
	{"growth", "Growth Marketing"},
	{"saas", "SaaS"},
	{"b2b", "B2B Strategy"},
	{"marketing", "Marketing"},
	{"product", "Product Management"},
	{"sales", "Sales"},
	{"startup", "Entrepreneurship"},
}

const defaultIndustry = "Technology"

// AnalyzeBio classifies a bio by fixed keyword lists and scores how well the
// influencer is likely to reach B2B buyers.
func AnalyzeBio(bio string) BioAnalysis {
	lower := strings.ToLower(bio)

	industry := defaultIndustry
	for _, g := range industryKeywords {
		if containsAny(lower, g.keywords) {
			industry = g.label
			break
		}
	}

	tags := []string{}
	for _, k := range tagKeywords {
		if strings.Contains(lower, k.keyword) {
			tags = append(tags, k.tag)
		}
	}

	score := 60
	if industry == "SaaS" || industry == "Marketing" {
		score += 20
	}
	if strings.Contains(lower, "b2b") {
		score += 15
	}
	if hasAny(tags, "Growth Marketing", "B2B Strategy") {
		score += 10
	}
	if score > 100 {
		score = 100
	}

	return BioAnalysis{Industry: industry, ExpertiseTags: tags, Score: score}
}

func containsAny(s string, keywords []string) bool {
	for _, k := range keywords {
		if strings.Contains(s, k) {
			return true
		}
	}
	return false
}

func hasAny(list []string, values ...string) bool {
	for _, item := range list {
		for _, v := range values {
			if item == v {
				return true
			}
		}
	}
	return false
}
