// Package utm builds campaign tracking links.
package utm

import (
	"net/url"
	"strings"
)

// Params are the five UTM fields of an assignment.
type Params struct {
	Source   string
	Medium   string
	Campaign string
	Content  string
	Term     string
}

// Patch is a partial update; nil means "keep the stored value".
type Patch struct {
	Source   *string
	Medium   *string
	Campaign *string
	Content  *string
	Term     *string
}

// Touched reports whether the patch sets any UTM field.
func (p Patch) Touched() bool {
	return p.Source != nil || p.Medium != nil || p.Campaign != nil || p.Content != nil || p.Term != nil
}

// Apply merges the patch over stored values.
func (p Patch) Apply(stored Params) Params {
	merged := stored
	if p.Source != nil {
		merged.Source = *p.Source
	}
	if p.Medium != nil {
		merged.Medium = *p.Medium
	}
	if p.Campaign != nil {
		merged.Campaign = *p.Campaign
	}
	if p.Content != nil {
		merged.Content = *p.Content
	}
	if p.Term != nil {
		merged.Term = *p.Term
	}
	return merged
}

type Generator struct {
	baseURL string
}

func NewGenerator(baseURL string) *Generator {
	return &Generator{baseURL: baseURL}
}

// Generate returns the tracking link, or nil when source, medium and
// campaign are all empty. Output depends only on p.
func (g *Generator) Generate(p Params) *string {
	if p.Source == "" && p.Medium == "" && p.Campaign == "" {
		return nil
	}

	fields := []struct{ key, value string }{
		{"utm_source", p.Source},
		{"utm_medium", p.Medium},
		{"utm_campaign", p.Campaign},
		{"utm_content", p.Content},
		{"utm_term", p.Term},
	}
	parts := make([]string, 0, len(fields))
	for _, f := range fields {
		if f.value != "" {
			parts = append(parts, f.key+"="+url.QueryEscape(f.value))
		}
	}

	sep := "?"
	if strings.Contains(g.baseURL, "?") {
		sep = "&"
	}
	link := g.baseURL + sep + strings.Join(parts, "&")
	return &link
}

// Regenerate merges patch over stored and rebuilds the link from all five
// merged fields.
func (g *Generator) Regenerate(stored Params, patch Patch) (Params, *string) {
	merged := patch.Apply(stored)
	return merged, g.Generate(merged)
}
