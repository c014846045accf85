package analysis

import (
	"sort"
	"strings"

	"github.com/ridekick/insights-mcp/internal/models"
)

const (
	// NoPainPoints is reported when no category matched any record.
	NoPainPoints = "None identified"

	lowSampleAdvice = "Fewer than 5 sources were analyzed; treat these frequencies as directional only."

	maxSampleSources = 3
	maxSampleQuotes  = 3
	minQuoteLength   = 20
	maxQuoteLength   = 200
	defaultPainLimit = 10
	lowSampleFloor   = 5
)

// categoryAccumulator tracks one category's matches across records.
type categoryAccumulator struct {
	frequency int
	titles    map[string]bool
	sources   []string
	quotes    []string
}

// ClassifyPainPoints scans each record against the fixed category rules and
// ranks the matched categories by frequency. limit caps the returned list;
// values below 1 fall back to the default of 10.
func ClassifyPainPoints(records []models.ResearchRecord, limit int) *models.PainPointReport {
	if limit < 1 {
		limit = defaultPainLimit
	}

	accs := make([]categoryAccumulator, len(painPointRules))
	for i := range accs {
		accs[i].titles = make(map[string]bool)
	}

	for _, r := range records {
		text := r.Summary + " " + r.Content
		for i, rule := range painPointRules {
			if !rule.pattern.MatchString(text) {
				continue
			}
			acc := &accs[i]
			acc.frequency++
			if !acc.titles[r.Title] {
				acc.titles[r.Title] = true
				if len(acc.sources) < maxSampleSources {
					acc.sources = append(acc.sources, r.Title)
				}
			}
			if len(acc.quotes) < maxSampleQuotes {
				if quote, ok := extractQuote(text, rule.keywords); ok {
					acc.quotes = append(acc.quotes, quote)
				}
			}
		}
	}

	var points []models.PainPointCategory
	for i, rule := range painPointRules {
		acc := accs[i]
		if acc.frequency == 0 {
			continue
		}
		points = append(points, models.PainPointCategory{
			Category:      rule.category,
			Frequency:     acc.frequency,
			SourcesCount:  len(acc.titles),
			SampleSources: acc.sources,
			SampleQuotes:  acc.quotes,
		})
	}

	sort.SliceStable(points, func(i, j int) bool {
		return points[i].Frequency > points[j].Frequency
	})
	if len(points) > limit {
		points = points[:limit]
	}

	report := &models.PainPointReport{
		TotalSourcesAnalyzed: len(records),
		PainPoints:           points,
		TopPainPoint:         NoPainPoints,
	}
	if len(points) > 0 {
		report.TopPainPoint = points[0].Category
	}
	if len(records) < lowSampleFloor {
		report.Note = lowSampleAdvice
	}
	return report
}

// extractQuote returns the first sentence of text that contains one of the
// keywords (case-insensitive) and is usefully sized for display.
func extractQuote(text string, keywords []string) (string, bool) {
	sentences := strings.FieldsFunc(text, func(r rune) bool {
		return r == '.' || r == '!' || r == '?'
	})
	for _, sentence := range sentences {
		sentence = strings.TrimSpace(sentence)
		if len(sentence) <= minQuoteLength || len(sentence) >= maxQuoteLength {
			continue
		}
		lower := strings.ToLower(sentence)
		for _, kw := range keywords {
			if strings.Contains(lower, kw) {
				return sentence, true
			}
		}
	}
	return "", false
}
