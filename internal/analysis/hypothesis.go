package analysis

import (
	"errors"
	"strings"

	"github.com/ridekick/insights-mcp/internal/models"
)

const (
	maxEvidence       = 5
	evidenceMaxLength = 200
	minKeywordLength  = 4
)

// Advisory notes attached to weak verdicts.
const (
	insufficientAdvice = "Not enough matching evidence to evaluate this hypothesis. Consider running more interviews that touch on this topic."
	mixedAdvice        = "Evidence is mixed. Review the supporting and contradicting excerpts and consider a targeted follow-up study."
)

// ErrEmptyHypothesis is returned when the hypothesis text is missing.
var ErrEmptyHypothesis = errors.New("hypothesis is required")

// EvaluateHypothesis scans records for hypothesis keywords and derives a
// verdict from the sentiment of the matching records.
func EvaluateHypothesis(hypothesis string, records []models.ResearchRecord) (*models.HypothesisVerdict, error) {
	hypothesis = strings.TrimSpace(hypothesis)
	if hypothesis == "" {
		return nil, ErrEmptyHypothesis
	}

	keywords := extractKeywords(hypothesis)

	var supporting, contradicting []models.Evidence
	neutral := 0

	for _, r := range records {
		text := strings.ToLower(r.Summary + " " + r.Content)

		matchCount := 0
		for _, kw := range keywords {
			if strings.Contains(text, kw) {
				matchCount++
			}
		}
		if matchCount == 0 {
			continue
		}

		positive := countVocabularyHits(text, positiveWords)
		negative := countVocabularyHits(text, negativeWords)

		ev := models.Evidence{Source: r.Title, Excerpt: truncateText(r.Summary, evidenceMaxLength)}
		switch {
		case negative > positive:
			supporting = append(supporting, ev)
		case positive > negative:
			contradicting = append(contradicting, ev)
		case matchCount >= 2:
			neutral++
		}
		// Ties with a single keyword match are too weak to report.
	}

	s, c := len(supporting), len(contradicting)

	result := &models.HypothesisVerdict{
		Hypothesis:      hypothesis,
		NeutralMentions: neutral,
	}

	switch {
	case s+c < 3:
		result.Verdict = models.VerdictInsufficient
		result.Confidence = models.ConfidenceLow
		result.Recommendation = insufficientAdvice
	case s > 2*c:
		result.Verdict = models.VerdictSupported
		result.Confidence = models.ConfidenceMedium
		if s >= 5 {
			result.Confidence = models.ConfidenceHigh
		}
	case c > 2*s:
		result.Verdict = models.VerdictContradicted
		result.Confidence = models.ConfidenceMedium
		if c >= 5 {
			result.Confidence = models.ConfidenceHigh
		}
	default:
		result.Verdict = models.VerdictMixed
		result.Confidence = models.ConfidenceMedium
		result.Recommendation = mixedAdvice
	}

	// Verdict counts come from the full lists; only the reported excerpts
	// are capped.
	if len(supporting) > maxEvidence {
		supporting = supporting[:maxEvidence]
	}
	if len(contradicting) > maxEvidence {
		contradicting = contradicting[:maxEvidence]
	}
	result.Supporting = supporting
	result.Contradicting = contradicting

	return result, nil
}

// extractKeywords tokenizes the hypothesis on whitespace, lowercases, and
// drops short tokens, stop words, and duplicates.
func extractKeywords(hypothesis string) []string {
	seen := make(map[string]bool)
	var keywords []string
	for _, token := range strings.Fields(strings.ToLower(hypothesis)) {
		if len(token) < minKeywordLength || stopWords[token] || seen[token] {
			continue
		}
		seen[token] = true
		keywords = append(keywords, token)
	}
	return keywords
}

// countVocabularyHits counts how many vocabulary words occur as substrings
// of text. Text must already be lowercased.
func countVocabularyHits(text string, vocabulary []string) int {
	hits := 0
	for _, word := range vocabulary {
		if strings.Contains(text, word) {
			hits++
		}
	}
	return hits
}

func truncateText(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max]
}
