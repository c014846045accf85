package analysis

import (
	"fmt"
	"strings"
	"testing"

	"github.com/ridekick/insights-mcp/internal/models"
)

func TestEvaluateHypothesisEmpty(t *testing.T) {
	if _, err := EvaluateHypothesis("", nil); err == nil {
		t.Fatal("Expected error for empty hypothesis")
	}
	if _, err := EvaluateHypothesis("   ", nil); err == nil {
		t.Fatal("Expected error for blank hypothesis")
	}
}

func TestEvaluateHypothesisNegativeSentimentSupports(t *testing.T) {
	records := []models.ResearchRecord{
		{Title: "Interview A", Summary: "The pricing is so confusing and frustrating"},
		{Title: "Interview B", Summary: "Honestly the pricing felt confusing to me"},
		{Title: "Interview C", Summary: "Pricing pages were confusing and I gave up"},
	}

	result, err := EvaluateHypothesis("Users find car pricing confusing", records)
	if err != nil {
		t.Fatalf("EvaluateHypothesis: %v", err)
	}
	if result.Verdict != models.VerdictSupported {
		t.Fatalf("Verdict = %q, want SUPPORTED", result.Verdict)
	}
	if result.Confidence != models.ConfidenceMedium {
		t.Errorf("Confidence = %q, want MEDIUM (3 supporting)", result.Confidence)
	}
	if len(result.Supporting) != 3 {
		t.Errorf("Expected 3 supporting excerpts, got %d", len(result.Supporting))
	}
	if len(result.Contradicting) != 0 {
		t.Errorf("Expected no contradicting excerpts, got %d", len(result.Contradicting))
	}
	if result.Recommendation != "" {
		t.Errorf("SUPPORTED verdict should carry no advisory, got %q", result.Recommendation)
	}
}

func TestEvaluateHypothesisInsufficientEvidence(t *testing.T) {
	records := []models.ResearchRecord{
		{Title: "A", Summary: "pricing is so confusing here"},
		{Title: "B", Summary: "pricing felt frustrating"},
	}

	result, err := EvaluateHypothesis("Users find pricing confusing", records)
	if err != nil {
		t.Fatalf("EvaluateHypothesis: %v", err)
	}
	if result.Verdict != models.VerdictInsufficient {
		t.Errorf("Verdict = %q, want INSUFFICIENT_EVIDENCE for 2 excerpts", result.Verdict)
	}
	if result.Confidence != models.ConfidenceLow {
		t.Errorf("Confidence = %q, want LOW", result.Confidence)
	}
	if result.Recommendation == "" {
		t.Error("INSUFFICIENT_EVIDENCE should carry an advisory")
	}
}

func TestEvaluateHypothesisAllStopWords(t *testing.T) {
	records := []models.ResearchRecord{
		{Title: "A", Summary: "pricing is confusing"},
	}

	// Every token is either short or a stop word, so no keywords are
	// extracted and no record can match.
	result, err := EvaluateHypothesis("this that with", records)
	if err != nil {
		t.Fatalf("EvaluateHypothesis: %v", err)
	}
	if result.Verdict != models.VerdictInsufficient {
		t.Errorf("Verdict = %q, want INSUFFICIENT_EVIDENCE", result.Verdict)
	}
	if len(result.Supporting)+len(result.Contradicting)+result.NeutralMentions != 0 {
		t.Error("No record should match a keyword-free hypothesis")
	}
}

func TestEvaluateHypothesisContradictedHigh(t *testing.T) {
	var records []models.ResearchRecord
	for i := 0; i < 6; i++ {
		records = append(records, models.ResearchRecord{
			Title:   fmt.Sprintf("Interview %d", i),
			Summary: "pricing here was simple and clear, really easy",
		})
	}

	result, err := EvaluateHypothesis("Users find pricing confusing", records)
	if err != nil {
		t.Fatalf("EvaluateHypothesis: %v", err)
	}
	if result.Verdict != models.VerdictContradicted {
		t.Fatalf("Verdict = %q, want CONTRADICTED", result.Verdict)
	}
	if result.Confidence != models.ConfidenceHigh {
		t.Errorf("Confidence = %q, want HIGH (6 contradicting)", result.Confidence)
	}
	if len(result.Contradicting) != 5 {
		t.Errorf("Contradicting excerpts = %d, want 5 (capped)", len(result.Contradicting))
	}
}

func TestEvaluateHypothesisMixed(t *testing.T) {
	records := []models.ResearchRecord{
		{Title: "A", Summary: "pricing was confusing"},
		{Title: "B", Summary: "pricing was frustrating"},
		{Title: "C", Summary: "pricing was easy and clear"},
		{Title: "D", Summary: "pricing was simple and helpful"},
	}

	result, err := EvaluateHypothesis("Users struggle with pricing", records)
	if err != nil {
		t.Fatalf("EvaluateHypothesis: %v", err)
	}
	if result.Verdict != models.VerdictMixed {
		t.Fatalf("Verdict = %q, want MIXED (2 vs 2)", result.Verdict)
	}
	if result.Recommendation == "" {
		t.Error("MIXED verdict should carry an advisory")
	}
}

func TestEvaluateHypothesisNeutralAndDropped(t *testing.T) {
	records := []models.ResearchRecord{
		// Two keyword matches, balanced sentiment: neutral mention.
		{Title: "A", Summary: "pricing research notes with nothing remarkable"},
		// One keyword match, balanced sentiment: silently dropped.
		{Title: "B", Summary: "pricing came up once"},
	}

	result, err := EvaluateHypothesis("pricing research habits", records)
	if err != nil {
		t.Fatalf("EvaluateHypothesis: %v", err)
	}
	if result.NeutralMentions != 1 {
		t.Errorf("NeutralMentions = %d, want 1", result.NeutralMentions)
	}
	if len(result.Supporting) != 0 || len(result.Contradicting) != 0 {
		t.Error("Balanced records should not appear as evidence")
	}
}

func TestEvaluateHypothesisNoDoubleCounting(t *testing.T) {
	var records []models.ResearchRecord
	for i := 0; i < 10; i++ {
		summary := "pricing was confusing"
		if i%2 == 0 {
			summary = "pricing was easy and clear"
		}
		records = append(records, models.ResearchRecord{Title: fmt.Sprintf("R%d", i), Summary: summary})
	}

	result, err := EvaluateHypothesis("pricing experience", records)
	if err != nil {
		t.Fatalf("EvaluateHypothesis: %v", err)
	}

	seen := make(map[string]bool)
	for _, ev := range result.Supporting {
		seen[ev.Source] = true
	}
	for _, ev := range result.Contradicting {
		if seen[ev.Source] {
			t.Errorf("Record %q appears in both supporting and contradicting", ev.Source)
		}
	}
}

func TestEvaluateHypothesisExcerptTruncation(t *testing.T) {
	long := strings.Repeat("pricing was confusing. ", 20)
	records := []models.ResearchRecord{{Title: "A", Summary: long}}

	result, err := EvaluateHypothesis("pricing feelings overall", records)
	if err != nil {
		t.Fatalf("EvaluateHypothesis: %v", err)
	}
	if len(result.Supporting) != 1 {
		t.Fatalf("Expected 1 supporting excerpt, got %d", len(result.Supporting))
	}
	if len(result.Supporting[0].Excerpt) != 200 {
		t.Errorf("Excerpt length = %d, want 200", len(result.Supporting[0].Excerpt))
	}
}

func TestExtractKeywords(t *testing.T) {
	keywords := extractKeywords("Users find car pricing confusing and that is that")
	want := []string{"users", "find", "pricing", "confusing"}
	if len(keywords) != len(want) {
		t.Fatalf("keywords = %v, want %v", keywords, want)
	}
	for i := range want {
		if keywords[i] != want[i] {
			t.Errorf("keywords[%d] = %q, want %q", i, keywords[i], want[i])
		}
	}
}
