package analysis

import (
	"fmt"
	"testing"

	"github.com/ridekick/insights-mcp/internal/models"
)

func findCategory(t *testing.T, report *models.PainPointReport, name string) models.PainPointCategory {
	t.Helper()
	for _, p := range report.PainPoints {
		if p.Category == name {
			return p
		}
	}
	t.Fatalf("Category %q not found in %v", name, report.PainPoints)
	return models.PainPointCategory{}
}

func TestClassifyPainPointsScenario(t *testing.T) {
	records := []models.ResearchRecord{
		{Title: "A", Summary: "The pricing was confusing and I felt scammed", Participants: []string{"Sam"}},
	}

	report := ClassifyPainPoints(records, 10)
	if report.TotalSourcesAnalyzed != 1 {
		t.Errorf("TotalSourcesAnalyzed = %d, want 1", report.TotalSourcesAnalyzed)
	}

	for _, name := range []string{"Pricing Confusion", "Trust Issues", "Complexity"} {
		cat := findCategory(t, report, name)
		if cat.Frequency != 1 {
			t.Errorf("%s frequency = %d, want 1", name, cat.Frequency)
		}
		if cat.SourcesCount != 1 {
			t.Errorf("%s sources count = %d, want 1", name, cat.SourcesCount)
		}
	}
	if len(report.PainPoints) != 3 {
		t.Errorf("Expected exactly 3 matched categories, got %d", len(report.PainPoints))
	}

	// The summary sentence qualifies as a quote for each category.
	pricing := findCategory(t, report, "Pricing Confusion")
	if len(pricing.SampleQuotes) != 1 {
		t.Fatalf("Expected 1 sample quote, got %d", len(pricing.SampleQuotes))
	}
	if pricing.SampleQuotes[0] != "The pricing was confusing and I felt scammed" {
		t.Errorf("Quote = %q", pricing.SampleQuotes[0])
	}
}

func TestClassifyPainPointsEmpty(t *testing.T) {
	report := ClassifyPainPoints(nil, 10)
	if report.TotalSourcesAnalyzed != 0 {
		t.Errorf("TotalSourcesAnalyzed = %d, want 0", report.TotalSourcesAnalyzed)
	}
	if len(report.PainPoints) != 0 {
		t.Errorf("Expected no pain points, got %d", len(report.PainPoints))
	}
	if report.TopPainPoint != NoPainPoints {
		t.Errorf("TopPainPoint = %q, want %q", report.TopPainPoint, NoPainPoints)
	}
	if report.Note == "" {
		t.Error("Expected low-sample note for 0 records")
	}
}

func TestClassifyPainPointsFrequencyBound(t *testing.T) {
	var records []models.ResearchRecord
	for i := 0; i < 7; i++ {
		records = append(records, models.ResearchRecord{
			Title:   fmt.Sprintf("Interview %d", i),
			Summary: "The dealer at the dealership pressured me, the salesperson too",
		})
	}

	report := ClassifyPainPoints(records, 10)
	for _, p := range report.PainPoints {
		if p.Frequency > len(records) {
			t.Errorf("%s frequency %d exceeds record count %d", p.Category, p.Frequency, len(records))
		}
	}

	dealer := findCategory(t, report, "Dealer Experience")
	if dealer.Frequency != 7 {
		t.Errorf("Dealer Experience frequency = %d, want 7 (once per record)", dealer.Frequency)
	}
	if len(dealer.SampleSources) != 3 {
		t.Errorf("SampleSources = %d, want 3 (capped)", len(dealer.SampleSources))
	}
	if len(dealer.SampleQuotes) != 3 {
		t.Errorf("SampleQuotes = %d, want 3 (capped)", len(dealer.SampleQuotes))
	}
	if report.Note != "" {
		t.Errorf("No low-sample note expected for 7 records, got %q", report.Note)
	}
}

func TestClassifyPainPointsRanking(t *testing.T) {
	records := []models.ResearchRecord{
		{Title: "A", Summary: "I had to negotiate and haggle forever"},
		{Title: "B", Summary: "Negotiating the price down was awful"},
		{Title: "C", Summary: "There were hidden fees on the invoice"},
	}

	report := ClassifyPainPoints(records, 10)
	if report.TopPainPoint != "Negotiation Anxiety" {
		t.Errorf("TopPainPoint = %q, want Negotiation Anxiety", report.TopPainPoint)
	}
	if report.PainPoints[0].Frequency < report.PainPoints[len(report.PainPoints)-1].Frequency {
		t.Error("Pain points not sorted descending by frequency")
	}
}

func TestClassifyPainPointsLimit(t *testing.T) {
	records := []models.ResearchRecord{
		{Title: "A", Summary: "The dealer pressured me to negotiate the financing and the hidden fees were confusing"},
	}

	report := ClassifyPainPoints(records, 2)
	if len(report.PainPoints) > 2 {
		t.Errorf("Expected at most 2 categories with limit 2, got %d", len(report.PainPoints))
	}
}

func TestClassifyPainPointsQuoteLengthBounds(t *testing.T) {
	records := []models.ResearchRecord{
		// Sentence with the keyword is too short to quote.
		{Title: "A", Summary: "Scam. It was fine otherwise and nothing else came up at all"},
	}

	report := ClassifyPainPoints(records, 10)
	trust := findCategory(t, report, "Trust Issues")
	if len(trust.SampleQuotes) != 0 {
		t.Errorf("Expected no quotes (keyword sentence too short), got %v", trust.SampleQuotes)
	}
}

func TestExtractQuote(t *testing.T) {
	text := "Bad. The dealership visit was really stressful for me! Short one."
	quote, ok := extractQuote(text, []string{"dealership"})
	if !ok {
		t.Fatal("Expected a quote")
	}
	if quote != "The dealership visit was really stressful for me" {
		t.Errorf("quote = %q", quote)
	}

	if _, ok := extractQuote("No keyword here at all in this sentence", []string{"dealer"}); ok {
		t.Error("Expected no quote without keyword hit")
	}
}
