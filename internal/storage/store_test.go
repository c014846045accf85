package storage

import (
	"testing"

	"github.com/ridekick/insights-mcp/internal/models"
)

// setupStore creates a fresh insights DB in a temp directory.
func setupStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(t.TempDir())
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func seedRecords(t *testing.T, s *Store) {
	t.Helper()
	_, err := s.UpsertRecords([]models.ResearchRecord{
		{
			ID:           "r1",
			Title:        "Interview with Sam",
			Summary:      "Pricing came up a lot",
			Content:      "Long transcript about pricing and dealers",
			Participants: []string{"Sam Lee"},
			Projects:     []string{"ridekick"},
			CreatedAt:    "2025-01-02 10:00:00",
		},
		{
			ID:           "r2",
			Title:        "Interview with Pat",
			Summary:      "Negotiation stress",
			Participants: []string{"Pat"},
			Projects:     []string{"ridekick", "other"},
			CreatedAt:    "2025-01-03 10:00:00",
		},
		{
			ID:       "r3",
			Title:    "Unrelated study",
			Summary:  "Different effort entirely",
			Projects: []string{"other"},
		},
	})
	if err != nil {
		t.Fatalf("UpsertRecords: %v", err)
	}
}

func TestUpsertAndListByProject(t *testing.T) {
	s := setupStore(t)
	seedRecords(t, s)

	records, err := s.ListByProject("ridekick", 200)
	if err != nil {
		t.Fatalf("ListByProject: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("Expected 2 ridekick records, got %d", len(records))
	}

	// Newest first.
	if records[0].ID != "r2" {
		t.Errorf("records[0].ID = %q, want r2 (newest first)", records[0].ID)
	}
	if records[0].Participants[0] != "Pat" {
		t.Errorf("Participants = %v, want [Pat]", records[0].Participants)
	}
	if len(records[1].Projects) != 1 || records[1].Projects[0] != "ridekick" {
		t.Errorf("Projects = %v, want [ridekick]", records[1].Projects)
	}
}

func TestListByProjectLimit(t *testing.T) {
	s := setupStore(t)
	seedRecords(t, s)

	records, err := s.ListByProject("ridekick", 1)
	if err != nil {
		t.Fatalf("ListByProject: %v", err)
	}
	if len(records) != 1 {
		t.Errorf("Expected 1 record with limit 1, got %d", len(records))
	}
}

func TestListByProjectNoMatches(t *testing.T) {
	s := setupStore(t)
	seedRecords(t, s)

	records, err := s.ListByProject("missing", 200)
	if err != nil {
		t.Fatalf("ListByProject: %v", err)
	}
	if len(records) != 0 {
		t.Errorf("Expected no records for unknown project, got %d", len(records))
	}
}

func TestUpsertAssignsIDs(t *testing.T) {
	s := setupStore(t)

	n, err := s.UpsertRecords([]models.ResearchRecord{
		{Title: "No ID", Projects: []string{"ridekick"}},
	})
	if err != nil {
		t.Fatalf("UpsertRecords: %v", err)
	}
	if n != 1 {
		t.Fatalf("Expected 1 upserted record, got %d", n)
	}

	records, err := s.ListByProject("ridekick", 10)
	if err != nil {
		t.Fatal(err)
	}
	if len(records) != 1 || records[0].ID == "" {
		t.Error("Record should have an assigned ID")
	}
}

func TestUpsertReplaces(t *testing.T) {
	s := setupStore(t)
	seedRecords(t, s)

	_, err := s.UpsertRecords([]models.ResearchRecord{
		{ID: "r1", Title: "Interview with Sam (revised)", Projects: []string{"ridekick"}},
	})
	if err != nil {
		t.Fatalf("UpsertRecords: %v", err)
	}

	count, err := s.CountRecords()
	if err != nil {
		t.Fatal(err)
	}
	if count != 3 {
		t.Errorf("CountRecords = %d, want 3 (replace, not insert)", count)
	}
}

func TestSearchFTS(t *testing.T) {
	s := setupStore(t)
	seedRecords(t, s)

	results, err := s.Search("pricing")
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if len(results) != 1 {
		t.Fatalf("Expected 1 result for 'pricing', got %d", len(results))
	}
	if results[0].ID != "r1" {
		t.Errorf("Result = %q, want r1", results[0].ID)
	}

	results, err = s.Search("interview")
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if len(results) != 2 {
		t.Errorf("Expected 2 results for 'interview' (titles), got %d", len(results))
	}
}
