package storage

import (
	"fmt"

	"github.com/ridekick/insights-mcp/internal/models"
)

// Search performs FTS5 full-text search across record titles, summaries and
// content. Results come back newest first.
func (s *Store) Search(query string) ([]models.ResearchRecord, error) {
	rows, err := s.db.Query(
		`SELECT r.id, r.title, r.summary, r.content, r.participants, r.projects, r.created_at
		 FROM records r
		 JOIN records_fts ON records_fts.rowid = r.rowid
		 WHERE records_fts MATCH ?
		 ORDER BY r.created_at DESC`,
		query,
	)
	if err != nil {
		return nil, fmt.Errorf("search records fts: %w", err)
	}
	defer rows.Close()

	return scanRecords(rows)
}
