package storage

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	_ "github.com/ncruces/go-sqlite3/driver"
	_ "github.com/ncruces/go-sqlite3/embed"

	"github.com/ridekick/insights-mcp/internal/models"
)

// Store manages the local insights database holding research records and
// pending proposals.
type Store struct {
	db      *sql.DB
	dataDir string
}

// Open opens (or creates) the insights database under dataDir and runs
// migrations.
func Open(dataDir string) (*Store, error) {
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return nil, fmt.Errorf("create data dir: %w", err)
	}

	dbPath := filepath.Join(dataDir, "insights.db")
	db, err := sql.Open("sqlite3", "file:"+dbPath+"?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)&_pragma=synchronous(NORMAL)&_pragma=foreign_keys(ON)")
	if err != nil {
		return nil, fmt.Errorf("open insights db: %w", err)
	}

	if _, err := db.Exec(Schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate insights db: %w", err)
	}
	if _, err := db.Exec(Triggers); err != nil {
		db.Close()
		return nil, fmt.Errorf("create fts triggers: %w", err)
	}

	return &Store{db: db, dataDir: dataDir}, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// DataDir returns the base data directory.
func (s *Store) DataDir() string {
	return s.dataDir
}

// UpsertRecords inserts or replaces research records. Records without an ID
// are assigned one.
func (s *Store) UpsertRecords(records []models.ResearchRecord) (int, error) {
	tx, err := s.db.Begin()
	if err != nil {
		return 0, fmt.Errorf("begin upsert: %w", err)
	}
	defer tx.Rollback()

	count := 0
	for _, r := range records {
		if r.ID == "" {
			r.ID = uuid.New().String()
		}
		participants, err := json.Marshal(emptyIfNil(r.Participants))
		if err != nil {
			return 0, fmt.Errorf("marshal participants: %w", err)
		}
		projects, err := json.Marshal(emptyIfNil(r.Projects))
		if err != nil {
			return 0, fmt.Errorf("marshal projects: %w", err)
		}

		if r.CreatedAt == "" {
			_, err = tx.Exec(
				`INSERT OR REPLACE INTO records (id, title, summary, content, participants, projects) VALUES (?, ?, ?, ?, ?, ?)`,
				r.ID, r.Title, r.Summary, r.Content, string(participants), string(projects),
			)
		} else {
			_, err = tx.Exec(
				`INSERT OR REPLACE INTO records (id, title, summary, content, participants, projects, created_at) VALUES (?, ?, ?, ?, ?, ?, ?)`,
				r.ID, r.Title, r.Summary, r.Content, string(participants), string(projects), r.CreatedAt,
			)
		}
		if err != nil {
			return 0, fmt.Errorf("upsert record %q: %w", r.ID, err)
		}
		count++
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("commit upsert: %w", err)
	}
	return count, nil
}

// ListByProject returns up to limit records tagged with the given project,
// newest first.
func (s *Store) ListByProject(project string, limit int) ([]models.ResearchRecord, error) {
	rows, err := s.db.Query(
		`SELECT id, title, summary, content, participants, projects, created_at FROM records
		 WHERE EXISTS (SELECT 1 FROM json_each(records.projects) WHERE json_each.value = ?)
		 ORDER BY created_at DESC LIMIT ?`,
		project, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("list records: %w", err)
	}
	defer rows.Close()

	return scanRecords(rows)
}

// CountRecords returns the total number of stored records.
func (s *Store) CountRecords() (int, error) {
	var n int
	if err := s.db.QueryRow(`SELECT COUNT(*) FROM records`).Scan(&n); err != nil {
		return 0, fmt.Errorf("count records: %w", err)
	}
	return n, nil
}

func scanRecords(rows *sql.Rows) ([]models.ResearchRecord, error) {
	var records []models.ResearchRecord
	for rows.Next() {
		var r models.ResearchRecord
		var participants, projects string
		if err := rows.Scan(&r.ID, &r.Title, &r.Summary, &r.Content, &participants, &projects, &r.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan record: %w", err)
		}
		if err := json.Unmarshal([]byte(participants), &r.Participants); err != nil {
			return nil, fmt.Errorf("decode participants: %w", err)
		}
		if err := json.Unmarshal([]byte(projects), &r.Projects); err != nil {
			return nil, fmt.Errorf("decode projects: %w", err)
		}
		records = append(records, r)
	}
	return records, rows.Err()
}

func emptyIfNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
