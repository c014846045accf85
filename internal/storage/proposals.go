package storage

import (
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"github.com/ridekick/insights-mcp/internal/models"
)

// CreateProposal stores a generated document as pending human review and
// returns it with its assigned ID.
func (s *Store) CreateProposal(title, content, project string) (*models.Proposal, error) {
	id := uuid.New().String()

	_, err := s.db.Exec(
		`INSERT INTO proposals (id, title, content, project) VALUES (?, ?, ?, ?)`,
		id, title, content, project,
	)
	if err != nil {
		return nil, fmt.Errorf("insert proposal: %w", err)
	}

	return s.GetProposal(id)
}

// GetProposal looks up a proposal by ID.
func (s *Store) GetProposal(id string) (*models.Proposal, error) {
	row := s.db.QueryRow(
		`SELECT id, title, content, project, status, created_at, updated_at FROM proposals WHERE id = ?`,
		id,
	)
	var p models.Proposal
	err := row.Scan(&p.ID, &p.Title, &p.Content, &p.Project, &p.Status, &p.CreatedAt, &p.UpdatedAt)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("proposal %q not found", id)
	}
	if err != nil {
		return nil, fmt.Errorf("scan proposal: %w", err)
	}
	return &p, nil
}

// ListProposals returns proposals filtered by status. Use "all" for no filter.
func (s *Store) ListProposals(status string) ([]models.Proposal, error) {
	var rows *sql.Rows
	var err error

	if status == "all" {
		rows, err = s.db.Query(
			`SELECT id, title, content, project, status, created_at, updated_at FROM proposals ORDER BY created_at DESC`,
		)
	} else {
		rows, err = s.db.Query(
			`SELECT id, title, content, project, status, created_at, updated_at FROM proposals WHERE status = ? ORDER BY created_at DESC`,
			status,
		)
	}
	if err != nil {
		return nil, fmt.Errorf("list proposals: %w", err)
	}
	defer rows.Close()

	var proposals []models.Proposal
	for rows.Next() {
		var p models.Proposal
		if err := rows.Scan(&p.ID, &p.Title, &p.Content, &p.Project, &p.Status, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan proposal: %w", err)
		}
		proposals = append(proposals, p)
	}
	return proposals, rows.Err()
}

// ReviewProposal moves a pending proposal to approved or rejected.
func (s *Store) ReviewProposal(id, decision string) (*models.Proposal, error) {
	if decision != "approved" && decision != "rejected" {
		return nil, fmt.Errorf("decision must be approved or rejected, got %q", decision)
	}

	result, err := s.db.Exec(
		`UPDATE proposals SET status = ?, updated_at = datetime('now') WHERE id = ? AND status = 'pending'`,
		decision, id,
	)
	if err != nil {
		return nil, fmt.Errorf("update proposal status: %w", err)
	}
	n, _ := result.RowsAffected()
	if n == 0 {
		return nil, fmt.Errorf("no pending proposal with id %q", id)
	}
	return s.GetProposal(id)
}
