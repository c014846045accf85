package source

import (
	"context"

	"github.com/ridekick/insights-mcp/internal/models"
	"github.com/ridekick/insights-mcp/internal/storage"
)

// StoreSource fetches records from the local insights database. It is
// preferred over the table endpoint whenever a data directory is configured.
type StoreSource struct {
	store *storage.Store
}

// NewStoreSource wraps an open record store as a Fetcher.
func NewStoreSource(store *storage.Store) *StoreSource {
	return &StoreSource{store: store}
}

// Fetch returns the project's records from the local store, newest first.
func (s *StoreSource) Fetch(_ context.Context, project string) ([]models.ResearchRecord, error) {
	return s.store.ListByProject(projectOrDefault(project), DefaultLimit)
}
