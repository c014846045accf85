package source

import (
	"context"

	"github.com/ridekick/insights-mcp/internal/config"
	"github.com/ridekick/insights-mcp/internal/models"
)

// DefaultLimit bounds the number of records one fetch may return, which in
// turn bounds all downstream analysis work.
const DefaultLimit = 200

// Fetcher retrieves the research records for a project. Implementations
// treat an unavailable upstream as "no evidence" and return an empty slice
// rather than an error; errors are reserved for local faults.
type Fetcher interface {
	Fetch(ctx context.Context, project string) ([]models.ResearchRecord, error)
}

func projectOrDefault(project string) string {
	if project == "" {
		return config.DefaultProject
	}
	return project
}
