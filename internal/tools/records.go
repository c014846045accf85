package tools

import (
	"context"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"go.uber.org/zap"

	"github.com/ridekick/insights-mcp/internal/models"
	"github.com/ridekick/insights-mcp/internal/storage"
)

type RecordInput struct {
	ID           string   `json:"id,omitempty" jsonschema:"Record identifier; generated when omitted"`
	Title        string   `json:"title" jsonschema:"Short display title"`
	Summary      string   `json:"summary,omitempty" jsonschema:"Short free-text summary"`
	Content      string   `json:"content,omitempty" jsonschema:"Long free-text content (e.g. transcript)"`
	Participants []string `json:"participants,omitempty" jsonschema:"Ordered speaker names"`
	Projects     []string `json:"projects,omitempty" jsonschema:"Project tags the record belongs to"`
	CreatedAt    string   `json:"created_at,omitempty" jsonschema:"Creation timestamp; defaults to now"`
}

type ImportRecordsInput struct {
	Records []RecordInput `json:"records" jsonschema:"Research records to import into the local store" validate:"required,min=1"`
}

type SearchRecordsInput struct {
	Query string `json:"query" jsonschema:"Full-text query (FTS5 syntax: AND, OR, NOT, prefix*)" validate:"required"`
}

// requireStore guards tools that need the local record store, which is only
// available when a data directory is configured.
func (t *ResearchTools) requireStore() (*storage.Store, *mcp.CallToolResult) {
	if t.Store == nil {
		return nil, toolError("No local record store configured. Set INSIGHTS_DATA_DIR to enable this tool.")
	}
	return t.Store, nil
}

func (t *ResearchTools) ImportRecords(_ context.Context, _ *mcp.CallToolRequest, input ImportRecordsInput) (*mcp.CallToolResult, any, error) {
	store, errResult := t.requireStore()
	if errResult != nil {
		return errResult, nil, nil
	}
	if err := t.validate.Struct(input); err != nil {
		return toolError("Invalid input: %v", err), nil, nil
	}

	records := make([]models.ResearchRecord, len(input.Records))
	for i, r := range input.Records {
		records[i] = models.ResearchRecord{
			ID:           r.ID,
			Title:        r.Title,
			Summary:      r.Summary,
			Content:      r.Content,
			Participants: r.Participants,
			Projects:     r.Projects,
			CreatedAt:    r.CreatedAt,
		}
	}

	count, err := store.UpsertRecords(records)
	if err != nil {
		return toolError("Failed to import records: %v", err), nil, nil
	}

	t.Logger.Info("records imported", zap.Int("count", count))
	return toolText(fmt.Sprintf("Imported %d records.", count)), nil, nil
}

func (t *ResearchTools) SearchRecords(_ context.Context, _ *mcp.CallToolRequest, input SearchRecordsInput) (*mcp.CallToolResult, any, error) {
	store, errResult := t.requireStore()
	if errResult != nil {
		return errResult, nil, nil
	}
	if err := t.validate.Struct(input); err != nil {
		return toolError("Search query is required"), nil, nil
	}

	records, err := store.Search(input.Query)
	if err != nil {
		return toolError("Search failed: %v", err), nil, nil
	}
	if records == nil {
		records = []models.ResearchRecord{}
	}

	return toolJSON(records)
}
