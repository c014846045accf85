package tools

import (
	"context"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"go.uber.org/zap"

	"github.com/ridekick/insights-mcp/internal/ai"
	"github.com/ridekick/insights-mcp/internal/analysis"
	"github.com/ridekick/insights-mcp/internal/models"
	"github.com/ridekick/insights-mcp/internal/source"
	"github.com/ridekick/insights-mcp/internal/storage"
)

// ResearchTools holds the dependencies shared by all tool handlers. Store
// and Analyst are optional capabilities; handlers that need them guard and
// fail with a descriptive message when they are absent.
type ResearchTools struct {
	Source   source.Fetcher
	Store    *storage.Store
	Analyst  *ai.Analyst
	Logger   *zap.Logger
	validate *validator.Validate
}

// New wires the tool handler set.
func New(src source.Fetcher, store *storage.Store, analyst *ai.Analyst, logger *zap.Logger) *ResearchTools {
	return &ResearchTools{
		Source:   src,
		Store:    store,
		Analyst:  analyst,
		Logger:   logger,
		validate: validator.New(),
	}
}

// --- Input types ---

type AnalyzeSpeakersInput struct {
	Project string `json:"project,omitempty" jsonschema:"Project tag to analyze (defaults to ridekick)"`
	Speaker string `json:"speaker,omitempty" jsonschema:"Case-insensitive substring filter on participant names"`
}

type ValidateHypothesisInput struct {
	Hypothesis string `json:"hypothesis" jsonschema:"Hypothesis statement to evaluate against the research records" validate:"required"`
	Project    string `json:"project,omitempty" jsonschema:"Project tag to analyze (defaults to ridekick)"`
}

type FindPainPointsInput struct {
	Project string `json:"project,omitempty" jsonschema:"Project tag to analyze (defaults to ridekick)"`
	Limit   int    `json:"limit,omitempty" jsonschema:"Maximum number of categories to return (default 10)" validate:"omitempty,min=1,max=10"`
}

// --- Handlers ---

func (t *ResearchTools) fetchRecords(ctx context.Context, project string) ([]models.ResearchRecord, *mcp.CallToolResult) {
	records, err := t.Source.Fetch(ctx, project)
	if err != nil {
		return nil, toolError("Failed to fetch records: %v", err)
	}
	return records, nil
}

func (t *ResearchTools) AnalyzeSpeakers(ctx context.Context, _ *mcp.CallToolRequest, input AnalyzeSpeakersInput) (*mcp.CallToolResult, any, error) {
	records, errResult := t.fetchRecords(ctx, input.Project)
	if errResult != nil {
		return errResult, nil, nil
	}

	report := analysis.AggregateSpeakers(records, input.Speaker)
	t.Logger.Info("speakers analyzed",
		zap.Int("records", len(records)), zap.Int("speakers", report.TotalSpeakers))
	return toolJSON(report)
}

func (t *ResearchTools) ValidateHypothesis(ctx context.Context, _ *mcp.CallToolRequest, input ValidateHypothesisInput) (*mcp.CallToolResult, any, error) {
	if err := t.validate.Struct(input); err != nil || strings.TrimSpace(input.Hypothesis) == "" {
		return toolError("Hypothesis is required"), nil, nil
	}

	records, errResult := t.fetchRecords(ctx, input.Project)
	if errResult != nil {
		return errResult, nil, nil
	}

	result, err := analysis.EvaluateHypothesis(input.Hypothesis, records)
	if err != nil {
		return toolError("Failed to evaluate hypothesis: %v", err), nil, nil
	}

	t.Logger.Info("hypothesis evaluated",
		zap.Int("records", len(records)), zap.String("verdict", string(result.Verdict)))
	return toolJSON(result)
}

func (t *ResearchTools) FindPainPoints(ctx context.Context, _ *mcp.CallToolRequest, input FindPainPointsInput) (*mcp.CallToolResult, any, error) {
	if err := t.validate.Struct(input); err != nil {
		return toolError("Invalid input: %v", err), nil, nil
	}

	records, errResult := t.fetchRecords(ctx, input.Project)
	if errResult != nil {
		return errResult, nil, nil
	}

	report := analysis.ClassifyPainPoints(records, input.Limit)
	t.Logger.Info("pain points classified",
		zap.Int("records", len(records)), zap.String("top", report.TopPainPoint))
	return toolJSON(report)
}
