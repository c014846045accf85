package tools

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"go.uber.org/zap"
)

type AIAnalyzeInput struct {
	Question       string `json:"question" jsonschema:"Research question to answer from the records" validate:"required"`
	Project        string `json:"project,omitempty" jsonschema:"Project tag to analyze (defaults to ridekick)"`
	SaveAsDocument bool   `json:"save_as_document,omitempty" jsonschema:"Persist the analysis as a pending proposal for human review"`
}

// aiErrorPayload is returned as a plain result (not a tool error) so the
// host does not have to special-case completion API failures.
type aiErrorPayload struct {
	Status  string `json:"status"`
	Message string `json:"message"`
	Details string `json:"details,omitempty"`
}

func (t *ResearchTools) AIAnalyze(ctx context.Context, _ *mcp.CallToolRequest, input AIAnalyzeInput) (*mcp.CallToolResult, any, error) {
	if err := t.validate.Struct(input); err != nil || strings.TrimSpace(input.Question) == "" {
		return toolError("Question is required"), nil, nil
	}

	if t.Analyst == nil {
		return toolJSON(aiErrorPayload{
			Status:  "error",
			Message: "AI analysis is not configured",
			Details: "OPENAI_API_KEY is not set",
		})
	}

	records, errResult := t.fetchRecords(ctx, input.Project)
	if errResult != nil {
		return errResult, nil, nil
	}

	result, err := t.Analyst.Analyze(ctx, input.Question, records)
	if err != nil {
		return toolJSON(aiErrorPayload{
			Status:  "error",
			Message: "AI analysis failed",
			Details: err.Error(),
		})
	}

	payload := map[string]any{
		"status":           "ok",
		"analysis":         result,
		"sources_analyzed": len(records),
	}

	if input.SaveAsDocument {
		if t.Store == nil {
			// Persisting requires the local store; without it the save
			// option is simply unavailable, not a failure.
			payload["saved"] = false
			payload["note"] = "save_as_document ignored: no local record store configured"
		} else {
			proposal, err := t.Store.CreateProposal(
				"Analysis: "+truncateTitle(input.Question),
				renderAnalysisDocument(input.Question, result),
				input.Project,
			)
			if err != nil {
				return toolError("Analysis succeeded but saving the proposal failed: %v", err), nil, nil
			}
			payload["saved"] = true
			payload["proposal_id"] = proposal.ID
		}
	}

	t.Logger.Info("ai analysis completed",
		zap.Int("records", len(records)), zap.Bool("saved", input.SaveAsDocument))
	return toolJSON(payload)
}

func truncateTitle(q string) string {
	q = strings.TrimSpace(q)
	if len(q) > 80 {
		return q[:80]
	}
	return q
}

// renderAnalysisDocument produces the proposal body held for review.
func renderAnalysisDocument(question string, result any) string {
	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return question
	}
	return "Question: " + question + "\n\n" + string(data)
}
