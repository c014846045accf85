package tools

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/ridekick/insights-mcp/internal/models"
)

type ListProposalsInput struct {
	Status string `json:"status,omitempty" jsonschema:"Filter by status: pending, approved, rejected, or all" validate:"omitempty,oneof=pending approved rejected all"`
}

type ReviewProposalInput struct {
	ID       string `json:"id" jsonschema:"Proposal identifier" validate:"required"`
	Decision string `json:"decision" jsonschema:"Review decision: approved or rejected" validate:"required,oneof=approved rejected"`
}

func (t *ResearchTools) ListProposals(_ context.Context, _ *mcp.CallToolRequest, input ListProposalsInput) (*mcp.CallToolResult, any, error) {
	store, errResult := t.requireStore()
	if errResult != nil {
		return errResult, nil, nil
	}
	if err := t.validate.Struct(input); err != nil {
		return toolError("Invalid input: %v", err), nil, nil
	}

	status := input.Status
	if status == "" {
		status = "pending"
	}

	proposals, err := store.ListProposals(status)
	if err != nil {
		return toolError("Failed to list proposals: %v", err), nil, nil
	}
	if proposals == nil {
		proposals = []models.Proposal{}
	}

	return toolJSON(proposals)
}

func (t *ResearchTools) ReviewProposal(_ context.Context, _ *mcp.CallToolRequest, input ReviewProposalInput) (*mcp.CallToolResult, any, error) {
	store, errResult := t.requireStore()
	if errResult != nil {
		return errResult, nil, nil
	}
	if err := t.validate.Struct(input); err != nil {
		return toolError("Invalid input: %v", err), nil, nil
	}

	proposal, err := store.ReviewProposal(input.ID, input.Decision)
	if err != nil {
		return toolError("Failed to review proposal: %v", err), nil, nil
	}

	return toolJSON(proposal)
}
