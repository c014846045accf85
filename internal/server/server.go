package server

import (
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"go.uber.org/zap"

	"github.com/ridekick/insights-mcp/internal/ai"
	"github.com/ridekick/insights-mcp/internal/source"
	"github.com/ridekick/insights-mcp/internal/storage"
	"github.com/ridekick/insights-mcp/internal/tools"
)

// New creates a fully configured MCP server with all tools registered.
// store and analyst may be nil; the tools that need them report the missing
// capability at call time.
func New(src source.Fetcher, store *storage.Store, analyst *ai.Analyst, logger *zap.Logger) *mcp.Server {
	rt := tools.New(src, store, analyst, logger)

	srv := mcp.NewServer(&mcp.Implementation{
		Name:    "insights-mcp",
		Version: "0.1.0",
	}, nil)

	// Analytic tools
	mcp.AddTool(srv, &mcp.Tool{
		Name:        "analyze_speakers",
		Description: "Aggregate interview participants: appearance counts, source titles, and theme keywords, with an optional name filter",
	}, rt.AnalyzeSpeakers)

	mcp.AddTool(srv, &mcp.Tool{
		Name:        "validate_hypothesis",
		Description: "Evaluate a hypothesis against the research records and return a verdict with supporting and contradicting evidence",
	}, rt.ValidateHypothesis)

	mcp.AddTool(srv, &mcp.Tool{
		Name:        "find_pain_points",
		Description: "Classify records into fixed pain-point categories ranked by frequency, with sample quotes",
	}, rt.FindPainPoints)

	mcp.AddTool(srv, &mcp.Tool{
		Name:        "ai_analyze",
		Description: "Answer a free-form research question using an LLM over the fetched records; optionally save the result as a pending proposal",
	}, rt.AIAnalyze)

	// Local record store tools
	mcp.AddTool(srv, &mcp.Tool{
		Name:        "import_records",
		Description: "Import research records into the local store (requires a configured data directory)",
	}, rt.ImportRecords)

	mcp.AddTool(srv, &mcp.Tool{
		Name:        "search_records",
		Description: "Full-text search over stored record titles, summaries and content using FTS5 (requires a configured data directory)",
	}, rt.SearchRecords)

	// Proposal review tools
	mcp.AddTool(srv, &mcp.Tool{
		Name:        "list_proposals",
		Description: "List generated documents awaiting review, with optional status filter (pending, approved, rejected, all)",
	}, rt.ListProposals)

	mcp.AddTool(srv, &mcp.Tool{
		Name:        "review_proposal",
		Description: "Approve or reject a pending proposal",
	}, rt.ReviewProposal)

	return srv
}
