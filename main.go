package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"go.uber.org/zap"

	"github.com/ridekick/insights-mcp/internal/ai"
	"github.com/ridekick/insights-mcp/internal/config"
	"github.com/ridekick/insights-mcp/internal/server"
	"github.com/ridekick/insights-mcp/internal/source"
	"github.com/ridekick/insights-mcp/internal/storage"
)

func main() {
	args := os.Args[1:]
	if len(args) > 0 {
		switch args[0] {
		case "status":
			printStatus()
			return
		case "tools":
			printTools()
			return
		}
	}

	fs := flag.NewFlagSet("insights-mcp", flag.ExitOnError)
	transport := fs.String("transport", "stdio", "Transport mode: stdio or http")
	port := fs.String("port", "8082", "HTTP port (only used with --transport http)")
	dataDir := fs.String("data-dir", "", "Directory for the local record store (overrides INSIGHTS_DATA_DIR)")
	envFile := fs.String("env-file", "", "Path to a .env file (default: ./.env if present)")
	fs.Parse(args)

	cfg := config.Load(*envFile)
	if *dataDir != "" {
		cfg.DataDir = *dataDir
	}

	logger, err := newLogger(cfg)
	if err != nil {
		log.Fatalf("Failed to build logger: %v", err)
	}
	defer logger.Sync()

	// Pick the record source: local store when a data dir is configured,
	// direct table endpoint otherwise.
	var store *storage.Store
	var fetcher source.Fetcher
	if cfg.HasLocalStore() {
		store, err = storage.Open(cfg.DataDir)
		if err != nil {
			logger.Fatal("Failed to open record store", zap.Error(err))
		}
		defer store.Close()
		fetcher = source.NewStoreSource(store)
		logger.Info("using local record store", zap.String("data_dir", cfg.DataDir))
	} else {
		rest, err := source.NewRESTSource(cfg, logger)
		if err != nil {
			logger.Fatal("Failed to configure table endpoint fetcher", zap.Error(err))
		}
		fetcher = rest
		logger.Info("using hosted table endpoint")
	}

	var analyst *ai.Analyst
	if cfg.HasAI() {
		analyst = ai.New(cfg.OpenAIKey, cfg.OpenAIModel, logger)
		logger.Info("ai analysis enabled", zap.String("model", cfg.OpenAIModel))
	}

	srv := server.New(fetcher, store, analyst, logger)

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	switch *transport {
	case "stdio":
		logger.Info("insights MCP server starting (stdio)")
		if err := srv.Run(ctx, &mcp.StdioTransport{}); err != nil {
			logger.Fatal("Server error", zap.Error(err))
		}
	case "http":
		addr := ":" + *port
		handler := mcp.NewStreamableHTTPHandler(func(r *http.Request) *mcp.Server {
			return srv
		}, nil)
		logger.Info("insights MCP server listening", zap.String("addr", addr))
		if err := http.ListenAndServe(addr, handler); err != nil {
			logger.Fatal("HTTP server error", zap.Error(err))
		}
	default:
		logger.Fatal("Unknown transport (use stdio or http)", zap.String("transport", *transport))
	}
}

func newLogger(cfg *config.Config) (*zap.Logger, error) {
	if cfg.Environment == "development" {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}

func printStatus() {
	cfg := config.Load("")
	fmt.Println("insights-mcp status")
	fmt.Printf("  local record store: %s\n", enabledIf(cfg.HasLocalStore()))
	fmt.Printf("  table endpoint:     %s\n", enabledIf(cfg.ResearchDBURL != "" && cfg.ResearchDBKey != ""))
	fmt.Printf("  ai analysis:        %s\n", enabledIf(cfg.HasAI()))
	fmt.Printf("  default project:    %s\n", config.DefaultProject)
}

func printTools() {
	fmt.Println("insights-mcp tools")
	fmt.Println("  analyze_speakers    aggregate participants with appearance counts and themes")
	fmt.Println("  validate_hypothesis evaluate a hypothesis against the research records")
	fmt.Println("  find_pain_points    rank fixed pain-point categories by frequency")
	fmt.Println("  ai_analyze          answer a research question with an LLM over the records")
	fmt.Println("  import_records      import records into the local store")
	fmt.Println("  search_records      full-text search over stored records")
	fmt.Println("  list_proposals      list generated documents awaiting review")
	fmt.Println("  review_proposal     approve or reject a pending proposal")
}

func enabledIf(ok bool) string {
	if ok {
		return "enabled"
	}
	return "disabled"
}
