package ai

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	backoff "github.com/cenkalti/backoff/v4"
	"github.com/invopop/jsonschema"
	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
	"github.com/openai/openai-go/responses"
	"go.uber.org/zap"

	"github.com/ridekick/insights-mcp/internal/models"
)

const maxContextRecords = 20

const analystInstructions = `You are a user-research analyst. You are given a question and a set of
interview records (title, summary, content excerpt). Answer the question
strictly from the records. Cite record titles in your insights. If the
records do not cover the question, say so in the summary.`

// Analysis is the structured answer returned by the completion API.
type Analysis struct {
	Summary         string   `json:"summary" jsonschema:"description=Direct answer to the question,required"`
	KeyInsights     []string `json:"key_insights" jsonschema:"description=Specific findings with record titles cited,required"`
	Recommendations []string `json:"recommendations" jsonschema:"description=Suggested next research or product steps,required"`
}

var analysisSchema = generateSchema[Analysis]()

// Analyst forwards questions about a record set to the completion API.
type Analyst struct {
	client *openai.Client
	model  string
	logger *zap.Logger
}

// New builds an Analyst. apiKey must be non-empty; callers gate on config.
func New(apiKey, model string, logger *zap.Logger) *Analyst {
	client := openai.NewClient(option.WithAPIKey(apiKey))
	return &Analyst{client: &client, model: model, logger: logger}
}

// Analyze sends the question with record context to the completion API and
// decodes the structured answer. Transient failures are retried briefly;
// the final error is returned for the caller to report as a payload.
func (a *Analyst) Analyze(ctx context.Context, question string, records []models.ResearchRecord) (*Analysis, error) {
	format := responses.ResponseFormatTextConfigUnionParam{
		OfJSONSchema: &responses.ResponseFormatTextJSONSchemaConfigParam{
			Name:        "ResearchAnalysis",
			Schema:      analysisSchema,
			Strict:      openai.Bool(true),
			Description: openai.String("Research analysis JSON"),
			Type:        "json_schema",
		},
	}

	params := responses.ResponseNewParams{
		Model:           a.model,
		MaxOutputTokens: openai.Int(1500),
		Instructions:    openai.String(analystInstructions),
		Input: responses.ResponseNewParamsInputUnion{
			OfInputItemList: []responses.ResponseInputItemUnionParam{
				responses.ResponseInputItemParamOfMessage(buildPrompt(question, records), responses.EasyInputMessageRoleUser),
			},
		},
		Text: responses.ResponseTextConfigParam{
			Format: format,
		},
	}

	var resp *responses.Response
	call := func() error {
		var err error
		resp, err = a.client.Responses.New(ctx, params)
		return err
	}

	bo := backoff.NewExponentialBackOff()
	bo.InitialInterval = 2 * time.Second
	bo.MaxElapsedTime = 45 * time.Second

	if err := backoff.Retry(call, backoff.WithContext(bo, ctx)); err != nil {
		a.logger.Warn("completion API call failed", zap.Error(err))
		return nil, err
	}

	var out Analysis
	if err := decodeModelJSON(resp.OutputText(), &out); err != nil {
		return nil, fmt.Errorf("decode analysis: %w", err)
	}
	out.Summary = strings.TrimSpace(out.Summary)
	return &out, nil
}

// buildPrompt renders the question and a bounded slice of record context.
func buildPrompt(question string, records []models.ResearchRecord) string {
	var b strings.Builder
	b.WriteString("Question: ")
	b.WriteString(question)
	b.WriteString("\n\nResearch records:\n")

	if len(records) > maxContextRecords {
		records = records[:maxContextRecords]
	}
	if len(records) == 0 {
		b.WriteString("(none available)\n")
	}
	for i, r := range records {
		fmt.Fprintf(&b, "\n--- Record %d: %s ---\n", i+1, r.Title)
		if r.Summary != "" {
			fmt.Fprintf(&b, "Summary: %s\n", r.Summary)
		}
		if r.Content != "" {
			fmt.Fprintf(&b, "Content: %s\n", truncate(r.Content, 1500))
		}
	}
	return b.String()
}

// decodeModelJSON unmarshals model output, tolerating stray text around the
// JSON object.
func decodeModelJSON(s string, v any) error {
	s = strings.TrimSpace(s)
	if err := json.Unmarshal([]byte(s), v); err == nil {
		return nil
	}
	start := strings.Index(s, "{")
	end := strings.LastIndex(s, "}")
	if start < 0 || end <= start {
		return fmt.Errorf("no JSON object found in model output (len=%d)", len(s))
	}
	return json.Unmarshal([]byte(s[start:end+1]), v)
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max]
}

func generateSchema[T any]() map[string]interface{} {
	reflector := jsonschema.Reflector{
		AllowAdditionalProperties:  false,
		DoNotReference:             true,
		RequiredFromJSONSchemaTags: true,
	}
	var v T
	schema := reflector.Reflect(v)
	b, err := schema.MarshalJSON()
	if err != nil {
		panic(err)
	}
	var m map[string]interface{}
	if err := json.Unmarshal(b, &m); err != nil {
		panic(err)
	}
	return m
}
