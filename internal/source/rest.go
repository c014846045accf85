package source

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"go.uber.org/zap"

	"github.com/ridekick/insights-mcp/internal/config"
	"github.com/ridekick/insights-mcp/internal/models"
)

const recordColumns = "id,title,summary,content,participants,projects,created_at"

// RESTSource fetches records directly from the hosted table endpoint. It is
// used when no local record store is configured. Any upstream failure yields
// an empty result, never an error; there is no retry and no pagination. The
// client carries no timeout of its own, so cancellation comes from the
// caller's context or the host's outer deadline.
type RESTSource struct {
	baseURL string
	apiKey  string
	client  *http.Client
	logger  *zap.Logger
}

// NewRESTSource builds a table-endpoint fetcher from config. Missing
// credentials are a configuration error for this code path.
func NewRESTSource(cfg *config.Config, logger *zap.Logger) (*RESTSource, error) {
	if err := cfg.ValidateREST(); err != nil {
		return nil, err
	}
	return &RESTSource{
		baseURL: cfg.ResearchDBURL,
		apiKey:  cfg.ResearchDBKey,
		client:  &http.Client{},
		logger:  logger,
	}, nil
}

// Fetch issues a single GET against the records table, selecting the record
// columns, filtering on project containment, newest first, capped at
// DefaultLimit rows.
func (s *RESTSource) Fetch(ctx context.Context, project string) ([]models.ResearchRecord, error) {
	project = projectOrDefault(project)

	q := url.Values{}
	q.Set("select", recordColumns)
	q.Set("projects", fmt.Sprintf("cs.{%q}", project))
	q.Set("order", "created_at.desc")
	q.Set("limit", fmt.Sprintf("%d", DefaultLimit))

	endpoint := s.baseURL + "/rest/v1/research_records?" + q.Encode()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("build records request: %w", err)
	}
	req.Header.Set("apikey", s.apiKey)
	req.Header.Set("Authorization", "Bearer "+s.apiKey)

	resp, err := s.client.Do(req)
	if err != nil {
		s.logger.Warn("records fetch failed, treating as empty",
			zap.String("project", project), zap.Error(err))
		return nil, nil
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		s.logger.Warn("records endpoint returned non-success status",
			zap.String("project", project), zap.Int("status", resp.StatusCode))
		return nil, nil
	}

	var records []models.ResearchRecord
	if err := json.NewDecoder(resp.Body).Decode(&records); err != nil {
		s.logger.Warn("records response decode failed, treating as empty",
			zap.String("project", project), zap.Error(err))
		return nil, nil
	}

	for i := range records {
		if records[i].Participants == nil {
			records[i].Participants = []string{}
		}
		if records[i].Projects == nil {
			records[i].Projects = []string{}
		}
	}
	return records, nil
}
