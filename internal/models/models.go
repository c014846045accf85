package models

// ResearchRecord is one unit of research data (e.g. an interview transcript)
// as fetched from the record store or the hosted table endpoint. Records are
// read-only for the duration of one analysis call.
type ResearchRecord struct {
	ID           string   `json:"id"`
	Title        string   `json:"title"`
	Summary      string   `json:"summary"`
	Content      string   `json:"content"`
	Participants []string `json:"participants"`
	Projects     []string `json:"projects"`
	CreatedAt    string   `json:"created_at"`
}

// SpeakerProfile aggregates one participant's appearances across records.
type SpeakerProfile struct {
	Name        string   `json:"name"`
	Appearances int      `json:"appearances"`
	Sources     []string `json:"sources"`
	Themes      []string `json:"themes"`
}

// SpeakerReport is the result of speaker aggregation over one fetch.
type SpeakerReport struct {
	TotalSpeakers int              `json:"total_speakers"`
	Profiles      []SpeakerProfile `json:"profiles"`
}

// Verdict is the categorical outcome of hypothesis evaluation.
type Verdict string

const (
	VerdictSupported    Verdict = "SUPPORTED"
	VerdictContradicted Verdict = "CONTRADICTED"
	VerdictMixed        Verdict = "MIXED"
	VerdictInsufficient Verdict = "INSUFFICIENT_EVIDENCE"
)

// Confidence grades how much evidence backs a verdict.
type Confidence string

const (
	ConfidenceHigh   Confidence = "HIGH"
	ConfidenceMedium Confidence = "MEDIUM"
	ConfidenceLow    Confidence = "LOW"
)

// Evidence is a record excerpt presented to justify a classification.
type Evidence struct {
	Source  string `json:"source"`
	Excerpt string `json:"excerpt"`
}

// HypothesisVerdict is the result of evaluating a hypothesis against records.
type HypothesisVerdict struct {
	Hypothesis      string     `json:"hypothesis"`
	Verdict         Verdict    `json:"verdict"`
	Confidence      Confidence `json:"confidence"`
	Supporting      []Evidence `json:"supporting"`
	Contradicting   []Evidence `json:"contradicting"`
	NeutralMentions int        `json:"neutral_mentions"`
	Recommendation  string     `json:"recommendation,omitempty"`
}

// PainPointCategory is one thematic bucket of negative user feedback.
type PainPointCategory struct {
	Category      string   `json:"category"`
	Frequency     int      `json:"frequency"`
	SourcesCount  int      `json:"sources_count"`
	SampleSources []string `json:"sample_sources"`
	SampleQuotes  []string `json:"sample_quotes"`
}

// PainPointReport ranks pain-point categories by frequency.
type PainPointReport struct {
	TotalSourcesAnalyzed int                 `json:"total_sources_analyzed"`
	PainPoints           []PainPointCategory `json:"pain_points"`
	TopPainPoint         string              `json:"top_pain_point"`
	Note                 string              `json:"note,omitempty"`
}

// Proposal is a generated document held for human review.
type Proposal struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Content   string `json:"content"`
	Project   string `json:"project"`
	Status    string `json:"status"`
	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
}
