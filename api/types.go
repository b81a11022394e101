package api

import "context"

// Score range for every criterion judgment.
const (
	ScoreMin = 1
	ScoreMax = 10
)

// Criterion names one of the fixed evaluation dimensions
// The set is closed: adding a dimension requires updating Criteria,
// the dataset's expected scores and the judge prompt together
type Criterion string

const (
	CriterionCPTAccuracy    Criterion = "cpt_accuracy"
	CriterionErrorDetection Criterion = "error_detection"
	CriterionAppealQuality  Criterion = "appeal_quality"
	CriterionCompliance     Criterion = "compliance"
)

// Criteria lists all criteria in canonical order
// Aggregation and rendering iterate this slice so that floating point
// results and report tables come out the same on every run
var Criteria = []Criterion{
	CriterionCPTAccuracy,
	CriterionErrorDetection,
	CriterionAppealQuality,
	CriterionCompliance,
}

// Label returns the human readable name used in report tables
func (c Criterion) Label() string {
	switch c {
	case CriterionCPTAccuracy:
		return "CPT Accuracy"
	case CriterionErrorDetection:
		return "Error Detection"
	case CriterionAppealQuality:
		return "Appeal Quality"
	case CriterionCompliance:
		return "Compliance"
	default:
		return string(c)
	}
}

// Description returns the one line explanation used in report tables
func (c Criterion) Description() string {
	switch c {
	case CriterionCPTAccuracy:
		return "Correct CPT code identification"
	case CriterionErrorDetection:
		return "Billing error identification"
	case CriterionAppealQuality:
		return "Appeal letter professionalism"
	case CriterionCompliance:
		return "HIPAA/CMS guideline adherence"
	default:
		return ""
	}
}

// EvaluationExample is a single medical billing scenario to score
// Examples are immutable once constructed
type EvaluationExample struct {
	// Request is the original medical bill presented to the model
	Request string `json:"request"`
	// Response is the AI generated billing analysis under evaluation
	Response string `json:"response"`
	// Reference is the ground truth summary for the scenario
	Reference string `json:"reference"`
	// ExpectedScore maps each criterion to the hand assigned score in [1,10]
	ExpectedScore map[Criterion]int `json:"expected_score"`
}

// JudgmentResult holds the per example outcome of a judge call
type JudgmentResult struct {
	// ExampleID is the 1-based position of the example within the run
	ExampleID int
	// Scores maps each criterion to the judged score in [1,10]
	Scores map[Criterion]float64
	// OverallScore is the arithmetic mean of the criterion scores
	OverallScore float64
	// Explanation is free text produced by the judge
	Explanation string
}

// AggregateReport summarizes a full evaluation run
// It is recomputed from scratch on every run, never updated in place
type AggregateReport struct {
	// AverageScore maps each criterion to its mean over all examples
	AverageScore map[Criterion]float64
	// OverallAverage is the mean of the per criterion averages,
	// computed in Criteria order
	OverallAverage float64
	// ExampleCount is the number of judged examples
	ExampleCount int
}

// Judge scores a single evaluation example
// Implementations must fill Scores and Explanation; ExampleID and
// OverallScore are assigned by the aggregator
type Judge interface {
	// Judge evaluates one example
	// id is the 1-based position of the example within the run
	Judge(ctx context.Context, id int, example EvaluationExample) (JudgmentResult, error)
}

// ClaimStatus classifies a single verified claim
type ClaimStatus string

const (
	ClaimSupported   ClaimStatus = "SUPPORTED"
	ClaimUnsupported ClaimStatus = "UNSUPPORTED"
)

// ClaimVerdict is the verification outcome for one extracted claim
type ClaimVerdict struct {
	Claim      string      `json:"claim"`
	Status     ClaimStatus `json:"status"`
	Confidence float64     `json:"confidence"`
}

// VerificationResult aggregates claim verdicts for one analysis
// Invariant: ClaimsSupported + ClaimsUnsupported == ClaimsVerified == len(Details)
type VerificationResult struct {
	ClaimsVerified    int            `json:"claims_verified"`
	ClaimsSupported   int            `json:"claims_supported"`
	ClaimsUnsupported int            `json:"claims_unsupported"`
	ConfidenceAvg     float64        `json:"confidence_avg"`
	Details           []ClaimVerdict `json:"details"`
}

// ClaimVerifier checks whether the claims made in an AI analysis are
// grounded in a source document
// This interface must be implemented by library consumers
// A static and an LLM backed implementation are provided in the verify subpackage
type ClaimVerifier interface {
	// Verify splits analysis into claims and classifies each one
	// against contextDoc. threshold is the minimum confidence in (0,1]
	// for a claim to count as SUPPORTED
	Verify(ctx context.Context, contextDoc, analysis string, threshold float64) (VerificationResult, error)
}

// LLMGenerator is an interface for generating text using an LLM
// This interface must be implemented by library consumers
// Gemini, OpenAI and Anthropic implementations are provided in subpackages
type LLMGenerator interface {
	// Generate generates text based on the provided prompt
	// Returns the generated text or an error
	Generate(ctx context.Context, prompt string) (string, error)

	// StructuredGenerate generates structured data based on the provided prompt and JSON schema
	// schema must be a valid JSON schema (map[string]interface{})
	// Returns the generated data as a map[string]interface{} or an error
	StructuredGenerate(ctx context.Context, prompt string, schema map[string]interface{}) (map[string]interface{}, error)
}

// Embedder generates vector embeddings for text
type Embedder interface {
	// Embed generates an embedding vector for the given text
	// Returns a normalized vector (length = 1) suitable for cosine similarity
	Embed(ctx context.Context, text string) ([]float64, error)
}

// ModerationCategories contains all supported moderation category names
// These are developer-friendly names that map to Google Cloud Natural Language API categories
var ModerationCategories []string = []string{
	"Toxic",
	"Derogatory",
	"Violent",
	"Sexual",
	"Insult",
	"Profanity",
	"DeathHarmTragedy",
	"FirearmsWeapons",
	"PublicSafety",
	"Health",
	"ReligionBelief",
	"IllicitDrugs",
	"WarConflict",
	"Finance",
	"Politics",
	"Legal",
}

// ModerationCategory represents a safety category with confidence score
type ModerationCategory struct {
	Name       string  `json:"name"`
	Confidence float64 `json:"confidence"`
}

// ModerationResult represents the result of content moderation
type ModerationResult struct {
	Categories []ModerationCategory `json:"categories"`
}

// ModerationProvider is an interface for content moderation
// This interface must be implemented by library consumers
// A Google Cloud Natural Language implementation is provided in the gemini subpackage
type ModerationProvider interface {
	// Moderate analyzes content for safety and returns moderation results
	// Returns the moderation result or an error
	Moderate(ctx context.Context, content string) (*ModerationResult, error)
}
