package verify

import (
	"context"
	"fmt"
	"math"

	"github.com/claimguardian/claimeval/api"
)

// NewEmbedding creates a verifier that scores each claim by the cosine
// similarity between its embedding and the context document's embedding.
// It is cheaper than the LLM verifier and needs no judge model, at the
// cost of treating topical similarity as support. Returns
// ErrMissingCapability when embedder is nil.
func NewEmbedding(embedder api.Embedder) (api.ClaimVerifier, error) {
	if embedder == nil {
		return nil, fmt.Errorf("%w: embedding verifier requires an embedder", api.ErrMissingCapability)
	}
	return &embeddingVerifier{embedder: embedder}, nil
}

type embeddingVerifier struct {
	embedder api.Embedder
}

func (v *embeddingVerifier) Verify(ctx context.Context, contextDoc, analysis string, threshold float64) (api.VerificationResult, error) {
	if err := validateThreshold(threshold); err != nil {
		return api.VerificationResult{}, err
	}

	claims, err := SplitClaims(analysis)
	if err != nil {
		return api.VerificationResult{}, err
	}
	if len(claims) == 0 {
		return api.VerificationResult{}, nil
	}

	contextEmbed, err := v.embedder.Embed(ctx, contextDoc)
	if err != nil {
		return api.VerificationResult{}, fmt.Errorf("failed to embed context document: %w", err)
	}

	details := make([]api.ClaimVerdict, 0, len(claims))
	for _, claim := range claims {
		claimEmbed, err := v.embedder.Embed(ctx, claim)
		if err != nil {
			return api.VerificationResult{}, fmt.Errorf("failed to embed claim %q: %w", claim, err)
		}

		// Normalize cosine similarity from [-1,1] to [0,1] so it can be
		// compared against the caller's confidence threshold.
		confidence := clamp01((cosineSimilarity(claimEmbed, contextEmbed) + 1.0) / 2.0)

		status := api.ClaimUnsupported
		if confidence >= threshold {
			status = api.ClaimSupported
		}
		details = append(details, api.ClaimVerdict{Claim: claim, Status: status, Confidence: confidence})
	}
	return summarizeVerdicts(details), nil
}

// cosineSimilarity computes the cosine similarity between two vectors
// Returns a value between -1 and 1, where 1 means identical direction
func cosineSimilarity(a, b []float64) float64 {
	if len(a) != len(b) {
		return 0
	}

	var dotProduct, normA, normB float64
	for i := range a {
		dotProduct += a[i] * b[i]
		normA += a[i] * a[i]
		normB += b[i] * b[i]
	}

	normA = math.Sqrt(normA)
	normB = math.Sqrt(normB)

	if normA == 0 || normB == 0 {
		return 0
	}

	return dotProduct / (normA * normB)
}

// Verify that embeddingVerifier implements ClaimVerifier
var _ api.ClaimVerifier = (*embeddingVerifier)(nil)
