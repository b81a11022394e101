package verify

import (
	"context"

	"github.com/claimguardian/claimeval/api"
)

// NewStatic returns a verifier with fixed verification data. It stands in
// for the HallOumi model in demo runs and gives tests a ClaimVerifier
// with known output. Counts and average confidence are computed from the
// detail list so the result invariant holds by construction.
func NewStatic() api.ClaimVerifier {
	return &staticVerifier{}
}

type staticVerifier struct{}

func (*staticVerifier) Verify(_ context.Context, _, _ string, threshold float64) (api.VerificationResult, error) {
	if err := validateThreshold(threshold); err != nil {
		return api.VerificationResult{}, err
	}

	details := []api.ClaimVerdict{
		{Claim: "CPT code 70553 is correct", Status: api.ClaimSupported, Confidence: 0.95},
		{Claim: "Medicare rate is ~$400", Status: api.ClaimSupported, Confidence: 0.88},
		{Claim: "Overcharge detected", Status: api.ClaimSupported, Confidence: 0.92},
		{Claim: "Appeal recommended", Status: api.ClaimSupported, Confidence: 0.85},
		{Claim: "Risk level HIGH", Status: api.ClaimUnsupported, Confidence: 0.78},
	}
	return summarizeVerdicts(details), nil
}

// summarizeVerdicts rolls a detail list up into a VerificationResult
func summarizeVerdicts(details []api.ClaimVerdict) api.VerificationResult {
	result := api.VerificationResult{
		ClaimsVerified: len(details),
		Details:        details,
	}
	confidenceSum := 0.0
	for _, d := range details {
		if d.Status == api.ClaimSupported {
			result.ClaimsSupported++
		} else {
			result.ClaimsUnsupported++
		}
		confidenceSum += d.Confidence
	}
	if len(details) > 0 {
		result.ConfidenceAvg = confidenceSum / float64(len(details))
	}
	return result
}

// Verify that staticVerifier implements ClaimVerifier
var _ api.ClaimVerifier = (*staticVerifier)(nil)
