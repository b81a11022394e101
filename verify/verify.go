// Package verify checks whether the claims made in an AI billing
// analysis are grounded in a source document. Three implementations are
// provided: a static verifier with fixed data for demos and tests, an
// LLM backed verifier that judges entailment per claim, and an embedding
// verifier that scores claims by semantic similarity to the document.
package verify

import "fmt"

// DefaultThreshold is the confidence below which a claim is classified
// as UNSUPPORTED when the caller does not choose one.
const DefaultThreshold = 0.7

// validateThreshold rejects thresholds outside (0,1]
func validateThreshold(threshold float64) error {
	if threshold <= 0 || threshold > 1 {
		return fmt.Errorf("threshold %v out of range (0,1]", threshold)
	}
	return nil
}

// clamp01 bounds v to [0,1]
func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
