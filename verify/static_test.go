package verify

import (
	"context"
	"math"
	"testing"

	"github.com/claimguardian/claimeval/api"
)

// checkResultInvariant asserts the accounting identity every verifier
// must maintain: supported + unsupported == verified == len(details)
func checkResultInvariant(t *testing.T, result api.VerificationResult) {
	t.Helper()
	if result.ClaimsSupported+result.ClaimsUnsupported != result.ClaimsVerified {
		t.Errorf("supported %d + unsupported %d != verified %d",
			result.ClaimsSupported, result.ClaimsUnsupported, result.ClaimsVerified)
	}
	if len(result.Details) != result.ClaimsVerified {
		t.Errorf("len(details) = %d, want %d", len(result.Details), result.ClaimsVerified)
	}
}

func TestStaticVerifier(t *testing.T) {
	ctx := context.Background()

	result, err := NewStatic().Verify(ctx, "context document", "analysis text", DefaultThreshold)
	if err != nil {
		t.Fatalf("Verify() unexpected error = %v", err)
	}

	checkResultInvariant(t, result)

	if result.ClaimsVerified != 5 {
		t.Errorf("Verify() ClaimsVerified = %d, want 5", result.ClaimsVerified)
	}
	if result.ClaimsSupported != 4 {
		t.Errorf("Verify() ClaimsSupported = %d, want 4", result.ClaimsSupported)
	}
	if result.ClaimsUnsupported != 1 {
		t.Errorf("Verify() ClaimsUnsupported = %d, want 1", result.ClaimsUnsupported)
	}
	// (0.95 + 0.88 + 0.92 + 0.85 + 0.78) / 5
	if math.Abs(result.ConfidenceAvg-0.876) > 1e-9 {
		t.Errorf("Verify() ConfidenceAvg = %v, want 0.876", result.ConfidenceAvg)
	}

	for _, d := range result.Details {
		if d.Status != api.ClaimSupported && d.Status != api.ClaimUnsupported {
			t.Errorf("Verify() detail %q has status %q", d.Claim, d.Status)
		}
		if d.Confidence < 0 || d.Confidence > 1 {
			t.Errorf("Verify() detail %q has confidence %v outside [0,1]", d.Claim, d.Confidence)
		}
	}
}

func TestStaticVerifier_ThresholdValidation(t *testing.T) {
	ctx := context.Background()
	verifier := NewStatic()

	tests := []struct {
		name      string
		threshold float64
		wantErr   bool
	}{
		{name: "zero rejected", threshold: 0, wantErr: true},
		{name: "negative rejected", threshold: -0.5, wantErr: true},
		{name: "above one rejected", threshold: 1.5, wantErr: true},
		{name: "one accepted", threshold: 1},
		{name: "default accepted", threshold: DefaultThreshold},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := verifier.Verify(ctx, "doc", "analysis", tt.threshold)
			if tt.wantErr && err == nil {
				t.Errorf("Verify() threshold %v expected error", tt.threshold)
			}
			if !tt.wantErr && err != nil {
				t.Errorf("Verify() threshold %v unexpected error = %v", tt.threshold, err)
			}
		})
	}
}
