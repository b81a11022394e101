// Package dataset supplies the fixed medical billing evaluation examples
// and their JSON serialization.
package dataset

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/claimguardian/claimeval/api"
)

// Default returns the built-in evaluation dataset: four billing
// scenarios covering overcharge detection, upcoding and unbundling.
// The returned slice is freshly constructed on every call so callers
// may modify it without affecting later runs.
func Default() []api.EvaluationExample {
	return []api.EvaluationExample{
		{
			Request: `Patient: John Smith
Procedure: MRI Brain with contrast
CPT Code Billed: 70553
Amount Billed: $8,500
Insurance: BlueCross BlueShield`,
			Response: `BILLING ANALYSIS:

CPT Code: 70553 - MRI brain with/without contrast
Status: CORRECT code for procedure

Cost Analysis:
- Billed Amount: $8,500
- Medicare Rate: ~$400
- Fair Market Range: $1,200 - $4,500
- OVERCHARGE DETECTED: 89% above fair market value

Recommended Actions:
1. Request itemized bill
2. File appeal citing excessive charges
3. Reference Medicare pricing guidelines

Appeal Letter Generated: Yes
Risk Level: HIGH`,
			Reference: "CPT 70553 is correct. Medicare rate ~$400. Billing $8,500 is excessive overcharge.",
			ExpectedScore: map[api.Criterion]int{
				api.CriterionCPTAccuracy:    10,
				api.CriterionErrorDetection: 9,
				api.CriterionAppealQuality:  8,
				api.CriterionCompliance:     9,
			},
		},
		{
			Request: `Patient: Jane Doe
Procedure: Colonoscopy
CPT Code Billed: 45380
Amount Billed: $12,000
Insurance: Aetna`,
			Response: `BILLING ANALYSIS:

CPT Code: 45380 - Colonoscopy with biopsy
Status: May be incorrect - need to verify if biopsy was performed

Note: If no biopsy was done, correct code should be 45378 (diagnostic only)

Cost Analysis:
- Billed Amount: $12,000
- Medicare Rate: ~$500
- Fair Market Range: $1,500 - $4,000
- OVERCHARGE DETECTED: 200% above fair market

Potential Errors:
1. Possible upcoding (45380 vs 45378)
2. Excessive facility fees
3. Unbundling of services

Risk Level: CRITICAL`,
			Reference: "Need to verify if biopsy was performed. 45380 requires biopsy. Overcharge is significant.",
			ExpectedScore: map[api.Criterion]int{
				api.CriterionCPTAccuracy:    7,
				api.CriterionErrorDetection: 10,
				api.CriterionAppealQuality:  9,
				api.CriterionCompliance:     8,
			},
		},
		{
			Request: `Patient: Bob Wilson
Procedure: Chest X-ray
CPT Code Billed: 71046
Amount Billed: $350
Insurance: United Healthcare`,
			Response: `BILLING ANALYSIS:

CPT Code: 71046 - Chest X-ray, 2 views
Status: CORRECT

Cost Analysis:
- Billed Amount: $350
- Medicare Rate: ~$25
- Fair Market Range: $50 - $300
- Status: SLIGHTLY ELEVATED but within acceptable range

Recommendation: No action required, pricing is reasonable.

Risk Level: LOW`,
			Reference: "CPT 71046 is correct. Pricing at $350 is at high end but acceptable.",
			ExpectedScore: map[api.Criterion]int{
				api.CriterionCPTAccuracy:    10,
				api.CriterionErrorDetection: 8,
				api.CriterionAppealQuality:  6,
				api.CriterionCompliance:     10,
			},
		},
		{
			Request: `Patient: Sarah Johnson
Procedure: Emergency Room Visit
CPT Code Billed: 99285
Amount Billed: $15,000
Insurance: Cigna
Additional: CT Scan, Blood Work, IV Fluids`,
			Response: `BILLING ANALYSIS:

CPT Code: 99285 - ED visit, highest severity
Status: Need to verify severity level matches clinical documentation

Potential Issues:
1. 99285 is highest severity - may be upcoding from 99283/99284
2. Multiple unbundled services detected

Itemized Review Needed:
- CT Scan: Check for duplicate billing
- Blood Work: Verify panel vs individual tests
- IV Fluids: Should be included in facility fee

Cost Analysis:
- Billed: $15,000
- Expected Range: $3,000 - $8,000
- OVERCHARGE: 87-400% above expected

Risk Level: HIGH`,
			Reference: "ED billing frequently involves upcoding. $15,000 requires detailed itemization.",
			ExpectedScore: map[api.Criterion]int{
				api.CriterionCPTAccuracy:    8,
				api.CriterionErrorDetection: 10,
				api.CriterionAppealQuality:  9,
				api.CriterionCompliance:     9,
			},
		},
	}
}

// Save writes examples to path as a two-space indented JSON array,
// the format consumed by the external evaluation framework.
func Save(examples []api.EvaluationExample, path string) error {
	data, err := json.MarshalIndent(examples, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal dataset: %w", err)
	}
	data = append(data, '\n')
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("%w: %v", api.ErrWrite, err)
	}
	return nil
}

// Load reads a dataset previously written by Save.
func Load(path string) ([]api.EvaluationExample, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read dataset: %w", err)
	}
	var examples []api.EvaluationExample
	if err := json.Unmarshal(data, &examples); err != nil {
		return nil, fmt.Errorf("failed to unmarshal dataset: %w", err)
	}
	return examples, nil
}
