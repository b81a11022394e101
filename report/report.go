// Package report renders the evaluation run into the Markdown document
// shipped with a submission.
package report

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/claimguardian/claimeval/api"
)

// DefaultModelName is the fine-tuned model the report describes unless
// a caller overrides it.
const DefaultModelName = "arungenailab/claimguardian-medical-billing-v2"

// Renderer produces the evaluation report document.
// All inputs are injected at construction so rendering is deterministic:
// the same report, results and clock always produce byte-identical output.
type Renderer struct {
	now           func() time.Time
	modelName     string
	verifications []api.VerificationResult
}

// Option configures a Renderer
type Option func(*Renderer)

// WithClock overrides the timestamp source. Tests inject a fixed clock
// to assert byte-exact output.
func WithClock(now func() time.Time) Option {
	return func(r *Renderer) {
		r.now = now
	}
}

// WithModelName overrides the model named in the report header.
func WithModelName(name string) Option {
	return func(r *Renderer) {
		r.modelName = name
	}
}

// WithVerification attaches claim verification results. The report's
// verification section is computed from these totals.
func WithVerification(results ...api.VerificationResult) Option {
	return func(r *Renderer) {
		r.verifications = append(r.verifications, results...)
	}
}

// NewRenderer creates a Renderer using functional options.
func NewRenderer(opts ...Option) *Renderer {
	r := &Renderer{
		now:       time.Now,
		modelName: DefaultModelName,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Render builds the full Markdown document from the aggregate report and
// the per-example results. Apart from the criterion table, the overall
// score, the dataset count and the verification totals, the sections are
// fixed template content.
func (r *Renderer) Render(rep api.AggregateReport, results []api.JudgmentResult) string {
	var b strings.Builder

	b.WriteString("# ClaimGuardian AI - Oumi Evaluation Report\n")
	b.WriteString("## AssembleHack25 - Iron Intelligence Award Submission\n\n")
	fmt.Fprintf(&b, "**Date**: %s\n", r.now().Format("January 2, 2006"))
	fmt.Fprintf(&b, "**Model**: %s\n", r.modelName)
	b.WriteString("**Framework**: Oumi (GRPO Training)\n\n")
	b.WriteString("---\n\n")

	b.WriteString(trainingSummary)

	b.WriteString("## 2. LLM-as-a-Judge Evaluation Results\n\n")
	b.WriteString("### Evaluation Criteria\n")
	b.WriteString("| Criterion | Score | Description |\n")
	b.WriteString("|-----------|-------|-------------|\n")
	for _, c := range api.Criteria {
		fmt.Fprintf(&b, "| %s | %.2f/10 | %s |\n", c.Label(), rep.AverageScore[c], c.Description())
	}
	b.WriteString("\n")
	fmt.Fprintf(&b, "### Overall Model Score: **%.2f/10**\n\n", rep.OverallAverage)

	b.WriteString("### Evaluation Dataset\n")
	fmt.Fprintf(&b, "- %d diverse medical billing scenarios\n", len(results))
	b.WriteString("- Includes MRI, colonoscopy, X-ray, and ER visits\n")
	b.WriteString("- Tests overcharge detection, upcoding, and unbundling\n\n")
	b.WriteString("---\n\n")

	b.WriteString("## 3. HallOumi Claim Verification\n\n")
	b.WriteString("### Integration Purpose\n")
	b.WriteString("Verify that AI-generated billing analysis claims are grounded in source documents.\n\n")
	b.WriteString("### Verification Results\n")
	r.writeVerification(&b)
	b.WriteString("---\n\n")

	b.WriteString(featuresAndStructure)

	b.WriteString(conclusion)

	return b.String()
}

// writeVerification totals the attached verification results
func (r *Renderer) writeVerification(b *strings.Builder) {
	if len(r.verifications) == 0 {
		b.WriteString("Claim verification was not run for this evaluation.\n\n")
		return
	}

	var verified, supported, unsupported int
	var confidenceSum float64
	for _, v := range r.verifications {
		verified += v.ClaimsVerified
		supported += v.ClaimsSupported
		unsupported += v.ClaimsUnsupported
		confidenceSum += v.ConfidenceAvg * float64(v.ClaimsVerified)
	}

	fmt.Fprintf(b, "- **Claims Verified**: %d\n", verified)
	if verified > 0 {
		fmt.Fprintf(b, "- **Claims Supported**: %d (%.0f%%)\n", supported, 100*float64(supported)/float64(verified))
		fmt.Fprintf(b, "- **Claims Unsupported**: %d (%.0f%%)\n", unsupported, 100*float64(unsupported)/float64(verified))
		fmt.Fprintf(b, "- **Average Confidence**: %.0f%%\n", 100*confidenceSum/float64(verified))
	}
	b.WriteString("\n")
}

// WriteFile renders the document and writes it to path.
func (r *Renderer) WriteFile(path string, rep api.AggregateReport, results []api.JudgmentResult) error {
	if err := os.WriteFile(path, []byte(r.Render(rep, results)), 0o644); err != nil {
		return fmt.Errorf("%w: %v", api.ErrWrite, err)
	}
	return nil
}

const trainingSummary = `## 1. Model Training Summary

### Training Method: GRPO (Group Relative Policy Optimization)
- Same algorithm used by DeepSeek-R1
- Chosen over DPO for better reward optimization
- Trained on 95,138 synthetic medical records

### Training Data: Synthea Medical Records
- Synthetic but realistic patient data
- HIPAA-compliant (no real patient data)
- Covers diverse medical procedures and billing scenarios

### Model Performance
- **Token Accuracy**: 95.8%
- **Base Model**: Qwen2-0.5B-Instruct
- **Training Time**: ~2 hours on A100 GPU

---

`

const featuresAndStructure = `## 4. Oumi Features Used

### Required Features
- [x] Reinforcement Learning fine-tuning (GRPO)
- [x] Custom reward functions
- [x] HuggingFace model upload

### Optional Features (Encouraged)
- [x] LLM-as-a-Judge evaluation
- [x] Custom evaluation criteria
- [x] Data synthesis documentation

### Bonus Features
- [x] HallOumi integration for claim verification
- [x] Comprehensive evaluation benchmarks
- [x] Medical domain-specific judges

---

## 5. Code Repository Structure

` + "```" + `
claimguardian-ai/
├── training/
│   ├── grpo_training.py          # GRPO training script
│   ├── reward_functions.py       # Custom medical billing rewards
│   └── synthea_dataset.py        # Data preprocessing
├── evaluation/
│   ├── llm_judge.py              # LLM-as-a-Judge implementation
│   ├── halloumi_integration.py   # HallOumi claim verification
│   └── benchmarks.yaml           # Evaluation configs
├── mcp-server/                   # Cline MCP integration
├── kestra-workflow/              # Kestra orchestration
└── vercel-frontend/              # Vercel deployment
` + "```" + `

---

`

const conclusion = `## 6. Conclusion

ClaimGuardian AI demonstrates comprehensive use of Oumi's capabilities:

1. **GRPO Training**: Successfully trained a medical billing model using Oumi's RL fine-tuning
2. **LLM-as-a-Judge**: Implemented custom judges for domain-specific evaluation
3. **HallOumi**: Integrated claim verification for trustworthy AI outputs
4. **Real-World Impact**: Addresses $100B+ medical billing error problem

---

*Generated by ClaimGuardian AI Evaluation Pipeline*
*Powered by Oumi - Open Universal Machine Intelligence*
`
