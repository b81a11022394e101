package claimeval

import "github.com/claimguardian/claimeval/api"

var (
	// ErrEmptyDataset is returned when an evaluation is attempted over no examples
	ErrEmptyDataset = api.ErrEmptyDataset
	// ErrInvalidScore is returned when a criterion score falls outside the 1-10 range
	ErrInvalidScore = api.ErrInvalidScore
	// ErrWrite is returned when an artifact cannot be written to disk
	ErrWrite = api.ErrWrite
	// ErrMissingCapability is returned when a required client or generator is not configured
	ErrMissingCapability = api.ErrMissingCapability
	// ErrLLMGenerationFailed is returned when LLM generation fails
	ErrLLMGenerationFailed = api.ErrLLMGenerationFailed
)
