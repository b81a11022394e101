package api

import "errors"

var (
	// ErrEmptyDataset is returned when aggregation is asked to average zero examples
	ErrEmptyDataset = errors.New("evaluation dataset is empty")
	// ErrInvalidScore is returned when a criterion score is missing or outside the 1-10 range
	ErrInvalidScore = errors.New("criterion score out of range")
	// ErrWrite is returned when a report, dataset or config file cannot be written
	ErrWrite = errors.New("file write failed")
	// ErrMissingCapability is returned when a live judge or verifier is requested but not configured
	ErrMissingCapability = errors.New("required capability is not configured")
	// ErrLLMGenerationFailed is returned when LLM generation fails or returns an unusable response
	ErrLLMGenerationFailed = errors.New("LLM generation failed")
)
