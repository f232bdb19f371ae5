package genai

import (
	"context"
	"fmt"
)

// Generator is the capability boundary between the pipeline and whatever
// model produces text. Implementations must return a *GenerationError for
// transport or availability failures so callers can tell them apart from
// unusable-but-delivered output.
type Generator interface {
	// Generate turns a prompt into raw model text.
	Generate(ctx context.Context, prompt string) (string, error)

	// IsConfigured returns true if the generator has credentials to run.
	IsConfigured() bool
}

// GenerationError marks a transport or availability failure of a generation
// backend. These are retryable; malformed output is not wrapped in this type.
type GenerationError struct {
	Provider string
	Err      error
}

func (e *GenerationError) Error() string {
	return fmt.Sprintf("%s generation failed: %v", e.Provider, e.Err)
}

func (e *GenerationError) Unwrap() error {
	return e.Err
}
