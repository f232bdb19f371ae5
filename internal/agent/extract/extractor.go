package extract

import (
	"context"
	"fmt"

	"github.com/arnavgoel/remindme/internal/agent"
	"github.com/arnavgoel/remindme/internal/genai"
	"github.com/arnavgoel/remindme/internal/timeutil"
)

// Extractor runs the extraction stage: given a message that already triggered
// reminder intent, it asks the model for a structured reminder draft.
type Extractor struct {
	gen genai.Generator
}

// NewExtractor creates an extractor backed by the given generator. The
// generator must not be shared with the intent stage.
func NewExtractor(gen genai.Generator) *Extractor {
	return &Extractor{gen: gen}
}

// Extract asks the model for a reminder candidate. Transport failures come
// back as *genai.GenerationError; unusable output comes back as a decode
// error so the caller can route to the heuristic fallback instead.
func (e *Extractor) Extract(ctx context.Context, message string, ref timeutil.Reference) (*agent.ReminderCandidate, error) {
	prompt := fmt.Sprintf(extractionPrompt, ref.Date, ref.Clock(), message)

	raw, err := e.gen.Generate(ctx, prompt)
	if err != nil {
		return nil, err
	}

	var candidate agent.ReminderCandidate
	if err := agent.DecodeObject(raw, &candidate); err != nil {
		return nil, err
	}
	return &candidate, nil
}

// IsConfigured returns true if the underlying generator has credentials.
func (e *Extractor) IsConfigured() bool {
	return e.gen.IsConfigured()
}
