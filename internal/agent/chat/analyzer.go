package chat

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/arnavgoel/remindme/internal/agent"
	"github.com/arnavgoel/remindme/internal/genai"
	"github.com/arnavgoel/remindme/internal/store"
	"github.com/arnavgoel/remindme/internal/timeutil"
)

// Analyzer runs the intent stage: given a message and recent context it
// produces the conversational reply and decides whether the message carries
// reminder intent.
type Analyzer struct {
	gen genai.Generator
}

// NewAnalyzer creates an intent analyzer backed by the given generator.
func NewAnalyzer(gen genai.Generator) *Analyzer {
	return &Analyzer{gen: gen}
}

// Request carries everything the intent stage needs for one message.
type Request struct {
	Message         string
	History         []store.Turn // already capped by the caller
	Ref             timeutil.Reference
	NewConversation bool
}

// Analyze asks the model for a reply plus the trigger decision. The reply is
// sanitized before being returned. Errors are either *genai.GenerationError
// (transport) or decode failures; the caller falls back on both.
func (a *Analyzer) Analyze(ctx context.Context, req Request) (*agent.ChatAnalysis, error) {
	raw, err := a.gen.Generate(ctx, buildPrompt(req))
	if err != nil {
		return nil, err
	}

	var analysis agent.ChatAnalysis
	if err := agent.DecodeObject(raw, &analysis); err != nil {
		return nil, err
	}

	analysis.Message = agent.Sanitize(analysis.Message)
	return &analysis, nil
}

// IsConfigured returns true if the underlying generator has credentials.
func (a *Analyzer) IsConfigured() bool {
	return a.gen.IsConfigured()
}

func buildPrompt(req Request) string {
	var context bytes.Buffer
	if len(req.History) > 0 {
		context.WriteString("\nPrevious conversation context:\n")
		for _, turn := range req.History {
			context.WriteString(fmt.Sprintf("%s: %s\n", titleCase(turn.Role), turn.Content))
		}
	}

	title := ""
	if req.NewConversation {
		title = titleField
	}

	return fmt.Sprintf(analysisPrompt,
		req.Ref.Date,
		req.Ref.Clock(),
		context.String(),
		req.Message,
		title,
	)
}

func titleCase(role string) string {
	if role == "" {
		return role
	}
	return strings.ToUpper(role[:1]) + role[1:]
}
