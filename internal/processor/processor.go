package processor

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/arnavgoel/remindme/internal/agent"
	"github.com/arnavgoel/remindme/internal/agent/chat"
	"github.com/arnavgoel/remindme/internal/agent/extract"
	"github.com/arnavgoel/remindme/internal/genai"
	"github.com/arnavgoel/remindme/internal/store"
	"github.com/arnavgoel/remindme/internal/timeutil"
)

const (
	defaultSessionID     = "default"
	defaultHistoryWindow = 5
)

// ErrEmptyMessage is returned for requests without a message; transports
// report it as a client error.
var ErrEmptyMessage = errors.New("message is required")

// IntentAnalyzer is the intent/reply stage of the pipeline.
type IntentAnalyzer interface {
	Analyze(ctx context.Context, req chat.Request) (*agent.ChatAnalysis, error)
}

// ReminderExtractor is the structured extraction stage of the pipeline.
type ReminderExtractor interface {
	Extract(ctx context.Context, message string, ref timeutil.Reference) (*agent.ReminderCandidate, error)
}

// Request is one inbound chat message with its context. Ref must carry the
// caller's current date/time; the pipeline never reads a wall clock.
type Request struct {
	Message         string             `json:"message"`
	SessionID       string             `json:"session_id"`
	UserID          string             `json:"user_id,omitempty"`
	History         []store.Turn       `json:"conversation_history,omitempty"`
	Ref             timeutil.Reference `json:"current_datetime"`
	NewConversation bool               `json:"is_new_conversation"`
}

// Response is the composed result. Every path through the pipeline produces
// one; failures inside the stages never escape as raw errors.
type Response struct {
	Message         string          `json:"message"`
	Trigger         bool            `json:"trigger"`
	SessionID       string          `json:"session_id"`
	Title           string          `json:"title,omitempty"`
	ReminderCreated *store.Reminder `json:"reminder_created,omitempty"`
	Error           string          `json:"error,omitempty"`
}

// Processor composes the two generation stages, the temporal resolver and
// the stores into the end-to-end message pipeline.
type Processor struct {
	chat          IntentAnalyzer
	extractor     ReminderExtractor
	sessions      *store.Sessions
	reminders     *store.Reminders
	historyWindow int
	logger        *slog.Logger
}

// New creates a Processor. historyWindow caps how many prior turns reach the
// intent prompt; zero or negative selects the default of 5.
func New(intent IntentAnalyzer, extractor ReminderExtractor, sessions *store.Sessions, reminders *store.Reminders, historyWindow int) *Processor {
	if historyWindow <= 0 {
		historyWindow = defaultHistoryWindow
	}
	return &Processor{
		chat:          intent,
		extractor:     extractor,
		sessions:      sessions,
		reminders:     reminders,
		historyWindow: historyWindow,
		logger:        slog.Default().With("component", "processor"),
	}
}

// HandleMessage runs one message through the pipeline. The only error it
// returns is ErrEmptyMessage; everything else is folded into the response.
func (p *Processor) HandleMessage(ctx context.Context, req Request) (resp *Response, err error) {
	if strings.TrimSpace(req.Message) == "" {
		return nil, ErrEmptyMessage
	}
	if req.SessionID == "" {
		req.SessionID = defaultSessionID
	}

	defer func() {
		if r := recover(); r != nil {
			p.logger.Error("pipeline panic recovered", "panic", r, "session_id", req.SessionID)
			resp = &Response{
				Message:   "Something went wrong while processing your message. Please try again.",
				SessionID: req.SessionID,
			}
			err = nil
		}
	}()

	history := req.History
	if len(history) == 0 {
		history = p.sessions.History(req.SessionID)
	}
	if len(history) > p.historyWindow {
		history = history[len(history)-p.historyWindow:]
	}

	resp = p.process(ctx, req, history)

	p.sessions.Append(req.SessionID, "user", req.Message)
	p.sessions.Append(req.SessionID, "assistant", resp.Message)
	return resp, nil
}

func (p *Processor) process(ctx context.Context, req Request, history []store.Turn) *Response {
	analysis, err := p.chat.Analyze(ctx, chat.Request{
		Message:         req.Message,
		History:         history,
		Ref:             req.Ref,
		NewConversation: req.NewConversation,
	})
	if err != nil {
		p.logger.Warn("intent stage unusable, synthesizing reply", "session_id", req.SessionID, "error", err)
		return p.synthesizedResponse(req)
	}

	resp := &Response{
		Message:   analysis.Message,
		Trigger:   analysis.Trigger,
		SessionID: req.SessionID,
	}
	if req.NewConversation {
		resp.Title = analysis.Title
		if resp.Title == "" {
			resp.Title = titleFromMessage(req.Message)
		}
	}

	if !analysis.Trigger {
		return resp
	}

	candidate, err := p.extractor.Extract(ctx, req.Message, req.Ref)
	if err != nil {
		var genErr *genai.GenerationError
		if errors.As(err, &genErr) {
			// Transport failure after retries: the conversational reply
			// survives, just without a reminder.
			p.logger.Warn("extraction stage unavailable", "session_id", req.SessionID, "error", err)
			return resp
		}
		p.logger.Warn("extraction output unusable, using fallback extractor", "session_id", req.SessionID, "error", err)
		candidate = extract.Fallback(req.Message, req.Ref)
	}

	return p.finalize(req, resp, candidate)
}

// finalize normalizes and validates the candidate and stores the reminder.
func (p *Processor) finalize(req Request, resp *Response, candidate *agent.ReminderCandidate) *Response {
	if candidate.Error != "" {
		return p.reject(resp, candidate.Error)
	}

	date := timeutil.ResolveDate(candidate.Date, req.Ref)
	clock := timeutil.ResolveTime(candidate.Time, req.Ref)

	if err := timeutil.ValidateFuture(date, clock, req.Ref); err != nil {
		return p.reject(resp, err.Error())
	}

	created := p.reminders.Create(candidate.Title, date, clock, candidate.Description)
	p.logger.Info("reminder created",
		"id", created.ID, "title", created.Title, "date", created.Date, "time", created.Time)
	resp.ReminderCreated = &created
	return resp
}

func (p *Processor) reject(resp *Response, reason string) *Response {
	resp.Message = fmt.Sprintf("Sorry, I couldn't set that reminder: %s", reason)
	resp.Trigger = false
	resp.Error = reason
	return resp
}

// synthesizedResponse covers an unusable intent stage: a generic
// acknowledgment plus a keyword-based trigger guess. The pipeline responds
// immediately; extraction is not attempted without a real classification.
func (p *Processor) synthesizedResponse(req Request) *Response {
	resp := &Response{
		Message:   agent.Sanitize(fmt.Sprintf("I understand your message: '%s'. How can I help you?", req.Message)),
		Trigger:   guessTrigger(req.Message),
		SessionID: req.SessionID,
	}
	if req.NewConversation {
		resp.Title = titleFromMessage(req.Message)
	}
	return resp
}

var triggerKeywords = []string{"remind", "reminder", "remember", "schedule", "appointment", "meeting"}

func guessTrigger(message string) bool {
	lower := strings.ToLower(message)
	for _, kw := range triggerKeywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}

func titleFromMessage(message string) string {
	words := strings.Fields(message)
	if len(words) == 0 {
		return "New Chat"
	}
	if len(words) > 4 {
		words = words[:4]
	}
	return strings.Join(words, " ")
}
