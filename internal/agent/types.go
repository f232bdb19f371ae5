package agent

// ChatAnalysis is the intent stage's decoded result: the conversational reply
// plus the decision on whether the message carries reminder intent. Title is
// only requested (and only present) for new conversations.
type ChatAnalysis struct {
	Message string `json:"message"`
	Trigger bool   `json:"trigger"`
	Title   string `json:"title,omitempty"`
}

// ReminderCandidate is a pre-validation draft produced by the extraction
// stage or the fallback extractor. Date and Time hold the raw expressions as
// extracted ("tomorrow", "3 pm"); the pipeline normalizes and validates them
// before anything is stored. Error is set when the extraction stage itself
// judged the request invalid.
type ReminderCandidate struct {
	Title       string `json:"title"`
	Date        string `json:"date"`
	Time        string `json:"time"`
	Description string `json:"description"`
	Error       string `json:"error"`
}
