package agent

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeObject(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{
			name: "bare object",
			raw:  `{"message": "hi", "trigger": true}`,
		},
		{
			name: "json code fence",
			raw:  "```json\n{\"message\": \"hi\", \"trigger\": true}\n```",
		},
		{
			name: "plain code fence",
			raw:  "```\n{\"message\": \"hi\", \"trigger\": true}\n```",
		},
		{
			name: "surrounding prose",
			raw:  "Sure! Here is the analysis:\n{\"message\": \"hi\", \"trigger\": true}\nLet me know if you need anything else.",
		},
		{
			name: "nested object stops at the balanced brace",
			raw:  `{"message": "hi", "trigger": true, "extra": {"a": 1}} trailing`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var analysis ChatAnalysis
			err := DecodeObject(tt.raw, &analysis)
			require.NoError(t, err)
			assert.Equal(t, "hi", analysis.Message)
			assert.True(t, analysis.Trigger)
		})
	}
}

func TestDecodeObject_Failures(t *testing.T) {
	var analysis ChatAnalysis

	t.Run("no object at all", func(t *testing.T) {
		assert.Error(t, DecodeObject("I could not produce JSON, sorry.", &analysis))
	})

	t.Run("unterminated object", func(t *testing.T) {
		assert.Error(t, DecodeObject(`{"message": "hi"`, &analysis))
	})

	t.Run("malformed body", func(t *testing.T) {
		assert.Error(t, DecodeObject(`{message: hi}`, &analysis))
	})
}

func TestDecodeObject_NullFieldsStayAbsent(t *testing.T) {
	var candidate ReminderCandidate
	raw := `{"title": "Meeting", "date": "today", "time": null, "description": "", "error": null}`
	require.NoError(t, DecodeObject(raw, &candidate))
	assert.Equal(t, "Meeting", candidate.Title)
	assert.Equal(t, "", candidate.Time)
	assert.Equal(t, "", candidate.Error)
}

func TestSanitize(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"plain text untouched", "Hello there", "Hello there"},
		{"strips simple tags", "I'll set that up.<br>Done!", "I'll set that up.Done!"},
		{"strips styled spans", `Reminder set. <div class="status">Processing...</div>`, "Reminder set. Processing..."},
		{"collapses whitespace", "a   b\n\t c", "a b c"},
		{"trims ends", "  hello  ", "hello"},
		{"empty input", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Sanitize(tt.input))
		})
	}
}

func TestSanitize_Idempotent(t *testing.T) {
	inputs := []string{
		"plain",
		"<b>bold</b> and <i>italic</i>",
		"  spaced   out  <br/> text ",
		"<<nested>>",
	}

	for _, input := range inputs {
		once := Sanitize(input)
		assert.Equal(t, once, Sanitize(once), "input %q", input)
	}
}
