package extract

import (
	"strings"
	"testing"

	"github.com/arnavgoel/remindme/internal/timeutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var ref = timeutil.Reference{Date: "2024-06-10", Hour: 9, Minute: 0}

func TestFallback_Titles(t *testing.T) {
	tests := []struct {
		name     string
		message  string
		expected string
	}{
		{"remind me to", "Remind me to call John at 3 PM", "call John"},
		{"need to", "I need to submit the report by friday", "submit the report"},
		{"have to", "I have to pick up groceries tomorrow", "pick up groceries"},
		{"leading verb", "Call mom in 5 hours", "Call mom"},
		{"prefix before when clause", "Dentist appointment on monday at 10am", "Dentist appointment"},
		{"prefix keeps leading noise", "reminder: team standup tomorrow", "reminder: team standup"},
		{"no signal at all", "remind me", "Reminder"},
		{"empty message", "", "Reminder"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			candidate := Fallback(tt.message, ref)
			assert.Equal(t, tt.expected, candidate.Title)
		})
	}
}

func TestFallback_Dates(t *testing.T) {
	tests := []struct {
		name     string
		message  string
		expected string
	}{
		{"tomorrow keyword", "meeting tomorrow at noon", "tomorrow"},
		{"weekday name", "Submit taxes on Friday", "friday"},
		{"tomorrow wins over weekday", "tomorrow not friday", "tomorrow"},
		{"default", "call mom at 3 pm", "today"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			candidate := Fallback(tt.message, ref)
			assert.Equal(t, tt.expected, candidate.Date)
		})
	}
}

func TestFallback_Times(t *testing.T) {
	t.Run("meridiem time in message", func(t *testing.T) {
		candidate := Fallback("Remind me to call John at 3 PM", ref)
		assert.Equal(t, "15:00", candidate.Time)
	})

	t.Run("relative time in message", func(t *testing.T) {
		candidate := Fallback("call mom in 5 hours", ref)
		assert.Equal(t, "14:00", candidate.Time)
	})

	t.Run("no time in message", func(t *testing.T) {
		candidate := Fallback("buy milk tomorrow", ref)
		assert.Equal(t, "", candidate.Time)
	})
}

func TestFallback_DescriptionEchoesMessage(t *testing.T) {
	t.Run("short message echoed verbatim", func(t *testing.T) {
		candidate := Fallback("buy milk", ref)
		assert.Equal(t, "buy milk", candidate.Description)
	})

	t.Run("long message truncated", func(t *testing.T) {
		long := strings.Repeat("a", 300)
		candidate := Fallback(long, ref)
		require.True(t, strings.HasSuffix(candidate.Description, "..."))
		assert.Len(t, candidate.Description, descriptionLimit+3)
	})
}

func TestFallback_IsTotal(t *testing.T) {
	inputs := []string{"", "    ", "???", "<script>alert(1)</script>", strings.Repeat("x", 10000)}

	for _, input := range inputs {
		candidate := Fallback(input, ref)
		require.NotNil(t, candidate)
		assert.NotEmpty(t, candidate.Title)
		assert.NotEmpty(t, candidate.Date)
		assert.Empty(t, candidate.Error)
	}
}
