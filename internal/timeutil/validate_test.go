package timeutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateFuture_SameDay(t *testing.T) {
	now := Reference{Date: "2024-06-10", Hour: 9, Minute: 30}

	t.Run("one minute ahead is valid", func(t *testing.T) {
		assert.NoError(t, ValidateFuture("2024-06-10", "09:31", now))
	})

	t.Run("one minute behind is a past time", func(t *testing.T) {
		err := ValidateFuture("2024-06-10", "09:29", now)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "past time")
		assert.Contains(t, err.Error(), "09:30")
		assert.Contains(t, err.Error(), "09:29")
	})

	t.Run("exactly now is a past time", func(t *testing.T) {
		err := ValidateFuture("2024-06-10", "09:30", now)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "past time")
	})

	t.Run("same-day evening is valid regardless of date comparison", func(t *testing.T) {
		assert.NoError(t, ValidateFuture("2024-06-10", "23:00", now))
	})
}

func TestValidateFuture_PastDate(t *testing.T) {
	now := Reference{Date: "2024-06-10", Hour: 9, Minute: 0}

	tests := []struct {
		name  string
		clock string
	}{
		{"with morning time", "08:00"},
		{"with late time", "23:59"},
		{"without time", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateFuture("2024-06-09", tt.clock, now)
			assert.Error(t, err)
			assert.Contains(t, err.Error(), "past date")
			assert.Contains(t, err.Error(), "2024-06-10")
			assert.Contains(t, err.Error(), "2024-06-09")
		})
	}
}

func TestValidateFuture_AbsentTimeUsesImplicitNine(t *testing.T) {
	t.Run("today before nine is valid", func(t *testing.T) {
		now := Reference{Date: "2024-06-10", Hour: 8, Minute: 0}
		assert.NoError(t, ValidateFuture("2024-06-10", "", now))
	})

	t.Run("today after nine is a past time", func(t *testing.T) {
		now := Reference{Date: "2024-06-10", Hour: 10, Minute: 0}
		err := ValidateFuture("2024-06-10", "", now)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "past time")
	})

	t.Run("tomorrow is always valid", func(t *testing.T) {
		now := Reference{Date: "2024-06-10", Hour: 23, Minute: 59}
		assert.NoError(t, ValidateFuture("2024-06-11", "", now))
	})
}

func TestValidateFuture_FutureDate(t *testing.T) {
	now := Reference{Date: "2024-06-10", Hour: 9, Minute: 0}
	assert.NoError(t, ValidateFuture("2024-06-17", "00:00", now))
	assert.NoError(t, ValidateFuture("2025-01-01", "", now))
}

func TestValidateFuture_MalformedInput(t *testing.T) {
	now := Reference{Date: "2024-06-10", Hour: 9, Minute: 0}

	err := ValidateFuture("june 10th", "09:00", now)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "invalid date/time format")

	err = ValidateFuture("2024-06-11", "9pm", now)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "invalid date/time format")
}
