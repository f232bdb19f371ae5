package store

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessions_LazyCreation(t *testing.T) {
	s := NewSessions()

	assert.Empty(t, s.History("alpha"))
	assert.Equal(t, 1, s.Count(), "first reference creates the session")
}

func TestSessions_AppendAndHistory(t *testing.T) {
	s := NewSessions()

	s.Append("alpha", "user", "hello")
	s.Append("alpha", "assistant", "hi, how can I help?")

	history := s.History("alpha")
	require.Len(t, history, 2)
	assert.Equal(t, Turn{Role: "user", Content: "hello"}, history[0])
	assert.Equal(t, Turn{Role: "assistant", Content: "hi, how can I help?"}, history[1])
}

func TestSessions_HistoryReturnsCopy(t *testing.T) {
	s := NewSessions()
	s.Append("alpha", "user", "hello")

	history := s.History("alpha")
	history[0].Content = "mutated"

	assert.Equal(t, "hello", s.History("alpha")[0].Content)
}

func TestSessions_ResetReplacesWholesale(t *testing.T) {
	s := NewSessions()
	s.Append("alpha", "user", "hello")
	s.Append("beta", "user", "hey")

	s.Reset("alpha")

	assert.Empty(t, s.History("alpha"))
	assert.Len(t, s.History("beta"), 1, "other sessions are untouched")
}

func TestSessions_ConcurrentDistinctSessions(t *testing.T) {
	s := NewSessions()
	const n = 50

	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			id := fmt.Sprintf("session-%d", i)
			s.Append(id, "user", "hello")
			s.Append(id, "assistant", "hi")
		}(i)
	}
	wg.Wait()

	assert.Equal(t, n, s.Count())
	for i := 0; i < n; i++ {
		assert.Len(t, s.History(fmt.Sprintf("session-%d", i)), 2)
	}
}
