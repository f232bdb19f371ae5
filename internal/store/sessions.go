package store

import "sync"

// Turn is one (role, content) entry of a session's conversation history.
type Turn struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// Sessions maps opaque session ids to conversation history. Sessions are
// created lazily on first reference and replaced wholesale on reset; ids are
// trusted as given. Safe for concurrent use.
type Sessions struct {
	mu       sync.Mutex
	sessions map[string][]Turn
}

// NewSessions creates an empty session store.
func NewSessions() *Sessions {
	return &Sessions{sessions: make(map[string][]Turn)}
}

// History returns a copy of the session's history, creating the session if it
// does not exist yet.
func (s *Sessions) History(id string) []Turn {
	s.mu.Lock()
	defer s.mu.Unlock()

	history, ok := s.sessions[id]
	if !ok {
		s.sessions[id] = nil
		return nil
	}
	out := make([]Turn, len(history))
	copy(out, history)
	return out
}

// Append records one turn, creating the session if it does not exist yet.
func (s *Sessions) Append(id, role, content string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[id] = append(s.sessions[id], Turn{Role: role, Content: content})
}

// Reset replaces the session's state wholesale with an empty history.
func (s *Sessions) Reset(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[id] = nil
}

// Count returns the number of known sessions.
func (s *Sessions) Count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sessions)
}
