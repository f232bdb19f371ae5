package server

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/arnavgoel/remindme/internal/processor"
	"github.com/arnavgoel/remindme/internal/timeutil"
)

const serviceVersion = "2.0.0"

// Chat API

func (s *Server) handleChat(w http.ResponseWriter, r *http.Request) {
	var req processor.Request
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid JSON")
		return
	}

	// Callers that don't send their clock get the server's.
	if req.Ref.Date == "" {
		req.Ref = timeutil.Now(time.Now())
	}

	resp, err := s.proc.HandleMessage(r.Context(), req)
	if err != nil {
		if errors.Is(err, processor.ErrEmptyMessage) {
			respondError(w, http.StatusBadRequest, "Message is required")
			return
		}
		respondError(w, http.StatusInternalServerError, err.Error())
		return
	}

	respondJSON(w, http.StatusOK, resp)
}

func (s *Server) handleNewChat(w http.ResponseWriter, r *http.Request) {
	var req struct {
		SessionID string `json:"session_id"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid JSON")
		return
	}
	if req.SessionID == "" {
		req.SessionID = "default"
	}

	s.sessions.Reset(req.SessionID)

	respondJSON(w, http.StatusOK, map[string]string{
		"message":    "New chat session created",
		"session_id": req.SessionID,
	})
}

// Reminders API

func (s *Server) handleListReminders(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, s.reminders.Upcoming(timeutil.Now(time.Now())))
}

func (s *Server) handleCreateReminder(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Title       string `json:"title"`
		Date        string `json:"date"`
		Time        string `json:"time"`
		Description string `json:"description"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid JSON")
		return
	}

	// Manual creation skips classification and validation entirely.
	if req.Date == "" {
		req.Date = time.Now().Format(timeutil.ISODate)
	}

	reminder := s.reminders.Create(req.Title, req.Date, req.Time, req.Description)

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"message":  "Reminder created successfully",
		"reminder": reminder,
	})
}

// Service status

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]interface{}{
		"status":              "healthy",
		"chat_model":          s.chatModel,
		"data_model":          s.dataModel,
		"total_reminders":     s.reminders.Count(),
		"chat_api_configured": s.chatGen != nil && s.chatGen.IsConfigured(),
		"data_api_configured": s.dataGen != nil && s.dataGen.IsConfigured(),
		"version":             serviceVersion,
	})
}

func (s *Server) handleTestConnection(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]string{
		"status":    "connected",
		"message":   "reminder service is running",
		"timestamp": time.Now().Format(time.RFC3339),
		"service":   "remindme",
	})
}

func (s *Server) handleRoot(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		respondError(w, http.StatusNotFound, "not found")
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{
		"service": "remindme",
		"status":  "running",
		"version": serviceVersion,
	})
}

// Helper functions

func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		slog.Error("encoding JSON response", "error", err)
	}
}

func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]string{"error": message})
}
