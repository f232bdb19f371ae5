package server

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/arnavgoel/remindme/internal/genai"
	"github.com/arnavgoel/remindme/internal/processor"
	"github.com/arnavgoel/remindme/internal/store"
)

type Server struct {
	proc      *processor.Processor
	sessions  *store.Sessions
	reminders *store.Reminders
	chatGen   genai.Generator
	dataGen   genai.Generator
	chatModel string
	dataModel string
	httpSrv   *http.Server
	port      int
	logger    *slog.Logger
}

// Config holds everything the HTTP layer needs; the handlers stay thin over
// the processor and the stores.
type Config struct {
	Processor *processor.Processor
	Sessions  *store.Sessions
	Reminders *store.Reminders

	// The two generation backends, reported by the health endpoint.
	ChatGenerator genai.Generator
	DataGenerator genai.Generator
	ChatModel     string
	DataModel     string

	Port int
}

func New(cfg Config) *Server {
	s := &Server{
		proc:      cfg.Processor,
		sessions:  cfg.Sessions,
		reminders: cfg.Reminders,
		chatGen:   cfg.ChatGenerator,
		dataGen:   cfg.DataGenerator,
		chatModel: cfg.ChatModel,
		dataModel: cfg.DataModel,
		port:      cfg.Port,
		logger:    slog.Default().With("component", "server"),
	}

	mux := http.NewServeMux()
	s.registerRoutes(mux)

	s.httpSrv = &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      s.corsMiddleware(mux),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	return s
}

func (s *Server) registerRoutes(mux *http.ServeMux) {
	// Chat API
	mux.HandleFunc("POST /api/chat", s.handleChat)
	mux.HandleFunc("POST /api/new-chat", s.handleNewChat)

	// Reminders API
	mux.HandleFunc("GET /api/reminders", s.handleListReminders)
	mux.HandleFunc("POST /api/reminders", s.handleCreateReminder)

	// Service status
	mux.HandleFunc("GET /api/health", s.handleHealth)
	mux.HandleFunc("GET /api/test-connection", s.handleTestConnection)
	mux.HandleFunc("GET /", s.handleRoot)
}

func (s *Server) Start() error {
	s.logger.Info("starting HTTP server", "addr", fmt.Sprintf("http://localhost:%d", s.port))
	return s.httpSrv.ListenAndServe()
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpSrv.Shutdown(ctx)
}

// Handler returns the server's HTTP handler for testing purposes
func (s *Server) Handler() http.Handler {
	return s.httpSrv.Handler
}

// corsMiddleware adds CORS headers to allow browser frontend requests
func (s *Server) corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		// Handle preflight requests
		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}
