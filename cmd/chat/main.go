package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/arnavgoel/remindme/internal/agent/chat"
	"github.com/arnavgoel/remindme/internal/agent/extract"
	"github.com/arnavgoel/remindme/internal/config"
	"github.com/arnavgoel/remindme/internal/genai"
	"github.com/arnavgoel/remindme/internal/processor"
	"github.com/arnavgoel/remindme/internal/store"
	"github.com/arnavgoel/remindme/internal/timeutil"
	"github.com/chzyer/readline"
	"github.com/google/uuid"
)

// Terminal client running the full pipeline in-process, no HTTP server needed.
func main() {
	cfg := config.LoadFromEnv()

	chatGen, err := newGenerator(cfg, cfg.ChatAPIKey, cfg.ChatModel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error configuring chat generator: %v\n", err)
		os.Exit(1)
	}
	dataGen, err := newGenerator(cfg, cfg.DataAPIKey, cfg.DataModel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error configuring extraction generator: %v\n", err)
		os.Exit(1)
	}
	if !chatGen.IsConfigured() {
		fmt.Println("Warning: no API key set, replies will use the built-in fallback")
	}

	sessions := store.NewSessions()
	reminders := store.NewReminders()
	proc := processor.New(
		chat.NewAnalyzer(chatGen),
		extract.NewExtractor(dataGen),
		sessions, reminders, cfg.HistoryWindow,
	)

	rl, err := readline.New("you> ")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error initializing terminal: %v\n", err)
		os.Exit(1)
	}
	defer rl.Close()

	sessionID := uuid.NewString()
	newConversation := true

	fmt.Println("Reminder assistant. Commands: /new, /reminders, /quit")

	for {
		line, err := rl.Readline()
		if err == readline.ErrInterrupt || err == io.EOF {
			fmt.Println("Goodbye!")
			return
		}
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error reading input: %v\n", err)
			return
		}

		input := strings.TrimSpace(line)
		if input == "" {
			continue
		}

		switch strings.ToLower(input) {
		case "/quit", "quit", "exit", "bye":
			fmt.Println("Goodbye!")
			return
		case "/new":
			sessions.Reset(sessionID)
			sessionID = uuid.NewString()
			newConversation = true
			fmt.Println("New conversation started.")
			continue
		case "/reminders":
			printReminders(reminders)
			continue
		}

		resp, err := proc.HandleMessage(context.Background(), processor.Request{
			Message:         input,
			SessionID:       sessionID,
			Ref:             timeutil.Now(time.Now()),
			NewConversation: newConversation,
		})
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			continue
		}
		newConversation = false

		fmt.Printf("bot> %s\n", resp.Message)
		if resp.ReminderCreated != nil {
			r := resp.ReminderCreated
			if r.Time != "" {
				fmt.Printf("     [reminder #%d: %s on %s at %s]\n", r.ID, r.Title, r.Date, r.Time)
			} else {
				fmt.Printf("     [reminder #%d: %s on %s]\n", r.ID, r.Title, r.Date)
			}
		}
	}
}

func newGenerator(cfg *config.Config, apiKey, model string) (genai.Generator, error) {
	return genai.NewGenerator(genai.ProviderConfig{
		Provider:      cfg.Provider,
		APIKey:        apiKey,
		Model:         model,
		Temperature:   cfg.Temperature,
		RetryAttempts: cfg.RetryAttempts,
		RetryDelay:    cfg.RetryDelay,
	})
}

func printReminders(reminders *store.Reminders) {
	upcoming := reminders.Upcoming(timeutil.Now(time.Now()))
	if len(upcoming.All) == 0 {
		fmt.Println("No reminders yet.")
		return
	}
	fmt.Printf("Today (%d):\n", len(upcoming.Today))
	for _, r := range upcoming.Today {
		printReminder(r)
	}
	fmt.Printf("Next 7 days (%d):\n", len(upcoming.Upcoming))
	for _, r := range upcoming.Upcoming {
		printReminder(r)
	}
}

func printReminder(r store.Reminder) {
	if r.Time != "" {
		fmt.Printf("  #%d %s (%s %s)\n", r.ID, r.Title, r.Date, r.Time)
	} else {
		fmt.Printf("  #%d %s (%s)\n", r.ID, r.Title, r.Date)
	}
}
