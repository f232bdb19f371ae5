package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/arnavgoel/remindme/internal/agent/chat"
	"github.com/arnavgoel/remindme/internal/agent/extract"
	"github.com/arnavgoel/remindme/internal/config"
	"github.com/arnavgoel/remindme/internal/genai"
	"github.com/arnavgoel/remindme/internal/processor"
	"github.com/arnavgoel/remindme/internal/server"
	"github.com/arnavgoel/remindme/internal/store"
)

func main() {
	cfg := config.LoadFromEnv()

	chatGen, err := initGenerator(cfg, cfg.ChatAPIKey, cfg.ChatModel)
	if err != nil {
		fatal("configuring chat generator", err)
	}
	dataGen, err := initGenerator(cfg, cfg.DataAPIKey, cfg.DataModel)
	if err != nil {
		fatal("configuring extraction generator", err)
	}
	if !chatGen.IsConfigured() {
		fmt.Println("Warning: no chat API key set, replies will use the built-in fallback")
	}

	sessions := store.NewSessions()
	reminders := store.NewReminders()

	proc := processor.New(
		chat.NewAnalyzer(chatGen),
		extract.NewExtractor(dataGen),
		sessions, reminders, cfg.HistoryWindow,
	)

	srv := server.New(server.Config{
		Processor:     proc,
		Sessions:      sessions,
		Reminders:     reminders,
		ChatGenerator: chatGen,
		DataGenerator: dataGen,
		ChatModel:     cfg.ChatModel,
		DataModel:     cfg.DataModel,
		Port:          cfg.HTTPPort,
	})

	go func() {
		if err := srv.Start(); err != nil && err != http.ErrServerClosed {
			fmt.Fprintf(os.Stderr, "HTTP server error: %v\n", err)
		}
	}()

	waitForShutdown(srv)
}

func initGenerator(cfg *config.Config, apiKey, model string) (genai.Generator, error) {
	return genai.NewGenerator(genai.ProviderConfig{
		Provider:      cfg.Provider,
		APIKey:        apiKey,
		Model:         model,
		Temperature:   cfg.Temperature,
		RetryAttempts: cfg.RetryAttempts,
		RetryDelay:    cfg.RetryDelay,
	})
}

func waitForShutdown(srv *server.Server) {
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	<-sigChan

	fmt.Println("\nShutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "HTTP server shutdown error: %v\n", err)
	}
}

func fatal(action string, err error) {
	fmt.Fprintf(os.Stderr, "Error %s: %v\n", action, err)
	os.Exit(1)
}
