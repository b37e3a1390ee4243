package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"dealerbot/internal/assistant"
	"dealerbot/internal/config"
	"dealerbot/internal/conversation"
	"dealerbot/internal/inventory"
	"dealerbot/internal/logger"
	"dealerbot/internal/storage"
	"dealerbot/pkg"

	"github.com/joho/godotenv"
)

func main() {
	// Load .env if present; real env vars still win.
	_ = godotenv.Load()

	cfg, err := config.Load("config.yaml")
	if err != nil {
		fmt.Fprintf(os.Stderr, "config error: %v\n", err)
		os.Exit(1)
	}

	if err := logger.InitLogger(cfg.Log); err != nil {
		fmt.Fprintf(os.Stderr, "logger error: %v\n", err)
		os.Exit(1)
	}

	store := newStore(cfg)
	svc := assistant.New(cfg, store)

	snapshot := pkg.Snapshot{
		Vehicles: inventory.Sample(),
	}

	logger.Info().
		Str("session_id", store.SessionID()).
		Int("inventory_size", len(snapshot.Vehicles)).
		Msg("assistant ready")

	fmt.Println("Dealership assistant demo. Type a question, or 'quit' to exit.")
	printQuickActions(svc)

	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("> ")
		if !scanner.Scan() {
			break
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if line == "quit" || line == "exit" {
			break
		}

		reply := svc.GenerateResponse(line, snapshot)
		fmt.Println(reply)
		printQuickActions(svc)
	}

	if recap := svc.HistorySummary(); recap != "" {
		logger.Debug().Str("recent_turns", recap).Msg("session recap")
	}
	archiveSession(cfg, store)
}

func newStore(cfg *config.Config) *conversation.Store {
	if cfg.Session.RedisURL == "" {
		return conversation.NewStore()
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	repo, err := conversation.NewRedisRepository(ctx, cfg.Session.RedisURL, time.Duration(cfg.Session.TTLSeconds)*time.Second)
	if err != nil {
		logger.Warn().Err(err).Msg("redis unavailable, keeping history in memory only")
		return conversation.NewStore()
	}

	logger.Info().Msg("conversation history persisted to redis")
	return conversation.NewPersistentStore(repo)
}

func archiveSession(cfg *config.Config, store *conversation.Store) {
	turns := store.History()
	if len(turns) == 0 {
		return
	}

	archiver := storage.NewJSONArchiver(cfg.Session.ArchiveDir)
	archive := storage.SessionArchive{
		SessionID:  store.SessionID(),
		ArchivedAt: time.Now(),
		Turns:      turns,
		Topics:     store.Preferences().RecentTopics,
	}
	if err := archiver.Save(archive); err != nil {
		logger.Warn().Err(err).Msg("failed to archive session")
		return
	}

	stats := storage.Stats(archive)
	logger.Info().
		Str("session_id", stats.SessionID).
		Int("turns", stats.TurnCount).
		Msg("session archived")
}

func printQuickActions(svc *assistant.Service) {
	actions := svc.QuickActions()
	labels := make([]string, len(actions))
	for i, a := range actions {
		labels[i] = a.Label
	}
	fmt.Printf("[%s]\n", strings.Join(labels, " | "))
}
