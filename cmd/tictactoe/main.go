package main

import (
	"context"
	"ctchen222/Tic-Tac-Toe-AI/internal/bot"
	"ctchen222/Tic-Tac-Toe-AI/internal/config"
	"ctchen222/Tic-Tac-Toe-AI/internal/db"
	"ctchen222/Tic-Tac-Toe-AI/internal/events"
	"ctchen222/Tic-Tac-Toe-AI/internal/logger"
	"ctchen222/Tic-Tac-Toe-AI/internal/repository"
	"ctchen222/Tic-Tac-Toe-AI/internal/room"
	"ctchen222/Tic-Tac-Toe-AI/internal/telemetry"
	"ctchen222/Tic-Tac-Toe-AI/internal/ui"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "tictactoe: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	baseDir, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("failed to get current directory: %w", err)
	}
	conf, err := config.Load(filepath.Join(baseDir, "config.yml"))
	if err != nil {
		return err
	}

	// The terminal belongs to the UI, so logs go to a file.
	logFile, err := os.OpenFile(conf.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return fmt.Errorf("failed to open log file: %w", err)
	}
	defer logFile.Close()

	// Initialize telemetry
	shutdown, err := telemetry.InitOtel(ctx, conf.Telemetry, logFile)
	if err != nil {
		return fmt.Errorf("failed to initialize telemetry: %w", err)
	}
	defer func() {
		if err := shutdown(context.Background()); err != nil {
			slog.Error("Error shutting down telemetry", "error", err)
		}
	}()

	logger.Init(logger.Options{
		Writer: logFile,
		Level:  conf.SlogLevel(),
		Otel:   conf.Telemetry.Enabled && conf.Telemetry.OTLPEndpoint != "",
	})

	var listeners events.Fanout
	if !conf.Results.Disabled {
		pool, err := db.Connect(ctx, conf.Results.Path)
		if err != nil {
			return err
		}
		defer pool.Close()
		listeners = append(listeners, repository.Listener(repository.NewResultsRepository(pool)))
	}

	r := room.NewRoom(
		room.Settings{Mode: room.Mode(conf.Game.Mode), Level: conf.Game.Level()},
		func(level int) room.MoveSelector { return bot.NewAI(level) },
		listeners,
	)
	slog.InfoContext(ctx, "Starting game", "room.id", r.ID, "mode", conf.Game.Mode, "difficulty", conf.Game.Difficulty)

	if err := ui.New(ctx, r).Run(); err != nil {
		return fmt.Errorf("terminal UI failed: %w", err)
	}
	slog.InfoContext(ctx, "Game closed")
	return nil
}
