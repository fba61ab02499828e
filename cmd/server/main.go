package main

import (
	"context"
	"ctchen222/Tic-Tac-Toe-AI/internal/api/controller"
	"ctchen222/Tic-Tac-Toe-AI/internal/api/service"
	"ctchen222/Tic-Tac-Toe-AI/internal/config"
	"ctchen222/Tic-Tac-Toe-AI/internal/db"
	"ctchen222/Tic-Tac-Toe-AI/internal/logger"
	"ctchen222/Tic-Tac-Toe-AI/internal/repository"
	"ctchen222/Tic-Tac-Toe-AI/internal/server"
	"ctchen222/Tic-Tac-Toe-AI/internal/telemetry"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
)

func main() {
	defer func() {
		if err := recover(); err != nil {
			fmt.Fprintf(os.Stderr, "recovered from panic: %v\n", err)
			os.Exit(1)
		}
	}()

	ctx := context.Background()

	baseDir, err := os.Getwd()
	if err != nil {
		panic(fmt.Errorf("failed to get current directory: %w", err))
	}
	conf := config.MustLoad(filepath.Join(baseDir, "config.yml"))

	// Initialize telemetry
	shutdown, err := telemetry.InitOtel(ctx, conf.Telemetry, os.Stdout)
	if err != nil {
		panic(fmt.Errorf("failed to initialize telemetry: %w", err))
	}
	defer func() {
		if err := shutdown(ctx); err != nil {
			slog.Error("Error shutting down telemetry", "error", err)
		}
	}()

	logger.Init(logger.Options{
		Writer: os.Stdout,
		Level:  conf.SlogLevel(),
		Otel:   conf.Telemetry.Enabled && conf.Telemetry.OTLPEndpoint != "",
	})

	// The ledger is read-only here; the terminal game writes it.
	var resultsRepo repository.ResultsRepository
	if !conf.Results.Disabled {
		pool, err := db.Connect(ctx, conf.Results.Path)
		if err != nil {
			panic(fmt.Errorf("failed to open results database: %w", err))
		}
		defer pool.Close()
		resultsRepo = repository.NewResultsRepository(pool)
	}

	// Create services
	advisorService := service.NewAdvisorService(nil)
	resultsService := service.NewResultsService(resultsRepo)

	// Create controllers
	advisorController := controller.NewAdvisorController(advisorService, resultsService)

	// Create the Gin-based server
	srv, err := server.NewServer(advisorController)
	if err != nil {
		panic(err)
	}

	// Graceful shutdown
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	httpServer := &http.Server{
		Addr:    conf.HTTP.Addr,
		Handler: srv.Engine(),
	}

	serveErr := make(chan error, 1)
	go func() {
		slog.Info("http server started", "addr", conf.HTTP.Addr)
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
	}()

	select {
	case <-stop:
	case err := <-serveErr:
		slog.Error("ListenAndServe failed", "error", err)
	}

	slog.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), conf.HTTP.ShutdownTimeout)
	defer cancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		slog.Error("Server forced to shutdown", "error", err)
	}

	slog.Info("Server exiting")
}
