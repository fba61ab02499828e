package config

import (
	"ctchen222/Tic-Tac-Toe-AI/internal/bot"
	"ctchen222/Tic-Tac-Toe-AI/internal/validator"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	LogLevel  string    `yaml:"log-level" env:"LOG_LEVEL" env-default:"info" validate:"oneof=debug info warn error"`
	LogFile   string    `yaml:"log-file" env:"LOG_FILE" env-default:"tictactoe.log"`
	Game      Game      `yaml:"game"`
	HTTP      HTTP      `yaml:"http"`
	Results   Results   `yaml:"results"`
	Telemetry Telemetry `yaml:"telemetry"`
}

type Game struct {
	Mode       string `yaml:"mode" env:"GAME_MODE" env-default:"ai" validate:"oneof=ai pvp"`
	Difficulty string `yaml:"difficulty" env:"GAME_DIFFICULTY" env-default:"hard" validate:"difficulty"`
}

type HTTP struct {
	Addr            string        `yaml:"addr" env:"HTTP_ADDR" env-default:":8080" validate:"required"`
	ShutdownTimeout time.Duration `yaml:"shutdown-timeout" env:"HTTP_SHUTDOWN_TIMEOUT" env-default:"5s"`
}

// Results configures the finished-game ledger.
type Results struct {
	Disabled bool   `yaml:"disabled" env:"RESULTS_DISABLED"`
	Path     string `yaml:"path" env:"RESULTS_DB" env-default:"./results.db"`
}

type Telemetry struct {
	Enabled      bool   `yaml:"enabled" env:"TELEMETRY_ENABLED" env-default:"false"`
	ServiceName  string `yaml:"service-name" env:"OTEL_SERVICE_NAME" env-default:"tic-tac-toe"`
	OTLPEndpoint string `yaml:"otlp-endpoint" env:"OTEL_EXPORTER_OTLP_ENDPOINT"`
}

// Load reads path when it exists, then the environment, and validates the result.
func Load(path string) (*Config, error) {
	config := &Config{}

	var err error
	if _, statErr := os.Stat(path); path != "" && statErr == nil {
		err = cleanenv.ReadConfig(path, config)
	} else if statErr != nil && !errors.Is(statErr, fs.ErrNotExist) {
		return nil, fmt.Errorf("unable to stat config file: %w", statErr)
	} else {
		err = cleanenv.ReadEnv(config)
	}
	if err != nil {
		return nil, fmt.Errorf("unable to load config: %w", err)
	}

	if err := validator.GetValidator().Struct(config); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return config, nil
}

// MustLoad - load all configurations, panicking on failure.
func MustLoad(path string) *Config {
	config, err := Load(path)
	if err != nil {
		panic(err)
	}
	return config
}

// Level returns the AI level named by Game.Difficulty.
func (that *Game) Level() int {
	level, err := bot.ParseDifficulty(that.Difficulty)
	if err != nil {
		return bot.LevelMinimax
	}
	return level
}

// SlogLevel maps LogLevel to a slog.Level.
func (that *Config) SlogLevel() slog.Level {
	switch that.LogLevel {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	}
	return slog.LevelInfo
}
