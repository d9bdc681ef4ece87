// Package config loads engine and logging settings from the environment. A
// .env file in the working directory is read first when present.
package config

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"

	// this will automatically load your .env file:
	_ "github.com/joho/godotenv/autoload"

	"chess-ai/engine"
)

const (
	EnvSearchDepth      = "CHESS_SEARCH_DEPTH"
	EnvCheckmateScore   = "CHESS_CHECKMATE_SCORE"
	EnvPositionalWeight = "CHESS_POSITIONAL_WEIGHT"
	EnvSeed             = "CHESS_SEED"
	EnvLogFile          = "CHESS_LOG_FILE"
	EnvLogPrefix        = "CHESS_LOG_PREFIX"
)

// ErrInvalidValue is wrapped by every parse or range failure.
var ErrInvalidValue = errors.New("config: invalid value")

type Config struct {
	Engine EngineConfig
	Log    LogConfig
}

type EngineConfig struct {
	Depth            int
	CheckmateScore   float64
	PositionalWeight float64
	Seed             int64 // 0 picks a time-based seed
}

type LogConfig struct {
	File   string // empty keeps stderr
	Prefix string
}

// Default returns the configuration used when no variable is set.
func Default() *Config {
	p := engine.DefaultParams()
	return &Config{
		Engine: EngineConfig{
			Depth:            p.Depth,
			CheckmateScore:   p.CheckmateScore,
			PositionalWeight: p.PositionalWeight,
		},
		Log: LogConfig{Prefix: "chess-ai: "},
	}
}

// Load reads the environment over the defaults. Unset or empty variables keep
// their default.
func Load() (*Config, error) {
	cfg := Default()
	var err error

	if cfg.Engine.Depth, err = intVar(EnvSearchDepth, cfg.Engine.Depth); err != nil {
		return nil, err
	}
	if cfg.Engine.Depth < 1 {
		return nil, fmt.Errorf("%w: %s must be at least 1, got %d", ErrInvalidValue, EnvSearchDepth, cfg.Engine.Depth)
	}
	if cfg.Engine.CheckmateScore, err = floatVar(EnvCheckmateScore, cfg.Engine.CheckmateScore); err != nil {
		return nil, err
	}
	if cfg.Engine.CheckmateScore <= 0 {
		return nil, fmt.Errorf("%w: %s must be positive, got %g", ErrInvalidValue, EnvCheckmateScore, cfg.Engine.CheckmateScore)
	}
	if cfg.Engine.PositionalWeight, err = floatVar(EnvPositionalWeight, cfg.Engine.PositionalWeight); err != nil {
		return nil, err
	}
	if cfg.Engine.PositionalWeight < 0 {
		return nil, fmt.Errorf("%w: %s must not be negative, got %g", ErrInvalidValue, EnvPositionalWeight, cfg.Engine.PositionalWeight)
	}
	seed, err := intVar(EnvSeed, 0)
	if err != nil {
		return nil, err
	}
	cfg.Engine.Seed = int64(seed)

	if v, ok := os.LookupEnv(EnvLogFile); ok {
		cfg.Log.File = v
	}
	if v, ok := os.LookupEnv(EnvLogPrefix); ok {
		cfg.Log.Prefix = v
	}
	return cfg, nil
}

// Params converts the engine section into search parameters.
func (c *Config) Params() engine.Params {
	return engine.Params{
		Depth:            c.Engine.Depth,
		CheckmateScore:   c.Engine.CheckmateScore,
		PositionalWeight: c.Engine.PositionalWeight,
	}
}

// NewSearcher builds a searcher from the engine section.
func (c *Config) NewSearcher() *engine.Searcher {
	return engine.NewSearcher(c.Params(), c.Engine.Seed)
}

// InitLog points the standard logger at the configured file. With no file it
// only sets the prefix. The returned closer releases the file.
func (c *Config) InitLog() (io.Closer, error) {
	if c.Log.File == "" {
		log.SetPrefix(c.Log.Prefix)
		return io.NopCloser(nil), nil
	}
	f, err := os.OpenFile(c.Log.File, os.O_RDWR|os.O_CREATE|os.O_APPEND, 0666)
	if err != nil {
		return nil, fmt.Errorf("config: open log file: %w", err)
	}
	lf := &logFile{File: f, prev: log.Writer()}
	log.SetOutput(f)
	log.SetPrefix(c.Log.Prefix)
	return lf, nil
}

// logFile hands the standard logger back to its previous writer on Close, so
// messages logged after the file is closed are not lost.
type logFile struct {
	*os.File
	prev io.Writer
}

func (l *logFile) Close() error {
	log.SetOutput(l.prev)
	return l.File.Close()
}

func intVar(name string, def int) (int, error) {
	s := os.Getenv(name)
	if s == "" {
		return def, nil
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("%w: %s=%q: %v", ErrInvalidValue, name, s, err)
	}
	return v, nil
}

func floatVar(name string, def float64) (float64, error) {
	s := os.Getenv(name)
	if s == "" {
		return def, nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %s=%q: %v", ErrInvalidValue, name, s, err)
	}
	return v, nil
}
