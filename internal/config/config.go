// Package config provides configuration for the chess command.
package config

import (
	"fmt"
	"io"
	"os"

	"github.com/lgbarn/chessrules-go/internal/errors"
)

// Config holds all program configuration.
type Config struct {
	Verbosity int // 0=nothing, 1=game summaries, 2=running commentary

	Players  *PlayersConfig
	Engine   *EngineConfig
	Output   *OutputConfig
	Storage  *StorageConfig
	SelfPlay *SelfPlayConfig

	// Streams
	InputFile  io.Reader
	OutputFile io.Writer
	LogFile    io.Writer
}

// StorageConfig holds settings for saved games.
type StorageConfig struct {
	// SavePath is where the save command writes when given no file name.
	SavePath string

	// LoadPath, when set, is a snapshot to resume instead of a new game.
	LoadPath string
}

// NewConfig creates a new Config with default values.
func NewConfig() *Config {
	return &Config{
		Verbosity:  1,
		Players:    NewPlayersConfig(),
		Engine:     NewEngineConfig(),
		Output:     NewOutputConfig(),
		Storage:    &StorageConfig{SavePath: "chess-save.json"},
		SelfPlay:   NewSelfPlayConfig(),
		InputFile:  os.Stdin,
		OutputFile: os.Stdout,
		LogFile:    os.Stderr,
	}
}

// SetOutput sets the output stream.
func (c *Config) SetOutput(w io.Writer) {
	c.OutputFile = w
}

// Logf writes a diagnostic line to the log stream when the verbosity is
// at least level.
func (c *Config) Logf(level int, format string, args ...interface{}) {
	if c.LogFile == nil || c.Verbosity < level {
		return
	}
	fmt.Fprintf(c.LogFile, format+"\n", args...)
}

// Validate checks every section of the configuration.
func (c *Config) Validate() error {
	if c.Verbosity < 0 {
		return fmt.Errorf("verbosity %d is negative: %w", c.Verbosity, errors.ErrInvalidConfig)
	}
	if err := c.Engine.Validate(); err != nil {
		return err
	}
	if err := c.Output.Validate(); err != nil {
		return err
	}
	if err := c.SelfPlay.Validate(); err != nil {
		return err
	}
	if c.Storage.SavePath == "" {
		return fmt.Errorf("empty save path: %w", errors.ErrInvalidConfig)
	}
	return nil
}
