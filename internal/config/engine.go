package config

import (
	"fmt"

	"github.com/lgbarn/chessrules-go/internal/errors"
)

// EngineConfig holds settings for computer play and game cut-offs.
type EngineConfig struct {
	// Seed seeds the move selector. Self-play game i uses Seed+i.
	Seed int64

	// MaxPlies ends a game as a draw once reached (0 = no limit).
	MaxPlies int

	// RepetitionLimit ends a game as a draw when one position has
	// occurred this many times (0 = never).
	RepetitionLimit int

	// StartFEN, when set, is the starting position instead of the
	// standard one.
	StartFEN string
}

// NewEngineConfig creates an EngineConfig with default values.
func NewEngineConfig() *EngineConfig {
	return &EngineConfig{
		Seed:            1,
		MaxPlies:        400,
		RepetitionLimit: 3,
	}
}

// Validate checks that the engine configuration is valid.
func (e *EngineConfig) Validate() error {
	if e.MaxPlies < 0 {
		return fmt.Errorf("max plies (%d) is negative: %w", e.MaxPlies, errors.ErrInvalidConfig)
	}
	if e.RepetitionLimit < 0 || e.RepetitionLimit == 1 {
		return fmt.Errorf("repetition limit (%d) must be 0 or at least 2: %w",
			e.RepetitionLimit, errors.ErrInvalidConfig)
	}
	return nil
}
