package config

import (
	"fmt"

	"github.com/lgbarn/chessrules-go/internal/errors"
)

// SelfPlayConfig holds settings for batches of computer-only games.
type SelfPlayConfig struct {
	// Games is the number of games to play (0 = interactive mode).
	Games int

	// Workers is the number of games played at once (0 = one per CPU).
	Workers int
}

// NewSelfPlayConfig creates a SelfPlayConfig with self-play disabled.
func NewSelfPlayConfig() *SelfPlayConfig {
	return &SelfPlayConfig{}
}

// Enabled reports whether a self-play batch was requested.
func (s *SelfPlayConfig) Enabled() bool {
	return s.Games > 0
}

// Validate checks that the self-play configuration is valid.
func (s *SelfPlayConfig) Validate() error {
	if s.Games < 0 {
		return fmt.Errorf("game count (%d) is negative: %w", s.Games, errors.ErrInvalidConfig)
	}
	if s.Workers < 0 {
		return fmt.Errorf("worker count (%d) is negative: %w", s.Workers, errors.ErrInvalidConfig)
	}
	return nil
}
