package config

import (
	"fmt"
	"strings"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/errors"
)

// PlayerKind says who chooses the moves for one side.
type PlayerKind int

const (
	Human PlayerKind = iota
	Computer
)

func (k PlayerKind) String() string {
	if k == Computer {
		return "computer"
	}
	return "human"
}

// ParsePlayerKind parses "human" or "computer" (or their first letter).
func ParsePlayerKind(s string) (PlayerKind, error) {
	switch strings.ToLower(s) {
	case "human", "h":
		return Human, nil
	case "computer", "c", "ai":
		return Computer, nil
	}
	return Human, fmt.Errorf("unknown player %q: %w", s, errors.ErrInvalidConfig)
}

// PlayersConfig holds who plays each side.
type PlayersConfig struct {
	White PlayerKind
	Black PlayerKind
}

// NewPlayersConfig creates a PlayersConfig with a human playing white
// against the computer.
func NewPlayersConfig() *PlayersConfig {
	return &PlayersConfig{White: Human, Black: Computer}
}

// Kind returns who plays colour.
func (p *PlayersConfig) Kind(colour chess.Colour) PlayerKind {
	if colour == chess.White {
		return p.White
	}
	return p.Black
}

// IsHuman reports whether colour is played by a human.
func (p *PlayersConfig) IsHuman(colour chess.Colour) bool {
	return p.Kind(colour) == Human
}
