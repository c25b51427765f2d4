package config

import (
	"fmt"

	"github.com/lgbarn/chessrules-go/internal/errors"
)

// Themes lists the board themes the renderer knows.
var Themes = []string{"classic", "green", "mono"}

// OutputConfig holds settings related to output formatting.
type OutputConfig struct {
	// Theme names the board colour scheme.
	Theme string

	// JSONFormat prints game summaries as JSON instead of text
	JSONFormat bool

	// Coordinates labels files and ranks around the board
	Coordinates bool

	// ShowFEN prints the FEN after every move
	ShowFEN bool

	// NoColor draws the board without colour even on a terminal
	NoColor bool
}

// NewOutputConfig creates an OutputConfig with default values.
func NewOutputConfig() *OutputConfig {
	return &OutputConfig{
		Theme:       "classic",
		Coordinates: true,
	}
}

// Validate checks that the theme is known.
func (o *OutputConfig) Validate() error {
	for _, theme := range Themes {
		if o.Theme == theme {
			return nil
		}
	}
	return fmt.Errorf("unknown theme %q: %w", o.Theme, errors.ErrInvalidConfig)
}
