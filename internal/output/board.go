package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/engine"
	"github.com/lgbarn/chessrules-go/internal/errors"
)

// Theme is a board colour scheme. A theme without colours draws plain
// text and marks highlighted squares with brackets.
type Theme struct {
	Name      string
	light     *color.Color
	dark      *color.Color
	highlight *color.Color
}

// themes builds a fresh set of colours per call so callers may toggle
// colour output on their copy without affecting others.
var themes = map[string]func() Theme{
	"classic": func() Theme {
		return Theme{
			Name:      "classic",
			light:     color.New(color.BgWhite, color.FgBlack),
			dark:      color.New(color.BgHiBlack, color.FgHiWhite),
			highlight: color.New(color.BgYellow, color.FgBlack),
		}
	},
	"green": func() Theme {
		return Theme{
			Name:      "green",
			light:     color.New(color.BgHiGreen, color.FgBlack),
			dark:      color.New(color.BgGreen, color.FgBlack),
			highlight: color.New(color.BgRed, color.FgHiWhite),
		}
	},
	"mono": func() Theme {
		return Theme{Name: "mono"}
	},
}

// ThemeByName returns the named theme.
func ThemeByName(name string) (Theme, error) {
	build, ok := themes[name]
	if !ok {
		return Theme{}, fmt.Errorf("unknown theme %q: %w", name, errors.ErrInvalidConfig)
	}
	return build(), nil
}

// WithColor forces colour output on or off regardless of the terminal.
func (t Theme) WithColor(enabled bool) Theme {
	for _, c := range []*color.Color{t.light, t.dark, t.highlight} {
		if c == nil {
			continue
		}
		if enabled {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	return t
}

// colored reports whether the theme has colours at all.
func (t Theme) colored() bool {
	return t.light != nil
}

// RenderOptions controls board drawing.
type RenderOptions struct {
	Theme       Theme
	Coordinates bool                    // rank and file labels
	Flip        bool                    // draw from black's side
	Highlights  map[chess.Position]bool // squares drawn in the highlight colour
}

// RenderBoard draws board to w, rank 8 at the top unless flipped.
func RenderBoard(w io.Writer, board *chess.Board, opts RenderOptions) error {
	var sb strings.Builder
	for r := 0; r < chess.BoardSize; r++ {
		y := r
		if opts.Flip {
			y = chess.BoardSize - 1 - r
		}
		if opts.Coordinates {
			fmt.Fprintf(&sb, "%c ", chess.RankBase+chess.BoardSize-1-y)
		}
		for f := 0; f < chess.BoardSize; f++ {
			x := f
			if opts.Flip {
				x = chess.BoardSize - 1 - f
			}
			at := chess.Position{X: x, Y: y}
			sb.WriteString(renderSquare(board, at, opts))
		}
		sb.WriteByte('\n')
	}
	if opts.Coordinates {
		sb.WriteString("  ")
		for f := 0; f < chess.BoardSize; f++ {
			x := f
			if opts.Flip {
				x = chess.BoardSize - 1 - f
			}
			fmt.Fprintf(&sb, " %c ", chess.FileBase+x)
		}
		sb.WriteByte('\n')
	}
	_, err := io.WriteString(w, sb.String())
	return err
}

func renderSquare(board *chess.Board, at chess.Position, opts RenderOptions) string {
	glyph := byte('.')
	if piece, ok := board.Piece(at); ok {
		glyph = engine.FENLetter(piece)
	}
	highlighted := opts.Highlights[at]

	if !opts.Theme.colored() {
		if highlighted {
			return fmt.Sprintf("[%c]", glyph)
		}
		return fmt.Sprintf(" %c ", glyph)
	}
	if glyph == '.' {
		glyph = ' '
	}
	c := opts.Theme.dark
	switch {
	case highlighted:
		c = opts.Theme.highlight
	case (at.X+at.Y)%2 == 0:
		c = opts.Theme.light
	}
	return c.Sprintf(" %c ", glyph)
}

// RenderGame draws the game's board with the last move highlighted.
func RenderGame(w io.Writer, g *engine.Game, opts RenderOptions) error {
	if last, ok := g.LastMove(); ok {
		opts.Highlights = map[chess.Position]bool{last.From: true, last.To: true}
	}
	board := g.Board()
	return RenderBoard(w, &board, opts)
}
