package engine

import "github.com/lgbarn/chessrules-go/internal/chess"

// State classifies the position for the side to move.
type State int

const (
	Idle State = iota
	Check
	CheckMate
	StaleMate
	InsufficientMaterial
)

// String returns the state name.
func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Check:
		return "check"
	case CheckMate:
		return "checkmate"
	case StaleMate:
		return "stalemate"
	case InsufficientMaterial:
		return "insufficient material"
	}
	return "unknown"
}

// IsTerminal returns true if no further moves may be played.
func (s State) IsTerminal() bool {
	return s == CheckMate || s == StaleMate || s == InsufficientMaterial
}

// computeState derives the state from board, turn and history.
func (g *Game) computeState() State {
	inCheck := g.KingIsInCheck(g.turn)
	if !g.hasLegalMove(g.turn) {
		if inCheck {
			return CheckMate
		}
		return StaleMate
	}
	if !g.IsSufficientMaterial(chess.White) && !g.IsSufficientMaterial(chess.Black) {
		return InsufficientMaterial
	}
	if inCheck {
		return Check
	}
	return Idle
}

// Result returns the PGN-style result string for the current state:
// "1-0" or "0-1" after checkmate, "1/2-1/2" after a draw and "*" while
// the game continues.
func (g *Game) Result() string {
	switch g.state {
	case CheckMate:
		if g.turn == chess.White {
			return "0-1"
		}
		return "1-0"
	case StaleMate, InsufficientMaterial:
		return "1/2-1/2"
	}
	return "*"
}
