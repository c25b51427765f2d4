// Package engine provides chess move validation and game state tracking.
//
// A Game owns its board, turn and move history. Legality, check and the
// terminal states are all derived from those three; nothing else is kept,
// so a game can always be rebuilt by replaying its history over its
// initial position.
//
// Game is single-threaded. Use Clone to simulate moves without touching
// the original.
package engine

import (
	"github.com/lgbarn/chessrules-go/internal/chess"
)

// Game is a chess game in progress.
type Game struct {
	initial     chess.Board
	initialTurn chess.Colour

	board   chess.Board
	turn    chess.Colour
	history []chess.Move
	state   State
}

// NewGame creates a game at the standard starting position, White to move.
func NewGame() *Game {
	return NewGameFromBoard(chess.NewBoard(), chess.White)
}

// NewGameFromBoard creates a game starting from an arbitrary board with
// the given side to move and an empty history.
func NewGameFromBoard(board chess.Board, turn chess.Colour) *Game {
	g := &Game{
		initial:     board,
		initialTurn: turn,
		board:       board,
		turn:        turn,
	}
	g.state = g.computeState()
	return g
}

// Restore rebuilds a game by replaying history over an initial position.
// Each entry must be a legal move for the side to move at its point in
// the game, no move may follow a finished game, and any recorded
// promotion must be a valid one.
func Restore(initial chess.Board, turn chess.Colour, history []chess.Move) (*Game, error) {
	g := &Game{
		initial:     initial,
		initialTurn: turn,
		board:       initial,
		turn:        turn,
	}
	if err := g.replay(history, true); err != nil {
		return nil, err
	}
	return g, nil
}

// Board returns a copy of the current board.
func (g *Game) Board() chess.Board {
	return g.board
}

// InitialBoard returns a copy of the board the game started from.
func (g *Game) InitialBoard() chess.Board {
	return g.initial
}

// InitialTurn returns the side that moved first.
func (g *Game) InitialTurn() chess.Colour {
	return g.initialTurn
}

// PieceAt returns the piece at the given position, if any.
func (g *Game) PieceAt(at chess.Position) (chess.Piece, bool) {
	return g.board.Piece(at)
}

// Turn returns the side to move.
func (g *Game) Turn() chess.Colour {
	return g.turn
}

// State returns the state of the game for the side to move.
func (g *Game) State() State {
	return g.state
}

// History returns a copy of the moves applied so far.
func (g *Game) History() []chess.Move {
	history := make([]chess.Move, len(g.history))
	copy(history, g.history)
	return history
}

// Ply returns the number of moves applied so far.
func (g *Game) Ply() int {
	return len(g.history)
}

// LastMove returns the most recent move, if any.
func (g *Game) LastMove() (chess.Move, bool) {
	if len(g.history) == 0 {
		return chess.Move{}, false
	}
	return g.history[len(g.history)-1], true
}

// Clone returns an independent copy of the game. Moves applied to the
// clone never affect g.
func (g *Game) Clone() *Game {
	clone := *g
	clone.history = g.History()
	return &clone
}

// CanSelectPiece reports whether the piece at the position belongs to the
// side to move.
func (g *Game) CanSelectPiece(at chess.Position) bool {
	piece, ok := g.board.Piece(at)
	return ok && piece.Colour == g.turn
}
