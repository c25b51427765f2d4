package testutil

import (
	"fmt"
	"strings"
	"testing"
	"unicode"

	"github.com/lgbarn/chessrules-go/internal/chess"
)

// ParseBoard builds a board from a diagram of eight rows, rank 8 first.
// Each row holds eight characters: a FEN piece letter (uppercase White,
// lowercase Black) or '.' for an empty square. Spaces are ignored, so
// rows may be written "r . . . k . . r".
//
// Pieces get the id they would have in the standard layout when standing
// on their starting square, otherwise an id naming their square.
func ParseBoard(rows ...string) (chess.Board, error) {
	board := chess.NewEmptyBoard()
	if len(rows) != chess.BoardSize {
		return board, fmt.Errorf("board diagram has %d rows, want %d", len(rows), chess.BoardSize)
	}
	for y, row := range rows {
		row = strings.ReplaceAll(row, " ", "")
		if len(row) != chess.BoardSize {
			return board, fmt.Errorf("row %d %q has %d squares, want %d", y, row, len(row), chess.BoardSize)
		}
		for x := 0; x < chess.BoardSize; x++ {
			c := row[x]
			if c == '.' {
				continue
			}
			pt := chess.PieceTypeFromLetter(c)
			if pt == chess.NoPiece {
				return board, fmt.Errorf("row %d: unknown piece %q", y, c)
			}
			colour := chess.White
			if unicode.IsLower(rune(c)) {
				colour = chess.Black
			}
			at := chess.Position{X: x, Y: y}
			board.SetPiece(at, chess.Piece{ID: chess.PieceID(colour, pt, at), Type: pt, Colour: colour})
		}
	}
	return board, nil
}

// MustBoard is ParseBoard calling t.Fatal on a malformed diagram.
func MustBoard(t *testing.T, rows ...string) chess.Board {
	t.Helper()
	board, err := ParseBoard(rows...)
	if err != nil {
		t.Fatalf("bad board diagram: %v", err)
	}
	return board
}

// Pos parses a square name such as "e4", calling t.Fatal on failure.
func Pos(t *testing.T, square string) chess.Position {
	t.Helper()
	pos, err := chess.ParsePosition(square)
	if err != nil {
		t.Fatalf("bad square %q: %v", square, err)
	}
	return pos
}

// MustMove parses a long algebraic move such as "e2e4" or "e7e8q",
// calling t.Fatal on failure.
func MustMove(t *testing.T, text string) chess.Move {
	t.Helper()
	m, err := chess.ParseMove(text)
	if err != nil {
		t.Fatalf("bad move %q: %v", text, err)
	}
	return m
}

// MustMoves parses a space separated list of long algebraic moves.
func MustMoves(t *testing.T, text string) []chess.Move {
	t.Helper()
	var moves []chess.Move
	for _, field := range strings.Fields(text) {
		moves = append(moves, MustMove(t, field))
	}
	return moves
}
