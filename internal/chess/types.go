// Package chess provides core chess types and operations.
package chess

import (
	"fmt"

	"github.com/lgbarn/chessrules-go/internal/errors"
)

// Colour represents the colour of a piece or player.
type Colour int

const (
	White Colour = iota
	Black
)

// String returns the string representation of a colour.
func (c Colour) String() string {
	if c == White {
		return "White"
	}
	return "Black"
}

// Letter returns the single letter used for the colour in piece ids.
func (c Colour) Letter() byte {
	if c == White {
		return 'W'
	}
	return 'B'
}

// Opposite returns the opposite colour.
func (c Colour) Opposite() Colour {
	if c == White {
		return Black
	}
	return White
}

// PawnDirection returns the row delta of a forward pawn step:
// -1 for White (towards row 0), +1 for Black.
func (c Colour) PawnDirection() int {
	if c == White {
		return -1
	}
	return 1
}

// HomeRow returns the row holding the colour's king and rooks at the start.
func (c Colour) HomeRow() int {
	if c == White {
		return 7
	}
	return 0
}

// PawnRow returns the row the colour's pawns start on.
func (c Colour) PawnRow() int {
	if c == White {
		return 6
	}
	return 1
}

// LastRow returns the row on which the colour's pawns promote.
func (c Colour) LastRow() int {
	if c == White {
		return 0
	}
	return 7
}

// ParseColour converts "white"/"black" (or "w"/"b") to a Colour.
func ParseColour(s string) (Colour, error) {
	switch s {
	case "white", "White", "w", "W":
		return White, nil
	case "black", "Black", "b", "B":
		return Black, nil
	}
	return White, fmt.Errorf("unknown colour %q: %w", s, errors.ErrInvalidConfig)
}

// PieceType represents a chess piece type.
type PieceType int

const (
	NoPiece PieceType = iota
	Pawn
	Knight
	Bishop
	Rook
	Queen
	King
)

// String returns the string representation of a piece type.
func (p PieceType) String() string {
	names := []string{"None", "Pawn", "Knight", "Bishop", "Rook", "Queen", "King"}
	if p >= 0 && int(p) < len(names) {
		return names[p]
	}
	return "Unknown"
}

// Letter returns the single letter representation of a piece type (uppercase).
func (p PieceType) Letter() byte {
	letters := []byte{' ', 'P', 'N', 'B', 'R', 'Q', 'K'}
	if p >= 0 && int(p) < len(letters) {
		return letters[p]
	}
	return '?'
}

// Value returns the material value of the piece type.
// The king has no trade value since it is never captured.
func (p PieceType) Value() int {
	switch p {
	case Pawn:
		return 1
	case Knight, Bishop:
		return 3
	case Rook:
		return 5
	case Queen:
		return 9
	default:
		return 0
	}
}

// IsPromotionTarget reports whether a pawn may be promoted to p.
func (p PieceType) IsPromotionTarget() bool {
	switch p {
	case Knight, Bishop, Rook, Queen:
		return true
	default:
		return false
	}
}

// PieceTypeFromLetter converts a piece letter (either case) to a PieceType.
// It returns NoPiece for anything else.
func PieceTypeFromLetter(c byte) PieceType {
	switch c {
	case 'P', 'p':
		return Pawn
	case 'N', 'n':
		return Knight
	case 'B', 'b':
		return Bishop
	case 'R', 'r':
		return Rook
	case 'Q', 'q':
		return Queen
	case 'K', 'k':
		return King
	default:
		return NoPiece
	}
}

// Piece is a piece on the board. ID distinguishes otherwise identical
// pieces (for example the two starting rooks); Type changes only through
// promotion. The zero Piece means "no piece".
type Piece struct {
	ID     string
	Type   PieceType
	Colour Colour
}

// IsZero reports whether p is the empty piece.
func (p Piece) IsZero() bool {
	return p.Type == NoPiece
}

// String returns the piece id.
func (p Piece) String() string {
	return p.ID
}

// ParsePiece builds a piece from an id of the form colour letter, type
// letter, suffix, e.g. "WR7" or "BP3".
func ParsePiece(id string) (Piece, error) {
	if len(id) < 3 {
		return Piece{}, fmt.Errorf("piece id %q too short: %w", id, errors.ErrInvalidPiece)
	}
	var colour Colour
	switch id[0] {
	case 'W':
		colour = White
	case 'B':
		colour = Black
	default:
		return Piece{}, fmt.Errorf("piece id %q: bad colour %q: %w", id, id[0], errors.ErrInvalidPiece)
	}
	pt := PieceTypeFromLetter(id[1])
	if pt == NoPiece || id[1] < 'A' || id[1] > 'Z' {
		return Piece{}, fmt.Errorf("piece id %q: bad type %q: %w", id, id[1], errors.ErrInvalidPiece)
	}
	return Piece{ID: id, Type: pt, Colour: colour}, nil
}

// Constants for board dimensions.
const (
	BoardSize = 8

	FileBase = 'a'
	RankBase = '1'
)

// Position is a square on the board. X is the file (0 = a) and Y the row,
// where row 0 is rank 8 and row 7 is rank 1.
type Position struct {
	X, Y int
}

// Delta is the difference between two positions.
type Delta struct {
	X, Y int
}

// Sub returns the delta from q to p (p - q).
func (p Position) Sub(q Position) Delta {
	return Delta{X: p.X - q.X, Y: p.Y - q.Y}
}

// Add returns p moved by d.
func (p Position) Add(d Delta) Position {
	return Position{X: p.X + d.X, Y: p.Y + d.Y}
}

// InBounds reports whether p lies on the board.
func (p Position) InBounds() bool {
	return p.X >= 0 && p.X < BoardSize && p.Y >= 0 && p.Y < BoardSize
}

// String returns the algebraic name of the square, e.g. "e2".
func (p Position) String() string {
	if !p.InBounds() {
		return fmt.Sprintf("(%d,%d)", p.X, p.Y)
	}
	return string([]byte{byte(FileBase + p.X), byte(RankBase + BoardSize - 1 - p.Y)})
}

// ParsePosition parses an algebraic square name such as "e2".
func ParsePosition(s string) (Position, error) {
	if len(s) != 2 {
		return Position{}, &errors.ParseError{Err: errors.ErrInvalidSquare, Input: s, Expected: "file and rank"}
	}
	file, rank := s[0], s[1]
	if file >= 'A' && file <= 'H' {
		file += 'a' - 'A'
	}
	if file < 'a' || file > 'h' || rank < '1' || rank > '8' {
		return Position{}, &errors.ParseError{Err: errors.ErrInvalidSquare, Input: s, Got: "square off the board"}
	}
	return Position{X: int(file - FileBase), Y: BoardSize - 1 - int(rank-RankBase)}, nil
}

// MustParsePosition is like ParsePosition but panics on error.
// It is intended for constants and tests.
func MustParsePosition(s string) Position {
	p, err := ParsePosition(s)
	if err != nil {
		panic(err)
	}
	return p
}
