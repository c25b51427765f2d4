package chess

import "fmt"

// Board is an 8x8 grid of optional pieces, indexed [row][file] where row 0
// is rank 8. It is a plain value: assigning a Board copies every square.
// Board knows nothing about chess rules beyond occupancy and geometry.
type Board struct {
	squares [BoardSize][BoardSize]Piece
}

// startingRows is the standard starting layout as piece ids.
var startingRows = [BoardSize][BoardSize]string{
	{"BR0", "BN1", "BB2", "BQ3", "BK4", "BB5", "BN6", "BR7"},
	{"BP0", "BP1", "BP2", "BP3", "BP4", "BP5", "BP6", "BP7"},
	{},
	{},
	{},
	{},
	{"WP0", "WP1", "WP2", "WP3", "WP4", "WP5", "WP6", "WP7"},
	{"WR0", "WN1", "WB2", "WQ3", "WK4", "WB5", "WN6", "WR7"},
}

// NewBoard creates a board with the standard starting position.
func NewBoard() Board {
	b, err := NewBoardFromRows(startingRows)
	if err != nil {
		panic(err)
	}
	return b
}

// NewEmptyBoard creates a board with no pieces.
func NewEmptyBoard() Board {
	return Board{}
}

// NewBoardFromRows builds a board from piece ids laid out row by row,
// row 0 being rank 8. An empty string is an empty square.
func NewBoardFromRows(rows [BoardSize][BoardSize]string) (Board, error) {
	var b Board
	for y, row := range rows {
		for x, id := range row {
			if id == "" {
				continue
			}
			piece, err := ParsePiece(id)
			if err != nil {
				return Board{}, fmt.Errorf("square %s: %w", Position{X: x, Y: y}, err)
			}
			b.squares[y][x] = piece
		}
	}
	return b, nil
}

// Piece returns the piece at the given position. Off-board positions are
// reported as empty rather than as an error.
func (b *Board) Piece(at Position) (Piece, bool) {
	if !at.InBounds() {
		return Piece{}, false
	}
	p := b.squares[at.Y][at.X]
	return p, !p.IsZero()
}

// IsEmpty reports whether no piece stands at the position.
func (b *Board) IsEmpty(at Position) bool {
	_, ok := b.Piece(at)
	return !ok
}

// SetPiece places a piece at the given position, replacing any occupant.
func (b *Board) SetPiece(at Position, piece Piece) {
	b.squares[at.Y][at.X] = piece
}

// MovePiece relocates whatever occupies from to to, clearing from.
// No legality check is made.
func (b *Board) MovePiece(from, to Position) {
	piece := b.squares[from.Y][from.X]
	b.squares[from.Y][from.X] = Piece{}
	b.squares[to.Y][to.X] = piece
}

// RemovePiece clears the given position.
func (b *Board) RemovePiece(at Position) {
	b.squares[at.Y][at.X] = Piece{}
}

// PromotePiece changes the type of the piece at the position, keeping its
// id and colour. Empty squares are left untouched.
func (b *Board) PromotePiece(at Position, to PieceType) {
	if b.squares[at.Y][at.X].IsZero() {
		return
	}
	b.squares[at.Y][at.X].Type = to
}

// PiecesExist reports whether any square strictly between the two
// positions is occupied. The positions must share a rank, a file or a
// diagonal.
func (b *Board) PiecesExist(between, and Position) bool {
	step := Delta{X: sign(and.X - between.X), Y: sign(and.Y - between.Y)}
	for pos := between.Add(step); pos != and; pos = pos.Add(step) {
		if !pos.InBounds() {
			return false
		}
		if !b.squares[pos.Y][pos.X].IsZero() {
			return true
		}
	}
	return false
}

// PlacedPiece pairs a piece with its position.
type PlacedPiece struct {
	Position Position
	Piece    Piece
}

// AllPositions returns every square in rank-major, file-minor order.
func AllPositions() []Position {
	positions := make([]Position, 0, BoardSize*BoardSize)
	for y := 0; y < BoardSize; y++ {
		for x := 0; x < BoardSize; x++ {
			positions = append(positions, Position{X: x, Y: y})
		}
	}
	return positions
}

// AllPieces returns the occupied squares in rank-major, file-minor order.
func (b *Board) AllPieces() []PlacedPiece {
	var pieces []PlacedPiece
	for y := 0; y < BoardSize; y++ {
		for x := 0; x < BoardSize; x++ {
			if p := b.squares[y][x]; !p.IsZero() {
				pieces = append(pieces, PlacedPiece{Position: Position{X: x, Y: y}, Piece: p})
			}
		}
	}
	return pieces
}

// FirstPosition returns the first position, in rank-major order, whose
// piece satisfies match.
func (b *Board) FirstPosition(match func(Piece) bool) (Position, bool) {
	for y := 0; y < BoardSize; y++ {
		for x := 0; x < BoardSize; x++ {
			if p := b.squares[y][x]; !p.IsZero() && match(p) {
				return Position{X: x, Y: y}, true
			}
		}
	}
	return Position{}, false
}

// sign returns the sign of x: -1, 0, or 1.
func sign(x int) int {
	if x > 0 {
		return 1
	}
	if x < 0 {
		return -1
	}
	return 0
}

// PieceID returns the id for a piece of the given colour and type placed
// on a square. A piece standing where the standard layout puts that same
// piece keeps its starting id ("WR7"); any other piece is named after its
// square ("WQd4"), so ids stay unique on any board.
func PieceID(colour Colour, pt PieceType, at Position) string {
	if at.InBounds() {
		if id := startingRows[at.Y][at.X]; id != "" {
			if p, err := ParsePiece(id); err == nil && p.Colour == colour && p.Type == pt {
				return id
			}
		}
	}
	return fmt.Sprintf("%c%c%s", colour.Letter(), pt.Letter(), at)
}
