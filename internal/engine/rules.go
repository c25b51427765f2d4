package engine

import (
	"github.com/lgbarn/chessrules-go/internal/chess"
)

// IsSufficientMaterial reports whether colour could still force mate by
// material alone: any pawn, rook or queen, or at least two minor pieces.
// A lone king, or king with a single bishop or knight, is insufficient.
func (g *Game) IsSufficientMaterial(colour chess.Colour) bool {
	minors := 0
	for _, placed := range g.board.AllPieces() {
		if placed.Piece.Colour != colour {
			continue
		}
		switch placed.Piece.Type {
		case chess.Pawn, chess.Rook, chess.Queen:
			return true
		case chess.Knight, chess.Bishop:
			minors++
		}
	}
	return minors >= 2
}

// Material returns the summed piece value of colour's pieces.
func (g *Game) Material(colour chess.Colour) int {
	return material(&g.board, colour)
}

func material(board *chess.Board, colour chess.Colour) int {
	total := 0
	for _, placed := range board.AllPieces() {
		if placed.Piece.Colour == colour {
			total += placed.Piece.Type.Value()
		}
	}
	return total
}

// HasMaterialOdds reports whether the game started from a position whose
// material differs from the standard starting material.
func (g *Game) HasMaterialOdds() bool {
	return !isStandardMaterial(&g.initial)
}

// isStandardMaterial checks if the board has standard starting material.
func isStandardMaterial(board *chess.Board) bool {
	expected := map[chess.PieceType]int{
		chess.Pawn:   8,
		chess.Rook:   2,
		chess.Knight: 2,
		chess.Bishop: 2,
		chess.Queen:  1,
		chess.King:   1,
	}

	actual := make(map[chess.Colour]map[chess.PieceType]int)
	for _, c := range []chess.Colour{chess.White, chess.Black} {
		actual[c] = make(map[chess.PieceType]int)
	}
	for _, placed := range board.AllPieces() {
		actual[placed.Piece.Colour][placed.Piece.Type]++
	}

	for _, counts := range actual {
		for pt, want := range expected {
			if counts[pt] != want {
				return false
			}
		}
	}
	return true
}
