package engine

import "github.com/lgbarn/chessrules-go/internal/chess"

// CanMove reports whether the piece at from may move to to, considering
// geometry, obstruction, captures, en passant and castling. It does not
// consider whose turn it is or whether the move leaves the mover's own
// king in check; see IsLegal for that.
func (g *Game) CanMove(from, to chess.Position) bool {
	if !to.InBounds() || to == from {
		return false
	}
	piece, ok := g.board.Piece(from)
	if !ok {
		return false
	}

	delta := to.Sub(from)
	if target, ok := g.board.Piece(to); ok {
		if target.Colour == piece.Colour {
			return false
		}
		if piece.Type == chess.Pawn {
			return pawnCanTake(piece.Colour, delta)
		}
	}

	return g.canPieceMove(piece, from, to, delta)
}

// canPieceMove applies the movement pattern of the piece type. The target
// square is known to be empty or hold an enemy piece.
func (g *Game) canPieceMove(piece chess.Piece, from, to chess.Position, delta chess.Delta) bool {
	dx, dy := abs(delta.X), abs(delta.Y)

	switch piece.Type {
	case chess.Knight:
		return (dx == 1 && dy == 2) || (dx == 2 && dy == 1)

	case chess.Bishop:
		return dx == dy && !g.board.PiecesExist(from, to)

	case chess.Rook:
		return (dx == 0 || dy == 0) && !g.board.PiecesExist(from, to)

	case chess.Queen:
		return (dx == dy || dx == 0 || dy == 0) && !g.board.PiecesExist(from, to)

	case chess.King:
		if dx <= 1 && dy <= 1 {
			return true
		}
		return g.castlingPermitted(piece.Colour, from, to)

	case chess.Pawn:
		if g.enPassantPermitted(piece.Colour, from, to) {
			return true
		}
		return g.pawnCanAdvance(piece.Colour, from, to, delta)
	}

	return false
}
