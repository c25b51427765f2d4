package engine

import "github.com/lgbarn/chessrules-go/internal/chess"

// KingPosition finds the king of the given colour on the board.
func (g *Game) KingPosition(colour chess.Colour) (chess.Position, bool) {
	return g.board.FirstPosition(func(p chess.Piece) bool {
		return p.Type == chess.King && p.Colour == colour
	})
}

// KingIsInCheck returns true if the given colour's king is threatened.
// A side without a king is never in check.
func (g *Game) KingIsInCheck(colour chess.Colour) bool {
	at, ok := g.KingPosition(colour)
	if !ok {
		return false
	}
	return g.PieceIsThreatened(at)
}

// PieceIsThreatened reports whether any piece on the board can move to
// the given position. Only enemy pieces qualify since CanMove never
// allows capturing a piece of one's own colour.
func (g *Game) PieceIsThreatened(at chess.Position) bool {
	for _, placed := range g.board.AllPieces() {
		if g.CanMove(placed.Position, at) {
			return true
		}
	}
	return false
}

// PositionIsThreatened reports whether a piece of colour by attacks the
// square, which may be empty. Pawns attack diagonally whether or not
// anything stands there.
func (g *Game) PositionIsThreatened(at chess.Position, by chess.Colour) bool {
	for _, placed := range g.board.AllPieces() {
		if placed.Piece.Colour != by {
			continue
		}
		if placed.Piece.Type == chess.Pawn {
			if pawnCanTake(by, at.Sub(placed.Position)) {
				return true
			}
			continue
		}
		if g.CanMove(placed.Position, at) {
			return true
		}
	}
	return false
}

// Threats returns colour's pieces that are currently threatened.
func (g *Game) Threats(colour chess.Colour) []chess.PlacedPiece {
	var threatened []chess.PlacedPiece
	for _, placed := range g.board.AllPieces() {
		if placed.Piece.Colour == colour && g.PieceIsThreatened(placed.Position) {
			threatened = append(threatened, placed)
		}
	}
	return threatened
}

// leavesKingInCheck simulates from -> to, including any en passant capture
// or castling rook move, and reports whether the mover's king is then
// threatened.
func (g *Game) leavesKingInCheck(from, to chess.Position) bool {
	piece, ok := g.board.Piece(from)
	if !ok {
		return false
	}
	scratch := Game{board: g.board, turn: g.turn, history: g.history}
	scratch.applyEffects(piece, from, to)
	return scratch.KingIsInCheck(piece.Colour)
}
