package engine

import "github.com/lgbarn/chessrules-go/internal/chess"

// IsLegal reports whether the piece at from may move to to without leaving
// its own king threatened. Whose turn it is is not considered.
func (g *Game) IsLegal(from, to chess.Position) bool {
	return g.CanMove(from, to) && !g.leavesKingInCheck(from, to)
}

// Moves returns every pseudo-legal move for colour, in board order of the
// moving piece then of the destination.
func (g *Game) Moves(colour chess.Colour) []chess.Move {
	var moves []chess.Move
	for _, placed := range g.board.AllPieces() {
		if placed.Piece.Colour != colour {
			continue
		}
		for _, to := range chess.AllPositions() {
			if g.CanMove(placed.Position, to) {
				moves = append(moves, chess.Move{From: placed.Position, To: to})
			}
		}
	}
	return moves
}

// LegalMoves returns the moves for colour that do not leave its king
// threatened.
func (g *Game) LegalMoves(colour chess.Colour) []chess.Move {
	var legal []chess.Move
	for _, m := range g.Moves(colour) {
		if !g.leavesKingInCheck(m.From, m.To) {
			legal = append(legal, m)
		}
	}
	return legal
}

// MovesForPiece returns the legal destinations of the piece at the
// position. An empty square yields nil.
func (g *Game) MovesForPiece(at chess.Position) []chess.Position {
	if g.board.IsEmpty(at) {
		return nil
	}
	var targets []chess.Position
	for _, to := range chess.AllPositions() {
		if g.IsLegal(at, to) {
			targets = append(targets, to)
		}
	}
	return targets
}

// hasLegalMove returns true if colour has at least one legal move.
func (g *Game) hasLegalMove(colour chess.Colour) bool {
	for _, placed := range g.board.AllPieces() {
		if placed.Piece.Colour != colour {
			continue
		}
		for _, to := range chess.AllPositions() {
			if g.IsLegal(placed.Position, to) {
				return true
			}
		}
	}
	return false
}
