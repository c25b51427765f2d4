package engine

import "github.com/lgbarn/chessrules-go/internal/chess"

// pawnCanTake reports whether delta is a diagonal capture step for a pawn
// of the given colour.
func pawnCanTake(colour chess.Colour, delta chess.Delta) bool {
	return abs(delta.X) == 1 && delta.Y == colour.PawnDirection()
}

// pawnCanAdvance checks a non-capturing pawn move: one step forward, or two
// from the pawn's starting row with both squares empty.
func (g *Game) pawnCanAdvance(colour chess.Colour, from, to chess.Position, delta chess.Delta) bool {
	if delta.X != 0 || !g.board.IsEmpty(to) {
		return false
	}
	dir := colour.PawnDirection()
	switch delta.Y {
	case dir:
		return true
	case 2 * dir:
		return from.Y == colour.PawnRow() && !g.board.PiecesExist(from, to)
	}
	return false
}

// enPassantPermitted reports whether a pawn moving from -> to captures en
// passant: the target is empty and the previous move was an enemy pawn
// stepping two squares past it on the same file.
func (g *Game) enPassantPermitted(colour chess.Colour, from, to chess.Position) bool {
	if !g.board.IsEmpty(to) || !pawnCanTake(colour, to.Sub(from)) {
		return false
	}
	if len(g.history) == 0 {
		return false
	}
	last := g.history[len(g.history)-1]
	if last.To.X != to.X {
		return false
	}
	victim, ok := g.board.Piece(last.To)
	if !ok || victim.Type != chess.Pawn || victim.Colour == colour {
		return false
	}
	dir := victim.Colour.PawnDirection()
	return last.From.Y == to.Y-dir && last.To.Y == to.Y+dir
}

// enPassantVictim returns the square of the pawn captured en passant by a
// move from -> to.
func enPassantVictim(from, to chess.Position) chess.Position {
	return chess.Position{X: to.X, Y: from.Y}
}

// CanPromotePiece reports whether the piece at the position is a pawn
// standing on its colour's last row.
func (g *Game) CanPromotePiece(at chess.Position) bool {
	piece, ok := g.board.Piece(at)
	return ok && piece.Type == chess.Pawn && at.Y == piece.Colour.LastRow()
}

// EnPassantTarget returns the square a pawn skipped with a double step on
// the last move.
func (g *Game) EnPassantTarget() (chess.Position, bool) {
	last, ok := g.LastMove()
	if !ok {
		return chess.Position{}, false
	}
	piece, _ := g.board.Piece(last.To)
	if piece.Type != chess.Pawn || last.From.X != last.To.X || abs(last.To.Y-last.From.Y) != 2 {
		return chess.Position{}, false
	}
	return chess.Position{X: last.To.X, Y: (last.From.Y + last.To.Y) / 2}, true
}
