package engine

import "github.com/lgbarn/chessrules-go/internal/chess"

const (
	kingFile          = 4
	kingsideRookFile  = 7
	queensideRookFile = 0
	kingsideKingTo    = 6
	queensideKingTo   = 2
	kingsideRookTo    = 5
	queensideRookTo   = 3
)

// castlingRook returns the rook's starting and ending squares for a king
// moving from -> to, or false if the king move is not a castling shape.
func castlingRook(colour chess.Colour, from, to chess.Position) (rookFrom, rookTo chess.Position, ok bool) {
	row := colour.HomeRow()
	if from != (chess.Position{X: kingFile, Y: row}) || to.Y != row {
		return chess.Position{}, chess.Position{}, false
	}
	switch to.X {
	case kingsideKingTo:
		return chess.Position{X: kingsideRookFile, Y: row}, chess.Position{X: kingsideRookTo, Y: row}, true
	case queensideKingTo:
		return chess.Position{X: queensideRookFile, Y: row}, chess.Position{X: queensideRookTo, Y: row}, true
	}
	return chess.Position{}, chess.Position{}, false
}

// touched reports whether any move in the history started or ended on the
// square. A king or rook whose square was touched has lost its right to
// castle, including a rook that was captured where it stood.
func (g *Game) touched(at chess.Position) bool {
	for _, m := range g.history {
		if m.From == at || m.To == at {
			return true
		}
	}
	return false
}

// hasCastlingRight reports whether the king and the given rook of colour
// are unmoved and still on their home squares. It does not look at the
// squares between them or at attacks.
func (g *Game) hasCastlingRight(colour chess.Colour, rookFrom chess.Position) bool {
	kingAt := chess.Position{X: kingFile, Y: colour.HomeRow()}
	king, ok := g.board.Piece(kingAt)
	if !ok || king.Type != chess.King || king.Colour != colour {
		return false
	}
	rook, ok := g.board.Piece(rookFrom)
	if !ok || rook.Type != chess.Rook || rook.Colour != colour {
		return false
	}
	return !g.touched(kingAt) && !g.touched(rookFrom)
}

// CastlingRights reports which castling rights colour still holds.
func (g *Game) CastlingRights(colour chess.Colour) (kingside, queenside bool) {
	row := colour.HomeRow()
	kingside = g.hasCastlingRight(colour, chess.Position{X: kingsideRookFile, Y: row})
	queenside = g.hasCastlingRight(colour, chess.Position{X: queensideRookFile, Y: row})
	return kingside, queenside
}

// castlingPermitted reports whether the king of colour may castle from ->
// to: rights intact, the squares between king and rook empty, and none of
// the squares the king stands on or crosses under attack.
func (g *Game) castlingPermitted(colour chess.Colour, from, to chess.Position) bool {
	rookFrom, _, ok := castlingRook(colour, from, to)
	if !ok || !g.hasCastlingRight(colour, rookFrom) {
		return false
	}
	if g.board.PiecesExist(from, rookFrom) {
		return false
	}

	step := sign(to.X - from.X)
	enemy := colour.Opposite()
	for x := from.X; x != to.X+step; x += step {
		if g.PositionIsThreatened(chess.Position{X: x, Y: from.Y}, enemy) {
			return false
		}
	}
	return true
}
