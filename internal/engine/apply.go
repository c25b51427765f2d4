package engine

import (
	"fmt"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/errors"
)

// Move moves the piece at from to to, capturing en passant or moving the
// castling rook where that applies, then hands the turn over and
// recomputes the state.
//
// The caller must check CanMove first and must not move once the game has
// reached a terminal state; Move panics if the move is not possible. A
// pawn reaching its last row is not promoted here: see PromotePiece.
func (g *Game) Move(from, to chess.Position) {
	if !g.CanMove(from, to) {
		panic(fmt.Sprintf("engine: Move(%s, %s) is not a possible move", from, to))
	}
	g.applyMove(chess.Move{From: from, To: to})
	g.state = g.computeState()
}

// applyMove applies the board effects of m, flips the turn and appends m
// to the history. The move must already have been validated.
func (g *Game) applyMove(m chess.Move) {
	piece, _ := g.board.Piece(m.From)
	g.applyEffects(piece, m.From, m.To)
	g.turn = g.turn.Opposite()
	g.history = append(g.history, chess.Move{From: m.From, To: m.To})
}

// applyEffects changes only the board: the en passant victim or castling
// rook first, then the moving piece itself.
func (g *Game) applyEffects(piece chess.Piece, from, to chess.Position) {
	switch piece.Type {
	case chess.Pawn:
		if g.enPassantPermitted(piece.Colour, from, to) {
			g.board.RemovePiece(enPassantVictim(from, to))
		}
	case chess.King:
		if abs(to.X-from.X) == 2 {
			if rookFrom, rookTo, ok := castlingRook(piece.Colour, from, to); ok {
				g.board.MovePiece(rookFrom, rookTo)
			}
		}
	}
	g.board.MovePiece(from, to)
}

// PromotePiece turns the pawn at the position into a piece of the given
// type and recomputes the state. The choice is recorded on the history
// entry that brought the pawn there so undo and replay reproduce it.
//
// PromotePiece panics unless CanPromotePiece(at) holds and the type is a
// knight, bishop, rook or queen.
func (g *Game) PromotePiece(at chess.Position, to chess.PieceType) {
	if !g.CanPromotePiece(at) || !to.IsPromotionTarget() {
		panic(fmt.Sprintf("engine: PromotePiece(%s, %s) is not a possible promotion", at, to))
	}
	g.board.PromotePiece(at, to)
	g.recordPromotion(at, to)
	g.state = g.computeState()
}

// recordPromotion stores the promotion on the most recent history entry
// that arrived at the square. A pawn that has stood there since the start
// is promoted on the initial board instead.
func (g *Game) recordPromotion(at chess.Position, to chess.PieceType) {
	for i := len(g.history) - 1; i >= 0; i-- {
		if g.history[i].To == at {
			g.history[i].Promotion = to
			return
		}
	}
	g.initial.PromotePiece(at, to)
}

// PendingPromotion returns the square of a pawn that has reached its last
// row with the most recent move and is waiting to be promoted.
func (g *Game) PendingPromotion() (chess.Position, bool) {
	last, ok := g.LastMove()
	if !ok || last.IsPromotion() || !g.CanPromotePiece(last.To) {
		return chess.Position{}, false
	}
	return last.To, true
}

// Undo reverts the most recent move by replaying the rest of the history
// from the initial board. Promotions recorded along the way are replayed
// too. Undo panics if there is nothing to undo.
func (g *Game) Undo() {
	if len(g.history) == 0 {
		panic("engine: Undo with empty history")
	}
	history := g.history[:len(g.history)-1]
	// replay without validation cannot fail: every entry was applied before.
	_ = g.replay(history, false)
}

// replay resets the game to its initial board and applies history in
// order. With validate set, each move must be a legal move of the side to
// move in a game that is not over, and each recorded promotion must be
// possible.
func (g *Game) replay(history []chess.Move, validate bool) error {
	moves := make([]chess.Move, len(history))
	copy(moves, history)

	g.board = g.initial
	g.turn = g.initialTurn
	g.history = make([]chess.Move, 0, len(moves))

	for i, m := range moves {
		if validate {
			if g.computeState().IsTerminal() {
				return &errors.GameError{Err: errors.ErrGameOver, Ply: i + 1, MoveText: m.String()}
			}
			if !g.CanSelectPiece(m.From) || !g.IsLegal(m.From, m.To) {
				return &errors.GameError{Err: errors.ErrIllegalMove, Ply: i + 1, MoveText: m.String()}
			}
		}
		g.applyMove(m)
		if !m.IsPromotion() {
			continue
		}
		if validate && (!m.Promotion.IsPromotionTarget() || !g.CanPromotePiece(m.To)) {
			return &errors.GameError{Err: errors.ErrInvalidPromotion, Ply: i + 1, MoveText: m.String()}
		}
		g.board.PromotePiece(m.To, m.Promotion)
		g.history[len(g.history)-1].Promotion = m.Promotion
	}

	g.state = g.computeState()
	return nil
}

// TryMove is Move for callers handling untrusted input. It checks that the
// game is not over, that no promotion is pending, that the piece belongs
// to the side to move and that the move is legal.
func (g *Game) TryMove(from, to chess.Position) error {
	text := chess.Move{From: from, To: to}.String()
	ply := len(g.history) + 1

	if g.state.IsTerminal() {
		return &errors.GameError{Err: errors.ErrGameOver, Ply: ply, MoveText: text}
	}
	if at, ok := g.PendingPromotion(); ok {
		return &errors.GameError{
			Err:      errors.Wrapf(errors.ErrInvalidPromotion, "pawn on %s must be promoted first", at),
			Ply:      ply,
			MoveText: text,
		}
	}
	if !g.CanSelectPiece(from) || !g.IsLegal(from, to) {
		return &errors.GameError{Err: errors.ErrIllegalMove, Ply: ply, MoveText: text}
	}
	g.Move(from, to)
	return nil
}

// TryPromote is PromotePiece returning ErrInvalidPromotion instead of
// panicking.
func (g *Game) TryPromote(at chess.Position, to chess.PieceType) error {
	if !g.CanPromotePiece(at) || !to.IsPromotionTarget() {
		return &errors.GameError{
			Err:      errors.ErrInvalidPromotion,
			Ply:      len(g.history),
			MoveText: fmt.Sprintf("%s=%c", at, to.Letter()),
		}
	}
	g.PromotePiece(at, to)
	return nil
}

// TryUndo is Undo returning ErrNothingToUndo instead of panicking.
func (g *Game) TryUndo() error {
	if len(g.history) == 0 {
		return errors.ErrNothingToUndo
	}
	g.Undo()
	return nil
}

// Play applies a move and, when it carries a promotion, promotes the pawn
// that arrived. The move is rolled back if the promotion fails.
func (g *Game) Play(m chess.Move) error {
	if err := g.TryMove(m.From, m.To); err != nil {
		return err
	}
	if !m.IsPromotion() {
		return nil
	}
	if err := g.TryPromote(m.To, m.Promotion); err != nil {
		g.Undo()
		return err
	}
	return nil
}
