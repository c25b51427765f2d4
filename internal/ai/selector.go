// Package ai picks moves for computer players.
//
// The selector looks a single ply ahead. Every candidate is played on a
// clone of the game and scored by what it captures, whether it promotes,
// and what it leaves hanging; the outcome of the move (mate, check,
// stalemate) decides how the score is compared against the best so far.
package ai

import (
	"math/rand"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/engine"
)

const (
	// promotionBonus is added when a move lets a pawn promote.
	promotionBonus = 8.0

	// riskFactor scales the value of a piece left threatened.
	riskFactor = 0.9

	// castlingBonus breaks ties in favour of castling.
	castlingBonus = 0.5
)

// Selector chooses a move for one side. Candidate order is shuffled with
// the selector's own random source, so a fixed seed gives a fixed choice.
// A Selector is not safe for concurrent use.
type Selector struct {
	rng *rand.Rand
}

// NewSelector creates a selector whose move order is seeded with seed.
func NewSelector(seed int64) *Selector {
	return &Selector{rng: rand.New(rand.NewSource(seed))}
}

// candidate is the best move found so far.
type candidate struct {
	move  chess.Move
	state engine.State
	score float64
	found bool
}

// NextMove returns the move the selector prefers for colour, or false
// when colour has no move that keeps its king safe. The game is not
// modified. A move that brings a pawn to its last row carries
// Promotion set to Queen.
func (s *Selector) NextMove(g *engine.Game, colour chess.Colour) (chess.Move, bool) {
	board := g.Board()
	history := g.History()

	moves := g.Moves(colour)
	s.rng.Shuffle(len(moves), func(i, j int) { moves[i], moves[j] = moves[j], moves[i] })

	var best candidate
	for _, move := range moves {
		next := g.Clone()
		next.Move(move.From, move.To)
		if next.KingIsInCheck(colour) {
			continue
		}

		score := 0.0
		if captured, ok := board.Piece(move.To); ok {
			score = float64(captured.Type.Value())
		}
		if next.CanPromotePiece(move.To) {
			next.PromotePiece(move.To, chess.Queen)
			move.Promotion = chess.Queen
			score += promotionBonus
		}

		state := next.State()
		switch state {
		case engine.CheckMate:
			// always taken

		case engine.StaleMate, engine.InsufficientMaterial:
			if best.found {
				continue
			}

		case engine.Check:
			if next.PieceIsThreatened(move.To) {
				if piece, ok := next.PieceAt(move.To); ok {
					score -= float64(piece.Type.Value()) * riskFactor
				}
			}
			if !acceptCheck(best, score) {
				continue
			}

		case engine.Idle:
			worst := 0
			for _, threatened := range next.Threats(colour) {
				if v := threatened.Piece.Type.Value(); v > worst {
					worst = v
				}
			}
			score -= float64(worst) * riskFactor

			accept, bonus := acceptIdle(&board, best, move, score, colour, next.PieceIsThreatened(move.To))
			if !accept {
				continue
			}
			score += bonus
		}

		if best.found && reversesOwnLastMove(history, move) {
			continue
		}
		best = candidate{move: move, state: state, score: score, found: true}
	}

	return best.move, best.found
}

// isDrawish reports whether a best-so-far state is only a fallback.
func isDrawish(s engine.State) bool {
	return s == engine.StaleMate || s == engine.InsufficientMaterial
}

// acceptCheck decides whether a move giving check replaces the best move.
// Ties go to the newer move.
func acceptCheck(best candidate, score float64) bool {
	if !best.found || isDrawish(best.state) {
		return true
	}
	switch best.state {
	case engine.Check, engine.Idle:
		return score >= best.score
	}
	return false
}

// acceptIdle decides whether a quiet move replaces the best move. A
// strictly better score wins; an exact tie against a quiet best move is
// broken by preferring castling, avoiding king and rook moves, and
// pushing pawns further up the board. It returns the bonus to add to the
// score when the move is accepted.
func acceptIdle(board *chess.Board, best candidate, move chess.Move, score float64, colour chess.Colour, destThreatened bool) (bool, float64) {
	if !best.found || isDrawish(best.state) {
		return true, 0
	}
	switch best.state {
	case engine.Idle, engine.Check:
		if score > best.score {
			return true, 0
		}
	}
	if best.state != engine.Idle || score != best.score || destThreatened {
		return false, 0
	}

	piece, ok := board.Piece(move.From)
	if !ok {
		return true, 0
	}
	switch piece.Type {
	case chess.King:
		if abs(move.To.X-move.From.X) > 1 {
			return true, castlingBonus
		}
		return false, 0
	case chess.Rook:
		return false, 0
	case chess.Pawn:
		bestPiece, _ := board.Piece(best.move.From)
		if bestPiece.Type != chess.Pawn {
			return true, 0
		}
		if colour == chess.Black && move.To.Y > best.move.To.Y {
			return true, 0
		}
		if colour == chess.White && move.To.Y < best.move.To.Y {
			return true, 0
		}
	}
	return false, 0
}

// reversesOwnLastMove reports whether move undoes the mover's previous
// move, which sits second from the end of the history.
func reversesOwnLastMove(history []chess.Move, move chess.Move) bool {
	if len(history) < 2 {
		return false
	}
	return history[len(history)-2].SameSquares(move.Reverse())
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
