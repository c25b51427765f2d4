package chess

import (
	"strings"

	"github.com/lgbarn/chessrules-go/internal/errors"
)

// Move represents a single applied or candidate move.
type Move struct {
	From Position
	To   Position

	// Promotion is the piece type a pawn landing on To was promoted to,
	// or NoPiece. It is filled in after the fact when the game records a
	// promotion choice, so replaying history reproduces it.
	Promotion PieceType
}

// SameSquares reports whether m and other move between the same squares,
// ignoring any promotion.
func (m Move) SameSquares(other Move) bool {
	return m.From == other.From && m.To == other.To
}

// Reverse returns the move going back from To to From.
func (m Move) Reverse() Move {
	return Move{From: m.To, To: m.From}
}

// IsPromotion returns true if the move records a promotion.
func (m Move) IsPromotion() bool {
	return m.Promotion != NoPiece
}

// String returns the move in long algebraic (UCI) form, e.g. "e2e4" or "e7e8q".
func (m Move) String() string {
	s := m.From.String() + m.To.String()
	if m.IsPromotion() {
		s += strings.ToLower(string(m.Promotion.Letter()))
	}
	return s
}

// ParseMove parses a move in long algebraic form. A trailing promotion
// letter (q, r, b or n) is accepted; "e2-e4" is accepted too.
func ParseMove(s string) (Move, error) {
	text := strings.ReplaceAll(strings.TrimSpace(s), "-", "")
	if len(text) != 4 && len(text) != 5 {
		return Move{}, &errors.ParseError{Err: errors.ErrIllegalMove, Input: s, Expected: "move like e2e4"}
	}

	from, err := ParsePosition(text[0:2])
	if err != nil {
		return Move{}, errors.Wrapf(err, "move %q", s)
	}
	to, err := ParsePosition(text[2:4])
	if err != nil {
		return Move{}, errors.Wrapf(err, "move %q", s)
	}

	move := Move{From: from, To: to}
	if len(text) == 5 {
		promo := PieceTypeFromLetter(text[4])
		if !promo.IsPromotionTarget() {
			return Move{}, &errors.ParseError{
				Err:      errors.ErrInvalidPromotion,
				Input:    s,
				Column:   5,
				Expected: "q, r, b or n",
				Got:      string(text[4]),
			}
		}
		move.Promotion = promo
	}
	return move, nil
}
