package engine

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/errors"
)

// InitialFEN is the FEN string for the standard starting position.
const InitialFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// FENLetter returns the FEN letter for a piece: uppercase for White,
// lowercase for Black.
func FENLetter(piece chess.Piece) byte {
	letter := piece.Type.Letter()
	if piece.Colour == chess.Black {
		letter = byte(unicode.ToLower(rune(letter)))
	}
	return letter
}

// NewGameFromFEN creates a game from the piece placement and side to move
// fields of a FEN string. The castling and en passant fields are not
// needed since both rights are derived from the (empty) history; the
// clocks are ignored.
func NewGameFromFEN(fen string) (*Game, error) {
	board, turn, err := ParseFEN(fen)
	if err != nil {
		return nil, err
	}
	return NewGameFromBoard(board, turn), nil
}

// ParseFEN parses the placement and side to move of a FEN string.
func ParseFEN(fen string) (chess.Board, chess.Colour, error) {
	parts := strings.Fields(fen)
	if len(parts) < 1 {
		return chess.Board{}, chess.White, fmt.Errorf("empty FEN string: %w", errors.ErrInvalidFEN)
	}

	board, err := parsePiecePositions(parts[0])
	if err != nil {
		return chess.Board{}, chess.White, err
	}

	turn, err := parseSideToMove(parts)
	if err != nil {
		return chess.Board{}, chess.White, err
	}
	return board, turn, nil
}

// parsePiecePositions parses the piece placement field of a FEN string.
func parsePiecePositions(positions string) (chess.Board, error) {
	board := chess.NewEmptyBoard()
	ranks := strings.Split(positions, "/")
	if len(ranks) != chess.BoardSize {
		return board, &errors.ParseError{
			Err:      errors.ErrInvalidFEN,
			Input:    positions,
			Expected: "8 ranks",
			Got:      strconv.Itoa(len(ranks)),
		}
	}

	for y, rank := range ranks {
		x := 0
		for _, c := range rank {
			switch {
			case c >= '1' && c <= '8':
				x += int(c - '0')
			case c > unicode.MaxASCII:
				return board, fmt.Errorf("invalid piece character: %c: %w", c, errors.ErrInvalidFEN)
			default:
				pt := chess.PieceTypeFromLetter(byte(c))
				if pt == chess.NoPiece {
					return board, fmt.Errorf("invalid piece character: %c: %w", c, errors.ErrInvalidFEN)
				}
				at := chess.Position{X: x, Y: y}
				if !at.InBounds() {
					return board, fmt.Errorf("rank %d overflows: %w", chess.BoardSize-y, errors.ErrInvalidFEN)
				}
				colour := chess.White
				if unicode.IsLower(c) {
					colour = chess.Black
				}
				board.SetPiece(at, chess.Piece{ID: chess.PieceID(colour, pt, at), Type: pt, Colour: colour})
				x++
			}
		}
		if x != chess.BoardSize {
			return board, fmt.Errorf("rank %d has %d squares: %w", chess.BoardSize-y, x, errors.ErrInvalidFEN)
		}
	}
	return board, nil
}

// parseSideToMove parses the side to move field.
func parseSideToMove(parts []string) (chess.Colour, error) {
	if len(parts) < 2 {
		return chess.White, nil
	}
	switch parts[1] {
	case "w":
		return chess.White, nil
	case "b":
		return chess.Black, nil
	}
	return chess.White, fmt.Errorf("invalid side to move: %s: %w", parts[1], errors.ErrInvalidFEN)
}

// FEN returns the current position as a full six-field FEN string.
// Castling rights, the en passant square and both clocks are derived
// from the history.
func (g *Game) FEN() string {
	var sb strings.Builder

	writePiecePositions(&sb, &g.board)
	sb.WriteByte(' ')
	writeSideToMove(&sb, g.turn)
	sb.WriteByte(' ')
	g.writeCastlingRights(&sb)
	sb.WriteByte(' ')
	g.writeEnPassant(&sb)
	sb.WriteByte(' ')
	fmt.Fprintf(&sb, "%d %d", g.halfmoveClock(), g.fullmoveNumber())

	return sb.String()
}

// StartFEN returns the FEN of the position the game started from.
func (g *Game) StartFEN() string {
	start := NewGameFromBoard(g.initial, g.initialTurn)
	return start.FEN()
}

// writePiecePositions writes the piece placement to the builder.
func writePiecePositions(sb *strings.Builder, board *chess.Board) {
	for y := 0; y < chess.BoardSize; y++ {
		emptyCount := 0
		for x := 0; x < chess.BoardSize; x++ {
			piece, ok := board.Piece(chess.Position{X: x, Y: y})
			if !ok {
				emptyCount++
				continue
			}
			if emptyCount > 0 {
				sb.WriteByte(byte('0' + emptyCount))
				emptyCount = 0
			}
			sb.WriteByte(FENLetter(piece))
		}
		if emptyCount > 0 {
			sb.WriteByte(byte('0' + emptyCount))
		}
		if y < chess.BoardSize-1 {
			sb.WriteByte('/')
		}
	}
}

// writeSideToMove writes the side to move to the builder.
func writeSideToMove(sb *strings.Builder, turn chess.Colour) {
	if turn == chess.White {
		sb.WriteByte('w')
	} else {
		sb.WriteByte('b')
	}
}

// writeCastlingRights writes the castling availability to the builder.
func (g *Game) writeCastlingRights(sb *strings.Builder) {
	wk, wq := g.CastlingRights(chess.White)
	bk, bq := g.CastlingRights(chess.Black)
	start := sb.Len()
	for _, right := range []struct {
		ok     bool
		letter byte
	}{{wk, 'K'}, {wq, 'Q'}, {bk, 'k'}, {bq, 'q'}} {
		if right.ok {
			sb.WriteByte(right.letter)
		}
	}
	if sb.Len() == start {
		sb.WriteByte('-')
	}
}

// writeEnPassant writes the en passant target square, or "-".
func (g *Game) writeEnPassant(sb *strings.Builder) {
	if at, ok := g.EnPassantTarget(); ok {
		sb.WriteString(at.String())
		return
	}
	sb.WriteByte('-')
}

// halfmoveClock counts plies since the last pawn move or capture by
// replaying the history.
func (g *Game) halfmoveClock() int {
	scratch := &Game{board: g.initial, turn: g.initialTurn}
	clock := 0
	for _, m := range g.history {
		piece, _ := scratch.board.Piece(m.From)
		if piece.Type == chess.Pawn || !scratch.board.IsEmpty(m.To) {
			clock = 0
		} else {
			clock++
		}
		scratch.applyMove(m)
		if m.IsPromotion() {
			scratch.board.PromotePiece(m.To, m.Promotion)
		}
	}
	return clock
}

// fullmoveNumber starts at 1 and increments after each Black move.
func (g *Game) fullmoveNumber() int {
	plies := len(g.history)
	if g.initialTurn == chess.Black {
		plies++
	}
	return 1 + plies/2
}
