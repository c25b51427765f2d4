// Package hashing provides position hashing for repetition detection and
// for counting distinct positions across games.
package hashing

import (
	"math/rand"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/engine"
)

// zobristSeed fixes the key table so hashes are stable between runs.
const zobristSeed = 0x5eed

const numPieceKinds = 12 // 6 piece types x 2 colours

type zobristTable struct {
	pieces    [numPieceKinds][chess.BoardSize * chess.BoardSize]uint64
	blackMove uint64
	castling  [4]uint64
	enPassant [chess.BoardSize]uint64
}

var keys = newZobristTable(zobristSeed)

func newZobristTable(seed int64) *zobristTable {
	rng := rand.New(rand.NewSource(seed))
	t := &zobristTable{}
	for k := range t.pieces {
		for sq := range t.pieces[k] {
			t.pieces[k][sq] = rng.Uint64()
		}
	}
	t.blackMove = rng.Uint64()
	for i := range t.castling {
		t.castling[i] = rng.Uint64()
	}
	for i := range t.enPassant {
		t.enPassant[i] = rng.Uint64()
	}
	return t
}

// pieceIndex maps a piece to its row in the key table.
func pieceIndex(p chess.Piece) int {
	idx := int(p.Type) - int(chess.Pawn)
	if p.Colour == chess.Black {
		idx += numPieceKinds / 2
	}
	return idx
}

// HashBoard returns the Zobrist hash of the piece placement and side to
// move. Piece ids do not take part: two boards with the same kinds of
// pieces on the same squares hash alike.
func HashBoard(board *chess.Board, turn chess.Colour) uint64 {
	var hash uint64
	for _, placed := range board.AllPieces() {
		sq := placed.Position.Y*chess.BoardSize + placed.Position.X
		hash ^= keys.pieces[pieceIndex(placed.Piece)][sq]
	}
	if turn == chess.Black {
		hash ^= keys.blackMove
	}
	return hash
}

// HashGame returns the Zobrist hash of the game's current position,
// including castling rights and the en passant file, so that two
// positions hash alike only when the same moves are available in both.
func HashGame(g *engine.Game) uint64 {
	board := g.Board()
	hash := HashBoard(&board, g.Turn())

	for i, colour := range []chess.Colour{chess.White, chess.Black} {
		kingside, queenside := g.CastlingRights(colour)
		if kingside {
			hash ^= keys.castling[2*i]
		}
		if queenside {
			hash ^= keys.castling[2*i+1]
		}
	}
	if at, ok := g.EnPassantTarget(); ok {
		hash ^= keys.enPassant[at.X]
	}
	return hash
}
