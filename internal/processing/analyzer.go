// Package processing analyzes finished games and plays computer games.
package processing

import (
	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/engine"
	"github.com/lgbarn/chessrules-go/internal/hashing"
)

// GameAnalysis holds analysis results from replaying a game.
type GameAnalysis struct {
	Plies             int
	Captures          int
	Promotions        int
	HasFiftyMoveRule  bool
	HasRepetition     bool
	HasUnderpromotion bool

	// Extended draw rule detection
	Has75MoveRule           bool
	Has5FoldRepetition      bool
	HasInsufficientMaterial bool
	HasMaterialOdds         bool

	// Material left on the board at the end, in pawn units.
	MaterialWhite int
	MaterialBlack int

	FinalState engine.State
	FinalFEN   string
}

// AnalyzeGame replays a game's history from its initial position and
// records draw-rule triggers, captures and promotions along the way.
func AnalyzeGame(g *engine.Game) (*GameAnalysis, error) {
	analysis := &GameAnalysis{
		HasMaterialOdds: g.HasMaterialOdds(),
	}

	scratch := engine.NewGameFromBoard(g.InitialBoard(), g.InitialTurn())
	positionCount := map[uint64]int{hashing.HashGame(scratch): 1}

	halfmoveClock := 0
	for _, m := range g.History() {
		board := scratch.Board()
		piece, _ := board.Piece(m.From)
		captured := !board.IsEmpty(m.To) || isEnPassant(&board, piece, m)
		if piece.Type == chess.Pawn || captured {
			halfmoveClock = 0
		} else {
			halfmoveClock++
		}
		if captured {
			analysis.Captures++
		}

		if err := scratch.Play(m); err != nil {
			return nil, err
		}
		analysis.Plies++

		if m.IsPromotion() {
			analysis.Promotions++
			if m.Promotion != chess.Queen {
				analysis.HasUnderpromotion = true
			}
		}

		// 50-move rule (100 half-moves)
		if halfmoveClock >= 100 {
			analysis.HasFiftyMoveRule = true
		}

		// 75-move rule (150 half-moves - automatic draw)
		if halfmoveClock >= 150 {
			analysis.Has75MoveRule = true
		}

		posHash := hashing.HashGame(scratch)
		positionCount[posHash]++

		// 3-fold repetition
		if positionCount[posHash] >= 3 {
			analysis.HasRepetition = true
		}

		// 5-fold repetition (automatic draw)
		if positionCount[posHash] >= 5 {
			analysis.Has5FoldRepetition = true
		}
	}

	analysis.HasInsufficientMaterial = !g.IsSufficientMaterial(chess.White) && !g.IsSufficientMaterial(chess.Black)
	analysis.MaterialWhite = g.Material(chess.White)
	analysis.MaterialBlack = g.Material(chess.Black)
	analysis.FinalState = g.State()
	analysis.FinalFEN = g.FEN()
	return analysis, nil
}

// isEnPassant reports whether a pawn move is a diagonal step onto an
// empty square.
func isEnPassant(board *chess.Board, piece chess.Piece, m chess.Move) bool {
	return piece.Type == chess.Pawn && m.From.X != m.To.X && board.IsEmpty(m.To)
}
