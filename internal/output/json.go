package output

import (
	"encoding/json"
	"io"
	"strings"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/engine"
)

// JSONGame represents a game in JSON format.
type JSONGame struct {
	Index      int        `json:"index"`
	Seed       int64      `json:"seed"`
	Result     string     `json:"result"`
	Reason     string     `json:"reason,omitempty"`
	State      string     `json:"state"`
	PlyCount   int        `json:"plyCount"`
	InitialFEN string     `json:"initialFEN"`
	FinalFEN   string     `json:"finalFEN"`
	Moves      []JSONMove `json:"moves,omitempty"`

	Analysis *JSONAnalysis `json:"analysis,omitempty"`
}

// JSONAnalysis is the JSON form of a game analysis.
type JSONAnalysis struct {
	Captures             int  `json:"captures"`
	Promotions           int  `json:"promotions"`
	Underpromotion       bool `json:"underpromotion,omitempty"`
	FiftyMoveRule        bool `json:"fiftyMoveRule,omitempty"`
	SeventyFiveMoveRule  bool `json:"seventyFiveMoveRule,omitempty"`
	Repetition           bool `json:"repetition,omitempty"`
	FivefoldRepetition   bool `json:"fivefoldRepetition,omitempty"`
	InsufficientMaterial bool `json:"insufficientMaterial,omitempty"`
	MaterialOdds         bool `json:"materialOdds,omitempty"`
	MaterialWhite        int  `json:"materialWhite"`
	MaterialBlack        int  `json:"materialBlack"`
}

// JSONMove represents a move in JSON format.
type JSONMove struct {
	Ply       int    `json:"ply"`
	Color     string `json:"color"` // "white" or "black"
	UCI       string `json:"uci"`
	From      string `json:"from"`
	To        string `json:"to"`
	Piece     string `json:"piece"`
	Captured  string `json:"captured,omitempty"`
	Promotion string `json:"promotion,omitempty"`
	FEN       string `json:"fen,omitempty"`
}

// JSONOutput holds multiple games for array output.
type JSONOutput struct {
	Games []*JSONGame `json:"games"`
}

// OutputGamesJSON outputs multiple games as a JSON array.
func OutputGamesJSON(w io.Writer, recs []GameRecord) error {
	jsonGames := make([]*JSONGame, len(recs))
	for i, rec := range recs {
		jsonGames[i] = GameToJSON(rec, false)
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(&JSONOutput{Games: jsonGames})
}

// GameToJSON converts a game record to JSON format, replaying the history
// to describe each move. includeFEN adds the position after every move.
func GameToJSON(rec GameRecord, includeFEN bool) *JSONGame {
	g := rec.Game
	jg := &JSONGame{
		Index:      rec.Index,
		Seed:       rec.Seed,
		Result:     rec.Result,
		Reason:     rec.Reason,
		State:      g.State().String(),
		PlyCount:   g.Ply(),
		InitialFEN: g.StartFEN(),
		FinalFEN:   g.FEN(),
	}
	jg.Moves = convertMoveList(g, includeFEN)
	if a := rec.Analysis; a != nil {
		jg.Analysis = &JSONAnalysis{
			Captures:             a.Captures,
			Promotions:           a.Promotions,
			Underpromotion:       a.HasUnderpromotion,
			FiftyMoveRule:        a.HasFiftyMoveRule,
			SeventyFiveMoveRule:  a.Has75MoveRule,
			Repetition:           a.HasRepetition,
			FivefoldRepetition:   a.Has5FoldRepetition,
			InsufficientMaterial: a.HasInsufficientMaterial,
			MaterialOdds:         a.HasMaterialOdds,
			MaterialWhite:        a.MaterialWhite,
			MaterialBlack:        a.MaterialBlack,
		}
	}
	return jg
}

// convertMoveList replays the game's history on a scratch game.
func convertMoveList(g *engine.Game, includeFEN bool) []JSONMove {
	scratch := engine.NewGameFromBoard(g.InitialBoard(), g.InitialTurn())
	var moves []JSONMove

	for i, m := range g.History() {
		board := scratch.Board()
		jm := convertSingleMove(&board, m, i+1, scratch.Turn())
		if err := scratch.Play(m); err != nil {
			break
		}
		if includeFEN {
			jm.FEN = scratch.FEN()
		}
		moves = append(moves, jm)
	}
	return moves
}

func convertSingleMove(board *chess.Board, m chess.Move, ply int, turn chess.Colour) JSONMove {
	jm := JSONMove{
		Ply:   ply,
		Color: strings.ToLower(turn.String()),
		UCI:   m.String(),
		From:  m.From.String(),
		To:    m.To.String(),
	}
	piece, _ := board.Piece(m.From)
	jm.Piece = pieceTypeName(piece.Type)

	if captured, ok := board.Piece(m.To); ok {
		jm.Captured = pieceTypeName(captured.Type)
	} else if piece.Type == chess.Pawn && m.From.X != m.To.X {
		jm.Captured = pieceTypeName(chess.Pawn)
	}
	if m.IsPromotion() {
		jm.Promotion = pieceTypeName(m.Promotion)
	}
	return jm
}

func pieceTypeName(pt chess.PieceType) string {
	switch pt {
	case chess.Pawn:
		return "pawn"
	case chess.Knight:
		return "knight"
	case chess.Bishop:
		return "bishop"
	case chess.Rook:
		return "rook"
	case chess.Queen:
		return "queen"
	case chess.King:
		return "king"
	}
	return ""
}
