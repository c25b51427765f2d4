// Package output draws boards and writes game summaries as text or JSON.
package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/engine"
	"github.com/lgbarn/chessrules-go/internal/processing"
)

// GameRecord is a finished game together with how it ended.
type GameRecord struct {
	Index  int
	Seed   int64
	Game   *engine.Game
	Result string // "1-0", "0-1", "1/2-1/2" or "*"
	Reason string // why play stopped

	// Analysis of the replayed game; nil when none was made.
	Analysis *processing.GameAnalysis
}

// OutputWriter handles formatted output with line length control.
type OutputWriter struct {
	w             io.Writer
	lineLength    int
	maxLineLength int
	needsSpace    bool
}

// NewOutputWriter creates a new output writer.
func NewOutputWriter(w io.Writer, maxLineLength int) *OutputWriter {
	if maxLineLength <= 0 {
		maxLineLength = 80
	}
	return &OutputWriter{
		w:             w,
		maxLineLength: maxLineLength,
	}
}

// Write writes a string, adding a space separator or a line break if needed.
func (o *OutputWriter) Write(s string) {
	if o.needsSpace && len(s) > 0 {
		if o.lineLength+1+len(s) > o.maxLineLength {
			fmt.Fprintln(o.w)
			o.lineLength = 0
		} else {
			fmt.Fprint(o.w, " ")
			o.lineLength++
		}
	}

	fmt.Fprint(o.w, s)
	o.lineLength += len(s)
	o.needsSpace = true
}

// NewLine starts a new line.
func (o *OutputWriter) NewLine() {
	fmt.Fprintln(o.w)
	o.lineLength = 0
	o.needsSpace = false
}

// WriteMoves writes a move list in long algebraic notation with move
// numbers. A list that starts with Black to move opens with "1...".
func WriteMoves(ow *OutputWriter, history []chess.Move, firstTurn chess.Colour) {
	number := 1
	turn := firstTurn
	for i, m := range history {
		switch {
		case turn == chess.White:
			ow.Write(fmt.Sprintf("%d.", number))
		case i == 0:
			ow.Write(fmt.Sprintf("%d...", number))
		}
		ow.Write(m.String())
		if turn == chess.Black {
			number++
		}
		turn = turn.Opposite()
	}
}

// OutputGame writes a text summary of a finished game: a header line,
// the analysis when there is one, the move list and the final position.
func OutputGame(w io.Writer, rec GameRecord, maxLineLength int) {
	fmt.Fprintf(w, "Game %d (seed %d): %s by %s after %d plies\n",
		rec.Index+1, rec.Seed, rec.Result, rec.Reason, rec.Game.Ply())
	if rec.Analysis != nil {
		fmt.Fprintln(w, AnalysisSummary(rec.Analysis))
	}

	ow := NewOutputWriter(w, maxLineLength)
	WriteMoves(ow, rec.Game.History(), rec.Game.InitialTurn())
	ow.Write(rec.Result)
	ow.NewLine()
	fmt.Fprintf(w, "FEN: %s\n\n", rec.Game.FEN())
}

// AnalysisSummary describes an analysis on one line, e.g.
// "Analysis: 12 captures, 1 promotion, material 23-19; underpromotion".
func AnalysisSummary(a *processing.GameAnalysis) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Analysis: %s, %s, material %d-%d",
		plural(a.Captures, "capture"), plural(a.Promotions, "promotion"),
		a.MaterialWhite, a.MaterialBlack)

	var notes []string
	flags := []struct {
		set  bool
		note string
	}{
		{a.HasUnderpromotion, "underpromotion"},
		{a.HasFiftyMoveRule && !a.Has75MoveRule, "fifty-move rule"},
		{a.Has75MoveRule, "seventy-five-move rule"},
		{a.HasRepetition && !a.Has5FoldRepetition, "threefold repetition"},
		{a.Has5FoldRepetition, "fivefold repetition"},
		{a.HasInsufficientMaterial, "insufficient material"},
		{a.HasMaterialOdds, "material odds"},
	}
	for _, f := range flags {
		if f.set {
			notes = append(notes, f.note)
		}
	}
	if len(notes) > 0 {
		sb.WriteString("; ")
		sb.WriteString(strings.Join(notes, ", "))
	}
	return sb.String()
}

func plural(n int, noun string) string {
	if n == 1 {
		return "1 " + noun
	}
	return fmt.Sprintf("%d %ss", n, noun)
}
