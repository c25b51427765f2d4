package ai

import (
	"testing"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/engine"
	"github.com/lgbarn/chessrules-go/internal/testutil"
)

func gameFromRows(t *testing.T, turn chess.Colour, rows ...string) *engine.Game {
	t.Helper()
	return engine.NewGameFromBoard(testutil.MustBoard(t, rows...), turn)
}

func TestNextMove_PrefersMate(t *testing.T) {
	g := gameFromRows(t, chess.White,
		".......k",
		"......pp",
		"........",
		"........",
		"..N.....",
		"........",
		".q......",
		"...R...K",
	)
	want := testutil.MustMove(t, "d1d8")

	for seed := int64(0); seed < 10; seed++ {
		move, ok := NewSelector(seed).NextMove(g, chess.White)
		testutil.AssertTrue(t, ok, "seed %d found a move", seed)
		testutil.AssertEqual(t, move, want, "seed %d", seed)
	}
}

func TestNextMove_TakesFreeQueen(t *testing.T) {
	g := gameFromRows(t, chess.White,
		"....k...",
		"........",
		"........",
		"........",
		"..N.....",
		"........",
		".q.....P",
		"....K...",
	)
	want := testutil.MustMove(t, "c4b2")

	for seed := int64(0); seed < 10; seed++ {
		move, ok := NewSelector(seed).NextMove(g, chess.White)
		testutil.AssertTrue(t, ok)
		testutil.AssertEqual(t, move, want, "seed %d", seed)
	}
}

func TestNextMove_Promotes(t *testing.T) {
	g := gameFromRows(t, chess.White,
		"........",
		"P.......",
		"........",
		".......k",
		"........",
		"........",
		"........",
		"....K...",
	)
	move, ok := NewSelector(1).NextMove(g, chess.White)
	testutil.AssertTrue(t, ok)
	testutil.AssertEqual(t, move, chess.Move{
		From:      testutil.Pos(t, "a7"),
		To:        testutil.Pos(t, "a8"),
		Promotion: chess.Queen,
	})
}

func TestNextMove_NoMoveWhenMated(t *testing.T) {
	g := engine.NewGame()
	for _, m := range testutil.MustMoves(t, "f2f3 e7e5 g2g4 d8h4") {
		g.Move(m.From, m.To)
	}
	_, ok := NewSelector(3).NextMove(g, chess.White)
	testutil.AssertFalse(t, ok, "checkmated side has no move")
}

func TestNextMove_LeavesGameUntouched(t *testing.T) {
	g := engine.NewGame()
	before := g.FEN()
	NewSelector(5).NextMove(g, chess.White)
	testutil.AssertEqual(t, g.FEN(), before)
	testutil.AssertEqual(t, g.Ply(), 0)
}

func TestNextMove_Deterministic(t *testing.T) {
	g := engine.NewGame()
	a, _ := NewSelector(42).NextMove(g, chess.White)
	b, _ := NewSelector(42).NextMove(g, chess.White)
	testutil.AssertEqual(t, a, b)
}

// Self-play with the selector on both sides: every chosen move must be
// legal for the side to move and never leave its king attacked.
func TestNextMove_NeverSelfCheck(t *testing.T) {
	for seed := int64(0); seed < 4; seed++ {
		g := engine.NewGame()
		sel := NewSelector(seed)
		for ply := 0; ply < 60 && !g.State().IsTerminal(); ply++ {
			colour := g.Turn()
			move, ok := sel.NextMove(g, colour)
			if !ok {
				t.Fatalf("seed %d ply %d: no move in non-terminal %s", seed, ply, g.FEN())
			}
			if !g.IsLegal(move.From, move.To) {
				t.Fatalf("seed %d ply %d: illegal move %s in %s", seed, ply, move, g.FEN())
			}
			if err := g.Play(move); err != nil {
				t.Fatalf("seed %d ply %d: Play(%s): %v", seed, ply, move, err)
			}
			if g.KingIsInCheck(colour) {
				t.Fatalf("seed %d ply %d: %s left own king in check", seed, ply, move)
			}
		}
	}
}

func TestReversesOwnLastMove(t *testing.T) {
	history := testutil.MustMoves(t, "g1f3 g8f6")
	testutil.AssertTrue(t, reversesOwnLastMove(history, testutil.MustMove(t, "f3g1")), "white knight back")
	testutil.AssertFalse(t, reversesOwnLastMove(history, testutil.MustMove(t, "f6g8")), "opponent's last move")
	testutil.AssertFalse(t, reversesOwnLastMove(history[:1], testutil.MustMove(t, "f3g1")), "too short")
}

func TestAcceptIdle(t *testing.T) {
	board := testutil.MustBoard(t,
		"r...k..r",
		"pppppppp",
		"........",
		"........",
		"........",
		"........",
		"PPPPPPPP",
		"R...K.NR",
	)
	quietBest := candidate{move: testutil.MustMove(t, "g1f3"), state: engine.Idle, score: 0, found: true}
	pawnBest := candidate{move: testutil.MustMove(t, "a2a3"), state: engine.Idle, score: 0, found: true}

	tests := []struct {
		name       string
		best       candidate
		move       string
		score      float64
		threatened bool
		accept     bool
		bonus      float64
	}{
		{name: "nothing yet", best: candidate{}, move: "a2a3", accept: true},
		{name: "better score", best: quietBest, move: "a2a3", score: 1, accept: true},
		{name: "worse score", best: quietBest, move: "a2a3", score: -1},
		{name: "tie castling", best: quietBest, move: "e1c1", accept: true, bonus: castlingBonus},
		{name: "tie king step", best: quietBest, move: "e1f1"},
		{name: "tie rook", best: quietBest, move: "a1b1"},
		{name: "tie knight", best: pawnBest, move: "g1h3"},
		{name: "tie pawn over piece", best: quietBest, move: "b2b3", accept: true},
		{name: "tie pawn further", best: pawnBest, move: "b2b4", accept: true},
		{name: "tie pawn not further", best: pawnBest, move: "b2b3"},
		{name: "tie but destination threatened", best: quietBest, move: "b2b3", threatened: true},
		{name: "after stalemate", best: candidate{state: engine.StaleMate, found: true}, move: "a1b1", score: -5, accept: true},
		{name: "after checkmate", best: candidate{state: engine.CheckMate, found: true}, move: "a2a3", score: 9},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			accept, bonus := acceptIdle(&board, tt.best, testutil.MustMove(t, tt.move), tt.score, chess.White, tt.threatened)
			testutil.AssertEqual(t, accept, tt.accept)
			testutil.AssertEqual(t, bonus, tt.bonus)
		})
	}
}

func TestAcceptCheck(t *testing.T) {
	tests := []struct {
		name  string
		best  candidate
		score float64
		want  bool
	}{
		{"nothing yet", candidate{}, -3, true},
		{"tie with check", candidate{state: engine.Check, score: 1, found: true}, 1, true},
		{"below idle", candidate{state: engine.Idle, score: 2, found: true}, 1, false},
		{"over stalemate", candidate{state: engine.StaleMate, found: true}, -8, true},
		{"never over mate", candidate{state: engine.CheckMate, found: true}, 9, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			testutil.AssertEqual(t, acceptCheck(tt.best, tt.score), tt.want)
		})
	}
}
