package storage

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/uuid"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/config"
	"github.com/lgbarn/chessrules-go/internal/engine"
	"github.com/lgbarn/chessrules-go/internal/errors"
	"github.com/lgbarn/chessrules-go/internal/testutil"
)

func playedGame(t *testing.T, moves string) *engine.Game {
	t.Helper()
	g := engine.NewGame()
	for _, m := range testutil.MustMoves(t, moves) {
		if err := g.Play(m); err != nil {
			t.Fatalf("Play(%s): %v", m, err)
		}
	}
	return g
}

func roundTrip(t *testing.T, s *Snapshot) *Snapshot {
	t.Helper()
	var buf bytes.Buffer
	if err := s.Save(&buf); err != nil {
		t.Fatalf("Save: %v", err)
	}
	loaded, err := Load(&buf)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	return loaded
}

func TestNewSnapshot(t *testing.T) {
	g := playedGame(t, "e2e4 e7e5 g1f3")
	s := NewSnapshot(g, config.NewPlayersConfig(), "green")

	if _, err := uuid.Parse(s.ID); err != nil {
		t.Errorf("ID %q is not a uuid: %v", s.ID, err)
	}
	testutil.AssertEqual(t, len(strings.Split(s.Name, "-")), 2, "two-word name %q", s.Name)
	testutil.AssertEqual(t, s.History, []string{"e2e4", "e7e5", "g1f3"})
	testutil.AssertEqual(t, s.FirstTurn, "w")
	testutil.AssertEqual(t, s.Board[7][6], "", "g1 empty")
	testutil.AssertEqual(t, s.Board[5][5], "N:WN6", "knight on f3")
	testutil.AssertEqual(t, s.Initial[7][6], "N:WN6")
	testutil.AssertTrue(t, s.WhiteHuman)
	testutil.AssertFalse(t, s.BlackHuman)
	testutil.AssertEqual(t, s.FEN, g.FEN())
}

func TestSnapshot_RoundTrip(t *testing.T) {
	g := playedGame(t, "e2e4 d7d5 e4d5 c7c6 d5c6 g8f6 c6b7 c8d7 b7a8n e7e6")
	players := &config.PlayersConfig{White: config.Computer, Black: config.Human}
	s := roundTrip(t, NewSnapshot(g, players, "mono"))

	restored, err := s.Game()
	if err != nil {
		t.Fatalf("Game: %v", err)
	}
	testutil.AssertEqual(t, restored.Board(), g.Board())
	testutil.AssertEqual(t, restored.History(), g.History())
	testutil.AssertEqual(t, restored.Turn(), g.Turn())
	testutil.AssertEqual(t, restored.FEN(), g.FEN())
	testutil.AssertEqual(t, s.Players(), players)
	testutil.AssertEqual(t, s.Theme, "mono")

	piece, ok := restored.PieceAt(testutil.Pos(t, "a8"))
	testutil.AssertTrue(t, ok)
	testutil.AssertEqual(t, piece, chess.Piece{ID: "WP4", Type: chess.Knight, Colour: chess.White}, "promoted pawn keeps its id")
}

func TestSnapshot_FromPosition(t *testing.T) {
	g, err := engine.NewGameFromFEN("4k3/8/8/8/8/8/8/R3K3 b - - 0 1")
	if err != nil {
		t.Fatal(err)
	}
	if err := g.Play(testutil.MustMove(t, "e8d7")); err != nil {
		t.Fatal(err)
	}

	restored, err := roundTrip(t, NewSnapshot(g, config.NewPlayersConfig(), "classic")).Game()
	if err != nil {
		t.Fatal(err)
	}
	testutil.AssertEqual(t, restored.InitialTurn(), chess.Black)
	testutil.AssertEqual(t, restored.Turn(), chess.White)
	testutil.AssertEqual(t, restored.InitialBoard(), g.InitialBoard())
}

func TestSnapshot_Invalid(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*Snapshot)
	}{
		{"board differs", func(s *Snapshot) { s.Board[7][0] = "" }},
		{"illegal move", func(s *Snapshot) { s.History[1] = "e7e4" }},
		{"unparsable move", func(s *Snapshot) { s.History[0] = "e2" }},
		{"bad first turn", func(s *Snapshot) { s.FirstTurn = "x" }},
		{"short grid", func(s *Snapshot) { s.Initial = s.Initial[:7] }},
		{"bad square", func(s *Snapshot) { s.Initial[0][0] = "r" }},
		{"unknown letter", func(s *Snapshot) { s.Initial[0][0] = "x:BR0" }},
		{"truncated history", func(s *Snapshot) { s.History = s.History[:1] }},
		{"same side moves twice", func(s *Snapshot) { s.History[1] = "e4e5" }},
		{"wrong side starts", func(s *Snapshot) { s.FirstTurn = "b" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := roundTrip(t, NewSnapshot(playedGame(t, "e2e4 e7e5"), config.NewPlayersConfig(), "classic"))
			tt.modify(s)
			_, err := s.Game()
			testutil.AssertErrorIs(t, err, errors.ErrInvalidSnapshot)
		})
	}
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"not json", "chess"},
		{"bad id", `{"id": "nope"}`},
		{"missing id", `{"name": "x"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(strings.NewReader(tt.input))
			testutil.AssertErrorIs(t, err, errors.ErrInvalidSnapshot)
		})
	}
}

func TestSaveFile_LoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "game.json")
	g := playedGame(t, "d2d4 g8f6")
	s := NewSnapshot(g, config.NewPlayersConfig(), "classic")

	if err := s.SaveFile(path); err != nil {
		t.Fatalf("SaveFile: %v", err)
	}
	loaded, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	testutil.AssertEqual(t, loaded.ID, s.ID)
	testutil.AssertTrue(t, loaded.SavedAt.Equal(s.SavedAt), "saved time survives")

	restored, err := loaded.Game()
	if err != nil {
		t.Fatal(err)
	}
	testutil.AssertEqual(t, restored.History(), g.History())
}

func TestLoadFile_Missing(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "missing.json"))
	testutil.AssertErrorIs(t, err, os.ErrNotExist)
}
