// Package storage saves games to JSON snapshots and restores them.
//
// A snapshot stores the initial board, the move history and the board
// the history led to. Restoring replays the history and refuses the
// snapshot when the replayed board differs from the stored one, so a
// hand-edited or truncated file cannot silently produce another game.
package storage

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"time"
	"unicode"

	petname "github.com/dustinkirkland/golang-petname"
	"github.com/google/uuid"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/config"
	"github.com/lgbarn/chessrules-go/internal/engine"
	"github.com/lgbarn/chessrules-go/internal/errors"
)

// Grid is a board as rows of encoded squares, row 0 being rank 8. An
// occupied square is the piece's FEN letter, a colon and its id
// ("Q:WP0" for a pawn promoted to a queen); an empty square is "".
type Grid [][]string

// Snapshot is a saved game.
type Snapshot struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	SavedAt    time.Time `json:"savedAt"`
	Initial    Grid      `json:"initial"`
	FirstTurn  string    `json:"firstTurn"` // "w" or "b"
	History    []string  `json:"history"`   // long algebraic, e.g. "e7e8q"
	Board      Grid      `json:"board"`
	FEN        string    `json:"fen"`
	WhiteHuman bool      `json:"whiteHuman"`
	BlackHuman bool      `json:"blackHuman"`
	Theme      string    `json:"theme"`
}

// NewSnapshot captures g along with who plays each side and the board
// theme. The snapshot gets a fresh id and a readable name.
func NewSnapshot(g *engine.Game, players *config.PlayersConfig, theme string) *Snapshot {
	initial := g.InitialBoard()
	board := g.Board()

	s := &Snapshot{
		ID:         uuid.New().String(),
		Name:       petname.Generate(2, "-"),
		SavedAt:    time.Now().UTC(),
		Initial:    encodeBoard(&initial),
		FirstTurn:  turnText(g.InitialTurn()),
		Board:      encodeBoard(&board),
		FEN:        g.FEN(),
		WhiteHuman: players.IsHuman(chess.White),
		BlackHuman: players.IsHuman(chess.Black),
		Theme:      theme,
	}
	for _, m := range g.History() {
		s.History = append(s.History, m.String())
	}
	return s
}

// Players returns who plays each side.
func (s *Snapshot) Players() *config.PlayersConfig {
	p := &config.PlayersConfig{White: config.Computer, Black: config.Computer}
	if s.WhiteHuman {
		p.White = config.Human
	}
	if s.BlackHuman {
		p.Black = config.Human
	}
	return p
}

// Game rebuilds the saved game by replaying its history over the
// initial board. It fails with ErrInvalidSnapshot if any field is
// malformed, a move is illegal, or the replay ends on a different board.
func (s *Snapshot) Game() (*engine.Game, error) {
	initial, err := decodeBoard(s.Initial)
	if err != nil {
		return nil, invalid("initial board", err)
	}
	turn, err := chess.ParseColour(s.FirstTurn)
	if err != nil {
		return nil, invalid("first turn", err)
	}
	want, err := decodeBoard(s.Board)
	if err != nil {
		return nil, invalid("board", err)
	}

	history := make([]chess.Move, 0, len(s.History))
	for i, text := range s.History {
		m, err := chess.ParseMove(text)
		if err != nil {
			return nil, invalid(fmt.Sprintf("move %d", i+1), err)
		}
		history = append(history, m)
	}

	g, err := engine.Restore(initial, turn, history)
	if err != nil {
		return nil, invalid("history", err)
	}
	if g.Board() != want {
		return nil, fmt.Errorf("replayed board differs from saved board: %w", errors.ErrInvalidSnapshot)
	}
	return g, nil
}

func invalid(field string, err error) error {
	return fmt.Errorf("%s: %v: %w", field, err, errors.ErrInvalidSnapshot)
}

// Save writes the snapshot as indented JSON.
func (s *Snapshot) Save(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(s)
}

// Load reads a snapshot written by Save. Only the encoding and the id are
// checked here; Game validates the contents.
func Load(r io.Reader) (*Snapshot, error) {
	var s Snapshot
	if err := json.NewDecoder(r).Decode(&s); err != nil {
		return nil, invalid("json", err)
	}
	if _, err := uuid.Parse(s.ID); err != nil {
		return nil, invalid("id", err)
	}
	return &s, nil
}

// SaveFile writes the snapshot to path, replacing any existing file.
func (s *Snapshot) SaveFile(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := s.Save(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// LoadFile reads a snapshot from path.
func LoadFile(path string) (*Snapshot, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Load(f)
}

func turnText(c chess.Colour) string {
	if c == chess.White {
		return "w"
	}
	return "b"
}

func encodeBoard(board *chess.Board) Grid {
	grid := make(Grid, chess.BoardSize)
	for y := range grid {
		grid[y] = make([]string, chess.BoardSize)
		for x := range grid[y] {
			if piece, ok := board.Piece(chess.Position{X: x, Y: y}); ok {
				grid[y][x] = fmt.Sprintf("%c:%s", engine.FENLetter(piece), piece.ID)
			}
		}
	}
	return grid
}

func decodeBoard(grid Grid) (chess.Board, error) {
	board := chess.NewEmptyBoard()
	if len(grid) != chess.BoardSize {
		return board, fmt.Errorf("%d rows, want %d", len(grid), chess.BoardSize)
	}
	for y, row := range grid {
		if len(row) != chess.BoardSize {
			return board, fmt.Errorf("row %d has %d squares, want %d", y, len(row), chess.BoardSize)
		}
		for x, square := range row {
			if square == "" {
				continue
			}
			piece, err := decodeSquare(square)
			if err != nil {
				return board, err
			}
			board.SetPiece(chess.Position{X: x, Y: y}, piece)
		}
	}
	return board, nil
}

func decodeSquare(square string) (chess.Piece, error) {
	letter, id, ok := strings.Cut(square, ":")
	if !ok || len(letter) != 1 || id == "" {
		return chess.Piece{}, fmt.Errorf("square %q: %w", square, errors.ErrInvalidPiece)
	}
	pt := chess.PieceTypeFromLetter(letter[0])
	if pt == chess.NoPiece {
		return chess.Piece{}, fmt.Errorf("square %q: unknown piece letter: %w", square, errors.ErrInvalidPiece)
	}
	colour := chess.Black
	if unicode.IsUpper(rune(letter[0])) {
		colour = chess.White
	}
	return chess.Piece{ID: id, Type: pt, Colour: colour}, nil
}
