package main

import (
	"bufio"
	stderrors "errors"
	"fmt"
	"io"
	"strings"

	"github.com/lgbarn/chessrules-go/internal/ai"
	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/config"
	"github.com/lgbarn/chessrules-go/internal/engine"
	"github.com/lgbarn/chessrules-go/internal/errors"
	"github.com/lgbarn/chessrules-go/internal/hashing"
	"github.com/lgbarn/chessrules-go/internal/output"
	"github.com/lgbarn/chessrules-go/internal/storage"
)

const commandHelp = `  e2e4, e7e8q   move (add q, r, b or n to promote)
  moves         list every legal move
  moves <sq>    list where the piece on <sq> can go
  undo          take back the last move (and the computer's reply)
  save [file]   save the game
  fen           print the position as FEN
  board         draw the board again
  help          show this list
  quit          leave the game
`

// Session is one interactive game.
type Session struct {
	cfg      *config.Config
	game     *engine.Game
	selector *ai.Selector
	tracker  *hashing.RepetitionTracker
	theme    output.Theme
	in       *bufio.Scanner
	out      io.Writer
}

// NewSession sets up a game from a saved snapshot, a FEN, or the standard
// start, in that order of preference.
func NewSession(cfg *config.Config) (*Session, error) {
	g, err := startingGame(cfg)
	if err != nil {
		return nil, err
	}
	theme, err := output.ThemeByName(cfg.Output.Theme)
	if err != nil {
		return nil, err
	}
	if cfg.Output.NoColor {
		theme = theme.WithColor(false)
	}

	s := &Session{
		cfg:      cfg,
		game:     g,
		selector: ai.NewSelector(cfg.Engine.Seed),
		tracker:  hashing.NewRepetitionTracker(cfg.Engine.RepetitionLimit),
		theme:    theme,
		in:       bufio.NewScanner(cfg.InputFile),
		out:      cfg.OutputFile,
	}
	if err := s.tracker.Rebuild(g); err != nil {
		return nil, err
	}
	return s, nil
}

// startingGame loads the configured snapshot or position. A snapshot
// also restores who plays each side and the theme.
func startingGame(cfg *config.Config) (*engine.Game, error) {
	if cfg.Storage.LoadPath != "" {
		snap, err := storage.LoadFile(cfg.Storage.LoadPath)
		if err != nil {
			return nil, err
		}
		g, err := snap.Game()
		if err != nil {
			return nil, err
		}
		cfg.Players = snap.Players()
		if snap.Theme != "" {
			cfg.Output.Theme = snap.Theme
		}
		cfg.Logf(1, "Resumed %s (%d plies)", snap.Name, g.Ply())
		return g, nil
	}
	if cfg.Engine.StartFEN != "" {
		return engine.NewGameFromFEN(cfg.Engine.StartFEN)
	}
	return engine.NewGame(), nil
}

// Run plays until the game ends, is cut off, or the input runs out.
func (s *Session) Run() error {
	s.render()
	for {
		if over := s.reportEnd(); over {
			return nil
		}

		colour := s.game.Turn()
		if !s.cfg.Players.IsHuman(colour) {
			if err := s.computerMove(colour); err != nil {
				return err
			}
			s.render()
			continue
		}

		fmt.Fprintf(s.out, "%s to move> ", colour)
		if !s.in.Scan() {
			fmt.Fprintln(s.out)
			return s.in.Err()
		}
		quit, err := s.handleCommand(strings.TrimSpace(s.in.Text()))
		if err != nil {
			return err
		}
		if quit {
			return nil
		}
	}
}

// reportEnd prints the result and returns true once the game is over by
// rule or cut off by repetition or the ply limit.
func (s *Session) reportEnd() bool {
	g := s.game
	switch g.State() {
	case engine.CheckMate:
		fmt.Fprintf(s.out, "Checkmate. %s wins (%s)\n", g.Turn().Opposite(), g.Result())
		return true
	case engine.StaleMate:
		fmt.Fprintf(s.out, "Stalemate (%s)\n", g.Result())
		return true
	case engine.InsufficientMaterial:
		fmt.Fprintf(s.out, "Draw by insufficient material (%s)\n", g.Result())
		return true
	}
	if s.tracker.Repeated() {
		fmt.Fprintln(s.out, "Draw by repetition (1/2-1/2)")
		return true
	}
	if limit := s.cfg.Engine.MaxPlies; limit > 0 && g.Ply() >= limit {
		fmt.Fprintf(s.out, "Draw after %d plies (1/2-1/2)\n", g.Ply())
		return true
	}
	return false
}

func (s *Session) computerMove(colour chess.Colour) error {
	move, ok := s.selector.NextMove(s.game, colour)
	if !ok {
		return fmt.Errorf("no move for %s in %s", colour, s.game.FEN())
	}
	if err := s.game.Play(move); err != nil {
		return err
	}
	s.tracker.Record(s.game)
	fmt.Fprintf(s.out, "%s plays %s\n", colour, move)
	s.cfg.Logf(2, "ply %d: %s %s", s.game.Ply(), colour, move)
	return nil
}

// handleCommand runs one line of input. Mistakes are reported to the
// player and never end the session; only output failures are returned.
func (s *Session) handleCommand(line string) (quit bool, err error) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return false, nil
	}

	switch strings.ToLower(fields[0]) {
	case "quit", "exit":
		return true, nil
	case "help", "?":
		fmt.Fprint(s.out, commandHelp)
	case "fen":
		fmt.Fprintln(s.out, s.game.FEN())
	case "board":
		s.render()
	case "moves":
		s.listMoves(fields[1:])
	case "undo":
		s.undo()
	case "save":
		path := s.cfg.Storage.SavePath
		if len(fields) > 1 {
			path = fields[1]
		}
		s.save(path)
	default:
		s.humanMove(fields[0])
	}
	return false, nil
}

func (s *Session) listMoves(args []string) {
	if len(args) == 0 {
		s.listAllMoves()
		return
	}
	if len(args) != 1 {
		fmt.Fprintln(s.out, "usage: moves [square]")
		return
	}
	at, err := chess.ParsePosition(args[0])
	if err != nil {
		fmt.Fprintf(s.out, "%v\n", err)
		return
	}
	targets := s.game.MovesForPiece(at)
	if len(targets) == 0 {
		fmt.Fprintf(s.out, "no moves from %s\n", at)
		return
	}
	names := make([]string, len(targets))
	for i, to := range targets {
		names[i] = to.String()
	}
	fmt.Fprintf(s.out, "%s: %s\n", at, strings.Join(names, " "))
}

func (s *Session) listAllMoves() {
	moves := s.game.LegalMoves(s.game.Turn())
	names := make([]string, len(moves))
	for i, m := range moves {
		names[i] = m.String()
	}
	fmt.Fprintf(s.out, "%d moves: %s\n", len(moves), strings.Join(names, " "))
}

// undo takes back one ply, and a second one when that leaves the
// computer to move, so the player is back on turn.
func (s *Session) undo() {
	if err := s.game.TryUndo(); err != nil {
		fmt.Fprintf(s.out, "%v\n", err)
		return
	}
	if !s.cfg.Players.IsHuman(s.game.Turn()) && s.game.Ply() > 0 {
		s.game.Undo()
	}
	if err := s.tracker.Rebuild(s.game); err != nil {
		fmt.Fprintf(s.out, "%v\n", err)
	}
	s.render()
}

func (s *Session) save(path string) {
	snap := storage.NewSnapshot(s.game, s.cfg.Players, s.cfg.Output.Theme)
	if err := snap.SaveFile(path); err != nil {
		fmt.Fprintf(s.out, "save failed: %v\n", err)
		return
	}
	fmt.Fprintf(s.out, "Saved %q to %s\n", snap.Name, path)
	s.cfg.Logf(1, "Saved snapshot %s (%s) to %s", snap.ID, snap.Name, path)
}

func (s *Session) humanMove(text string) {
	move, err := chess.ParseMove(text)
	if err != nil {
		fmt.Fprintf(s.out, "%v (type help for commands)\n", err)
		return
	}
	if err := s.game.TryMove(move.From, move.To); err != nil {
		s.reportMoveError(err)
		return
	}

	if at, pending := s.game.PendingPromotion(); pending {
		to := move.Promotion
		if to == chess.NoPiece {
			to = s.askPromotion()
		}
		if err := s.game.TryPromote(at, to); err != nil {
			fmt.Fprintf(s.out, "%v; promoting to a queen\n", err)
			s.game.PromotePiece(at, chess.Queen)
		}
	}
	s.tracker.Record(s.game)
	s.render()
}

func (s *Session) reportMoveError(err error) {
	switch {
	case stderrors.Is(err, errors.ErrIllegalMove):
		fmt.Fprintln(s.out, "Illegal move")
	case stderrors.Is(err, errors.ErrGameOver):
		fmt.Fprintln(s.out, "The game is over")
	default:
		fmt.Fprintf(s.out, "%v\n", err)
	}
}

// askPromotion reads the promotion piece; anything unreadable is a queen.
func (s *Session) askPromotion() chess.PieceType {
	fmt.Fprint(s.out, "Promote to (q, r, b, n)> ")
	if !s.in.Scan() {
		return chess.Queen
	}
	text := strings.TrimSpace(s.in.Text())
	if text == "" {
		return chess.Queen
	}
	pt := chess.PieceTypeFromLetter(text[0])
	if !pt.IsPromotionTarget() {
		return chess.Queen
	}
	return pt
}

func (s *Session) render() {
	opts := output.RenderOptions{
		Theme:       s.theme,
		Coordinates: s.cfg.Output.Coordinates,
		Flip:        s.cfg.Players.IsHuman(chess.Black) && !s.cfg.Players.IsHuman(chess.White),
	}
	if err := output.RenderGame(s.out, s.game, opts); err != nil {
		s.cfg.Logf(1, "render: %v", err)
	}
	if s.game.State() == engine.Check {
		fmt.Fprintf(s.out, "%s is in check\n", s.game.Turn())
	}
	if s.cfg.Output.ShowFEN {
		fmt.Fprintln(s.out, s.game.FEN())
	}
}
