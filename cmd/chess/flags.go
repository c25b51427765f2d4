// flags.go - Command-line flag definitions and configuration
package main

import (
	"flag"

	"github.com/lgbarn/chessrules-go/internal/config"
)

var (
	// Players
	whitePlayer = flag.String("white", "human", "Who plays white: human or computer")
	blackPlayer = flag.String("black", "computer", "Who plays black: human or computer")

	// Engine
	seed            = flag.Int64("seed", 1, "Seed for the computer's move choice")
	maxPlies        = flag.Int("maxplies", 400, "End the game as a draw after N plies (0 = no limit)")
	repetitionLimit = flag.Int("repetition", 3, "End the game as a draw when a position occurs N times (0 = never)")
	startFEN        = flag.String("fen", "", "Start from this FEN position")

	// Output options
	outputFile  = flag.String("o", "", "Output file (default: stdout)")
	logFile     = flag.String("l", "", "Write diagnostics to this file (default: stderr)")
	jsonOutput  = flag.Bool("J", false, "Report self-play games in JSON format")
	theme       = flag.String("theme", "classic", "Board theme: classic, green, mono")
	noCoords    = flag.Bool("nocoords", false, "Don't label ranks and files")
	showFEN     = flag.Bool("showfen", false, "Print the FEN after every move")
	noColor     = flag.Bool("nocolor", false, "Draw the board without colour")
	quiet       = flag.Bool("s", false, "Silent mode (no diagnostics)")
	verbose     = flag.Bool("v", false, "Running commentary on the log stream")
	showVersion = flag.Bool("version", false, "Show version")
	help        = flag.Bool("h", false, "Show help")

	// Storage
	savePath = flag.String("save", "chess-save.json", "Default file for the save command")
	loadPath = flag.String("load", "", "Resume the game saved in this file")

	// Self-play
	selfPlayGames = flag.Int("selfplay", 0, "Play N computer-versus-computer games and report them")
	workers       = flag.Int("workers", 0, "Games played at once in self-play (0 = one per CPU)")
)

// applyFlags applies command-line flags to the configuration.
func applyFlags(cfg *config.Config) error {
	if err := applyPlayerFlags(cfg); err != nil {
		return err
	}
	applyEngineFlags(cfg)
	applyOutputFlags(cfg)
	applyStorageFlags(cfg)
	applySelfPlayFlags(cfg)

	switch {
	case *quiet:
		cfg.Verbosity = 0
	case *verbose:
		cfg.Verbosity = 2
	}
	return cfg.Validate()
}

// applyPlayerFlags sets who plays each side.
func applyPlayerFlags(cfg *config.Config) error {
	white, err := config.ParsePlayerKind(*whitePlayer)
	if err != nil {
		return err
	}
	black, err := config.ParsePlayerKind(*blackPlayer)
	if err != nil {
		return err
	}
	cfg.Players.White = white
	cfg.Players.Black = black
	return nil
}

// applyEngineFlags configures the selector and game cut-offs.
func applyEngineFlags(cfg *config.Config) {
	cfg.Engine.Seed = *seed
	cfg.Engine.MaxPlies = *maxPlies
	cfg.Engine.RepetitionLimit = *repetitionLimit
	cfg.Engine.StartFEN = *startFEN
}

// applyOutputFlags configures rendering and report format.
func applyOutputFlags(cfg *config.Config) {
	cfg.Output.Theme = *theme
	cfg.Output.JSONFormat = *jsonOutput
	cfg.Output.Coordinates = !*noCoords
	cfg.Output.ShowFEN = *showFEN
	cfg.Output.NoColor = *noColor
}

// applyStorageFlags configures save and load paths.
func applyStorageFlags(cfg *config.Config) {
	cfg.Storage.SavePath = *savePath
	cfg.Storage.LoadPath = *loadPath
}

// applySelfPlayFlags configures batch play.
func applySelfPlayFlags(cfg *config.Config) {
	cfg.SelfPlay.Games = *selfPlayGames
	cfg.SelfPlay.Workers = *workers
}
