package config

import "io"

// ConfigBuilder provides a fluent API for building Config instances.
type ConfigBuilder struct {
	cfg *Config
}

// NewConfigBuilder creates a new ConfigBuilder with default values.
func NewConfigBuilder() *ConfigBuilder {
	return &ConfigBuilder{
		cfg: NewConfig(),
	}
}

// Build returns the built Config.
func (b *ConfigBuilder) Build() *Config {
	return b.cfg
}

// WithPlayers sets who plays each side.
func (b *ConfigBuilder) WithPlayers(white, black PlayerKind) *ConfigBuilder {
	b.cfg.Players.White = white
	b.cfg.Players.Black = black
	return b
}

// WithSeed sets the selector seed.
func (b *ConfigBuilder) WithSeed(seed int64) *ConfigBuilder {
	b.cfg.Engine.Seed = seed
	return b
}

// WithMaxPlies sets the ply limit.
func (b *ConfigBuilder) WithMaxPlies(plies int) *ConfigBuilder {
	b.cfg.Engine.MaxPlies = plies
	return b
}

// WithRepetitionLimit sets how many occurrences of a position end a game.
func (b *ConfigBuilder) WithRepetitionLimit(limit int) *ConfigBuilder {
	b.cfg.Engine.RepetitionLimit = limit
	return b
}

// WithStartFEN sets the starting position.
func (b *ConfigBuilder) WithStartFEN(fen string) *ConfigBuilder {
	b.cfg.Engine.StartFEN = fen
	return b
}

// WithTheme sets the board theme.
func (b *ConfigBuilder) WithTheme(theme string) *ConfigBuilder {
	b.cfg.Output.Theme = theme
	return b
}

// WithJSONOutput enables JSON output.
func (b *ConfigBuilder) WithJSONOutput(enabled bool) *ConfigBuilder {
	b.cfg.Output.JSONFormat = enabled
	return b
}

// WithSavePath sets the default save file.
func (b *ConfigBuilder) WithSavePath(path string) *ConfigBuilder {
	b.cfg.Storage.SavePath = path
	return b
}

// WithSelfPlay requests a batch of games played on workers.
func (b *ConfigBuilder) WithSelfPlay(games, workers int) *ConfigBuilder {
	b.cfg.SelfPlay.Games = games
	b.cfg.SelfPlay.Workers = workers
	return b
}

// WithInput sets the input reader.
func (b *ConfigBuilder) WithInput(r io.Reader) *ConfigBuilder {
	b.cfg.InputFile = r
	return b
}

// WithOutput sets the output writer.
func (b *ConfigBuilder) WithOutput(w io.Writer) *ConfigBuilder {
	b.cfg.OutputFile = w
	return b
}

// WithLog sets the log writer.
func (b *ConfigBuilder) WithLog(w io.Writer) *ConfigBuilder {
	b.cfg.LogFile = w
	return b
}

// WithVerbosity sets the verbosity level.
func (b *ConfigBuilder) WithVerbosity(level int) *ConfigBuilder {
	b.cfg.Verbosity = level
	return b
}
