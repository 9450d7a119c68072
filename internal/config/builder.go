package config

import (
	"io"

	"github.com/lgbarn/chess-core-go/internal/chess"
)

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

// WithOutputFormat sets the output format.
func (b *ConfigBuilder) WithOutputFormat(format OutputFormat) *ConfigBuilder {
	b.cfg.Output.Format = format
	return b
}

// WithMaxLineLength sets the maximum line length.
func (b *ConfigBuilder) WithMaxLineLength(length uint) *ConfigBuilder {
	b.cfg.Output.MaxLineLength = length
	return b
}

// WithOutcome appends the outcome description to each game.
func (b *ConfigBuilder) WithOutcome(enabled bool) *ConfigBuilder {
	b.cfg.Output.KeepOutcome = enabled
	return b
}

// WithWorkers sets the number of replay workers.
func (b *ConfigBuilder) WithWorkers(n int) *ConfigBuilder {
	b.cfg.Replay.Workers = n
	return b
}

// WithStopOnError stops the run at the first rejected game.
func (b *ConfigBuilder) WithStopOnError(enabled bool) *ConfigBuilder {
	b.cfg.Replay.StopOnError = enabled
	return b
}

// WithDefaultPromotion sets the piece chosen when a promotion names none.
func (b *ConfigBuilder) WithDefaultPromotion(kind chess.PieceKind) *ConfigBuilder {
	b.cfg.Replay.DefaultPromotion = kind
	return b
}

// WithMaxPlies limits the plies replayed per game.
func (b *ConfigBuilder) WithMaxPlies(n int) *ConfigBuilder {
	b.cfg.Replay.MaxPlies = n
	return b
}

// WithCheckOnly validates games without writing them.
func (b *ConfigBuilder) WithCheckOnly(enabled bool) *ConfigBuilder {
	b.cfg.Replay.CheckOnly = enabled
	return b
}

// WithDatabase sets the SQLite path and whether games are saved to it.
func (b *ConfigBuilder) WithDatabase(path string, save bool) *ConfigBuilder {
	b.cfg.Storage.DatabasePath = path
	b.cfg.Storage.SaveGames = save
	return b
}

// WithResume loads the stored game id and plays moves on it.
func (b *ConfigBuilder) WithResume(id, moves string) *ConfigBuilder {
	b.cfg.Storage.LoadID = id
	b.cfg.Storage.ResumeMoves = moves
	return b
}

// WithDuplicateSuppression enables duplicate suppression.
func (b *ConfigBuilder) WithDuplicateSuppression(enabled bool) *ConfigBuilder {
	b.cfg.Duplicate.Suppress = enabled
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
