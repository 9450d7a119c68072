package output

import (
	"encoding/json"
	"io"

	"github.com/lgbarn/chess-core-go/internal/config"
)

// GameWriter is the interface for writing games to output.
// Different implementations handle different output formats (text, JSON).
type GameWriter interface {
	// WriteGame writes a single game to the output.
	WriteGame(rec *GameRecord) error

	// Flush flushes any buffered data to the underlying writer.
	Flush() error

	// Close closes the writer and releases any resources.
	// For batch writers (like JSON), this also writes any pending output.
	Close() error
}

// NewWriter returns the writer for the configured output format.
func NewWriter(w io.Writer, cfg *config.Config) GameWriter {
	if cfg.Output.Format == config.JSONFormat {
		return NewJSONWriter(w)
	}
	return NewTextWriter(w, cfg)
}

// TextWriter writes games as numbered move text, in SAN or UCI.
type TextWriter struct {
	w   io.Writer
	cfg *config.Config
}

// NewTextWriter creates a new text writer.
func NewTextWriter(w io.Writer, cfg *config.Config) *TextWriter {
	return &TextWriter{
		w:   w,
		cfg: cfg,
	}
}

// WriteGame writes a game as move text.
func (tw *TextWriter) WriteGame(rec *GameRecord) error {
	OutputGame(rec, tw.cfg, tw.w)
	return nil
}

// Flush flushes the text writer (no-op as it writes immediately).
func (tw *TextWriter) Flush() error {
	return nil
}

// Close closes the text writer.
func (tw *TextWriter) Close() error {
	return nil
}

// JSONWriter writes games in JSON format.
// It buffers games and writes them as a JSON array on Close or Flush.
type JSONWriter struct {
	w      io.Writer
	games  []*GameRecord
	single bool // If true, write each game immediately instead of batching
}

// NewJSONWriter creates a new JSON writer.
// By default, it batches games and writes them as an array on Close().
func NewJSONWriter(w io.Writer) *JSONWriter {
	return &JSONWriter{
		w:      w,
		games:  make([]*GameRecord, 0),
		single: false,
	}
}

// NewJSONWriterSingle creates a JSON writer that writes each game immediately.
func NewJSONWriterSingle(w io.Writer) *JSONWriter {
	return &JSONWriter{
		w:      w,
		single: true,
	}
}

// WriteGame buffers a game for JSON output (or writes immediately in single mode).
func (jw *JSONWriter) WriteGame(rec *GameRecord) error {
	if jw.single {
		return encodeIndented(json.NewEncoder(jw.w), GameToJSON(rec))
	}

	// Buffer for batch output
	jw.games = append(jw.games, rec)
	return nil
}

// Flush writes all buffered games as a JSON array.
func (jw *JSONWriter) Flush() error {
	if jw.single || len(jw.games) == 0 {
		return nil
	}

	output := &JSONOutput{
		Games: make([]*JSONGame, 0, len(jw.games)),
	}
	for _, rec := range jw.games {
		output.Games = append(output.Games, GameToJSON(rec))
	}

	err := encodeIndented(json.NewEncoder(jw.w), output)

	// Clear buffer after writing
	jw.games = jw.games[:0]

	return err
}

// Close flushes and closes the JSON writer.
func (jw *JSONWriter) Close() error {
	return jw.Flush()
}
