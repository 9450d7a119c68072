// Package output writes replayed games as move text or JSON.
package output

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/lgbarn/chess-core-go/internal/chess"
	"github.com/lgbarn/chess-core-go/internal/config"
)

// OutputWriter handles formatted output with line length control.
type OutputWriter struct {
	w             io.Writer
	lineLength    int
	maxLineLength int
	needsSpace    bool
}

// NewOutputWriter creates a new output writer. A non-positive
// maxLineLength disables wrapping.
func NewOutputWriter(w io.Writer, maxLineLength int) *OutputWriter {
	return &OutputWriter{
		w:             w,
		maxLineLength: maxLineLength,
	}
}

// Write writes a string, adding a space separator if needed.
func (o *OutputWriter) Write(s string) {
	if o.needsSpace && len(s) > 0 {
		// Check if we need a new line
		if o.maxLineLength > 0 && o.lineLength+1+len(s) > o.maxLineLength {
			fmt.Fprintln(o.w)
			o.lineLength = 0
			o.needsSpace = false
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

// OutputGame writes a game as tags followed by numbered move text.
func OutputGame(rec *GameRecord, cfg *config.Config, w io.Writer) {
	if len(rec.Tags) > 0 {
		outputTags(rec, w)
		// Blank line between tags and moves
		fmt.Fprintln(w)
	}

	outputMoves(rec, cfg, w)

	// Blank line between games
	fmt.Fprintln(w)
}

// outputTags outputs the game tags in name order.
func outputTags(rec *GameRecord, w io.Writer) {
	names := make([]string, 0, len(rec.Tags))
	for name := range rec.Tags {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		fmt.Fprintf(w, "[%s \"%s\"]\n", name, escapeTagValue(rec.Tags[name]))
	}
}

// outputMoves outputs the game moves.
func outputMoves(rec *GameRecord, cfg *config.Config, w io.Writer) {
	ow := NewOutputWriter(w, int(cfg.Output.MaxLineLength))

	for i, ply := range rec.Plies {
		// Output move number
		if cfg.Output.KeepMoveNumbers {
			if ply.Colour == chess.White {
				ow.Write(fmt.Sprintf("%d.", ply.MoveNumber))
			} else if i == 0 {
				// Black to move at start
				ow.Write(fmt.Sprintf("%d...", ply.MoveNumber))
			}
		}

		ow.Write(formatPly(ply, cfg))
	}

	// Output result
	if cfg.Output.KeepResults {
		ow.Write(rec.Result)
	}
	if cfg.Output.KeepOutcome {
		ow.Write("{" + rec.Outcome.String() + "}")
	}

	ow.NewLine()
}

// formatPly formats a ply in the configured notation.
func formatPly(ply PlyRecord, cfg *config.Config) string {
	switch cfg.Output.Format {
	case config.UCIFormat:
		if ply.UCI != "" {
			return ply.UCI
		}
		return ply.SAN
	default:
		if !cfg.Output.KeepChecks {
			return strings.TrimRight(ply.SAN, "+#")
		}
		return ply.SAN
	}
}
