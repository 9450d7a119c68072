package output

import (
	"strings"

	"github.com/lgbarn/chess-core-go/internal/chess"
	"github.com/lgbarn/chess-core-go/internal/engine"
)

// PlyRecord is one half-move as it is written out.
type PlyRecord struct {
	MoveNumber int
	Colour     chess.Colour
	SAN        string
	UCI        string // empty for plies played before a restore
	Piece      chess.PieceKind
	Captured   chess.PieceKind
	Promotion  chess.PieceKind
}

// GameRecord is a finished (or abandoned) game ready for output.
type GameRecord struct {
	Tags           map[string]string
	Plies          []PlyRecord
	Result         string
	Outcome        engine.Outcome
	FinalPlacement string
	ActiveColour   chess.Colour
}

// NewGameRecord captures the moves and final state of g.
func NewGameRecord(g *engine.Game, tags map[string]string) *GameRecord {
	rec := &GameRecord{
		Tags:           copyTags(tags),
		Result:         g.Result(),
		Outcome:        g.Outcome(),
		FinalPlacement: g.BoardSnapshot().Placement(),
		ActiveColour:   g.ActiveColour(),
	}

	notation := g.Notation()
	history := g.History()
	prior := len(notation) - len(history)

	// Half-move index of the first ply; index 0 is White's first move.
	end := 2*(g.FullmoveNumber()-1) + blackOffset(g.ActiveColour())
	index := end - len(notation)
	if index < 0 {
		index = 0
	}

	rec.Plies = make([]PlyRecord, 0, len(notation))
	for i, san := range notation {
		ply := PlyRecord{
			MoveNumber: (index+i)/2 + 1,
			Colour:     chess.White,
			SAN:        san,
		}
		if (index+i)%2 == 1 {
			ply.Colour = chess.Black
		}
		if i >= prior {
			m := history[i-prior]
			ply.UCI = m.UCI()
			ply.Piece = m.Piece.Kind
			ply.Captured = m.Captured.Kind
			ply.Promotion = m.Promotion.Kind
		}
		rec.Plies = append(rec.Plies, ply)
	}
	return rec
}

func blackOffset(c chess.Colour) int {
	if c == chess.Black {
		return 1
	}
	return 0
}

// copyTags copies game tags so later changes by the caller are not seen.
func copyTags(tags map[string]string) map[string]string {
	result := make(map[string]string, len(tags))
	for k, v := range tags {
		result[k] = v
	}
	return result
}

// escapeTagValue escapes special characters in tag values.
func escapeTagValue(s string) string {
	// Fast path: if no escaping needed, return original string
	if !strings.ContainsAny(s, "\\\"") {
		return s
	}
	s = strings.ReplaceAll(s, "\\", "\\\\")
	s = strings.ReplaceAll(s, "\"", "\\\"")
	return s
}
