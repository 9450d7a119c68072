package output

import (
	"encoding/json"
	"strings"

	"github.com/lgbarn/chess-core-go/internal/chess"
)

// JSONGame represents a game in JSON format.
type JSONGame struct {
	Tags           map[string]string `json:"tags"`
	Moves          []JSONMove        `json:"moves,omitempty"`
	Result         string            `json:"result"`
	Outcome        string            `json:"outcome"`
	PlyCount       int               `json:"plyCount"`
	FinalPlacement string            `json:"finalPlacement,omitempty"`
	ToMove         string            `json:"toMove"`
}

// JSONMove represents a move in JSON format.
type JSONMove struct {
	MoveNumber int    `json:"moveNumber,omitempty"`
	Color      string `json:"color"` // "white" or "black"
	SAN        string `json:"san"`
	UCI        string `json:"uci,omitempty"`
	Piece      string `json:"piece,omitempty"`
	Captured   string `json:"captured,omitempty"`
	Promotion  string `json:"promotion,omitempty"`
}

// JSONOutput holds multiple games for array output.
type JSONOutput struct {
	Games []*JSONGame `json:"games"`
}

// GameToJSON converts a game record to JSON format.
func GameToJSON(rec *GameRecord) *JSONGame {
	jg := &JSONGame{
		Tags:           copyTags(rec.Tags),
		Moves:          make([]JSONMove, 0, len(rec.Plies)),
		Result:         rec.Result,
		Outcome:        rec.Outcome.String(),
		PlyCount:       len(rec.Plies),
		FinalPlacement: rec.FinalPlacement,
		ToMove:         colorName(rec.ActiveColour),
	}
	for _, ply := range rec.Plies {
		jm := JSONMove{
			Color:     colorName(ply.Colour),
			SAN:       ply.SAN,
			UCI:       ply.UCI,
			Piece:     pieceTypeName(ply.Piece),
			Captured:  pieceTypeName(ply.Captured),
			Promotion: pieceTypeName(ply.Promotion),
		}
		if ply.Colour == chess.White {
			jm.MoveNumber = ply.MoveNumber
		}
		jg.Moves = append(jg.Moves, jm)
	}
	return jg
}

// colorName returns "white" or "black".
func colorName(c chess.Colour) string {
	if c == chess.White {
		return "white"
	}
	return "black"
}

// pieceTypeName returns the piece kind as a lower-case word, or "" for none.
func pieceTypeName(k chess.PieceKind) string {
	if k == chess.NoKind {
		return ""
	}
	return strings.ToLower(k.String())
}

func encodeIndented(enc *json.Encoder, v interface{}) error {
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
