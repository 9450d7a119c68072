package processing

import (
	"fmt"
	"strings"

	"github.com/lgbarn/chess-core-go/internal/errors"
)

// GameLine is one game read from input: coordinate moves plus an optional
// claimed result.
type GameLine struct {
	Moves  []string
	Result string // "" when the line does not end with a result
}

// ParseLine splits a game line into moves. Move numbers such as "1." are
// skipped. Blank lines and lines starting with '#' hold no game and return
// ok=false.
func ParseLine(text string) (line GameLine, ok bool, err error) {
	text = strings.TrimSpace(text)
	if text == "" || strings.HasPrefix(text, "#") {
		return GameLine{}, false, nil
	}

	fields := strings.Fields(text)
	for i, field := range fields {
		if isValidResult(field) {
			if i != len(fields)-1 {
				return GameLine{}, false, fmt.Errorf("result %q before end of game: %w", field, errors.ErrParseFailure)
			}
			line.Result = field
			break
		}
		if isMoveNumber(field) {
			continue
		}
		line.Moves = append(line.Moves, field)
	}
	return line, true, nil
}

// isMoveNumber reports whether field looks like "12." or "12...".
func isMoveNumber(field string) bool {
	digits := strings.TrimRight(field, ".")
	if digits == field || digits == "" {
		return false
	}
	for _, r := range digits {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// isValidResult checks if a result string is a valid game result.
func isValidResult(result string) bool {
	switch result {
	case "1-0", "0-1", "1/2-1/2", "*":
		return true
	default:
		return false
	}
}
