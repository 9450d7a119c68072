// Package errors provides sentinel errors and error types for the chess core.
// It defines the rules-engine error taxonomy and structured error types that
// preserve context while allowing inspection with errors.Is() and errors.As().
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for common failure conditions.
// Use these with errors.Is() to check for specific error types.
var (
	// ErrInvalidPosition indicates coordinates outside the 8x8 board.
	ErrInvalidPosition = errors.New("invalid position")

	// ErrPositionOccupied indicates a square that had to be empty was not.
	ErrPositionOccupied = errors.New("position occupied")

	// ErrNoPiece indicates a missing piece where one was required.
	ErrNoPiece = errors.New("no piece")

	// ErrInvalidMove indicates a destination outside the mover's legal set.
	ErrInvalidMove = errors.New("invalid move")

	// ErrWrongTurn indicates a piece of the colour not on move.
	ErrWrongTurn = errors.New("not this colour's turn")

	// ErrKingExposed indicates a move that would leave the mover's king in check.
	ErrKingExposed = errors.New("move leaves king in check")

	// ErrInvalidPromotion indicates a promotion choice other than Q, R, B or N.
	ErrInvalidPromotion = errors.New("invalid promotion piece")

	// ErrDuplicatePiece indicates a piece that is already registered on a board.
	ErrDuplicatePiece = errors.New("piece already on board")

	// ErrInvalidState indicates a persisted game state that breaks board invariants.
	ErrInvalidState = errors.New("invalid game state")

	// ErrGameNotFound indicates an unknown stored game.
	ErrGameNotFound = errors.New("game not found")

	// ErrInvalidConfig indicates invalid configuration values.
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrParseFailure indicates malformed move or square text.
	ErrParseFailure = errors.New("parse failure")
)

// MoveError wraps a rejected move request with its coordinates and ply.
// It implements the error interface and supports unwrapping via errors.Is()
// and errors.As().
type MoveError struct {
	Err  error  // The underlying error
	From string // Origin square in algebraic form (if known)
	To   string // Destination square in algebraic form (if known)
	Ply  int    // 1-based ply the move was attempted at (0 if not applicable)
}

// Error returns a formatted error message including all available context.
func (e *MoveError) Error() string {
	var parts []string

	if e.Ply > 0 {
		parts = append(parts, fmt.Sprintf("ply %d", e.Ply))
	}

	switch {
	case e.From != "" && e.To != "":
		parts = append(parts, fmt.Sprintf("move %s-%s", e.From, e.To))
	case e.From != "":
		parts = append(parts, fmt.Sprintf("from %s", e.From))
	case e.To != "":
		parts = append(parts, fmt.Sprintf("to %s", e.To))
	}

	context := strings.Join(parts, ", ")
	if context == "" {
		if e.Err != nil {
			return e.Err.Error()
		}
		return "move error"
	}
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", context, e.Err)
	}
	return context
}

// Unwrap returns the underlying error, enabling errors.Is() and errors.As()
// to work through the MoveError wrapper.
func (e *MoveError) Unwrap() error {
	return e.Err
}

// ParseError represents a failure to read a game script with location context.
type ParseError struct {
	Err  error  // The underlying error
	File string // Source file name
	Line int    // Line number (1-based)
	Got  string // The offending text
}

// Error returns a formatted error message with location and context.
func (e *ParseError) Error() string {
	var parts []string

	if e.File != "" {
		loc := e.File
		if e.Line > 0 {
			loc += fmt.Sprintf(":%d", e.Line)
		}
		parts = append(parts, loc)
	}

	if e.Got != "" {
		parts = append(parts, fmt.Sprintf("at %q", e.Got))
	}

	if e.Err != nil {
		if len(parts) > 0 {
			return fmt.Sprintf("%s: %v", strings.Join(parts, ": "), e.Err)
		}
		return e.Err.Error()
	}

	if len(parts) > 0 {
		return strings.Join(parts, ": ")
	}
	return "parse error"
}

// Unwrap returns the underlying error.
func (e *ParseError) Unwrap() error {
	return e.Err
}

// Wrap adds context to an error while preserving the underlying error
// for inspection with errors.Is() and errors.As().
func Wrap(err error, context string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", context, err)
}

// Wrapf adds formatted context to an error while preserving the underlying
// error for inspection with errors.Is() and errors.As().
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return Wrap(err, fmt.Sprintf(format, args...))
}

// Is reports whether any error in err's tree matches target.
// It lets packages that import this one avoid shadowing the standard library.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's tree that matches target.
func As(err error, target interface{}) bool {
	return errors.As(err, target)
}
