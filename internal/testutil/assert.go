// Package testutil provides shared test utilities for the chess-core-go project.
package testutil

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

// AssertEqual compares got and want using cmp.Diff and reports differences.
// The msgAndArgs are optional and provide additional context if the assertion fails.
func AssertEqual(t *testing.T, got, want interface{}, msgAndArgs ...interface{}) {
	t.Helper()
	if diff := cmp.Diff(want, got); diff != "" {
		fail(t, msgAndArgs, "mismatch (-want +got):\n%s", diff)
	}
}

// AssertNoError fails if err is not nil.
func AssertNoError(t *testing.T, err error, msgAndArgs ...interface{}) {
	t.Helper()
	if err != nil {
		fail(t, msgAndArgs, "unexpected error: %v", err)
	}
}

// AssertError fails if err is nil when an error was expected.
func AssertError(t *testing.T, err error, msgAndArgs ...interface{}) {
	t.Helper()
	if err == nil {
		fail(t, msgAndArgs, "expected error but got nil")
	}
}

// AssertErrorIs fails unless errors.Is(err, target).
func AssertErrorIs(t *testing.T, err, target error, msgAndArgs ...interface{}) {
	t.Helper()
	if !errors.Is(err, target) {
		fail(t, msgAndArgs, "error %v does not match %v", err, target)
	}
}

// AssertContains fails if substr is not found in got.
func AssertContains(t *testing.T, got, substr string, msgAndArgs ...interface{}) {
	t.Helper()
	if !strings.Contains(got, substr) {
		fail(t, msgAndArgs, "%q does not contain %q", got, substr)
	}
}

// AssertTrue fails if condition is false.
func AssertTrue(t *testing.T, condition bool, msgAndArgs ...interface{}) {
	t.Helper()
	if !condition {
		fail(t, msgAndArgs, "expected true but got false")
	}
}

// AssertFalse fails if condition is true.
func AssertFalse(t *testing.T, condition bool, msgAndArgs ...interface{}) {
	t.Helper()
	if condition {
		fail(t, msgAndArgs, "expected false but got true")
	}
}

// AssertNil fails if got is not nil.
// It handles both untyped nil and typed nil (e.g., (*chess.Piece)(nil)).
func AssertNil(t *testing.T, got interface{}, msgAndArgs ...interface{}) {
	t.Helper()
	if !isNil(got) {
		fail(t, msgAndArgs, "expected nil but got %v", got)
	}
}

// AssertNotNil fails if got is nil.
func AssertNotNil(t *testing.T, got interface{}, msgAndArgs ...interface{}) {
	t.Helper()
	if isNil(got) {
		fail(t, msgAndArgs, "expected non-nil value but got nil")
	}
}

// fail reports a failure, prefixed with the caller's optional message.
func fail(t *testing.T, msgAndArgs []interface{}, format string, args ...interface{}) {
	t.Helper()
	text := fmt.Sprintf(format, args...)
	if msg := formatMessage(msgAndArgs...); msg != "" {
		text = msg + ": " + text
	}
	t.Error(text)
}

// isNil checks if a value is nil, handling both untyped and typed nils.
func isNil(v interface{}) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Ptr, reflect.Interface, reflect.Slice, reflect.Map, reflect.Chan, reflect.Func:
		return rv.IsNil()
	}
	return false
}

// formatMessage formats optional message arguments into a string.
func formatMessage(msgAndArgs ...interface{}) string {
	if len(msgAndArgs) == 0 {
		return ""
	}
	s, ok := msgAndArgs[0].(string)
	if !ok {
		return fmt.Sprintf("%v", msgAndArgs[0])
	}
	if len(msgAndArgs) == 1 {
		return s
	}
	return fmt.Sprintf(s, msgAndArgs[1:]...)
}
