package goal

import "fmt"

// The error taxonomy for document loading. Every failure is one of four
// kinds; all of them are fatal for the document being loaded. Callers match
// with errors.As to decide how to report.

// SchemaError reports a structural problem: a wrong or missing table header,
// a missing required row, or an ambiguous number of tables.
type SchemaError struct{ msg string }

func (e *SchemaError) Error() string { return e.msg }

func schemaErrorf(format string, args ...any) error {
	return &SchemaError{msg: fmt.Sprintf(format, args...)}
}

// ValueError reports a malformed field value: a bad username, an
// unparseable status label or issue reference, or an empty tracking issue on
// an accepted goal.
type ValueError struct{ msg string }

func (e *ValueError) Error() string { return e.msg }

func valueErrorf(format string, args ...any) error {
	return &ValueError{msg: fmt.Sprintf(format, args...)}
}

// ReferenceError reports a value that does not resolve against one of the
// external registries: an unknown team name or an unrecognized ask phrase.
// The message enumerates the valid set.
type ReferenceError struct{ msg string }

func (e *ReferenceError) Error() string { return e.msg }

func referenceErrorf(format string, args ...any) error {
	return &ReferenceError{msg: fmt.Sprintf(format, args...)}
}

// InvariantError reports a document-level rule violation, such as an
// accepted or proposed goal with no team asks.
type InvariantError struct{ msg string }

func (e *InvariantError) Error() string { return e.msg }

func invariantErrorf(format string, args ...any) error {
	return &InvariantError{msg: fmt.Sprintf(format, args...)}
}
