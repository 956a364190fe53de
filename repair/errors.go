package repair

import "fmt"

// ErrorKind identifies the class of failure recorded in an [Error].
type ErrorKind int

// Error kinds, exhaustive. OK is the zero value and is never returned as
// an error: on success [RepairEx] and [RepairWithDiagnostics] return a nil
// *Error. Whether any repairs were applied is reported separately, by the
// [RepairEvent] slice that RepairWithDiagnostics returns.
const (
	OK ErrorKind = iota
	InvalidInput
	InvalidUTF8
	UnterminatedString
	UnterminatedContainer
	UnterminatedNumber
	UnterminatedIdentifier
	UnexpectedToken
	NumericOverflow
	InternalError
)

var errorKindNames = [...]string{
	OK:                     "OK",
	InvalidInput:           "InvalidInput",
	InvalidUTF8:            "InvalidUTF8",
	UnterminatedString:     "UnterminatedString",
	UnterminatedContainer:  "UnterminatedContainer",
	UnterminatedNumber:     "UnterminatedNumber",
	UnterminatedIdentifier: "UnterminatedIdentifier",
	UnexpectedToken:        "UnexpectedToken",
	NumericOverflow:        "NumericOverflow",
	InternalError:          "InternalError",
}

// String returns the name of the error kind.
func (k ErrorKind) String() string {
	if k < 0 || int(k) >= len(errorKindNames) {
		return "Unknown"
	}
	return errorKindNames[k]
}

// Error is the structured diagnostic returned by [RepairEx] and the
// *Ex stream methods when a repair is not possible. Position always
// refers to a byte offset in the caller's original input, never to any
// preprocessed or normalised buffer.
type Error struct {
	Code     ErrorKind
	Position int
	Message  string
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s at byte %d: %s", e.Code, e.Position, e.Message)
}

func newError(code ErrorKind, pos int, format string, args ...any) *Error {
	return &Error{Code: code, Position: pos, Message: fmt.Sprintf(format, args...)}
}

// ErrInvalidInput is returned by Repair-family functions when the caller
// passes a nil input slice.
var ErrInvalidInput = &Error{Code: InvalidInput, Position: 0, Message: "input is nil"}

// RepairEventKind enumerates kinds of repair action. It is the Go-visible
// counterpart of spec's internal Repair Log; unlike the C ABI this port is
// not bound to, there is no reason to hide it from callers who want to
// know what was changed. The recovery parser records InsertedComma
// through DiscardedStrayToken and NormalizedLanguageLiteral;
// ClosedTruncatedString, SubstitutedInvalidUTF8 and
// NormalizedNumberLiteral are defined but no code path records them.
type RepairEventKind int

const (
	InsertedComma RepairEventKind = iota
	DroppedTrailingComma
	InsertedColon
	UnquotedKeyAccepted
	UnquotedValueAccepted
	SynthesizedClose
	DiscardedStrayToken
	ClosedTruncatedString
	SubstitutedInvalidUTF8
	NormalizedNumberLiteral
	NormalizedLanguageLiteral
)

var repairEventKindNames = [...]string{
	InsertedComma:             "InsertedComma",
	DroppedTrailingComma:      "DroppedTrailingComma",
	InsertedColon:             "InsertedColon",
	UnquotedKeyAccepted:       "UnquotedKeyAccepted",
	UnquotedValueAccepted:     "UnquotedValueAccepted",
	SynthesizedClose:          "SynthesizedClose",
	DiscardedStrayToken:       "DiscardedStrayToken",
	ClosedTruncatedString:     "ClosedTruncatedString",
	SubstitutedInvalidUTF8:    "SubstitutedInvalidUTF8",
	NormalizedNumberLiteral:   "NormalizedNumberLiteral",
	NormalizedLanguageLiteral: "NormalizedLanguageLiteral",
}

func (k RepairEventKind) String() string {
	if k < 0 || int(k) >= len(repairEventKindNames) {
		return "Unknown"
	}
	return repairEventKindNames[k]
}

// RepairEvent records a single repair action and the byte offset (in the
// original input) at which it was applied.
type RepairEvent struct {
	Kind     RepairEventKind
	Position int
}
