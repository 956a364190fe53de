package repair

import (
	"bytes"
	"strings"
	"unicode"
)

// Stream is the push-based driver described by spec's Stream State: feed
// it chunks of possibly-incomplete input with Push, and call Flush when
// no more input is coming. A Stream is not safe for concurrent use by
// multiple goroutines, matching the ABI's stream handle semantics.
type Stream struct {
	opts    *Options
	carry   []byte
	sawBOM  bool
	aggOpen bool
	base    int // absolute stream offset of carry[0], for diagnostic positions
}

// NewStream creates a Stream. A nil opts is equivalent to NewOptions().
func NewStream(opts *Options) *Stream {
	return &Stream{opts: opts.Clone()}
}

// Push feeds chunk into the stream and returns any complete repaired
// value(s) it was able to produce, newline-joined (or array-aggregated,
// see Options.StreamNDJSONAggregate). Errors encountered mid-stream are
// swallowed, matching the ABI's non-diagnostic push(); use PushEx for the
// error detail and resync position.
func (s *Stream) Push(chunk []byte) (string, bool) {
	out, ok, _ := s.PushEx(chunk)
	return out, ok
}

// PushEx is Push with full diagnostics: a non-nil *Error reports a
// lexical error the driver recovered from by skipping to the next
// plausible value start, not a fatal condition for the stream.
func (s *Stream) PushEx(chunk []byte) (string, bool, *Error) {
	s.carry = append(s.carry, chunk...)
	if !s.sawBOM {
		stripped := bytes.TrimPrefix(s.carry, utf8BOM)
		s.base += len(s.carry) - len(stripped)
		s.carry = stripped
		s.sawBOM = true
	}

	var batch []string
	var resyncErr *Error

	for {
		trimmed := bytes.TrimLeft(s.carry, " \t\r\n")
		if len(trimmed) == 0 {
			s.base += len(s.carry)
			s.carry = nil
			break
		}

		val, consumed, err := tryParseOne(s.carry, s.opts)
		if err != nil {
			if isIncompleteErr(err) {
				break
			}
			apiErr := toAPIError(err, 0)
			skip := nextPlausibleStart(s.carry, apiErr.Position+1)
			apiErr.Position += s.base
			s.base += skip
			s.carry = s.carry[skip:]
			if resyncErr == nil {
				resyncErr = apiErr
			}
			continue
		}

		batch = append(batch, Emit(val, s.opts))
		s.base += consumed
		s.carry = s.carry[consumed:]
	}

	if len(batch) == 0 {
		return "", false, resyncErr
	}
	if s.opts.StreamNDJSONAggregate {
		return s.appendAggregate(batch), true, resyncErr
	}
	return strings.Join(batch, "\n"), true, resyncErr
}

// Flush signals end-of-input: any bytes still held in the carry buffer
// are parsed with aggressive truncation repair forced on, since there is
// no more input that could complete them. Flush is terminal; the Stream
// should not be pushed to again afterward.
func (s *Stream) Flush() (string, bool) {
	out, ok, _ := s.FlushEx()
	return out, ok
}

// FlushEx is Flush with full diagnostics.
func (s *Stream) FlushEx() (string, bool, *Error) {
	trimmed := bytes.TrimSpace(s.carry)
	lead := len(s.carry) - len(bytes.TrimLeftFunc(s.carry, unicode.IsSpace))
	s.carry = nil
	if len(trimmed) == 0 {
		return s.closeAggregate(), s.aggOpen, nil
	}

	flushOpts := s.opts.Clone()
	flushOpts.AggressiveTruncationFix = true
	val, _, _, err := parseOneValue(trimmed, flushOpts)
	if err != nil {
		apiErr := toAPIError(err, 0)
		apiErr.Position += s.base + lead
		return "", false, apiErr
	}

	text := Emit(val, s.opts)
	if s.opts.StreamNDJSONAggregate {
		return s.appendAggregate([]string{text}) + s.closeAggregate(), true, nil
	}
	return text, true, nil
}

// appendAggregate renders batch as fragments of a running JSON array,
// opening it with '[' on the first value ever seen and separating
// subsequent values with a comma. closeAggregate later supplies the ']'.
func (s *Stream) appendAggregate(batch []string) string {
	var sb strings.Builder
	for _, v := range batch {
		if !s.aggOpen {
			sb.WriteByte('[')
			s.aggOpen = true
		} else {
			writeSeparator(&sb, s.opts)
		}
		sb.WriteString(v)
	}
	return sb.String()
}

// closeAggregate emits the closing ']' for NDJSON aggregate mode. A
// stream that never produced a value still closes as an empty array: a
// caller that turned on aggregation and got nothing back should still
// receive valid JSON, not silence.
func (s *Stream) closeAggregate() string {
	if !s.opts.StreamNDJSONAggregate {
		return ""
	}
	if !s.aggOpen {
		s.aggOpen = true
		return "[]"
	}
	return "]"
}

func isIncompleteErr(err error) bool {
	apiErr, ok := err.(*Error)
	if !ok {
		return false
	}
	switch apiErr.Code {
	case UnterminatedString, UnterminatedContainer, UnterminatedNumber, UnterminatedIdentifier:
		return true
	}
	return false
}

func toAPIError(err error, fallbackPos int) *Error {
	if apiErr, ok := err.(*Error); ok {
		return apiErr
	}
	return newError(InternalError, fallbackPos, "%v", err)
}

// nextPlausibleStart scans data for the next byte, at or after from,
// that could begin a JSON value: a container open, a quote, a digit, a
// sign, or an identifier start. It returns len(data) if none is found,
// meaning the remainder of the carry buffer is discarded.
func nextPlausibleStart(data []byte, from int) int {
	if from < 0 {
		from = 0
	}
	for i := from; i < len(data); i++ {
		b := data[i]
		switch {
		case b == '{' || b == '[' || b == '"' || b == '\'' || b == '-':
			return i
		case isDigit(b):
			return i
		case isIdentStart(b):
			return i
		}
	}
	return len(data)
}
