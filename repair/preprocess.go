package repair

import "bytes"

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

var fenceMarker = []byte("```")

// preprocessed is the result of the preprocessing stage: the slice the
// tokenizer should actually read, plus the byte offset (within the
// caller's original input) at which that slice begins. Every position the
// tokenizer/parser compute against data must have base added back before
// it is surfaced in a [RepairEvent] or [Error], so diagnostics always
// refer to the original input as spec requires.
type preprocessed struct {
	data []byte
	base int
}

// preprocess strips a leading BOM (always) and, when enabled, extracts
// the first fenced code block. Whitespace trimming is left to the
// tokenizer, which already skips whitespace between tokens.
func preprocess(input []byte, opts *Options) preprocessed {
	base := 0
	data := input

	if bytes.HasPrefix(data, utf8BOM) {
		data = data[len(utf8BOM):]
		base += len(utf8BOM)
	}

	if opts.FencedCodeBlocks {
		if start, end, ok := findFence(data); ok {
			base += start
			data = data[start:end]
		}
	}

	return preprocessed{data: data, base: base}
}

// findFence locates the first ```-delimited region: from the byte after
// the opening fence's terminating newline, to the start of the matching
// closing fence (or end of input if none is found). Only the first fence
// is ever considered; trailing text after a closing fence is ignored.
func findFence(data []byte) (start, end int, ok bool) {
	open := bytes.Index(data, fenceMarker)
	if open < 0 {
		return 0, 0, false
	}
	afterOpen := open + len(fenceMarker)

	nl := bytes.IndexByte(data[afterOpen:], '\n')
	if nl < 0 {
		// Fence opened but never terminated by a newline: nothing to
		// extract, fall back to treating the whole input as JSON.
		return 0, 0, false
	}
	bodyStart := afterOpen + nl + 1

	if closeRel := bytes.Index(data[bodyStart:], fenceMarker); closeRel >= 0 {
		return bodyStart, bodyStart + closeRel, true
	}
	return bodyStart, len(data), true
}
