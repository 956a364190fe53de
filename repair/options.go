package repair

// Options is a flat bag of repair/emit knobs. The zero value is not
// directly usable by callers that want the documented defaults; use
// [NewOptions] to get one with SubstituteInvalidUTF8 enabled as spec'd.
//
// An *Options is read-only once construction is complete and observed by
// another goroutine; callers that mutate a shared Options after handing
// it to a concurrently-running [Repair] call must synchronise externally,
// same as the ABI's options record.
type Options struct {
	// EnsureASCII escapes every code point >= 0x80 as \uXXXX in the emitter.
	EnsureASCII bool
	// AllowPythonKeywords recognises True/False/None as boolean/null literals.
	AllowPythonKeywords bool
	// TolerateHashComments treats '#' outside strings as a line comment.
	TolerateHashComments bool
	// FencedCodeBlocks extracts JSON from the first ```-delimited block.
	FencedCodeBlocks bool
	// RepairUndefined maps a bare `undefined` keyword to null.
	RepairUndefined bool
	// NormalizeJSNonfinite maps NaN/Infinity/-Infinity to null.
	NormalizeJSNonfinite bool
	// NumberToleranceLeadingDot accepts ".5" as "0.5".
	NumberToleranceLeadingDot bool
	// NumberToleranceTrailingDot accepts "1." as "1.0".
	NumberToleranceTrailingDot bool
	// PythonStyleSeparators emits ", " and ": " instead of "," and ":".
	PythonStyleSeparators bool
	// AggressiveTruncationFix closes open strings/containers at EOF instead
	// of failing with UnterminatedString/UnterminatedContainer.
	AggressiveTruncationFix bool
	// StreamNDJSONAggregate makes stream output a single JSON array of
	// every value seen, instead of newline-delimited values.
	StreamNDJSONAggregate bool
	// SubstituteInvalidUTF8 replaces malformed UTF-8 with U+FFFD instead of
	// failing with InvalidUTF8. Defaults to true via NewOptions.
	SubstituteInvalidUTF8 bool
}

// NewOptions returns an Options with the package's documented defaults:
// everything off except SubstituteInvalidUTF8.
func NewOptions() *Options {
	return &Options{SubstituteInvalidUTF8: true}
}

// Clone returns a copy of o, or a fresh default Options if o is nil. Used
// internally so a nil *Options passed to RepairWithOptions behaves like
// Repair, and so a caller-owned Options is never mutated by the engine.
func (o *Options) Clone() *Options {
	if o == nil {
		return NewOptions()
	}
	cp := *o
	return &cp
}

// Setters mirror the ABI's options_set_* functions, returning the
// receiver so calls can be chained when building an Options fluently.

func (o *Options) SetEnsureASCII(v bool) *Options                 { o.EnsureASCII = v; return o }
func (o *Options) SetAllowPythonKeywords(v bool) *Options         { o.AllowPythonKeywords = v; return o }
func (o *Options) SetTolerateHashComments(v bool) *Options        { o.TolerateHashComments = v; return o }
func (o *Options) SetFencedCodeBlocks(v bool) *Options            { o.FencedCodeBlocks = v; return o }
func (o *Options) SetRepairUndefined(v bool) *Options             { o.RepairUndefined = v; return o }
func (o *Options) SetNormalizeJSNonfinite(v bool) *Options        { o.NormalizeJSNonfinite = v; return o }
func (o *Options) SetNumberToleranceLeadingDot(v bool) *Options   { o.NumberToleranceLeadingDot = v; return o }
func (o *Options) SetNumberToleranceTrailingDot(v bool) *Options  { o.NumberToleranceTrailingDot = v; return o }
func (o *Options) SetPythonStyleSeparators(v bool) *Options       { o.PythonStyleSeparators = v; return o }
func (o *Options) SetAggressiveTruncationFix(v bool) *Options     { o.AggressiveTruncationFix = v; return o }
func (o *Options) SetStreamNDJSONAggregate(v bool) *Options       { o.StreamNDJSONAggregate = v; return o }
func (o *Options) SetSubstituteInvalidUTF8(v bool) *Options       { o.SubstituteInvalidUTF8 = v; return o }
