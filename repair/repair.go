package repair

// Repair repairs input into strict JSON text using default Options. The
// second return value is false if input is nil or could not be repaired
// at all; use RepairEx for the reason.
func Repair(input []byte) (string, bool) {
	return RepairWithOptions(input, nil)
}

// RepairWithOptions is Repair with caller-supplied Options. A nil opts
// behaves like Repair.
func RepairWithOptions(input []byte, opts *Options) (string, bool) {
	out, _, err := RepairEx(input, opts)
	return out, err == nil
}

// RepairEx is RepairWithOptions with a structured diagnostic: on success
// err is nil, on failure out is empty and err describes why, including
// the byte offset in input the failure occurred at.
func RepairEx(input []byte, opts *Options) (string, *Error, error) {
	out, _, apiErr := repairFull(input, opts)
	if apiErr != nil {
		return "", apiErr, apiErr
	}
	return out, nil, nil
}

// RepairWithDiagnostics is the richest entry point: it returns the
// repaired text, the ordered log of every repair action applied (even on
// success, unlike the plain Repair family — there is no ABI boundary
// here forcing that information to stay hidden), and an *Error that is
// non-nil only on failure.
func RepairWithDiagnostics(input []byte, opts *Options) (string, []RepairEvent, *Error) {
	return repairFull(input, opts)
}

func repairFull(input []byte, opts *Options) (string, []RepairEvent, *Error) {
	if input == nil {
		return "", nil, ErrInvalidInput
	}
	o := opts.Clone()
	pp := preprocess(input, o)

	val, events, pos, err := parseOneValue(pp.data, o)
	for i := range events {
		events[i].Position += pp.base
	}
	if err != nil {
		apiErr := toAPIError(err, pos)
		apiErr.Position += pp.base
		return "", events, apiErr
	}

	return Emit(val, o), events, nil
}

// engineVersion is the semantic version of the repair engine itself, the
// Go analogue of the ABI's jsonrepair_version(). It tracks the engine's
// repair-behavior contract, not the module's own release tags.
const engineVersion = "1.0.0"

// Version returns the repair engine's semantic version string.
func Version() string {
	return engineVersion
}
