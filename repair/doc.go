// Package repair turns malformed JSON-like text — the kind produced by
// language models, hand-edited config, or truncated network transfers —
// into syntactically strict JSON.
//
// The pipeline is staged: a [cursor] walks the input bytes, an optional
// preprocessing pass strips BOMs and fenced code blocks, a tolerant
// tokenizer classifies bytes under a permissive grammar, a recovery
// parser reconciles the token stream against strict JSON structure by
// applying deterministic repair actions, and an emitter writes the
// resulting [Value] tree back out as strict JSON text.
//
// The package is re-entrant and holds no package-level mutable state.
// [Repair], [RepairWithOptions], and [RepairEx] are safe to call
// concurrently from multiple goroutines with independent arguments. A
// [Stream] is not safe for concurrent use by more than one goroutine at a
// time; distinct streams are independent.
package repair
