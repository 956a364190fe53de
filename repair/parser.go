package repair

// maxNestingDepth bounds the recursion the recovery parser will follow
// into nested objects/arrays. Input nested deeper than this has bigger
// problems than the parser failing, as the teacher library's comment on
// its own depth constant put it.
const maxNestingDepth = 1024

// parser is the recovery parser: it consumes tokens from a tokenizer,
// maintains an implicit structural stack via Go recursion (one call frame
// per open container), and applies the seven repair actions of spec's
// §4.4 in the order given there, first-match-wins.
type parser struct {
	tz      *tokenizer
	opts    *Options
	events  []RepairEvent
	pending *token // a token fetched for one frame but belonging to its parent
	depth   int
}

func (p *parser) event(kind RepairEventKind, pos int) {
	p.events = append(p.events, RepairEvent{Kind: kind, Position: pos})
}

// nextToken returns a previously-bubbled-up pending token if one is
// waiting, otherwise pulls a fresh token from the tokenizer. This is how
// a container frame that closed on a wrong-kind close token hands that
// token back to its parent frame for re-examination (spec's "Unbalanced
// brackets" repair action).
func (p *parser) nextToken() (token, error) {
	if p.pending != nil {
		t := *p.pending
		p.pending = nil
		return t, nil
	}
	return p.tz.next()
}

func isCloseKind(k TokenKind) bool {
	return k == TokenObjectClose || k == TokenArrayClose
}

// parseValue parses exactly one top-level JSON value.
func (p *parser) parseValue() (*Value, error) {
	tok, err := p.nextToken()
	if err != nil {
		return nil, err
	}
	if tok.kind == TokenEOF {
		return nil, newError(UnexpectedToken, tok.start, "empty input; expected a value")
	}
	return p.parseValueFromToken(tok)
}

func (p *parser) parseValueFromToken(tok token) (*Value, error) {
	switch tok.kind {
	case TokenObjectOpen:
		return p.parseObject(tok.start)
	case TokenArrayOpen:
		return p.parseArray(tok.start)
	case TokenString:
		return &Value{typ: String, strVal: tok.text}, nil
	case TokenNumber:
		typ := Number
		if tok.isInteger {
			typ = Integer
		}
		return &Value{typ: typ, numLit: tok.text}, nil
	case TokenKeyword:
		return p.resolveKeyword(tok), nil
	case TokenEOF:
		return nil, newError(UnterminatedContainer, tok.start, "unexpected end of input; expected a value")
	default:
		return nil, newError(UnexpectedToken, tok.start, "expected a value")
	}
}

// resolveKeyword maps a language-literal keyword token to its JSON value
// under the active Options, or rescues it as a bare string value when no
// option enables the mapping (the "lenient value" rule of §4.4).
func (p *parser) resolveKeyword(tok token) *Value {
	switch tok.text {
	case "true":
		return &Value{typ: Boolean, boolVal: true}
	case "false":
		return &Value{typ: Boolean, boolVal: false}
	case "null":
		return &Value{typ: Null}
	case "True":
		if p.opts.AllowPythonKeywords {
			p.event(NormalizedLanguageLiteral, tok.start)
			return &Value{typ: Boolean, boolVal: true}
		}
	case "False":
		if p.opts.AllowPythonKeywords {
			p.event(NormalizedLanguageLiteral, tok.start)
			return &Value{typ: Boolean, boolVal: false}
		}
	case "None":
		if p.opts.AllowPythonKeywords {
			p.event(NormalizedLanguageLiteral, tok.start)
			return &Value{typ: Null}
		}
	case "undefined":
		if p.opts.RepairUndefined {
			p.event(NormalizedLanguageLiteral, tok.start)
			return &Value{typ: Null}
		}
	case "NaN", "Infinity", "-Infinity":
		if p.opts.NormalizeJSNonfinite {
			p.event(NormalizedLanguageLiteral, tok.start)
			return &Value{typ: Null}
		}
	}
	p.event(UnquotedValueAccepted, tok.start)
	return &Value{typ: String, strVal: tok.text}
}

func (p *parser) enterFrame(openPos int) error {
	p.depth++
	if p.depth > maxNestingDepth {
		return newError(InternalError, openPos, "maximum nesting depth of %d exceeded", maxNestingDepth)
	}
	return nil
}

func (p *parser) exitFrame() { p.depth-- }

// parseArray parses the contents of an array, having already consumed
// the opening '['.
func (p *parser) parseArray(openPos int) (*Value, error) {
	if err := p.enterFrame(openPos); err != nil {
		return nil, err
	}
	defer p.exitFrame()

	arr := &Value{typ: Array}
	expectValueOrClose := true
	afterComma := false

	for {
		tok, err := p.nextToken()
		if err != nil {
			return nil, err
		}

		switch tok.kind {
		case TokenArrayClose:
			if afterComma {
				p.event(DroppedTrailingComma, tok.start)
			}
			return arr, nil
		case TokenObjectClose:
			// Wrong-kind close: close this frame as if ']' were here and
			// let the parent frame re-examine the stray '}'.
			p.event(SynthesizedClose, tok.start)
			p.pending = &tok
			return arr, nil
		case TokenEOF:
			return p.closeUnterminatedArray(arr, openPos)
		case TokenComma:
			if expectValueOrClose {
				// Leading/duplicate comma with no value yet: discard and
				// keep waiting for a value.
				p.event(DiscardedStrayToken, tok.start)
				continue
			}
			expectValueOrClose = true
			afterComma = true
			continue
		default:
			if !expectValueOrClose {
				// A value appeared where a separator was expected: insert
				// a virtual comma and accept it anyway.
				p.event(InsertedComma, tok.start)
			}
			val, err := p.parseValueFromToken(tok)
			if err != nil {
				return nil, err
			}
			arr.arrVal = append(arr.arrVal, val)
			expectValueOrClose = false
			afterComma = false
		}
	}
}

// parseObject parses the contents of an object, having already consumed
// the opening '{'.
func (p *parser) parseObject(openPos int) (*Value, error) {
	if err := p.enterFrame(openPos); err != nil {
		return nil, err
	}
	defer p.exitFrame()

	obj := &Value{typ: Object}
	expectKeyOrClose := true
	afterComma := false

	for {
		tok, err := p.nextToken()
		if err != nil {
			return nil, err
		}

		if expectKeyOrClose {
			switch tok.kind {
			case TokenObjectClose:
				if afterComma {
					p.event(DroppedTrailingComma, tok.start)
				}
				return obj, nil
			case TokenArrayClose:
				p.event(SynthesizedClose, tok.start)
				p.pending = &tok
				return obj, nil
			case TokenEOF:
				return p.closeUnterminatedObject(obj, openPos)
			case TokenComma:
				// Stray/duplicate comma before any key: discard.
				p.event(DiscardedStrayToken, tok.start)
				continue
			case TokenString, TokenKeyword:
				key := tok.text
				if tok.kind == TokenKeyword {
					p.event(UnquotedKeyAccepted, tok.start)
				}
				val, err := p.parseMemberValue()
				if err != nil {
					return nil, err
				}
				obj.objVal = append(obj.objVal, member{key: key, val: val})
				expectKeyOrClose = false
				afterComma = false
			default:
				// Stray non-key value (number, nested container) where a
				// key was expected: soft-aggregate mode is never the
				// default, so discard with a repair log entry. A stray
				// container is parsed in full so that all of it is dropped.
				p.event(DiscardedStrayToken, tok.start)
				if tok.kind == TokenObjectOpen || tok.kind == TokenArrayOpen {
					if _, err := p.parseValueFromToken(tok); err != nil {
						return nil, err
					}
				}
			}
			continue
		}

		// expecting a separator or a close
		switch tok.kind {
		case TokenObjectClose:
			return obj, nil
		case TokenArrayClose:
			p.event(SynthesizedClose, tok.start)
			p.pending = &tok
			return obj, nil
		case TokenEOF:
			return p.closeUnterminatedObject(obj, openPos)
		case TokenComma:
			expectKeyOrClose = true
			afterComma = true
		case TokenString, TokenKeyword:
			// Missing comma between members: insert a virtual comma and
			// re-examine this token as the next key.
			p.event(InsertedComma, tok.start)
			p.pending = &tok
			expectKeyOrClose = true
			afterComma = false
		default:
			return nil, newError(UnexpectedToken, tok.start, "expected ',' or '}'")
		}
	}
}

// parseMemberValue consumes the ':' (inserting a virtual one if absent)
// and the value following an accepted object key.
func (p *parser) parseMemberValue() (*Value, error) {
	colonTok, err := p.nextToken()
	if err != nil {
		return nil, err
	}
	if colonTok.kind != TokenColon {
		p.event(InsertedColon, colonTok.start)
		p.pending = &colonTok
	}
	valTok, err := p.nextToken()
	if err != nil {
		return nil, err
	}
	return p.parseValueFromToken(valTok)
}

func (p *parser) closeUnterminatedArray(arr *Value, openPos int) (*Value, error) {
	if !p.opts.AggressiveTruncationFix {
		return nil, newError(UnterminatedContainer, openPos, "unterminated array opened at byte %d", openPos)
	}
	p.event(SynthesizedClose, p.tz.cur.position())
	return arr, nil
}

func (p *parser) closeUnterminatedObject(obj *Value, openPos int) (*Value, error) {
	if !p.opts.AggressiveTruncationFix {
		return nil, newError(UnterminatedContainer, openPos, "unterminated object opened at byte %d", openPos)
	}
	p.event(SynthesizedClose, p.tz.cur.position())
	return obj, nil
}

// parseOneValue runs the full recovery parser over data (already
// preprocessed) and returns the repaired value, the repair log, the
// number of input bytes consumed, and an error on failure. A stray
// close token bubbled all the way up to the root with no frame left to
// attach to is discarded rather than treated as an error, matching
// one-shot Repair's maximal-tolerance stance.
func parseOneValue(data []byte, opts *Options) (*Value, []RepairEvent, int, error) {
	tz := newTokenizer(data, opts, true)
	p := &parser{tz: tz, opts: opts}

	val, err := p.parseValue()
	if err != nil {
		return nil, p.events, tz.cur.position(), err
	}
	if p.pending != nil && isCloseKind(p.pending.kind) {
		p.event(DiscardedStrayToken, p.pending.start)
		p.pending = nil
	}
	return val, p.events, tz.cur.position(), nil
}

// tryParseOne parses exactly one value from the front of data and
// reports how many bytes it consumed, for the stream driver's
// "consume one value" mode. Unlike parseOneValue, a stray leftover close
// token is surfaced as an UnexpectedToken error so the driver can treat
// it as a resync point rather than silently discarding structure from
// what may be the middle of a longer stream.
func tryParseOne(data []byte, opts *Options) (*Value, int, error) {
	tz := newTokenizer(data, opts, false)
	p := &parser{tz: tz, opts: opts}

	val, err := p.parseValue()
	if err != nil {
		return nil, 0, err
	}
	if p.pending != nil && isCloseKind(p.pending.kind) {
		return nil, 0, newError(UnexpectedToken, p.pending.start, "unexpected closing token")
	}
	return val, tz.cur.position(), nil
}
