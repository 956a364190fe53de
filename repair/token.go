package repair

// TokenKind tags the lexical category of a [token]. Tokens are ephemeral:
// they carry only what the recovery parser needs to decide its next
// action and do not outlive a single parse pass.
type TokenKind int

const (
	TokenObjectOpen TokenKind = iota
	TokenObjectClose
	TokenArrayOpen
	TokenArrayClose
	TokenComma
	TokenColon
	TokenString
	TokenNumber
	TokenKeyword
	TokenEOF
)

// KeywordKind distinguishes which language literal a TokenKeyword token
// spells, so the parser can consult [Options] before deciding whether to
// map it to a strict-JSON value or rescue it as a bare string.
type KeywordKind int

const (
	KeywordTrue KeywordKind = iota
	KeywordFalse
	KeywordNull
	KeywordUndefined
	KeywordNaN
	KeywordInfinity
	KeywordNegInfinity
	KeywordIdentifier // any other bare word: a candidate for an unquoted key/value
)

// token is one lexeme produced by the tolerant tokenizer.
type token struct {
	kind TokenKind

	// text holds:
	//   TokenString:  the decoded string contents
	//   TokenNumber:  the canonical, tolerance-normalized numeric lexeme
	//   TokenKeyword: the raw spelling as it appeared in the input
	text string

	keyword   KeywordKind // valid when kind == TokenKeyword
	isInteger bool        // valid when kind == TokenNumber

	start, end int // byte offsets into the tokenizer's input buffer
}
