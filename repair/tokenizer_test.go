package repair

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func scanAll(t *testing.T, input string, opts *Options) []token {
	t.Helper()
	tz := newTokenizer([]byte(input), opts, true)
	var toks []token
	for {
		tok, err := tz.next()
		require.NoError(t, err)
		if tok.kind == TokenEOF {
			return toks
		}
		toks = append(toks, tok)
	}
}

func TestTokenizerStructuralTokens(t *testing.T) {
	toks := scanAll(t, "{}[],:", NewOptions())
	require.Len(t, toks, 6)
	assert.Equal(t, TokenObjectOpen, toks[0].kind)
	assert.Equal(t, TokenObjectClose, toks[1].kind)
	assert.Equal(t, TokenArrayOpen, toks[2].kind)
	assert.Equal(t, TokenArrayClose, toks[3].kind)
	assert.Equal(t, TokenComma, toks[4].kind)
	assert.Equal(t, TokenColon, toks[5].kind)
}

func TestTokenizerStrings(t *testing.T) {
	toks := scanAll(t, `"a\nb" 'c\td'`, NewOptions())
	require.Len(t, toks, 2)
	assert.Equal(t, "a\nb", toks[0].text)
	assert.Equal(t, "c\td", toks[1].text)
}

func TestTokenizerSmartQuotes(t *testing.T) {
	toks := scanAll(t, "“hello”", NewOptions())
	require.Len(t, toks, 1)
	assert.Equal(t, TokenString, toks[0].kind)
	assert.Equal(t, "hello", toks[0].text)
}

func TestTokenizerNumbers(t *testing.T) {
	cases := []struct {
		in        string
		opts      func(*Options)
		canonical string
		isInt     bool
	}{
		{in: "42", canonical: "42", isInt: true},
		{in: "-17", canonical: "-17", isInt: true},
		{in: "3.14", canonical: "3.14", isInt: false},
		{in: "1e10", canonical: "1e10", isInt: false},
		{in: ".5", opts: func(o *Options) { o.NumberToleranceLeadingDot = true }, canonical: "0.5", isInt: false},
		{in: "1.", opts: func(o *Options) { o.NumberToleranceTrailingDot = true }, canonical: "1.0", isInt: false},
		{in: "0xFF", canonical: "255", isInt: true},
		{in: "0o17", canonical: "15", isInt: true},
		{in: "0b101", canonical: "5", isInt: true},
		{in: "1_000", canonical: "1000", isInt: true},
		{in: "007", canonical: "7", isInt: true},
		{in: "000", canonical: "0", isInt: true},
		{in: "-007", canonical: "-7", isInt: true},
		{in: "007.5", canonical: "7.5", isInt: false},
	}
	for _, tc := range cases {
		t.Run(tc.in, func(t *testing.T) {
			opts := NewOptions()
			if tc.opts != nil {
				tc.opts(opts)
			}
			toks := scanAll(t, tc.in, opts)
			require.Len(t, toks, 1)
			assert.Equal(t, TokenNumber, toks[0].kind)
			assert.Equal(t, tc.canonical, toks[0].text)
			assert.Equal(t, tc.isInt, toks[0].isInteger)
		})
	}
}

func TestTokenizerNegInfinityTieBreak(t *testing.T) {
	toks := scanAll(t, "-Infinity -1", NewOptions())
	require.Len(t, toks, 2)
	assert.Equal(t, TokenKeyword, toks[0].kind)
	assert.Equal(t, KeywordNegInfinity, toks[0].keyword)
	assert.Equal(t, "-Infinity", toks[0].text)
	assert.Equal(t, TokenNumber, toks[1].kind)
	assert.Equal(t, "-1", toks[1].text)
}

func TestTokenizerKeywords(t *testing.T) {
	toks := scanAll(t, "true false null undefined NaN Infinity foo", NewOptions())
	require.Len(t, toks, 7)
	assert.Equal(t, KeywordTrue, toks[0].keyword)
	assert.Equal(t, KeywordFalse, toks[1].keyword)
	assert.Equal(t, KeywordNull, toks[2].keyword)
	assert.Equal(t, KeywordUndefined, toks[3].keyword)
	assert.Equal(t, KeywordNaN, toks[4].keyword)
	assert.Equal(t, KeywordInfinity, toks[5].keyword)
	assert.Equal(t, KeywordIdentifier, toks[6].keyword)
}

func TestTokenizerHashComments(t *testing.T) {
	opts := NewOptions()
	opts.TolerateHashComments = true
	toks := scanAll(t, "1 # a comment\n2", opts)
	require.Len(t, toks, 2)
	assert.Equal(t, "1", toks[0].text)
	assert.Equal(t, "2", toks[1].text)
}

func TestTokenizerLineAndBlockComments(t *testing.T) {
	toks := scanAll(t, "1 // line\n2 /* block */ 3", NewOptions())
	require.Len(t, toks, 3)
	assert.Equal(t, "1", toks[0].text)
	assert.Equal(t, "2", toks[1].text)
	assert.Equal(t, "3", toks[2].text)
}

func TestTokenizerAggressiveTruncationFixString(t *testing.T) {
	opts := NewOptions()
	opts.AggressiveTruncationFix = true
	toks := scanAll(t, `"unterminated`, opts)
	require.Len(t, toks, 1)
	assert.Equal(t, "unterminated", toks[0].text)
}

func TestTokenizerNumberAtChunkEndIsIncompleteWhenNotFinal(t *testing.T) {
	tz := newTokenizer([]byte("123"), NewOptions(), false)
	_, err := tz.next()
	require.Error(t, err)
	apiErr, ok := err.(*Error)
	require.True(t, ok)
	assert.Equal(t, UnterminatedNumber, apiErr.Code)
}

func TestTokenizerNumberAtChunkEndIsCompleteWhenFinal(t *testing.T) {
	tz := newTokenizer([]byte("123"), NewOptions(), true)
	tok, err := tz.next()
	require.NoError(t, err)
	assert.Equal(t, TokenNumber, tok.kind)
	assert.Equal(t, "123", tok.text)
}

func TestTokenizerNumberFollowedByDelimiterIsNeverIncomplete(t *testing.T) {
	tz := newTokenizer([]byte("123,"), NewOptions(), false)
	tok, err := tz.next()
	require.NoError(t, err)
	assert.Equal(t, TokenNumber, tok.kind)
	assert.Equal(t, "123", tok.text)
}

func TestTokenizerIdentifierAtChunkEndIsIncompleteWhenNotFinal(t *testing.T) {
	tz := newTokenizer([]byte("tru"), NewOptions(), false)
	_, err := tz.next()
	require.Error(t, err)
	apiErr, ok := err.(*Error)
	require.True(t, ok)
	assert.Equal(t, UnterminatedIdentifier, apiErr.Code)
}

func TestTokenizerUnterminatedStringFails(t *testing.T) {
	tz := newTokenizer([]byte(`"unterminated`), NewOptions(), true)
	_, err := tz.next()
	require.Error(t, err)
	apiErr, ok := err.(*Error)
	require.True(t, ok)
	assert.Equal(t, UnterminatedString, apiErr.Code)
}
