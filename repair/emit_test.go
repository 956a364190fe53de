package repair

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEmitScalars(t *testing.T) {
	opts := NewOptions()
	assert.Equal(t, "null", Emit(&Value{typ: Null}, opts))
	assert.Equal(t, "true", Emit(&Value{typ: Boolean, boolVal: true}, opts))
	assert.Equal(t, "false", Emit(&Value{typ: Boolean, boolVal: false}, opts))
	assert.Equal(t, "42", Emit(&Value{typ: Integer, numLit: "42"}, opts))
	assert.Equal(t, "3.5", Emit(&Value{typ: Number, numLit: "3.5"}, opts))
}

func TestEmitStringEscaping(t *testing.T) {
	opts := NewOptions()
	out := Emit(&Value{typ: String, strVal: "a\"b\\c\nd\te"}, opts)
	assert.Equal(t, "\"a\\\"b\\\\c\\nd\\te\"", out)
}

func TestEmitForwardSlashUnescaped(t *testing.T) {
	opts := NewOptions()
	out := Emit(&Value{typ: String, strVal: "a/b"}, opts)
	assert.Equal(t, "\"a/b\"", out)
}

func TestEmitControlCharacterEscaped(t *testing.T) {
	opts := NewOptions()
	out := Emit(&Value{typ: String, strVal: "a\x01b"}, opts)
	assert.Equal(t, "\"a\\u0001b\"", out)
}

func TestEmitEnsureASCIIEscapesBMP(t *testing.T) {
	opts := NewOptions()
	opts.EnsureASCII = true
	out := Emit(&Value{typ: String, strVal: "中文"}, opts)
	assert.Equal(t, "\"\\u4e2d\\u6587\"", out)
	for i := 0; i < len(out); i++ {
		assert.LessOrEqual(t, out[i], byte(0x7f))
	}
}

func TestEmitEnsureASCIISurrogatePair(t *testing.T) {
	opts := NewOptions()
	opts.EnsureASCII = true
	out := Emit(&Value{typ: String, strVal: "\U0001F600"}, opts)
	assert.Equal(t, "\"\\ud83d\\ude00\"", out)
	for i := 0; i < len(out); i++ {
		assert.LessOrEqual(t, out[i], byte(0x7f))
	}
}

func TestEmitWithoutEnsureASCIIKeepsUTF8(t *testing.T) {
	opts := NewOptions()
	out := Emit(&Value{typ: String, strVal: "中文"}, opts)
	assert.Equal(t, "\"中文\"", out)
}

func TestEmitArrayAndObject(t *testing.T) {
	opts := NewOptions()
	v := &Value{
		typ: Object,
		objVal: []member{
			{key: "a", val: &Value{typ: Integer, numLit: "1"}},
			{key: "b", val: &Value{typ: Array, arrVal: []*Value{
				{typ: Integer, numLit: "1"},
				{typ: Integer, numLit: "2"},
			}}},
		},
	}
	assert.Equal(t, "{\"a\":1,\"b\":[1,2]}", Emit(v, opts))
}

func TestEmitPythonStyleSeparators(t *testing.T) {
	opts := NewOptions()
	opts.PythonStyleSeparators = true
	v := &Value{
		typ: Object,
		objVal: []member{
			{key: "a", val: &Value{typ: Integer, numLit: "1"}},
			{key: "b", val: &Value{typ: Integer, numLit: "2"}},
		},
	}
	assert.Equal(t, "{\"a\": 1, \"b\": 2}", Emit(v, opts))
}
