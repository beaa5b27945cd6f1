package ember

import (
	"bytes"
	"strings"
	"testing"

	"github.com/go-json-experiment/json"
	"github.com/go-json-experiment/json/jsontext"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodeJSON(t *testing.T, data []byte) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.Unmarshal(data, &out), "%s", data)
	return out
}

func TestEncodeJSONCall(t *testing.T) {
	x, err := ParseExpression("f('x')")
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, EncodeJSON(&buf, x))
	assert.True(t, strings.Contains(buf.String(), "\n  \""), "expected indented output, got %s", buf.String())

	got := decodeJSON(t, buf.Bytes())
	assert.Equal(t, "Call", got["type"])
	assert.Equal(t, map[string]any{"start": 0.0, "end": 5.0}, got["pos"])

	called := got["called"].(map[string]any)
	assert.Equal(t, "Identifier", called["type"])
	assert.Equal(t, "f", called["name"])

	input := got["input"].(map[string]any)
	assert.Equal(t, "String", input["type"])
	assert.Equal(t, "x", input["value"])
	assert.Equal(t, "'", input["quote"])
	assert.Equal(t, map[string]any{"start": 2.0, "end": 4.0}, input["pos"])
}

func TestMarshalNodeKeepsZeroValues(t *testing.T) {
	program, err := Parse(`let n = 0; let b = false; let s = "";`)
	require.NoError(t, err)

	data, err := MarshalNode(program)
	require.NoError(t, err)
	require.True(t, jsontext.Value(data).IsValid())

	got := decodeJSON(t, data)
	assert.Equal(t, "Program", got["type"])
	stmts := got["statements"].([]any)
	require.Len(t, stmts, 3)

	want := []any{0.0, false, ""}
	for i, s := range stmts {
		let := s.(map[string]any)
		assert.Equal(t, "Let", let["type"])
		value := let["expr"].(map[string]any)
		v, ok := value["value"]
		require.True(t, ok, "statement %d lost its zero value: %v", i, value)
		assert.Equal(t, want[i], v)
	}
}

func TestMarshalNodeBlockAndAccess(t *testing.T) {
	x, err := ParseExpression("{ a.b }")
	require.NoError(t, err)

	data, err := MarshalNode(x)
	require.NoError(t, err)

	got := decodeJSON(t, data)
	assert.Equal(t, "Block", got["type"])
	stmts := got["statements"].([]any)
	require.Len(t, stmts, 1)
	access := stmts[0].(map[string]any)["expr"].(map[string]any)
	assert.Equal(t, "Access", access["type"])
	assert.Equal(t, "a", access["target"].(map[string]any)["name"])
	assert.Equal(t, "b", access["field"].(map[string]any)["name"])
}

func TestEncodeTokensJSON(t *testing.T) {
	l := NewLexer("let s = 'x';")
	var tokens []Token
	for {
		tok, ok := l.Bump()
		if !ok {
			break
		}
		tokens = append(tokens, tok)
	}

	var buf bytes.Buffer
	require.NoError(t, EncodeTokensJSON(&buf, tokens))

	var got []map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	require.Len(t, got, len(tokens))

	assert.Equal(t, "KEYWORD", got[0]["type"])
	assert.Equal(t, "let", got[0]["literal"])
	assert.NotContains(t, got[0], "quote")

	str := got[6]
	assert.Equal(t, "SEPARATION", str["type"])
	assert.Equal(t, "x", str["literal"])
	assert.Equal(t, "'", str["quote"])
	assert.Equal(t, map[string]any{"start": 8.0, "end": 10.0}, str["pos"])
}
