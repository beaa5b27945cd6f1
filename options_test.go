package ember

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/tliron/commonlog"

	_ "github.com/tliron/commonlog/simple"
)

func TestParserDefaults(t *testing.T) {
	p := NewParser(NewLexer(""))
	assert.True(t, p.blocks)
	assert.True(t, p.access)
	assert.NotNil(t, p.log)
}

// 失败路径会写 debug 日志, 换成真实后端后结果必须不变.
func TestWithLogger(t *testing.T) {
	p := NewParser(NewLexer("let x = ;"), WithLogger(commonlog.GetLogger("ember.test")))
	_, ok := p.ParseStmt()
	assert.False(t, ok)
	assert.Equal(t, 0, p.Lexer().Pos())

	p.Reset("f(")
	x, ok := p.ParseExpr()
	assert.True(t, ok)
	assert.Equal(t, "f", x.String())
}

func TestFormatOptionsDefault(t *testing.T) {
	var opts FormatOptions
	assert.Equal(t, StyleDefault, opts.Style)
	assert.Equal(t, StyleMultiLine, StyleDefault)
}
