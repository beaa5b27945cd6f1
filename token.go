package ember

import (
	"fmt"
)

type TokenType string

const (
	BRACKET    TokenType = "BRACKET"
	SPACE      TokenType = "SPACE"
	PUNCT      TokenType = "PUNCT"
	KEYWORD    TokenType = "KEYWORD"
	IDENT      TokenType = "IDENT"
	OPERATOR   TokenType = "OPERATOR"
	DIGIT      TokenType = "DIGIT"
	SEPARATION TokenType = "SEPARATION"
)

// TokenKind 是 token 的分类结果, 不含位置信息.
// Literal 对单字符 token 是该字符本身, 对 IDENT/KEYWORD 是完整拼写,
// 对 SEPARATION 是引号内部的文本. Quote 只在 SEPARATION 上有意义.
type TokenKind struct {
	Type    TokenType
	Literal string
	Quote   Quote
}

type Token struct {
	TokenKind
	Pos Position
}

func (t Token) String() string {
	return fmt.Sprintf("Pos:%s, Type:%s, Literal:`%s`", t.Pos, t.Type, t.Literal)
}

// Is reports whether the token has type tt and the given literal.
func (k TokenKind) Is(tt TokenType, literal string) bool {
	return k.Type == tt && k.Literal == literal
}

func (k TokenKind) Bracket() (Bracket, bool) {
	if k.Type != BRACKET {
		return Bracket{}, false
	}
	return lookupBracket(firstRune(k.Literal))
}

func (k TokenKind) Space() (Space, bool) {
	if k.Type != SPACE {
		return 0, false
	}
	return lookupSpace(firstRune(k.Literal))
}

func (k TokenKind) Punctuation() (Punctuation, bool) {
	if k.Type != PUNCT {
		return 0, false
	}
	return lookupPunctuation(firstRune(k.Literal))
}

func (k TokenKind) Operator() (Operator, bool) {
	if k.Type != OPERATOR {
		return 0, false
	}
	return lookupOperator(firstRune(k.Literal))
}

func (k TokenKind) Keyword() (Keyword, bool) {
	if k.Type != KEYWORD {
		return "", false
	}
	return LookupKeyword(k.Literal)
}

// Digit returns the value of a DIGIT token.
func (k TokenKind) Digit() (uint32, bool) {
	if k.Type != DIGIT {
		return 0, false
	}
	r := firstRune(k.Literal)
	if r < '0' || r > '9' {
		return 0, false
	}
	return uint32(r - '0'), true
}

func firstRune(s string) rune {
	for _, r := range s {
		return r
	}
	return 0
}

// --- 单字符分类 ---

type BracketShape int

const (
	Paren BracketShape = iota
	Curly
	Square
	Angle
)

// Bracket 是一个开/闭括号.
type Bracket struct {
	Shape BracketShape
	Open  bool
}

var (
	OpenParen   = Bracket{Shape: Paren, Open: true}
	CloseParen  = Bracket{Shape: Paren}
	OpenCurly   = Bracket{Shape: Curly, Open: true}
	CloseCurly  = Bracket{Shape: Curly}
	OpenSquare  = Bracket{Shape: Square, Open: true}
	CloseSquare = Bracket{Shape: Square}
	OpenAngle   = Bracket{Shape: Angle, Open: true}
	CloseAngle  = Bracket{Shape: Angle}
)

func lookupBracket(r rune) (Bracket, bool) {
	switch r {
	case '(':
		return OpenParen, true
	case ')':
		return CloseParen, true
	case '{':
		return OpenCurly, true
	case '}':
		return CloseCurly, true
	case '[':
		return OpenSquare, true
	case ']':
		return CloseSquare, true
	case '<':
		return OpenAngle, true
	case '>':
		return CloseAngle, true
	}
	return Bracket{}, false
}

type Space int

const (
	Blank Space = iota
	NewLine
	Tab
)

func lookupSpace(r rune) (Space, bool) {
	switch r {
	case ' ':
		return Blank, true
	case '\n':
		return NewLine, true
	case '\t':
		return Tab, true
	}
	return 0, false
}

type Punctuation int

const (
	Comma Punctuation = iota
	FullStop
	Semicolon
)

func lookupPunctuation(r rune) (Punctuation, bool) {
	switch r {
	case ',':
		return Comma, true
	case '.':
		return FullStop, true
	case ';':
		return Semicolon, true
	}
	return 0, false
}

type Operator int

const (
	Equal Operator = iota
	Slash
)

func lookupOperator(r rune) (Operator, bool) {
	switch r {
	case '=':
		return Equal, true
	case '/':
		return Slash, true
	}
	return 0, false
}

// Quote 是字符串的定界符. 零值表示"不是字符串".
type Quote rune

const (
	SingleQuote Quote = '\''
	DoubleQuote Quote = '"'
	Backtick    Quote = '`'
)

func lookupQuote(r rune) (Quote, bool) {
	switch Quote(r) {
	case SingleQuote, DoubleQuote, Backtick:
		return Quote(r), true
	}
	return 0, false
}

func (q Quote) String() string {
	if q == 0 {
		return ""
	}
	return string(rune(q))
}

// classifyChar 按固定顺序 (括号, 空白, 标点, 数字, 运算符) 判断 r
// 是否独立构成一个单字符 token.
func classifyChar(r rune) (TokenKind, bool) {
	lit := string(r)
	if _, ok := lookupBracket(r); ok {
		return TokenKind{Type: BRACKET, Literal: lit}, true
	}
	if _, ok := lookupSpace(r); ok {
		return TokenKind{Type: SPACE, Literal: lit}, true
	}
	if _, ok := lookupPunctuation(r); ok {
		return TokenKind{Type: PUNCT, Literal: lit}, true
	}
	if r >= '0' && r <= '9' {
		return TokenKind{Type: DIGIT, Literal: lit}, true
	}
	if _, ok := lookupOperator(r); ok {
		return TokenKind{Type: OPERATOR, Literal: lit}, true
	}
	return TokenKind{}, false
}

type Keyword string

const (
	KeywordLet   Keyword = "let"
	KeywordFn    Keyword = "fn"
	KeywordIf    Keyword = "if"
	KeywordState Keyword = "state"
	KeywordTrue  Keyword = "true"
	KeywordFalse Keyword = "false"
)

var keywords = map[string]Keyword{
	"let":   KeywordLet,
	"fn":    KeywordFn,
	"if":    KeywordIf,
	"state": KeywordState,
	"true":  KeywordTrue,
	"false": KeywordFalse,
}

// LookupKeyword 检查 ident 是否是关键字.
// 拼写与关键字相同的标识符永远不会被归类为 IDENT.
func LookupKeyword(ident string) (Keyword, bool) {
	kw, ok := keywords[ident]
	return kw, ok
}
