package ember

import (
	"math"

	"github.com/tliron/commonlog"
)

// Parser 是一个推测式的递归下降解析器.
//
// 每个产生式都先 Clone 一份 Lexer, 在副本上尝试; 成功时用 Sync 把副本
// 提交回调用者的 Lexer, 失败时直接丢弃副本. 因此任何产生式返回 false 时,
// 调用者的 Lexer 与进入时完全相同.
type Parser struct {
	l      *Lexer
	log    commonlog.Logger
	blocks bool
	access bool
}

func NewParser(l *Lexer, opts ...Option) *Parser {
	p := &Parser{
		l:      l,
		log:    commonlog.GetLogger("ember.parser"),
		blocks: true,
		access: true,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Lexer returns the live lexer the parser advances.
func (p *Parser) Lexer() *Lexer {
	return p.l
}

// Reset points the parser at new input, keeping its options.
func (p *Parser) Reset(input string) {
	p.l = NewLexer(input)
}

// ParseStmt parses one statement at the current position.
func (p *Parser) ParseStmt() (Stmt, bool) {
	return p.parseStmt(p.l)
}

// ParseExpr parses one expression at the current position.
func (p *Parser) ParseExpr() (Expr, bool) {
	return p.parseExpr(p.l)
}

// ParseProgram parses statements until none matches. Whitespace between
// statements and after the last one is consumed; anything else that
// remains is left in the lexer for the caller to inspect.
func (p *Parser) ParseProgram() *Program {
	program := &Program{Statements: []Stmt{}}
	for {
		fork := p.l.Clone()
		fork.IgnoreSpaces()
		stmt, ok := p.parseStmt(&fork)
		if !ok {
			break
		}
		p.l.Sync(fork)
		program.Statements = append(program.Statements, stmt)
	}
	p.l.IgnoreSpaces()
	p.log.Debugf("parsed %d statements, stopped at offset %d", len(program.Statements), p.l.Pos())
	return program
}

func (p *Parser) parseStmt(l *Lexer) (Stmt, bool) {
	if stmt, ok := p.parseLetStmt(l); ok {
		return stmt, true
	}
	return p.parseExprStmt(l)
}

// let_stmt := "let" ws identifier ws "=" ws expr [ws] [";"]
func (p *Parser) parseLetStmt(l *Lexer) (Stmt, bool) {
	fork := l.Clone()
	first, ok := fork.Bump()
	if !ok {
		return nil, false
	}
	if kw, ok := first.Keyword(); !ok || kw != KeywordLet {
		return nil, false
	}

	fork.IgnoreSpaces()
	nameTok, ok := fork.Bump()
	if !ok || nameTok.Type != IDENT {
		p.log.Debugf("let at %d: expected identifier", first.Pos.Start)
		return nil, false
	}

	fork.IgnoreSpaces()
	eq, ok := fork.Bump()
	if !ok {
		return nil, false
	}
	if op, ok := eq.Operator(); !ok || op != Equal {
		p.log.Debugf("let at %d: expected '=' at %d", first.Pos.Start, eq.Pos.Start)
		return nil, false
	}

	fork.IgnoreSpaces()
	value, ok := p.parseExpr(&fork)
	if !ok {
		p.log.Debugf("let at %d: no value expression", first.Pos.Start)
		return nil, false
	}

	end := p.terminate(&fork, value.Pos().End)
	l.Sync(fork)
	return &LetStmt{
		Name:  &Identifier{Name: nameTok.Literal, Span: nameTok.Pos},
		Value: value,
		Span:  NewPosition(first.Pos.Start, end),
	}, true
}

// expr_stmt := expr [ws] [";"]
func (p *Parser) parseExprStmt(l *Lexer) (Stmt, bool) {
	fork := l.Clone()
	x, ok := p.parseExpr(&fork)
	if !ok {
		return nil, false
	}
	end := p.terminate(&fork, x.Pos().End)
	l.Sync(fork)
	return &ExprStmt{X: x, Span: NewPosition(x.Pos().Start, end)}, true
}

// terminate consumes an optional semicolon, possibly preceded by
// whitespace, and returns where the statement ends. Without a semicolon
// the whitespace is left unconsumed.
func (p *Parser) terminate(l *Lexer, end int) int {
	fork := l.Clone()
	fork.IgnoreSpaces()
	if semi, ok := fork.IgnoreSemicolon(); ok {
		l.Sync(fork)
		return semi.Pos.End
	}
	return end
}

func (p *Parser) parseExpr(l *Lexer) (Expr, bool) {
	return p.parseCallExpr(l)
}

// call_expr := access_expr [ws] "(" [ws] expr [ws] ")" | access_expr
//
// 被调用的一侧从不递归进入 call_expr, 所以不会出现左递归.
func (p *Parser) parseCallExpr(l *Lexer) (Expr, bool) {
	fork := l.Clone()
	called, ok := p.parseAccessExpr(&fork)
	if !ok {
		return nil, false
	}

	attempt := fork.Clone()
	attempt.IgnoreSpaces()
	if open, ok := attempt.Bump(); ok && isBracket(open, OpenParen) {
		attempt.IgnoreSpaces()
		if input, ok := p.parseExpr(&attempt); ok {
			attempt.IgnoreSpaces()
			if closing, ok := attempt.Bump(); ok && isBracket(closing, CloseParen) {
				l.Sync(attempt)
				return &CallExpr{
					Called: called,
					Input:  input,
					Span:   NewPosition(called.Pos().Start, closing.Pos.End),
				}, true
			}
		}
		p.log.Debugf("call at %d: falling back to bare callee", open.Pos.Start)
	}

	l.Sync(fork)
	return called, true
}

// access_expr := primary { "." identifier }
func (p *Parser) parseAccessExpr(l *Lexer) (Expr, bool) {
	fork := l.Clone()
	target, ok := p.parsePrimary(&fork)
	if !ok {
		return nil, false
	}

	for p.access {
		attempt := fork.Clone()
		dot, ok := attempt.Bump()
		if !ok {
			break
		}
		if punct, ok := dot.Punctuation(); !ok || punct != FullStop {
			break
		}
		field, ok := attempt.Bump()
		if !ok || field.Type != IDENT {
			break
		}
		target = &AccessExpr{
			Target: target,
			Field:  &Identifier{Name: field.Literal, Span: field.Pos},
			Span:   NewPosition(target.Pos().Start, field.Pos.End),
		}
		fork.Sync(attempt)
	}

	l.Sync(fork)
	return target, true
}

// primary := identifier | number | "true" | "false" | quoted_string | block
func (p *Parser) parsePrimary(l *Lexer) (Expr, bool) {
	tok, ok := l.Peek()
	if !ok {
		return nil, false
	}

	var expr Expr
	switch tok.Type {
	case IDENT:
		expr = &Identifier{Name: tok.Literal, Span: tok.Pos}
	case DIGIT:
		return p.parseNumber(l)
	case KEYWORD:
		// true/false 由词法分析器识别为关键字, 在这里才转成布尔字面量.
		switch kw, _ := tok.Keyword(); kw {
		case KeywordTrue:
			expr = &BoolLiteral{Value: true, Span: tok.Pos}
		case KeywordFalse:
			expr = &BoolLiteral{Value: false, Span: tok.Pos}
		}
	case SEPARATION:
		expr = &StringLiteral{Value: tok.Literal, Quote: tok.Quote, Span: tok.Pos}
	case BRACKET:
		if p.blocks && isBracket(tok, OpenCurly) {
			return p.parseBlock(l)
		}
	}
	if expr == nil {
		return nil, false
	}

	l.Bump()
	return expr, true
}

// parseNumber 逐个向前窥视数字 token, 按十进制从左到右累加.
// 超出 uint32 的数字串不匹配.
func (p *Parser) parseNumber(l *Lexer) (Expr, bool) {
	fork := l.Clone()
	first, ok := fork.Bump()
	if !ok {
		return nil, false
	}
	d, ok := first.Digit()
	if !ok {
		return nil, false
	}

	value := uint64(d)
	end := first.Pos.End
	for {
		attempt := fork.Clone()
		tok, ok := attempt.Bump()
		if !ok {
			break
		}
		d, ok := tok.Digit()
		if !ok {
			break
		}
		value = value*10 + uint64(d)
		if value > math.MaxUint32 {
			p.log.Debugf("number at %d: overflows uint32", first.Pos.Start)
			return nil, false
		}
		end = tok.Pos.End
		fork.Sync(attempt)
	}

	l.Sync(fork)
	return &NumberLiteral{Value: uint32(value), Span: NewPosition(first.Pos.Start, end)}, true
}

// block := "{" { [ws] stmt } [ws] "}"
func (p *Parser) parseBlock(l *Lexer) (Expr, bool) {
	fork := l.Clone()
	open, ok := fork.Bump()
	if !ok || !isBracket(open, OpenCurly) {
		return nil, false
	}

	stmts := []Stmt{}
	for {
		attempt := fork.Clone()
		attempt.IgnoreSpaces()
		stmt, ok := p.parseStmt(&attempt)
		if !ok {
			break
		}
		fork.Sync(attempt)
		stmts = append(stmts, stmt)
	}

	fork.IgnoreSpaces()
	closing, ok := fork.Bump()
	if !ok || !isBracket(closing, CloseCurly) {
		p.log.Debugf("block at %d: unclosed", open.Pos.Start)
		return nil, false
	}

	l.Sync(fork)
	return &BlockExpr{Statements: stmts, Span: NewPosition(open.Pos.Start, closing.Pos.End)}, true
}

func isBracket(tok Token, want Bracket) bool {
	b, ok := tok.Bracket()
	return ok && b == want
}
