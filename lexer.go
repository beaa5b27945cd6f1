package ember

// Lexer 在 Cursor 之上按需产生 token, 每次调用 Bump 只分类出一个 token.
// Lexer 的全部状态就是一个 Cursor, 所以 Clone 只是一次值拷贝.
type Lexer struct {
	cur Cursor
}

func NewLexer(input string) *Lexer {
	return NewLexerRunes([]rune(input))
}

func NewLexerRunes(input []rune) *Lexer {
	return &Lexer{cur: NewCursor(input)}
}

// Pos returns the offset of the next unread character.
func (l *Lexer) Pos() int {
	return l.cur.Pos()
}

// Source returns the full character sequence being lexed.
func (l *Lexer) Source() []rune {
	return l.cur.src
}

func (l *Lexer) AtEOF() bool {
	return l.cur.Rest() == 0
}

// Clone returns an independent copy. Advancing the copy never affects l.
func (l *Lexer) Clone() Lexer {
	return *l
}

// Sync commits a speculative copy back into l.
func (l *Lexer) Sync(other Lexer) {
	l.cur = other.cur
}

// Bump 尝试产生一个 token. 只有成功时才推进状态; 输入结束或
// 引号未闭合时返回 false, 此时 l 保持不变.
func (l *Lexer) Bump() (Token, bool) {
	cur := l.cur
	tok, ok := next(&cur)
	if ok {
		l.cur = cur
	}
	return tok, ok
}

// Peek classifies the next token without consuming it.
func (l *Lexer) Peek() (Token, bool) {
	cur := l.cur
	return next(&cur)
}

func next(cur *Cursor) (Token, bool) {
	start := cur.Pos()
	ch, ok := cur.Bump()
	if !ok {
		return Token{}, false
	}

	if kind, ok := classifyChar(ch); ok {
		return Token{TokenKind: kind, Pos: NewPosition(start, start)}, true
	}

	if quote, ok := lookupQuote(ch); ok {
		return readSeparation(cur, quote, start)
	}

	return readWord(cur, ch, start), true
}

// readSeparation 读取到同一个定界符再次出现为止. 闭合的定界符被消费,
// 算进 token 的区间, 但不会再作为单独的 token 产生.
func readSeparation(cur *Cursor, quote Quote, start int) (Token, bool) {
	var text []rune
	for {
		ch, ok := cur.Bump()
		if !ok {
			return Token{}, false
		}
		if Quote(ch) == quote {
			break
		}
		text = append(text, ch)
	}
	return Token{
		TokenKind: TokenKind{Type: SEPARATION, Literal: string(text), Quote: quote},
		Pos:       NewPosition(start, cur.Pos()-1),
	}, true
}

// readWord accumulates an identifier using lookahead only: it stops before
// any character that would form a single-character token on its own.
func readWord(cur *Cursor, first rune, start int) Token {
	word := []rune{first}
	for {
		ch, ok := cur.First()
		if !ok {
			break
		}
		if _, single := classifyChar(ch); single {
			break
		}
		cur.Bump()
		word = append(word, ch)
	}

	literal := string(word)
	tok := Token{
		TokenKind: TokenKind{Type: IDENT, Literal: literal},
		Pos:       NewPosition(start, cur.Pos()-1),
	}
	if _, ok := LookupKeyword(literal); ok {
		tok.Type = KEYWORD
	}
	return tok
}

// IgnoreWhile 反复在副本上尝试 Bump, 只要产生的 token 满足 match 就提交副本.
// 返回最后一个被跳过的 token; 一个都没跳过时返回 false.
func (l *Lexer) IgnoreWhile(match func(TokenKind) bool) (Token, bool) {
	var (
		last    Token
		skipped bool
	)
	for {
		fork := l.Clone()
		tok, ok := fork.Bump()
		if !ok || !match(tok.TokenKind) {
			return last, skipped
		}
		l.Sync(fork)
		last, skipped = tok, true
	}
}

// IgnoreOnce is IgnoreWhile limited to a single token.
func (l *Lexer) IgnoreOnce(match func(TokenKind) bool) (Token, bool) {
	fork := l.Clone()
	tok, ok := fork.Bump()
	if !ok || !match(tok.TokenKind) {
		return Token{}, false
	}
	l.Sync(fork)
	return tok, true
}

func (l *Lexer) IgnoreSpaces() (Token, bool) {
	return l.IgnoreWhile(isSpace)
}

// IgnoreSemicolon consumes at most one statement terminator.
func (l *Lexer) IgnoreSemicolon() (Token, bool) {
	return l.IgnoreOnce(isSemicolon)
}

func isSpace(k TokenKind) bool {
	return k.Type == SPACE
}

func isSemicolon(k TokenKind) bool {
	p, ok := k.Punctuation()
	return ok && p == Semicolon
}
