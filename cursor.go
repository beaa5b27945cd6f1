package ember

// Cursor 持有字符序列和当前读取位置.
// Cursor 是值类型: 复制它即得到一个快照, 丢弃副本不会影响原值.
type Cursor struct {
	src []rune
	pos int
}

func NewCursor(src []rune) Cursor {
	return Cursor{src: src}
}

// Pos returns the index of the next character to be consumed.
func (c Cursor) Pos() int {
	return c.pos
}

// Rest returns how many characters are left.
func (c Cursor) Rest() int {
	return len(c.src) - c.pos
}

// First returns the next character without consuming it.
func (c Cursor) First() (rune, bool) {
	return c.nth(0)
}

// Second returns the character after First without consuming anything.
func (c Cursor) Second() (rune, bool) {
	return c.nth(1)
}

func (c Cursor) nth(n int) (rune, bool) {
	if c.pos+n >= len(c.src) {
		return 0, false
	}
	return c.src[c.pos+n], true
}

// Bump consumes and returns the next character. At end of input it
// returns false and the position stays where it is.
func (c *Cursor) Bump() (rune, bool) {
	if c.pos >= len(c.src) {
		return 0, false
	}
	r := c.src[c.pos]
	c.pos++
	return r, true
}
