package ember

import "github.com/tliron/commonlog"

// OutputStyle defines the different formatting styles for the output.
type OutputStyle int

const (
	// StyleMultiLine is the default style. Every statement goes on its own
	// line and block bodies are indented with tabs.
	StyleMultiLine OutputStyle = iota

	// StyleSingleLine outputs the whole program on a single line,
	// statements separated by a space after their semicolon.
	StyleSingleLine
)

const (
	StyleDefault = StyleMultiLine
)

// FormatOptions provides options for controlling the formatter's output.
type FormatOptions struct {
	Style OutputStyle
}

// Option configures a Parser.
type Option func(*Parser)

// WithLogger replaces the parser's trace logger.
func WithLogger(log commonlog.Logger) Option {
	return func(p *Parser) {
		p.log = log
	}
}

// WithBlocks toggles the `{ stmt* }` block expression. Enabled by default.
func WithBlocks(enabled bool) Option {
	return func(p *Parser) {
		p.blocks = enabled
	}
}

// WithMemberAccess toggles `a.b` member access. Enabled by default.
func WithMemberAccess(enabled bool) Option {
	return func(p *Parser) {
		p.access = enabled
	}
}
