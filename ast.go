package ember

import (
	"bytes"
	"strconv"
)

// Node 是AST中所有节点的基础接口.
type Node interface {
	Pos() Position
	String() string
	Format(w *bytes.Buffer, indent string, opts FormatOptions)
}

// Stmt 代表一个语句.
type Stmt interface {
	Node
	stmtNode()
}

// Expr 代表一个表达式.
type Expr interface {
	Node
	exprNode()
}

func render(n Node) string {
	buf := getBuffer()
	defer putBuffer(buf)
	n.Format(buf, "", FormatOptions{Style: StyleDefault})
	return buf.String()
}

// Program 是一次 ParseProgram 的结果, 按源码顺序保存顶层语句.
type Program struct {
	Statements []Stmt
}

func (p *Program) Pos() Position {
	if len(p.Statements) == 0 {
		return Position{}
	}
	return NewPosition(p.Statements[0].Pos().Start, p.Statements[len(p.Statements)-1].Pos().End)
}

func (p *Program) String() string { return render(p) }

func (p *Program) Format(w *bytes.Buffer, indent string, opts FormatOptions) {
	formatStatements(w, p.Statements, indent, opts)
}

func formatStatements(w *bytes.Buffer, stmts []Stmt, indent string, opts FormatOptions) {
	for i, s := range stmts {
		if i > 0 {
			if opts.Style == StyleSingleLine {
				w.WriteString(" ")
			} else {
				w.WriteString("\n")
			}
		}
		if opts.Style != StyleSingleLine {
			w.WriteString(indent)
		}
		s.Format(w, indent, opts)
	}
}

// --- 语句 (Statements) ---

// LetStmt 表示一个绑定语句, 如 `let name = value;`.
type LetStmt struct {
	Name  *Identifier
	Value Expr
	Span  Position
}

func (ls *LetStmt) stmtNode()      {}
func (ls *LetStmt) Pos() Position  { return ls.Span }
func (ls *LetStmt) String() string { return render(ls) }
func (ls *LetStmt) Format(w *bytes.Buffer, indent string, opts FormatOptions) {
	w.WriteString(string(KeywordLet))
	w.WriteString(" ")
	ls.Name.Format(w, indent, opts)
	w.WriteString(" = ")
	ls.Value.Format(w, indent, opts)
	w.WriteString(";")
}

// ExprStmt 表示一个单独成句的表达式.
type ExprStmt struct {
	X    Expr
	Span Position
}

func (es *ExprStmt) stmtNode()      {}
func (es *ExprStmt) Pos() Position  { return es.Span }
func (es *ExprStmt) String() string { return render(es) }
func (es *ExprStmt) Format(w *bytes.Buffer, indent string, opts FormatOptions) {
	es.X.Format(w, indent, opts)
	w.WriteString(";")
}

// --- 表达式 (Expressions) ---

// Identifier 表示一个标识符.
type Identifier struct {
	Name string
	Span Position
}

func (i *Identifier) exprNode()      {}
func (i *Identifier) Pos() Position  { return i.Span }
func (i *Identifier) String() string { return i.Name }
func (i *Identifier) Format(w *bytes.Buffer, indent string, opts FormatOptions) {
	w.WriteString(i.Name)
}

// CallExpr 表示单参数调用 `called(input)`. Called 不会是另一个 CallExpr.
type CallExpr struct {
	Called Expr
	Input  Expr
	Span   Position
}

func (ce *CallExpr) exprNode()      {}
func (ce *CallExpr) Pos() Position  { return ce.Span }
func (ce *CallExpr) String() string { return render(ce) }
func (ce *CallExpr) Format(w *bytes.Buffer, indent string, opts FormatOptions) {
	ce.Called.Format(w, indent, opts)
	w.WriteString("(")
	ce.Input.Format(w, indent, opts)
	w.WriteString(")")
}

// AccessExpr 表示成员访问 `target.field`.
type AccessExpr struct {
	Target Expr
	Field  *Identifier
	Span   Position
}

func (ae *AccessExpr) exprNode()      {}
func (ae *AccessExpr) Pos() Position  { return ae.Span }
func (ae *AccessExpr) String() string { return render(ae) }
func (ae *AccessExpr) Format(w *bytes.Buffer, indent string, opts FormatOptions) {
	ae.Target.Format(w, indent, opts)
	w.WriteString(".")
	ae.Field.Format(w, indent, opts)
}

// BlockExpr 表示一个语句块 `{ ... }`.
type BlockExpr struct {
	Statements []Stmt
	Span       Position
}

func (be *BlockExpr) exprNode()      {}
func (be *BlockExpr) Pos() Position  { return be.Span }
func (be *BlockExpr) String() string { return render(be) }
func (be *BlockExpr) Format(w *bytes.Buffer, indent string, opts FormatOptions) {
	if len(be.Statements) == 0 {
		w.WriteString("{}")
		return
	}
	if opts.Style == StyleSingleLine {
		w.WriteString("{")
		formatStatements(w, be.Statements, "", opts)
		w.WriteString("}")
		return
	}
	w.WriteString("{\n")
	formatStatements(w, be.Statements, indent+"\t", opts)
	w.WriteString("\n" + indent + "}")
}

// Literal 表示一个字面量.
type Literal interface {
	Expr
	literalNode()
}

// NumberLiteral 表示一个十进制整数字面量.
type NumberLiteral struct {
	Value uint32
	Span  Position
}

func (nl *NumberLiteral) exprNode()      {}
func (nl *NumberLiteral) literalNode()   {}
func (nl *NumberLiteral) Pos() Position  { return nl.Span }
func (nl *NumberLiteral) String() string { return strconv.FormatUint(uint64(nl.Value), 10) }
func (nl *NumberLiteral) Format(w *bytes.Buffer, indent string, opts FormatOptions) {
	w.WriteString(nl.String())
}

// BoolLiteral 表示 `true` 或 `false`.
type BoolLiteral struct {
	Value bool
	Span  Position
}

func (bl *BoolLiteral) exprNode()      {}
func (bl *BoolLiteral) literalNode()   {}
func (bl *BoolLiteral) Pos() Position  { return bl.Span }
func (bl *BoolLiteral) String() string { return strconv.FormatBool(bl.Value) }
func (bl *BoolLiteral) Format(w *bytes.Buffer, indent string, opts FormatOptions) {
	w.WriteString(bl.String())
}

// StringLiteral 表示一个带引号的字符串. Span 包含两端的定界符.
type StringLiteral struct {
	Value string
	Quote Quote
	Span  Position
}

func (sl *StringLiteral) exprNode()      {}
func (sl *StringLiteral) literalNode()   {}
func (sl *StringLiteral) Pos() Position  { return sl.Span }
func (sl *StringLiteral) String() string { return render(sl) }
func (sl *StringLiteral) Format(w *bytes.Buffer, indent string, opts FormatOptions) {
	q := sl.Quote
	if q == 0 {
		q = DoubleQuote
	}
	w.WriteRune(rune(q))
	w.WriteString(sl.Value)
	w.WriteRune(rune(q))
}

// Inspect traverses the tree rooted at node in depth-first order. If f
// returns false, the children of that node are skipped.
func Inspect(node Node, f func(Node) bool) {
	if node == nil || !f(node) {
		return
	}
	switch n := node.(type) {
	case *Program:
		for _, s := range n.Statements {
			Inspect(s, f)
		}
	case *LetStmt:
		Inspect(n.Name, f)
		Inspect(n.Value, f)
	case *ExprStmt:
		Inspect(n.X, f)
	case *CallExpr:
		Inspect(n.Called, f)
		Inspect(n.Input, f)
	case *AccessExpr:
		Inspect(n.Target, f)
		Inspect(n.Field, f)
	case *BlockExpr:
		for _, s := range n.Statements {
			Inspect(s, f)
		}
	}
}
