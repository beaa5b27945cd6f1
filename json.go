package ember

import (
	"fmt"
	"io"

	"github.com/go-json-experiment/json"
	"github.com/go-json-experiment/json/jsontext"
)

// jsonNode 是 AST 的 JSON 形式. 每个节点都带有它在源码中的区间,
// 供诊断工具把结果映射回源文本.
type jsonNode struct {
	Type       string      `json:"type"`
	Pos        Position    `json:"pos"`
	Name       string      `json:"name,omitempty"`
	Value      any         `json:"value,omitzero"`
	Quote      string      `json:"quote,omitempty"`
	Called     *jsonNode   `json:"called,omitempty"`
	Input      *jsonNode   `json:"input,omitempty"`
	Target     *jsonNode   `json:"target,omitempty"`
	Field      *jsonNode   `json:"field,omitempty"`
	Expr       *jsonNode   `json:"expr,omitempty"`
	Statements []*jsonNode `json:"statements,omitempty"`
}

type jsonToken struct {
	Type    TokenType `json:"type"`
	Literal string    `json:"literal"`
	Quote   string    `json:"quote,omitempty"`
	Pos     Position  `json:"pos"`
}

func toJSONNode(n Node) *jsonNode {
	if n == nil {
		return nil
	}
	switch n := n.(type) {
	case *Program:
		return &jsonNode{Type: "Program", Pos: n.Pos(), Statements: toJSONNodes(n.Statements)}
	case *LetStmt:
		return &jsonNode{Type: "Let", Pos: n.Span, Name: n.Name.Name, Expr: toJSONNode(n.Value)}
	case *ExprStmt:
		return &jsonNode{Type: "Expr", Pos: n.Span, Expr: toJSONNode(n.X)}
	case *Identifier:
		return &jsonNode{Type: "Identifier", Pos: n.Span, Name: n.Name}
	case *CallExpr:
		return &jsonNode{Type: "Call", Pos: n.Span, Called: toJSONNode(n.Called), Input: toJSONNode(n.Input)}
	case *AccessExpr:
		return &jsonNode{Type: "Access", Pos: n.Span, Target: toJSONNode(n.Target), Field: toJSONNode(n.Field)}
	case *BlockExpr:
		return &jsonNode{Type: "Block", Pos: n.Span, Statements: toJSONNodes(n.Statements)}
	case *NumberLiteral:
		return &jsonNode{Type: "Number", Pos: n.Span, Value: n.Value}
	case *BoolLiteral:
		return &jsonNode{Type: "Bool", Pos: n.Span, Value: n.Value}
	case *StringLiteral:
		return &jsonNode{Type: "String", Pos: n.Span, Value: n.Value, Quote: n.Quote.String()}
	}
	return &jsonNode{Type: fmt.Sprintf("%T", n), Pos: n.Pos()}
}

func toJSONNodes(stmts []Stmt) []*jsonNode {
	out := make([]*jsonNode, 0, len(stmts))
	for _, s := range stmts {
		out = append(out, toJSONNode(s))
	}
	return out
}

// EncodeJSON writes node and all its descendants to w as indented JSON.
func EncodeJSON(w io.Writer, node Node) error {
	err := json.MarshalWrite(w, toJSONNode(node), jsontext.Expand(true), jsontext.WithIndent("  "))
	if err != nil {
		return fmt.Errorf("could not marshal json: %w", err)
	}
	return nil
}

// MarshalNode returns the compact JSON form of node.
func MarshalNode(node Node) ([]byte, error) {
	buf := getBuffer()
	defer putBuffer(buf)
	if err := json.MarshalWrite(buf, toJSONNode(node)); err != nil {
		return nil, fmt.Errorf("could not marshal json: %w", err)
	}
	return append([]byte(nil), buf.Bytes()...), nil
}

// EncodeTokensJSON writes tokens as a JSON array, one object per token.
func EncodeTokensJSON(w io.Writer, tokens []Token) error {
	out := make([]jsonToken, 0, len(tokens))
	for _, t := range tokens {
		out = append(out, jsonToken{Type: t.Type, Literal: t.Literal, Quote: t.Quote.String(), Pos: t.Pos})
	}
	err := json.MarshalWrite(w, out, jsontext.Expand(true), jsontext.WithIndent("  "))
	if err != nil {
		return fmt.Errorf("could not marshal json: %w", err)
	}
	return nil
}
