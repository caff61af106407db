// Package tsparse wraps the tree-sitter TypeScript grammar for reading
// declaration files.
package tsparse

import (
	"strconv"
	"strings"

	sitter "github.com/tree-sitter/go-tree-sitter"
	tree_sitter_typescript "github.com/tree-sitter/tree-sitter-typescript/bindings/go"
)

var typeScriptLanguage = sitter.NewLanguage(tree_sitter_typescript.LanguageTypescript())

// NewParser returns a parser for TypeScript sources. Callers must Close it.
func NewParser() (*sitter.Parser, error) {
	parser := sitter.NewParser()
	if err := parser.SetLanguage(typeScriptLanguage); err != nil {
		parser.Close()
		return nil, err
	}
	return parser, nil
}

// Text returns the source text spanned by node.
func Text(node *sitter.Node, source []byte) string {
	if node == nil {
		return ""
	}
	return node.Utf8Text(source)
}

// Position returns the 1-based line and column where node starts.
func Position(node *sitter.Node) (line, column int) {
	if node == nil {
		return 0, 0
	}
	p := node.StartPosition()
	return int(p.Row) + 1, int(p.Column) + 1
}

// FirstError returns the first ERROR or MISSING node under root, or nil when
// the tree parsed cleanly.
func FirstError(root *sitter.Node) *sitter.Node {
	if root == nil || !root.HasError() {
		return nil
	}
	var found *sitter.Node
	WalkPreOrder(root, func(n *sitter.Node) bool {
		if found != nil {
			return false
		}
		if n.IsError() || n.IsMissing() {
			found = n
			return false
		}
		return n.HasError()
	})
	return found
}

// WalkPreOrder visits root and its descendants depth first. Returning false
// from visit skips the children of that node.
func WalkPreOrder(root *sitter.Node, visit func(*sitter.Node) bool) {
	if root == nil || visit == nil {
		return
	}

	stack := []*sitter.Node{root}
	for len(stack) > 0 {
		node := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if !visit(node) {
			continue
		}

		for i := int(node.ChildCount()) - 1; i >= 0; i-- {
			if child := node.Child(uint(i)); child != nil {
				stack = append(stack, child)
			}
		}
	}
}

// UnquoteString decodes a TypeScript string literal in single or double
// quotes. Malformed escapes fall back to the text between the quotes.
func UnquoteString(raw string) string {
	raw = strings.TrimSpace(raw)
	if len(raw) < 2 {
		return raw
	}
	quote := raw[0]
	if (quote != '\'' && quote != '"') || raw[len(raw)-1] != quote {
		return raw
	}
	body := raw[1 : len(raw)-1]
	if !strings.ContainsRune(body, '\\') && quote == '"' {
		return body
	}

	// Re-quote as a Go string: \' becomes ' and bare " gets escaped.
	var b strings.Builder
	b.WriteByte('"')
	for i := 0; i < len(body); i++ {
		c := body[i]
		switch {
		case c == '\\' && i+1 < len(body) && body[i+1] == '\'':
			b.WriteByte('\'')
			i++
		case c == '\\' && i+1 < len(body):
			b.WriteByte(c)
			b.WriteByte(body[i+1])
			i++
		case c == '"':
			b.WriteString(`\"`)
		default:
			b.WriteByte(c)
		}
	}
	b.WriteByte('"')

	unquoted, err := strconv.Unquote(b.String())
	if err != nil {
		return body
	}
	return unquoted
}
