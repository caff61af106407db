package taxonomy

import (
	"regexp"
	"strings"

	sitter "github.com/tree-sitter/go-tree-sitter"

	"github.com/erraggy/taxokit/internal/tsparse"
	"github.com/erraggy/taxokit/taxerrors"
)

// Member is one string literal of a taxonomy union.
type Member struct {
	Value  string `json:"value" yaml:"value"`
	Line   int    `json:"line" yaml:"line"`
	Column int    `json:"column" yaml:"column"`
}

// Taxonomy is a type alias extracted from a declaration file.
type Taxonomy struct {
	// Name is the alias name, e.g. "AuthMethodTaxonomy"
	Name string `json:"name" yaml:"name"`
	// File is the path of the declaring file
	File string `json:"file" yaml:"file"`
	// Line and Column locate the alias declaration (1-based)
	Line   int `json:"line" yaml:"line"`
	Column int `json:"column" yaml:"column"`
	// Exported is true for `export type` declarations
	Exported bool `json:"exported" yaml:"exported"`
	// Documented is true when a comment directly precedes the declaration
	Documented bool `json:"documented" yaml:"documented"`
	// Doc is the text of that comment with comment markers removed
	Doc string `json:"doc,omitempty" yaml:"doc,omitempty"`
	// Members are the string literal members in source order
	Members []Member `json:"members" yaml:"members"`
	// NumericMembers counts numeric literal members
	NumericMembers int `json:"numeric_members,omitempty" yaml:"numeric_members,omitempty"`
}

// Values returns the string member values in source order.
func (t Taxonomy) Values() []string {
	values := make([]string, len(t.Members))
	for i, m := range t.Members {
		values[i] = m.Value
	}
	return values
}

// File is the extraction result for one declaration file.
type File struct {
	Path       string      `json:"path" yaml:"path"`
	Taxonomies []*Taxonomy `json:"taxonomies" yaml:"taxonomies"`
	// SyntaxErrorLine and SyntaxErrorColumn locate the first syntax error,
	// or are 0 when the file parsed cleanly
	SyntaxErrorLine   int `json:"syntax_error_line,omitempty" yaml:"syntax_error_line,omitempty"`
	SyntaxErrorColumn int `json:"syntax_error_column,omitempty" yaml:"syntax_error_column,omitempty"`
}

// ValueCount returns the number of literal members across all taxonomies.
func (f *File) ValueCount() int {
	n := 0
	for _, t := range f.Taxonomies {
		n += len(t.Members) + t.NumericMembers
	}
	return n
}

// Extract parses a TypeScript declaration file and returns every type alias
// whose name matches namePattern. Syntax errors do not stop extraction; the
// parser recovers and the first error position is recorded on the File.
func Extract(path string, source []byte, namePattern *regexp.Regexp) (*File, error) {
	parser, err := tsparse.NewParser()
	if err != nil {
		return nil, &taxerrors.ParseError{Path: path, Message: "cannot create TypeScript parser", Cause: err}
	}
	defer parser.Close()

	tree := parser.Parse(source, nil)
	if tree == nil {
		return nil, &taxerrors.ParseError{Path: path, Message: "parser returned no tree"}
	}
	defer tree.Close()

	root := tree.RootNode()
	file := &File{Path: path}
	if errNode := tsparse.FirstError(root); errNode != nil {
		file.SyntaxErrorLine, file.SyntaxErrorColumn = tsparse.Position(errNode)
	}

	tsparse.WalkPreOrder(root, func(n *sitter.Node) bool {
		if n.Kind() != "type_alias_declaration" {
			return true
		}
		name := strings.TrimSpace(tsparse.Text(n.ChildByFieldName("name"), source))
		if name != "" && namePattern.MatchString(name) {
			file.Taxonomies = append(file.Taxonomies, extractAlias(n, name, path, source))
		}
		return false
	})
	return file, nil
}

func extractAlias(n *sitter.Node, name, path string, source []byte) *Taxonomy {
	tax := &Taxonomy{Name: name, File: path}
	tax.Line, tax.Column = tsparse.Position(n)

	// The comment precedes the outermost wrapper: `export declare type ...`.
	stmt := n
	for p := stmt.Parent(); p != nil; p = p.Parent() {
		kind := p.Kind()
		if kind != "export_statement" && kind != "ambient_declaration" {
			break
		}
		if kind == "export_statement" {
			tax.Exported = true
		}
		stmt = p
	}
	if doc, ok := precedingComment(stmt, source); ok {
		tax.Documented = true
		tax.Doc = doc
	}

	collectMembers(n.ChildByFieldName("value"), source, tax)
	return tax
}

// precedingComment returns the comment that ends on the line before node
// (or on the same line), with comment markers stripped.
func precedingComment(node *sitter.Node, source []byte) (string, bool) {
	prev := node.PrevSibling()
	if prev == nil || prev.Kind() != "comment" {
		return "", false
	}
	if prev.EndPosition().Row+1 < node.StartPosition().Row {
		return "", false
	}
	return cleanComment(tsparse.Text(prev, source)), true
}

func cleanComment(text string) string {
	text = strings.TrimSpace(text)
	if strings.HasPrefix(text, "//") {
		return strings.TrimSpace(strings.TrimPrefix(text, "//"))
	}
	text = strings.TrimSuffix(strings.TrimPrefix(text, "/*"), "*/")
	text = strings.TrimPrefix(text, "*")

	var lines []string
	for line := range strings.SplitSeq(text, "\n") {
		line = strings.TrimSpace(line)
		line = strings.TrimSpace(strings.TrimPrefix(line, "*"))
		if line != "" {
			lines = append(lines, line)
		}
	}
	return strings.Join(lines, "\n")
}

func collectMembers(node *sitter.Node, source []byte, tax *Taxonomy) {
	if node == nil {
		return
	}
	switch node.Kind() {
	case "union_type", "parenthesized_type":
		for i := uint(0); i < node.NamedChildCount(); i++ {
			collectMembers(node.NamedChild(i), source, tax)
		}
	case "literal_type":
		if node.NamedChildCount() > 0 {
			collectMembers(node.NamedChild(0), source, tax)
		}
	case "string":
		line, col := tsparse.Position(node)
		tax.Members = append(tax.Members, Member{
			Value:  tsparse.UnquoteString(tsparse.Text(node, source)),
			Line:   line,
			Column: col,
		})
	case "number", "unary_expression":
		tax.NumericMembers++
	}
}
