// Package dump renders syntax trees as structured documents (YAML or JSON)
// for tools that want to inspect the parser's output without linking against
// the ast package.
package dump

import (
	"encoding/json"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/iZarrios/monkey-front/ast"
)

// Entry is one node of the rendered tree. Only the fields that make sense for
// Type are set.
type Entry struct {
	Type    string `yaml:"type" json:"type"`
	Literal string `yaml:"literal,omitempty" json:"literal,omitempty"`

	Value    any    `yaml:"value,omitempty" json:"value,omitempty"`
	Operator string `yaml:"operator,omitempty" json:"operator,omitempty"`

	Name        *Entry `yaml:"name,omitempty" json:"name,omitempty"`
	Expression  *Entry `yaml:"expression,omitempty" json:"expression,omitempty"`
	Left        *Entry `yaml:"left,omitempty" json:"left,omitempty"`
	Right       *Entry `yaml:"right,omitempty" json:"right,omitempty"`
	Condition   *Entry `yaml:"condition,omitempty" json:"condition,omitempty"`
	Consequence *Entry `yaml:"consequence,omitempty" json:"consequence,omitempty"`
	Alternative *Entry `yaml:"alternative,omitempty" json:"alternative,omitempty"`
	Function    *Entry `yaml:"function,omitempty" json:"function,omitempty"`
	Body        *Entry `yaml:"body,omitempty" json:"body,omitempty"`

	Parameters []*Entry `yaml:"parameters,omitempty" json:"parameters,omitempty"`
	Arguments  []*Entry `yaml:"arguments,omitempty" json:"arguments,omitempty"`
	Statements []*Entry `yaml:"statements,omitempty" json:"statements,omitempty"`
}

// Build converts node into an Entry tree.
func Build(node ast.Node) *Entry {
	switch n := node.(type) {
	case nil:
		return nil
	case *ast.Program:
		return &Entry{Type: "Program", Statements: buildStatements(n.Statements)}
	case *ast.LetStatement:
		return &Entry{Type: "LetStatement", Literal: n.TokenLiteral(), Name: buildIdentifier(n.Name), Expression: buildExpression(n.Value)}
	case *ast.ReturnStatement:
		return &Entry{Type: "ReturnStatement", Literal: n.TokenLiteral(), Expression: buildExpression(n.ReturnValue)}
	case *ast.ExpressionStatement:
		return &Entry{Type: "ExpressionStatement", Literal: n.TokenLiteral(), Expression: buildExpression(n.Expression)}
	case *ast.BlockStatement:
		return buildBlock(n)
	case *ast.Identifier:
		return &Entry{Type: "Identifier", Literal: n.TokenLiteral(), Value: n.Value}
	case *ast.IntegerLiteral:
		return &Entry{Type: "IntegerLiteral", Literal: n.TokenLiteral(), Value: n.Value}
	case *ast.Boolean:
		return &Entry{Type: "Boolean", Literal: n.TokenLiteral(), Value: n.Value}
	case *ast.PrefixExpression:
		return &Entry{Type: "PrefixExpression", Literal: n.TokenLiteral(), Operator: n.Operator, Right: buildExpression(n.Right)}
	case *ast.InfixExpression:
		return &Entry{
			Type:     "InfixExpression",
			Literal:  n.TokenLiteral(),
			Operator: n.Operator,
			Left:     buildExpression(n.Left),
			Right:    buildExpression(n.Right),
		}
	case *ast.IfExpression:
		return &Entry{
			Type:        "IfExpression",
			Literal:     n.TokenLiteral(),
			Condition:   buildExpression(n.Condition),
			Consequence: buildBlock(n.Consequence),
			Alternative: buildBlock(n.Alternative),
		}
	case *ast.FunctionLiteral:
		e := &Entry{Type: "FunctionLiteral", Literal: n.TokenLiteral(), Body: buildBlock(n.Body)}
		for _, p := range n.Parameters {
			e.Parameters = append(e.Parameters, buildIdentifier(p))
		}
		return e
	case *ast.CallExpression:
		e := &Entry{Type: "CallExpression", Literal: n.TokenLiteral(), Function: buildExpression(n.Function)}
		for _, a := range n.Arguments {
			e.Arguments = append(e.Arguments, buildExpression(a))
		}
		return e
	default:
		return &Entry{Type: fmt.Sprintf("%T", node), Literal: node.TokenLiteral()}
	}
}

// YAML writes node as a YAML document.
func YAML(w io.Writer, node ast.Node) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(Build(node)); err != nil {
		return fmt.Errorf("encoding yaml: %w", err)
	}
	return enc.Close()
}

// JSON writes node as an indented JSON document.
func JSON(w io.Writer, node ast.Node) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(Build(node)); err != nil {
		return fmt.Errorf("encoding json: %w", err)
	}
	return nil
}

// Typed nil pointers must come out as absent fields, not as entries.

func buildExpression(e ast.Expression) *Entry {
	if e == nil {
		return nil
	}
	return Build(e)
}

func buildIdentifier(i *ast.Identifier) *Entry {
	if i == nil {
		return nil
	}
	return Build(i)
}

func buildBlock(b *ast.BlockStatement) *Entry {
	if b == nil {
		return nil
	}
	return &Entry{Type: "BlockStatement", Literal: b.TokenLiteral(), Statements: buildStatements(b.Statements)}
}

func buildStatements(stmts []ast.Statement) []*Entry {
	out := make([]*Entry, 0, len(stmts))
	for _, s := range stmts {
		out = append(out, Build(s))
	}
	return out
}
