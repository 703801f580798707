package dump

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"

	"github.com/iZarrios/monkey-front/ast"
	"github.com/iZarrios/monkey-front/parser"
)

func parse(t *testing.T, input string) *ast.Program {
	t.Helper()
	program, diags := parser.Parse(input)
	if len(diags) != 0 {
		t.Fatalf("parser errors for %q: %v", input, diags)
	}
	return program
}

func TestBuild(t *testing.T) {
	program := parse(t, "let x = -1 + y; return;")

	root := Build(program)
	if root.Type != "Program" {
		t.Fatalf("root.Type wrong. got=%q", root.Type)
	}
	if len(root.Statements) != 2 {
		t.Fatalf("expected 2 statements, got=%d", len(root.Statements))
	}

	let := root.Statements[0]
	if let.Type != "LetStatement" || let.Name == nil || let.Name.Value != "x" {
		t.Fatalf("let entry wrong: %+v", let)
	}

	infix := let.Expression
	if infix.Type != "InfixExpression" || infix.Operator != "+" {
		t.Fatalf("infix entry wrong: %+v", infix)
	}
	if infix.Left.Type != "PrefixExpression" || infix.Left.Right.Value != int64(1) {
		t.Fatalf("prefix entry wrong: %+v", infix.Left)
	}
	if infix.Right.Type != "Identifier" || infix.Right.Value != "y" {
		t.Fatalf("identifier entry wrong: %+v", infix.Right)
	}

	ret := root.Statements[1]
	if ret.Type != "ReturnStatement" || ret.Expression != nil {
		t.Fatalf("bare return entry wrong: %+v", ret)
	}
}

func TestBuildIfAndFunction(t *testing.T) {
	program := parse(t, "if (ok) { f(1, true) } else { fn(a) { a } }")

	stmt := Build(program).Statements[0]
	ifExp := stmt.Expression
	if ifExp.Type != "IfExpression" {
		t.Fatalf("expected IfExpression, got=%q", ifExp.Type)
	}
	if ifExp.Condition.Value != "ok" {
		t.Errorf("condition wrong: %+v", ifExp.Condition)
	}

	call := ifExp.Consequence.Statements[0].Expression
	if call.Type != "CallExpression" || call.Function.Value != "f" || len(call.Arguments) != 2 {
		t.Fatalf("call entry wrong: %+v", call)
	}
	if call.Arguments[1].Value != true {
		t.Errorf("boolean argument wrong: %+v", call.Arguments[1])
	}

	fn := ifExp.Alternative.Statements[0].Expression
	if fn.Type != "FunctionLiteral" || len(fn.Parameters) != 1 || fn.Body == nil {
		t.Fatalf("function entry wrong: %+v", fn)
	}
}

func TestYAML(t *testing.T) {
	program := parse(t, "let x = 5;")

	var buf bytes.Buffer
	if err := YAML(&buf, program); err != nil {
		t.Fatalf("YAML returned error: %v", err)
	}

	out := buf.String()
	if !strings.HasPrefix(out, "type: Program\n") {
		t.Errorf("yaml should start with the root type, got:\n%s", out)
	}

	var decoded struct {
		Type       string `yaml:"type"`
		Statements []struct {
			Type string `yaml:"type"`
			Name struct {
				Value string `yaml:"value"`
			} `yaml:"name"`
			Expression struct {
				Type  string `yaml:"type"`
				Value int64  `yaml:"value"`
			} `yaml:"expression"`
		} `yaml:"statements"`
	}
	if err := yaml.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("output is not valid yaml: %v\n%s", err, out)
	}
	if len(decoded.Statements) != 1 {
		t.Fatalf("expected 1 statement, got=%d", len(decoded.Statements))
	}
	s := decoded.Statements[0]
	if s.Type != "LetStatement" || s.Name.Value != "x" || s.Expression.Type != "IntegerLiteral" || s.Expression.Value != 5 {
		t.Errorf("decoded yaml wrong: %+v", s)
	}
}

func TestJSON(t *testing.T) {
	program := parse(t, "a * b")

	var buf bytes.Buffer
	if err := JSON(&buf, program); err != nil {
		t.Fatalf("JSON returned error: %v", err)
	}

	var decoded map[string]any
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("output is not valid json: %v\n%s", err, buf.String())
	}

	stmts, ok := decoded["statements"].([]any)
	if !ok || len(stmts) != 1 {
		t.Fatalf("statements wrong: %v", decoded["statements"])
	}
	exp := stmts[0].(map[string]any)["expression"].(map[string]any)
	if exp["type"] != "InfixExpression" || exp["operator"] != "*" {
		t.Errorf("expression wrong: %v", exp)
	}
}

func TestBuildNil(t *testing.T) {
	if Build(nil) != nil {
		t.Errorf("Build(nil) should be nil")
	}
}
