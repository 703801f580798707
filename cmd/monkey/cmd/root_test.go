package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/iZarrios/monkey-front/config"
)

// execute runs the root command with fresh flag values and captured output.
func execute(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()
	t.Setenv(config.EnvVar, "")

	cfgFile, verbose, trace = "", false, false
	parseFormat, replMode = "text", ""

	var out, errOut bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&errOut)
	rootCmd.SetIn(strings.NewReader(stdin))
	rootCmd.SetArgs(args)

	err := rootCmd.Execute()
	return out.String(), errOut.String(), err
}

func TestVersion(t *testing.T) {
	out, _, err := execute(t, "", "version")
	if err != nil {
		t.Fatalf("version returned error: %v", err)
	}
	if !strings.HasPrefix(out, "monkey v"+Version+"\n") {
		t.Errorf("version output wrong. got=%q", out)
	}
}

func TestLexFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "x.monkey")
	if err := os.WriteFile(path, []byte("let x = 5;"), 0o644); err != nil {
		t.Fatal(err)
	}

	out, _, err := execute(t, "", "lex", path)
	if err != nil {
		t.Fatalf("lex returned error: %v", err)
	}

	expected := "{Type:LET Literal:let}\n" +
		"{Type:IDENT Literal:x}\n" +
		"{Type:= Literal:=}\n" +
		"{Type:INT Literal:5}\n" +
		"{Type:; Literal:;}\n" +
		"{Type:EOF Literal:}\n"
	if out != expected {
		t.Errorf("lex output wrong.\nexpected=%q\ngot=     %q", expected, out)
	}
}

func TestParseStdin(t *testing.T) {
	out, _, err := execute(t, "let x = 1 + 2 * 3;\nx", "parse")
	if err != nil {
		t.Fatalf("parse returned error: %v", err)
	}
	if out != "let x = (1 + (2 * 3));x;\n" {
		t.Errorf("parse output wrong. got=%q", out)
	}
}

func TestParseYAML(t *testing.T) {
	out, _, err := execute(t, "return 5;", "parse", "--format", "yaml")
	if err != nil {
		t.Fatalf("parse returned error: %v", err)
	}
	for _, want := range []string{"type: Program", "type: ReturnStatement", "type: IntegerLiteral", "value: 5"} {
		if !strings.Contains(out, want) {
			t.Errorf("yaml output missing %q:\n%s", want, out)
		}
	}
}

func TestParseErrors(t *testing.T) {
	out, errOut, err := execute(t, "let x 5; let y = 2;", "parse")
	if err == nil {
		t.Fatalf("expected an error")
	}
	if !strings.Contains(err.Error(), "1 parse error(s)") {
		t.Errorf("error wrong. got=%v", err)
	}
	if out != "let y = 2;\n" {
		t.Errorf("partial program not printed. got=%q", out)
	}
	if !strings.Contains(errOut, "expected next token to be =, got INT instead") {
		t.Errorf("diagnostic not logged. got=%q", errOut)
	}
}

func TestParseUnknownFormat(t *testing.T) {
	_, _, err := execute(t, "x", "parse", "--format", "xml")
	if err == nil || !strings.Contains(err.Error(), "unknown format") {
		t.Errorf("expected unknown format error, got=%v", err)
	}
}

func TestReplFromStdin(t *testing.T) {
	path := filepath.Join(t.TempDir(), "monkey.toml")
	if err := os.WriteFile(path, []byte("[repl]\ncolor = false\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	out, _, err := execute(t, "1 + 2\n", "--config", path, "repl")
	if err != nil {
		t.Fatalf("repl returned error: %v", err)
	}
	if out != ">> (1 + 2);\n>> \nGoodbye.\n" {
		t.Errorf("repl output wrong. got=%q", out)
	}

	out, _, err = execute(t, "1 + 2\n", "--config", path, "repl", "--mode", "lex")
	if err != nil {
		t.Fatalf("repl returned error: %v", err)
	}
	if !strings.Contains(out, "{Type:+ Literal:+}") {
		t.Errorf("lex mode output wrong. got=%q", out)
	}
}

func TestBadConfig(t *testing.T) {
	_, _, err := execute(t, "", "--config", "nope.ini", "version")
	if err == nil || !strings.Contains(err.Error(), "loading config") {
		t.Errorf("expected config error, got=%v", err)
	}
}

func TestTraceFlag(t *testing.T) {
	_, errOut, err := execute(t, "a * b", "--trace", "parse")
	if err != nil {
		t.Fatalf("parse returned error: %v", err)
	}
	if !strings.Contains(errOut, "BEGIN parseInfixExpression") {
		t.Errorf("trace missing from stderr:\n%s", errOut)
	}
}
