package repl

import (
	"bytes"
	"strings"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/iZarrios/monkey-front/config"
)

func plainConfig(mode config.Mode) *config.Config {
	cfg := config.Default()
	cfg.REPL.Color = false
	cfg.REPL.Mode = mode
	return cfg
}

func TestStartParseMode(t *testing.T) {
	in := strings.NewReader("let x = 1 + 2 * 3;\nlet x 5;\n\n-a\n")
	var out bytes.Buffer

	New(plainConfig(config.ModeParse)).Start(in, &out)

	expected := ">> let x = (1 + (2 * 3));\n" +
		">>  parser errors:\n" +
		"\texpected next token to be =, got INT instead\n" +
		">> " +
		">> (-a);\n" +
		">> \n" +
		"Goodbye.\n"

	if out.String() != expected {
		t.Errorf("output wrong.\nexpected=%q\ngot=     %q", expected, out.String())
	}
}

func TestStartLexMode(t *testing.T) {
	in := strings.NewReader("let x = @;\n")
	var out bytes.Buffer

	New(plainConfig(config.ModeLex)).Start(in, &out)

	expected := ">> {Type:LET Literal:let}\n" +
		"{Type:IDENT Literal:x}\n" +
		"{Type:= Literal:=}\n" +
		"{Type:ILLEGAL Literal:@}\n" +
		"{Type:; Literal:;}\n" +
		">> \n" +
		"Goodbye.\n"

	if out.String() != expected {
		t.Errorf("output wrong.\nexpected=%q\ngot=     %q", expected, out.String())
	}
}

func TestCommands(t *testing.T) {
	in := strings.NewReader(":mode lex\n!=\n:mode parse\n!x\n:mode eval\n:what\n:quit\nx\n")
	var out bytes.Buffer

	New(plainConfig(config.ModeParse)).Start(in, &out)

	expected := ">> mode: lex\n" +
		">> {Type:!= Literal:!=}\n" +
		">> mode: parse\n" +
		">> (!x);\n" +
		">> usage: :mode lex|parse\n" +
		">> unknown command. Type :quit to exit.\n" +
		">> \n" +
		"Goodbye.\n"

	if out.String() != expected {
		t.Errorf("output wrong.\nexpected=%q\ngot=     %q", expected, out.String())
	}
}

func TestCustomPrompt(t *testing.T) {
	cfg := plainConfig(config.ModeParse)
	cfg.REPL.Prompt = "monkey> "

	var out bytes.Buffer
	New(cfg).Start(strings.NewReader("5\n"), &out)

	if out.String() != "monkey> 5;\nmonkey> \nGoodbye.\n" {
		t.Errorf("output wrong. got=%q", out.String())
	}
}

func TestTraceGoesToLogger(t *testing.T) {
	var logs bytes.Buffer
	logger := log.NewWithOptions(&logs, log.Options{Level: log.DebugLevel})

	var out bytes.Buffer
	New(plainConfig(config.ModeParse), WithLogger(logger, true)).Start(strings.NewReader("a + b\n"), &out)

	if !strings.Contains(logs.String(), "BEGIN parseInfixExpression") {
		t.Errorf("expected parser trace in logs, got:\n%s", logs.String())
	}
	if strings.Contains(out.String(), "BEGIN") {
		t.Errorf("trace leaked into REPL output: %q", out.String())
	}
}

func TestNewDefaults(t *testing.T) {
	r := New(nil)
	if r.prompt != PROMPT {
		t.Errorf("prompt wrong. got=%q", r.prompt)
	}
	if r.mode != config.ModeParse {
		t.Errorf("mode wrong. got=%q", r.mode)
	}
	if r.styles.plain {
		t.Errorf("default config should use colored styles")
	}
}

func TestPlainStylesRenderVerbatim(t *testing.T) {
	s := PlainStyles()
	if got := s.render(s.Error, "\tx"); got != "\tx" {
		t.Errorf("plain render changed text. got=%q", got)
	}
}
