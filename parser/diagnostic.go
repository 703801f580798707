package parser

import (
	"errors"
	"fmt"

	"github.com/iZarrios/monkey-front/token"
)

type DiagnosticKind int

const (
	// UnexpectedToken is reported by expectPeek when the next token is not the required one.
	UnexpectedToken DiagnosticKind = iota
	// MissingPrefixHandler means an expression started with a token that cannot start one.
	MissingPrefixHandler
	// MalformedLiteral is an INT token whose text does not fit in an int64.
	MalformedLiteral
	// IllegalCharacter is an ILLEGAL token from the lexer reaching expression position.
	IllegalCharacter
)

func (k DiagnosticKind) String() string {
	switch k {
	case UnexpectedToken:
		return "UnexpectedToken"
	case MissingPrefixHandler:
		return "MissingPrefixHandler"
	case MalformedLiteral:
		return "MalformedLiteral"
	case IllegalCharacter:
		return "IllegalCharacter"
	default:
		return fmt.Sprintf("DiagnosticKind(%d)", int(k))
	}
}

// Diagnostic is a non-fatal parse error. Token is the token the parser was
// looking at when the problem was found.
type Diagnostic struct {
	Kind    DiagnosticKind
	Message string
	Token   token.Token
}

func (d Diagnostic) Error() string { return d.Message }

func (p *Parser) Errors() []string {
	msgs := make([]string, 0, len(p.diagnostics))
	for _, d := range p.diagnostics {
		msgs = append(msgs, d.Message)
	}
	return msgs
}

func (p *Parser) Diagnostics() []Diagnostic {
	return p.diagnostics
}

// Err returns all diagnostics joined into one error, or nil if there are none.
func (p *Parser) Err() error {
	if len(p.diagnostics) == 0 {
		return nil
	}
	errs := make([]error, 0, len(p.diagnostics))
	for _, d := range p.diagnostics {
		errs = append(errs, d)
	}
	return errors.Join(errs...)
}

func (p *Parser) report(kind DiagnosticKind, tok token.Token, format string, args ...any) {
	d := Diagnostic{Kind: kind, Message: fmt.Sprintf(format, args...), Token: tok}
	p.diagnostics = append(p.diagnostics, d)
	if p.tracer != nil {
		p.tracer.Debug("diagnostic", "kind", kind, "msg", d.Message)
	}
}

func (p *Parser) peekError(t token.TokenType) {
	p.report(UnexpectedToken, p.peekToken,
		"expected next token to be %s, got %s instead", t, p.peekToken.Type)
}

func (p *Parser) noPrefixParseFnError(tok token.Token) {
	if tok.Type == token.ILLEGAL {
		p.report(IllegalCharacter, tok, "illegal character %q", tok.Literal)
		return
	}
	p.report(MissingPrefixHandler, tok, "no prefix parse function for %s found", tok.Type)
}
