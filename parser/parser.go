package parser

import (
	"errors"
	"strconv"

	"github.com/charmbracelet/log"

	"github.com/iZarrios/monkey-front/ast"
	"github.com/iZarrios/monkey-front/lexer"
	"github.com/iZarrios/monkey-front/token"
)

var ErrNilLexer = errors.New("can't pass lexer as nil")

type Parser struct {
	l           *lexer.Lexer
	diagnostics []Diagnostic

	curToken  token.Token
	peekToken token.Token

	prefixParseFns map[token.TokenType]prefixParseFn
	infixParseFns  map[token.TokenType]infixParseFn

	tracer     *log.Logger
	traceLevel int
}

type Option func(*Parser)

func NewParser(l *lexer.Lexer, opts ...Option) (*Parser, error) {
	if l == nil {
		return nil, ErrNilLexer
	}

	p := &Parser{
		l:              l,
		diagnostics:    make([]Diagnostic, 0),
		prefixParseFns: make(map[token.TokenType]prefixParseFn),
		infixParseFns:  make(map[token.TokenType]infixParseFn),
	}

	for _, opt := range opts {
		opt(p)
	}

	// Read two tokens (to set both curToken and peekToken)
	p.nextToken()
	p.nextToken()

	{ // PREFIX
		p.registerPrefix(token.IDENT, p.parseIdentifier)
		p.registerPrefix(token.INT, p.parseIntegerLiteral)
		p.registerPrefix(token.BANG, p.parsePrefixExpression)
		p.registerPrefix(token.MINUS, p.parsePrefixExpression)
		p.registerPrefix(token.TRUE, p.parseBoolean)
		p.registerPrefix(token.FALSE, p.parseBoolean)
		p.registerPrefix(token.LPAREN, p.parseGroupedExpression)
		p.registerPrefix(token.IF, p.parseIfExpression)
		p.registerPrefix(token.FUNCTION, p.parseFunctionLiteral)
	}

	{ // INFIX
		p.registerInfix(token.PLUS, p.parseInfixExpression)
		p.registerInfix(token.MINUS, p.parseInfixExpression)
		p.registerInfix(token.SLASH, p.parseInfixExpression)
		p.registerInfix(token.ASTERISK, p.parseInfixExpression)
		p.registerInfix(token.EQ, p.parseInfixExpression)
		p.registerInfix(token.NOT_EQ, p.parseInfixExpression)
		p.registerInfix(token.LT, p.parseInfixExpression)
		p.registerInfix(token.GT, p.parseInfixExpression)
		p.registerInfix(token.LPAREN, p.parseCallExpression)
	}

	return p, nil
}

// Parse runs a fresh parser over input.
func Parse(input string, opts ...Option) (*ast.Program, []Diagnostic) {
	// NewParser only fails on a nil lexer
	p, _ := NewParser(lexer.NewLexer(input), opts...)
	program := p.ParseProgram()
	return program, p.Diagnostics()
}

func (p *Parser) nextToken() {
	p.curToken = p.peekToken
	p.peekToken = p.l.NextToken()
}

func (p *Parser) curTokenIs(t token.TokenType) bool {
	return p.curToken.Type == t
}

func (p *Parser) peekTokenIs(t token.TokenType) bool {
	return p.peekToken.Type == t
}

// expectPeek advances only when the next token has the wanted type. On a
// mismatch it records a diagnostic and leaves the cursor where it was.
func (p *Parser) expectPeek(t token.TokenType) bool {
	if p.peekTokenIs(t) {
		p.nextToken()
		return true
	}
	p.peekError(t)
	return false
}

// skipUntil moves curToken forward until it is one of stops or EOF.
func (p *Parser) skipUntil(stops ...token.TokenType) {
	for !p.curTokenIs(token.EOF) {
		for _, t := range stops {
			if p.curTokenIs(t) {
				return
			}
		}
		p.nextToken()
	}
}

// ParseProgram always returns a program. Statements that fail to parse leave
// diagnostics behind and are skipped up to the next ';'.
func (p *Parser) ParseProgram() *ast.Program {
	program := &ast.Program{}
	program.Statements = []ast.Statement{}

	for !p.curTokenIs(token.EOF) {
		stmt := p.parseStatement()
		if stmt != nil {
			program.Statements = append(program.Statements, stmt)
		} else {
			p.skipUntil(token.SEMICOLON)
		}
		p.nextToken()
	}

	return program
}

func (p *Parser) parseStatement() ast.Statement {
	switch p.curToken.Type {
	case token.LET:
		return p.parseLetStatement()
	case token.RETURN:
		return p.parseReturnStatement()
	default:
		return p.parseExpressionStatement()
	}
}

func (p *Parser) parseLetStatement() ast.Statement {
	defer p.untrace(p.trace("parseLetStatement"))
	stmt := &ast.LetStatement{Token: p.curToken}

	if !p.expectPeek(token.IDENT) {
		return nil
	}

	stmt.Name = &ast.Identifier{Token: p.curToken, Value: p.curToken.Literal}

	if !p.expectPeek(token.ASSIGN) {
		return nil
	}

	p.nextToken()

	stmt.Value = p.parseExpression(LOWEST)
	if stmt.Value == nil {
		return nil
	}

	if !p.expectPeek(token.SEMICOLON) {
		return nil
	}

	return stmt
}

func (p *Parser) parseReturnStatement() ast.Statement {
	defer p.untrace(p.trace("parseReturnStatement"))
	stmt := &ast.ReturnStatement{Token: p.curToken}

	// bare "return;"
	if p.peekTokenIs(token.SEMICOLON) {
		p.nextToken()
		return stmt
	}

	p.nextToken()

	stmt.ReturnValue = p.parseExpression(LOWEST)
	if stmt.ReturnValue == nil {
		return nil
	}

	if !p.expectPeek(token.SEMICOLON) {
		return nil
	}

	return stmt
}

func (p *Parser) parseExpressionStatement() ast.Statement {
	defer p.untrace(p.trace("parseExpressionStatement"))
	stmt := &ast.ExpressionStatement{Token: p.curToken}

	stmt.Expression = p.parseExpression(LOWEST)
	if stmt.Expression == nil {
		return nil
	}

	// the semicolon is optional so that "5 + 5" works in the REPL
	if p.peekTokenIs(token.SEMICOLON) {
		p.nextToken()
	}

	return stmt
}

func (p *Parser) parseExpression(precedence int) ast.Expression {
	defer p.untrace(p.trace("parseExpression"))

	prefix, ok := p.prefixParseFns[p.curToken.Type]
	if !ok {
		p.noPrefixParseFnError(p.curToken)
		return nil
	}
	leftExp := prefix()
	if leftExp == nil {
		return nil
	}

	for !p.peekTokenIs(token.SEMICOLON) && precedence < p.peekPrecedence() {
		infix, ok := p.infixParseFns[p.peekToken.Type]
		if !ok {
			return leftExp
		}

		p.nextToken()
		leftExp = infix(leftExp)
		if leftExp == nil {
			return nil
		}
	}

	return leftExp
}

func (p *Parser) parseIdentifier() ast.Expression {
	return &ast.Identifier{Token: p.curToken, Value: p.curToken.Literal}
}

func (p *Parser) parseIntegerLiteral() ast.Expression {
	defer p.untrace(p.trace("parseIntegerLiteral"))
	lit := &ast.IntegerLiteral{Token: p.curToken}

	value, err := strconv.ParseInt(p.curToken.Literal, 10, 64)
	if err != nil {
		p.report(MalformedLiteral, p.curToken, "could not parse %q as integer", p.curToken.Literal)
		return nil
	}

	lit.Value = value
	return lit
}

func (p *Parser) parseBoolean() ast.Expression {
	return &ast.Boolean{Token: p.curToken, Value: p.curTokenIs(token.TRUE)}
}

func (p *Parser) parsePrefixExpression() ast.Expression {
	defer p.untrace(p.trace("parsePrefixExpression"))
	expression := &ast.PrefixExpression{
		Token:    p.curToken,
		Operator: p.curToken.Literal,
	}

	p.nextToken()

	expression.Right = p.parseExpression(PREFIX)
	if expression.Right == nil {
		return nil
	}

	return expression
}

func (p *Parser) parseInfixExpression(left ast.Expression) ast.Expression {
	defer p.untrace(p.trace("parseInfixExpression"))
	expression := &ast.InfixExpression{
		Token:    p.curToken,
		Operator: p.curToken.Literal,
		Left:     left,
	}

	// Recursing with the operator's own precedence makes it left-associative.
	precedence := p.curPrecedence()
	p.nextToken()
	expression.Right = p.parseExpression(precedence)
	if expression.Right == nil {
		return nil
	}

	return expression
}

func (p *Parser) parseGroupedExpression() ast.Expression {
	p.nextToken()

	exp := p.parseExpression(LOWEST)
	if exp == nil {
		return nil
	}

	if !p.expectPeek(token.RPAREN) {
		return nil
	}
	return exp
}

func (p *Parser) parseIfExpression() ast.Expression {
	defer p.untrace(p.trace("parseIfExpression"))
	expression := &ast.IfExpression{Token: p.curToken}

	if !p.expectPeek(token.LPAREN) {
		return nil
	}

	p.nextToken()

	expression.Condition = p.parseExpression(LOWEST)
	if expression.Condition == nil {
		return nil
	}

	if !p.expectPeek(token.RPAREN) {
		return nil
	}

	if !p.expectPeek(token.LBRACE) {
		return nil
	}

	expression.Consequence = p.parseBlockStatement()
	if expression.Consequence == nil {
		return nil
	}

	if p.peekTokenIs(token.ELSE) {
		p.nextToken()

		if !p.expectPeek(token.LBRACE) {
			return nil
		}

		expression.Alternative = p.parseBlockStatement()
		if expression.Alternative == nil {
			return nil
		}
	}
	return expression
}

// parseBlockStatement expects curToken to be '{' and returns with curToken on
// the matching '}'.
func (p *Parser) parseBlockStatement() *ast.BlockStatement {
	defer p.untrace(p.trace("parseBlockStatement"))
	block := &ast.BlockStatement{Token: p.curToken}
	block.Statements = []ast.Statement{}

	p.nextToken()

	for !p.curTokenIs(token.RBRACE) && !p.curTokenIs(token.EOF) {
		stmt := p.parseStatement()
		if stmt != nil {
			block.Statements = append(block.Statements, stmt)
		} else {
			p.skipUntil(token.SEMICOLON, token.RBRACE)
			if p.curTokenIs(token.RBRACE) {
				break
			}
		}
		p.nextToken()
	}

	if !p.curTokenIs(token.RBRACE) {
		// ran into EOF, the block was never closed
		p.report(UnexpectedToken, p.curToken,
			"expected next token to be %s, got %s instead", token.RBRACE, p.curToken.Type)
		return nil
	}

	return block
}

func (p *Parser) parseFunctionLiteral() ast.Expression {
	defer p.untrace(p.trace("parseFunctionLiteral"))
	fnLiteral := &ast.FunctionLiteral{Token: p.curToken}

	if !p.expectPeek(token.LPAREN) {
		return nil
	}

	fnLiteral.Parameters = p.parseFunctionParameters()
	if fnLiteral.Parameters == nil {
		return nil
	}

	if !p.expectPeek(token.LBRACE) {
		return nil
	}

	fnLiteral.Body = p.parseBlockStatement()
	if fnLiteral.Body == nil {
		return nil
	}

	return fnLiteral
}

// parseFunctionParameters returns nil on error and an empty slice for "()".
func (p *Parser) parseFunctionParameters() []*ast.Identifier {
	idents := []*ast.Identifier{}

	// if there are no params
	if p.peekTokenIs(token.RPAREN) {
		p.nextToken()
		return idents
	}

	// get first param
	if !p.expectPeek(token.IDENT) {
		return nil
	}
	idents = append(idents, &ast.Identifier{Token: p.curToken, Value: p.curToken.Literal})

	for p.peekTokenIs(token.COMMA) {
		// make current = comma
		p.nextToken()
		// make current = ident
		if !p.expectPeek(token.IDENT) {
			return nil
		}
		idents = append(idents, &ast.Identifier{Token: p.curToken, Value: p.curToken.Literal})
	}

	if !p.expectPeek(token.RPAREN) {
		// no closing ')'
		return nil
	}

	return idents
}

func (p *Parser) parseCallExpression(function ast.Expression) ast.Expression {
	defer p.untrace(p.trace("parseCallExpression"))
	exp := &ast.CallExpression{Token: p.curToken, Function: function}

	exp.Arguments = p.parseCallArguments()
	if exp.Arguments == nil {
		return nil
	}

	return exp
}

// parseCallArguments returns nil on error and an empty slice for "()".
func (p *Parser) parseCallArguments() []ast.Expression {
	args := []ast.Expression{}

	if p.peekTokenIs(token.RPAREN) {
		p.nextToken()
		return args
	}

	p.nextToken()
	arg := p.parseExpression(LOWEST)
	if arg == nil {
		return nil
	}
	args = append(args, arg)

	for p.peekTokenIs(token.COMMA) {
		p.nextToken()
		p.nextToken()
		arg := p.parseExpression(LOWEST)
		if arg == nil {
			return nil
		}
		args = append(args, arg)
	}

	if !p.expectPeek(token.RPAREN) {
		return nil
	}

	return args
}
