package ast

import "fmt"

// Clone returns a deep copy of node. The copy shares nothing with the
// original except immutable token values and strings.
func Clone(node Node) Node {
	switch node := node.(type) {
	case nil:
		return nil
	case Statement:
		return CloneStatement(node)
	case Expression:
		return CloneExpression(node)
	default:
		panic(fmt.Sprintf("ast: Clone of unknown node type %T", node))
	}
}

func (p *Program) Clone() *Program {
	if p == nil {
		return nil
	}
	return &Program{Statements: cloneStatements(p.Statements)}
}

func CloneStatement(stmt Statement) Statement {
	switch stmt := stmt.(type) {
	case nil:
		return nil
	case *Program:
		return stmt.Clone()
	case *LetStatement:
		return &LetStatement{
			Token: stmt.Token,
			Name:  cloneIdentifier(stmt.Name),
			Value: CloneExpression(stmt.Value),
		}
	case *ReturnStatement:
		return &ReturnStatement{Token: stmt.Token, ReturnValue: CloneExpression(stmt.ReturnValue)}
	case *ExpressionStatement:
		return &ExpressionStatement{Token: stmt.Token, Expression: CloneExpression(stmt.Expression)}
	case *BlockStatement:
		return cloneBlock(stmt)
	default:
		panic(fmt.Sprintf("ast: CloneStatement of unknown statement type %T", stmt))
	}
}

func CloneExpression(exp Expression) Expression {
	switch exp := exp.(type) {
	case nil:
		return nil
	case *Identifier:
		return cloneIdentifier(exp)
	case *IntegerLiteral:
		c := *exp
		return &c
	case *Boolean:
		c := *exp
		return &c
	case *PrefixExpression:
		return &PrefixExpression{
			Token:    exp.Token,
			Operator: exp.Operator,
			Right:    CloneExpression(exp.Right),
		}
	case *InfixExpression:
		return &InfixExpression{
			Token:    exp.Token,
			Left:     CloneExpression(exp.Left),
			Operator: exp.Operator,
			Right:    CloneExpression(exp.Right),
		}
	case *IfExpression:
		return &IfExpression{
			Token:       exp.Token,
			Condition:   CloneExpression(exp.Condition),
			Consequence: cloneBlock(exp.Consequence),
			Alternative: cloneBlock(exp.Alternative),
		}
	case *FunctionLiteral:
		var params []*Identifier
		if exp.Parameters != nil {
			params = make([]*Identifier, len(exp.Parameters))
			for i, p := range exp.Parameters {
				params[i] = cloneIdentifier(p)
			}
		}
		return &FunctionLiteral{Token: exp.Token, Parameters: params, Body: cloneBlock(exp.Body)}
	case *CallExpression:
		var args []Expression
		if exp.Arguments != nil {
			args = make([]Expression, len(exp.Arguments))
			for i, a := range exp.Arguments {
				args[i] = CloneExpression(a)
			}
		}
		return &CallExpression{Token: exp.Token, Function: CloneExpression(exp.Function), Arguments: args}
	default:
		panic(fmt.Sprintf("ast: CloneExpression of unknown expression type %T", exp))
	}
}

func cloneIdentifier(i *Identifier) *Identifier {
	if i == nil {
		return nil
	}
	c := *i
	return &c
}

func cloneBlock(b *BlockStatement) *BlockStatement {
	if b == nil {
		return nil
	}
	return &BlockStatement{Token: b.Token, Statements: cloneStatements(b.Statements)}
}

func cloneStatements(stmts []Statement) []Statement {
	if stmts == nil {
		return nil
	}
	out := make([]Statement, len(stmts))
	for i, s := range stmts {
		out[i] = CloneStatement(s)
	}
	return out
}
