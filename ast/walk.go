package ast

// Walk visits node and its children in source order. Children of a node are
// skipped when fn returns false for it.
func Walk(node Node, fn func(Node) bool) {
	if node == nil || !fn(node) {
		return
	}

	switch n := node.(type) {
	case *Program:
		for _, s := range n.Statements {
			Walk(s, fn)
		}
	case *LetStatement:
		walkIdentifier(n.Name, fn)
		walkExpression(n.Value, fn)
	case *ReturnStatement:
		walkExpression(n.ReturnValue, fn)
	case *ExpressionStatement:
		walkExpression(n.Expression, fn)
	case *BlockStatement:
		for _, s := range n.Statements {
			Walk(s, fn)
		}
	case *PrefixExpression:
		walkExpression(n.Right, fn)
	case *InfixExpression:
		walkExpression(n.Left, fn)
		walkExpression(n.Right, fn)
	case *IfExpression:
		walkExpression(n.Condition, fn)
		if n.Consequence != nil {
			Walk(n.Consequence, fn)
		}
		if n.Alternative != nil {
			Walk(n.Alternative, fn)
		}
	case *FunctionLiteral:
		for _, p := range n.Parameters {
			walkIdentifier(p, fn)
		}
		if n.Body != nil {
			Walk(n.Body, fn)
		}
	case *CallExpression:
		walkExpression(n.Function, fn)
		for _, a := range n.Arguments {
			walkExpression(a, fn)
		}
	}
}

// The helpers below keep typed nil pointers from reaching fn as non-nil Nodes.

func walkExpression(e Expression, fn func(Node) bool) {
	if e != nil {
		Walk(e, fn)
	}
}

func walkIdentifier(i *Identifier, fn func(Node) bool) {
	if i != nil {
		Walk(i, fn)
	}
}
