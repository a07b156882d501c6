package calc

import (
	"slices"
)

type tokenType string

const (
	leftParenthesis  tokenType = "left_parenthesis"
	rightParenthesis tokenType = "right_parenthesis"
	add              tokenType = "add"
	subtract         tokenType = "subtract"
	multiply         tokenType = "multiply"
	divide           tokenType = "divide"
	power            tokenType = "power"
	numberLiteral    tokenType = "number_literal"
	identifier       tokenType = "identifier"
	whitespace       tokenType = "whitespace"
	invalid          tokenType = "invalid"
)

type token struct {
	_type    tokenType
	strValue string

	column int
}

var tokenNoop token

func (tk *token) isParenthesis() bool {
	return tk.isLeftParenthesis() || tk.isRightParenthesis()
}

func (tk *token) isLeftParenthesis() bool {
	return tk._type == leftParenthesis
}

func (tk *token) isRightParenthesis() bool {
	return tk._type == rightParenthesis
}

var (
	operators = []tokenType{add, subtract, multiply, divide, power}
	operands  = []tokenType{numberLiteral, identifier}
)

// Explicit precedence tiers; a higher tier binds tighter. Additive and
// multiplicative operators share a tier, so chains of + and - (or * and /)
// group strictly left to right.
var precedence = map[tokenType]int{
	add:      1,
	subtract: 1,
	multiply: 2,
	divide:   2,
	power:    3,
}

// hasLowerOrSamePrecedenceThan reports whether tk1, already on the operator
// stack, must be popped before tk is pushed. Equal tiers pop, which is what
// makes every operator left-associative.
func (tk *token) hasLowerOrSamePrecedenceThan(tk1 token) bool {
	l, lok := precedence[tk._type]
	r, rok := precedence[tk1._type]

	if !lok || !rok {
		return false
	}

	return l <= r
}

func (tk *token) isOperator() bool {
	return slices.Contains(operators, tk._type)
}

func (tk *token) isOperand() bool {
	return slices.Contains(operands, tk._type)
}

var operatorSymbols = map[tokenType]string{
	leftParenthesis:  "(",
	rightParenthesis: ")",
	add:              "+",
	subtract:         "-",
	multiply:         "*",
	divide:           "/",
	power:            "^",
}

// displayValue renders the token for postfix output. Collapsed sign runs
// print as the single operator they stand for.
func (tk *token) displayValue() string {
	if s, ok := operatorSymbols[tk._type]; ok {
		return s
	}

	return tk.strValue
}
