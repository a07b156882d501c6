// Package eval computes postfix expressions over arbitrary-precision
// integers against a variable environment.
package eval

import (
	"errors"
	"fmt"
	"math/big"
	"regexp"
)

type OperatorType string
type TermType string

const (
	Add      OperatorType = "add"
	Subtract OperatorType = "subtract"
	Multiply OperatorType = "multiply"
	Divide   OperatorType = "divide"
	Power    OperatorType = "power"
)

const (
	Operator TermType = "operator"
	Operand  TermType = "operand"
)

// Term is one element of a postfix expression. An operand carries exactly
// one of Identifier and Value.
type Term struct {
	Type     TermType
	Operator OperatorType

	Identifier string
	Value      *big.Int
}

var (
	ErrInvalidExpression = errors.New("invalid expression")
	ErrUnknownVariable   = errors.New("unknown variable")
	ErrInvalidOperand    = errors.New("invalid operand")
	ErrDivisionByZero    = errors.New("division by zero")
	ErrInvalidExponent   = errors.New("invalid exponent")
)

// Environment resolves identifier operands during evaluation.
type Environment interface {
	Lookup(name string) (*big.Int, bool)
}

// Evaluate walks a postfix term sequence left to right with a value stack.
// A well-formed sequence leaves exactly one value, which is the result.
func Evaluate(postfix []Term, values Environment) (*big.Int, error) {
	if len(postfix) == 0 {
		return nil, fmt.Errorf("%w: empty expression", ErrInvalidExpression)
	}

	s := make([]*big.Int, 0, len(postfix))

	for _, term := range postfix {
		switch term.Type {
		case Operand:
			v, err := term.resolve(values)
			if err != nil {
				return nil, err
			}
			s = append(s, v)
		case Operator:
			if len(s) < 2 {
				return nil, fmt.Errorf("%w: operator %s is missing an operand", ErrInvalidExpression, term.Operator)
			}
			b := s[len(s)-1]
			a := s[len(s)-2]
			s = s[:len(s)-2]

			apply, ok := evaluators[term.Operator]
			if !ok {
				return nil, fmt.Errorf("%w: unknown operator %q", ErrInvalidExpression, term.Operator)
			}

			result, err := apply(a, b)
			if err != nil {
				return nil, err
			}
			s = append(s, result)
		default:
			return nil, fmt.Errorf("%w: unknown term type %q", ErrInvalidExpression, term.Type)
		}
	}

	if len(s) != 1 {
		return nil, fmt.Errorf("%w: %d values left on the stack", ErrInvalidExpression, len(s))
	}

	return s[0], nil
}

func (term Term) resolve(values Environment) (*big.Int, error) {
	if term.Identifier != "" {
		v, ok := values.Lookup(term.Identifier)
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownVariable, term.Identifier)
		}
		return v, nil
	}

	if term.Value == nil {
		return nil, fmt.Errorf("%w: operand has neither a value nor a name", ErrInvalidExpression)
	}

	return new(big.Int).Set(term.Value), nil
}

var (
	literalPattern    = regexp.MustCompile(`^[+-]?\d+$`)
	identifierPattern = regexp.MustCompile(`^[a-zA-Z]+$`)
)

// Resolve performs operand-value resolution on a raw string: a signed
// integer literal resolves to itself, an identifier resolves through the
// environment, anything else is invalid.
func Resolve(text string, values Environment) (*big.Int, error) {
	switch {
	case literalPattern.MatchString(text):
		v, ok := new(big.Int).SetString(text, 10)
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrInvalidOperand, text)
		}
		return v, nil
	case identifierPattern.MatchString(text):
		v, ok := values.Lookup(text)
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownVariable, text)
		}
		return v, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrInvalidOperand, text)
	}
}
