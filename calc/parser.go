// Package calc turns raw infix expression lines into postfix term
// sequences ready for evaluation.
package calc

import (
	"errors"
	"fmt"
	"math/big"
	"strings"

	"bigcalc/eval"
)

var (
	ErrInvalidExpression     = errors.New("invalid expression")
	ErrUnbalancedParentheses = errors.New("unbalanced parentheses")
)

// Parse converts one input line into a postfix sequence of evaluator
// terms, resolving operator precedence and parenthesis nesting.
func Parse(line string) ([]eval.Term, error) {
	tokens, err := tokenize(line)
	if err != nil {
		return nil, err
	}

	if len(tokens) == 0 {
		return nil, fmt.Errorf("%w: empty expression", ErrInvalidExpression)
	}

	postfix, err := infixToPostfix(tokens)
	if err != nil {
		return nil, err
	}

	return postfixToTerms(postfix)
}

// ConvertToPostfix renders the postfix form of an infix expression, terms
// separated by single spaces.
func ConvertToPostfix(line string) (string, error) {
	tokens, err := tokenize(line)
	if err != nil {
		return "", err
	}

	if len(tokens) == 0 {
		return "", fmt.Errorf("%w: empty expression", ErrInvalidExpression)
	}

	postfix, err := infixToPostfix(tokens)
	if err != nil {
		return "", err
	}

	parts := make([]string, len(postfix))
	for i := range postfix {
		parts[i] = postfix[i].displayValue()
	}

	return strings.Join(parts, " "), nil
}

func tokenize(line string) ([]token, error) {
	t := newTokenizer(line)
	tokens := make([]token, 0)

	for {
		tk, err := t.getNextToken()
		if err != nil {
			return nil, err
		}

		if *tk == tokenNoop {
			break
		}

		tokens = append(tokens, *tk)
	}

	return tokens, nil
}

func infixToPostfix(tokens []token) ([]token, error) {
	s := stack[token]{}
	postfix := make([]token, 0, len(tokens))
	nesting := 0

	for _, tk := range tokens {
		switch {
		case tk.isLeftParenthesis():
			s.push(tk)
			nesting++
		case tk.isRightParenthesis():
			nesting--
			if nesting < 0 {
				return nil, fmt.Errorf("%w: unexpected closing parenthesis at column %d", ErrUnbalancedParentheses, tk.column)
			}
			for {
				tki := s.pop()
				if tki == tokenNoop {
					return nil, fmt.Errorf("%w: unexpected closing parenthesis at column %d", ErrUnbalancedParentheses, tk.column)
				}
				if tki.isLeftParenthesis() {
					break
				}
				postfix = append(postfix, tki)
			}
		case tk.isOperand():
			postfix = append(postfix, tk)
		case tk.isOperator():
			for tki := s.pop(); tki != tokenNoop; tki = s.pop() {
				if tk.hasLowerOrSamePrecedenceThan(tki) && !tki.isLeftParenthesis() {
					postfix = append(postfix, tki)
					continue
				}
				s.push(tki)
				break
			}
			s.push(tk)
		default:
			return nil, fmt.Errorf("%w: token %q at column %d", ErrInvalidExpression, tk.strValue, tk.column)
		}
	}

	if nesting != 0 {
		return nil, fmt.Errorf("%w: missing closing parenthesis", ErrUnbalancedParentheses)
	}

	for tki := s.pop(); tki != tokenNoop; tki = s.pop() {
		if !tki.isParenthesis() {
			postfix = append(postfix, tki)
		}
	}

	return postfix, nil
}

var operatorTypes = map[tokenType]eval.OperatorType{
	add:      eval.Add,
	subtract: eval.Subtract,
	multiply: eval.Multiply,
	divide:   eval.Divide,
	power:    eval.Power,
}

func postfixToTerms(tokens []token) ([]eval.Term, error) {
	terms := make([]eval.Term, 0, len(tokens))

	for _, tk := range tokens {
		switch tk._type {
		case numberLiteral:
			v, ok := new(big.Int).SetString(tk.strValue, 10)
			if !ok {
				return nil, fmt.Errorf("%w: invalid number %q at column %d", ErrInvalidExpression, tk.strValue, tk.column)
			}
			terms = append(terms, eval.Term{Type: eval.Operand, Value: v})
		case identifier:
			terms = append(terms, eval.Term{Type: eval.Operand, Identifier: tk.strValue})
		default:
			op, ok := operatorTypes[tk._type]
			if !ok {
				return nil, fmt.Errorf("%w: token %q at column %d is not a valid operator", ErrInvalidExpression, tk.strValue, tk.column)
			}
			terms = append(terms, eval.Term{Type: eval.Operator, Operator: op})
		}
	}

	return terms, nil
}
