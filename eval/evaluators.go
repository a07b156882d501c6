package eval

import (
	"fmt"
	"math/big"
)

// The binary function behind each operator. b is the more recently pushed
// operand.
var evaluators = map[OperatorType]func(a, b *big.Int) (*big.Int, error){
	Add:      evaluateAdd,
	Subtract: evaluateSubtract,
	Multiply: evaluateMultiply,
	Divide:   evaluateDivide,
	Power:    evaluatePower,
}

func evaluateAdd(a, b *big.Int) (*big.Int, error) {
	return new(big.Int).Add(a, b), nil
}

func evaluateSubtract(a, b *big.Int) (*big.Int, error) {
	return new(big.Int).Sub(a, b), nil
}

func evaluateMultiply(a, b *big.Int) (*big.Int, error) {
	return new(big.Int).Mul(a, b), nil
}

func evaluateDivide(a, b *big.Int) (*big.Int, error) {
	if b.Sign() == 0 {
		return nil, fmt.Errorf("%w: %s / 0", ErrDivisionByZero, a)
	}

	return new(big.Int).Quo(a, b), nil
}

func evaluatePower(a, b *big.Int) (*big.Int, error) {
	if b.Sign() < 0 {
		return nil, fmt.Errorf("%w: negative exponent %s", ErrInvalidExponent, b)
	}

	// Exponents that do not fit in int64 are not representable.
	if !b.IsInt64() {
		return nil, fmt.Errorf("%w: exponent %s is too large", ErrInvalidExponent, b)
	}

	return new(big.Int).Exp(a, b, nil), nil
}
